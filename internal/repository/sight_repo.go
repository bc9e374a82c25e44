package repository

import (
	"bufio"
	"math/rand/v2"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

var ErrUnknownDeck = errors.New("unknown deck")

// SightRepository holds the street-view locations of every deck, one
// location per line in the deck's source file.
type SightRepository struct {
	decks map[string][]string
	names []string
}

// NewSightRepository loads every deck file concurrently. A deck without any
// sight fails the load.
func NewSightRepository(paths map[string]string, log *zap.Logger) (*SightRepository, error) {
	log = log.Named("sights")
	if len(paths) == 0 {
		return nil, errors.New("no decks configured")
	}

	var mu sync.Mutex
	decks := make(map[string][]string, len(paths))

	p := pool.New().WithErrors()
	for name, path := range paths {
		p.Go(func() error {
			sights, err := readSights(path)
			if err != nil {
				return errors.Wrapf(err, "load deck %q", name)
			}
			if len(sights) == 0 {
				return errors.Errorf("deck %q in '%s' is empty", name, path)
			}
			mu.Lock()
			decks[name] = sights
			mu.Unlock()
			log.Info("deck loaded", zap.String("deck", name), zap.String("path", path), zap.Int("sights", len(sights)))
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(decks))
	for name := range decks {
		names = append(names, name)
	}
	sort.Strings(names)

	return &SightRepository{decks: decks, names: names}, nil
}

func readSights(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var sights []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		sights = append(sights, line)
	}
	return sights, scanner.Err()
}

// Decks returns the deck names in sorted order.
func (r *SightRepository) Decks() []string {
	return append([]string(nil), r.names...)
}

func (r *SightRepository) Random(deck string) (string, error) {
	sights, ok := r.decks[deck]
	if !ok {
		return "", errors.Wrap(ErrUnknownDeck, deck)
	}
	return sights[rand.IntN(len(sights))], nil
}
