package repository

import (
	"os"
	"sync"

	"dod-quiz/internal/model"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// StatsRepository keeps a per-deck tally of issued and checked quizzes in a
// JSON file. Every write is persisted.
type StatsRepository struct {
	filePath string
	log      *zap.Logger
	mu       sync.RWMutex
	stats    map[string]model.DeckStats
}

func NewStatsRepository(filePath string, log *zap.Logger) (*StatsRepository, error) {
	repo := &StatsRepository{
		filePath: filePath,
		log:      log.Named("stats"),
		stats:    make(map[string]model.DeckStats),
	}
	if err := repo.load(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
		repo.log.Info("stats file missing, creating a new one", zap.String("path", filePath))
		if err := repo.persist(); err != nil {
			return nil, err
		}
	}

	repo.log.Info("stats loaded", zap.String("path", filePath), zap.Int("decks", len(repo.stats)))
	return repo, nil
}

func (r *StatsRepository) load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	byteValue, err := os.ReadFile(r.filePath)
	if err != nil {
		return err
	}
	if len(byteValue) == 0 {
		r.stats = make(map[string]model.DeckStats)
		return nil
	}
	if err := json.Unmarshal(byteValue, &r.stats); err != nil {
		return errors.Wrapf(err, "parse stats file '%s'", r.filePath)
	}
	return nil
}

// persist must be called with the write lock held.
func (r *StatsRepository) persist() error {
	byteValue, err := json.MarshalIndent(r.stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode stats")
	}
	if err := os.WriteFile(r.filePath, byteValue, 0644); err != nil {
		r.log.Error("persist stats failed", zap.String("path", r.filePath), zap.Error(err))
		return errors.Wrap(err, "write stats")
	}
	return nil
}

// RecordAsked counts a quiz handed out for deck.
func (r *StatsRepository) RecordAsked(deck string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats[deck]
	s.Asked++
	r.stats[deck] = s
	return r.persist()
}

// RecordAnswer counts a checked answer for deck.
func (r *StatsRepository) RecordAnswer(deck string, correct bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.stats[deck]
	s.Answered++
	if correct {
		s.Correct++
	}
	r.stats[deck] = s
	return r.persist()
}

func (r *StatsRepository) Snapshot() map[string]model.DeckStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]model.DeckStats, len(r.stats))
	for k, v := range r.stats {
		out[k] = v
	}
	return out
}
