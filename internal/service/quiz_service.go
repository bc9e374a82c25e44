package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/url"
	"slices"

	"dod-quiz/internal/model"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	"go.uber.org/zap"
)

const Question = "Where was this street view taken?"

var (
	ErrInvalidAnswer = errors.New("answer is not one of the choices")
	ErrInvalidToken  = errors.New("quiz token does not match any deck")
)

//go:generate mockgen -source=quiz_service.go -destination=mock/mock_service.go

type SightRepository interface {
	Decks() []string
	Random(deck string) (string, error)
}

type StatsRepository interface {
	RecordAsked(deck string) error
	RecordAnswer(deck string, correct bool) error
	Snapshot() map[string]model.DeckStats
}

type QuizService struct {
	sights   SightRepository
	stats    StatsRepository
	secret   []byte
	imageURL string
	log      *zap.Logger
}

// NewQuizService builds the service. imageURL is a format string with a single
// %s verb that receives the query-escaped sight.
func NewQuizService(sights SightRepository, stats StatsRepository, secret, imageURL string, log *zap.Logger) *QuizService {
	return &QuizService{
		sights:   sights,
		stats:    stats,
		secret:   []byte(secret),
		imageURL: imageURL,
		log:      log.Named("quiz"),
	}
}

func (s *QuizService) token(id, deck string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(id + "|" + deck))
	return hex.EncodeToString(mac.Sum(nil))
}

// NewQuiz picks a random deck and a random sight from it.
func (s *QuizService) NewQuiz() (*model.Quiz, error) {
	decks := s.sights.Decks()
	if len(decks) == 0 {
		return nil, errors.New("no decks available")
	}
	deck := decks[randomIndex(len(decks))]

	sight, err := s.sights.Random(deck)
	if err != nil {
		return nil, errors.Wrap(err, "pick sight")
	}

	id := uuid.NewV4().String()
	quiz := &model.Quiz{
		ID:       id,
		Question: Question,
		Choices:  decks,
		ImageSrc: fmt.Sprintf(s.imageURL, url.QueryEscape(sight)),
		Token:    s.token(id, deck),
	}

	if err := s.stats.RecordAsked(deck); err != nil {
		s.log.Warn("record asked quiz failed", zap.String("deck", deck), zap.Error(err))
	}
	return quiz, nil
}

// deckOf recovers the deck a token was issued for.
func (s *QuizService) deckOf(quiz model.Quiz) (string, bool) {
	for _, deck := range s.sights.Decks() {
		if hmac.Equal([]byte(s.token(quiz.ID, deck)), []byte(quiz.Token)) {
			return deck, true
		}
	}
	return "", false
}

// CheckAnswer grades the submitted quiz and returns the next quiz with the
// grade in its Result.
func (s *QuizService) CheckAnswer(quiz model.Quiz) (*model.Quiz, error) {
	if quiz.Answer == nil || !slices.Contains(s.sights.Decks(), *quiz.Answer) {
		return nil, ErrInvalidAnswer
	}

	deck, ok := s.deckOf(quiz)
	if !ok {
		return nil, ErrInvalidToken
	}
	correct := deck == *quiz.Answer

	if err := s.stats.RecordAnswer(deck, correct); err != nil {
		s.log.Warn("record answer failed", zap.String("deck", deck), zap.Error(err))
	}
	s.log.Info("answer checked", zap.String("id", quiz.ID), zap.String("answer", *quiz.Answer), zap.Bool("result", correct))

	next, err := s.NewQuiz()
	if err != nil {
		return nil, err
	}
	next.Result = &correct
	return next, nil
}

func (s *QuizService) Stats() map[string]model.DeckStats {
	return s.stats.Snapshot()
}
