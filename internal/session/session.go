package session

import (
	"context"
	"fmt"
	"sync"

	"dod-quiz/internal/model"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate mockgen -source=session.go -destination=mock/mock_session.go

var (
	ErrNoQuiz        = errors.New("no quiz loaded")
	ErrBusy          = errors.New("another quiz request is in flight")
	ErrRequestFailed = errors.New("request failed")
	ErrNoResult      = errors.New("server response carries no result")
)

type QuizAPI interface {
	NewQuiz(ctx context.Context) (*model.Quiz, error)
	SubmitAnswer(ctx context.Context, quiz *model.Quiz) (*model.Quiz, error)
}

// State is a point-in-time copy of the session.
type State struct {
	Quiz    *model.Quiz
	Success bool
}

// Session holds the client view of one quiz session. Fetch and Submit are the
// only writers; a call made while another is outstanding fails with ErrBusy.
type Session struct {
	api QuizAPI
	log *zap.Logger

	mu      sync.Mutex
	busy    bool
	quiz    *model.Quiz
	success bool
}

func New(api QuizAPI, log *zap.Logger) *Session {
	return &Session{api: api, log: log.Named("session")}
}

// Start begins the session by fetching the first quiz.
func (s *Session) Start(ctx context.Context) (model.Quiz, error) {
	return s.Fetch(ctx)
}

func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := State{Success: s.success}
	if s.quiz != nil {
		q := s.quiz.Clone()
		st.Quiz = &q
	}
	return st
}

func (s *Session) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

func (s *Session) release() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}

// Fetch loads a new quiz from the server. On success the quiz replaces the
// current one and success is reset; on failure nothing changes.
func (s *Session) Fetch(ctx context.Context) (model.Quiz, error) {
	if !s.acquire() {
		return model.Quiz{}, ErrBusy
	}
	defer s.release()

	quiz, err := s.api.NewQuiz(ctx)
	if err != nil {
		s.log.Warn("fetch quiz failed", zap.Error(err))
		return model.Quiz{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}

	s.mu.Lock()
	s.quiz = quiz
	s.success = false
	s.mu.Unlock()

	s.log.Debug("quiz loaded", zap.String("id", quiz.ID))
	return quiz.Clone(), nil
}

// Submit sends answer for the loaded quiz. The server's response replaces the
// quiz and its result becomes the success flag.
func (s *Session) Submit(ctx context.Context, answer string) (model.Quiz, error) {
	if !s.acquire() {
		return model.Quiz{}, ErrBusy
	}
	defer s.release()

	s.mu.Lock()
	if s.quiz == nil {
		s.mu.Unlock()
		return model.Quiz{}, ErrNoQuiz
	}
	outgoing := s.quiz.Clone()
	s.mu.Unlock()

	outgoing.Answer = &answer
	outgoing.Result = nil

	next, err := s.api.SubmitAnswer(ctx, &outgoing)
	if err != nil {
		s.log.Warn("submit answer failed", zap.String("id", outgoing.ID), zap.Error(err))
		return model.Quiz{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	if next.Result == nil {
		s.log.Warn("submit answer failed", zap.String("id", outgoing.ID), zap.Error(ErrNoResult))
		return model.Quiz{}, fmt.Errorf("%w: %w", ErrRequestFailed, ErrNoResult)
	}

	s.mu.Lock()
	s.quiz = next
	s.success = *next.Result
	s.mu.Unlock()

	s.log.Debug("answer checked", zap.String("id", outgoing.ID), zap.Bool("result", *next.Result))
	return next.Clone(), nil
}
