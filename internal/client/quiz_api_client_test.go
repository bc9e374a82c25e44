package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"dod-quiz/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *QuizApiClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewQuizApiClient(srv.URL+"/", 5, zap.NewNop())
	c.Debug = true
	return c
}

func TestQuizApiClient_NewQuiz(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/quiz", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":"q1","question":"2+2?","choices":["3","4"],"token":"t"}`)
	})

	quiz, err := c.NewQuiz(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2+2?", quiz.Question)
	assert.Equal(t, []string{"3", "4"}, quiz.Choices)
	assert.Nil(t, quiz.Answer)
	assert.Nil(t, quiz.Result)
}

func TestQuizApiClient_SubmitAnswer(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/quiz", r.URL.Path)

		var sent model.Quiz
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		require.NotNil(t, sent.Answer)
		assert.Equal(t, "4", *sent.Answer)
		assert.Equal(t, "q1", sent.ID)

		_, _ = io.WriteString(w, `{"id":"q2","question":"3+3?","choices":["5","6"],"token":"t2","result":true}`)
	})

	answer := "4"
	next, err := c.SubmitAnswer(context.Background(), &model.Quiz{ID: "q1", Question: "2+2?", Choices: []string{"3", "4"}, Token: "t", Answer: &answer})
	require.NoError(t, err)
	assert.Equal(t, "3+3?", next.Question)
	require.NotNil(t, next.Result)
	assert.True(t, *next.Result)
}

func TestQuizApiClient_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantMsg string
		status  bool
	}{
		{
			name: "error body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = io.WriteString(w, `{"code":1,"msg":"invalid quiz"}`)
			},
			wantMsg: "invalid quiz",
			status:  true,
		},
		{
			name: "plain status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantMsg: "502",
			status:  true,
		},
		{
			name: "broken json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"question":`)
			},
			wantMsg: "decode new quiz response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, tt.handler)
			_, err := c.NewQuiz(context.Background())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			if tt.status {
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
			} else {
				assert.NotErrorIs(t, err, ErrUnexpectedStatus)
			}
		})
	}
}

func TestQuizApiClient_ServerDown(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewQuizApiClient(url, 1, zap.NewNop())
	_, err := c.NewQuiz(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "new quiz request failed")
}

