package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dod-quiz/internal/model"
	"dod-quiz/internal/repository"
	"dod-quiz/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()

	dir := t.TempDir()
	paths := map[string]string{
		"dutch":   filepath.Join(dir, "dutch.txt"),
		"deutsch": filepath.Join(dir, "deutsch.txt"),
	}
	require.NoError(t, os.WriteFile(paths["dutch"], []byte("52.3702,4.8952\n"), 0644))
	require.NoError(t, os.WriteFile(paths["deutsch"], []byte("52.5200,13.4050\n"), 0644))

	sights, err := repository.NewSightRepository(paths, zap.NewNop())
	require.NoError(t, err)
	stats, err := repository.NewStatsRepository(filepath.Join(dir, "stats.json"), zap.NewNop())
	require.NoError(t, err)

	svc := service.NewQuizService(sights, stats, "secret", "https://maps.example/?location=%s", zap.NewNop())
	h := NewQuizHandler(svc, zap.NewNop())

	r := gin.New()
	r.POST("/quiz", h.CreateQuizHandler)
	r.PUT("/quiz", h.CheckAnswerHandler)
	r.GET("/stats", h.StatsHandler)
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeQuiz(t *testing.T, w *httptest.ResponseRecorder) model.Quiz {
	t.Helper()
	var quiz model.Quiz
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quiz))
	return quiz
}

func TestQuizHandler_NewQuiz(t *testing.T) {
	t.Parallel()

	r := newTestEngine(t)
	w := serve(r, http.MethodPost, "/quiz", "")
	require.Equal(t, http.StatusOK, w.Code)

	quiz := decodeQuiz(t, w)
	assert.NotEmpty(t, quiz.ID)
	assert.NotEmpty(t, quiz.Token)
	assert.Equal(t, []string{"deutsch", "dutch"}, quiz.Choices)
	assert.Nil(t, quiz.Answer)
	assert.Nil(t, quiz.Result)
	assert.NotContains(t, w.Body.String(), `"result"`)
}

func TestQuizHandler_CheckAnswer(t *testing.T) {
	t.Parallel()

	r := newTestEngine(t)
	quiz := decodeQuiz(t, serve(r, http.MethodPost, "/quiz", ""))

	results := map[string]bool{}
	for _, answer := range quiz.Choices {
		submitted := quiz
		a := answer
		submitted.Answer = &a
		body, err := json.Marshal(submitted)
		require.NoError(t, err)

		w := serve(r, http.MethodPut, "/quiz", string(body))
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		next := decodeQuiz(t, w)
		require.NotNil(t, next.Result)
		assert.NotEqual(t, quiz.ID, next.ID)
		results[answer] = *next.Result
	}

	// exactly one of the two decks is right
	assert.NotEqual(t, results["dutch"], results["deutsch"])

	var stats map[string]model.DeckStats
	w := serve(r, http.MethodGet, "/stats", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	total := 0
	for _, s := range stats {
		total += s.Answered
	}
	assert.Equal(t, 2, total)
}

func TestQuizHandler_CheckAnswerErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  int
	}{
		{name: "broken json", body: `{"id":`, wantCode: http.StatusBadRequest, wantErr: CodeBadRequest},
		{name: "missing answer", body: `{"id":"q1","token":"t"}`, wantCode: http.StatusBadRequest, wantErr: CodeBadRequest},
		{name: "missing token", body: `{"id":"q1","answer":"dutch"}`, wantCode: http.StatusBadRequest, wantErr: CodeBadRequest},
		{name: "unknown answer", body: `{"id":"q1","token":"t","answer":"french"}`, wantCode: http.StatusUnprocessableEntity, wantErr: CodeInvalidAnswer},
		{name: "forged token", body: `{"id":"q1","token":"t","answer":"dutch"}`, wantCode: http.StatusUnprocessableEntity, wantErr: CodeInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := newTestEngine(t)
			w := serve(r, http.MethodPut, "/quiz", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)

			var errResp model.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
			assert.Equal(t, tt.wantErr, errResp.Code)
			assert.NotEmpty(t, errResp.Msg)
		})
	}
}
