package api

import (
	"errors"
	"net/http"

	"dod-quiz/internal/model"
	"dod-quiz/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CodeBadRequest    = 1
	CodeInvalidAnswer = 2
	CodeInvalidToken  = 3
	CodeInternal      = 5
)

type QuizHandler struct {
	quizService *service.QuizService
	log         *zap.Logger
}

func NewQuizHandler(quizService *service.QuizService, log *zap.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, log: log.Named("api")}
}

func abortWithError(c *gin.Context, status, code int, msg string) {
	c.AbortWithStatusJSON(status, model.ErrorResponse{Code: code, Msg: msg})
}

// CreateQuizHandler serves POST /quiz.
func (h *QuizHandler) CreateQuizHandler(c *gin.Context) {
	quiz, err := h.quizService.NewQuiz()
	if err != nil {
		h.log.Error("create quiz failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, CodeInternal, "could not create quiz")
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// CheckAnswerHandler serves PUT /quiz.
func (h *QuizHandler) CheckAnswerHandler(c *gin.Context) {
	var quiz model.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		abortWithError(c, http.StatusBadRequest, CodeBadRequest, "invalid quiz: "+err.Error())
		return
	}

	next, err := h.quizService.CheckAnswer(quiz)
	switch {
	case errors.Is(err, service.ErrInvalidAnswer):
		abortWithError(c, http.StatusUnprocessableEntity, CodeInvalidAnswer, err.Error())
		return
	case errors.Is(err, service.ErrInvalidToken):
		abortWithError(c, http.StatusUnprocessableEntity, CodeInvalidToken, err.Error())
		return
	case err != nil:
		h.log.Error("check answer failed", zap.String("id", quiz.ID), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, CodeInternal, "could not check answer")
		return
	}
	c.JSON(http.StatusOK, next)
}

func (h *QuizHandler) StatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.quizService.Stats())
}
