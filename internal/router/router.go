package router

import (
	"net/http"

	"dod-quiz/internal/api"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Options struct {
	AllowedOrigins []string
	ForceHTTPS     bool
	AssetsDir      string
}

func SetupRouter(quizHandler *api.QuizHandler, opts Options, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(api.RequestLogger(log), gin.Recovery())

	if len(opts.AllowedOrigins) > 0 {
		config := cors.DefaultConfig()
		config.AllowOrigins = opts.AllowedOrigins
		r.Use(cors.New(config))
	}

	if opts.ForceHTTPS {
		r.Use(api.ForceHTTPS())
	}

	if opts.AssetsDir != "" {
		r.Static("/assets", opts.AssetsDir)
	}

	r.POST("/quiz", quizHandler.CreateQuizHandler)
	r.PUT("/quiz", quizHandler.CheckAnswerHandler)

	apiV1 := r.Group("/api/v1")
	{
		apiV1.GET("/stats", quizHandler.StatsHandler)
		apiV1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "UP"})
		})
	}

	return r
}
