// Package httpapi exposes the tutor over a JSON HTTP API. Handlers are
// thin: they bind input, call the service layer and map errors to
// status codes. All intelligence stays behind internal/tutor.
package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/praxislabs/praxis/internal/auth"
	"github.com/praxislabs/praxis/internal/store"
	"github.com/praxislabs/praxis/internal/tutor"
)

// Server is the praxis HTTP API.
type Server struct {
	store  *store.Store
	svc    *tutor.Service
	auth   *auth.Manager
	log    *zap.SugaredLogger
	engine *gin.Engine
}

// New builds a Server with all routes registered.
func New(st *store.Store, svc *tutor.Service, am *auth.Manager, log *zap.SugaredLogger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		store:  st,
		svc:    svc,
		auth:   am,
		log:    log,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), s.requestLogger())
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.engine.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)

	authed := api.Group("", s.requireAuth())
	{
		authed.POST("/challenges", s.handleStartChallenge)
		authed.GET("/challenges/:id", s.handleGetChallenge)
		authed.GET("/challenges/:id/solution", s.handleSolution)
		authed.GET("/challenges/:id/flowchart", s.handleFlowchart)
		authed.POST("/challenges/:id/attempts", s.handleSubmitAttempt)
		authed.GET("/challenges/:id/attempts", s.handleListAttempts)

		authed.GET("/recommendations", s.handleRecommendations)
		authed.GET("/skills", s.handleSkills)
		authed.GET("/skills/assessment", s.handleSkillAssessment)
		authed.GET("/skills/:id/history", s.handleSkillHistory)

		authed.POST("/paths", s.handleBuildPath)
		authed.GET("/paths", s.handleListPaths)
		authed.GET("/paths/:id/challenges", s.handlePathChallenges)

		authed.GET("/progress", s.handleProgress)
		authed.GET("/analytics/daily", s.handleDailyActivity)
		authed.GET("/analytics/hourly", s.handleHourlyActivity)
		authed.GET("/analytics/weekday", s.handleWeekdayActivity)
		authed.GET("/analytics/difficulty", s.handleDifficultyPerformance)
		authed.GET("/analytics/challenges", s.handleChallengeBreakdown)
		authed.GET("/analytics/categories", s.handleSkillCategories)
		authed.GET("/attempts/recent", s.handleRecentAttempts)

		authed.POST("/review", s.handleReview)
		authed.POST("/complexity", s.handleComplexity)
	}
}

// Handler returns the underlying http.Handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Infow("http api listening", "addr", addr)
	return s.engine.Run(addr)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
