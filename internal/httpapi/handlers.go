package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/praxislabs/praxis/internal/auth"
	"github.com/praxislabs/praxis/internal/store"
	"github.com/praxislabs/praxis/internal/tutor"
)

// fail maps service errors onto HTTP status codes. Unrecognized errors
// become 502 when the oracle was involved upstream, so the default here
// is 500 and oracle-heavy handlers override where needed.
func (s *Server) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrUnknownLanguage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, auth.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, tutor.ErrNoSkillHistory):
		c.JSON(http.StatusNotFound, gin.H{"error": "no skill history yet; attempt some challenges first"})
	default:
		s.log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream failure"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

func intQuery(c *gin.Context, name string, def int) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Email    string `json:"email"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}

	user, err := s.auth.Register(c.Request.Context(), req.Username, req.Password, req.Email)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
	})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "username and password are required")
		return
	}

	token, user, err := s.auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

type startChallengeRequest struct {
	Prompt     string `json:"prompt" binding:"required"`
	Language   string `json:"language" binding:"required"`
	Difficulty int    `json:"difficulty"`
}

func (s *Server) handleStartChallenge(c *gin.Context) {
	var req startChallengeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "prompt and language are required")
		return
	}

	started, err := s.svc.StartChallenge(c.Request.Context(), tutor.StartChallengeParams{
		Prompt:     req.Prompt,
		Language:   req.Language,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"challenge": started.Challenge,
		"guidance":  started.Guidance,
		"skills":    started.Skills,
	})
}

func (s *Server) handleGetChallenge(c *gin.Context) {
	challenge, err := s.store.Challenges().ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	// The solution is a separate, deliberate request.
	challenge.Solution = ""
	c.JSON(http.StatusOK, challenge)
}

func (s *Server) handleSolution(c *gin.Context) {
	solution, err := s.svc.EnsureSolution(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"solution": solution})
}

func (s *Server) handleFlowchart(c *gin.Context) {
	chart, err := s.svc.Flowchart(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"mermaid": chart})
}

type submitAttemptRequest struct {
	Code      string `json:"code" binding:"required"`
	TimeSpent int    `json:"time_spent"`
}

func (s *Server) handleSubmitAttempt(c *gin.Context) {
	var req submitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code is required")
		return
	}

	report, err := s.svc.SubmitAttempt(c.Request.Context(), tutor.SubmitAttemptParams{
		UserID:      currentUserID(c),
		ChallengeID: c.Param("id"),
		Code:        req.Code,
		TimeSpent:   req.TimeSpent,
	})
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"attempt":    report.Attempt,
		"feedback":   report.Feedback,
		"evaluation": report.Evaluation,
		"passed":     report.Passed,
	})
}

func (s *Server) handleListAttempts(c *gin.Context) {
	attempts, err := s.store.Attempts().ForChallenge(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

func (s *Server) handleRecommendations(c *gin.Context) {
	limit := intQuery(c, "limit", 5)
	recs, err := s.svc.Recommend(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

func (s *Server) handleSkills(c *gin.Context) {
	profs, err := s.store.Skills().Proficiencies(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"skills": profs})
}

func (s *Server) handleSkillAssessment(c *gin.Context) {
	report, err := s.svc.AssessSkills(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"analysis":        report.Analysis,
		"recommendations": report.Recommendations,
		"strongest":       report.Strongest,
		"weakest":         report.Weakest,
	})
}

func (s *Server) handleSkillHistory(c *gin.Context) {
	skillID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "skill id must be an integer")
		return
	}
	points, err := s.store.Progress().SkillHistory(c.Request.Context(), currentUserID(c), skillID)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": points})
}

type buildPathRequest struct {
	Language string `json:"language" binding:"required"`
}

func (s *Server) handleBuildPath(c *gin.Context) {
	var req buildPathRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "language is required")
		return
	}

	path, err := s.svc.BuildLearningPath(c.Request.Context(), currentUserID(c), req.Language)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, path)
}

func (s *Server) handleListPaths(c *gin.Context) {
	language := c.Query("language")
	if language == "" {
		badRequest(c, "language query parameter is required")
		return
	}
	paths, err := s.store.Paths().ByLanguage(c.Request.Context(), language)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paths": paths})
}

func (s *Server) handlePathChallenges(c *gin.Context) {
	items, err := s.store.Paths().Challenges(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	for i := range items {
		items[i].Solution = ""
	}
	c.JSON(http.StatusOK, gin.H{"challenges": items})
}

func (s *Server) handleProgress(c *gin.Context) {
	summary, err := s.store.Progress().Summary(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (s *Server) handleDailyActivity(c *gin.Context) {
	days := intQuery(c, "days", 30)
	series, err := s.store.Progress().DailyActivity(c.Request.Context(), currentUserID(c), days)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (s *Server) handleHourlyActivity(c *gin.Context) {
	series, err := s.store.Progress().HourlyActivity(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (s *Server) handleWeekdayActivity(c *gin.Context) {
	series, err := s.store.Progress().WeekdayActivity(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series})
}

func (s *Server) handleDifficultyPerformance(c *gin.Context) {
	stats, err := s.store.Progress().DifficultyPerformance(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"difficulty": stats})
}

func (s *Server) handleChallengeBreakdown(c *gin.Context) {
	stats, err := s.store.Progress().ChallengeBreakdown(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"challenges": stats})
}

func (s *Server) handleSkillCategories(c *gin.Context) {
	stats, err := s.store.Progress().SkillsByCategory(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": stats})
}

func (s *Server) handleRecentAttempts(c *gin.Context) {
	limit := intQuery(c, "limit", 10)
	attempts, err := s.store.Attempts().Recent(c.Request.Context(), currentUserID(c), limit)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

type codeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (s *Server) handleReview(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code is required")
		return
	}
	review, err := s.svc.Review(c.Request.Context(), req.Code)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", review)
}

func (s *Server) handleComplexity(c *gin.Context) {
	var req codeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "code is required")
		return
	}
	analysis, err := s.svc.Complexity(c.Request.Context(), req.Code)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
