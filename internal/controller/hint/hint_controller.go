package hint

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/codementor/internal/controller/middleware"
	"github.com/lshigami/codementor/internal/dto"
	"github.com/lshigami/codementor/internal/metrics"
	"github.com/lshigami/codementor/internal/model"
	"github.com/lshigami/codementor/internal/repository"
	"github.com/lshigami/codementor/internal/service"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type HintController struct {
	hintService  service.HintService
	problemRepo  repository.ProblemRepository
	hintRepo     repository.HintRepository
	progressRepo repository.UserProgressRepository
}

func NewHintController(
	hintService service.HintService,
	problemRepo repository.ProblemRepository,
	hintRepo repository.HintRepository,
	progressRepo repository.UserProgressRepository,
) *HintController {
	return &HintController{
		hintService:  hintService,
		problemRepo:  problemRepo,
		hintRepo:     hintRepo,
		progressRepo: progressRepo,
	}
}

// Generate godoc
// @Summary Generate a hint for a problem
// @Description Returns the stored hint for this (user, problem, level) if one exists; otherwise runs the generation pipeline and persists the result.
// @Tags Hints
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.HintGenerateRequest true "Hint request"
// @Success 200 {object} dto.HintResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payload or hint level"
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse "Problem not found"
// @Failure 500 {object} dto.ErrorResponse
// @Router /hints/generate [post]
func (c *HintController) Generate(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var req dto.HintGenerateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	problem, err := c.problemRepo.FindFirstByPlatformID(req.ProblemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Problem not found"})
			return
		}
		log.Error().Err(err).Str("problem_id", req.ProblemID).Msg("Generate: problem lookup failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to look up problem"})
		return
	}

	// The persisted hint is senior to any in-process cache: once issued for
	// this (user, problem, level) it is returned verbatim, no re-generation.
	if existing, err := c.hintRepo.FindByUserProblemLevel(user.ID, problem.ID, req.Level); err == nil {
		metrics.HintsServedTotal.WithLabelValues("database").Inc()
		ctx.JSON(http.StatusOK, dto.HintResponse{Hint: existing.Content})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Msg("Generate: hint lookup failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to look up hint"})
		return
	}

	previousHints, err := c.lowerLevelHints(user.ID, problem.ID, req.Level)
	if err != nil {
		log.Error().Err(err).Msg("Generate: previous hints lookup failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to look up previous hints"})
		return
	}

	content, err := c.hintService.GetOrGenerate(ctx.Request.Context(), problem, req.Level, previousHints, req.UserProgress)
	if err != nil {
		if errors.Is(err, service.ErrInvalidHintLevel) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
			return
		}
		log.Error().Err(err).Uint("problemID", problem.ID).Int("level", req.Level).Msg("Generate: hint pipeline error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to generate hint"})
		return
	}

	hint := &model.Hint{
		UserID:    user.ID,
		ProblemID: problem.ID,
		Level:     req.Level,
		Content:   content,
	}
	if err := c.hintRepo.Create(hint); err != nil {
		log.Error().Err(err).Uint("problemID", problem.ID).Int("level", req.Level).Msg("Generate: failed to persist hint")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store hint"})
		return
	}
	if err := c.progressRepo.IncrementHintsUsed(user.ID, problem.ID); err != nil {
		// The hint is already issued; a progress bookkeeping failure is not
		// worth failing the request over.
		log.Warn().Err(err).Uint("userID", user.ID).Uint("problemID", problem.ID).Msg("Generate: failed to update progress")
	}

	ctx.JSON(http.StatusOK, dto.HintResponse{Hint: content})
}

// Track godoc
// @Summary Track a client analytics event
// @Tags Analytics
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body object true "Arbitrary event payload"
// @Success 200 {object} dto.TrackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /analytics/track [post]
func (c *HintController) Track(ctx *gin.Context) {
	user, ok := middleware.CurrentUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Unauthorized"})
		return
	}

	var event map[string]any
	if err := ctx.ShouldBindJSON(&event); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid event payload", Details: []string{err.Error()}})
		return
	}

	log.Info().Uint("userID", user.ID).Interface("event", event).Msg("Analytics event")
	ctx.JSON(http.StatusOK, dto.TrackResponse{Status: "tracked"})
}

// lowerLevelHints returns the user's stored hints for the strictly lower
// levels, ordered so index 0 is the level-1 hint. Gaps stay empty; the prompt
// builder substitutes placeholders for them.
func (c *HintController) lowerLevelHints(userID, problemID uint, level int) ([]string, error) {
	if level <= 1 {
		return nil, nil
	}

	hints, err := c.hintRepo.FindByUserAndProblem(userID, problemID)
	if err != nil {
		return nil, err
	}

	previous := make([]string, level-1)
	for _, h := range hints {
		if h.Level >= 1 && h.Level < level {
			previous[h.Level-1] = h.Content
		}
	}
	return previous, nil
}
