package problem

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
	"github.com/lshigami/codementor/internal/dto"
	"github.com/lshigami/codementor/internal/model"
	"github.com/lshigami/codementor/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ProblemController struct {
	problemRepo repository.ProblemRepository
}

func NewProblemController(problemRepo repository.ProblemRepository) *ProblemController {
	return &ProblemController{problemRepo: problemRepo}
}

// Detect godoc
// @Summary Register a detected problem
// @Description Stores a problem detected by the client. Returns the existing record if the (platform_id, platform) pair is already known.
// @Tags Problems
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param problem body dto.ProblemDetectRequest true "Detected problem"
// @Success 200 {object} dto.ProblemResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /problems/detect [post]
func (c *ProblemController) Detect(ctx *gin.Context) {
	var req dto.ProblemDetectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return
	}

	existing, err := c.problemRepo.FindByPlatformID(req.ID, req.Platform)
	if err == nil {
		ctx.JSON(http.StatusOK, toProblemResponse(existing))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error().Err(err).Str("platform_id", req.ID).Msg("Detect: problem lookup failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to look up problem"})
		return
	}

	examples, err := json.Marshal(req.Examples)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid examples payload"})
		return
	}
	constraints, err := json.Marshal(req.Constraints)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid constraints payload"})
		return
	}

	prob := &model.Problem{
		PlatformID:  req.ID,
		Platform:    req.Platform,
		Title:       req.Title,
		Difficulty:  req.Difficulty,
		Description: req.Description,
		URL:         req.URL,
		Examples:    examples,
		Constraints: constraints,
	}
	if err := c.problemRepo.Create(prob); err != nil {
		log.Error().Err(err).Str("title", req.Title).Msg("Detect: failed to store problem")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to store problem"})
		return
	}

	log.Info().Uint("problemID", prob.ID).Str("title", prob.Title).Str("platform", prob.Platform).Msg("Problem registered")
	ctx.JSON(http.StatusOK, toProblemResponse(prob))
}

func toProblemResponse(p *model.Problem) dto.ProblemResponse {
	var resp dto.ProblemResponse
	// copier maps the shared fields; the JSON columns are deliberately left
	// out of the response DTO.
	_ = copier.Copy(&resp, p)
	return resp
}
