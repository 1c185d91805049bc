package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/codementor/internal/dto"
	"github.com/lshigami/codementor/internal/metrics"
	"github.com/lshigami/codementor/internal/model"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
)

// HintService runs the hint pipeline: cache lookup, prompt construction,
// rate-limited generation, validation, and static fallback.
type HintService interface {
	// GetOrGenerate returns a hint for the problem and level. The only
	// error it surfaces is an invalid level; every generation or quality
	// failure is absorbed by the fallback path.
	GetOrGenerate(ctx context.Context, problem *model.Problem, level int, previousHints []string, progress *dto.ProgressSnapshot) (string, error)
}

type hintService struct {
	generator GeminiLLMService
	cache     *gocache.Cache
}

func NewHintService(generator GeminiLLMService) HintService {
	return &hintService{
		generator: generator,
		cache:     gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *hintService) GetOrGenerate(ctx context.Context, problem *model.Problem, level int, previousHints []string, progress *dto.ProgressSnapshot) (string, error) {
	if level < 1 || level > 3 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidHintLevel, level)
	}

	log.Info().Str("title", problem.Title).Int("level", level).Msg("Generating hint")

	key := hintCacheKey(problem.Title, problem.Difficulty, level)
	if cached, found := s.cache.Get(key); found {
		metrics.HintCacheHitsTotal.Inc()
		metrics.HintsServedTotal.WithLabelValues("cache").Inc()
		log.Info().Str("key", key).Msg("Returning cached hint")
		return cached.(string), nil
	}
	metrics.HintCacheMissesTotal.Inc()

	prompt, err := BuildHintPrompt(problem, level, previousHints, progress)
	if err != nil {
		log.Error().Err(err).Str("title", problem.Title).Msg("Prompt construction failed, using fallback")
		return s.fallback(problem, level), nil
	}

	hint, err := s.generator.GenerateHintText(ctx, prompt)
	if err != nil {
		log.Error().Err(err).Str("title", problem.Title).Int("level", level).Msg("Hint generation failed, using fallback")
		return s.fallback(problem, level), nil
	}

	if !IsValidHint(hint, level) {
		metrics.HintValidationFailuresTotal.Inc()
		log.Warn().Str("title", problem.Title).Int("level", level).Msg("Generated hint failed validation, using fallback")
		return s.fallback(problem, level), nil
	}

	// First writer wins; a concurrent request may already have stored it.
	_ = s.cache.Add(key, hint, gocache.NoExpiration)
	metrics.HintsServedTotal.WithLabelValues("gemini").Inc()
	return hint, nil
}

// fallback classifies the problem and returns the canned hint. Fallback
// results are intentionally not cached so real generation is retried on the
// next request for the same key.
func (s *hintService) fallback(problem *model.Problem, level int) string {
	category := ClassifyProblem(problem.Title, problem.Description)
	metrics.HintsServedTotal.WithLabelValues("fallback").Inc()
	return FallbackHint(category, level)
}

// hintCacheKey normalizes (title, difficulty, level) into the process-local
// cache key.
func hintCacheKey(title, difficulty string, level int) string {
	key := fmt.Sprintf("%s_%s_%d", title, difficulty, level)
	return strings.ReplaceAll(strings.ToLower(key), " ", "_")
}
