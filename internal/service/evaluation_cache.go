package service

import (
	"career-compass/internal/cache"
	"career-compass/internal/domain"
	"career-compass/internal/dto"
	"career-compass/internal/logger"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// ErrEvaluationNotCached is returned when a cached evaluation is not found.
var ErrEvaluationNotCached = errors.New("evaluation not found in cache")

// EvaluationCacheService caches finished evaluation responses keyed by the
// request fingerprint. Evaluation is referentially transparent, so a cached
// response is byte-for-byte equivalent to a recomputed one.
type EvaluationCacheService interface {
	Put(ctx context.Context, fingerprint string, result *dto.EvaluationResponse) error
	Get(ctx context.Context, fingerprint string) (*dto.EvaluationResponse, error)
}

type evaluationCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewEvaluationCacheService creates a new evaluation cache service. A nil
// cache yields a no-op implementation so the server can run without Redis.
func NewEvaluationCacheService(cache domain.Cache, ttl time.Duration) EvaluationCacheService {
	if cache == nil {
		logger.Get().Warn("EvaluationCacheService initialized with nil cache. Service will be no-op.")
		return &noopEvaluationCacheService{}
	}
	return &evaluationCacheServiceImpl{
		cache: cache,
		ttl:   ttl,
	}
}

func (s *evaluationCacheServiceImpl) generateKey(fingerprint string) string {
	return cache.GenerateCacheKey("counsellor", "evaluation", fingerprint)
}

// Put stores an evaluation response in the cache.
func (s *evaluationCacheServiceImpl) Put(ctx context.Context, fingerprint string, result *dto.EvaluationResponse) error {
	if result == nil {
		return domain.NewInvalidInputError("cannot cache nil evaluation")
	}

	key := s.generateKey(fingerprint)
	dataBytes, err := json.Marshal(result)
	if err != nil {
		logger.Get().Error("Failed to marshal evaluation for caching", zap.Error(err), zap.String("fingerprint", fingerprint))
		return domain.NewInternalError("failed to marshal evaluation for caching", err)
	}

	if err := s.cache.Set(ctx, key, string(dataBytes), s.ttl); err != nil {
		logger.Get().Error("Failed to cache evaluation", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set evaluation to cache for key %s", key), err)
	}
	logger.Get().Debug("Successfully cached evaluation", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves an evaluation response from the cache.
func (s *evaluationCacheServiceImpl) Get(ctx context.Context, fingerprint string) (*dto.EvaluationResponse, error) {
	key := s.generateKey(fingerprint)
	dataString, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Evaluation cache miss", zap.String("key", key))
			return nil, ErrEvaluationNotCached
		}
		logger.Get().Error("Failed to get evaluation from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get evaluation from cache for key %s", key), err)
	}

	if dataString == "" {
		return nil, ErrEvaluationNotCached
	}

	var result dto.EvaluationResponse
	if err := json.Unmarshal([]byte(dataString), &result); err != nil {
		logger.Get().Error("Failed to unmarshal evaluation from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal evaluation from cache for key %s", key), err)
	}

	return &result, nil
}

// noopEvaluationCacheService is used when caching is disabled.
type noopEvaluationCacheService struct{}

func (s *noopEvaluationCacheService) Put(ctx context.Context, fingerprint string, result *dto.EvaluationResponse) error {
	return nil
}

func (s *noopEvaluationCacheService) Get(ctx context.Context, fingerprint string) (*dto.EvaluationResponse, error) {
	return nil, ErrEvaluationNotCached
}
