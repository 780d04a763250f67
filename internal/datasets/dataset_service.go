package datasets

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"spansim/internal/cache"
	"spansim/internal/models"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/metrics"
	"spansim/internal/shared/svcerrors"
	"spansim/internal/upstream"
)

const cacheKeyPrefix = "datasets"

//go:generate mockgen -source=dataset_service.go -destination=./mocks/dataset_service_mock.go -package=mocks
type Service interface {
	// GetDataset returns the grouped span counts for the scope, serving a
	// cached snapshot when a fresh entry exists.
	GetDataset(ctx context.Context, scope models.Scope) (*models.Dataset, error)
	// GetAttributeValues returns the distinct observed values of one attribute
	// across the scope's dataset, deduplicated case-insensitively with the
	// first-seen casing kept.
	GetAttributeValues(ctx context.Context, scope models.Scope, attribute string) ([]string, error)
}

type datasetService struct {
	spanGroupsAPI upstream.SpanGroupsAPI
	cache         cache.Cache
	cacheTTL      time.Duration
}

func NewDatasetService(spanGroupsAPI upstream.SpanGroupsAPI, c cache.Cache, cacheTTL time.Duration) Service {
	return &datasetService{
		spanGroupsAPI: spanGroupsAPI,
		cache:         c,
		cacheTTL:      cacheTTL,
	}
}

func (s *datasetService) GetDataset(ctx context.Context, scope models.Scope) (*models.Dataset, error) {
	if err := validateScope(scope); err != nil {
		metricDatasetFetchesTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}

	logger := loggers.Ctx(ctx)
	key := datasetCacheKey(scope)

	if dataset := s.fromCache(ctx, key); dataset != nil {
		metricDatasetFetchesTotal.WithLabelValues(metrics.ValueNoError).Inc()
		return dataset, nil
	}

	dataset, err := s.spanGroupsAPI.FetchSpanGroups(ctx, scope)
	if err != nil {
		errorCode := codeValidationFailed
		if svcErr, ok := svcerrors.AsServiceError(err); ok {
			errorCode = svcErr.Code
		}
		metricDatasetFetchesTotal.WithLabelValues(errorCode).Inc()
		return nil, err
	}

	s.toCache(ctx, key, dataset)
	logger.Debug().Msgf("fetched dataset with %d groups for scope: %s", len(dataset.Groups), scope.String())

	metricDatasetFetchesTotal.WithLabelValues(metrics.ValueNoError).Inc()
	return dataset, nil
}

func (s *datasetService) GetAttributeValues(ctx context.Context, scope models.Scope, attribute string) ([]string, error) {
	if !models.IsAttributeName(attribute) {
		return nil, errUnknownAttribute(attribute)
	}

	dataset, err := s.GetDataset(ctx, scope)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, group := range dataset.Groups {
		value, ok := group.Value(attribute)
		if !ok || value == "" {
			continue
		}
		lower := strings.ToLower(value)
		if _, dup := seen[lower]; dup {
			continue
		}
		seen[lower] = struct{}{}
		values = append(values, value)
	}
	sort.Strings(values)

	return values, nil
}

// fromCache returns the cached dataset for key, or nil when there is none.
// Cache failures are never fatal for reads; the caller falls through to the
// upstream API.
func (s *datasetService) fromCache(ctx context.Context, key string) *models.Dataset {
	logger := loggers.Ctx(ctx)

	buf, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Warn().Err(err).Msgf("dataset cache read failed for key: %s", key)
		return nil
	}
	if buf == nil {
		return nil
	}

	var dataset models.Dataset
	if err := json.Unmarshal(buf, &dataset); err != nil {
		logger.Warn().Err(err).Msgf("dropping undecodable dataset cache entry for key: %s", key)
		_ = s.cache.Delete(ctx, key)
		return nil
	}
	return &dataset
}

func (s *datasetService) toCache(ctx context.Context, key string, dataset *models.Dataset) {
	buf, err := json.Marshal(dataset)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, buf, s.cacheTTL); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msgf("dataset cache write failed for key: %s", key)
	}
}

func validateScope(scope models.Scope) *svcerrors.ServiceError {
	if scope.Organization == "" {
		return errValidationFailed("organization is required")
	}
	if scope.Project == "" {
		return errValidationFailed("project is required")
	}
	if scope.PeriodDays <= 0 {
		return errValidationFailed("periodDays must be positive")
	}
	return nil
}

func datasetCacheKey(scope models.Scope) string {
	return fmt.Sprintf("%s/%s", cacheKeyPrefix, scope.String())
}
