package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"spansim/internal/models"
	"spansim/internal/shared/configs"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/metrics"
)

// spanCountsResponse mirrors the telemetry backend's span-counts payload.
// Group rows carry the attribute columns flattened next to the count, and
// meta.total is the backend's authoritative row count across all groups,
// including groups beyond the requested limit.
type spanCountsResponse struct {
	Data []models.SpanGroup `json:"data"`
	Meta spanCountsMeta     `json:"meta"`
}

type spanCountsMeta struct {
	Total *int64 `json:"total,omitempty"`
}

//go:generate mockgen -source=span_groups_api.go -destination=./mocks/span_groups_api_mock.go -package=mocks
type SpanGroupsAPI interface {
	// FetchSpanGroups retrieves grouped span counts for the given scope.
	FetchSpanGroups(ctx context.Context, scope models.Scope) (*models.Dataset, error)
}

type spanGroupsClient struct {
	baseURL    string
	token      string
	maxGroups  int
	httpClient *http.Client
}

func NewSpanGroupsClient(cfg configs.UpstreamConfig) SpanGroupsAPI {
	return &spanGroupsClient{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.Token,
		maxGroups: cfg.MaxGroups,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}
}

func (c *spanGroupsClient) FetchSpanGroups(ctx context.Context, scope models.Scope) (*models.Dataset, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Msgf("started fetching span groups for scope: %s", scope.String())

	req, err := c.newSpanCountsRequest(ctx, scope)
	if err != nil {
		metricUpstreamRequestsTotal.WithLabelValues(codeInternalRequestFailed).Inc()
		return nil, errInternalRequestFailed(err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metricUpstreamRequestDuration.WithLabelValues().Observe(time.Since(start).Seconds())
	if err != nil {
		metricUpstreamRequestsTotal.WithLabelValues(codeInternalRequestFailed).Inc()
		return nil, errInternalRequestFailed(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metricUpstreamRequestsTotal.WithLabelValues(codeScopeNotFound).Inc()
		return nil, errScopeNotFound(scope)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		metricUpstreamRequestsTotal.WithLabelValues(codeInternalUnexpectedStatus).Inc()
		return nil, errInternalUnexpectedStatus(resp.StatusCode)
	}

	var payload spanCountsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		metricUpstreamRequestsTotal.WithLabelValues(codeInternalDecodeFailed).Inc()
		return nil, errInternalDecodeFailed(err)
	}

	metricUpstreamRequestsTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Debug().Msgf("fetched %d span groups for scope: %s", len(payload.Data), scope.String())

	return &models.Dataset{
		Groups:        payload.Data,
		DeclaredTotal: payload.Meta.Total,
	}, nil
}

func (c *spanGroupsClient) newSpanCountsRequest(ctx context.Context, scope models.Scope) (*http.Request, error) {
	endpoint := fmt.Sprintf("%s/api/0/organizations/%s/sampling/span-counts",
		c.baseURL, url.PathEscape(scope.Organization))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("project", scope.Project)
	q.Set("statsPeriod", fmt.Sprintf("%dd", scope.PeriodDays))
	q.Set("limit", strconv.Itoa(c.maxGroups))
	req.URL.RawQuery = q.Encode()

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}
