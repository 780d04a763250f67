package rulesets

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"spansim/internal/models"
	"spansim/internal/shared/loggers"
	"spansim/internal/shared/metrics"
	"spansim/internal/shared/svcerrors"
	"spansim/internal/shared/ulid"
)

const maxRulesPerSet = 64

// RuleSetInput carries the caller-supplied fields of a rule set. ID and
// timestamps are assigned by the service.
type RuleSetInput struct {
	Organization string
	Project      string
	Name         string
	Description  string
	Rules        []models.Rule
}

//go:generate mockgen -source=rule_set_service.go -destination=./mocks/rule_set_service_mock.go -package=mocks
type Service interface {
	CreateRuleSet(ctx context.Context, input *RuleSetInput) (*models.RuleSet, error)
	GetRuleSet(ctx context.Context, id string) (*models.RuleSet, error)
	ListRuleSets(ctx context.Context, organization string, project string) ([]*models.RuleSet, error)
	UpdateRuleSet(ctx context.Context, id string, input *RuleSetInput) (*models.RuleSet, error)
	DeleteRuleSet(ctx context.Context, id string) error
}

type ruleSetService struct {
	store Store
}

func NewRuleSetService(store Store) Service {
	return &ruleSetService{store: store}
}

func (s *ruleSetService) CreateRuleSet(ctx context.Context, input *RuleSetInput) (*models.RuleSet, error) {
	if err := validateInput(input); err != nil {
		metricRuleSetOperationsTotal.WithLabelValues(opCreate, err.Code).Inc()
		return nil, err
	}

	now := time.Now().UTC()
	ruleSet := &models.RuleSet{
		ID:           ulid.NewULID(),
		Organization: input.Organization,
		Project:      input.Project,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Rules:        input.Rules,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.Create(ctx, ruleSet); err != nil {
		if errors.Is(err, ErrRuleSetAlreadyExists) {
			svcErr := errRuleSetAlreadyExists(ruleSet.Name, err)
			metricRuleSetOperationsTotal.WithLabelValues(opCreate, svcErr.Code).Inc()
			return nil, svcErr
		}
		svcErr := errInternalStoreFailed(err)
		metricRuleSetOperationsTotal.WithLabelValues(opCreate, svcErr.Code).Inc()
		return nil, svcErr
	}

	loggers.Ctx(ctx).Debug().Str(loggers.FieldRuleSetID, ruleSet.ID).Msg("created rule set")
	metricRuleSetOperationsTotal.WithLabelValues(opCreate, metrics.ValueNoError).Inc()
	return ruleSet, nil
}

func (s *ruleSetService) GetRuleSet(ctx context.Context, id string) (*models.RuleSet, error) {
	if id == "" {
		svcErr := errValidationFailed("id is required")
		metricRuleSetOperationsTotal.WithLabelValues(opGet, svcErr.Code).Inc()
		return nil, svcErr
	}

	ruleSet, err := s.store.Get(ctx, id)
	if err != nil {
		svcErr := mapStoreError(id, err)
		metricRuleSetOperationsTotal.WithLabelValues(opGet, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricRuleSetOperationsTotal.WithLabelValues(opGet, metrics.ValueNoError).Inc()
	return ruleSet, nil
}

func (s *ruleSetService) ListRuleSets(ctx context.Context, organization string, project string) ([]*models.RuleSet, error) {
	if organization == "" {
		svcErr := errValidationFailed("organization is required")
		metricRuleSetOperationsTotal.WithLabelValues(opList, svcErr.Code).Inc()
		return nil, svcErr
	}
	if project == "" {
		svcErr := errValidationFailed("project is required")
		metricRuleSetOperationsTotal.WithLabelValues(opList, svcErr.Code).Inc()
		return nil, svcErr
	}

	ruleSets, err := s.store.List(ctx, organization, project)
	if err != nil {
		svcErr := errInternalStoreFailed(err)
		metricRuleSetOperationsTotal.WithLabelValues(opList, svcErr.Code).Inc()
		return nil, svcErr
	}

	metricRuleSetOperationsTotal.WithLabelValues(opList, metrics.ValueNoError).Inc()
	return ruleSets, nil
}

func (s *ruleSetService) UpdateRuleSet(ctx context.Context, id string, input *RuleSetInput) (*models.RuleSet, error) {
	if id == "" {
		svcErr := errValidationFailed("id is required")
		metricRuleSetOperationsTotal.WithLabelValues(opUpdate, svcErr.Code).Inc()
		return nil, svcErr
	}
	if err := validateInput(input); err != nil {
		metricRuleSetOperationsTotal.WithLabelValues(opUpdate, err.Code).Inc()
		return nil, err
	}

	existing, err := s.store.Get(ctx, id)
	if err != nil {
		svcErr := mapStoreError(id, err)
		metricRuleSetOperationsTotal.WithLabelValues(opUpdate, svcErr.Code).Inc()
		return nil, svcErr
	}

	// The scope of a rule set is fixed at creation.
	if input.Organization != existing.Organization {
		svcErr := errValidationFailed("organization cannot be changed")
		metricRuleSetOperationsTotal.WithLabelValues(opUpdate, svcErr.Code).Inc()
		return nil, svcErr
	}
	if input.Project != existing.Project {
		svcErr := errValidationFailed("project cannot be changed")
		metricRuleSetOperationsTotal.WithLabelValues(opUpdate, svcErr.Code).Inc()
		return nil, svcErr
	}

	updated := &models.RuleSet{
		ID:           existing.ID,
		Organization: existing.Organization,
		Project:      existing.Project,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Rules:        input.Rules,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.store.Update(ctx, updated); err != nil {
		var svcErr *svcerrors.ServiceError
		if errors.Is(err, ErrRuleSetAlreadyExists) {
			svcErr = errRuleSetAlreadyExists(updated.Name, err)
		} else {
			svcErr = mapStoreError(id, err)
		}
		metricRuleSetOperationsTotal.WithLabelValues(opUpdate, svcErr.Code).Inc()
		return nil, svcErr
	}

	loggers.Ctx(ctx).Debug().Str(loggers.FieldRuleSetID, updated.ID).Msg("updated rule set")
	metricRuleSetOperationsTotal.WithLabelValues(opUpdate, metrics.ValueNoError).Inc()
	return updated, nil
}

func (s *ruleSetService) DeleteRuleSet(ctx context.Context, id string) error {
	if id == "" {
		svcErr := errValidationFailed("id is required")
		metricRuleSetOperationsTotal.WithLabelValues(opDelete, svcErr.Code).Inc()
		return svcErr
	}

	if err := s.store.Delete(ctx, id); err != nil {
		svcErr := mapStoreError(id, err)
		metricRuleSetOperationsTotal.WithLabelValues(opDelete, svcErr.Code).Inc()
		return svcErr
	}

	loggers.Ctx(ctx).Debug().Str(loggers.FieldRuleSetID, id).Msg("deleted rule set")
	metricRuleSetOperationsTotal.WithLabelValues(opDelete, metrics.ValueNoError).Inc()
	return nil
}

func mapStoreError(id string, err error) *svcerrors.ServiceError {
	if errors.Is(err, ErrRuleSetNotFound) {
		return errRuleSetNotFound(id)
	}
	return errInternalStoreFailed(err)
}

func validateInput(input *RuleSetInput) *svcerrors.ServiceError {
	if input == nil {
		return errValidationFailed("request body is required")
	}
	if input.Organization == "" {
		return errValidationFailed("organization is required")
	}
	if input.Project == "" {
		return errValidationFailed("project is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return errValidationFailed("name is required")
	}
	if len(input.Rules) > maxRulesPerSet {
		return errValidationFailed(fmt.Sprintf("too many rules: max %d", maxRulesPerSet))
	}
	for i, rule := range input.Rules {
		if err := validateRule(rule, i); err != nil {
			return err
		}
	}
	return nil
}

func validateRule(rule models.Rule, index int) *svcerrors.ServiceError {
	if rule.Rate < 0 || rule.Rate > 100 {
		return errValidationFailed(fmt.Sprintf("rule at index %d: rate must be between 0 and 100", index))
	}

	// An empty operator falls back to contains at evaluation time.
	switch rule.Operator {
	case "", models.OperatorEquals, models.OperatorContains, models.OperatorStartsWith, models.OperatorEndsWith, models.OperatorRegex:
	default:
		return errValidationFailed(fmt.Sprintf("rule at index %d: unsupported operator: %q", index, rule.Operator))
	}

	// Empty attribute marks the rule inactive; anything else must name a
	// schema attribute.
	if rule.Attribute != "" && !models.IsAttributeName(rule.Attribute) {
		return errValidationFailed(fmt.Sprintf("rule at index %d: unknown attribute: %q", index, rule.Attribute))
	}
	return nil
}
