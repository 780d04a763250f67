package rulesets

import (
	"context"
	"errors"

	"spansim/internal/models"
)

var (
	ErrRuleSetNotFound      = errors.New("rule set not found")
	ErrRuleSetAlreadyExists = errors.New("rule set already exists")
)

// Store persists saved rule sets. A rule set name is unique within its
// organization/project scope; Create and Update report a clash as
// ErrRuleSetAlreadyExists.
//
//go:generate mockgen -source=rule_set_store.go -destination=./mocks/rule_set_store_mock.go -package=mocks
type Store interface {
	Create(ctx context.Context, ruleSet *models.RuleSet) error
	Get(ctx context.Context, id string) (*models.RuleSet, error)
	List(ctx context.Context, organization string, project string) ([]*models.RuleSet, error)
	Update(ctx context.Context, ruleSet *models.RuleSet) error
	Delete(ctx context.Context, id string) error
	Close() error
}
