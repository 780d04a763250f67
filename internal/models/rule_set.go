package models

import "time"

// RuleSet is a named, persisted collection of sampling rules scoped to one
// organization and project, so candidate configurations can be iterated on
// across simulation runs.
type RuleSet struct {
	ID           string    `json:"id"`
	Organization string    `json:"organization"`
	Project      string    `json:"project"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Rules        []Rule    `json:"rules"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
