package rulesets

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"spansim/internal/models"

	_ "modernc.org/sqlite"
)

const schemaRuleSets = `
CREATE TABLE IF NOT EXISTS rule_sets (
    id TEXT PRIMARY KEY,
    organization TEXT NOT NULL,
    project TEXT NOT NULL,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    rules TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_rule_sets_scope_name ON rule_sets(organization, project, name);
CREATE INDEX IF NOT EXISTS idx_rule_sets_scope ON rule_sets(organization, project);
`

type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the rule set database at dbPath.
// Uses modernc.org/sqlite, so no CGO is required.
func NewSQLiteStore(dbPath string) (Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	if _, err := db.Exec(schemaRuleSets); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply rule set schema: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Create(ctx context.Context, ruleSet *models.RuleSet) error {
	rulesJSON, err := json.Marshal(ruleSet.Rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	query := `
		INSERT INTO rule_sets (id, organization, project, name, description, rules, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		ruleSet.ID, ruleSet.Organization, ruleSet.Project,
		ruleSet.Name, ruleSet.Description, string(rulesJSON),
		ruleSet.CreatedAt, ruleSet.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRuleSetAlreadyExists
		}
		return fmt.Errorf("failed to insert rule set: %w", err)
	}
	return nil
}

func (s *sqliteStore) Get(ctx context.Context, id string) (*models.RuleSet, error) {
	query := `
		SELECT id, organization, project, name, description, rules, created_at, updated_at
		FROM rule_sets
		WHERE id = ?
	`
	ruleSet, err := scanRuleSet(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRuleSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rule set: %w", err)
	}
	return ruleSet, nil
}

func (s *sqliteStore) List(ctx context.Context, organization string, project string) ([]*models.RuleSet, error) {
	query := `
		SELECT id, organization, project, name, description, rules, created_at, updated_at
		FROM rule_sets
		WHERE organization = ? AND project = ?
		ORDER BY name ASC
	`
	rows, err := s.db.QueryContext(ctx, query, organization, project)
	if err != nil {
		return nil, fmt.Errorf("failed to list rule sets: %w", err)
	}
	defer rows.Close()

	ruleSets := make([]*models.RuleSet, 0)
	for rows.Next() {
		ruleSet, err := scanRuleSet(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan rule set: %w", err)
		}
		ruleSets = append(ruleSets, ruleSet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate rule sets: %w", err)
	}
	return ruleSets, nil
}

func (s *sqliteStore) Update(ctx context.Context, ruleSet *models.RuleSet) error {
	rulesJSON, err := json.Marshal(ruleSet.Rules)
	if err != nil {
		return fmt.Errorf("failed to marshal rules: %w", err)
	}

	// Organization and project are fixed at creation; only the mutable
	// columns are written here.
	query := `
		UPDATE rule_sets
		SET name = ?, description = ?, rules = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		ruleSet.Name, ruleSet.Description, string(rulesJSON), ruleSet.UpdatedAt, ruleSet.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrRuleSetAlreadyExists
		}
		return fmt.Errorf("failed to update rule set: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrRuleSetNotFound
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM rule_sets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete rule set: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrRuleSetNotFound
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRuleSet(row rowScanner) (*models.RuleSet, error) {
	var ruleSet models.RuleSet
	var rulesJSON string

	err := row.Scan(
		&ruleSet.ID, &ruleSet.Organization, &ruleSet.Project,
		&ruleSet.Name, &ruleSet.Description, &rulesJSON,
		&ruleSet.CreatedAt, &ruleSet.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(rulesJSON), &ruleSet.Rules); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules column: %w", err)
	}
	return &ruleSet, nil
}

// isUniqueViolation matches the driver's UNIQUE constraint error. The
// modernc driver reports it only through the message text.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
