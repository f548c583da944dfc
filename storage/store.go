// Package storage persists generated plan summaries in SQL. SQLite is used by
// default, PostgreSQL when configured.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/giygas/protocols-api/entities"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var ErrNotFound = errors.New("plan not found")

// Store keeps plans in the protocol_plans table
type Store struct {
	db     *sql.DB
	driver string
	newID  func() string
}

// Open connects to the database and creates the schema when missing
func Open(ctx context.Context, driver, dsn string) (*Store, error) {
	switch driver {
	case DriverSQLite:
		if dsn != ":memory:" && !strings.HasPrefix(dsn, "file:") {
			if err := os.MkdirAll(filepath.Dir(dsn), 0o755); err != nil {
				return nil, fmt.Errorf("create db dir: %w", err)
			}
		}
		if !strings.Contains(dsn, "?") {
			dsn += "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)"
		}
	case DriverPostgres:
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if driver == DriverSQLite {
		// a single connection keeps writers from tripping over SQLITE_BUSY
		db.SetMaxOpenConns(1)
	}

	s, err := New(ctx, db, driver)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// New wraps an open database and runs the migration
func New(ctx context.Context, db *sql.DB, driver string) (*Store, error) {
	s := &Store{db: db, driver: driver, newID: uuid.NewString}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS protocol_plans (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		type        TEXT NOT NULL,
		duration    INTEGER NOT NULL DEFAULT 0,
		intensity   TEXT NOT NULL DEFAULT '',
		config      TEXT NOT NULL,
		tags        TEXT NOT NULL DEFAULT '[]',
		created_at  TEXT NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return err
	}
	_, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_protocol_plans_type ON protocol_plans(type, created_at)`)
	return err
}

// rebind rewrites ? placeholders to $n for postgres
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SavePlan inserts the plan and returns its id. A plan without an id gets a new uuid.
func (s *Store) SavePlan(ctx context.Context, plan entities.PlanRecord) (string, error) {
	if plan.ID == "" {
		plan.ID = s.newID()
	}
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now().UTC()
	}
	if plan.Tags == nil {
		plan.Tags = []string{}
	}

	configJSON, err := json.Marshal(plan.Config)
	if err != nil {
		return "", fmt.Errorf("encode plan config: %w", err)
	}
	tagsJSON, err := json.Marshal(plan.Tags)
	if err != nil {
		return "", fmt.Errorf("encode plan tags: %w", err)
	}

	query := s.rebind(`
		INSERT INTO protocol_plans (id, name, description, type, duration, intensity, config, tags, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	_, err = s.db.ExecContext(ctx, query,
		plan.ID, plan.Name, plan.Description, string(plan.Type), plan.Duration, string(plan.Intensity),
		string(configJSON), string(tagsJSON), plan.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("insert plan: %w", err)
	}
	return plan.ID, nil
}

func (s *Store) GetPlan(ctx context.Context, id string) (entities.PlanRecord, error) {
	query := s.rebind(`
		SELECT id, name, description, type, duration, intensity, config, tags, created_at
		FROM protocol_plans WHERE id = ?`)

	var (
		p                    entities.PlanRecord
		planType, intensity  string
		configJSON, tagsJSON []byte
		createdAt            string
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &planType, &p.Duration, &intensity,
		&configJSON, &tagsJSON, &createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.PlanRecord{}, ErrNotFound
		}
		return entities.PlanRecord{}, fmt.Errorf("query plan: %w", err)
	}

	p.Type = entities.PlanType(planType)
	p.Intensity = entities.Intensity(intensity)
	if err := json.Unmarshal(configJSON, &p.Config); err != nil {
		return entities.PlanRecord{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := json.Unmarshal(tagsJSON, &p.Tags); err != nil {
		return entities.PlanRecord{}, fmt.Errorf("failed to unmarshal tags: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return entities.PlanRecord{}, fmt.Errorf("parse created_at: %w", err)
	}
	return p, nil
}

// CountPlans returns the number of stored plans, optionally of one type
func (s *Store) CountPlans(ctx context.Context, planType entities.PlanType) (int, error) {
	query := `SELECT COUNT(*) FROM protocol_plans`
	var args []any
	if planType != "" {
		query += ` WHERE type = ?`
		args = append(args, string(planType))
	}
	var n int
	if err := s.db.QueryRowContext(ctx, s.rebind(query), args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count plans: %w", err)
	}
	return n, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close() error {
	return s.db.Close()
}
