package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/whatif-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/whatif-cli/internal/core/domain"
	"github.com/custodia-labs/whatif-cli/internal/core/ports/driven"
)

// dbFile is the database file name inside the data directory.
const dbFile = "decisions.db"

// Store is a SQLite-based storage that provides access to
// store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.whatif/data/decisions.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".whatif", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, dbFile)

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// DecisionStore returns a DecisionStore interface backed by this store.
func (s *Store) DecisionStore() driven.DecisionStore {
	return &decisionStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Decision Store ====================

// decisionStore implements driven.DecisionStore.
type decisionStore struct {
	store *Store
}

var _ driven.DecisionStore = (*decisionStore)(nil)

// Save stores or updates a saved decision.
func (s *decisionStore) Save(ctx context.Context, saved domain.SavedDecision) error {
	if saved.ID == "" {
		return domain.ErrInvalidInput
	}

	categoriesJSON, err := json.Marshal(saved.Decision.Categories)
	if err != nil {
		return fmt.Errorf("marshalling categories: %w", err)
	}

	if saved.CreatedAt.IsZero() {
		saved.CreatedAt = time.Now()
	}
	d := saved.Decision

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO saved_decisions (id, question, actual_choice, alternate_choice, context, categories, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			question = excluded.question,
			actual_choice = excluded.actual_choice,
			alternate_choice = excluded.alternate_choice,
			context = excluded.context,
			categories = excluded.categories
	`, saved.ID, d.Question, d.ActualChoice, d.AlternateChoice, d.Context,
		string(categoriesJSON), saved.CreatedAt.UTC())

	if err != nil {
		return fmt.Errorf("saving decision: %w", err)
	}
	return nil
}

// Get retrieves a saved decision by ID.
func (s *decisionStore) Get(ctx context.Context, id string) (*domain.SavedDecision, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, question, actual_choice, alternate_choice, context, categories, created_at
		FROM saved_decisions WHERE id = ?
	`, id)

	saved, err := scanDecision(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete removes a saved decision.
func (s *decisionStore) Delete(ctx context.Context, id string) error {
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM saved_decisions WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting decision: %w", err)
	}
	return nil
}

// List returns all saved decisions, oldest first.
func (s *decisionStore) List(ctx context.Context) ([]domain.SavedDecision, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, question, actual_choice, alternate_choice, context, categories, created_at
		FROM saved_decisions ORDER BY created_at ASC, rowid ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing decisions: %w", err)
	}
	defer rows.Close()

	result := make([]domain.SavedDecision, 0)
	for rows.Next() {
		saved, err := scanDecision(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *saved)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating decisions: %w", err)
	}
	return result, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDecision(row scanner) (*domain.SavedDecision, error) {
	var saved domain.SavedDecision
	var categoriesJSON string
	var createdAt sql.NullTime
	d := &saved.Decision

	if err := row.Scan(&saved.ID, &d.Question, &d.ActualChoice, &d.AlternateChoice,
		&d.Context, &categoriesJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning decision: %w", err)
	}

	if err := json.Unmarshal([]byte(categoriesJSON), &d.Categories); err != nil {
		return nil, fmt.Errorf("unmarshaling categories: %w", err)
	}
	if createdAt.Valid {
		saved.CreatedAt = createdAt.Time.UTC()
	}
	return &saved, nil
}
