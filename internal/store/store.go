package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/praxislabs/praxis/ent"
	"github.com/praxislabs/praxis/ent/language"
	entskill "github.com/praxislabs/praxis/ent/skill"
	"github.com/praxislabs/praxis/internal/skills"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// ErrNotFound indicates the requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists indicates a uniqueness constraint refused the write
// (duplicate username, email or skill name). Distinct from transport
// errors so callers can map it to an "already exists" message.
var ErrAlreadyExists = errors.New("already exists")

// ErrUnknownLanguage indicates a language name outside the seeded catalog.
var ErrUnknownLanguage = errors.New("unknown language")

// Store holds the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw join-heavy queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Users returns a UserRepo backed by this store.
func (s *Store) Users() UserRepo {
	return &userRepo{client: s.client}
}

// Challenges returns a ChallengeRepo backed by this store.
func (s *Store) Challenges() ChallengeRepo {
	return &challengeRepo{client: s.client}
}

// Attempts returns an AttemptRepo backed by this store.
func (s *Store) Attempts() AttemptRepo {
	return &attemptRepo{client: s.client}
}

// Skills returns a SkillRepo backed by this store.
func (s *Store) Skills() SkillRepo {
	return &skillRepo{client: s.client, db: s.db}
}

// Paths returns a PathRepo backed by this store.
func (s *Store) Paths() PathRepo {
	return &pathRepo{client: s.client, db: s.db}
}

// Progress returns a ProgressRepo backed by this store.
func (s *Store) Progress() ProgressRepo {
	return &progressRepo{client: s.client, db: s.db}
}

// Seed populates the language and skill catalogs with insert-if-absent
// semantics. Safe to re-run.
func (s *Store) Seed(ctx context.Context) error {
	for _, name := range skills.DefaultLanguages() {
		exists, err := s.client.Language.Query().
			Where(language.Name(name)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check language %q: %w", name, err)
		}
		if exists {
			continue
		}
		if _, err := s.client.Language.Create().SetName(name).Save(ctx); err != nil {
			return fmt.Errorf("seed language %q: %w", name, err)
		}
	}

	for _, entry := range skills.DefaultCatalog() {
		exists, err := s.client.Skill.Query().
			Where(entskill.Name(entry.Name)).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("check skill %q: %w", entry.Name, err)
		}
		if exists {
			continue
		}
		if _, err := s.client.Skill.Create().
			SetName(entry.Name).
			SetCategory(string(entry.Category)).
			Save(ctx); err != nil {
			return fmt.Errorf("seed skill %q: %w", entry.Name, err)
		}
	}

	return nil
}

// applyPragmas configures SQLite for single-writer web workloads.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PRAXIS_DB environment variable
// 2. $XDG_DATA_HOME/praxis/praxis.db
// 3. ~/.local/share/praxis/praxis.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PRAXIS_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "praxis", "praxis.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
