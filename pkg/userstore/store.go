package userstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	_ "modernc.org/sqlite"

	"github.com/thunderguard-ph/thunderguard/pkg/sender"
)

// User is one registered account.
type User struct {
	ID        int64
	Name      string
	Role      string
	Phone     string
	Email     string
	CreatedAt time.Time
}

// RegisterParams carries a registration request. Email is optional; users
// without one simply never receive the asynchronous channel.
type RegisterParams struct {
	Name     string
	Role     string
	Phone    string
	Email    string
	Password string
}

// Store is the SQLite-backed user registry.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the user database and ensures the
// schema. SQLite prefers a single writer, so the pool is capped at one
// connection.
func Open(cfg Config) (*Store, error) {
	if strings.TrimSpace(cfg.Path) == "" {
		return nil, fmt.Errorf("%w: database path is required", ErrInvalidConfig)
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("userstore: open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if cfg.BusyTimeout > 0 {
		_, _ = db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", cfg.BusyTimeout.Milliseconds()))
	}
	_, _ = db.Exec("PRAGMA journal_mode = WAL")
	_, _ = db.Exec("PRAGMA synchronous = NORMAL")

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("userstore: migrate: %w", err)
	}
	return s, nil
}

// migrate creates the users table and backfills columns older database
// files are missing. Registrations predate the email column, so schema
// repair has to be automatic on open.
func (s *Store) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			role TEXT NOT NULL,
			phone TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL DEFAULT '',
			password_hash TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	hasEmail, err := s.hasColumn(ctx, "users", "email")
	if err != nil {
		return err
	}
	if !hasEmail {
		if _, err := s.db.ExecContext(ctx, `ALTER TABLE users ADD COLUMN email TEXT NOT NULL DEFAULT ''`); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) hasColumn(ctx context.Context, table, column string) (bool, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", table))
	if err != nil {
		return false, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			cid        int
			name, typ  string
			notNull    int
			defaultVal sql.NullString
			pk         int
		)
		if err := rows.Scan(&cid, &name, &typ, &notNull, &defaultVal, &pk); err != nil {
			return false, err
		}
		if name == column {
			return true, nil
		}
	}
	return false, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Register creates a new account with a bcrypt-hashed password.
// The phone number is the primary login identifier and must be unique.
func (s *Store) Register(ctx context.Context, params RegisterParams) (*User, error) {
	if err := params.validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("userstore: hash password: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (name, role, phone, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		params.Name, params.Role, params.Phone, params.Email, string(hash), time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: phone %s", ErrAlreadyRegistered, params.Phone)
		}
		return nil, fmt.Errorf("userstore: insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("userstore: last insert id: %w", err)
	}
	return s.byID(ctx, id)
}

// Authenticate verifies credentials against either the phone number or the
// email address, mirroring the login form's single identifier field.
// Unknown identifiers and wrong passwords are indistinguishable to the
// caller.
func (s *Store) Authenticate(ctx context.Context, identifier, password string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, role, phone, email, password_hash, created_at
		 FROM users WHERE phone = ? OR (email <> '' AND email = ?)`,
		identifier, identifier,
	)

	var (
		u    User
		hash string
	)
	if err := row.Scan(&u.ID, &u.Name, &u.Role, &u.Phone, &u.Email, &hash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("userstore: query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &u, nil
}

// ListUsers returns all registered users ordered by registration time.
func (s *Store) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, phone, email, created_at FROM users ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("userstore: list users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Name, &u.Role, &u.Phone, &u.Email, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("userstore: scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (s *Store) byID(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, name, role, phone, email, created_at FROM users WHERE id = ?`, id,
	)
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Role, &u.Phone, &u.Email, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("userstore: query user: %w", err)
	}
	return &u, nil
}

func (p RegisterParams) validate() error {
	switch {
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidParams)
	case strings.TrimSpace(p.Role) == "":
		return fmt.Errorf("%w: role is required", ErrInvalidParams)
	case strings.TrimSpace(p.Phone) == "":
		return fmt.Errorf("%w: phone is required", ErrInvalidParams)
	case p.Password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidParams)
	case p.Email != "" && !sender.ValidEmail(p.Email):
		return fmt.Errorf("%w: email %q is malformed", ErrInvalidParams, p.Email)
	}
	return nil
}

// isUniqueViolation detects the sqlite unique-constraint error without
// binding to the driver's error type.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
