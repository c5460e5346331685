package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/praxislabs/praxis/ent"
	entuser "github.com/praxislabs/praxis/ent/user"
)

// UserRepo provides access to user accounts.
type UserRepo interface {
	// Create inserts a new user. passwordHash must already be hashed;
	// the store never sees plaintext passwords. Returns ErrAlreadyExists
	// when the username or email is taken.
	Create(ctx context.Context, username, passwordHash, email string) (*User, error)

	// ByID fetches a user by id. Returns ErrNotFound when absent.
	ByID(ctx context.Context, id string) (*User, error)

	// ByUsername fetches a user by username. Returns ErrNotFound when absent.
	ByUsername(ctx context.Context, username string) (*User, error)

	// CredentialsByUsername returns what the auth layer needs to verify
	// a login. Returns ErrNotFound when the username is unknown.
	CredentialsByUsername(ctx context.Context, username string) (*Credentials, error)

	// TouchLastLogin stamps last_login with the current time.
	TouchLastLogin(ctx context.Context, id string) error
}

type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, username, passwordHash, email string) (*User, error) {
	create := r.client.User.Create().
		SetID(uuid.NewString()).
		SetUsername(username).
		SetPasswordHash(passwordHash)
	if email != "" {
		create = create.SetEmail(email)
	}

	row, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("user %q: %w", username, ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return userFromEnt(row), nil
}

func (r *userRepo) ByID(ctx context.Context, id string) (*User, error) {
	row, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return userFromEnt(row), nil
}

func (r *userRepo) ByUsername(ctx context.Context, username string) (*User, error) {
	row, err := r.client.User.Query().
		Where(entuser.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return userFromEnt(row), nil
}

func (r *userRepo) CredentialsByUsername(ctx context.Context, username string) (*Credentials, error) {
	row, err := r.client.User.Query().
		Where(entuser.Username(username)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &Credentials{
		UserID:       row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
	}, nil
}

func (r *userRepo) TouchLastLogin(ctx context.Context, id string) error {
	err := r.client.User.UpdateOneID(id).
		SetLastLogin(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return fmt.Errorf("touch last login: %w", err)
	}
	return nil
}

func userFromEnt(row *ent.User) *User {
	return &User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		CreatedAt: row.CreatedAt,
		LastLogin: row.LastLogin,
	}
}
