package adminusers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"turnify/frontend/login"
	"turnify/infrastructure/argon"
	"turnify/infrastructure/rbac"
	"turnify/infrastructure/sqlite"
	"turnify/models"
)

var (
	ErrUsernameRequired = errors.New("username is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrInvalidRole      = errors.New("role must be admin, csr or partner")
	ErrCompanyRequired  = errors.New("company name is required for partner accounts")
	ErrUsernameExists   = errors.New("username already exists")
)

func LoadUsers(ctx context.Context, db *sqlite.DB) ([]UserView, error) {
	users := make([]UserView, 0)
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw("SELECT id, username, role, company_name FROM users ORDER BY id ASC").Scan(ctx, &users)
	})
	return users, err
}

func validRole(role string) bool {
	switch role {
	case rbac.RoleAdmin, rbac.RoleCSR, rbac.RolePartner:
		return true
	}
	return false
}

// CreateUser validates the fields, runs the password policy and inserts
// the user. A partner account must carry a company name.
func CreateUser(ctx context.Context, db *sqlite.DB, username, password, role, companyName string) error {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	role = strings.TrimSpace(role)
	companyName = strings.TrimSpace(companyName)

	if username == "" {
		return ErrUsernameRequired
	}
	if password == "" {
		return ErrPasswordRequired
	}
	if !validRole(role) {
		return ErrInvalidRole
	}
	if role == rbac.RolePartner && companyName == "" {
		return ErrCompanyRequired
	}
	if err := login.ValidatePasswordPolicy(password); err != nil {
		return err
	}

	hash, err := argon.CreateHash(password, argon.DefaultParams)
	if err != nil {
		return err
	}

	now := time.Now()
	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.User)(nil)).
			Where("LOWER(username) = ?", strings.ToLower(username)).
			Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			return ErrUsernameExists
		}
		_, err = tx.NewInsert().Model(&models.User{
			Username:     username,
			PasswordHash: hash,
			Role:         role,
			CompanyName:  companyName,
			CreatedAt:    now,
			UpdatedAt:    now,
		}).Exec(ctx)
		return err
	})
}
