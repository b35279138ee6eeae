package adminusers

import (
	"context"
	"errors"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/uptrace/bun"

	"turnify/infrastructure/argon"
	"turnify/infrastructure/sqlite"
)

func openAdminUsersTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "admin-users-test.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	migrationsDir := filepath.Join(filepath.Dir(file), "..", "..", "infrastructure", "sqlite", "migrations")
	if err := sqlite.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return db
}

func TestCreateUser_HappyPathStoresHashAndRole(t *testing.T) {
	db := openAdminUsersTestDB(t)

	if err := CreateUser(context.Background(), db, "csr2", "Support123!Strong", "csr", ""); err != nil {
		t.Fatalf("create user: %v", err)
	}

	var role string
	var passwordHash string
	err := db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT role, password_hash FROM users WHERE username = ?`, "csr2").Scan(ctx, &role, &passwordHash)
	})
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	if role != "csr" {
		t.Fatalf("expected role=csr, got %s", role)
	}
	if passwordHash == "Support123!Strong" {
		t.Fatalf("expected password to be hashed")
	}
	ok, err := argon.ComparePasswordAndHash("Support123!Strong", passwordHash)
	if err != nil {
		t.Fatalf("verify hash: %v", err)
	}
	if !ok {
		t.Fatalf("expected stored hash to match password")
	}
}

func TestCreateUser_PartnerRequiresCompanyName(t *testing.T) {
	db := openAdminUsersTestDB(t)

	err := CreateUser(context.Background(), db, "buyer1", "Partner123!Turnify", "partner", "")
	if !errors.Is(err, ErrCompanyRequired) {
		t.Fatalf("expected ErrCompanyRequired, got %v", err)
	}

	if err := CreateUser(context.Background(), db, "buyer1", "Partner123!Turnify", "partner", "Acme Outdoors"); err != nil {
		t.Fatalf("create partner: %v", err)
	}

	var companyName string
	err = db.WithReadTx(context.Background(), func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT company_name FROM users WHERE username = ?`, "buyer1").Scan(ctx, &companyName)
	})
	if err != nil {
		t.Fatalf("load partner: %v", err)
	}
	if companyName != "Acme Outdoors" {
		t.Fatalf("expected company name stored, got %q", companyName)
	}
}

func TestCreateUser_DuplicateUsernameRejectedCaseInsensitive(t *testing.T) {
	db := openAdminUsersTestDB(t)

	if err := CreateUser(context.Background(), db, "CaseUser", "Case123!Password", "csr", ""); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	err := CreateUser(context.Background(), db, "caseuser", "Case456!Password", "admin", "")
	if !errors.Is(err, ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
}

func TestCreateUser_InvalidRoleRejected(t *testing.T) {
	db := openAdminUsersTestDB(t)

	err := CreateUser(context.Background(), db, "badrole", "Role123!Password", "superuser", "")
	if !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestCreateUser_WeakPasswordRejected(t *testing.T) {
	db := openAdminUsersTestDB(t)

	if err := CreateUser(context.Background(), db, "weakpass", "short", "csr", ""); err == nil {
		t.Fatalf("expected password policy error")
	}

	users, err := LoadUsers(context.Background(), db)
	if err != nil {
		t.Fatalf("load users: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("expected no users, got %d", len(users))
	}
}
