package models

import (
	"time"

	"github.com/uptrace/bun"
)

// User represents an authenticated portal user.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Username     string    `bun:"username,unique,notnull"`
	PasswordHash string    `bun:"password_hash,notnull"`
	Role         string    `bun:"role,notnull"`
	CompanyName  string    `bun:"company_name"`
	CreatedAt    time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// Session is used by middleware and auth handlers.
type Session struct {
	bun.BaseModel `bun:"table:sessions,alias:s"`

	ID                string         `bun:"id,pk"`
	UserID            int64          `bun:"user_id,notnull"`
	User              User           `bun:"rel:belongs-to,join:user_id=id"`
	UserRoles         []string       `bun:"-"`
	ScreenPermissions map[string]int `bun:"-"`
	ExpiresAt         time.Time      `bun:"expires_at,notnull"`
	CreatedAt         time.Time      `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt         time.Time      `bun:"updated_at,notnull,default:current_timestamp"`
}

// Expired returns true when the session expiry time has passed.
func (s Session) Expired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Order is a purchase order eligible for returns.
type Order struct {
	bun.BaseModel `bun:"table:orders,alias:o"`

	ID        int64       `bun:"id,pk,autoincrement"`
	PONumber  string      `bun:"po_number,notnull,unique"`
	OrderDate time.Time   `bun:"order_date,notnull"`
	Items     []OrderItem `bun:"rel:has-many,join:id=order_id"`
	CreatedAt time.Time   `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt time.Time   `bun:"updated_at,notnull,default:current_timestamp"`
}

// OrderItem is one catalog line of an order. Position preserves the
// listing order so duplicate UPCs on the same order keep distinct
// occurrence indexes.
type OrderItem struct {
	bun.BaseModel `bun:"table:order_items,alias:oi"`

	ID              int64     `bun:"id,pk,autoincrement"`
	OrderID         int64     `bun:"order_id,notnull"`
	Position        int       `bun:"position,notnull"`
	UPC             string    `bun:"upc,notnull"`
	Title           string    `bun:"title,notnull"`
	Qty             int       `bun:"qty,notnull"`
	Price           float64   `bun:"price,notnull"`
	AvailableReturn int       `bun:"available_return,notnull"`
	CreatedAt       time.Time `bun:"created_at,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// AuditLog captures immutable change history for key operations.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull"`
	Action     string    `bun:"action,notnull"`
	EntityType string    `bun:"entity_type,notnull"`
	EntityID   string    `bun:"entity_id,notnull"`
	BeforeJSON string    `bun:"before_json"`
	AfterJSON  string    `bun:"after_json"`
	CreatedAt  time.Time `bun:"created_at,notnull,default:current_timestamp"`
}
