// Package catalog owns the purchase-order catalog the portal offers
// for returns.
package catalog

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"turnify/infrastructure/sqlite"
	"turnify/models"
	"turnify/returns"
)

// Order is one purchase order with its catalog lines in listing order.
type Order struct {
	ID        int64
	PONumber  string
	OrderDate time.Time
	Items     []returns.CatalogItem
}

// Total is the order value over all lines.
func (o Order) Total() float64 {
	total := 0.0
	for _, it := range o.Items {
		total += it.Price * float64(it.Qty)
	}
	return total
}

// List returns every order, oldest PO first, items in listing order.
func List(ctx context.Context, db *sqlite.DB) ([]Order, error) {
	var rows []models.Order
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("position ASC")
			}).
			Order("po_number ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	out := make([]Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

// Search returns the orders matching q against PO number, or any line
// UPC or title, case-insensitively. A blank query returns everything.
func Search(ctx context.Context, db *sqlite.DB, q string) ([]Order, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return List(ctx, db)
	}

	needle := "%" + strings.ToLower(q) + "%"
	var ids []int64
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`
SELECT DISTINCT o.id
FROM orders o
JOIN order_items oi ON oi.order_id = o.id
WHERE LOWER(o.po_number) LIKE ? OR LOWER(oi.upc) LIKE ? OR LOWER(oi.title) LIKE ?`,
			needle, needle, needle).Scan(ctx, &ids)
	})
	if err != nil {
		return nil, fmt.Errorf("search orders: %w", err)
	}
	if len(ids) == 0 {
		return []Order{}, nil
	}

	var rows []models.Order
	err = db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&rows).
			Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("position ASC")
			}).
			Where("o.id IN (?)", bun.In(ids)).
			Order("po_number ASC").
			Scan(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("load matched orders: %w", err)
	}
	out := make([]Order, 0, len(rows))
	for _, row := range rows {
		out = append(out, fromModel(row))
	}
	return out, nil
}

// FindByPO loads one order by PO number.
func FindByPO(ctx context.Context, db *sqlite.DB, poNumber string) (Order, bool, error) {
	var row models.Order
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().
			Model(&row).
			Relation("Items", func(q *bun.SelectQuery) *bun.SelectQuery {
				return q.Order("position ASC")
			}).
			Where("po_number = ?", poNumber).
			Limit(1).
			Scan(ctx)
	})
	if err != nil {
		if strings.Contains(err.Error(), "no rows") {
			return Order{}, false, nil
		}
		return Order{}, false, fmt.Errorf("load order %s: %w", poNumber, err)
	}
	return fromModel(row), true, nil
}

// Seed inserts the sample catalog when the orders table is empty.
func Seed(ctx context.Context, db *sqlite.DB) error {
	var count int64
	err := db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewRaw(`SELECT COUNT(*) FROM orders`).Scan(ctx, &count)
	})
	if err != nil {
		return fmt.Errorf("count orders: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		for _, order := range SampleOrders() {
			row := models.Order{PONumber: order.PONumber, OrderDate: order.OrderDate}
			if _, err := tx.NewInsert().Model(&row).Exec(ctx); err != nil {
				return fmt.Errorf("insert order %s: %w", order.PONumber, err)
			}
			for pos, item := range order.Items {
				line := models.OrderItem{
					OrderID:         row.ID,
					Position:        pos,
					UPC:             item.UPC,
					Title:           item.Title,
					Qty:             item.Qty,
					Price:           item.Price,
					AvailableReturn: item.AvailableReturn,
				}
				if _, err := tx.NewInsert().Model(&line).Exec(ctx); err != nil {
					return fmt.Errorf("insert order line %s/%s: %w", order.PONumber, item.UPC, err)
				}
			}
		}
		return nil
	})
}

func fromModel(row models.Order) Order {
	items := make([]returns.CatalogItem, 0, len(row.Items))
	rowItems := append([]models.OrderItem(nil), row.Items...)
	sort.SliceStable(rowItems, func(i, j int) bool { return rowItems[i].Position < rowItems[j].Position })
	for _, it := range rowItems {
		items = append(items, returns.CatalogItem{
			UPC:             it.UPC,
			Title:           it.Title,
			Qty:             it.Qty,
			Price:           it.Price,
			AvailableReturn: it.AvailableReturn,
		})
	}
	return Order{ID: row.ID, PONumber: row.PONumber, OrderDate: row.OrderDate, Items: items}
}
