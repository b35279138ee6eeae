package catalog

import (
	"fmt"
	"math"
	"time"

	"turnify/returns"
)

// SampleOrders builds the deterministic demo catalog: five curated
// orders plus generated ones up to PO-2024-050. Values are derived
// from the order index so repeated runs produce identical data.
func SampleOrders() []Order {
	orders := []Order{
		{
			PONumber: "PO-2024-001", OrderDate: sampleDate(15),
			Items: []returns.CatalogItem{
				{UPC: "00012345678901", Title: "Premium Running Shoes", Qty: 50, Price: 89.99, AvailableReturn: 45},
				{UPC: "00012345678902", Title: "Casual Sneakers", Qty: 30, Price: 59.99, AvailableReturn: 30},
				{UPC: "00012345678903", Title: "Leather Boots", Qty: 25, Price: 129.99, AvailableReturn: 20},
			},
		},
		{
			PONumber: "PO-2024-002", OrderDate: sampleDate(20),
			Items: []returns.CatalogItem{
				{UPC: "00012345678904", Title: "Athletic Trainers", Qty: 40, Price: 79.99, AvailableReturn: 35},
				{UPC: "00012345678905", Title: "Shoe Care Kit", Qty: 20, Price: 24.99, AvailableReturn: 18},
			},
		},
		{
			PONumber: "PO-2024-003", OrderDate: sampleDate(22),
			Items: []returns.CatalogItem{
				{UPC: "00012345678906", Title: "Basketball Shoes", Qty: 35, Price: 99.99, AvailableReturn: 30},
				{UPC: "00012345678907", Title: "Tennis Shoes", Qty: 25, Price: 69.99, AvailableReturn: 20},
			},
		},
		{
			PONumber: "PO-2024-004", OrderDate: sampleDate(25),
			Items: []returns.CatalogItem{
				{UPC: "00012345678908", Title: "Hiking Boots", Qty: 40, Price: 149.99, AvailableReturn: 35},
				{UPC: "00012345678909", Title: "Shoe Insoles", Qty: 50, Price: 19.99, AvailableReturn: 45},
			},
		},
		{
			PONumber: "PO-2024-005", OrderDate: sampleDate(28),
			Items: []returns.CatalogItem{
				{UPC: "00012345678910", Title: "Slip-on Shoes", Qty: 30, Price: 49.99, AvailableReturn: 25},
				{UPC: "00012345678911", Title: "Loafers", Qty: 25, Price: 79.99, AvailableReturn: 20},
			},
		},
	}

	for i := 6; i <= 50; i++ {
		// Both lines intentionally share one UPC; occurrence indexes
		// keep their selections distinct.
		upc := fmt.Sprintf("000123456789%02d", i)
		orders = append(orders, Order{
			PONumber:  fmt.Sprintf("PO-2024-%03d", i),
			OrderDate: sampleDate(15 + i),
			Items: []returns.CatalogItem{
				{
					UPC:             upc,
					Title:           fmt.Sprintf("Running Shoes Model %d", i),
					Qty:             20 + i%30,
					Price:           sampleCents(float64(50+i%50) + 49.99),
					AvailableReturn: 15 + i%25,
				},
				{
					UPC:             upc,
					Title:           fmt.Sprintf("Shoe Accessories Set %d", i),
					Qty:             10 + i%20,
					Price:           sampleCents(float64(20+i%30) + 19.99),
					AvailableReturn: 8 + i%17,
				},
			},
		})
	}
	return orders
}

func sampleDate(day int) time.Time {
	// Day overflow normalizes into the following months.
	return time.Date(2024, time.March, day, 0, 0, 0, 0, time.UTC)
}

func sampleCents(v float64) float64 {
	return math.Round(v*100) / 100
}
