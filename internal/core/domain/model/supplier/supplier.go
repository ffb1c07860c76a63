// Package supplier holds the externally owned supplier entity and the
// supplier catalog relation. The procurement core only reads these records
// to validate orders and resolve display names; their lifecycle belongs to
// other systems, so they are plain data structs rather than aggregates.
package supplier

import "github.com/shopspring/decimal"

// Supplier is a company the organization places procurement orders with.
type Supplier struct {
	ID          int64
	CompanyName string
	TaxID       string
	Address     string
	City        string
	Province    string
	PostalCode  string
	Phone       string
	Email       string
	Active      bool
}

// CatalogItem states that a specific supplier offers a specific product at a
// specific price, and whether that offering is currently active. A product
// may be globally active yet not orderable from a particular supplier.
type CatalogItem struct {
	ID         int64
	SupplierID int64
	ProductID  int64
	UnitPrice  decimal.Decimal
	Active     bool
}
