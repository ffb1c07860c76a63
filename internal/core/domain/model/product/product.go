// Package product holds the externally owned product entity. The procurement
// core reads products to validate order lines and resolve display names.
package product

import "github.com/shopspring/decimal"

// Product is a catalog article that can appear on order lines.
type Product struct {
	ID           int64
	Code         string
	Name         string
	Description  string
	Category     string
	UnitOfSale   string
	Price        decimal.Decimal
	CurrentStock int
	Active       bool
}
