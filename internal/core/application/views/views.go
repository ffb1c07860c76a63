// Package views contains the read models returned by the use-case layer and
// the assembler that enriches order aggregates with display names resolved
// from the supplier, product, and user stores.
package views

import (
	"context"
	"time"

	"procurement/internal/core/domain/model/order"
	"procurement/internal/core/ports"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Placeholders substituted when a display-name lookup returns nothing.
// Referential data was validated to exist at mutation time, so a miss here
// degrades the view instead of failing the whole read.
const (
	UnknownSupplier    = "Unknown supplier"
	UnknownUser        = "Unknown user"
	UnknownProduct     = "Unknown product"
	UnknownProductCode = "N/A"
)

// OrderSummary is the list representation of an order.
type OrderSummary struct {
	ID           int64           `json:"id"`
	OrderNumber  string          `json:"orderNumber"`
	SupplierID   int64           `json:"supplierId"`
	SupplierName string          `json:"supplierName"`
	CreatedAt    time.Time       `json:"createdAt"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
}

// LineDetail is one enriched line of an order detail view.
type LineDetail struct {
	ID             int64           `json:"id"`
	ProductID      int64           `json:"productId"`
	ProductName    string          `json:"productName"`
	ProductCode    string          `json:"productCode"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

// OrderDetail is the full representation of an order including its lines and
// resolved display names.
type OrderDetail struct {
	ID              int64           `json:"id"`
	OrderNumber     string          `json:"orderNumber"`
	SupplierID      int64           `json:"supplierId"`
	SupplierName    string          `json:"supplierName"`
	UserID          int64           `json:"userId"`
	UserName        string          `json:"userName"`
	CreatedAt       time.Time       `json:"createdAt"`
	Status          string          `json:"status"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	TaxAmount       decimal.Decimal `json:"taxAmount"`
	Total           decimal.Decimal `json:"total"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Lines           []LineDetail    `json:"lines"`
}

// Assembler builds enriched order views from aggregates and the read-only
// lookup ports.
type Assembler struct {
	suppliers ports.SupplierRepository
	products  ports.ProductRepository
	users     ports.UserRepository
	lineItems ports.LineItemRepository
}

// NewAssembler creates a view assembler over the given lookup ports.
func NewAssembler(
	suppliers ports.SupplierRepository,
	products ports.ProductRepository,
	users ports.UserRepository,
	lineItems ports.LineItemRepository,
) Assembler {
	return Assembler{
		suppliers: suppliers,
		products:  products,
		users:     users,
		lineItems: lineItems,
	}
}

// Summaries maps order aggregates to their list representation, resolving
// each supplier name with a placeholder fallback.
func (a Assembler) Summaries(ctx context.Context, orders []*order.Order) []OrderSummary {
	return lo.Map(orders, func(o *order.Order, _ int) OrderSummary {
		return OrderSummary{
			ID:           o.ID(),
			OrderNumber:  o.OrderNumber(),
			SupplierID:   o.SupplierID(),
			SupplierName: a.supplierName(ctx, o.SupplierID()),
			CreatedAt:    o.CreatedAt(),
			Status:       o.Status().String(),
			Total:        o.Total(),
		}
	})
}

// Detail builds the full order view. Lines are taken from the aggregate when
// attached, otherwise loaded from the line-item store; a load failure there
// is an infrastructure error and propagates.
func (a Assembler) Detail(ctx context.Context, o *order.Order) (OrderDetail, error) {
	lines := o.Lines()
	if len(lines) == 0 {
		loaded, err := a.lineItems.GetByOrderID(ctx, o.ID())
		if err != nil {
			return OrderDetail{}, err
		}
		lines = loaded
	}

	lineViews := lo.Map(lines, func(line *order.LineItem, _ int) LineDetail {
		name, code := a.productDisplay(ctx, line.ProductID())
		return LineDetail{
			ID:             line.ID(),
			ProductID:      line.ProductID(),
			ProductName:    name,
			ProductCode:    code,
			Quantity:       line.Quantity(),
			UnitPrice:      line.UnitPrice(),
			TaxRatePercent: line.TaxRatePercent(),
			Subtotal:       line.Subtotal(),
			LineTotal:      line.LineTotal(),
		}
	})

	return OrderDetail{
		ID:              o.ID(),
		OrderNumber:     o.OrderNumber(),
		SupplierID:      o.SupplierID(),
		SupplierName:    a.supplierName(ctx, o.SupplierID()),
		UserID:          o.UserID(),
		UserName:        a.userName(ctx, o.UserID()),
		CreatedAt:       o.CreatedAt(),
		Status:          o.Status().String(),
		Subtotal:        o.Subtotal(),
		TaxAmount:       o.TaxAmount(),
		Total:           o.Total(),
		DeliveryAddress: o.DeliveryAddress(),
		Lines:           lineViews,
	}, nil
}

func (a Assembler) supplierName(ctx context.Context, supplierID int64) string {
	name, err := a.suppliers.GetNameByID(ctx, supplierID)
	if err != nil || name == "" {
		return UnknownSupplier
	}
	return name
}

func (a Assembler) userName(ctx context.Context, userID int64) string {
	name, err := a.users.GetFullNameByID(ctx, userID)
	if err != nil || name == "" {
		return UnknownUser
	}
	return name
}

func (a Assembler) productDisplay(ctx context.Context, productID int64) (name, code string) {
	p, err := a.products.Get(ctx, productID)
	if err != nil || p == nil {
		return UnknownProduct, UnknownProductCode
	}

	name, code = p.Name, p.Code
	if name == "" {
		name = UnknownProduct
	}
	if code == "" {
		code = UnknownProductCode
	}
	return name, code
}
