package http

import (
	"procurement/internal/core/application/usecases/commands"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// response is the envelope wrapping every API reply.
type response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func okResponse(message string, data any) response {
	return response{Success: true, Message: message, Data: data}
}

func errorResponse(message string) response {
	return response{Success: false, Message: message}
}

// lineRequest is one order line as submitted by the client.
type lineRequest struct {
	ProductID      int64           `json:"productId"`
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	TaxRatePercent decimal.Decimal `json:"taxRatePercent"`
}

// createOrderRequest is the body of POST /api/v1/orders.
type createOrderRequest struct {
	SupplierID      int64         `json:"supplierId"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Lines           []lineRequest `json:"lines"`
}

// updateOrderRequest is the body of PUT /api/v1/orders/:id.
// Status is required and must name one of the six order statuses; the
// address and lines are optional and leave the order unchanged when omitted.
type updateOrderRequest struct {
	Status          string        `json:"status"`
	DeliveryAddress string        `json:"deliveryAddress"`
	Lines           []lineRequest `json:"lines"`
}

func toLineInputs(lines []lineRequest) []commands.LineInput {
	return lo.Map(lines, func(line lineRequest, _ int) commands.LineInput {
		return commands.LineInput{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPrice:      line.UnitPrice,
			TaxRatePercent: line.TaxRatePercent,
		}
	})
}
