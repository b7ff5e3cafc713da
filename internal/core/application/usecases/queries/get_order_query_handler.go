package queries

import (
	"context"
	"database/sql"
	"errors"

	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"
	"trading/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order straight from the database,
// bypassing the aggregate layer. Reads always reflect the latest committed
// terminal transition because writers settle ownership before committing.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an errs.ObjectNotFoundError when no
// order with the requested identifier exists.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			symbol,
			quantity,
			status
		FROM orders
		WHERE id = ?
	`, query.OrderID().String()).Row()

	var id uuid.UUID
	var symbol string
	var quantity float64
	var statusString string

	err := row.Scan(&id, &symbol, &quantity, &statusString)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return newOrderResponse(id, symbol, quantity, statusString)
}

func newOrderResponse(id uuid.UUID, symbol string, quantity float64, statusString string) (GetOrderQueryResponse, error) {
	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	status, err := order.StatusFromString(statusString)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return GetOrderQueryResponse{
		ID:       orderID,
		Symbol:   symbol,
		Quantity: quantity,
		Status:   status,
	}, nil
}
