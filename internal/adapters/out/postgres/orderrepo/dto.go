// Package orderrepo provides the GORM persistence adapter for the order
// aggregate, including the conditional status update that arbitrates the
// race between cancellation and background execution.
package orderrepo

import (
	"trading/internal/core/domain/model/kernel"
	"trading/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database representation of an order aggregate.
// Status is stored as its lowercase wire string; the index supports the
// pending-status scans used by the recovery job.
type OrderDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Symbol   string    `gorm:"not null"`
	Quantity float64   `gorm:"not null"`
	Status   string    `gorm:"index;not null"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:       aggregate.ID().Bytes(),
		Symbol:   aggregate.Symbol(),
		Quantity: aggregate.Quantity(),
		Status:   aggregate.Status().String(),
	}
}

// toDomain reconstructs an order aggregate from its database representation.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.Symbol, dto.Quantity, status)
}
