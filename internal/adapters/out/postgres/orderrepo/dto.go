// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored across three tables: the order row carrying status and version,
// its priced line items, and its append-only status history.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Version is compared and incremented on every update.
type OrderDTO struct {
	ID             uuid.UUID          `gorm:"type:uuid;primaryKey"`
	StoreID        uuid.UUID          `gorm:"type:uuid;not null;index:idx_orders_store_status"`
	CustomerID     uuid.UUID          `gorm:"type:uuid;not null;index"`
	Status         int                `gorm:"type:smallint;not null;index:idx_orders_store_status;index:idx_orders_status_created"`
	CreatedAt      time.Time          `gorm:"not null;index:idx_orders_status_created"`
	PricesLockedAt *time.Time
	Version        int                `gorm:"type:int;not null;default:0"`
	Items          []LineItemDTO      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	History        []StatusHistoryDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO stores one priced line. Position keeps the cart order.
type LineItemDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position  int             `gorm:"type:int;primaryKey"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null"`
	Quantity  int             `gorm:"type:int;not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(20,8);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// StatusHistoryDTO stores one entry of the status history. Seq is the entry's
// index in the history; rows are never updated.
type StatusHistoryDTO struct {
	OrderID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq     int       `gorm:"type:int;primaryKey"`
	Status  int       `gorm:"type:smallint;not null"`
	At      time.Time `gorm:"not null"`
}

func (StatusHistoryDTO) TableName() string {
	return "order_status_history"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			OrderID:   orderID,
			Position:  i,
			ProductID: item.ProductID().Bytes(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		StoreID:        aggregate.StoreID().Bytes(),
		CustomerID:     aggregate.CustomerID().Bytes(),
		Status:         int(aggregate.Status()),
		CreatedAt:      aggregate.CreatedAt(),
		PricesLockedAt: aggregate.PricesLockedAt(),
		Version:        aggregate.Version(),
		Items:          items,
		History:        historyFromDomain(aggregate),
	}
}

func historyFromDomain(aggregate *order.Order) []StatusHistoryDTO {
	orderID := aggregate.ID().Bytes()
	history := make([]StatusHistoryDTO, 0, len(aggregate.History()))
	for i, entry := range aggregate.History() {
		history = append(history, StatusHistoryDTO{
			OrderID: orderID,
			Seq:     i,
			Status:  int(entry.Status),
			At:      entry.At,
		})
	}
	return history
}

// toDomain rebuilds the aggregate through RestoreOrder. Items and History must
// be preloaded in Position and Seq order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	storeID, err := kernel.UUIDFromBytes(dto.StoreID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		productID, productErr := kernel.UUIDFromBytes(itemDTO.ProductID[:])
		if productErr != nil {
			return nil, productErr
		}
		item, itemErr := order.NewLineItem(productID, itemDTO.Quantity, itemDTO.UnitPrice)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.HistoryEntry, 0, len(dto.History))
	for _, entry := range dto.History {
		history = append(history, order.HistoryEntry{Status: order.Status(entry.Status), At: entry.At})
	}

	return order.RestoreOrder(order.Snapshot{
		ID:             id,
		StoreID:        storeID,
		CustomerID:     customerID,
		Items:          items,
		Status:         order.Status(dto.Status),
		History:        history,
		CreatedAt:      dto.CreatedAt,
		PricesLockedAt: dto.PricesLockedAt,
		Version:        dto.Version,
	})
}
