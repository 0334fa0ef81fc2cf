// Package orderrepo persists the order aggregate with GORM.
//
// An order is stored as one row in orders plus one row per line in order_items.
// Status is stored by name so the table stays readable without the enum, and money
// columns are numeric(18,2) mapped through shopspring/decimal.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. TotalPrice is denormalised for listings and is always
// recomputed by the aggregate on load.
type OrderDTO struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID          *uuid.UUID      `gorm:"type:uuid;index"`
	Status              string          `gorm:"type:varchar(32);not null;index"`
	TotalPrice          decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	QRCode              string          `gorm:"type:text;not null;default:''"`
	PaymentPreferenceID string          `gorm:"type:varchar(100);not null;default:''"`
	CreatedAt           time.Time       `gorm:"not null;index;autoCreateTime:false"`
	UpdatedAt           *time.Time      `gorm:"autoUpdateTime:false"`
	Items               []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. Position keeps the insertion order of lines.
type OrderItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Quantity    int             `gorm:"not null"`
	Position    int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	orderID := aggregate.ID().Bytes()
	items := aggregate.Items()
	dto := OrderDTO{
		ID:                  orderID,
		CustomerID:          customerID,
		Status:              aggregate.Status().String(),
		TotalPrice:          aggregate.TotalPrice().Decimal(),
		QRCode:              aggregate.QRCode(),
		PaymentPreferenceID: aggregate.PaymentPreferenceID(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Items:               make([]OrderItemDTO, 0, len(items)),
	}

	for i, item := range items {
		dto.Items = append(dto.Items, OrderItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Quantity:    item.Quantity(),
			Position:    i,
		})
	}

	return dto
}

// toDomain rebuilds the aggregate. Items must already be sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.FromGoogleUUID(dto.ID)
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if dto.CustomerID != nil {
		cID, customerErr := kernel.FromGoogleUUID(*dto.CustomerID)
		if customerErr != nil {
			return nil, customerErr
		}
		customerID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		customerID,
		items,
		status,
		dto.QRCode,
		dto.PaymentPreferenceID,
		dto.CreatedAt.UTC(),
		utcPtr(dto.UpdatedAt),
	)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.FromGoogleUUID(dto.ID)
	if err != nil {
		return order.Item{}, err
	}

	productID, err := kernel.FromGoogleUUID(dto.ProductID)
	if err != nil {
		return order.Item{}, err
	}

	unitPrice, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}

	return order.RestoreItem(id, productID, dto.ProductName, unitPrice, dto.Quantity)
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
