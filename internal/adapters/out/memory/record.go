// Package memory provides a process-local order store with the same contracts as the
// Postgres adapter. It backs STORAGE=memory for local runs and end-to-end tests.
//
// Aggregates are kept as snapshots and rebuilt with order.RestoreOrder on every read,
// so callers never share a mutable aggregate with the store. Inside a unit of work a
// loaded order stays locked until Commit or Rollback, like SELECT ... FOR UPDATE.
package memory

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type orderRecord struct {
	ID                  uuid.UUID
	CustomerID          *uuid.UUID
	Status              string
	QRCode              string
	PaymentPreferenceID string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	Items               []itemRecord
}

type itemRecord struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

func fromDomain(aggregate *order.Order) orderRecord {
	var customerID *uuid.UUID
	if id := aggregate.CustomerID(); id != nil {
		raw := id.Bytes()
		customerID = &raw
	}

	items := aggregate.Items()
	rec := orderRecord{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          customerID,
		Status:              aggregate.Status().String(),
		QRCode:              aggregate.QRCode(),
		PaymentPreferenceID: aggregate.PaymentPreferenceID(),
		CreatedAt:           aggregate.CreatedAt(),
		UpdatedAt:           aggregate.UpdatedAt(),
		Items:               make([]itemRecord, 0, len(items)),
	}
	for _, item := range items {
		rec.Items = append(rec.Items, itemRecord{
			ID:          item.ID().Bytes(),
			ProductID:   item.ProductID().Bytes(),
			ProductName: item.ProductName(),
			UnitPrice:   item.UnitPrice().Decimal(),
			Quantity:    item.Quantity(),
		})
	}
	return rec
}

func toDomain(rec orderRecord) (*order.Order, error) {
	id, err := kernel.FromGoogleUUID(rec.ID)
	if err != nil {
		return nil, err
	}

	var customerID *kernel.UUID
	if rec.CustomerID != nil {
		cID, cErr := kernel.FromGoogleUUID(*rec.CustomerID)
		if cErr != nil {
			return nil, cErr
		}
		customerID = &cID
	}

	items := make([]order.Item, 0, len(rec.Items))
	for _, ir := range rec.Items {
		item, itemErr := itemToDomain(ir)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.ParseStatus(rec.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, items, status, rec.QRCode, rec.PaymentPreferenceID, rec.CreatedAt, rec.UpdatedAt)
}

func itemToDomain(rec itemRecord) (order.Item, error) {
	id, err := kernel.FromGoogleUUID(rec.ID)
	if err != nil {
		return order.Item{}, err
	}
	productID, err := kernel.FromGoogleUUID(rec.ProductID)
	if err != nil {
		return order.Item{}, err
	}
	price, err := kernel.NewMoney(rec.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(id, productID, rec.ProductName, price, rec.Quantity)
}
