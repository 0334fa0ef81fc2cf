package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db        *gorm.DB
	forUpdate bool
}

// NewGormOrderRepository creates a repository for reads and single-statement writes.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// NewLockingGormOrderRepository creates a repository bound to an open transaction.
// GetByIDWithItems then takes a row lock that is held until the transaction ends, so
// two handlers updating the same order run one after the other.
func NewLockingGormOrderRepository(tx *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: tx, forUpdate: true}
}

// Create inserts the order together with its items.
func (r *GormOrderRepository) Create(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update writes the order row and reconciles its items: lines no longer on the
// aggregate are deleted and the remaining ones are upserted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
			"customer_id":           dto.CustomerID,
			"status":                dto.Status,
			"total_price":           dto.TotalPrice,
			"qr_code":               dto.QRCode,
			"payment_preference_id": dto.PaymentPreferenceID,
			"updated_at":            dto.UpdatedAt,
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", dto.ID.String())
		}

		keep := make([]uuid.UUID, 0, len(dto.Items))
		for _, item := range dto.Items {
			keep = append(keep, item.ID)
		}
		if err := tx.Where("order_id = ? AND id NOT IN ?", dto.ID, keep).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}

		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"product_name", "unit_price", "quantity", "position"}),
		}).Create(&dto.Items).Error
	})
}

// GetByIDWithItems loads an order and its items in insertion order.
func (r *GormOrderRepository) GetByIDWithItems(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	query := r.db.WithContext(ctx).Preload("Items", orderedItems)
	if r.forUpdate {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto OrderDTO
	if err := query.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListPaged returns one page of orders, newest first, with the total number of
// orders matching the filter.
func (r *GormOrderRepository) ListPaged(ctx context.Context, filter ports.OrderFilter) ([]*order.Order, int64, error) {
	filtered := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&OrderDTO{})
		if filter.CustomerID != nil {
			query = query.Where("customer_id = ?", filter.CustomerID.Bytes())
		}
		if filter.Status != nil {
			query = query.Where("status = ?", filter.Status.String())
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []OrderDTO
	if err := filtered().
		Preload("Items", orderedItems).
		Order("created_at DESC").
		Order("id").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&dtos).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}

	return orders, total, nil
}

// ExistsForCustomer reports whether any order, in any status, references customerID.
func (r *GormOrderRepository) ExistsForCustomer(ctx context.Context, customerID kernel.UUID) (bool, error) {
	if err := customerID.Validate(); err != nil {
		return false, err
	}

	var exists bool
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXISTS (SELECT 1 FROM orders WHERE customer_id = ?)`, customerID.Bytes()).
		Scan(&exists).Error
	return exists, err
}

func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
