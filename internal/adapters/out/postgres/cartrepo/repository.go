package cartrepo

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a customer's cart with lines in insertion order.
// Inside a transaction the cart row is locked with FOR UPDATE, so concurrent
// mutations of the same cart serialize into atomic read-modify-writes.
func (r *GormCartRepository) Get(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("cart", customerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Save upserts the cart row and replaces its stored lines with the
// aggregate's current lines.
func (r *GormCartRepository) Save(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "customer_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"updated_at"}),
		}).
		Create(&dto).Error
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).
		Where("cart_customer_id = ?", dto.CustomerID).
		Delete(&CartItemDTO{}).Error
	if err != nil {
		return err
	}

	if len(items) > 0 {
		if err = r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.CustomerID(), aggregate)
	return nil
}

// ClearAbandoned deletes the lines of every cart whose last update is older
// than the cutoff. Cart rows stay in place for reuse. Returns the number of
// carts that actually had lines to clear.
func (r *GormCartRepository) ClearAbandoned(ctx context.Context, before time.Time) (int64, error) {
	var stale int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT ci.cart_customer_id)
		FROM cart_items ci
		JOIN carts c ON c.customer_id = ci.cart_customer_id
		WHERE c.updated_at < ?
	`, before).Scan(&stale).Error
	if err != nil {
		return 0, err
	}

	if stale == 0 {
		return 0, nil
	}

	err = r.db.WithContext(ctx).Exec(`
		DELETE FROM cart_items
		WHERE cart_customer_id IN (
			SELECT customer_id FROM carts WHERE updated_at < ?
		)
	`, before).Error
	if err != nil {
		return 0, err
	}

	return stale, nil
}
