package enduserrepo

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/enduser"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEndUserRepository implements ports.EndUserRepository using GORM.
type GormEndUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormEndUserRepository creates a new GORM end user repository.
func NewGormEndUserRepository(db *gorm.DB, tracker aggregateTracker) *GormEndUserRepository {
	return &GormEndUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new end user to the database.
func (r *GormEndUserRepository) Add(ctx context.Context, entity *enduser.EndUser) error {
	if err := entity.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entity)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(entity.ID(), entity)
	return nil
}

// Get retrieves an end user by ID.
func (r *GormEndUserRepository) Get(ctx context.Context, id kernel.UUID) (*enduser.EndUser, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EndUserDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("end user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByName retrieves an end user by its unique name.
func (r *GormEndUserRepository) GetByName(ctx context.Context, name string) (*enduser.EndUser, error) {
	var dto EndUserDTO
	if err := r.db.WithContext(ctx).First(&dto, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("end user", name)
		}
		return nil, err
	}

	return toDomain(dto)
}
