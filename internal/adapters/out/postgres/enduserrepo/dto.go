// Package enduserrepo persists end users.
package enduserrepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/enduser"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EndUserDTO is the database row for an end user.
type EndUserDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"uniqueIndex"`
	CreatedAt time.Time
}

// TableName overrides GORM's default naming to use "end_users".
func (EndUserDTO) TableName() string {
	return "end_users"
}

func fromDomain(entity *enduser.EndUser) EndUserDTO {
	return EndUserDTO{
		ID:        entity.ID().Bytes(),
		Name:      entity.Name(),
		CreatedAt: entity.CreatedAt(),
	}
}

func toDomain(dto EndUserDTO) (*enduser.EndUser, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return enduser.RestoreEndUser(id, dto.Name, dto.CreatedAt)
}
