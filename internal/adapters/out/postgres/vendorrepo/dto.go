// Package vendorrepo provides data transfer objects and mapping functions
// for vendor account persistence.
package vendorrepo

import (
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendors.
// Shop name and email carry unique indexes; delivery price is stored in
// minor currency units.
type VendorDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopName      string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	OwnerName     string    `gorm:"type:varchar(255);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Phone         string    `gorm:"type:varchar(64);not null"`
	Address       string    `gorm:"type:varchar(512);not null"`
	PasswordHash  string    `gorm:"type:varchar(255);not null"`
	DeliveryPrice int64     `gorm:"type:bigint;not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// fromDomain converts a vendor aggregate to its database representation.
func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:            aggregate.ID().Bytes(),
		ShopName:      aggregate.ShopName(),
		OwnerName:     aggregate.OwnerName(),
		Email:         aggregate.Email(),
		Phone:         aggregate.Phone(),
		Address:       aggregate.Address(),
		PasswordHash:  aggregate.PasswordHash(),
		DeliveryPrice: aggregate.DeliveryPrice().Amount(),
	}
}

// toDomain converts a database DTO to a vendor aggregate.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryPrice, err := kernel.NewMoney(dto.DeliveryPrice)
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(
		id,
		dto.ShopName,
		dto.OwnerName,
		dto.Email,
		dto.Phone,
		dto.Address,
		dto.PasswordHash,
		deliveryPrice,
	)
}
