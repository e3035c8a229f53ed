// Package partnerrepo provides data transfer objects and mapping functions for partner persistence.
// This package implements the repository pattern for the partner domain aggregate, handling
// the conversion between domain entities and database representations.
package partnerrepo

import (
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/model/partner"

	"github.com/google/uuid"
)

// PartnerDTO represents the database structure for persisting partner aggregates.
// The shop pincode is stored as raw text; validity is a domain concern and
// malformed values are tolerated here.
type PartnerDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"type:varchar(255);not null"`
	ShopPincode string    `gorm:"type:varchar(16)"`
}

// TableName specifies the database table name for partner entities.
// Overrides GORM's default naming convention to use "partners" instead of "partner_dtos".
func (PartnerDTO) TableName() string {
	return "partners"
}

// fromDomain converts a partner domain aggregate to its database representation.
func fromDomain(partner *partner.Partner) PartnerDTO {
	return PartnerDTO{
		ID:          partner.ID().Bytes(),
		Name:        partner.Name(),
		ShopPincode: partner.ShopPincode(),
	}
}

// toDomain converts a database DTO to a partner domain aggregate.
// Reconstructs the aggregate using RestorePartner.
func toDomain(dto PartnerDTO) (*partner.Partner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return partner.RestorePartner(id, dto.Name, dto.ShopPincode)
}
