// Package productrepo provides data transfer objects and mapping functions for product persistence.
// This package implements the repository pattern for the product domain aggregate, handling
// the conversion between domain entities and database representations.
package productrepo

import (
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Links to the selling partner via foreign key.
type ProductDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null"`
	PartnerID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for product entities.
// Overrides GORM's default naming convention to use "products" instead of "product_dtos".
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(product *product.Product) ProductDTO {
	return ProductDTO{
		ID:        product.ID().Bytes(),
		Name:      product.Name(),
		PartnerID: product.PartnerID().Bytes(),
	}
}

// toDomain converts a database DTO to a product domain aggregate.
// Reconstructs the aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	partnerID, err := kernel.UUIDFromBytes(dto.PartnerID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, partnerID)
}
