package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"geodelivery/internal/core/domain/model/geo"
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/core/domain/services"
	"geodelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryEstimateQueryHandler produces delivery estimates for catalog products.
// Reads the product and its partner with a direct SQL join, resolves the shipment
// origin from the partner's shop pincode, then delegates to the domain services
// for tier classification and date scheduling.
//
// Partners registered without a usable shop pincode still get estimates: the
// handler falls back to the headquarters pincode as the shipment origin.
type GetDeliveryEstimateQueryHandler struct {
	db            *gorm.DB
	calculator    services.TierCalculator
	scheduler     services.BusinessDayScheduler
	directory     *geo.Directory
	defaultOrigin kernel.PostalCode
	now           func() time.Time
}

// NewGetDeliveryEstimateQueryHandler creates a handler for product delivery estimates.
// defaultOrigin serves as the fallback shipment origin for partners without a
// valid shop pincode. The now function is injectable for deterministic tests.
func NewGetDeliveryEstimateQueryHandler(
	db *gorm.DB,
	calculator services.TierCalculator,
	scheduler services.BusinessDayScheduler,
	directory *geo.Directory,
	defaultOrigin kernel.PostalCode,
	now func() time.Time,
) GetDeliveryEstimateQueryHandler {
	if now == nil {
		now = time.Now
	}

	return GetDeliveryEstimateQueryHandler{
		db:            db,
		calculator:    calculator,
		scheduler:     scheduler,
		directory:     directory,
		defaultOrigin: defaultOrigin,
		now:           now,
	}
}

// Handle executes the estimate query for a single product.
// Returns an ObjectNotFoundError when the product does not exist.
func (h GetDeliveryEstimateQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryEstimateQuery,
) (GetDeliveryEstimateQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	var (
		productID   uuid.UUID
		productName string
		partnerName string
		shopPincode sql.NullString
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			pr.id,
			pr.name,
			pa.name,
			pa.shop_pincode
		FROM products pr
		JOIN partners pa ON pa.id = pr.partner_id
		WHERE pr.id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(&productID, &productName, &partnerName, &shopPincode)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryEstimateQueryResponse{},
			errs.NewObjectNotFoundError("productID", query.ProductID().String())
	}
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	id, err := kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	origin := h.defaultOrigin
	if shopPincode.Valid {
		if code, codeErr := kernel.NewPostalCode(shopPincode.String); codeErr == nil {
			origin = code
		}
	}

	tier, err := h.calculator.Classify(origin, query.Destination())
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	earliest, latest, err := h.scheduler.DatesForTier(tier, h.now())
	if err != nil {
		return GetDeliveryEstimateQueryResponse{}, err
	}

	originSettlement := h.directory.ResolveSettlement(origin)

	return GetDeliveryEstimateQueryResponse{
		ProductID:   id,
		ProductName: productName,
		PartnerName: partnerName,
		Origin: OriginLocation{
			Pincode:    origin.String(),
			Region:     originSettlement.Region.String(),
			Settlement: originSettlement.Name,
		},
		Destination:  query.Destination().String(),
		Tier:         tier.String(),
		DayRange:     tier.RangeLabel(),
		MinDays:      tier.MinDays(),
		MaxDays:      tier.MaxDays(),
		EarliestDate: earliest,
		LatestDate:   latest,
	}, nil
}
