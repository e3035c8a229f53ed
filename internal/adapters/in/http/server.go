// Package http provides the inbound HTTP adapter.
// It translates HTTP requests into application commands and queries and maps
// domain errors onto status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"geodelivery/internal/core/application/usecases/commands"
	"geodelivery/internal/core/application/usecases/queries"
	"geodelivery/internal/core/domain/model/kernel"
	"geodelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the delivery estimation API.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerPartnerHandler commands.RegisterPartnerCommandHandler
	registerProductHandler commands.RegisterProductCommandHandler

	// Query handlers
	getDeliveryEstimateHandler  queries.GetDeliveryEstimateQueryHandler
	resolvePincodeHandler       queries.ResolvePincodeQueryHandler
	estimateDeliveryDaysHandler queries.EstimateDeliveryDaysQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	registerPartnerHandler commands.RegisterPartnerCommandHandler,
	registerProductHandler commands.RegisterProductCommandHandler,
	getDeliveryEstimateHandler queries.GetDeliveryEstimateQueryHandler,
	resolvePincodeHandler queries.ResolvePincodeQueryHandler,
	estimateDeliveryDaysHandler queries.EstimateDeliveryDaysQueryHandler,
) *Server {
	return &Server{
		registerPartnerHandler:      registerPartnerHandler,
		registerProductHandler:      registerProductHandler,
		getDeliveryEstimateHandler:  getDeliveryEstimateHandler,
		resolvePincodeHandler:       resolvePincodeHandler,
		estimateDeliveryDaysHandler: estimateDeliveryDaysHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1")
	api.POST("/partners", s.RegisterPartner)
	api.POST("/products", s.RegisterProduct)
	api.GET("/products/:productId/delivery-estimate", s.GetDeliveryEstimate)
	api.GET("/pincodes/:code", s.ResolvePincode)
	api.GET("/delivery-days", s.GetDeliveryDays)
}

// GetHealth handles GET /health - liveness probe.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}

// RegisterPartner handles POST /api/v1/partners - registers a new selling partner.
func (s *Server) RegisterPartner(ctx echo.Context) error {
	var req RegisterPartnerRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	partnerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterPartnerCommand(partnerID, req.Name, req.ShopPincode)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err = s.registerPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: partnerID.String()})
}

// RegisterProduct handles POST /api/v1/products - registers a product for a partner.
func (s *Server) RegisterProduct(ctx echo.Context) error {
	var req RegisterProductRequest
	if err := ctx.Bind(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid request body")
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid partner id")
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewRegisterProductCommand(productID, req.Name, partnerID)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	if err = s.registerProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: productID.String()})
}

// GetDeliveryEstimate handles GET /api/v1/products/:productId/delivery-estimate.
// The destination pincode arrives in the "pincode" query parameter.
func (s *Server) GetDeliveryEstimate(ctx echo.Context) error {
	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "Invalid product id")
	}

	query, err := queries.NewGetDeliveryEstimateQuery(productID, ctx.QueryParam("pincode"))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	estimate, err := s.getDeliveryEstimateHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryEstimateResponse{
		ProductID:   estimate.ProductID.String(),
		ProductName: estimate.ProductName,
		PartnerName: estimate.PartnerName,
		Origin: OriginResponse{
			Pincode:    estimate.Origin.Pincode,
			Region:     estimate.Origin.Region,
			Settlement: estimate.Origin.Settlement,
		},
		Destination:  estimate.Destination,
		Tier:         estimate.Tier,
		DayRange:     estimate.DayRange,
		MinDays:      estimate.MinDays,
		MaxDays:      estimate.MaxDays,
		EarliestDate: estimate.EarliestDate.Format(time.DateOnly),
		LatestDate:   estimate.LatestDate.Format(time.DateOnly),
	})
}

// ResolvePincode handles GET /api/v1/pincodes/:code - reference table lookup.
func (s *Server) ResolvePincode(ctx echo.Context) error {
	query := queries.NewResolvePincodeQuery(ctx.Param("code"))

	info, err := s.resolvePincodeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PincodeResponse{
		Pincode:    info.Pincode,
		Valid:      info.Valid,
		Region:     info.Region,
		Settlement: info.Settlement,
	})
}

// GetDeliveryDays handles GET /api/v1/delivery-days - estimates a window
// between the "from" and "to" query parameters.
func (s *Server) GetDeliveryDays(ctx echo.Context) error {
	query, err := queries.NewEstimateDeliveryDaysQuery(ctx.QueryParam("from"), ctx.QueryParam("to"))
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	estimate, err := s.estimateDeliveryDaysHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainErrorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeliveryDaysResponse{
		Origin:       query.Origin().String(),
		Destination:  query.Destination().String(),
		Tier:         estimate.Tier,
		DayRange:     estimate.DayRange,
		MinDays:      estimate.MinDays,
		MaxDays:      estimate.MaxDays,
		EarliestDate: estimate.EarliestDate.Format(time.DateOnly),
		LatestDate:   estimate.LatestDate.Format(time.DateOnly),
	})
}

// domainErrorResponse maps domain errors onto HTTP status codes.
// Validation failures become 400, missing objects 404, everything else 500.
func domainErrorResponse(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return errorResponse(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorResponse(ctx, http.StatusNotFound, err.Error())
	default:
		return errorResponse(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
