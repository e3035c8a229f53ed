package http

// ErrorResponse is the uniform error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// RegisterPartnerRequest is the body of POST /api/v1/partners.
type RegisterPartnerRequest struct {
	Name        string `json:"name"`
	ShopPincode string `json:"shopPincode,omitempty"`
}

// RegisterProductRequest is the body of POST /api/v1/products.
type RegisterProductRequest struct {
	Name      string `json:"name"`
	PartnerID string `json:"partnerId"`
}

// CreatedResponse carries the identifier of a newly registered aggregate.
type CreatedResponse struct {
	ID string `json:"id"`
}

// OriginResponse describes the shipment origin in estimate responses.
type OriginResponse struct {
	Pincode    string `json:"pincode"`
	Region     string `json:"region"`
	Settlement string `json:"settlement"`
}

// DeliveryEstimateResponse is the body of GET /api/v1/products/:productId/delivery-estimate.
type DeliveryEstimateResponse struct {
	ProductID    string         `json:"productId"`
	ProductName  string         `json:"productName"`
	PartnerName  string         `json:"partnerName"`
	Origin       OriginResponse `json:"origin"`
	Destination  string         `json:"destination"`
	Tier         string         `json:"tier"`
	DayRange     string         `json:"dayRange"`
	MinDays      int            `json:"minDays"`
	MaxDays      int            `json:"maxDays"`
	EarliestDate string         `json:"earliestDate"`
	LatestDate   string         `json:"latestDate"`
}

// PincodeResponse is the body of GET /api/v1/pincodes/:code.
type PincodeResponse struct {
	Pincode    string `json:"pincode"`
	Valid      bool   `json:"valid"`
	Region     string `json:"region,omitempty"`
	Settlement string `json:"settlement,omitempty"`
}

// DeliveryDaysResponse is the body of GET /api/v1/delivery-days.
type DeliveryDaysResponse struct {
	Origin       string `json:"origin"`
	Destination  string `json:"destination"`
	Tier         string `json:"tier"`
	DayRange     string `json:"dayRange"`
	MinDays      int    `json:"minDays"`
	MaxDays      int    `json:"maxDays"`
	EarliestDate string `json:"earliestDate"`
	LatestDate   string `json:"latestDate"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
