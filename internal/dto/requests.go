package dto

// LeadCaptureRequest is the payload of the city-page lead form. The form
// posts urlencoded fields and the JS progressive enhancement posts JSON, so
// both tag sets are present.
type LeadCaptureRequest struct {
	Name          string `json:"name" form:"name"`
	Phone         string `json:"phone" form:"phone"`
	Email         string `json:"email" form:"email"`
	ServiceNeeded string `json:"service_needed" form:"service_needed"`
	ZipCode       string `json:"zip_code" form:"zip_code"`
}

// QuoteRequest is the payload of the per-company quote form.
type QuoteRequest struct {
	CompanyName   string `json:"company_name" form:"company_name"`
	CompanySlug   string `json:"company_slug" form:"company_slug"`
	Name          string `json:"name" form:"name"`
	Phone         string `json:"phone" form:"phone"`
	Email         string `json:"email" form:"email"`
	ServiceOption string `json:"service_option" form:"service_option"`
	Message       string `json:"message" form:"message"`
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// LoginResponse returns the signed session token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// SubmissionAck confirms an accepted intake submission.
type SubmissionAck struct {
	ID string `json:"id"`
}
