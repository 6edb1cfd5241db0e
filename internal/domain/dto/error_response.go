package dto

import (
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// ErrorResponse is the JSON envelope returned on every non-2xx response.
//
// Fields:
//   - Message: short human readable description.
//   - ErrorDetails: underlying error text, when there is one.
//   - Kind: machine readable validation category (unknown_source, invalid_date,
//     range_too_large, end_before_start, invalid_parameter). Empty for server errors.
//   - Timestamp: moment the error was produced.
//
// swagger:model ErrorResponse
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid request"`
	ErrorDetails string    `json:"error_details,omitempty" example:"unknown source \"bbva\""`
	Kind         string    `json:"kind,omitempty" example:"unknown_source"`
	Timestamp    time.Time `json:"timestamp" example:"2025-09-15T10:30:00Z"`
}

// Error implements the error interface.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse with the current timestamp.
// err may be nil.
func NewErrorResponse(message string, err error) ErrorResponse {
	resp := ErrorResponse{
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	if err != nil {
		resp.ErrorDetails = err.Error()
	}
	return resp
}

// NewValidationErrorResponse renders a validation failure, carrying its kind.
func NewValidationErrorResponse(verr *models.ValidationError) ErrorResponse {
	resp := NewErrorResponse("invalid request", nil)
	resp.ErrorDetails = verr.Message
	resp.Kind = string(verr.Kind)
	return resp
}
