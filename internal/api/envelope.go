package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion is bumped only when the wire format itself changes.
const envelopeVersion = 1

// envelope is the versioned wrapper every API response is sent in.
//
// Success responses carry the payload under "data". Simple errors carry
// a bare "error" string; detailed errors expose code/message/details at
// the top level. The version field MUST stay named "v" - clients parse
// it by that exact name.
type envelope struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps every response body in the versioned
// envelope. Registered as a huma response transformer.
func EnvelopeTransformer(_ huma.Context, _ string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		if apiErr.Code == "" {
			return &envelope{
				V:       envelopeVersion,
				Success: false,
				Error:   apiErr.Message,
			}, nil
		}
		return &envelope{
			V:       envelopeVersion,
			Success: false,
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		}, nil
	}

	return &envelope{
		V:       envelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
