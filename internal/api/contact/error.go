package contact

import "OmniCalc/pkg/response"

var (
	ErrValidation = response.NewError(400, "All fields are required")
	ErrSendEmail  = response.NewError(500, "Failed to send email")
)
