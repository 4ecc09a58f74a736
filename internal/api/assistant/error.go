package assistant

import "OmniCalc/pkg/response"

var (
	ErrNoQuery = response.NewError(400, "No query provided.")
)
