package assistant

type AIQueryRequest struct {
	Query string `json:"query" validate:"required"`
}
