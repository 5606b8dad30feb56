package assistant

type ChatRequest struct {
	Query string `json:"query" binding:"required,min=2,max=2000"`
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
