package dto

// ── chatbot module DTOs ──

// ChatRequest POST /chatbot/message
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse is the canned reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}
