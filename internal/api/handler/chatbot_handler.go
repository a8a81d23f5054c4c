package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sneha-510/smart-coalmine-system/internal/dto"
	"github.com/sneha-510/smart-coalmine-system/internal/service"
	"github.com/sneha-510/smart-coalmine-system/pkg/response"
)

// ChatbotHandler serves the keyword assistant.
type ChatbotHandler struct {
	chatbotSvc service.ChatbotService
}

// NewChatbotHandler creates a ChatbotHandler.
func NewChatbotHandler(chatbotSvc service.ChatbotService) *ChatbotHandler {
	return &ChatbotHandler{chatbotSvc: chatbotSvc}
}

// Message answers a chat message with a keyword-matched reply.
// POST /api/v1/chatbot/message
func (h *ChatbotHandler) Message(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Message is required")
		return
	}

	reply, err := h.chatbotSvc.Reply(c.Request.Context(), userID, role, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"reply": reply.Reply})
}
