package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avabot/assistant/internal/api"
	"github.com/avabot/assistant/internal/assistant"
)

// ChatHandler adapts the assistant service to the HTTP boundary.
type ChatHandler struct {
	service *assistant.Service
}

func NewChatHandler(service *assistant.Service) *ChatHandler {
	return &ChatHandler{service: service}
}

// HandleChat serves POST /chatbot. A missing query field is the only
// request-validation failure; everything past binding always answers 200.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req api.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	log.Printf("--- New Query: '%.40s' ---", req.Query)
	c.JSON(http.StatusOK, h.service.Respond(c.Request.Context(), req.Query))
}
