package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hr-core/hr-core-go/internal/domain/assistant"
	"github.com/hr-core/hr-core-go/internal/handler/http/response"
)

type AssistantHandler interface {
	Ask(w http.ResponseWriter, r *http.Request)
}

type AssistantHandlerImpl struct {
	assistantService assistant.AssistantService
}

func NewAssistantHandler(assistantService assistant.AssistantService) AssistantHandler {
	return &AssistantHandlerImpl{assistantService: assistantService}
}

// Ask implements AssistantHandler.
func (h *AssistantHandlerImpl) Ask(w http.ResponseWriter, r *http.Request) {
	var askReq assistant.AskRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&askReq); err != nil {
		slog.Error("Assistant ask decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Call service
	answer, err := h.assistantService.Ask(r.Context(), askReq)
	if err != nil {
		slog.Error("Assistant ask service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, answer)
}
