package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/outreach-tracker/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

type EventHandler struct {
	RecordEngagement *usecase.RecordEngagementUseCase
}

func NewEventHandler(recordEngagement *usecase.RecordEngagementUseCase) *EventHandler {
	return &EventHandler{RecordEngagement: recordEngagement}
}

// Ingest recebe um evento de engajamento (open, click, resume_open,
// reply) e propaga os contadores para stat, pessoa e empresa.
func (h *EventHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecordEngagementInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	if errs := usecase.ValidateRecordEngagementInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.RecordEngagement.Execute(r.Context(), input); err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordEngagementEvent(input.Type)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "recorded"})
}
