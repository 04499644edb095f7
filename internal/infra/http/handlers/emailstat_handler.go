package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

type EmailStatHandler struct {
	Stats  entity.EmailStatRepositoryInterface
	People entity.PersonRepositoryInterface
}

func NewEmailStatHandler(stats entity.EmailStatRepositoryInterface, people entity.PersonRepositoryInterface) *EmailStatHandler {
	return &EmailStatHandler{Stats: stats, People: people}
}

// List devolve todos os registros de envio, ou só os da pessoa quando
// ?personId= vem na query.
func (h *EmailStatHandler) List(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("personId")

	var (
		stats []*entity.EmailStat
		err   error
	)
	if personID != "" {
		stats, err = h.Stats.FindByPersonID(r.Context(), personID)
	} else {
		stats, err = h.Stats.FindAll(r.Context())
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *EmailStatHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stat, err := h.Stats.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "STAT_NOT_FOUND", "email stat not found")
		return
	}
	writeJSON(w, http.StatusOK, stat)
}

func (h *EmailStatHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateEmailStatInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	// companyId pode vir vazio: deriva da pessoa antes de validar
	if input.CompanyID == "" && input.PersonID != "" {
		if person, err := h.People.FindByID(r.Context(), input.PersonID); err == nil {
			input.CompanyID = person.CompanyID
		}
	}

	if errs := usecase.ValidateCreateEmailStatInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	if _, err := h.People.FindByID(r.Context(), input.PersonID); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "PERSON_NOT_FOUND", "person not found")
		return
	}

	stat, err := entity.NewEmailStat(input.PersonID, input.CompanyID, input.AttemptNumber, input.SentDate, input.Subject)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.Stats.Create(r.Context(), stat); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, stat)
}

// Sem PATCH: o registro de tentativa é append-only. Engajamento entra
// por POST /api/events (ou pela fila) e é o caso de uso que mexe nos
// contadores.
