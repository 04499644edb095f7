package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-tracker/internal/report"
	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

type PersonHandler struct {
	People       entity.PersonRepositoryInterface
	CreatePerson *usecase.CreatePersonUseCase
	DeletePerson *usecase.DeletePersonUseCase
	SendAttempt  *usecase.SendAttemptUseCase
	Schedule     *usecase.ScheduleOutreachUseCase
}

func NewPersonHandler(
	people entity.PersonRepositoryInterface,
	createPerson *usecase.CreatePersonUseCase,
	deletePerson *usecase.DeletePersonUseCase,
	sendAttempt *usecase.SendAttemptUseCase,
	schedule *usecase.ScheduleOutreachUseCase,
) *PersonHandler {
	return &PersonHandler{
		People:       people,
		CreatePerson: createPerson,
		DeletePerson: deletePerson,
		SendAttempt:  sendAttempt,
		Schedule:     schedule,
	}
}

// List devolve todas as pessoas, ou só as da empresa quando
// ?companyId= vem na query.
func (h *PersonHandler) List(w http.ResponseWriter, r *http.Request) {
	companyID := r.URL.Query().Get("companyId")

	var (
		people []*entity.Person
		err    error
	)
	if companyID != "" {
		people, err = h.People.FindByCompanyID(r.Context(), companyID)
	} else {
		people, err = h.People.FindAll(r.Context())
	}
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, people)
}

func (h *PersonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	person, err := h.People.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "PERSON_NOT_FOUND", "person not found")
		return
	}
	writeJSON(w, http.StatusOK, person)
}

// Create cadastra a pessoa e incrementa totalPeople da empresa, numa
// saga no caso de uso.
func (h *PersonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreatePersonInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	if errs := usecase.ValidateCreatePersonInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	person, err := h.CreatePerson.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, person)
}

func (h *PersonHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch entity.PersonPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	if errs := usecase.ValidatePersonPatch(&patch); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	updated, err := h.People.Update(r.Context(), id, &patch)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "PERSON_NOT_FOUND", "person not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete remove a pessoa, os registros de envio dela e decrementa
// totalPeople da empresa (cascata na saga do caso de uso).
func (h *PersonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.DeletePerson.Execute(r.Context(), usecase.DeletePersonInput{PersonID: id}); err != nil {
		writeUseCaseError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Send registra mais uma tentativa de contato para a pessoa.
func (h *PersonHandler) Send(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Subject string `json:"subject"`
	}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&body)
	}

	output, err := h.SendAttempt.Execute(r.Context(), usecase.SendAttemptInput{
		PersonID: id,
		Subject:  body.Subject,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordEmailSent()
	writeJSON(w, http.StatusCreated, output)
}

// SendState devolve o estado do botão de envio da pessoa.
func (h *PersonHandler) SendState(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	person, err := h.People.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "PERSON_NOT_FOUND", "person not found")
		return
	}
	enabled, label := report.SendButton(person)
	writeJSON(w, http.StatusOK, map[string]any{
		"enabled": enabled,
		"label":   label,
	})
}

// ScheduleSlot agenda (ou consulta, idempotente) um dos três slots.
func (h *PersonHandler) ScheduleSlot(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body struct {
		Slot int    `json:"slot"`
		Date string `json:"date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	output, err := h.Schedule.ExecutePerson(r.Context(), usecase.SchedulePersonInput{
		PersonID: id,
		Slot:     body.Slot,
		Date:     body.Date,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordSchedulesCreated(1)
	writeJSON(w, http.StatusOK, output)
}
