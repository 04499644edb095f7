package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/infra/http/middleware"
	"github.com/xavierca1/outreach-tracker/internal/report"
	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

type CompanyHandler struct {
	Companies     entity.CompanyRepositoryInterface
	People        entity.PersonRepositoryInterface
	Stats         entity.EmailStatRepositoryInterface
	DeleteCompany *usecase.DeleteCompanyUseCase
	Schedule      *usecase.ScheduleOutreachUseCase
}

func NewCompanyHandler(
	companies entity.CompanyRepositoryInterface,
	people entity.PersonRepositoryInterface,
	stats entity.EmailStatRepositoryInterface,
	deleteCompany *usecase.DeleteCompanyUseCase,
	schedule *usecase.ScheduleOutreachUseCase,
) *CompanyHandler {
	return &CompanyHandler{
		Companies:     companies,
		People:        people,
		Stats:         stats,
		DeleteCompany: deleteCompany,
		Schedule:      schedule,
	}
}

// List devolve todas as empresas. Com q/status/sort/page na query o
// resultado vem paginado como report.CompanyPage; sem filtro nenhum a
// resposta é o array puro.
func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Companies.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}

	q := r.URL.Query()
	if !q.Has("q") && !q.Has("status") && !q.Has("sort") && !q.Has("page") {
		writeJSON(w, http.StatusOK, companies)
		return
	}

	page, _ := strconv.Atoi(q.Get("page"))
	filter := report.CompanyFilter{
		Query:  q.Get("q"),
		Status: q.Get("status"),
		Sort:   q.Get("sort"),
		Page:   page,
	}
	writeJSON(w, http.StatusOK, report.FilterCompanies(companies, filter))
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	company, err := h.Companies.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "COMPANY_NOT_FOUND", "company not found")
		return
	}
	writeJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateCompanyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	if errs := usecase.ValidateCreateCompanyInput(input); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	company, err := entity.NewCompany(input.Name, input.Website, input.Linkedin, input.Crunchbase, input.CompanySize)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.Companies.Create(r.Context(), company); err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Patch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch entity.CompanyPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_BODY", "invalid JSON body")
		return
	}

	if errs := usecase.ValidateCompanyPatch(&patch); len(errs) > 0 {
		writeValidationErrors(w, errs)
		return
	}

	updated, err := h.Companies.Update(r.Context(), id, &patch)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "COMPANY_NOT_FOUND", "company not found")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete exige ?confirm=<nome exato> e apaga em cascata pessoas e
// registros de envio da empresa.
func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirm := r.URL.Query().Get("confirm")

	err := h.DeleteCompany.Execute(r.Context(), usecase.DeleteCompanyInput{
		CompanyID:   id,
		ConfirmName: confirm,
	})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordCompanyDeleted()
	w.WriteHeader(http.StatusNoContent)
}

// Campaigns agrega os envios da empresa por número da tentativa.
func (h *CompanyHandler) Campaigns(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Companies.FindByID(r.Context(), id); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "COMPANY_NOT_FOUND", "company not found")
		return
	}

	stats, err := h.Stats.FindByCompanyID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report.CampaignSummaries(stats))
}

// Row devolve a linha do dashboard projetada dos contadores da empresa.
func (h *CompanyHandler) Row(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	company, err := h.Companies.FindByID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusNotFound, "COMPANY_NOT_FOUND", "company not found")
		return
	}
	writeJSON(w, http.StatusOK, report.BuildCompanyRow(company))
}

func (h *CompanyHandler) ScheduleAll(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	output, err := h.Schedule.ExecuteCompany(r.Context(), usecase.ScheduleCompanyInput{CompanyID: id})
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordSchedulesCreated(output.PeopleScheduled)
	writeJSON(w, http.StatusOK, output)
}

// ScheduleStatus devolve o rótulo do botão de agendamento da empresa.
func (h *CompanyHandler) ScheduleStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.Companies.FindByID(r.Context(), id); err != nil {
		writeErrorResponse(w, http.StatusNotFound, "COMPANY_NOT_FOUND", "company not found")
		return
	}

	people, err := h.People.FindByCompanyID(r.Context(), id)
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"label":       report.ScheduleButtonLabel(people),
		"unscheduled": report.UnscheduledCount(people),
		"people":      people,
	})
}
