package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/infra/database"
	"github.com/xavierca1/outreach-tracker/internal/report"
	"github.com/xavierca1/outreach-tracker/internal/schedule"
	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

// testRouter monta o router com repositórios em memória semeados,
// igual ao modo default do main.
func testRouter() (chi.Router, *database.MemoryCompanyRepository, *database.MemoryPersonRepository, *database.MemoryEmailStatRepository) {
	companies := database.NewMemoryCompanyRepository()
	people := database.NewMemoryPersonRepository()
	stats := database.NewMemoryEmailStatRepository()
	database.Seed(companies, people, stats)

	scheduler := schedule.NewScheduler(nil)
	scheduler.Now = func() time.Time { return time.Date(2026, 1, 5, 5, 0, 0, 0, time.UTC) }

	recordUC := usecase.NewRecordEngagementUseCase(people, companies, stats)
	sendUC := usecase.NewSendAttemptUseCase(people, companies, stats, nil, nil)
	scheduleUC := usecase.NewScheduleOutreachUseCase(people, companies, scheduler)
	deleteUC := usecase.NewDeleteCompanyUseCase(companies, people, stats)
	createPersonUC := usecase.NewCreatePersonUseCase(people, companies)
	deletePersonUC := usecase.NewDeletePersonUseCase(people, companies, stats)

	companyHandler := NewCompanyHandler(companies, people, stats, deleteUC, scheduleUC)
	personHandler := NewPersonHandler(people, createPersonUC, deletePersonUC, sendUC, scheduleUC)
	statHandler := NewEmailStatHandler(stats, people)
	statsHandler := NewStatsHandler(companies, people, stats)
	eventHandler := NewEventHandler(recordUC)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Route("/companies", func(r chi.Router) {
			r.Get("/", companyHandler.List)
			r.Post("/", companyHandler.Create)
			r.Get("/{id}", companyHandler.Get)
			r.Patch("/{id}", companyHandler.Patch)
			r.Delete("/{id}", companyHandler.Delete)
			r.Get("/{id}/campaigns", companyHandler.Campaigns)
			r.Get("/{id}/row", companyHandler.Row)
			r.Get("/{id}/schedule", companyHandler.ScheduleStatus)
			r.Post("/{id}/schedule", companyHandler.ScheduleAll)
		})
		r.Route("/people", func(r chi.Router) {
			r.Get("/", personHandler.List)
			r.Post("/", personHandler.Create)
			r.Get("/{id}", personHandler.Get)
			r.Patch("/{id}", personHandler.Patch)
			r.Delete("/{id}", personHandler.Delete)
			r.Post("/{id}/send", personHandler.Send)
			r.Get("/{id}/send", personHandler.SendState)
			r.Post("/{id}/schedule", personHandler.ScheduleSlot)
		})
		r.Route("/email-stats", func(r chi.Router) {
			r.Get("/", statHandler.List)
			r.Post("/", statHandler.Create)
			r.Get("/{id}", statHandler.Get)
		})
		r.Post("/events", eventHandler.Ingest)
		r.Get("/stats", statsHandler.Totals)
	})

	return r, companies, people, stats
}

func do(r chi.Router, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// ============ TESTES DO HANDLER ============

func TestListCompaniesPlainArray(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/companies", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var companies []*entity.Company
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &companies))
	assert.Len(t, companies, 4)
}

func TestListCompaniesFiltered(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/companies?q=stripe&page=1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var page report.CompanyPage
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "Stripe", page.Companies[0].Name)
}

func TestGetCompanyNotFound(t *testing.T) {
	r, _, _, _ := testRouter()
	rec := do(r, http.MethodGet, "/api/companies/ghost", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateCompany(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodPost, "/api/companies", usecase.CreateCompanyInput{
		Name:    "Vercel",
		Website: "https://vercel.com/",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Company
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "vercel.com", created.Website)
	assert.Equal(t, entity.CompanyStatusActive, created.Status)
}

func TestCreateCompanyValidationErrors(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodPost, "/api/companies", usecase.CreateCompanyInput{
		CompanySize: "muita gente",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error  string                    `json:"error"`
		Fields []usecase.ValidationError `json:"fields"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "VALIDATION_ERROR", body.Error)
	assert.Len(t, body.Fields, 3) // name, website, companySize
}

func TestPatchCompanyDecision(t *testing.T) {
	r, companies, _, _ := testRouter()

	rec := do(r, http.MethodPatch, "/api/companies/1", map[string]string{"decision": "yes"})
	assert.Equal(t, http.StatusOK, rec.Code)

	company, _ := companies.FindByID(context.Background(), "1")
	assert.Equal(t, entity.DecisionYes, company.Decision)
}

func TestDeleteCompanyRequiresConfirm(t *testing.T) {
	r, companies, _, _ := testRouter()

	rec := do(r, http.MethodDelete, "/api/companies/3", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(r, http.MethodDelete, "/api/companies/3?confirm=Stripe", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := companies.FindByID(context.Background(), "3")
	assert.Error(t, err)
}

func TestCompanyCampaigns(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/companies/3/campaigns", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var summaries []report.AttemptSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 3)
	assert.Equal(t, "2/2", summaries[0].EmailOpened)
}

func TestCompanyRow(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/companies/3/row", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var row report.CompanyRow
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &row))
	assert.Equal(t, 3, row.CurrentAttempt) // 4 envios, teto em 3
	assert.Equal(t, "2/2", row.EmailOpened)
	assert.Equal(t, "Yes", row.Response)
}

func TestCompanyScheduleFlow(t *testing.T) {
	r, _, people, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/companies/4/schedule", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var status struct {
		Label       string `json:"label"`
		Unscheduled int    `json:"unscheduled"`
	}
	json.Unmarshal(rec.Body.Bytes(), &status)
	assert.Equal(t, report.LabelScheduleAll, status.Label)
	assert.Equal(t, 1, status.Unscheduled)

	rec = do(r, http.MethodPost, "/api/companies/4/schedule", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	person, _ := people.FindByID(context.Background(), "p6")
	assert.True(t, person.FullyScheduled())

	rec = do(r, http.MethodGet, "/api/companies/4/schedule", nil)
	json.Unmarshal(rec.Body.Bytes(), &status)
	assert.Equal(t, report.LabelAllScheduled, status.Label)
}
