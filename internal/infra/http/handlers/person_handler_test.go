package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/report"
	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

func TestListPeopleByCompany(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/people?companyId=1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var people []*entity.Person
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &people))
	assert.Len(t, people, 2)

	rec = do(r, http.MethodGet, "/api/people", nil)
	json.Unmarshal(rec.Body.Bytes(), &people)
	assert.Len(t, people, 6)
}

// Cadastrar pessoa incrementa totalPeople da empresa; remover
// decrementa e limpa as tentativas dela.
func TestCreateAndDeletePersonAdjustsCompany(t *testing.T) {
	r, companies, _, stats := testRouter()
	ctx := context.Background()

	rec := do(r, http.MethodPost, "/api/people", usecase.CreatePersonInput{
		CompanyID: "4",
		Name:      "Grace Lee",
		Email:     "grace@figma.com",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Person
	json.Unmarshal(rec.Body.Bytes(), &created)
	assert.NotEmpty(t, created.ID)

	company, _ := companies.FindByID(ctx, "4")
	assert.Equal(t, 2, company.TotalPeople)

	rec = do(r, http.MethodDelete, "/api/people/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	company, _ = companies.FindByID(ctx, "4")
	assert.Equal(t, 1, company.TotalPeople)

	orphans, _ := stats.FindByPersonID(ctx, created.ID)
	assert.Empty(t, orphans)
}

func TestCreatePersonInvalidEmail(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodPost, "/api/people", usecase.CreatePersonInput{
		CompanyID: "4",
		Name:      "Grace Lee",
		Email:     "não é email",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePersonCompanyNotFound(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodPost, "/api/people", usecase.CreatePersonInput{
		CompanyID: "ghost",
		Name:      "Grace Lee",
		Email:     "grace@figma.com",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendEndpoint(t *testing.T) {
	r, companies, people, _ := testRouter()
	ctx := context.Background()

	rec := do(r, http.MethodPost, "/api/people/p2/send", map[string]string{"subject": "Oi Bob"})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var output usecase.SendAttemptOutput
	json.Unmarshal(rec.Body.Bytes(), &output)
	assert.Equal(t, 1, output.Attempt)
	assert.Equal(t, "Oi Bob", output.Stat.Subject)

	person, _ := people.FindByID(ctx, "p2")
	assert.Equal(t, 1, person.Attempts)

	company, _ := companies.FindByID(ctx, "1")
	assert.Equal(t, 3, company.TotalEmails)
}

func TestSendEndpointRejectsIneligible(t *testing.T) {
	r, _, _, _ := testRouter()

	// p4 já respondeu
	rec := do(r, http.MethodPost, "/api/people/p4/send", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	json.Unmarshal(rec.Body.Bytes(), &body)
	assert.Equal(t, "ALREADY_RESPONDED", body["error"])
}

func TestSendStateEndpoint(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/people/p2/send", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var state struct {
		Enabled bool   `json:"enabled"`
		Label   string `json:"label"`
	}
	json.Unmarshal(rec.Body.Bytes(), &state)
	assert.True(t, state.Enabled)
	assert.Equal(t, "Send", state.Label)

	// p1 já tem tentativas: vira follow-up
	rec = do(r, http.MethodGet, "/api/people/p1/send", nil)
	json.Unmarshal(rec.Body.Bytes(), &state)
	assert.True(t, state.Enabled)
	assert.Equal(t, "Follow Up", state.Label)

	// p4 respondeu: desabilitado
	rec = do(r, http.MethodGet, "/api/people/p4/send", nil)
	json.Unmarshal(rec.Body.Bytes(), &state)
	assert.False(t, state.Enabled)
}

func TestEventIngestEndpoint(t *testing.T) {
	r, companies, _, _ := testRouter()
	ctx := context.Background()

	rec := do(r, http.MethodPost, "/api/events", usecase.RecordEngagementInput{
		PersonID: "p6",
		StatID:   "s8",
		Type:     "open",
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)

	company, _ := companies.FindByID(ctx, "4")
	assert.Equal(t, 1, company.OpenCount)
	assert.True(t, company.HasOpened)
}

func TestEventIngestRejectsUnknownType(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodPost, "/api/events", usecase.RecordEngagementInput{
		PersonID: "p6",
		Type:     "forwarded",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatsTotalsEndpoint(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/stats", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var totals report.DashboardTotals
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Equal(t, 8, totals.TotalEmails)
	assert.Equal(t, 4, totals.TotalOpens)
	assert.Equal(t, 1, totals.TotalResponses)
	assert.Len(t, totals.Companies, 4)
	assert.Len(t, totals.People, 6)
	assert.Len(t, totals.EmailStats, 8)
}

func TestEmailStatEndpoints(t *testing.T) {
	r, _, _, _ := testRouter()

	rec := do(r, http.MethodGet, "/api/email-stats?personId=p4", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var stats []*entity.EmailStat
	json.Unmarshal(rec.Body.Bytes(), &stats)
	assert.Len(t, stats, 3)

	rec = do(r, http.MethodPost, "/api/email-stats", usecase.CreateEmailStatInput{
		PersonID:      "p2",
		AttemptNumber: 1,
		SentDate:      "2026-01-05",
		Subject:       "Importado de fora",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.EmailStat
	json.Unmarshal(rec.Body.Bytes(), &created)
	// companyId derivado da pessoa
	assert.Equal(t, "1", created.CompanyID)
}

// Registro de tentativa é append-only: não existe PATCH na rota.
// Engajamento entra por POST /api/events.
func TestEmailStatHasNoPatchRoute(t *testing.T) {
	r, _, _, stats := testRouter()

	rec := do(r, http.MethodPatch, "/api/email-stats/s1", map[string]int{"openCount": 99})
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	stat, _ := stats.FindByID(context.Background(), "s1")
	assert.Equal(t, 2, stat.OpenCount)
}
