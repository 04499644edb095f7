package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// A linha do dashboard sai dos contadores agregados da empresa; o
// drill-down por tentativa sai dos EmailStats crus. Quando os dois
// descrevem os mesmos envios, as derivações têm que concordar.
func TestRowAndCampaignSummariesAgree(t *testing.T) {
	// uma rodada: 3 contatos, 2 abriram o email, 1 abriu o currículo
	company := &entity.Company{
		ID: "9", Name: "Vercel", Website: "vercel.com",
		TotalEmails: 3, TotalPeople: 3, LastAttempt: "2026-01-07",
		HasOpened: true, OpenCount: 2,
		ResumeOpenCount: 1,
		Status:          entity.CompanyStatusActive,
	}
	stats := []*entity.EmailStat{
		{ID: "t1", PersonID: "q1", CompanyID: "9", AttemptNumber: 1,
			SentDate: "2026-01-05", OpenCount: 2, ResumeOpenCount: 1},
		{ID: "t2", PersonID: "q2", CompanyID: "9", AttemptNumber: 1,
			SentDate: "2026-01-06", OpenCount: 1},
		{ID: "t3", PersonID: "q3", CompanyID: "9", AttemptNumber: 1,
			SentDate: "2026-01-07"},
	}

	row := BuildCompanyRow(company)
	summaries := CampaignSummaries(stats)
	assert.Len(t, summaries, 1)
	round := summaries[0]

	assert.Equal(t, "2/3", row.EmailOpened)
	assert.Equal(t, round.EmailOpened, row.EmailOpened)
	assert.Equal(t, round.ResumeOpened, row.ResumeOpened)
	assert.Equal(t, round.Response, row.Response)
	assert.Equal(t, company.TotalPeople, round.PeopleContacted)
}

// Resposta: a linha diz "Yes" exatamente quando alguma rodada diz
// "Yes", independente de qual tentativa trouxe a resposta.
func TestRowResponseAgreesAcrossAttempts(t *testing.T) {
	company := &entity.Company{
		ID: "9", Name: "Vercel", Website: "vercel.com",
		TotalEmails: 3, TotalPeople: 2, LastAttempt: "2026-01-12",
		HasOpened: true, OpenCount: 1,
		HasResponded: true,
		Status:       entity.CompanyStatusActive,
	}
	stats := []*entity.EmailStat{
		{ID: "t1", PersonID: "q1", CompanyID: "9", AttemptNumber: 1,
			SentDate: "2026-01-05", OpenCount: 1},
		{ID: "t2", PersonID: "q2", CompanyID: "9", AttemptNumber: 1,
			SentDate: "2026-01-05"},
		{ID: "t3", PersonID: "q1", CompanyID: "9", AttemptNumber: 2,
			SentDate: "2026-01-12", Responded: true},
	}

	row := BuildCompanyRow(company)
	summaries := CampaignSummaries(stats)
	assert.Len(t, summaries, 2)

	anyYes := false
	for _, s := range summaries {
		if s.Response == "Yes" {
			anyYes = true
		}
	}
	assert.True(t, anyYes)
	assert.Equal(t, "Yes", row.Response)
}
