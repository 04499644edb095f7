package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/outreach-tracker/internal/entity"
)

func stat(person string, attempt int, sentDate string, opens, resumeOpens int, responded bool) *entity.EmailStat {
	return &entity.EmailStat{
		ID:              person + "-" + sentDate,
		PersonID:        person,
		CompanyID:       "c1",
		AttemptNumber:   attempt,
		SentDate:        sentDate,
		Subject:         "Oi",
		OpenCount:       opens,
		ResumeOpenCount: resumeOpens,
		Responded:       responded,
	}
}

func TestCampaignSummariesGroupsByAttempt(t *testing.T) {
	stats := []*entity.EmailStat{
		stat("p1", 1, "2026-01-05", 3, 0, false),
		stat("p2", 1, "2026-01-05", 0, 1, false),
		stat("p3", 1, "2026-01-06", 1, 0, true),
		stat("p1", 2, "2026-01-08", 0, 0, false),
	}

	summaries := CampaignSummaries(stats)

	assert.Len(t, summaries, 2)

	first := summaries[0]
	assert.Equal(t, 1, first.AttemptNumber)
	assert.Equal(t, 3, first.PeopleContacted)
	// cada registro conta 0/1, não a contagem bruta de aberturas
	assert.Equal(t, "2/3", first.EmailOpened)
	assert.Equal(t, "1/3", first.ResumeOpened)
	assert.Equal(t, "Yes", first.Response)
	// data mais recente do grupo
	assert.Equal(t, "2026-01-06", first.SentDate)

	second := summaries[1]
	assert.Equal(t, 2, second.AttemptNumber)
	assert.Equal(t, 1, second.PeopleContacted)
	assert.Equal(t, "0/1", second.EmailOpened)
	assert.Equal(t, "No", second.Response)
}

func TestCampaignSummariesEmpty(t *testing.T) {
	summaries := CampaignSummaries(nil)
	assert.Empty(t, summaries)
}

func TestCampaignSummariesSortedByAttempt(t *testing.T) {
	stats := []*entity.EmailStat{
		stat("p1", 3, "2026-01-12", 0, 0, false),
		stat("p1", 1, "2026-01-05", 0, 0, false),
		stat("p1", 2, "2026-01-08", 0, 0, false),
	}

	summaries := CampaignSummaries(stats)

	assert.Len(t, summaries, 3)
	for i, s := range summaries {
		assert.Equal(t, i+1, s.AttemptNumber)
	}
}

// A soma dos PeopleContacted de todos os grupos tem que bater com o
// total de registros de entrada.
func TestCampaignSummariesPeopleContactedSum(t *testing.T) {
	stats := []*entity.EmailStat{
		stat("p1", 1, "2026-01-05", 1, 0, false),
		stat("p2", 1, "2026-01-05", 0, 0, false),
		stat("p1", 2, "2026-01-08", 0, 0, false),
		stat("p2", 2, "2026-01-08", 0, 0, false),
		stat("p1", 3, "2026-01-12", 0, 0, false),
	}

	summaries := CampaignSummaries(stats)

	total := 0
	for _, s := range summaries {
		total += s.PeopleContacted
	}
	assert.Equal(t, len(stats), total)
}
