// Package report é a camada de derivação: funções puras que dobram os
// registros crus em agregados prontos para o dashboard. Nada aqui
// escreve no store.
package report

import (
	"fmt"
	"sort"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// AttemptSummary resume uma rodada de outreach (1º/2º/3º email) de uma
// empresa, agregada sobre os EmailStats crus.
type AttemptSummary struct {
	AttemptNumber   int    `json:"attemptNumber"`
	SentDate        string `json:"sentDate,omitempty"`
	PeopleContacted int    `json:"peopleContacted"`
	EmailOpened     string `json:"emailOpened"`  // "k/n"
	ResumeOpened    string `json:"resumeOpened"` // "k/n"
	Response        string `json:"response"`     // "Yes"/"No"

	emailOpens  int
	resumeOpens int
}

// CampaignSummaries agrupa os stats por attemptNumber e resume cada
// grupo. Cada registro contribui um indicador 0/1 de aberto (openCount
// > 0), não a contagem bruta de visualizações. Saída ordenada por
// número da tentativa.
func CampaignSummaries(stats []*entity.EmailStat) []AttemptSummary {
	groups := make(map[int]*AttemptSummary)

	for _, s := range stats {
		summary, ok := groups[s.AttemptNumber]
		if !ok {
			summary = &AttemptSummary{
				AttemptNumber: s.AttemptNumber,
				SentDate:      s.SentDate,
				Response:      "No",
			}
			groups[s.AttemptNumber] = summary
		}

		summary.PeopleContacted++
		if s.OpenCount > 0 {
			summary.emailOpens++
		}
		if s.ResumeOpenCount > 0 {
			summary.resumeOpens++
		}
		if s.Responded {
			summary.Response = "Yes"
		}
		// data mais recente do grupo
		if s.SentDate > summary.SentDate {
			summary.SentDate = s.SentDate
		}
	}

	summaries := make([]AttemptSummary, 0, len(groups))
	for _, g := range groups {
		g.EmailOpened = fmt.Sprintf("%d/%d", g.emailOpens, g.PeopleContacted)
		g.ResumeOpened = fmt.Sprintf("%d/%d", g.resumeOpens, g.PeopleContacted)
		summaries = append(summaries, *g)
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].AttemptNumber < summaries[j].AttemptNumber
	})

	return summaries
}
