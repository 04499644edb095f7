package report

import "github.com/xavierca1/outreach-tracker/internal/entity"

// DashboardTotals é o payload do GET /api/stats.
type DashboardTotals struct {
	TotalEmails    int                 `json:"totalEmails"`
	TotalOpens     int                 `json:"totalOpens"`
	TotalClicks    int                 `json:"totalClicks"`
	TotalResponses int                 `json:"totalResponses"`
	Companies      []*entity.Company   `json:"companies"`
	People         []*entity.Person    `json:"people"`
	EmailStats     []*entity.EmailStat `json:"emailStats"`
}

func BuildTotals(companies []*entity.Company, people []*entity.Person, stats []*entity.EmailStat) DashboardTotals {
	totals := DashboardTotals{
		Companies:  companies,
		People:     people,
		EmailStats: stats,
	}

	for _, c := range companies {
		totals.TotalEmails += c.TotalEmails
		totals.TotalOpens += c.OpenCount
		totals.TotalClicks += c.ClickCount
		if c.HasResponded {
			totals.TotalResponses++
		}
	}

	return totals
}
