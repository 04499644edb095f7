package report

import (
	"fmt"
	"time"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// CompanyRow é a linha da tabela do dashboard, derivada direto dos
// contadores agregados da empresa (não dos EmailStats crus — ver
// CampaignSummaries para o drill-down por tentativa).
type CompanyRow struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Website        string `json:"website"`
	CurrentAttempt int    `json:"currentAttempt"` // min(totalEmails, 3)
	EmailOpened    string `json:"emailOpened"`    // "k/n" sobre pessoas distintas
	ResumeOpened   string `json:"resumeOpened"`
	Response       string `json:"response"` // "Yes"/"No"
	LastSent       string `json:"lastSent"` // "Jan 2" ou "Never"
	Decision       string `json:"decision,omitempty"`
	Status         string `json:"status"`
}

func BuildCompanyRow(c *entity.Company) CompanyRow {
	currentAttempt := c.TotalEmails
	if currentAttempt > entity.MaxAttempts {
		currentAttempt = entity.MaxAttempts
	}

	response := "No"
	if c.HasResponded {
		response = "Yes"
	}

	return CompanyRow{
		ID:             c.ID,
		Name:           c.Name,
		Website:        c.Website,
		CurrentAttempt: currentAttempt,
		EmailOpened:    fmt.Sprintf("%d/%d", c.OpenCount, c.TotalPeople),
		ResumeOpened:   fmt.Sprintf("%d/%d", c.ResumeOpenCount, c.TotalPeople),
		Response:       response,
		LastSent:       FormatLastSent(c.LastAttempt),
		Decision:       c.Decision,
		Status:         c.Status,
	}
}

// FormatLastSent formata YYYY-MM-DD como "Jan 2"; vazio vira "Never".
// Valores fora do formato passam adiante como estão.
func FormatLastSent(date string) string {
	if date == "" {
		return "Never"
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2")
}

// SendButton deriva o estado do botão de envio de um contato:
// habilitado enquanto elegível, com rótulo "Send" na primeira
// tentativa e "Follow Up" nas seguintes.
func SendButton(p *entity.Person) (enabled bool, label string) {
	label = "Send"
	if p.Attempts > 0 {
		label = "Follow Up"
	}
	return p.CanSend(), label
}
