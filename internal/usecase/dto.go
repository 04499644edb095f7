package usecase

import "github.com/xavierca1/outreach-tracker/internal/entity"

type CreateCompanyInput struct {
	Name        string `json:"name"`
	Website     string `json:"website"`
	Linkedin    string `json:"linkedin"`
	Crunchbase  string `json:"crunchbase"`
	CompanySize string `json:"companySize"`
}

type CreatePersonInput struct {
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Position  string `json:"position"`
	Linkedin  string `json:"linkedin"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

type CreateEmailStatInput struct {
	PersonID      string `json:"personId"`
	CompanyID     string `json:"companyId"`
	AttemptNumber int    `json:"attemptNumber"`
	SentDate      string `json:"sentDate"`
	Subject       string `json:"subject"`
}

type SendAttemptInput struct {
	PersonID string `json:"personId"`
	Subject  string `json:"subject"`
}

type SendAttemptOutput struct {
	Stat    *entity.EmailStat `json:"stat"`
	Person  *entity.Person    `json:"person"`
	Attempt int               `json:"attempt"`
}

type RecordEngagementInput struct {
	PersonID string `json:"personId"`
	StatID   string `json:"statId,omitempty"` // vazio = última tentativa da pessoa
	Type     string `json:"type"`
}

type ScheduleCompanyInput struct {
	CompanyID string `json:"companyId"`
}

type ScheduleCompanyOutput struct {
	Label           string `json:"label"` // tricotomia, calculada ANTES de agendar
	PeopleScheduled int    `json:"peopleScheduled"`
}

type SchedulePersonInput struct {
	PersonID string `json:"personId"`
	Slot     int    `json:"slot"`           // 1..3
	Date     string `json:"date,omitempty"` // vazio = gerar pelo scheduler
}

type SchedulePersonOutput struct {
	Slot int    `json:"slot"`
	Date string `json:"date"`
}

type DeletePersonInput struct {
	PersonID string `json:"personId"`
}

type DeleteCompanyInput struct {
	CompanyID   string `json:"companyId"`
	ConfirmName string `json:"confirmName"`
}
