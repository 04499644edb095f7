package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPersonNotFound = errors.New("person not found")

// MaxAttempts é o teto de tentativas de outreach por pessoa.
const MaxAttempts = 3

// ScheduleSlot é o estado de agendamento de UM dos três emails.
// Uma vez gerada, a data fica persistida no registro — ler de novo
// devolve a mesma data, nunca re-sorteia.
type ScheduleSlot struct {
	Scheduled bool   `json:"scheduled"`
	Date      string `json:"date,omitempty"` // YYYY-MM-DD
}

// Entidade: Person (contato dentro de uma empresa)
type Person struct {
	ID        string `json:"id"`
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Position  string `json:"position,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`

	Attempts      int    `json:"attempts"`
	LastEmailDate string `json:"lastEmailDate,omitempty"` // YYYY-MM-DD

	Opened          bool `json:"opened"`
	OpenCount       int  `json:"openCount"`
	Clicked         bool `json:"clicked"`
	ClickCount      int  `json:"clickCount"`
	ResumeOpened    bool `json:"resumeOpened"`
	ResumeOpenCount int  `json:"resumeOpenCount"`
	Responded       bool `json:"responded"`

	FirstEmail  ScheduleSlot `json:"firstEmail"`
	SecondEmail ScheduleSlot `json:"secondEmail"`
	ThirdEmail  ScheduleSlot `json:"thirdEmail"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewPerson(companyID, name, email, position, linkedin, city, country string) (*Person, error) {
	person := &Person{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Name:      name,
		Email:     email,
		Position:  position,
		Linkedin:  linkedin,
		City:      city,
		Country:   country,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := person.Validate(); err != nil {
		return nil, err
	}

	return person, nil
}

func (p *Person) Validate() error {
	if p.CompanyID == "" {
		return errors.New("companyId is required")
	}
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Email == "" {
		return errors.New("email is required")
	}
	return nil
}

// CanSend: elegível para outra tentativa enquanto attempts < 3 e
// ninguém respondeu. Attempts nunca diminui e Responded nunca volta
// para false, então uma vez inelegível, fica inelegível.
func (p *Person) CanSend() bool {
	return p.Attempts < MaxAttempts && !p.Responded
}

// Slot devolve o slot de agendamento 1-based (1..3).
func (p *Person) Slot(n int) *ScheduleSlot {
	switch n {
	case 1:
		return &p.FirstEmail
	case 2:
		return &p.SecondEmail
	case 3:
		return &p.ThirdEmail
	}
	return nil
}

func (p *Person) FullyScheduled() bool {
	return p.FirstEmail.Scheduled && p.SecondEmail.Scheduled && p.ThirdEmail.Scheduled
}

// PersonPatch é um update parcial: só campos não-nil são aplicados.
type PersonPatch struct {
	CompanyID *string `json:"companyId"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Position  *string `json:"position"`
	Linkedin  *string `json:"linkedin"`
	City      *string `json:"city"`
	Country   *string `json:"country"`

	Attempts      *int    `json:"attempts"`
	LastEmailDate *string `json:"lastEmailDate"`

	Opened          *bool `json:"opened"`
	OpenCount       *int  `json:"openCount"`
	Clicked         *bool `json:"clicked"`
	ClickCount      *int  `json:"clickCount"`
	ResumeOpened    *bool `json:"resumeOpened"`
	ResumeOpenCount *int  `json:"resumeOpenCount"`
	Responded       *bool `json:"responded"`

	FirstEmail  *ScheduleSlot `json:"firstEmail"`
	SecondEmail *ScheduleSlot `json:"secondEmail"`
	ThirdEmail  *ScheduleSlot `json:"thirdEmail"`
}

func (p *Person) ApplyPatch(patch *PersonPatch) {
	if patch == nil {
		return
	}
	if patch.CompanyID != nil {
		p.CompanyID = *patch.CompanyID
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Email != nil {
		p.Email = *patch.Email
	}
	if patch.Position != nil {
		p.Position = *patch.Position
	}
	if patch.Linkedin != nil {
		p.Linkedin = *patch.Linkedin
	}
	if patch.City != nil {
		p.City = *patch.City
	}
	if patch.Country != nil {
		p.Country = *patch.Country
	}
	if patch.Attempts != nil {
		p.Attempts = *patch.Attempts
	}
	if patch.LastEmailDate != nil {
		p.LastEmailDate = *patch.LastEmailDate
	}
	if patch.Opened != nil {
		p.Opened = *patch.Opened
	}
	if patch.OpenCount != nil {
		p.OpenCount = *patch.OpenCount
	}
	if patch.Clicked != nil {
		p.Clicked = *patch.Clicked
	}
	if patch.ClickCount != nil {
		p.ClickCount = *patch.ClickCount
	}
	if patch.ResumeOpened != nil {
		p.ResumeOpened = *patch.ResumeOpened
	}
	if patch.ResumeOpenCount != nil {
		p.ResumeOpenCount = *patch.ResumeOpenCount
	}
	if patch.Responded != nil {
		p.Responded = *patch.Responded
	}
	if patch.FirstEmail != nil {
		p.FirstEmail = *patch.FirstEmail
	}
	if patch.SecondEmail != nil {
		p.SecondEmail = *patch.SecondEmail
	}
	if patch.ThirdEmail != nil {
		p.ThirdEmail = *patch.ThirdEmail
	}
	p.UpdatedAt = time.Now()
}

// PersonRepositoryInterface define os métodos do repositório de contatos
type PersonRepositoryInterface interface {
	FindAll(ctx context.Context) ([]*Person, error)
	FindByCompanyID(ctx context.Context, companyID string) ([]*Person, error)
	FindByID(ctx context.Context, id string) (*Person, error)
	Create(ctx context.Context, person *Person) error
	Update(ctx context.Context, id string, patch *PersonPatch) (*Person, error)
	Delete(ctx context.Context, id string) (bool, error)
	Restore(ctx context.Context, person *Person) error
}
