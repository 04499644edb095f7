package entity

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var ErrCompanyNotFound = errors.New("company not found")

// Status de arquivamento. Separado do Decision de propósito:
// arquivar uma empresa não é a mesma coisa que recusá-la.
const (
	CompanyStatusActive   = "ACTIVE"
	CompanyStatusArchived = "ARCHIVED"
)

// Decision: "yes", "no" ou vazio (pendente)
const (
	DecisionYes = "yes"
	DecisionNo  = "no"
)

// CompanySizes são as faixas aceitas no campo companySize.
var CompanySizes = []string{
	"1-10", "11-50", "51-200", "201-500",
	"501-1,000", "1,001-5,000", "5,001-10,000", "10,001+",
}

// Entidade: Company
type Company struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Website     string `json:"website"`
	Linkedin    string `json:"linkedin,omitempty"`
	Crunchbase  string `json:"crunchbase,omitempty"`
	CompanySize string `json:"companySize,omitempty"`

	// Contadores agregados. openCount/clickCount/resumeOpenCount contam
	// PESSOAS distintas que engajaram, não eventos brutos. Invariante:
	// cada um <= TotalPeople.
	TotalEmails     int    `json:"totalEmails"`
	TotalPeople     int    `json:"totalPeople"`
	LastAttempt     string `json:"lastAttempt,omitempty"` // YYYY-MM-DD
	HasOpened       bool   `json:"hasOpened"`
	OpenCount       int    `json:"openCount"`
	HasClicked      bool   `json:"hasClicked"`
	ClickCount      int    `json:"clickCount"`
	ResumeOpenCount int    `json:"resumeOpenCount"`
	HasResponded    bool   `json:"hasResponded"`

	Decision  string    `json:"decision,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Factory
func NewCompany(name, website, linkedin, crunchbase, companySize string) (*Company, error) {
	company := &Company{
		ID:          uuid.New().String(),
		Name:        name,
		Website:     NormalizeWebsite(website),
		Linkedin:    linkedin,
		Crunchbase:  crunchbase,
		CompanySize: companySize,

		Status:    CompanyStatusActive,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := company.Validate(); err != nil {
		return nil, err
	}

	return company, nil
}

func (c *Company) Validate() error {
	if c.Name == "" {
		return errors.New("name is required")
	}
	if c.Website == "" {
		return errors.New("website is required")
	}
	if c.CompanySize != "" && !IsValidCompanySize(c.CompanySize) {
		return errors.New("companySize is not a known bracket")
	}
	return nil
}

func (c *Company) Archived() bool {
	return c.Status == CompanyStatusArchived
}

// CountersBounded verifica a invariante de contadores distintos.
func (c *Company) CountersBounded() bool {
	return c.OpenCount <= c.TotalPeople &&
		c.ClickCount <= c.TotalPeople &&
		c.ResumeOpenCount <= c.TotalPeople
}

func IsValidCompanySize(size string) bool {
	for _, s := range CompanySizes {
		if s == size {
			return true
		}
	}
	return false
}

// NormalizeWebsite remove o esquema e a barra final, guardando só o host/path.
func NormalizeWebsite(website string) string {
	w := strings.TrimSpace(website)
	w = strings.TrimPrefix(w, "https://")
	w = strings.TrimPrefix(w, "http://")
	w = strings.TrimPrefix(w, "www.")
	return strings.TrimSuffix(w, "/")
}

// CompanyPatch é um update parcial: só campos não-nil são aplicados.
type CompanyPatch struct {
	Name        *string `json:"name"`
	Website     *string `json:"website"`
	Linkedin    *string `json:"linkedin"`
	Crunchbase  *string `json:"crunchbase"`
	CompanySize *string `json:"companySize"`

	TotalEmails     *int    `json:"totalEmails"`
	TotalPeople     *int    `json:"totalPeople"`
	LastAttempt     *string `json:"lastAttempt"`
	HasOpened       *bool   `json:"hasOpened"`
	OpenCount       *int    `json:"openCount"`
	HasClicked      *bool   `json:"hasClicked"`
	ClickCount      *int    `json:"clickCount"`
	ResumeOpenCount *int    `json:"resumeOpenCount"`
	HasResponded    *bool   `json:"hasResponded"`

	Decision *string `json:"decision"`
	Status   *string `json:"status"`
}

func (c *Company) Apply(p *CompanyPatch) {
	if p == nil {
		return
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Website != nil {
		c.Website = NormalizeWebsite(*p.Website)
	}
	if p.Linkedin != nil {
		c.Linkedin = *p.Linkedin
	}
	if p.Crunchbase != nil {
		c.Crunchbase = *p.Crunchbase
	}
	if p.CompanySize != nil {
		c.CompanySize = *p.CompanySize
	}
	if p.TotalEmails != nil {
		c.TotalEmails = *p.TotalEmails
	}
	if p.TotalPeople != nil {
		c.TotalPeople = *p.TotalPeople
	}
	if p.LastAttempt != nil {
		c.LastAttempt = *p.LastAttempt
	}
	if p.HasOpened != nil {
		c.HasOpened = *p.HasOpened
	}
	if p.OpenCount != nil {
		c.OpenCount = *p.OpenCount
	}
	if p.HasClicked != nil {
		c.HasClicked = *p.HasClicked
	}
	if p.ClickCount != nil {
		c.ClickCount = *p.ClickCount
	}
	if p.ResumeOpenCount != nil {
		c.ResumeOpenCount = *p.ResumeOpenCount
	}
	if p.HasResponded != nil {
		c.HasResponded = *p.HasResponded
	}
	if p.Decision != nil {
		c.Decision = *p.Decision
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	c.UpdatedAt = time.Now()
}

// CompanyRepositoryInterface define os métodos do repositório de empresas
type CompanyRepositoryInterface interface {
	FindAll(ctx context.Context) ([]*Company, error)
	FindByID(ctx context.Context, id string) (*Company, error)
	Create(ctx context.Context, company *Company) error
	Update(ctx context.Context, id string, patch *CompanyPatch) (*Company, error)
	Delete(ctx context.Context, id string) (bool, error)
	// Restore reinsere um registro apagado mantendo o id original.
	// Só as compensações da saga de delete usam isso.
	Restore(ctx context.Context, company *Company) error
}
