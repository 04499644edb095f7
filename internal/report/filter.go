package report

import (
	"sort"
	"strings"

	"github.com/xavierca1/outreach-tracker/internal/entity"
)

// PageSize é o tamanho fixo de página da listagem de empresas.
const PageSize = 10

// Filtros de status da listagem.
const (
	StatusAll          = "all"
	StatusResponded    = "responded"
	StatusNotResponded = "not-responded"
	StatusAttemptsLeft = "attempts-left"
)

const (
	SortLastAttemptDesc = "desc"
	SortLastAttemptAsc  = "asc"
)

type CompanyFilter struct {
	Query  string
	Status string
	Sort   string
	Page   int
}

type CompanyPage struct {
	Companies  []*entity.Company `json:"companies"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
	Total      int               `json:"total"`
}

// FilterCompanies aplica busca textual, filtro de status, ordenação por
// lastAttempt e paginação. Página fora do intervalo volta para 1 — é o
// reset depois de um filtro encolher a lista.
func FilterCompanies(companies []*entity.Company, f CompanyFilter) CompanyPage {
	filtered := make([]*entity.Company, 0, len(companies))
	query := strings.ToLower(strings.TrimSpace(f.Query))

	for _, c := range companies {
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Name), query) &&
			!strings.Contains(strings.ToLower(c.Website), query) {
			continue
		}
		if !matchesStatus(c, f.Status) {
			continue
		}
		filtered = append(filtered, c)
	}

	sortByLastAttempt(filtered, f.Sort)

	total := len(filtered)
	totalPages := (total + PageSize - 1) / PageSize
	if totalPages == 0 {
		totalPages = 1
	}

	page := f.Page
	if page < 1 || page > totalPages {
		page = 1
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return CompanyPage{
		Companies:  filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}
}

func matchesStatus(c *entity.Company, status string) bool {
	switch status {
	case "", StatusAll:
		return true
	case StatusResponded:
		return c.HasResponded
	case StatusNotResponded:
		return !c.HasResponded
	case StatusAttemptsLeft:
		return c.TotalEmails < entity.MaxAttempts
	}
	return true
}

// Datas ausentes contam como epoch (1970-01-01): no sort descendente
// empresas nunca contactadas vão para o fim.
func sortByLastAttempt(companies []*entity.Company, order string) {
	asc := order == SortLastAttemptAsc

	sort.SliceStable(companies, func(i, j int) bool {
		a := lastAttemptKey(companies[i])
		b := lastAttemptKey(companies[j])
		if asc {
			return a < b
		}
		return a > b
	})
}

func lastAttemptKey(c *entity.Company) string {
	if c.LastAttempt == "" {
		return "1970-01-01"
	}
	return c.LastAttempt
}
