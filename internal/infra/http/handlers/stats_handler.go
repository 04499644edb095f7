package handlers

import (
	"net/http"

	"github.com/xavierca1/outreach-tracker/internal/entity"
	"github.com/xavierca1/outreach-tracker/internal/report"
)

type StatsHandler struct {
	Companies entity.CompanyRepositoryInterface
	People    entity.PersonRepositoryInterface
	Stats     entity.EmailStatRepositoryInterface
}

func NewStatsHandler(
	companies entity.CompanyRepositoryInterface,
	people entity.PersonRepositoryInterface,
	stats entity.EmailStatRepositoryInterface,
) *StatsHandler {
	return &StatsHandler{Companies: companies, People: people, Stats: stats}
}

// Totals devolve os números agregados do dashboard.
func (h *StatsHandler) Totals(w http.ResponseWriter, r *http.Request) {
	companies, err := h.Companies.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	people, err := h.People.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	stats, err := h.Stats.FindAll(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, "STORE_ERROR", err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report.BuildTotals(companies, people, stats))
}
