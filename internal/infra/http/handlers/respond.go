package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/xavierca1/outreach-tracker/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeValidationErrors devolve 400 com os erros campo a campo — nada
// de mensagem genérica.
func writeValidationErrors(w http.ResponseWriter, errs []usecase.ValidationError) {
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "VALIDATION_ERROR",
		"message": "request body failed validation",
		"fields":  errs,
	})
}

// writeUseCaseError mapeia o erro do usecase para o status HTTP:
// *_NOT_FOUND vira 404, DomainError vira 400, o resto vira 500.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		status := http.StatusBadRequest
		if strings.HasSuffix(domainErr.Code, "_NOT_FOUND") {
			status = http.StatusNotFound
		}
		writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
		return
	}

	var techErr *usecase.TechnicalError
	if errors.As(err, &techErr) {
		writeErrorResponse(w, http.StatusInternalServerError, techErr.Code, techErr.Message)
		return
	}

	writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
}
