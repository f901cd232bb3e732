package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/draftea/vehicle-sales-system/orchestrator-service/application"
	"github.com/draftea/vehicle-sales-system/orchestrator-service/domain"
	"github.com/draftea/vehicle-sales-system/shared/models"
	"github.com/go-chi/chi/v5"
)

// TransactionHandlers contains the saga orchestrator HTTP handlers
type TransactionHandlers struct {
	startPurchase     *application.StartVehiclePurchase
	getStatus         *application.GetTransactionStatus
	getEvents         *application.GetTransactionEvents
	processAll        *application.ProcessTransactions
	retryFailed       *application.RetryFailedTransaction
	startCompensation *application.StartCompensation
	statistics        *application.TransactionStatistics
}

// NewTransactionHandlers creates new transaction handlers
func NewTransactionHandlers(
	startPurchase *application.StartVehiclePurchase,
	getStatus *application.GetTransactionStatus,
	getEvents *application.GetTransactionEvents,
	processAll *application.ProcessTransactions,
	retryFailed *application.RetryFailedTransaction,
	startCompensation *application.StartCompensation,
	statistics *application.TransactionStatistics,
) *TransactionHandlers {
	return &TransactionHandlers{
		startPurchase:     startPurchase,
		getStatus:         getStatus,
		getEvents:         getEvents,
		processAll:        processAll,
		retryFailed:       retryFailed,
		startCompensation: startCompensation,
		statistics:        statistics,
	}
}

// StartPurchase handles purchase transaction creation requests
func (h *TransactionHandlers) StartPurchase(w http.ResponseWriter, r *http.Request) {
	var cmd application.StartVehiclePurchaseCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	cmd.AuthToken = bearerToken(r)

	response, err := h.startPurchase.Execute(r.Context(), &cmd)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, response)
}

// GetStatus handles ownership-checked transaction status queries
func (h *TransactionHandlers) GetStatus(w http.ResponseWriter, r *http.Request) {
	query := &application.GetTransactionStatusQuery{
		TransactionID: chi.URLParam(r, "id"),
		CustomerID:    r.URL.Query().Get("customer_id"),
	}

	response, err := h.getStatus.Execute(r.Context(), query)
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// GetEvents handles transaction audit trail queries
func (h *TransactionHandlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	evts, err := h.getEvents.Execute(r.Context(), models.ID(chi.URLParam(r, "id")))
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"events": evts})
}

// ProcessTransactions manually triggers one batch scan
func (h *TransactionHandlers) ProcessTransactions(w http.ResponseWriter, r *http.Request) {
	results, err := h.processAll.Execute(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"processed_count": len(results),
		"results":         results,
	})
}

// RetryTransaction retries a failed transaction
func (h *TransactionHandlers) RetryTransaction(w http.ResponseWriter, r *http.Request) {
	result, err := h.retryFailed.Execute(r.Context(), models.ID(chi.URLParam(r, "id")))
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// CompensateTransaction explicitly moves a failed transaction into compensation
func (h *TransactionHandlers) CompensateTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.startCompensation.Execute(r.Context(), models.ID(chi.URLParam(r, "id"))); err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"status": string(domain.TransactionStatusCompensating),
	})
}

// GetStatistics returns aggregate transaction outcome counts
func (h *TransactionHandlers) GetStatistics(w http.ResponseWriter, r *http.Request) {
	response, err := h.statistics.Execute(r.Context())
	if err != nil {
		writeBusinessError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, response)
}

// RegisterRoutes registers transaction routes
func (h *TransactionHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", h.StartPurchase)
		r.Post("/process", h.ProcessTransactions)
		r.Get("/statistics", h.GetStatistics)
		r.Get("/{id}", h.GetStatus)
		r.Get("/{id}/events", h.GetEvents)
		r.Post("/{id}/retry", h.RetryTransaction)
		r.Post("/{id}/compensate", h.CompensateTransaction)
	})
}

// bearerToken extracts the credential from the Authorization header
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	return strings.TrimPrefix(header, "Bearer ")
}

// writeBusinessError maps domain errors to HTTP status codes
func writeBusinessError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrTransactionNotRetryable),
		errors.Is(err, domain.ErrTransactionNotCompensatable):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrTransactionAccessDenied):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, application.ErrInvalidCommand):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
