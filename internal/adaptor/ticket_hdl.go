package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/dto/request"
	"ticket-purchase/internal/usecase"
	"ticket-purchase/pkg/utils"

	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/tickets/purchase
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	purchaseReq, ok := h.decodePurchaseRequest(w, r)
	if !ok {
		return
	}

	purchase, err := h.service.PurchaseTickets(r.Context(), purchaseReq)
	if err != nil {
		h.handleServiceError(w, err, "purchase tickets")
		return
	}

	utils.ResponseCreated(w, "success", purchase)
}

// QuoteTickets handles POST /api/tickets/quote
func (h *TicketHandler) QuoteTickets(w http.ResponseWriter, r *http.Request) {
	purchaseReq, ok := h.decodePurchaseRequest(w, r)
	if !ok {
		return
	}

	quote, err := h.service.QuoteTickets(r.Context(), purchaseReq)
	if err != nil {
		h.handleServiceError(w, err, "quote tickets")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}

// GetPrices handles GET /api/tickets/prices
func (h *TicketHandler) GetPrices(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, "success", h.service.Prices(r.Context()))
}

// ==================== HELPER METHODS ====================

func (h *TicketHandler) decodePurchaseRequest(w http.ResponseWriter, r *http.Request) (*entity.PurchaseRequest, bool) {
	var req request.PurchaseTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}

	items := make([]entity.TicketLineItem, 0, len(req.Tickets))
	for _, ticket := range req.Tickets {
		category, err := entity.ParseTicketCategory(ticket.Type)
		if err != nil {
			utils.ResponseBadRequest(w, err.Error(), nil)
			return nil, false
		}
		items = append(items, entity.NewTicketLineItem(category, ticket.Count))
	}

	return entity.NewPurchaseRequest(req.AccountID, items...), true
}

// handleServiceError maps purchase errors to status codes
func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var purchaseErr *entity.PurchaseError
	if errors.As(err, &purchaseErr) {
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("code", string(purchaseErr.Kind)),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, purchaseErr.Error(), map[string]string{
			"code": string(purchaseErr.Kind),
		})
		return
	}

	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation))
	utils.ResponseInternalError(w, "Internal server error")
}
