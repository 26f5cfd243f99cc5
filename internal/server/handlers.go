//go:generate mockgen -source ./handlers.go -destination=./mocks/handlers.go -package=mock_server
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/emarket/devoluciones/internal/clients"
	"gitlab.com/emarket/devoluciones/internal/devolucion"
	"gitlab.com/emarket/devoluciones/internal/orchestrator"
	"gitlab.com/emarket/devoluciones/internal/repository"
)

type Orchestrator interface {
	Create(ctx context.Context, orderID string, items []orchestrator.NewItem) (*repository.Devolucion, error)
	Approve(ctx context.Context, id uuid.UUID, adminID, comentario, metodo string) (*repository.Devolucion, *devolucion.ShippingInstructions, *orchestrator.ApprovalReport, error)
	Reject(ctx context.Context, id uuid.UUID, adminID, motivo, comentario string) (*repository.Devolucion, error)
	ExecuteRefund(ctx context.Context, id uuid.UUID) (*repository.Devolucion, error)
	MarkAsCompleted(ctx context.Context, id uuid.UUID) (*repository.Devolucion, *orchestrator.CompletionReport, error)
	GetEnriched(ctx context.Context, id uuid.UUID) (*repository.Devolucion, *clients.Order, error)
	List(ctx context.Context, page, limit int) ([]*repository.Devolucion, error)
	GetHistorial(ctx context.Context, id uuid.UUID) ([]*repository.HistorialEntry, error)
}

type itemRequest struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Currency  string  `json:"currency"`
	Action    string  `json:"action"`
	Reason    string  `json:"reason"`
}

type createRequest struct {
	OrderID string        `json:"orderId"`
	Items   []itemRequest `json:"items"`
}

type approveRequest struct {
	AdminID          string `json:"adminId"`
	Comentario       string `json:"comentario"`
	MetodoDevolucion string `json:"metodoDevolucion"`
}

type rejectRequest struct {
	AdminID    string `json:"adminId"`
	Motivo     string `json:"motivo"`
	Comentario string `json:"comentario"`
}

type itemResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Currency  string  `json:"currency"`
	Action    string  `json:"action"`
	Reason    string  `json:"reason,omitempty"`
}

type reembolsoResponse struct {
	ID            string     `json:"id"`
	Amount        float64    `json:"amount"`
	Currency      string     `json:"currency"`
	Estado        string     `json:"estado"`
	TransaccionID *string    `json:"transaccionId,omitempty"`
	ProcessedAt   *time.Time `json:"processedAt,omitempty"`
}

type historialResponse struct {
	EstadoAnterior string    `json:"estadoAnterior"`
	EstadoNuevo    string    `json:"estadoNuevo"`
	ActorID        string    `json:"actorId"`
	Comentario     string    `json:"comentario,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type devolucionResponse struct {
	ID                 string              `json:"id"`
	Codigo             string              `json:"codigo"`
	OrderID            string              `json:"orderId"`
	Estado             string              `json:"estado"`
	CreatedAt          time.Time           `json:"createdAt"`
	ProcessedAt        *time.Time          `json:"processedAt,omitempty"`
	ReplacementOrderID *string             `json:"replacementOrderId,omitempty"`
	Items              []itemResponse      `json:"items"`
	Reembolso          *reembolsoResponse  `json:"reembolso,omitempty"`
	Historial          []historialResponse `json:"historial,omitempty"`
	Customer           *clients.Order      `json:"customer,omitempty"`
}

func toDevolucionResponse(d *repository.Devolucion) devolucionResponse {
	out := devolucionResponse{
		ID:                 d.ID.String(),
		Codigo:             d.Codigo,
		OrderID:            d.OrderID,
		Estado:             string(d.Estado),
		CreatedAt:          d.CreatedAt,
		ProcessedAt:        d.ProcessedAt,
		ReplacementOrderID: d.ReplacementOrderID,
		Items:              make([]itemResponse, 0, len(d.Items)),
	}
	for _, it := range d.Items {
		out.Items = append(out.Items, itemResponse{
			ID:        it.ID.String(),
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Currency:  it.Currency,
			Action:    string(it.Action),
			Reason:    it.Reason,
		})
	}
	if d.Reembolso != nil {
		out.Reembolso = &reembolsoResponse{
			ID:            d.Reembolso.ID.String(),
			Amount:        d.Reembolso.Amount,
			Currency:      d.Reembolso.Currency,
			Estado:        string(d.Reembolso.Estado),
			TransaccionID: d.Reembolso.TransaccionID,
			ProcessedAt:   d.Reembolso.ProcessedAt,
		}
	}
	for _, h := range d.Historial {
		out.Historial = append(out.Historial, historialResponse{
			EstadoAnterior: string(h.EstadoAnterior),
			EstadoNuevo:    string(h.EstadoNuevo),
			ActorID:        h.ActorID,
			Comentario:     h.Comentario,
			CreatedAt:      h.CreatedAt,
		})
	}
	return out
}

func parseID(r *http.Request) (uuid.UUID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := uuid.Parse(raw)
	return id, err == nil
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.OrderID == "" {
		respondError(w, http.StatusBadRequest, "Missing orderId")
		return
	}
	if len(req.Items) == 0 {
		respondError(w, http.StatusBadRequest, "At least one item is required")
		return
	}

	items := make([]orchestrator.NewItem, 0, len(req.Items))
	for _, it := range req.Items {
		action := devolucion.ItemAction(it.Action)
		if !action.IsValid() {
			respondError(w, http.StatusBadRequest, "Invalid item action: "+it.Action)
			return
		}
		if it.ProductID == "" || it.Quantity <= 0 || it.UnitPrice < 0 {
			respondError(w, http.StatusBadRequest, "Invalid item: productId, positive quantity and non-negative unitPrice are required")
			return
		}
		items = append(items, orchestrator.NewItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Currency:  it.Currency,
			Action:    action,
			Reason:    it.Reason,
		})
	}

	d, err := s.orchestrator.Create(r.Context(), req.OrderID, items)
	if err != nil {
		s.respondDomainError(w, "create", err)
		return
	}

	respondJSON(w, http.StatusCreated, toDevolucionResponse(d))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 10

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'page' parameter")
			return
		}
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid value for 'limit' parameter")
			return
		}
	}

	list, err := s.orchestrator.List(r.Context(), page, limit)
	if err != nil {
		s.respondDomainError(w, "list", err)
		return
	}

	out := make([]devolucionResponse, 0, len(list))
	for _, d := range list {
		out = append(out, toDevolucionResponse(d))
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid devolucion id")
		return
	}

	d, order, err := s.orchestrator.GetEnriched(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, "get", err)
		return
	}

	resp := toDevolucionResponse(d)
	resp.Customer = order
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHistorial(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid devolucion id")
		return
	}

	entries, err := s.orchestrator.GetHistorial(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, "historial", err)
		return
	}

	out := make([]historialResponse, 0, len(entries))
	for _, h := range entries {
		out = append(out, historialResponse{
			EstadoAnterior: string(h.EstadoAnterior),
			EstadoNuevo:    string(h.EstadoNuevo),
			ActorID:        h.ActorID,
			Comentario:     h.Comentario,
			CreatedAt:      h.CreatedAt,
		})
	}
	respondJSON(w, http.StatusOK, out)
}

func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid devolucion id")
		return
	}

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AdminID == "" {
		respondError(w, http.StatusBadRequest, "Missing adminId")
		return
	}

	d, instructions, report, err := s.orchestrator.Approve(r.Context(), id, req.AdminID, req.Comentario, req.MetodoDevolucion)
	if err != nil {
		s.respondDomainError(w, "approve", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"devolucion":   toDevolucionResponse(d),
		"instructions": instructions,
		"report":       report,
	})
}

func (s *Server) handleReject(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid devolucion id")
		return
	}

	var req rejectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AdminID == "" || req.Motivo == "" {
		respondError(w, http.StatusBadRequest, "Missing adminId or motivo")
		return
	}

	d, err := s.orchestrator.Reject(r.Context(), id, req.AdminID, req.Motivo, req.Comentario)
	if err != nil {
		s.respondDomainError(w, "reject", err)
		return
	}

	respondJSON(w, http.StatusOK, toDevolucionResponse(d))
}

func (s *Server) handleExecuteRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid devolucion id")
		return
	}

	d, err := s.orchestrator.ExecuteRefund(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, "execute_refund", err)
		return
	}

	respondJSON(w, http.StatusOK, toDevolucionResponse(d))
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid devolucion id")
		return
	}

	d, report, err := s.orchestrator.MarkAsCompleted(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, "mark_as_completed", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"devolucion": toDevolucionResponse(d),
		"report":     report,
	})
}
