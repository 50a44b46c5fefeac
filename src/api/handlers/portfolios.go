package handlers

import (
	"context"
	"net/http"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.CreatePortfolioRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		utils.WriteError(w, utils.BadRequest("portfolio name is required"))
		return
	}

	portfolio, err := h.Controller.CreatePortfolio(ctx, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, portfolio, http.StatusCreated)
}

func (h *Handler) GetPortfolios(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := queryParamInt(r, "user_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid user_id"))
		return
	}

	portfolios, err := h.Controller.GetPortfoliosByUser(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, portfolios, http.StatusOK)
}

func (h *Handler) GetPortfolioByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}

	portfolio, err := h.Controller.GetPortfolio(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, portfolio, http.StatusOK)
}

func (h *Handler) UpdatePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}

	var req schemas.UpdatePortfolioRequest
	if !h.decode(w, r, &req) {
		return
	}

	portfolio, err := h.Controller.UpdatePortfolio(ctx, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, portfolio, http.StatusOK)
}

func (h *Handler) DeletePortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}

	deleted, err := h.Controller.DeletePortfolio(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("portfolio not found"))
		return
	}
	h.respond(w, r, map[string]string{"message": "portfolio deleted"}, http.StatusOK)
}

func (h *Handler) GetPortfolioSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}

	summary, err := h.Controller.GetSummary(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) AddAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}

	var req schemas.AddAssetRequest
	if !h.decode(w, r, &req) {
		return
	}

	position, err := h.Controller.AddAsset(ctx, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, position, http.StatusOK)
}

func (h *Handler) RemoveAsset(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}
	symbol := chi.URLParam(r, "symbol")

	removed, err := h.Controller.RemoveAsset(ctx, id, symbol)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if !removed {
		utils.WriteError(w, utils.NotFound("asset not found"))
		return
	}
	h.respond(w, r, map[string]string{"message": "asset removed"}, http.StatusOK)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}

	transactions, err := h.Controller.GetTransactions(ctx, id)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transactions, http.StatusOK)
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	id, err := urlParamInt(r, "id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("invalid portfolio id"))
		return
	}

	var req schemas.CreateTransactionRequest
	if !h.decode(w, r, &req) {
		return
	}

	transaction, err := h.Controller.RecordTransaction(ctx, id, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, transaction, http.StatusCreated)
}
