package handlers

import (
	"context"
	"net/http"
	"time"

	"tracker/src/schemas"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) SaveBrokerCredentials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	brokerName := chi.URLParam(r, "broker")

	var req schemas.SaveBrokerCredentialsRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.UserID == 0 {
		utils.WriteError(w, utils.BadRequest("user_id is required"))
		return
	}

	cred, err := h.Controller.SaveBrokerCredentials(ctx, brokerName, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, map[string]interface{}{
		"message":   "broker credentials saved",
		"config_id": cred.ID,
	}, http.StatusCreated)
}

func (h *Handler) GetBrokerCredentials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := queryParamInt(r, "user_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid user_id"))
		return
	}

	credentials, err := h.Controller.GetBrokerCredentials(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, credentials, http.StatusOK)
}

func (h *Handler) DeleteBrokerCredentials(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	brokerName := chi.URLParam(r, "broker")
	userID, err := queryParamInt(r, "user_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid user_id"))
		return
	}

	deleted, err := h.Controller.DeleteBrokerCredentials(ctx, userID, brokerName)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	if !deleted {
		utils.WriteError(w, utils.NotFound("broker credentials not found"))
		return
	}
	h.respond(w, r, map[string]string{"message": "broker credentials deleted"}, http.StatusOK)
}

func (h *Handler) SyncHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	brokerName := chi.URLParam(r, "broker")
	userID, err := queryParamInt(r, "user_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid user_id"))
		return
	}
	portfolioID, err := queryParamInt(r, "portfolio_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid portfolio_id"))
		return
	}

	resp, err := h.Controller.SyncHoldings(ctx, userID, portfolioID, brokerName)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}

func (h *Handler) SyncTrades(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	brokerName := chi.URLParam(r, "broker")
	userID, err := queryParamInt(r, "user_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid user_id"))
		return
	}
	portfolioID, err := queryParamInt(r, "portfolio_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid portfolio_id"))
		return
	}

	resp, err := h.Controller.SyncTrades(ctx, userID, portfolioID, brokerName)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, resp, http.StatusOK)
}
