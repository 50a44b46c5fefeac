package handlers

import (
	"context"
	"net/http"
	"time"

	"tracker/src/utils"
)

func (h *Handler) GetDashboardStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, err := queryParamInt(r, "user_id")
	if err != nil {
		utils.WriteError(w, utils.BadRequest("missing or invalid user_id"))
		return
	}

	stats, err := h.Controller.GetDashboardStats(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	h.respond(w, r, stats, http.StatusOK)
}
