package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"tracker/src/api/controllers"
	"tracker/src/services"
	"tracker/src/utils"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	Controller *controllers.Controller
}

func NewHandler(controller *controllers.Controller) *Handler {
	return &Handler{Controller: controller}
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.WriteError(w, utils.BadRequest("invalid request body"))
		return false
	}
	return true
}

// HandleErrors maps service sentinels onto the HTTP error taxonomy before
// writing the response.
func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrPortfolioNotFound),
		errors.Is(err, services.ErrPositionNotFound):
		utils.WriteError(w, utils.NotFound(err.Error()))
	case errors.Is(err, services.ErrSymbolRequired),
		errors.Is(err, services.ErrInvalidTransactionType),
		errors.Is(err, services.ErrBrokerNotLinked):
		utils.WriteError(w, utils.BadRequest(err.Error()))
	case errors.Is(err, services.ErrCredentialUnusable):
		utils.WriteError(w, utils.Conflict(err.Error()))
	default:
		utils.WriteError(w, err)
	}
}

func urlParamInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

func queryParamInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.URL.Query().Get(name))
}
