package http

import (
	"net/http"

	"github.com/MKhiriev/biz-records/internal/utils"
	"github.com/MKhiriev/biz-records/models"
)

func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}

// health answers 200 when the database responds to a ping and 503
// otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		utils.WriteJSON(w, models.HealthResponse{Status: "unavailable", Database: "unavailable"}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: "ok", Database: "ok"}, http.StatusOK)
}
