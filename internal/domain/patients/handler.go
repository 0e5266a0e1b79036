package patients

import (
	"encoding/json"
	"errors"
	"net/http"

	"ilac-otomasyon/internal/metrics"
	"ilac-otomasyon/internal/middleware"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidID   = "Hatalı TC kimlik numarası."
	msgServerError = "Sunucu hatası."
)

const endpointName = "without_prescription"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/api/login/without-prescription", loginHandler(svc, log))
}

type loginRequest struct {
	ID string `json:"id"`
}

type loginResponse struct {
	Success bool `json:"success"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// loginHandler godoc
// @Summary Login sin receta
// @Description Comprueba que el número de identidad corresponde a un paciente registrado.
// @Tags login
// @Accept json
// @Produce json
// @Param X-Kiosk-ID header string false "Identificador del kiosk (solo para logs)"
// @Param payload body loginRequest true "Número de identidad"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse "Hatalı TC kimlik numarası."
// @Failure 413 {object} errorResponse "İstek çok büyük."
// @Failure 429 {string} string "rate limit exceeded"
// @Failure 500 {object} errorResponse "Sunucu hatası."
// @Router /api/login/without-prescription [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.ObserveLogin(endpointName, metrics.OutcomeInvalid)
			if middleware.BodyTooLarge(err) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: middleware.MsgBodyTooLarge})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
			return
		}

		if _, err := svc.Login(r.Context(), req.ID); err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				metrics.ObserveLogin(endpointName, metrics.OutcomeInvalid)
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
			case errors.Is(err, ErrNotFound):
				metrics.ObserveLogin(endpointName, metrics.OutcomeNotFound)
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
			default:
				metrics.ObserveLogin(endpointName, metrics.OutcomeError)
				log.Error("patient lookup failed", map[string]any{
					"error":      err,
					"kiosk_id":   middleware.GetKioskID(r.Context()),
					"request_id": middleware.GetRequestID(r.Context()),
				})
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgServerError})
			}
			return
		}

		metrics.ObserveLogin(endpointName, metrics.OutcomeOK)
		writeJSON(w, http.StatusOK, loginResponse{Success: true})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
