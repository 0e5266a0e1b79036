package prescriptions

import (
	"encoding/json"
	"errors"
	"net/http"

	"ilac-otomasyon/internal/metrics"
	"ilac-otomasyon/internal/middleware"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Mensajes que el kiosk muestra tal cual al paciente.
const (
	msgInvalidCode = "Hatalı kod girişi."
	msgServerError = "Sunucu hatası."
)

const endpointName = "prescription"

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Post("/api/login/prescription", loginHandler(svc, log))
}

// loginRequest es el cuerpo del login con receta.
type loginRequest struct {
	Code string `json:"code"`
}

// drugResponse es un medicamento tal como lo guarda la sesión del kiosk.
type drugResponse struct {
	Name              string `json:"name"`
	Expiry            string `json:"expiry"`
	UsageInstructions string `json:"usageInstructions"`
}

type loginResponse struct {
	Drugs []drugResponse `json:"drugs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// loginHandler godoc
// @Summary Login con código de receta
// @Description Devuelve los medicamentos asociados al código de receta. Un código vacío o inexistente responde 400 con el mensaje para el paciente.
// @Tags login
// @Accept json
// @Produce json
// @Param X-Kiosk-ID header string false "Identificador del kiosk (solo para logs)"
// @Param payload body loginRequest true "Código de receta"
// @Success 200 {object} loginResponse
// @Failure 400 {object} errorResponse "Hatalı kod girişi."
// @Failure 413 {object} errorResponse "İstek çok büyük."
// @Failure 429 {string} string "rate limit exceeded"
// @Failure 500 {object} errorResponse "Sunucu hatası."
// @Router /api/login/prescription [post]
func loginHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			metrics.ObserveLogin(endpointName, metrics.OutcomeInvalid)
			if middleware.BodyTooLarge(err) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: middleware.MsgBodyTooLarge})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidCode})
			return
		}

		drugs, err := svc.Login(r.Context(), req.Code)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				metrics.ObserveLogin(endpointName, metrics.OutcomeInvalid)
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidCode})
			case errors.Is(err, ErrNotFound):
				metrics.ObserveLogin(endpointName, metrics.OutcomeNotFound)
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidCode})
			default:
				metrics.ObserveLogin(endpointName, metrics.OutcomeError)
				log.Error("prescription lookup failed", map[string]any{
					"error":      err,
					"kiosk_id":   middleware.GetKioskID(r.Context()),
					"request_id": middleware.GetRequestID(r.Context()),
				})
				writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgServerError})
			}
			return
		}

		metrics.ObserveLogin(endpointName, metrics.OutcomeOK)
		writeJSON(w, http.StatusOK, toLoginResponse(drugs))
	}
}

func toLoginResponse(drugs []Drug) loginResponse {
	out := loginResponse{Drugs: make([]drugResponse, 0, len(drugs))}
	for _, d := range drugs {
		out.Drugs = append(out.Drugs, drugResponse{
			Name:              d.Name,
			Expiry:            d.Expiry.Format(ExpiryLayout),
			UsageInstructions: d.UsageInstructions,
		})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
