package middleware

import (
	"errors"
	"net/http"
)

const MsgBodyTooLarge = "İstek çok büyük."

// MaxBody corta cuerpos mayores a maxKB. Con Content-Length conocido
// responde 413 antes de leer; si no, MaxBytesReader hace fallar el decode
// y el handler responde 413 vía BodyTooLarge.
func MaxBody(maxKB int64) func(http.Handler) http.Handler {
	limit := maxKB * 1024
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				writeError(w, http.StatusRequestEntityTooLarge, MsgBodyTooLarge)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// BodyTooLarge indica si err viene de pasarse del límite de MaxBody.
func BodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}
