package middleware

import (
	"context"
	"net/http"
	"strings"
	"unicode/utf8"
)

type ctxKey string

const kioskIDKey ctxKey = "kiosk_id"

// KioskIDHeader identifica al kiosk que hace el request. Solo se usa
// para logs y métricas; no es autenticación.
const KioskIDHeader = "X-Kiosk-ID"

// maxKioskIDLen se cuenta en runas.
const maxKioskIDLen = 64

// KioskContext:
// - Si viene X-Kiosk-ID => lo guarda en el contexto (recortado).
// - Si no viene, el request sigue igual y GetKioskID devuelve "".
func KioskContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(KioskIDHeader))
		if id == "" {
			next.ServeHTTP(w, r)
			return
		}
		id = truncateRunes(strings.ToValidUTF8(id, "?"), maxKioskIDLen)

		ctx := context.WithValue(r.Context(), kioskIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetKioskID(ctx context.Context) string {
	id, _ := ctx.Value(kioskIDKey).(string)
	return id
}

// truncateRunes corta s en n runas sin partir ninguna.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
