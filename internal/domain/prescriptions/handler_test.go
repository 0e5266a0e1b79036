package prescriptions

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ilac-otomasyon/internal/middleware"
	"ilac-otomasyon/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func newTestServer(t *testing.T, repo Repository) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(repo), logger.Nop())
	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func post(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	res, err := http.Post(url+"/api/login/prescription", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer res.Body.Close()

	var out map[string]any
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return res.StatusCode, out
}

func TestHandler_Success(t *testing.T) {
	ts := newTestServer(t, &testRepo{byCode: map[string][]Drug{
		"ABC123": {{Name: "Parol", Expiry: mustDate(t, "2026-01-01"), UsageInstructions: "2x1"}},
	}})

	st, body := post(t, ts.URL, `{"code":"ABC123"}`)
	if st != http.StatusOK {
		t.Fatalf("expected 200, got %d", st)
	}
	drugs, ok := body["drugs"].([]any)
	if !ok || len(drugs) != 1 {
		t.Fatalf("unexpected body: %v", body)
	}
	d := drugs[0].(map[string]any)
	if d["name"] != "Parol" || d["expiry"] != "2026-01-01" || d["usageInstructions"] != "2x1" {
		t.Fatalf("unexpected drug: %v", d)
	}
}

func TestHandler_ClientErrors(t *testing.T) {
	ts := newTestServer(t, &testRepo{byCode: map[string][]Drug{}})

	for name, body := range map[string]string{
		"unknown code": `{"code":"NOPE"}`,
		"empty code":   `{"code":""}`,
		"bad json":     `{"code":`,
	} {
		t.Run(name, func(t *testing.T) {
			st, out := post(t, ts.URL, body)
			if st != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", st)
			}
			if out["error"] != msgInvalidCode {
				t.Fatalf("unexpected error message: %v", out["error"])
			}
		})
	}
}

func TestHandler_RepoFailureIs500(t *testing.T) {
	ts := newTestServer(t, &testRepo{err: errors.New("db down")})

	st, out := post(t, ts.URL, `{"code":"ABC123"}`)
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", st)
	}
	if out["error"] != msgServerError {
		t.Fatalf("unexpected error message: %v", out["error"])
	}
}

func TestHandler_ChunkedBodyOverLimitIs413(t *testing.T) {
	r := chi.NewRouter()
	r.Use(middleware.MaxBody(1))
	RegisterRoutes(r, NewService(&testRepo{byCode: map[string][]Drug{}}), logger.Nop())

	// sin Content-Length: el límite salta al decodificar
	body := io.MultiReader(strings.NewReader(`{"code":"`), strings.NewReader(strings.Repeat("A", 4096)), strings.NewReader(`"}`))
	req := httptest.NewRequest(http.MethodPost, "/api/login/prescription", body)
	req.ContentLength = -1
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d body=%s", rec.Code, rec.Body.String())
	}
	var out map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out["error"] != middleware.MsgBodyTooLarge {
		t.Fatalf("unexpected error message: %q", out["error"])
	}
}
