// Package lookup es el cliente HTTP del servicio de consulta (cmd/api).
package lookup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ilac-otomasyon/internal/kiosk/session"
	"ilac-otomasyon/internal/platform/httpclient"
)

const (
	prescriptionPath        = "/api/login/prescription"
	withoutPrescriptionPath = "/api/login/without-prescription"

	kioskIDHeader = "X-Kiosk-ID"
)

// ErrUnavailable agrupa fallos de transporte y respuestas ilegibles.
var ErrUnavailable = errors.New("lookup service unavailable")

// Error es un rechazo del servicio con mensaje para el paciente.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lookup rejected (status %d): %s", e.Status, e.Message)
}

type Client struct {
	http *httpclient.Client
}

func New(baseURL, kioskID string, timeout time.Duration, opts ...httpclient.Option) (*Client, error) {
	opts = append([]httpclient.Option{httpclient.WithHeader(kioskIDHeader, kioskID)}, opts...)
	hc, err := httpclient.New(baseURL, timeout, opts...)
	if err != nil {
		return nil, fmt.Errorf("lookup client: %w", err)
	}
	return &Client{http: hc}, nil
}

type prescriptionRequest struct {
	Code string `json:"code"`
}

type prescriptionResponse struct {
	Drugs []session.Drug `json:"drugs"`
}

// LoginPrescription devuelve los medicamentos de la receta.
func (c *Client) LoginPrescription(ctx context.Context, code string) ([]session.Drug, error) {
	var out prescriptionResponse
	if err := c.http.PostJSON(ctx, prescriptionPath, prescriptionRequest{Code: code}, &out); err != nil {
		return nil, classify(err)
	}
	if out.Drugs == nil {
		out.Drugs = []session.Drug{}
	}
	return out.Drugs, nil
}

type withoutPrescriptionRequest struct {
	ID string `json:"id"`
}

type withoutPrescriptionResponse struct {
	Success bool `json:"success"`
}

// LoginWithoutPrescription valida el número de identidad.
func (c *Client) LoginWithoutPrescription(ctx context.Context, id string) error {
	var out withoutPrescriptionResponse
	if err := c.http.PostJSON(ctx, withoutPrescriptionPath, withoutPrescriptionRequest{ID: id}, &out); err != nil {
		return classify(err)
	}
	if !out.Success {
		return fmt.Errorf("%w: success=false", ErrUnavailable)
	}
	return nil
}

// classify: respuesta con {error} => *Error; todo lo demás => ErrUnavailable.
func classify(err error) error {
	var he *httpclient.HTTPError
	if errors.As(err, &he) && he.Message != "" {
		return &Error{Status: he.StatusCode, Message: he.Message}
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
