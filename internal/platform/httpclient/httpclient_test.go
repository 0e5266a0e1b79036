package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ValidatesBaseURL(t *testing.T) {
	_, err := New("ftp://x", 0)
	assert.Error(t, err)
	_, err = New("", 0)
	assert.Error(t, err)

	c, err := New("http://127.0.0.1:3000/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:3000", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestPostJSON_SendsHeadersAndDecodes(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/x", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "k-1", r.Header.Get("X-Kiosk-ID"))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	c, err := New(ts.URL, time.Second, WithHeader("X-Kiosk-ID", "k-1"), WithHeader("X-Empty", " "))
	require.NoError(t, err)
	assert.NotContains(t, c.Headers, "X-Empty")

	var out struct{ OK bool }
	require.NoError(t, c.PostJSON(context.Background(), "api/x", map[string]string{"a": "b"}, &out))
	assert.True(t, out.OK)
}

func TestPostJSON_HTTPErrorCarriesServerMessage(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Hatalı kod girişi."}`))
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	err := c.PostJSON(context.Background(), "/", nil, nil)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusBadRequest, he.StatusCode)
	assert.Equal(t, "Hatalı kod girişi.", he.Message)
}

func TestPostJSON_ServerMessageKeptAsSent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"  X  "}`))
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	err := c.PostJSON(context.Background(), "/", nil, nil)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, "  X  ", he.Message)
}

func TestPostJSON_NonJSONErrorBody(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer ts.Close()

	c, _ := New(ts.URL, time.Second)
	err := c.PostJSON(context.Background(), "/", nil, nil)

	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, "", he.Message)
	assert.Equal(t, "bad gateway", he.Body)
}

func TestPostJSON_DecodeAndTransportErrors(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	c, _ := New(ts.URL, time.Second)

	var out map[string]any
	err := c.PostJSON(context.Background(), "/", nil, &out)
	assert.True(t, errors.Is(err, ErrDecode), "got %v", err)

	ts.Close()
	err = c.PostJSON(context.Background(), "/", nil, &out)
	assert.True(t, errors.Is(err, ErrTransport), "got %v", err)
}

func TestPostJSON_TimeoutIsTransportError(t *testing.T) {
	release := make(chan struct{})
	ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		<-release
	}))
	defer ts.Close()
	defer close(release)

	c, _ := New(ts.URL, 50*time.Millisecond)
	err := c.PostJSON(context.Background(), "/", nil, nil)
	assert.True(t, errors.Is(err, ErrTransport), "got %v", err)
}
