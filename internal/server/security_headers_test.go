package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeaders_OnEveryResponse(t *testing.T) {
	srv, _, _ := newTestServer(t, "secret")

	expected := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}

	tests := []struct {
		name       string
		method     string
		path       string
		headers    []string
		wantStatus int
	}{
		{name: "public health check", method: http.MethodGet, path: "/healthz", wantStatus: http.StatusOK},
		{name: "authorized state read", method: http.MethodGet, path: "/api/v1/state", headers: []string{HeaderAPIKey, "secret"}, wantStatus: http.StatusOK},
		{name: "rejected without key", method: http.MethodPost, path: "/api/v1/timer/start", wantStatus: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/nope", headers: []string{HeaderAPIKey, "secret"}, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, srv, tt.method, tt.path, "", tt.headers...)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			for header, want := range expected {
				assert.Equal(t, want, resp.Header.Get(header), header)
			}
		})
	}
}
