// file: handler/origin_middleware_test.go

package handler

import (
	"ged-apae-console/model"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameOriginMiddleware(t *testing.T) {
	console, _ := newConsole(t, []string{model.PermissionAlunos})
	reached := false
	h := console.SameOriginMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	}))

	cases := []struct {
		name    string
		method  string
		headers map[string]string
		want    int
	}{
		{"post from the console itself", http.MethodPost, map[string]string{"Origin": "http://example.com", "Sec-Fetch-Site": "same-origin"}, http.StatusNoContent},
		{"post without origin", http.MethodPost, nil, http.StatusNoContent},
		{"post from another site", http.MethodPost, map[string]string{"Origin": "https://evil.example"}, http.StatusForbidden},
		{"post from another port", http.MethodPost, map[string]string{"Origin": "http://example.com:8081"}, http.StatusForbidden},
		{"opaque origin", http.MethodPost, map[string]string{"Origin": "null"}, http.StatusForbidden},
		{"cross-site fetch metadata", http.MethodPost, map[string]string{"Sec-Fetch-Site": "cross-site"}, http.StatusForbidden},
		{"cross-site get is a navigation", http.MethodGet, map[string]string{"Origin": "https://evil.example", "Sec-Fetch-Site": "cross-site"}, http.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reached = false
			req := httptest.NewRequest(tc.method, "/alunos/1/excluir", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rr := httptest.NewRecorder()

			h.ServeHTTP(rr, req)

			assert.Equal(t, tc.want, rr.Code)
			assert.Equal(t, tc.want != http.StatusForbidden, reached)
			if tc.want == http.StatusForbidden {
				assert.Contains(t, rr.Body.String(), "Requisição de outra origem recusada.")
			}
		})
	}
}
