// file: handler/origin_middleware.go

package handler

import (
	"ged-apae-console/common"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
)

// SameOriginMiddleware refuses state-changing requests sent by another site.
// A request is refused when the browser marks it Sec-Fetch-Site: cross-site
// or when its Origin does not name the host it was sent to. Requests without
// an Origin header pass; browsers always send one on cross-origin posts.
func (c *Console) SameOriginMiddleware(next http.Handler) http.Handler {
	refuse := c.ErrorHandlingMiddleware(func(w http.ResponseWriter, r *http.Request) *common.AppError {
		return common.NewAppError(http.StatusForbidden, "Requisição de outra origem recusada.", nil)
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isSafeMethod(r.Method) || sameOrigin(r) {
			next.ServeHTTP(w, r)
			return
		}
		requestLog(r).WithFields(logrus.Fields{
			"origin":         r.Header.Get("Origin"),
			"sec_fetch_site": r.Header.Get("Sec-Fetch-Site"),
			"host":           r.Host,
		}).Warn("Cross-origin request refused")
		refuse(w, r)
	})
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func sameOrigin(r *http.Request) bool {
	if r.Header.Get("Sec-Fetch-Site") == "cross-site" {
		return false
	}
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}
