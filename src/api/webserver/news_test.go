package webserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// All rejection paths fire before the resolver, engine or DB are touched,
// so the handler is constructed with nil collaborators.
func newsTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewNews(nil, nil, nil)
	r.POST("/news/check", h.Check)
	return r
}

func TestNewsCheckRejectsMissingInput(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty object", `{}`},
		{"blank fields", `{"text":"","url":""}`},
		{"whitespace only", `{"text":"   ","url":"  "}`},
		{"malformed json", `{"text":`},
	}
	r := newsTestRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/news/check", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}
