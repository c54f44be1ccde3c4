package webserver

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
)

func imageTestRouter(minBytes, maxBytes int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewImage(nil, nil, minBytes, maxBytes)
	r.POST("/image/check", h.Check)
	return r
}

func imageUpload(t *testing.T, contentType string, size int) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="upload.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(bytes.Repeat([]byte{0xAB}, size)); err != nil {
		t.Fatal(err)
	}
	mw.Close()
	return &body, mw.FormDataContentType()
}

func TestImageCheckRejectsMalformedUploads(t *testing.T) {
	const (
		minBytes = 512
		maxBytes = 2048
	)
	cases := []struct {
		name        string
		contentType string
		size        int
	}{
		{"unsupported content type", "text/plain", 1024},
		{"below minimum size", "image/png", minBytes - 1},
		{"above maximum size", "image/png", maxBytes + 1},
	}
	r := imageTestRouter(minBytes, maxBytes)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, ct := imageUpload(t, tc.contentType, tc.size)
			req := httptest.NewRequest("POST", "/image/check", body)
			req.Header.Set("Content-Type", ct)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestImageCheckRequiresFileField(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	mw.Close()

	req := httptest.NewRequest("POST", "/image/check", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	imageTestRouter(512, 2048).ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file field, got %d", w.Code)
	}
}
