// Minimal end-to-end smoke test for the veriscan API.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"time"
)

var baseURL = getenv("API_URL", "http://localhost:8080/v1")

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	email := fmt.Sprintf("smoke-%d@example.com", time.Now().Unix())

	signup(email)
	token := login(email)

	checkNews(token)
	checkImage(token)
	listScans(token)

	fmt.Println("✓ all endpoints passed")
}

// ----------------------------- auth

func signup(email string) {
	var resp struct {
		User struct{ Name, Email string }
	}
	doJSON("POST", "/auth/signup", map[string]any{
		"name":     "Smoke Tester",
		"email":    email,
		"password": "smoketest123",
	}, &resp, http.StatusCreated)
	if resp.User.Email != email {
		log.Fatalf("signup: unexpected user %+v", resp.User)
	}
}

func login(email string) string {
	var resp struct{ Token string }
	doJSON("POST", "/auth/login", map[string]any{
		"email":    email,
		"password": "smoketest123",
	}, &resp, http.StatusOK)
	if resp.Token == "" {
		log.Fatal("login: empty token")
	}
	return resp.Token
}

// ----------------------------- checks

func checkNews(token string) {
	var resp struct {
		Verdict    string
		Confidence float64
	}
	doAuthJSON("POST", "/news/check", token, map[string]any{
		"text": "The central bank announced a quarter-point increase in interest rates on Wednesday, citing persistent inflation pressure across the economy.",
	}, &resp, http.StatusOK)
	if resp.Verdict == "" {
		log.Fatal("news check: empty verdict")
	}
	fmt.Printf("news verdict: %s (%.2f)\n", resp.Verdict, resp.Confidence)
}

func checkImage(token string) {
	img := image.NewGray(image.Rect(0, 0, 200, 200))
	for y := 0; y < 200; y++ {
		for x := 0; x < 200; x++ {
			img.SetGray(x, y, color.Gray{Y: 128})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		log.Fatal(err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="file"; filename="flat.png"`)
	hdr.Set("Content-Type", "image/png")
	part, err := mw.CreatePart(hdr)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := part.Write(buf.Bytes()); err != nil {
		log.Fatal(err)
	}
	mw.Close()

	req, err := http.NewRequest("POST", baseURL+"/image/check", &body)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	var resp struct {
		Verdict    string
		Confidence int
	}
	do(req, &resp, http.StatusOK)
	fmt.Printf("image verdict: %s (%d)\n", resp.Verdict, resp.Confidence)
}

func listScans(token string) {
	req, err := http.NewRequest("GET", baseURL+"/scans", nil)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	var resp struct {
		Scans []struct{ Kind, Verdict string }
	}
	do(req, &resp, http.StatusOK)
	if len(resp.Scans) < 2 {
		log.Fatalf("scans: expected at least 2 entries, got %d", len(resp.Scans))
	}
}

// ----------------------------- plumbing

func doJSON(method, path string, payload any, out any, wantStatus int) {
	raw, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(raw))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	do(req, out, wantStatus)
}

func doAuthJSON(method, path, token string, payload any, out any, wantStatus int) {
	raw, _ := json.Marshal(payload)
	req, err := http.NewRequest(method, baseURL+path, bytes.NewReader(raw))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	do(req, out, wantStatus)
}

func do(req *http.Request, out any, wantStatus int) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != wantStatus {
		log.Fatalf("%s %s: status %d, body %s", req.Method, req.URL.Path, resp.StatusCode, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			log.Fatalf("%s %s: bad json: %v", req.Method, req.URL.Path, err)
		}
	}
}
