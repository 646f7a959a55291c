package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tomz197/aimtrainer/internal/config"
)

func TestRenderPage(t *testing.T) {
	page := renderPage(htmlPage, "play.example.com", "2022", config.Defaults())

	for _, want := range []string{"ssh -t -p 2022 play.example.com", "every 400ms", "let 3 of them"} {
		if !strings.Contains(page, want) {
			t.Errorf("page missing %q", want)
		}
	}
	if strings.Contains(page, "{{.") {
		t.Error("page has unreplaced placeholders")
	}
}

func TestLandingHandler(t *testing.T) {
	h := landingHandler("<p>hi</p>")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "<p>hi</p>" {
		t.Errorf("GET / = %d %q", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET /missing = %d, want 404", rec.Code)
	}
}
