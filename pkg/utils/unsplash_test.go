package utils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestUnsplashClientSearchCountryImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/photos" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Client-ID key-1" {
			t.Errorf("Authorization = %q", got)
		}
		q := r.URL.Query()
		if q.Get("query") != "colosseum rome" || q.Get("per_page") != "1" || q.Get("orientation") != "landscape" {
			t.Errorf("query = %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total": 1, "results": [{"urls": {"regular": "https://images.example/rome.jpg"}, "user": {"name": "Ada"}}]}`))
	}))
	defer srv.Close()

	img, err := NewUnsplashClient("key-1", srv.URL).SearchCountryImage(context.Background(), " Italy ")
	if err != nil {
		t.Fatalf("SearchCountryImage() error: %v", err)
	}
	if img.URL != "https://images.example/rome.jpg" || img.Photographer != "Ada" || img.Source != "Unsplash" {
		t.Errorf("SearchCountryImage() = %+v", img)
	}
}

func TestUnsplashClientNoResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total": 0, "results": []}`))
	}))
	defer srv.Close()

	_, err := NewUnsplashClient("key-1", srv.URL).SearchCountryImage(context.Background(), "Atlantis")
	if !errors.Is(err, ErrImageNotFound) {
		t.Errorf("SearchCountryImage() error = %v, want ErrImageNotFound", err)
	}
}

func TestUnsplashClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewUnsplashClient("key-1", srv.URL).SearchCountryImage(context.Background(), "Japan"); err == nil {
		t.Errorf("SearchCountryImage() accepted a 403")
	}
	if _, err := NewUnsplashClient("", srv.URL).SearchCountryImage(context.Background(), "Japan"); !errors.Is(err, ErrImageNotFound) {
		t.Errorf("SearchCountryImage() without key error = %v", err)
	}
}

func TestCountryLookups(t *testing.T) {
	if got := CountrySearchQuery("Narnia"); got != "Narnia landmark travel" {
		t.Errorf("CountrySearchQuery() = %q", got)
	}
	if got := FallbackCountryImage("THAILAND"); got == DefaultHeroImage {
		t.Errorf("FallbackCountryImage(THAILAND) = default image")
	}
	if got := FallbackCountryImage("Narnia"); got != DefaultHeroImage {
		t.Errorf("FallbackCountryImage(Narnia) = %q", got)
	}
}
