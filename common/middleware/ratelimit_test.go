package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestRateLimit(t *testing.T) {
	e := echo.New()
	e.GET("/limited", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RateLimit(2))

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/limited", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		statuses = append(statuses, rec.Code)
	}

	want := []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}
	for i, status := range statuses {
		if status != want[i] {
			t.Errorf("request %d: got status %d, want %d", i+1, status, want[i])
		}
	}
}

func TestRateLimitResponseBody(t *testing.T) {
	e := echo.New()
	e.GET("/limited", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, RateLimit(1))

	// Exhaust the budget, then inspect the rejection.
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/limited", nil))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/limited", nil))

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("got status %d, want %d", rec.Code, http.StatusTooManyRequests)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "Rate limit exceeded") {
		t.Errorf("unexpected rejection body: %s", body)
	}
}
