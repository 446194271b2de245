package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/platform/metrics"
	"animal-rescue-portal/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type stubVerifier map[string]auth.Claims

func (s stubVerifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	c, ok := s[token]
	if !ok {
		return auth.Claims{}, errors.New("unknown token")
	}
	return c, nil
}

func whoami(w http.ResponseWriter, r *http.Request) {
	c, ok := middleware.GetClaims(r.Context())
	if !ok {
		_, _ = w.Write([]byte("anonymous"))
		return
	}
	_, _ = w.Write([]byte(c.Username))
}

func TestAuthContext_CookieThenBearer(t *testing.T) {
	v := stubVerifier{
		"tok-ana": {UserID: "u1", Username: "ana"},
		"tok-bob": {UserID: "u2", Username: "bob"},
	}
	h := middleware.AuthContext(v, "rescue_session")(http.HandlerFunc(whoami))

	cases := []struct {
		name   string
		cookie string
		bearer string
		want   string
	}{
		{"none", "", "", "anonymous"},
		{"cookie", "tok-ana", "", "ana"},
		{"bearer", "", "tok-bob", "bob"},
		{"cookie wins", "tok-ana", "tok-bob", "ana"},
		{"unknown", "nope", "", "anonymous"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "rescue_session", Value: tc.cookie})
			}
			if tc.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tc.bearer)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tc.want, rec.Body.String())
		})
	}
}

func TestAuthContext_NilVerifierIsAnonymous(t *testing.T) {
	h := middleware.AuthContext(nil, "rescue_session")(http.HandlerFunc(whoami))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "rescue_session", Value: "x"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestRequestLogger_And_Recover(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := logger.FromZap(zap.New(core))
	m := metrics.New()

	r := chi.NewRouter()
	r.Use(middleware.RequestLogger(log, m))
	r.Use(middleware.Recover(log, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("custom 500"))
	}))
	r.Get("/animals/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/animals/42", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "custom 500", rec.Body.String())

	panics := logs.FilterMessage("panic recovered").All()
	require.Len(t, panics, 1)
	assert.Equal(t, "kaboom", panics[0].ContextMap()["panic"])

	reqs := logs.FilterMessage("request").All()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/animals/{id}", reqs[0].ContextMap()["route"])
	assert.Equal(t, zap.WarnLevel, reqs[0].Level)
	assert.Equal(t, zap.ErrorLevel, reqs[1].Level)

	mrec := httptest.NewRecorder()
	m.Handler().ServeHTTP(mrec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, mrec.Body.String(), `http_requests_total{method="GET",route="/animals/{id}",status="418"} 1`)
	assert.Contains(t, mrec.Body.String(), `http_requests_total{method="GET",route="/boom",status="500"} 1`)
}
