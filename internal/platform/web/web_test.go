package web

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"animal-rescue-portal/internal/middleware"
	"animal-rescue-portal/internal/platform/logger"
	"animal-rescue-portal/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	rd, err := NewRenderer(logger.Nop())
	require.NoError(t, err)
	rd.now = func() time.Time { return time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC) }
	return rd
}

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	rd := newTestRenderer(t)

	for _, name := range []string{
		"index", "login", "register", "dashboard", "adoption", "vaccination",
		"donate", "rescue", "volunteer", "foster", "contact", "educational", "404", "500",
	} {
		_, ok := rd.pages[name]
		assert.True(t, ok, "missing template %q", name)
	}
	_, ok := rd.pages["layout"]
	assert.False(t, ok)
}

func TestRender_FillsUserFlashesAndForm(t *testing.T) {
	rd := newTestRenderer(t)

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	req = req.WithContext(middleware.WithClaims(req.Context(), auth.Claims{UserID: "u1", Username: "ana"}))
	rec := httptest.NewRecorder()

	rd.Render(rec, req, http.StatusBadRequest, "contact", Page{
		Title:   "Contact Us",
		Form:    url.Values{"contact_name": {"Ana <b>"}},
		Flashes: Danger("Email is required."),
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Dashboard (ana)")
	assert.Contains(t, body, "Email is required.")
	assert.Contains(t, body, `value="Ana &lt;b&gt;"`)
	assert.Contains(t, body, "&copy; 2026")
}

func TestRender_UnknownTemplate(t *testing.T) {
	rd := newTestRenderer(t)
	rec := httptest.NewRecorder()

	rd.Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusOK, "nope", Page{})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestNotFoundAndServerError(t *testing.T) {
	rd := newTestRenderer(t)

	rec := httptest.NewRecorder()
	rd.NotFound(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Page not found")

	rec = httptest.NewRecorder()
	rd.ServerError(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Something went wrong")
}

func TestFlash_RedirectThenPop(t *testing.T) {
	rec := httptest.NewRecorder()
	Redirect(rec, httptest.NewRequest(http.MethodPost, "/donate", nil), "/donate",
		Flash{Category: FlashSuccess, Message: "Thank you!"})

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/donate", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/donate", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()

	got := PopFlashes(rec2, req)
	assert.Equal(t, []Flash{{Category: FlashSuccess, Message: "Thank you!"}}, got)

	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Equal(t, -1, cleared[0].MaxAge)
}

func TestFlash_CorruptCookieIsIgnored(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "%%%not-base64"})

	assert.Nil(t, PopFlashes(httptest.NewRecorder(), req))
}

func TestParseForm_MultipartAndLimit(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("animalName", "Milo"))
	fw, err := mw.CreateFormFile("animalImage", "milo.png")
	require.NoError(t, err)
	_, _ = fw.Write([]byte("png-bytes"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/post_animal", bytes.NewReader(buf.Bytes()))
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, ParseForm(httptest.NewRecorder(), req, 0))
	assert.Equal(t, "Milo", FormValues(req).Get("animalName"))

	big := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader("contact_message="+strings.Repeat("x", 64)))
	big.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	err = ParseForm(httptest.NewRecorder(), big, 16)
	require.Error(t, err)
	assert.True(t, IsTooLarge(err))
}

func TestSafeNext(t *testing.T) {
	cases := map[string]string{
		"/dashboard":         "/dashboard",
		"/adoption?x=1":      "/adoption?x=1",
		"":                   "/fallback",
		"https://evil.test/": "/fallback",
		"//evil.test":        "/fallback",
		`/\evil.test`:        "/fallback",
		"dashboard":          "/fallback",
	}
	for in, want := range cases {
		assert.Equal(t, want, SafeNext(in, "/fallback"), "input %q", in)
	}
}

func TestJSONError(t *testing.T) {
	rec := httptest.NewRecorder()
	JSONError(rec, http.StatusConflict, "Cannot accept: Animal is already adopted.")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Cannot accept: Animal is already adopted."}`, rec.Body.String())
}
