package uploads

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicFS_ServesOnlyFilesInPublicCategories(t *testing.T) {
	s := NewStore(t.TempDir())
	require.NoError(t, s.EnsureDirs())

	img, err := s.Save(CategoryAnimals, "animal_u1_1", FromBytes("milo.png", []byte("png")))
	require.NoError(t, err)
	idProof, err := s.Save(CategoryAdoptions, "id_u2_1", FromBytes("passport.pdf", []byte("pdf")))
	require.NoError(t, err)

	h := http.StripPrefix("/static/uploads", http.FileServer(s.PublicFS(PublicCategories...)))

	get := func(p string) (int, string) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, p, nil))
		b, _ := io.ReadAll(rec.Body)
		return rec.Code, string(b)
	}

	code, body := get(PublicURL("/static/uploads", img.RelPath))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "png", body)

	for _, p := range []string{
		"/static/uploads/",
		"/static/uploads/animals",
		"/static/uploads/animals/",
		"/static/uploads/rescues/",
		"/static/uploads/adoptions/",
		PublicURL("/static/uploads", idProof.RelPath),
		"/static/uploads/animals/../adoptions/" + "id_u2_1_passport.pdf",
	} {
		code, body := get(p)
		assert.Equal(t, http.StatusNotFound, code, p)
		assert.NotContains(t, body, "passport", p)
		assert.NotContains(t, body, "milo", p)
	}
}
