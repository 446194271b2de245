package uploads

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// PublicCategories son las que tienen URL pública. Los archivos de
// solicitudes de adopción (foto e identificación) no se publican.
var PublicCategories = []Category{CategoryAnimals, CategoryRescues}

// publicFS sirve sólo archivos regulares dentro de las categorías
// permitidas. Directorios y cualquier otra ruta dan fs.ErrNotExist, que
// http.FileServer responde como 404.
type publicFS struct {
	root    http.FileSystem
	allowed map[string]bool
}

// PublicFS devuelve un http.FileSystem sobre la raíz del store limitado a
// cats, sin listados de directorio.
func (s *Store) PublicFS(cats ...Category) http.FileSystem {
	allowed := make(map[string]bool, len(cats))
	for _, c := range cats {
		allowed[string(c)] = true
	}
	return publicFS{root: http.Dir(s.root), allowed: allowed}
}

func (p publicFS) Open(name string) (http.File, error) {
	if strings.HasSuffix(name, "/") {
		return nil, fs.ErrNotExist
	}
	clean := path.Clean("/" + name)
	category, rest, ok := strings.Cut(strings.TrimPrefix(clean, "/"), "/")
	if !ok || rest == "" || !p.allowed[category] {
		return nil, fs.ErrNotExist
	}

	f, err := p.root.Open(clean)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	if st.IsDir() {
		_ = f.Close()
		return nil, fs.ErrNotExist
	}
	return f, nil
}
