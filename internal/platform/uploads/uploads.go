// Package uploads guarda archivos subidos por formularios bajo un
// directorio local, separado por categoría (animals, adoptions, rescues).
package uploads

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

type Category string

const (
	CategoryAnimals   Category = "animals"
	CategoryAdoptions Category = "adoptions"
	CategoryRescues   Category = "rescues"
)

var (
	// ImageExtensions son los tipos aceptados para fotos.
	ImageExtensions = []string{"png", "jpg", "jpeg", "gif"}
	// DocumentExtensions agrega pdf para comprobantes de identidad.
	DocumentExtensions = []string{"png", "jpg", "jpeg", "gif", "pdf"}
)

var (
	ErrEmptyFile   = errors.New("uploads: empty file")
	ErrBadName     = errors.New("uploads: filename has no usable characters")
	ErrDirUnusable = errors.New("uploads: directory not usable")
)

// File es un archivo recibido, desacoplado de mime/multipart para que los
// servicios se puedan testear con bytes en memoria.
type File struct {
	Name string
	Size int64
	open func() (io.ReadCloser, error)
}

func (f *File) Open() (io.ReadCloser, error) {
	if f == nil || f.open == nil {
		return nil, ErrEmptyFile
	}
	return f.open()
}

// Present reporta si el campo traía un archivo con nombre.
func (f *File) Present() bool {
	return f != nil && strings.TrimSpace(f.Name) != ""
}

func FromMultipart(fh *multipart.FileHeader) *File {
	if fh == nil {
		return nil
	}
	return &File{
		Name: fh.Filename,
		Size: fh.Size,
		open: func() (io.ReadCloser, error) { return fh.Open() },
	}
}

func FromBytes(name string, data []byte) *File {
	return &File{
		Name: name,
		Size: int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// FormFile lee el campo field de un request multipart ya parseado.
// Devuelve nil si no vino archivo.
func FormFile(r *http.Request, field string) *File {
	if r.MultipartForm == nil || r.MultipartForm.File == nil {
		return nil
	}
	fhs := r.MultipartForm.File[field]
	if len(fhs) == 0 {
		return nil
	}
	return FromMultipart(fhs[0])
}

// Allowed valida la extensión (case-insensitive) contra allowed.
func Allowed(filename string, allowed []string) bool {
	i := strings.LastIndex(filename, ".")
	if filename == "" || i < 0 {
		return false
	}
	ext := strings.ToLower(filename[i+1:])
	for _, a := range allowed {
		if ext == a {
			return true
		}
	}
	return false
}

// SecureFilename reduce name a un nombre plano seguro: sin directorios, sólo
// ASCII [A-Za-z0-9._-], espacios como '_', sin puntos iniciales.
func SecureFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	return strings.Trim(b.String(), "._")
}

// Saved describe un archivo persistido.
type Saved struct {
	// RelPath es relativo a la raíz pública, p.ej. "uploads/animals/x.png".
	RelPath  string
	FullPath string
}

type Store struct {
	root      string
	publicDir string
	now       func() time.Time
}

// NewStore crea un store con raíz en dir. publicDir es el prefijo con el
// que se registran las rutas relativas (por convención "uploads").
func NewStore(dir string) *Store {
	return &Store{
		root:      dir,
		publicDir: "uploads",
		now:       time.Now,
	}
}

func (s *Store) Root() string { return s.root }

// EnsureDirs crea los directorios de todas las categorías.
func (s *Store) EnsureDirs() error {
	for _, c := range []Category{CategoryAnimals, CategoryAdoptions, CategoryRescues} {
		if err := os.MkdirAll(filepath.Join(s.root, string(c)), 0o755); err != nil {
			return fmt.Errorf("%w: %v", ErrDirUnusable, err)
		}
	}
	return nil
}

// Timestamp devuelve el sello usado en nombres de archivo (UTC, microsegundos).
func (s *Store) Timestamp() string {
	t := s.now().UTC()
	return t.Format("20060102150405") + fmt.Sprintf("%06d", t.Nanosecond()/1000)
}

// Save escribe f como "<prefix>_<secure name>" dentro de la categoría.
func (s *Store) Save(c Category, prefix string, f *File) (Saved, error) {
	if !f.Present() {
		return Saved{}, ErrEmptyFile
	}
	base := SecureFilename(f.Name)
	if base == "" {
		return Saved{}, ErrBadName
	}
	name := SecureFilename(prefix + "_" + base)

	dir := filepath.Join(s.root, string(c))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Saved{}, fmt.Errorf("%w: %v", ErrDirUnusable, err)
	}

	src, err := f.Open()
	if err != nil {
		return Saved{}, fmt.Errorf("uploads: open source: %w", err)
	}
	defer src.Close()

	full := filepath.Join(dir, name)
	dst, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return Saved{}, fmt.Errorf("uploads: create %s: %w", name, err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(full)
		return Saved{}, fmt.Errorf("uploads: write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(full)
		return Saved{}, fmt.Errorf("uploads: close %s: %w", name, err)
	}

	return Saved{
		RelPath:  path.Join(s.publicDir, string(c), name),
		FullPath: full,
	}, nil
}

// Remove borra archivos guardados; ignora los que ya no existen.
func (s *Store) Remove(saved ...Saved) error {
	var errs []error
	for _, sv := range saved {
		if sv.FullPath == "" {
			continue
		}
		if err := os.Remove(sv.FullPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PublicURL arma la URL pública de un RelPath guardado ("uploads/animals/x").
func PublicURL(urlPrefix, relPath string) string {
	if strings.TrimSpace(relPath) == "" {
		return ""
	}
	rel := strings.TrimPrefix(relPath, "uploads/")
	return strings.TrimRight(urlPrefix, "/") + "/" + strings.TrimLeft(rel, "/")
}
