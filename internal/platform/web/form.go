package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// DefaultMaxUploadBytes aplica cuando el router no configura otro límite.
const DefaultMaxUploadBytes int64 = 16 << 20

// ParseForm acepta multipart/form-data o application/x-www-form-urlencoded
// y limita el tamaño del body a maxBytes.
func ParseForm(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		// 8MB en memoria, el resto a archivos temporales.
		if err := r.ParseMultipartForm(8 << 20); err != nil {
			return err
		}
		return nil
	}
	return r.ParseForm()
}

// IsTooLarge reporta si err vino de MaxBytesReader.
func IsTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

// FormValues devuelve el form combinado (valores de texto) para repoblar
// templates tras un error.
func FormValues(r *http.Request) url.Values {
	if r.MultipartForm != nil {
		out := url.Values{}
		for k, v := range r.MultipartForm.Value {
			out[k] = v
		}
		return out
	}
	if r.PostForm != nil {
		return r.PostForm
	}
	return url.Values{}
}

// JSONResult es la respuesta de los endpoints AJAX.
type JSONResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	AnimalID string `json:"animal_id,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONError es el atajo para {success:false, message}.
func JSONError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, JSONResult{Success: false, Message: msg})
}

// SafeNext acepta sólo rutas locales ("/x"), nunca "//host" ni URLs absolutas.
func SafeNext(next, fallback string) string {
	next = strings.TrimSpace(next)
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return fallback
	}
	u, err := url.Parse(next)
	if err != nil || u.IsAbs() || u.Host != "" {
		return fallback
	}
	return next
}
