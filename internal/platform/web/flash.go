package web

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
)

const flashCookie = "flash"

type FlashCategory string

const (
	FlashSuccess FlashCategory = "success"
	FlashInfo    FlashCategory = "info"
	FlashWarning FlashCategory = "warning"
	FlashDanger  FlashCategory = "danger"
)

type Flash struct {
	Category FlashCategory `json:"c"`
	Message  string        `json:"m"`
}

// Danger arma un flash por cada mensaje (errores de validación).
func Danger(msgs ...string) []Flash {
	out := make([]Flash, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, Flash{Category: FlashDanger, Message: m})
	}
	return out
}

// SetFlash guarda mensajes para el próximo request (patrón post/redirect/get).
func SetFlash(w http.ResponseWriter, flashes ...Flash) {
	if len(flashes) == 0 {
		return
	}
	b, err := json.Marshal(flashes)
	if err != nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// PopFlashes lee y borra los flashes pendientes. Un cookie corrupto se
// descarta sin error.
func PopFlashes(w http.ResponseWriter, r *http.Request) []Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil || c.Value == "" {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}
	var out []Flash
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Redirect con flash opcional.
func Redirect(w http.ResponseWriter, r *http.Request, to string, flashes ...Flash) {
	SetFlash(w, flashes...)
	http.Redirect(w, r, to, http.StatusSeeOther)
}
