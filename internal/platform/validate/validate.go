// Package validate holds the small form-validation vocabulary shared by
// the domain services: a collected list of user-facing problems plus a
// few field checks.
package validate

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

// DateLayout es el formato de fechas de los formularios (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Errors acumula mensajes para el usuario. Un Errors vacío no es error.
type Errors []string

func (e Errors) Error() string {
	return strings.Join(e, " ")
}

func (e *Errors) Add(msg string) {
	*e = append(*e, msg)
}

// AddIf agrega msg cuando cond es true.
func (e *Errors) AddIf(cond bool, msg string) {
	if cond {
		e.Add(msg)
	}
}

// Err devuelve nil si no hay mensajes, para poder hacer `return errs.Err()`.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Messages extrae los mensajes si err es (o envuelve) un Errors.
func Messages(err error) ([]string, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}

func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Email hace el mismo chequeo laxo que el formulario: contiene '@' y '.'.
func Email(s string) bool {
	return strings.Contains(s, "@") && strings.Contains(s, ".")
}

// OneOf reporta si s está en allowed (comparación exacta).
func OneOf(s string, allowed ...string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

func ParseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// Today devuelve la fecha calendario de now a medianoche UTC, comparable
// con lo que devuelve ParseDate.
func Today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AgeOn calcula años cumplidos a la fecha on.
func AgeOn(birth, on time.Time) int {
	age := on.Year() - birth.Year()
	if on.Month() < birth.Month() || (on.Month() == birth.Month() && on.Day() < birth.Day()) {
		age--
	}
	return age
}

// NilIfBlank devuelve nil para strings vacíos o sólo espacios, o el valor recortado.
func NilIfBlank(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
