package adoptions

import (
	"errors"
	"fmt"

	"animal-rescue-portal/internal/domain/animals"
	"animal-rescue-portal/internal/platform/validate"
)

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotFound          = errors.New("adoption request not found")
	ErrAnimalNotFound    = errors.New("animal not found")
	ErrAnimalUnavailable = errors.New("animal not available")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyAccepted   = errors.New("another request already accepted")
	ErrNotPending        = errors.New("request is not pending")
	ErrFileStorage       = errors.New("upload storage failed")
)

// RequestError es el rechazo de una solicitud antes de guardar nada: Kind
// decide el status HTTP y Problems son los mensajes para el usuario.
type RequestError struct {
	Kind     error
	Problems validate.Errors
}

func (e *RequestError) Error() string {
	return e.Problems.Error()
}

// Unwrap permite errors.Is(err, Kind) y errors.As(err, *validate.Errors).
func (e *RequestError) Unwrap() []error {
	return []error{e.Kind, e.Problems}
}

// AnimalStatusError indica que el animal ya no está Available al aceptar.
type AnimalStatusError struct {
	Status animals.Status
}

func (e *AnimalStatusError) Error() string {
	if e.Status == animals.StatusAdopted {
		return "Cannot accept: Animal is already adopted."
	}
	return fmt.Sprintf("Cannot accept: Animal status is currently '%s'.", e.Status)
}

func (e *AnimalStatusError) Is(target error) bool {
	return target == ErrAnimalUnavailable
}
