package animals

import "time"

// Status es el estado de publicación de un animal.
type Status string

const (
	StatusAvailable Status = "Available"
	StatusAdopted   Status = "Adopted"
)

// Animal es un animal publicado para adopción por un usuario.
type Animal struct {
	ID     string
	UserID string // quien lo publicó

	Name        string
	Type        string
	Age         float64 // años, admite fracciones
	Description string

	// ImageFilename es relativo a la raíz pública ("uploads/animals/x.png").
	ImageFilename *string

	Status     Status
	DatePosted time.Time
}

func (a Animal) Available() bool {
	return a.Status == StatusAvailable
}
