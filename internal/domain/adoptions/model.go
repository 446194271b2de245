package adoptions

import "time"

type Status string

const (
	StatusPending     Status = "Pending"
	StatusAccepted    Status = "Accepted"
	StatusRejected    Status = "Rejected"
	StatusUnavailable Status = "Unavailable" // otra solicitud fue aceptada
)

// Action es lo que el dueño del animal hace con una solicitud.
type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
)

// Adoption es una solicitud de adopción sobre un animal publicado.
type Adoption struct {
	ID string

	AnimalID   string
	AnimalName string // copia al momento de la solicitud

	AdopterName  string
	AdopterEmail string

	// Rutas relativas a la raíz pública ("uploads/adoptions/...").
	PhotoPath   string
	IDProofPath string

	UserID string // quien solicita
	Status Status

	AdoptionDate time.Time
}
