package contact

import "time"

// Message es un mensaje del formulario de contacto.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
}
