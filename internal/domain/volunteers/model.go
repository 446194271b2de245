package volunteers

import "time"

type Status string

const StatusPending Status = "Pending"

// MinAge es la edad mínima para voluntariado.
const MinAge = 18

type Volunteer struct {
	ID string

	Name        string
	Email       string // único
	Phone       *string
	Address     *string
	DateOfBirth *time.Time

	Availability    string
	AreasOfInterest string // separadas por ", "
	Experience      *string
	WhyVolunteer    string

	Status    Status
	CreatedAt time.Time
}

// Interests son las áreas que se ofrecen en el formulario.
var Interests = []string{
	"Animal Care",
	"Dog Walking",
	"Fundraising",
	"Events",
	"Transport",
	"Administration",
}
