package rescues

import "time"

type Status string

const StatusReported Status = "Reported"

// OtherType es la opción del select que obliga a describir el animal.
const OtherType = "Other"

// Rescue es un avistamiento reportado por el público, con foto.
type Rescue struct {
	ID string

	AnimalType       string
	Location         string
	ConditionDetails *string

	ImageFilename  string  // "uploads/rescues/..."
	ReporterUserID *string // nil si reportó sin sesión

	Status     Status
	ReportedAt time.Time
}

// AnimalTypes son las opciones del formulario; OtherType pide describirlo.
var AnimalTypes = []string{"Dog", "Cat", "Bird", "Cow", OtherType}
