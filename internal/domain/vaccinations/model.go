package vaccinations

import "time"

type Status string

const StatusPending Status = "Pending"

// TimeSlots son las franjas que ofrece el formulario.
var TimeSlots = []string{
	"09:00 - 11:00",
	"11:00 - 13:00",
	"14:00 - 16:00",
	"16:00 - 18:00",
}

type Appointment struct {
	ID string

	OwnerName string
	PetName   string
	PetType   string

	Date     time.Time // sólo fecha (medianoche UTC)
	TimeSlot string

	Status    Status
	CreatedAt time.Time
}
