package fosters

import "time"

type Status string

const StatusPending Status = "Pending"

var (
	HomeTypes      = []string{"House", "Apartment", "Condo", "Other"}
	YardOptions    = []string{"Yes", "No", "Partial"}
	FenceOptions   = []string{"Yes", "No", "Partial"}
	TransportOpts  = []string{"Yes", "No"}
	PreferredKinds = []string{"Dogs", "Cats", "Puppies", "Kittens", "Small animals"}
)

type Foster struct {
	ID string

	Name          string
	Email         string // único
	Phone         string
	Address       string
	HouseholdInfo *string

	HomeType     string
	HasYard      string
	YardFenced   *string // nil cuando no hay patio
	CanTransport string

	PreferredAnimal  *string // separados por ", "
	FosterExperience *string
	WhyFoster        string

	Status    Status
	CreatedAt time.Time
}

// HasSomeYard reporta si hay patio (total o parcial).
func (f Foster) HasSomeYard() bool {
	return f.HasYard == "Yes" || f.HasYard == "Partial"
}
