package donations

import "time"

type Type string

const (
	TypeMoney    Type = "Money"
	TypeProducts Type = "Products"
)

type Status string

const (
	StatusCompleted Status = "Completed" // dinero registrado
	StatusReceived  Status = "Received"  // productos registrados
)

// Donation guarda sólo los campos que aplican a su Type; el resto queda nil.
type Donation struct {
	ID     string
	UserID *string // nil si donó sin sesión

	DonorName  string
	DonorEmail string
	DonorPhone *string

	Type           Type
	Amount         *float64
	PaymentMethod  *string
	ProductDetails *string

	Status       Status
	DonationDate time.Time
}
