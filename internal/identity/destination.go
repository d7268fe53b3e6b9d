package identity

// Destination is where a successfully authenticated user lands. The router
// performs the navigation; this package only decides which.
type Destination string

const (
	DestinationDashboard Destination = "dashboard"
	DestinationPayment   Destination = "payment"
)

// DecideDestination routes a freshly authenticated user: paid profiles reach
// the dashboard, everyone else is sent to the payment flow. A missing profile
// counts as unpaid. The decision is made once per login and not re-evaluated.
func DecideDestination(p Profile) Destination {
	if p.HasPaid {
		return DestinationDashboard
	}
	return DestinationPayment
}
