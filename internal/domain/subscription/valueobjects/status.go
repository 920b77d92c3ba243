package valueobjects

type SubscriptionStatus string

const (
	StatusInactive SubscriptionStatus = "inactive"
	StatusActive   SubscriptionStatus = "active"
	StatusExpired  SubscriptionStatus = "expired"
)

func (s SubscriptionStatus) String() string {
	return string(s)
}

// CanTransitionTo reports whether target is reachable from s. Expired is
// terminal; renewal creates a new subscription.
func (s SubscriptionStatus) CanTransitionTo(target SubscriptionStatus) bool {
	transitions := map[SubscriptionStatus][]SubscriptionStatus{
		StatusInactive: {StatusActive, StatusExpired},
		StatusActive:   {StatusExpired},
		StatusExpired:  {},
	}

	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s SubscriptionStatus) IsValid() bool {
	return ValidStatuses[s]
}

var ValidStatuses = map[SubscriptionStatus]bool{
	StatusInactive: true,
	StatusActive:   true,
	StatusExpired:  true,
}
