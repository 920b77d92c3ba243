package valueobjects

type TicketStatus string

const (
	StatusOpen     TicketStatus = "open"
	StatusAnswered TicketStatus = "answered"
	StatusClosed   TicketStatus = "closed"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusOpen:     true,
	StatusAnswered: true,
	StatusClosed:   true,
}

var ticketStatusTransitions = map[TicketStatus][]TicketStatus{
	StatusOpen: {
		StatusAnswered,
		StatusClosed,
	},
	StatusAnswered: {
		StatusOpen,
		StatusClosed,
	},
	StatusClosed: {
		StatusOpen,
	},
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

func (ts TicketStatus) CanTransitionTo(newStatus TicketStatus) bool {
	for _, allowed := range ticketStatusTransitions[ts] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
