package ticket

import (
	"strconv"

	"github.com/darna-inc/darna/internal/domain/shared/events"
)

const EventTicketAnswered = "ticket.answered"

// AnsweredEvent is raised when staff edit a ticket so the author can be told.
type AnsweredEvent struct {
	events.BaseEvent
	TicketID  uint   `json:"ticket_id"`
	UserID    uint   `json:"user_id"`
	ReplierID uint   `json:"replier_id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	// AnswerHTML is empty when the edit did not touch the answer.
	AnswerHTML string `json:"answer_html,omitempty"`
}

func NewAnsweredEvent(t *Ticket, answerChanged bool) *AnsweredEvent {
	e := &AnsweredEvent{
		BaseEvent: events.NewBaseEvent(strconv.FormatUint(uint64(t.ID()), 10), EventTicketAnswered),
		TicketID:  t.ID(),
		UserID:    t.UserID(),
		Title:     t.Title(),
		Status:    t.Status().String(),
	}
	if r := t.ReplierID(); r != nil {
		e.ReplierID = *r
	}
	if answerChanged {
		e.AnswerHTML = t.AnswerHTML()
	}
	return e
}
