package ticket

import (
	"errors"
	"fmt"
	"strings"
	"time"

	vo "github.com/darna-inc/darna/internal/domain/ticket/valueobjects"
)

var ErrTicketNotFound = errors.New("ticket not found")

// Ticket is a support question raised by a user. Answered tickets double as
// the public FAQ list.
type Ticket struct {
	id          uint
	userID      uint
	replierID   *uint
	title       string
	description string
	answer      string
	answerHTML  string
	status      vo.TicketStatus
	answeredAt  *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(userID uint, title, description string) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	t := &Ticket{
		userID: userID,
		status: vo.StatusOpen,
	}
	if err := t.UpdateTitle(title); err != nil {
		return nil, err
	}
	if err := t.UpdateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	t.createdAt = now
	t.updatedAt = now
	return t, nil
}

func ReconstructTicket(
	id, userID uint,
	replierID *uint,
	title, description, answer, answerHTML string,
	status vo.TicketStatus,
	answeredAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:          id,
		userID:      userID,
		replierID:   replierID,
		title:       title,
		description: description,
		answer:      answer,
		answerHTML:  answerHTML,
		status:      status,
		answeredAt:  answeredAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) UserID() uint            { return t.userID }
func (t *Ticket) ReplierID() *uint        { return t.replierID }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Answer() string          { return t.answer }
func (t *Ticket) AnswerHTML() string      { return t.answerHTML }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) AnsweredAt() *time.Time  { return t.answeredAt }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.updatedAt = time.Now().UTC()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	t.description = description
	t.updatedAt = time.Now().UTC()
	return nil
}

// Reply records the staff member handling the ticket. Every staff edit
// counts as a reply.
func (t *Ticket) Reply(replierID uint) {
	t.replierID = &replierID
	t.updatedAt = time.Now().UTC()
}

// SetAnswer stores the markdown answer and its rendered HTML. An open ticket
// moves to answered.
func (t *Ticket) SetAnswer(markdown, html string) {
	now := time.Now().UTC()
	t.answer = markdown
	t.answerHTML = html
	t.answeredAt = &now
	t.updatedAt = now
	if t.status == vo.StatusOpen {
		t.status = vo.StatusAnswered
	}
}

func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}
	if !t.status.CanTransitionTo(newStatus) {
		return fmt.Errorf("cannot transition from %s to %s", t.status, newStatus)
	}
	t.status = newStatus
	t.updatedAt = time.Now().UTC()
	return nil
}
