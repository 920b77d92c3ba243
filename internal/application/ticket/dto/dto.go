package dto

import (
	"time"

	"github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/domain/user"
)

type ParticipantDTO struct {
	ID       uint   `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type TicketDTO struct {
	ID          uint            `json:"id"`
	UserID      uint            `json:"user_id"`
	ReplierID   *uint           `json:"replier_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Answer      string          `json:"answer"`
	AnswerHTML  string          `json:"answer_html"`
	Status      string          `json:"status"`
	AnsweredAt  *time.Time      `json:"answered_at,omitempty"`
	User        *ParticipantDTO `json:"user,omitempty"`
	Replier     *ParticipantDTO `json:"replier,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToParticipantDTO(u *user.User) *ParticipantDTO {
	if u == nil {
		return nil
	}
	return &ParticipantDTO{
		ID:       u.ID(),
		FullName: u.FullName(),
		Email:    u.Email().String(),
	}
}

// ToTicketDTO converts a ticket. people maps user ids to the loaded author
// and replier; missing entries are left out of the response.
func ToTicketDTO(t *ticket.Ticket, people map[uint]*user.User) *TicketDTO {
	if t == nil {
		return nil
	}
	result := &TicketDTO{
		ID:          t.ID(),
		UserID:      t.UserID(),
		ReplierID:   t.ReplierID(),
		Title:       t.Title(),
		Description: t.Description(),
		Answer:      t.Answer(),
		AnswerHTML:  t.AnswerHTML(),
		Status:      t.Status().String(),
		AnsweredAt:  t.AnsweredAt(),
		User:        ToParticipantDTO(people[t.UserID()]),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
	if r := t.ReplierID(); r != nil {
		result.Replier = ToParticipantDTO(people[*r])
	}
	return result
}
