package usecases

import (
	"context"

	"github.com/darna-inc/darna/internal/domain/ticket"
	"github.com/darna-inc/darna/internal/domain/user"
)

// AnswerRenderer turns a markdown answer into sanitised HTML.
type AnswerRenderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

// loadParticipants fetches the authors and repliers of tickets in one query.
func loadParticipants(ctx context.Context, users user.Repository, tickets ...*ticket.Ticket) (map[uint]*user.User, error) {
	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(tickets)*2)
	add := func(id uint) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	for _, t := range tickets {
		add(t.UserID())
		if r := t.ReplierID(); r != nil {
			add(*r)
		}
	}

	people := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return people, nil
	}
	found, err := users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, u := range found {
		people[u.ID()] = u
	}
	return people, nil
}
