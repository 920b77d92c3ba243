package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "github.com/darna-inc/darna/internal/domain/ticket/valueobjects"
)

func TestNewTicket(t *testing.T) {
	tk, err := NewTicket(4, "  Can I list a villa? ", "I have an agency account")
	require.NoError(t, err)
	assert.Equal(t, "Can I list a villa?", tk.Title())
	assert.Equal(t, vo.StatusOpen, tk.Status())

	_, err = NewTicket(0, "t", "d")
	assert.Error(t, err)

	_, err = NewTicket(4, "", "d")
	assert.Error(t, err)

	_, err = NewTicket(4, strings.Repeat("x", 201), "d")
	assert.Error(t, err)
}

func TestTicket_SetAnswer(t *testing.T) {
	tk, err := NewTicket(4, "Title", "Body")
	require.NoError(t, err)

	tk.Reply(9)
	tk.SetAnswer("**yes**", "<p><strong>yes</strong></p>")

	require.NotNil(t, tk.ReplierID())
	assert.Equal(t, uint(9), *tk.ReplierID())
	assert.Equal(t, vo.StatusAnswered, tk.Status())
	assert.NotNil(t, tk.AnsweredAt())

	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	tk.SetAnswer("edited", "<p>edited</p>")
	assert.Equal(t, vo.StatusClosed, tk.Status(), "closed tickets stay closed when the answer is edited")
}

func TestTicket_ChangeStatus(t *testing.T) {
	tk, _ := NewTicket(1, "Title", "Body")

	assert.Error(t, tk.ChangeStatus(vo.TicketStatus("bogus")))
	require.NoError(t, tk.ChangeStatus(vo.StatusClosed))
	assert.Error(t, tk.ChangeStatus(vo.StatusAnswered))
	assert.NoError(t, tk.ChangeStatus(vo.StatusClosed))
}
