package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/darna-inc/darna/internal/application/ticket/dto"
	"github.com/darna-inc/darna/internal/application/ticket/usecases"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers/testutil"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type mockCreateTicketUC struct {
	cmd *usecases.CreateTicketCommand
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.cmd = &cmd
	return &ticketdto.TicketDTO{ID: 1, UserID: cmd.UserID, Title: cmd.Title, Status: "open"}, nil
}

type mockListTicketsUC struct {
	query *usecases.ListTicketsQuery
}

func (m *mockListTicketsUC) Execute(_ context.Context, query usecases.ListTicketsQuery) (*usecases.ListTicketsResult, error) {
	m.query = &query
	return &usecases.ListTicketsResult{}, nil
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockGetTicketUC) Execute(context.Context, uint) (*ticketdto.TicketDTO, error) {
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	cmd *usecases.UpdateTicketCommand
	err error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.cmd = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &ticketdto.TicketDTO{ID: cmd.TicketID, Status: "answered"}, nil
}

type ticketHandlerMocks struct {
	create *mockCreateTicketUC
	list   *mockListTicketsUC
	get    *mockGetTicketUC
	update *mockUpdateTicketUC
}

func newTestTicketHandler() (*TicketHandler, *ticketHandlerMocks) {
	m := &ticketHandlerMocks{
		create: &mockCreateTicketUC{},
		list:   &mockListTicketsUC{},
		get:    &mockGetTicketUC{},
		update: &mockUpdateTicketUC{},
	}
	return NewTicketHandler(m.create, m.list, m.get, m.update, logger.NewNop()), m
}

func TestTicketHandler_CreateTicket(t *testing.T) {
	h, m := newTestTicketHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", map[string]string{
		"title":       "How do I renew?",
		"description": "My plan ends next week.",
	})
	testutil.SetAuthContext(c, 3, authorization.RoleIndividual)

	h.CreateTicket(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(3), m.create.cmd.UserID)

	h, m = newTestTicketHandler()
	c, w = testutil.NewTestContext(http.MethodPost, "/api/tickets", map[string]string{"title": "no body"})
	testutil.SetAuthContext(c, 3, authorization.RoleIndividual)

	h.CreateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, m.create.cmd)
}

func TestTicketHandler_ListTicketsVisibility(t *testing.T) {
	uid := func(v uint) *uint { return &v }

	tests := []struct {
		name       string
		role       authorization.UserRole
		params     map[string]string
		wantStatus string
		wantUserID *uint
	}{
		{
			name:       "customer browsing gets the faq",
			role:       authorization.RoleIndividual,
			params:     map[string]string{"status": "open", "user_id": "99"},
			wantStatus: "answered",
		},
		{
			name:       "customer listing own tickets",
			role:       authorization.RoleAgency,
			params:     map[string]string{"mine": "true", "status": "open"},
			wantStatus: "open",
			wantUserID: uid(3),
		},
		{
			name:       "staff filter freely",
			role:       authorization.RoleEmployee,
			params:     map[string]string{"status": "open", "user_id": "99"},
			wantStatus: "open",
			wantUserID: uid(99),
		},
		{
			name:       "staff without filters see everything",
			role:       authorization.RoleAdmin,
			params:     map[string]string{},
			wantStatus: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestTicketHandler()
			c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
			testutil.SetQueryParams(c, tt.params)
			testutil.SetAuthContext(c, 3, tt.role)

			h.ListTickets(c)

			require.Equal(t, http.StatusOK, w.Code)
			require.NotNil(t, m.list.query)
			assert.Equal(t, tt.wantStatus, m.list.query.Status)
			assert.Equal(t, tt.wantUserID, m.list.query.UserID)
		})
	}
}

func TestTicketHandler_GetTicketVisibility(t *testing.T) {
	tests := []struct {
		name       string
		callerID   uint
		role       authorization.UserRole
		ticket     *ticketdto.TicketDTO
		wantStatus int
	}{
		{name: "owner sees open ticket", callerID: 3, role: authorization.RoleIndividual, ticket: &ticketdto.TicketDTO{ID: 1, UserID: 3, Status: "open"}, wantStatus: http.StatusOK},
		{name: "stranger cannot see open ticket", callerID: 4, role: authorization.RoleIndividual, ticket: &ticketdto.TicketDTO{ID: 1, UserID: 3, Status: "open"}, wantStatus: http.StatusNotFound},
		{name: "stranger sees faq entry", callerID: 4, role: authorization.RoleDeveloper, ticket: &ticketdto.TicketDTO{ID: 1, UserID: 3, Status: "answered"}, wantStatus: http.StatusOK},
		{name: "staff see everything", callerID: 8, role: authorization.RoleEmployee, ticket: &ticketdto.TicketDTO{ID: 1, UserID: 3, Status: "closed"}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestTicketHandler()
			m.get.result = tt.ticket
			c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/1", nil)
			testutil.SetURLParam(c, "id", "1")
			testutil.SetAuthContext(c, tt.callerID, tt.role)

			h.GetTicket(c)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTicketHandler_GetTicketNotFound(t *testing.T) {
	h, m := newTestTicketHandler()
	m.get.err = errors.NewNotFoundError("ticket not found")
	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/1", nil)
	testutil.SetURLParam(c, "id", "1")
	testutil.SetAuthContext(c, 3, authorization.RoleIndividual)

	h.GetTicket(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTicketHandler_UpdateTicketRecordsReplier(t *testing.T) {
	h, m := newTestTicketHandler()
	c, w := testutil.NewRawContext(http.MethodPut, "/api/tickets/6", `{"answer":"Use the renew button.","status":"answered"}`)
	testutil.SetURLParam(c, "id", "6")
	testutil.SetAuthContext(c, 8, authorization.RoleEmployee)

	h.UpdateTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.update.cmd)
	assert.Equal(t, uint(6), m.update.cmd.TicketID)
	assert.Equal(t, uint(8), m.update.cmd.ReplierID)
	require.NotNil(t, m.update.cmd.Answer)
	assert.Nil(t, m.update.cmd.Title)

	h, m = newTestTicketHandler()
	c, w = testutil.NewRawContext(http.MethodPut, "/api/tickets/6", `{"status":"escalated"}`)
	testutil.SetURLParam(c, "id", "6")
	testutil.SetAuthContext(c, 8, authorization.RoleEmployee)

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, m.update.cmd)
}
