package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	subdto "github.com/darna-inc/darna/internal/application/subscription/dto"
	"github.com/darna-inc/darna/internal/application/subscription/usecases"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers/testutil"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type mockCreateSubscriptionUC struct {
	err error
	cmd *usecases.CreateSubscriptionCommand
}

func (m *mockCreateSubscriptionUC) Execute(_ context.Context, cmd usecases.CreateSubscriptionCommand) (*subdto.SubscriptionDTO, error) {
	m.cmd = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &subdto.SubscriptionDTO{ID: 10, UserID: cmd.UserID, PlanID: cmd.PlanID, Status: "inactive"}, nil
}

type mockUpdateSubscriptionUC struct {
	err error
	cmd *usecases.UpdateSubscriptionCommand
}

func (m *mockUpdateSubscriptionUC) Execute(_ context.Context, cmd usecases.UpdateSubscriptionCommand) (*subdto.SubscriptionDTO, error) {
	m.cmd = &cmd
	if m.err != nil {
		return nil, m.err
	}
	return &subdto.SubscriptionDTO{ID: cmd.ID, Status: "active"}, nil
}

type mockListSubscriptionsUC struct {
	query *usecases.ListSubscriptionsQuery
}

func (m *mockListSubscriptionsUC) Execute(_ context.Context, query usecases.ListSubscriptionsQuery) (*usecases.ListSubscriptionsResult, error) {
	m.query = &query
	return &usecases.ListSubscriptionsResult{}, nil
}

type mockGetMySubscriptionUC struct {
	err    error
	userID uint
}

func (m *mockGetMySubscriptionUC) Execute(_ context.Context, userID uint) (*subdto.SubscriptionDTO, error) {
	m.userID = userID
	if m.err != nil {
		return nil, m.err
	}
	return &subdto.SubscriptionDTO{ID: 1, UserID: userID, Status: "active"}, nil
}

type subscriptionHandlerMocks struct {
	create *mockCreateSubscriptionUC
	update *mockUpdateSubscriptionUC
	list   *mockListSubscriptionsUC
	getMy  *mockGetMySubscriptionUC
}

func newTestSubscriptionHandler() (*SubscriptionHandler, *subscriptionHandlerMocks) {
	m := &subscriptionHandlerMocks{
		create: &mockCreateSubscriptionUC{},
		update: &mockUpdateSubscriptionUC{},
		list:   &mockListSubscriptionsUC{},
		getMy:  &mockGetMySubscriptionUC{},
	}
	return NewSubscriptionHandler(m.create, m.update, m.list, m.getMy, logger.NewNop()), m
}

func validSubscriptionBody() map[string]any {
	return map[string]any{
		"plan_id":          2,
		"payment_method":   "baridimob",
		"payment_details":  "ref 7781",
		"proof_of_payment": "https://files.example.com/receipt.png",
		"period":           3,
	}
}

func TestSubscriptionHandler_CreateSubscription(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(body map[string]any)
		ucErr      error
		wantStatus int
	}{
		{name: "recorded", wantStatus: http.StatusCreated},
		{name: "unknown payment method", mutate: func(b map[string]any) { b["payment_method"] = "cash" }, wantStatus: http.StatusBadRequest},
		{name: "proof must be a url", mutate: func(b map[string]any) { b["proof_of_payment"] = "receipt" }, wantStatus: http.StatusBadRequest},
		{name: "period too long", mutate: func(b map[string]any) { b["period"] = 48 }, wantStatus: http.StatusBadRequest},
		{name: "missing plan", mutate: func(b map[string]any) { delete(b, "plan_id") }, wantStatus: http.StatusBadRequest},
		{name: "plan not found", ucErr: errors.NewNotFoundError("plan not found"), wantStatus: http.StatusNotFound},
		{name: "free plan cannot be requested", ucErr: errors.NewValidationError("the free plan cannot be requested"), wantStatus: http.StatusBadRequest},
		{name: "already subscribed", ucErr: errors.NewConflictError("user already has a subscription"), wantStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestSubscriptionHandler()
			m.create.err = tt.ucErr
			body := validSubscriptionBody()
			if tt.mutate != nil {
				tt.mutate(body)
			}
			c, w := testutil.NewTestContext(http.MethodPost, "/api/user_subscription", body)
			testutil.SetAuthContext(c, 7, authorization.RoleAgency)

			h.CreateSubscription(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, m.create.cmd)
				assert.Equal(t, uint(7), m.create.cmd.UserID)
				assert.Equal(t, uint(2), m.create.cmd.PlanID)
				assert.Equal(t, 3, m.create.cmd.PeriodMonths)
			}
		})
	}
}

func TestSubscriptionHandler_CreateSubscriptionRequiresCaller(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	c, w := testutil.NewTestContext(http.MethodPost, "/api/user_subscription", validSubscriptionBody())

	h.CreateSubscription(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, m.create.cmd)
}

func TestSubscriptionHandler_UpdateSubscription(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	c, w := testutil.NewRawContext(http.MethodPut, "/api/user_subscription/12", `{"status":"active"}`)
	testutil.SetURLParam(c, "id", "12")

	h.UpdateSubscription(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, m.update.cmd.Status)
	assert.Equal(t, "active", *m.update.cmd.Status)
	assert.Nil(t, m.update.cmd.PaymentDetails)

	h, m = newTestSubscriptionHandler()
	c, w = testutil.NewRawContext(http.MethodPut, "/api/user_subscription/12", `{"status":"cancelled"}`)
	testutil.SetURLParam(c, "id", "12")

	h.UpdateSubscription(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, m.update.cmd)
}

func TestSubscriptionHandler_ListSubscriptionsFilters(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/user_subscription", nil)
	testutil.SetQueryParams(c, map[string]string{
		"status":         "active",
		"payment_method": "bank_transfer",
		"user_id":        "5",
		"start_date":     "2026-01-01",
		"end_date":       "2026-03-31",
		"query":          "amina",
	})

	h.ListSubscriptions(c)

	require.Equal(t, http.StatusOK, w.Code)
	q := m.list.query
	require.NotNil(t, q)
	assert.Equal(t, "active", q.Status)
	assert.Equal(t, "bank_transfer", q.PaymentMethod)
	require.NotNil(t, q.UserID)
	assert.Equal(t, uint(5), *q.UserID)
	assert.Nil(t, q.PlanID)
	require.NotNil(t, q.StartFrom)
	assert.Equal(t, "2026-01-01", q.StartFrom.Format(time.DateOnly))
	require.NotNil(t, q.EndUntil)
	assert.Equal(t, 31, q.EndUntil.Day())
	assert.Equal(t, 23, q.EndUntil.Hour())
}

func TestSubscriptionHandler_ListSubscriptionsRejectsBadFilters(t *testing.T) {
	for name, params := range map[string]map[string]string{
		"status":         {"status": "paused"},
		"payment method": {"payment_method": "cheque"},
		"date":           {"start_date": "01/02/2026"},
	} {
		t.Run(name, func(t *testing.T) {
			h, m := newTestSubscriptionHandler()
			c, w := testutil.NewTestContext(http.MethodGet, "/api/user_subscription", nil)
			testutil.SetQueryParams(c, params)

			h.ListSubscriptions(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, m.list.query)
		})
	}
}

func TestSubscriptionHandler_GetMySubscription(t *testing.T) {
	h, m := newTestSubscriptionHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/user_subscription/me", nil)
	testutil.SetAuthContext(c, 21, authorization.RoleIndividual)

	h.GetMySubscription(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(21), m.getMy.userID)

	h, m = newTestSubscriptionHandler()
	m.getMy.err = errors.NewNotFoundError("no subscription")
	c, w = testutil.NewTestContext(http.MethodGet, "/api/user_subscription/me", nil)
	testutil.SetAuthContext(c, 21, authorization.RoleIndividual)

	h.GetMySubscription(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
