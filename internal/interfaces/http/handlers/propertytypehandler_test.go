package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	propdto "github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/application/property/usecases"
	"github.com/darna-inc/darna/internal/interfaces/http/handlers/testutil"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

type stubTypeAdmin struct {
	created  *usecases.CreatePropertyTypeCommand
	updated  *usecases.UpdatePropertyTypeCommand
	deleted  uint
	approved uint
	listedBy uint
	err      error
}

type createTypeFunc func(context.Context, usecases.CreatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error)

func (f createTypeFunc) Execute(ctx context.Context, cmd usecases.CreatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error) {
	return f(ctx, cmd)
}

type updateTypeFunc func(context.Context, usecases.UpdatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error)

func (f updateTypeFunc) Execute(ctx context.Context, cmd usecases.UpdatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error) {
	return f(ctx, cmd)
}

type deleteTypeFunc func(context.Context, uint) error

func (f deleteTypeFunc) Execute(ctx context.Context, id uint) error { return f(ctx, id) }

func (s *stubTypeAdmin) List(_ context.Context, userID uint) ([]*propdto.TagResponse, error) {
	s.listedBy = userID
	return []*propdto.TagResponse{{ID: 1, Name: "piscine", Approved: true}}, s.err
}

func (s *stubTypeAdmin) Approve(_ context.Context, id uint) error {
	s.approved = id
	return s.err
}

func newTestPropertyTypeHandler() (*PropertyHandler, *stubTypeAdmin) {
	s := &stubTypeAdmin{}
	return NewPropertyHandler(PropertyUseCases{
		Catalog: stubCatalog{},
		CreateType: createTypeFunc(func(_ context.Context, cmd usecases.CreatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error) {
			s.created = &cmd
			if s.err != nil {
				return nil, s.err
			}
			return &propdto.PropertyTypeResponse{ID: 4, Name: cmd.Name, ParentID: cmd.ParentID}, nil
		}),
		UpdateType: updateTypeFunc(func(_ context.Context, cmd usecases.UpdatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error) {
			s.updated = &cmd
			if s.err != nil {
				return nil, s.err
			}
			return &propdto.PropertyTypeResponse{ID: cmd.ID, Name: cmd.Name}, nil
		}),
		DeleteType: deleteTypeFunc(func(_ context.Context, id uint) error {
			s.deleted = id
			return s.err
		}),
		Tags: s,
	}, logger.NewNop()), s
}

func TestPropertyHandler_CreatePropertyType(t *testing.T) {
	tests := []struct {
		name       string
		body       map[string]any
		ucErr      error
		wantStatus int
	}{
		{
			name:       "created under a parent",
			body:       map[string]any{"name": "Duplex", "name_fr": "Duplex", "name_ar": "دوبلكس", "parent_id": 1},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing arabic name",
			body:       map[string]any{"name": "Duplex", "name_fr": "Duplex"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown parent",
			body:       map[string]any{"name": "Duplex", "name_fr": "Duplex", "name_ar": "دوبلكس", "parent_id": 99},
			ucErr:      errors.NewValidationError("unknown parent property type"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestPropertyTypeHandler()
			s.err = tt.ucErr
			c, w := testutil.NewTestContext(http.MethodPost, "/api/property/types", tt.body)
			testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

			h.CreatePropertyType(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusCreated {
				require.NotNil(t, s.created)
				require.NotNil(t, s.created.ParentID)
				assert.Equal(t, uint(1), *s.created.ParentID)
			}
		})
	}
}

func TestPropertyHandler_UpdateAndDeletePropertyType(t *testing.T) {
	h, s := newTestPropertyTypeHandler()
	body := map[string]any{"name": "Flat", "name_fr": "Appartement", "name_ar": "شقة"}
	c, w := testutil.NewTestContext(http.MethodPut, "/api/property/types/3", body)
	testutil.SetURLParam(c, "id", "3")

	h.UpdatePropertyType(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, s.updated)
	assert.Equal(t, uint(3), s.updated.ID)
	assert.Equal(t, "Appartement", s.updated.NameFR)

	h, s = newTestPropertyTypeHandler()
	s.err = errors.NewConflictError("cannot delete this property type")
	c, w = testutil.NewTestContext(http.MethodDelete, "/api/property/types/3", nil)
	testutil.SetURLParam(c, "id", "3")

	h.DeletePropertyType(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, uint(3), s.deleted)
}

func TestPropertyHandler_Tags(t *testing.T) {
	h, s := newTestPropertyTypeHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/property/tags", nil)
	testutil.SetAuthContext(c, 8, authorization.RoleIndividual)

	h.ListTags(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(8), s.listedBy)
	var tags []propdto.TagResponse
	require.NoError(t, json.Unmarshal(testutil.MustParseAPIResponse(w).Data, &tags))
	require.Len(t, tags, 1)
	assert.Equal(t, "piscine", tags[0].Name)

	h, s = newTestPropertyTypeHandler()
	s.err = errors.NewNotFoundError("tag not found")
	c, w = testutil.NewTestContext(http.MethodPut, "/api/property/tags/5/approve", nil)
	testutil.SetURLParam(c, "id", "5")

	h.ApproveTag(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, uint(5), s.approved)
}
