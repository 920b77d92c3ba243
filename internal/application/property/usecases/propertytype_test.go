package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/domain/property"
	apperrors "github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
)

// memTypes is an in-memory property.TypeRepository.
type memTypes struct {
	types     map[uint]*property.Type
	nextID    uint
	deleteErr error
}

func newMemTypes(seed ...*property.Type) *memTypes {
	m := &memTypes{types: map[uint]*property.Type{}}
	for _, t := range seed {
		m.types[t.ID] = t
		if t.ID > m.nextID {
			m.nextID = t.ID
		}
	}
	return m
}

func (m *memTypes) List(context.Context) ([]*property.Type, error) {
	out := make([]*property.Type, 0, len(m.types))
	for _, t := range m.types {
		out = append(out, t)
	}
	return out, nil
}

func (m *memTypes) GetByID(_ context.Context, id uint) (*property.Type, error) {
	if t, ok := m.types[id]; ok {
		cp := *t
		return &cp, nil
	}
	return nil, nil
}

func (m *memTypes) Create(_ context.Context, t *property.Type) error {
	m.nextID++
	t.ID = m.nextID
	m.types[t.ID] = t
	return nil
}

func (m *memTypes) Update(_ context.Context, t *property.Type) error {
	if _, ok := m.types[t.ID]; !ok {
		return property.ErrPropertyTypeNotFound
	}
	m.types[t.ID] = t
	return nil
}

func (m *memTypes) Delete(_ context.Context, id uint) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, ok := m.types[id]; !ok {
		return property.ErrPropertyTypeNotFound
	}
	delete(m.types, id)
	return nil
}

func residential() *property.Type {
	return &property.Type{ID: 1, Name: "Residential", NameFR: "Résidentiel", NameAR: "سكني"}
}

func TestCreatePropertyTypeUseCase_Execute(t *testing.T) {
	repo := newMemTypes(residential())
	uc := NewCreatePropertyTypeUseCase(repo, logger.NewNop())
	ctx := context.Background()

	parent := uint(1)
	created, err := uc.Execute(ctx, CreatePropertyTypeCommand{Name: "Duplex", NameFR: "Duplex", NameAR: "دوبلكس", ParentID: &parent})
	require.NoError(t, err)
	assert.Equal(t, uint(2), created.ID)
	assert.Equal(t, &parent, created.ParentID)

	missing := uint(40)
	_, err = uc.Execute(ctx, CreatePropertyTypeCommand{Name: "Loft", NameFR: "Loft", NameAR: "لوفت", ParentID: &missing})
	assert.True(t, apperrors.IsValidationError(err), "unknown parent is rejected")

	_, err = uc.Execute(ctx, CreatePropertyTypeCommand{Name: "Loft", NameFR: "Loft"})
	assert.True(t, apperrors.IsValidationError(err), "every translation is required")
	assert.Len(t, repo.types, 2)
}

func TestUpdatePropertyTypeUseCase_Execute(t *testing.T) {
	repo := newMemTypes(residential())
	uc := NewUpdatePropertyTypeUseCase(repo, logger.NewNop())
	ctx := context.Background()

	updated, err := uc.Execute(ctx, UpdatePropertyTypeCommand{ID: 1, Name: "Housing", NameFR: "Logement", NameAR: "سكن"})
	require.NoError(t, err)
	assert.Equal(t, "Housing", updated.Name)
	assert.Equal(t, "Logement", repo.types[1].NameFR)

	_, err = uc.Execute(ctx, UpdatePropertyTypeCommand{ID: 9, Name: "a", NameFR: "b", NameAR: "c"})
	assert.True(t, apperrors.IsNotFoundError(err))
}

func TestDeletePropertyTypeUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	uc := NewDeletePropertyTypeUseCase(newMemTypes(residential()), logger.NewNop())
	require.NoError(t, uc.Execute(ctx, 1))
	assert.True(t, apperrors.IsNotFoundError(uc.Execute(ctx, 1)))

	inUse := newMemTypes(residential())
	inUse.deleteErr = property.ErrPropertyTypeInUse
	err := NewDeletePropertyTypeUseCase(inUse, logger.NewNop()).Execute(ctx, 1)
	assert.True(t, apperrors.IsConflictError(err))
}

type stubTags struct {
	tags     []*property.Tag
	listedBy uint
	approved []uint
}

func (s *stubTags) ListVisible(_ context.Context, userID uint) ([]*property.Tag, error) {
	s.listedBy = userID
	return s.tags, nil
}

func (s *stubTags) Approve(_ context.Context, id uint) error {
	for _, tag := range s.tags {
		if tag.ID == id {
			s.approved = append(s.approved, id)
			return nil
		}
	}
	return property.ErrTagNotFound
}

func TestTagsUseCase(t *testing.T) {
	owner := uint(3)
	repo := &stubTags{tags: []*property.Tag{
		{ID: 1, Name: "Parking", Approved: true},
		{ID: 2, Name: "Vue mer", UserID: &owner},
	}}
	uc := NewTagsUseCase(repo, logger.NewNop())
	ctx := context.Background()

	tags, err := uc.List(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, owner, repo.listedBy)
	require.Len(t, tags, 2)
	assert.Equal(t, "Vue mer", tags[1].Name)
	assert.False(t, tags[1].Approved)

	require.NoError(t, uc.Approve(ctx, 2))
	assert.Equal(t, []uint{2}, repo.approved)
	assert.True(t, apperrors.IsNotFoundError(uc.Approve(ctx, 99)))
}
