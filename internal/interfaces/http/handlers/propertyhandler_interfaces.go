package handlers

import (
	"context"

	propdto "github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/application/property/usecases"
)

// Use case interfaces for PropertyHandler

type createPropertyUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePropertyCommand) (*propdto.PropertyResponse, error)
}

type updatePropertyUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePropertyCommand) (*propdto.PropertyResponse, error)
}

type deletePropertyUseCase interface {
	Execute(ctx context.Context, propertyID, userID uint) error
}

type getPropertyUseCase interface {
	Execute(ctx context.Context, query usecases.GetPropertyQuery) (*propdto.PropertyResponse, error)
}

type listPropertiesUseCase interface {
	Execute(ctx context.Context, query usecases.ListPropertiesQuery) (*usecases.ListPropertiesResult, error)
}

type incrementViewsUseCase interface {
	Execute(ctx context.Context, propertyID uint) (int, error)
}

type toggleFavoriteUseCase interface {
	Execute(ctx context.Context, userID, propertyID uint) (*propdto.FavoriteResponse, error)
}

type propertyCatalogUseCase interface {
	AreaRange(ctx context.Context) (*propdto.AreaRangeResponse, error)
	PropertyTypes(ctx context.Context) ([]*propdto.PropertyTypeResponse, error)
}

type createPropertyTypeUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error)
}

type updatePropertyTypeUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePropertyTypeCommand) (*propdto.PropertyTypeResponse, error)
}

type deletePropertyTypeUseCase interface {
	Execute(ctx context.Context, id uint) error
}

type propertyTagsUseCase interface {
	List(ctx context.Context, userID uint) ([]*propdto.TagResponse, error)
	Approve(ctx context.Context, id uint) error
}
