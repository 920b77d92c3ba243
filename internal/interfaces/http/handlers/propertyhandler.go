package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	propdto "github.com/darna-inc/darna/internal/application/property/dto"
	"github.com/darna-inc/darna/internal/application/property/usecases"
	"github.com/darna-inc/darna/internal/domain/property"
	propvo "github.com/darna-inc/darna/internal/domain/property/valueobjects"
	"github.com/darna-inc/darna/internal/shared/constants"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type PropertyHandler struct {
	createUC   createPropertyUseCase
	updateUC   updatePropertyUseCase
	deleteUC   deletePropertyUseCase
	getUC      getPropertyUseCase
	listUC     listPropertiesUseCase
	viewsUC    incrementViewsUseCase
	favoriteUC toggleFavoriteUseCase
	catalogUC  propertyCatalogUseCase
	createType createPropertyTypeUseCase
	updateType updatePropertyTypeUseCase
	deleteType deletePropertyTypeUseCase
	tagsUC     propertyTagsUseCase
	logger     logger.Interface
}

type PropertyUseCases struct {
	Create   createPropertyUseCase
	Update   updatePropertyUseCase
	Delete   deletePropertyUseCase
	Get      getPropertyUseCase
	List     listPropertiesUseCase
	Views    incrementViewsUseCase
	Favorite toggleFavoriteUseCase
	Catalog  propertyCatalogUseCase

	CreateType createPropertyTypeUseCase
	UpdateType updatePropertyTypeUseCase
	DeleteType deletePropertyTypeUseCase
	Tags       propertyTagsUseCase
}

func NewPropertyHandler(ucs PropertyUseCases, logger logger.Interface) *PropertyHandler {
	return &PropertyHandler{
		createUC:   ucs.Create,
		updateUC:   ucs.Update,
		deleteUC:   ucs.Delete,
		getUC:      ucs.Get,
		listUC:     ucs.List,
		viewsUC:    ucs.Views,
		favoriteUC: ucs.Favorite,
		catalogUC:  ucs.Catalog,
		createType: ucs.CreateType,
		updateType: ucs.UpdateType,
		deleteType: ucs.DeleteType,
		tagsUC:     ucs.Tags,
		logger:     logger,
	}
}

// ListPropertiesRequest holds the typed list filters. Every filter is
// optional and they all combine with AND.
type ListPropertiesRequest struct {
	Query         string           `form:"query"`
	MinPrice      *decimal.Decimal `form:"min_price"`
	MaxPrice      *decimal.Decimal `form:"max_price"`
	PropertyTypes []uint           `form:"property_type"`
	AdTypes       []string         `form:"ad_type" binding:"omitempty,dive,oneof=sale rent"`
	MinArea       *float64         `form:"min_area" binding:"omitempty,gte=0"`
	MaxArea       *float64         `form:"max_area" binding:"omitempty,gte=0"`
	MinRooms      *int             `form:"min_rooms" binding:"omitempty,gte=0"`
	MinBathrooms  *int             `form:"min_bathrooms" binding:"omitempty,gte=0"`
	Furnished     *bool            `form:"furnished"`
	OwnershipBook *bool            `form:"ownership_book"`
	Status        string           `form:"status" binding:"omitempty,oneof=available sold rented"`
	UserID        *uint            `form:"user_id"`
	Favorites     bool             `form:"favorites"`
}

func (r *ListPropertiesRequest) toFilter(p utils.Pagination) property.Filter {
	filter := property.Filter{
		Query:           r.Query,
		MinPrice:        r.MinPrice,
		MaxPrice:        r.MaxPrice,
		PropertyTypeIDs: r.PropertyTypes,
		MinArea:         r.MinArea,
		MaxArea:         r.MaxArea,
		MinRooms:        r.MinRooms,
		MinBathrooms:    r.MinBathrooms,
		Furnished:       r.Furnished,
		OwnershipBook:   r.OwnershipBook,
		UserID:          r.UserID,
		Offset:          p.Offset,
		Limit:           p.Limit,
	}
	for _, t := range r.AdTypes {
		filter.AdTypes = append(filter.AdTypes, propvo.AdType(t))
	}
	if r.Status != "" {
		status := propvo.ListingStatus(r.Status)
		filter.Status = &status
	}
	return filter
}

func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req propdto.PropertyRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for create property", "error", err, "user_id", who.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePropertyCommand{
		UserID:     who.ID,
		Attributes: req.ToAttributes(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property created successfully")
}

func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	propertyID, err := parseIDParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req propdto.PropertyRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePropertyCommand{
		ID:         propertyID,
		UserID:     who.ID,
		Attributes: req.ToAttributes(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property updated successfully", result)
}

func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	propertyID, err := parseIDParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), propertyID, who.ID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, err := parseIDParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPropertyQuery{
		ID:       propertyID,
		ViewerID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PropertyHandler) GetPropertyBySlug(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), usecases.GetPropertyQuery{
		Slug:     c.Param("slug"),
		ViewerID: c.GetUint(constants.ContextKeyUserID),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PropertyHandler) ListProperties(c *gin.Context) {
	var req ListPropertiesRequest
	if err := bindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListPropertiesQuery{
		Filter:        req.toFilter(p),
		ViewerID:      c.GetUint(constants.ContextKeyUserID),
		FavoritesOnly: req.Favorites,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Properties, result.Total, p)
}

func (h *PropertyHandler) IncrementViews(c *gin.Context) {
	propertyID, err := parseIDParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	views, err := h.viewsUC.Execute(c.Request.Context(), propertyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"id": propertyID, "views": views})
}

func (h *PropertyHandler) ToggleFavorite(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	propertyID, err := parseIDParam(c, "id", "property")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.favoriteUC.Execute(c.Request.Context(), who.ID, propertyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PropertyHandler) AreaRange(c *gin.Context) {
	result, err := h.catalogUC.AreaRange(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PropertyHandler) PropertyTypes(c *gin.Context) {
	result, err := h.catalogUC.PropertyTypes(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type PropertyTypeRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	NameFR   string `json:"name_fr" binding:"required,max=100"`
	NameAR   string `json:"name_ar" binding:"required,max=100"`
	ParentID *uint  `json:"parent_id"`
}

func (h *PropertyHandler) CreatePropertyType(c *gin.Context) {
	var req PropertyTypeRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createType.Execute(c.Request.Context(), usecases.CreatePropertyTypeCommand{
		Name:     req.Name,
		NameFR:   req.NameFR,
		NameAR:   req.NameAR,
		ParentID: req.ParentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Property type created successfully")
}

// UpdatePropertyType renames a type. The parent is fixed at creation.
func (h *PropertyHandler) UpdatePropertyType(c *gin.Context) {
	typeID, err := parseIDParam(c, "id", "property type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req PropertyTypeRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateType.Execute(c.Request.Context(), usecases.UpdatePropertyTypeCommand{
		ID:     typeID,
		Name:   req.Name,
		NameFR: req.NameFR,
		NameAR: req.NameAR,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Property type updated successfully", result)
}

func (h *PropertyHandler) DeletePropertyType(c *gin.Context) {
	typeID, err := parseIDParam(c, "id", "property type")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteType.Execute(c.Request.Context(), typeID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *PropertyHandler) ListTags(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.tagsUC.List(c.Request.Context(), who.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *PropertyHandler) ApproveTag(c *gin.Context) {
	tagID, err := parseIDParam(c, "id", "tag")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.tagsUC.Approve(c.Request.Context(), tagID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Tag approved", nil)
}
