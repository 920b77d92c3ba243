package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	userdto "github.com/darna-inc/darna/internal/application/user/dto"
	"github.com/darna-inc/darna/internal/application/user/usecases"
	"github.com/darna-inc/darna/internal/shared/authorization"
	"github.com/darna-inc/darna/internal/shared/errors"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type UserHandler struct {
	getUserUC        getUserUseCase
	getProfileUC     getProfileUseCase
	updateProfileUC  updateProfileUseCase
	changePasswordUC changePasswordUseCase
	notificationsUC  updateNotificationSettingsUseCase
	listUC           listUsersUseCase
	createUC         createUserUseCase
	deleteUC         deleteUserUseCase
	logger           logger.Interface
}

type UserUseCases struct {
	Get            getUserUseCase
	GetProfile     getProfileUseCase
	UpdateProfile  updateProfileUseCase
	ChangePassword changePasswordUseCase
	Notifications  updateNotificationSettingsUseCase
	List           listUsersUseCase
	Create         createUserUseCase
	Delete         deleteUserUseCase
}

func NewUserHandler(ucs UserUseCases, logger logger.Interface) *UserHandler {
	return &UserHandler{
		getUserUC:        ucs.Get,
		getProfileUC:     ucs.GetProfile,
		updateProfileUC:  ucs.UpdateProfile,
		changePasswordUC: ucs.ChangePassword,
		notificationsUC:  ucs.Notifications,
		listUC:           ucs.List,
		createUC:         ucs.Create,
		deleteUC:         ucs.Delete,
		logger:           logger,
	}
}

const birthdayLayout = "2006-01-02"

type UpdateProfileRequest struct {
	FullName        string                      `json:"full_name" binding:"required,max=100"`
	Email           string                      `json:"email" binding:"required,email"`
	PhoneNumber     string                      `json:"phone_number" binding:"omitempty,max=20"`
	PictureURL      string                      `json:"picture_url" binding:"omitempty,url,max=500"`
	Birthday        string                      `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	Gender          *bool                       `json:"gender"`
	SocialMedia     *userdto.SocialMediaDTO     `json:"social_media"`
	BusinessAccount *userdto.BusinessAccountDTO `json:"business_account"`
}

func (r *UpdateProfileRequest) toCommand(userID uint) (usecases.UpdateProfileCommand, error) {
	cmd := usecases.UpdateProfileCommand{
		UserID:      userID,
		FullName:    r.FullName,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		PictureURL:  r.PictureURL,
		Gender:      r.Gender,
	}
	if r.Birthday != "" {
		day, err := time.Parse(birthdayLayout, r.Birthday)
		if err != nil {
			return cmd, errors.NewValidationError("invalid birthday", r.Birthday)
		}
		cmd.Birthday = &day
	}
	if r.SocialMedia != nil {
		sm := r.SocialMedia.ToDomain()
		cmd.SocialMedia = &sm
	}
	if r.BusinessAccount != nil {
		ba := r.BusinessAccount.ToDomain()
		cmd.BusinessAccount = &ba
	}
	return cmd, nil
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type NotificationSettingsRequest struct {
	Messages *bool `json:"messages"`
	Ads      *bool `json:"ads"`
}

type CreateUserRequest struct {
	FullName    string `json:"full_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
	UserType    string `json:"user_type" binding:"required,oneof=individual agency developer employee admin"`
}

type ListUsersRequest struct {
	Query     string   `form:"query"`
	UserTypes []string `form:"user_type" binding:"omitempty,dive,oneof=individual agency developer employee admin"`
}

// GetMe returns the caller's full profile.
func (h *UserHandler) GetMe(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), who.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	userID, err := parseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for update profile", "error", err, "user_id", who.ID)
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd, err := req.toCommand(who.ID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

func (h *UserHandler) ChangePassword(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          who.ID,
		OldPassword:     req.OldPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", result)
}

func (h *UserHandler) UpdateNotificationSettings(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req NotificationSettingsRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.notificationsUC.Execute(c.Request.Context(), usecases.UpdateNotificationSettingsCommand{
		UserID:   who.ID,
		Messages: req.Messages,
		Ads:      req.Ads,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *UserHandler) ListUsers(c *gin.Context) {
	var req ListUsersRequest
	if err := bindQuery(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	p := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Query:     req.Query,
		UserTypes: req.UserTypes,
		Offset:    p.Offset,
		Limit:     p.Limit,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, p)
}

func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Role:        authorization.UserRole(req.UserType),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "User created successfully")
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	who, err := currentCaller(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	userID, err := parseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), who.ID, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("user deleted", "user_id", userID, "deleted_by", who.ID)
	utils.NoContentResponse(c)
}
