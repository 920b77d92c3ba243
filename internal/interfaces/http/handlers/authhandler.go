package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/application/user/usecases"
	"github.com/darna-inc/darna/internal/shared/logger"
	"github.com/darna-inc/darna/internal/shared/utils"
)

type AuthHandler struct {
	signUpUC signUpUseCase
	signInUC signInUseCase
	logger   logger.Interface
}

func NewAuthHandler(signUpUC signUpUseCase, signInUC signInUseCase, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		signUpUC: signUpUC,
		signInUC: signInUC,
		logger:   logger,
	}
}

type SignUpRequest struct {
	FullName    string `json:"full_name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8,max=72"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=20"`
	UserType    string `json:"user_type" binding:"omitempty,oneof=individual agency developer"`
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req SignUpRequest
	if err := bindJSON(c, &req); err != nil {
		h.logger.Warnw("invalid request body for sign up", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.signUpUC.Execute(c.Request.Context(), usecases.SignUpCommand{
		FullName:    req.FullName,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		UserType:    req.UserType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req SignInRequest
	if err := bindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.signInUC.Execute(c.Request.Context(), usecases.SignInCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", result)
}
