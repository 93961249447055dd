package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/tjcichra/tira-backend/internal/application/auth/usecases"
	"github.com/tjcichra/tira-backend/internal/interfaces/http/middleware"
	"github.com/tjcichra/tira-backend/internal/shared/config"
	"github.com/tjcichra/tira-backend/internal/shared/logger"
	"github.com/tjcichra/tira-backend/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase  *usecases.LoginUseCase
	logoutUseCase *usecases.LogoutUseCase
	cookieConfig  config.CookieConfig
	logger        logger.Interface
}

func NewAuthHandler(
	loginUseCase *usecases.LoginUseCase,
	logoutUseCase *usecases.LogoutUseCase,
	cookieConfig config.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUseCase,
		logoutUseCase: logoutUseCase,
		cookieConfig:  cookieConfig,
		logger:        logger,
	}
}

type LoginRequest struct {
	Username   string `json:"username" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, 400, err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Username:   req.Username,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SetSessionCookie(c, h.cookieConfig, result.Session.Token, result.Session.ExpiresAt)
	utils.OKResponse(c, toUserResponse(result.User), "logged in successfully")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
		UserID: middleware.CurrentUserID(c),
		Token:  middleware.CurrentSessionToken(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ClearSessionCookie(c, h.cookieConfig)
	utils.OKResponse(c, nil, "logged out successfully")
}
