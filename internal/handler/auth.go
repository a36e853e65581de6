package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omicronventa13-glitch/omicron-backend/internal/apierror"
	"github.com/omicronventa13-glitch/omicron-backend/internal/dto"
	"github.com/omicronventa13-glitch/omicron-backend/internal/service"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Login de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciales"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		// Unknown user and wrong password both map to 400, matching the
		// contract the frontend was written against.
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Logout de usuario
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LogoutRequest true "Usuario"
// @Success 200 {object} map[string]string
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if err := h.svc.Logout(c.Request.Context(), req.Username); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}
