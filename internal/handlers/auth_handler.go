package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/user"
)

type AuthHandler struct {
	register *user.Register
	login    *user.Login
	logout   *user.Logout
}

func NewAuthHandler(
	register *user.Register,
	login *user.Login,
	logout *user.Logout,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	u, token, err := h.register.Execute(c.Request.Context(), user.RegisterInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		Password2: req.Password2,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserType:  req.UserType,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.AuthResponse{User: dto.NewUserDTO(u), Token: token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	u, token, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, dto.AuthResponse{User: dto.NewUserDTO(u), Token: token})
}

// Logout revokes the token that authenticated this request.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Unauthorized(c, "missing_authorization_header", "authentication required")
		return
	}

	if err := h.logout.Execute(c.Request.Context(), claims.ID, claims.Expiry()); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
