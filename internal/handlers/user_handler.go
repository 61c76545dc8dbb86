package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/user"
)

type UserHandler struct {
	me       *user.Me
	updateMe *user.UpdateMe
	list     *user.ListUsers
	get      *user.GetUser
}

func NewUserHandler(
	me *user.Me,
	updateMe *user.UpdateMe,
	list *user.ListUsers,
	get *user.GetUser,
) *UserHandler {
	return &UserHandler{me: me, updateMe: updateMe, list: list, get: get}
}

func (h *UserHandler) GetMe(c *gin.Context) {
	u, err := h.me.Execute(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserDTO(u))
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req dto.UpdateMeRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.updateMe.Execute(c.Request.Context(), middleware.PrincipalFrom(c), user.UpdateMeInput{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserDTO(u))
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.list.Execute(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewUserDTOs(users))
}

func (h *UserHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	u, err := h.get.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewUserDTO(u))
}
