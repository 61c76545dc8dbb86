package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
	ucBarber "github.com/BruksfildServices01/barbershop-booking/internal/usecase/barber"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	list         *ucBarber.ListProfiles
	get          *ucBarber.GetProfile
	mine         *ucBarber.MyProfile
	create       *ucBarber.CreateProfile
	update       *ucBarber.UpdateProfile
	approve      *ucBarber.ApproveProfile
	availability *ucAppointment.GetAvailability
}

func NewBarberHandler(
	list *ucBarber.ListProfiles,
	get *ucBarber.GetProfile,
	mine *ucBarber.MyProfile,
	create *ucBarber.CreateProfile,
	update *ucBarber.UpdateProfile,
	approve *ucBarber.ApproveProfile,
	availability *ucAppointment.GetAvailability,
) *BarberHandler {
	return &BarberHandler{
		list:         list,
		get:          get,
		mine:         mine,
		create:       create,
		update:       update,
		approve:      approve,
		availability: availability,
	}
}

func profileInput(req dto.BarberProfileRequest) ucBarber.ProfileInput {
	return ucBarber.ProfileInput{
		UserID:         req.UserID,
		Bio:            req.Bio,
		Specialization: req.Specialization,
		IsAvailable:    req.IsAvailable,
		WorkingHours:   req.WorkingHours,
	}
}

// ======================================================
// QUERIES
// ======================================================

func (h *BarberHandler) List(c *gin.Context) {
	profiles, err := h.list.Execute(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, dto.NewBarberProfileDTOs(profiles))
}

func (h *BarberHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.get.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewBarberProfileDTO(p))
}

func (h *BarberHandler) Mine(c *gin.Context) {
	p, err := h.mine.Execute(c.Request.Context(), middleware.PrincipalFrom(c))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewBarberProfileDTO(p))
}

// Availability answers 200 with available=false on days off.
func (h *BarberHandler) Availability(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	out, err := h.availability.Execute(c.Request.Context(), ucAppointment.GetAvailabilityInput{
		Caller:    middleware.PrincipalFrom(c),
		ProfileID: id,
		Date:      c.Query("date"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, out)
}

// ======================================================
// COMMANDS
// ======================================================

func (h *BarberHandler) Create(c *gin.Context) {
	var req dto.BarberProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.create.Execute(c.Request.Context(), middleware.PrincipalFrom(c), profileInput(req))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.Created(c, dto.NewBarberProfileDTO(p))
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req dto.BarberProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.update.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id, profileInput(req))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewBarberProfileDTO(p))
}

func (h *BarberHandler) Approve(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	p, err := h.approve.Execute(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewBarberProfileDTO(p))
}
