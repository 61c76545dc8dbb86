package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	list     *ucAppointment.ListAppointments
	get      *ucAppointment.GetAppointment
	cancel   *ucAppointment.CancelAppointment
	confirm  *ucAppointment.ConfirmAppointment
	complete *ucAppointment.CompleteAppointment
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	list *ucAppointment.ListAppointments,
	get *ucAppointment.GetAppointment,
	cancel *ucAppointment.CancelAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	complete *ucAppointment.CompleteAppointment,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		list:     list,
		get:      get,
		cancel:   cancel,
		confirm:  confirm,
		complete: complete,
	}
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req dto.CreateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Caller:    middleware.PrincipalFrom(c),
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Date:      req.AppointmentDate,
		Time:      req.AppointmentTime,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, dto.NewAppointmentDTO(ap))
}

// ======================================================
// QUERIES
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	out, err := h.list.Execute(c.Request.Context(), ucAppointment.ListAppointmentsInput{
		Caller: middleware.PrincipalFrom(c),
		Status: c.Query("status"),
		Date:   c.Query("date"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	h.byID(c, h.get.Execute)
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.byID(c, h.cancel.Execute)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.byID(c, h.confirm.Execute)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.byID(c, h.complete.Execute)
}

type appointmentAction func(context.Context, identity.Principal, uint) (*models.Appointment, error)

func (h *AppointmentHandler) byID(c *gin.Context, run appointmentAction) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	ap, err := run(c.Request.Context(), middleware.PrincipalFrom(c), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, dto.NewAppointmentDTO(ap))
}
