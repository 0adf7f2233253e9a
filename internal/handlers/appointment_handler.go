package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

// AppointmentHandler atende o painel do barbeiro.
type AppointmentHandler struct {
	byDate *appointment.ListAppointmentsByDate
	all    *appointment.ListAllAppointments
}

func NewAppointmentHandler(
	byDate *appointment.ListAppointmentsByDate,
	all *appointment.ListAllAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		byDate: byDate,
		all:    all,
	}
}

// GET /api/me/appointments?date=YYYY-MM-DD (padrão: hoje)
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	out, err := h.byDate.Execute(c.Request.Context(), c.Query("date"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

// GET /api/me/appointments/all
func (h *AppointmentHandler) ListAll(c *gin.Context) {
	out, err := h.all.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}
