package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	book         *appointment.BookAppointment
	availability *appointment.GetAvailability
	today        *appointment.ListToday
	services     *appointment.ListServices
}

func NewPublicHandler(
	book *appointment.BookAppointment,
	availability *appointment.GetAvailability,
	today *appointment.ListToday,
	services *appointment.ListServices,
) *PublicHandler {
	return &PublicHandler{
		book:         book,
		availability: availability,
		today:        today,
		services:     services,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

// Aceita JSON ou formulário. Campos obrigatórios são checados no use case.
type PublicCreateAppointmentRequest struct {
	Name    string `json:"name" form:"name"`
	Phone   string `json:"phone" form:"phone"`
	Date    string `json:"date" form:"date"` // YYYY-MM-DD
	Time    string `json:"time" form:"time"` // HH:mm
	Service string `json:"service" form:"service"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.services.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")

	slots, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  date,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// TODAY
////////////////////////////////////////////////////////

func (h *PublicHandler) Today(c *gin.Context) {
	out, err := h.today.Execute(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicCreateAppointmentRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	res, err := h.book.Execute(c.Request.Context(), appointment.BookInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		Service: req.Service,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     fmt.Sprintf("Agendamento criado com sucesso! %s - %s às %s", res.ClientName, res.Date, res.Time),
		"appointment": res,
	})
}
