package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

type ClientHandler struct {
	list *appointment.ListClients
}

func NewClientHandler(list *appointment.ListClients) *ClientHandler {
	return &ClientHandler{list: list}
}

// ======================================================
// LIST CLIENTS (BARBEIRO)
// ======================================================
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.list.Execute(c.Request.Context(), c.Query("query"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.List(c, clients)
}
