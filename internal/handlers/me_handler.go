package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/account"
)

type MeHandler struct {
	accounts *account.Service
}

func NewMeHandler(accounts *account.Service) *MeHandler {
	return &MeHandler{accounts: accounts}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Sessão inválida.")
		return
	}

	user, err := h.accounts.FindByID(c.Request.Context(), userID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, user)
}
