package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logs *audit.Logger
}

func NewAuditLogsHandler(logs *audit.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs}
}

// GET /api/me/audit-logs?action=&entity=&from=&to=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	f := audit.Filter{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
	}

	f.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	if from, err := time.Parse("2006-01-02", c.Query("from")); err == nil {
		f.From = from
	}
	if to, err := time.Parse("2006-01-02", c.Query("to")); err == nil {
		f.To = to.Add(24 * time.Hour)
	}

	f.Normalize()

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  f.Page,
		"limit": f.Limit,
		"total": total,
		"logs":  logs,
	})
}
