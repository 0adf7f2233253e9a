package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ListResponse[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// List responde {"data": [...], "total": n}; lista vazia sai como [] e não null.
func List[T any](c *gin.Context, data []T) {
	if data == nil {
		data = []T{}
	}
	c.JSON(http.StatusOK, ListResponse[T]{
		Data:  data,
		Total: len(data),
	})
}
