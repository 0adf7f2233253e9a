package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
)

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"Validation", apperr.Missing("phone"), http.StatusBadRequest, "missing_field"},
		{"InvalidDate", apperr.Invalid("date", "invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"SlotUnavailable", fmt.Errorf("insert: %w", apperr.ErrSlotUnavailable), http.StatusConflict, "slot_unavailable"},
		{"DuplicateEmail", apperr.ErrDuplicateEmail, http.StatusConflict, "duplicate_email"},
		{"InvalidCredentials", apperr.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"NotFound", gorm.ErrRecordNotFound, http.StatusNotFound, "not_found"},
		{"Persistence", apperr.Persistence("commit", errors.New("pq: connection refused")), http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tt.err)

			assert.Equal(t, tt.status, w.Code)

			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
			assert.NotContains(t, body.Message, "connection refused")
		})
	}
}

func TestValidationMessage(t *testing.T) {
	assert.Equal(t, "Campo obrigatório: telefone.", validationMessage(&apperr.ValidationError{Field: "phone", Code: "missing_field"}))
	assert.Equal(t, "Valor inválido: data.", validationMessage(&apperr.ValidationError{Field: "date", Code: "invalid_date"}))
}
