package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func TooManyRequests(c *gin.Context) {
	Write(c, http.StatusTooManyRequests, "rate_limited", "Muitas tentativas. Aguarde um instante.")
}

var fieldLabels = map[string]string{
	"name":     "nome",
	"phone":    "telefone",
	"date":     "data",
	"time":     "horário",
	"service":  "serviço",
	"email":    "e-mail",
	"password": "senha",
	"image":    "imagem",
}

// FromError traduz os erros da aplicação para a resposta HTTP.
// Falhas de persistência nunca expõem a causa.
func FromError(c *gin.Context, err error) {
	var ve *apperr.ValidationError

	switch {
	case errors.As(err, &ve):
		c.AbortWithStatusJSON(http.StatusBadRequest, HTTPError{
			Code:    ve.Code,
			Field:   ve.Field,
			Message: validationMessage(ve),
		})

	case errors.Is(err, apperr.ErrSlotUnavailable):
		Write(c, http.StatusConflict, "slot_unavailable", "Horário já reservado. Escolha outro horário.")

	case errors.Is(err, apperr.ErrDuplicateEmail):
		Write(c, http.StatusConflict, "duplicate_email", "E-mail já cadastrado.")

	case errors.Is(err, apperr.ErrInvalidCredentials):
		Unauthorized(c, "invalid_credentials", "E-mail ou senha inválidos.")

	case apperr.IsNotFound(err):
		NotFound(c, "not_found", "Registro não encontrado.")

	default:
		_ = c.Error(err)
		Internal(c, "internal_error", "Não foi possível concluir a operação. Tente novamente.")
	}
}

func validationMessage(ve *apperr.ValidationError) string {
	label, ok := fieldLabels[ve.Field]
	if !ok {
		label = ve.Field
	}

	switch ve.Code {
	case "missing_field":
		return "Campo obrigatório: " + label + "."
	case "invalid_email_domain":
		return "O domínio do e-mail informado não parece ser válido."
	case "password_too_short":
		return "A senha deve ter pelo menos 6 caracteres."
	default:
		return "Valor inválido: " + label + "."
	}
}
