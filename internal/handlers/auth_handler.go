package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/usecase/account"
)

type AuthHandler struct {
	accounts *account.Service
	config   config.AuthConfig
}

func NewAuthHandler(accounts *account.Service, cfg config.AuthConfig) *AuthHandler {
	return &AuthHandler{accounts: accounts, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.accounts.Register(c.Request.Context(), account.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	user, err := h.accounts.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	h.respondWithToken(c, http.StatusOK, user)
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, user *models.User) {
	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar token.")
		return
	}

	c.JSON(status, gin.H{
		"user":  user,
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	ttl := h.config.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(ttl).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
