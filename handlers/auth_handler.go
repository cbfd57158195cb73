package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/config"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/models"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/paseto"
	"github.com/parlacomsolucoes-sys/escala-parlacom-sub000/pkg/validation"
)

// AuthHandler issues bearer tokens for the single admin identity
// configured in the environment. Identity itself lives outside the
// scheduling core; everything here only gates the write paths.
type AuthHandler struct {
	cfg    *config.AppConfig
	maker  *paseto.Maker
	logger *zap.Logger
}

func NewAuthHandler(cfg *config.AppConfig, maker *paseto.Maker, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{cfg: cfg, maker: maker, logger: logger}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.LoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errs := validation.ValidateStruct(payload); errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	if payload.Email != h.cfg.AdminEmail ||
		bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(payload.Password)) != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	claims := &models.Claims{Email: payload.Email, Role: "admin"}
	token, err := h.maker.GenerateToken(claims)
	if err != nil {
		h.logger.Error("failed to generate token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to generate token"})
	}

	return c.JSON(models.LoginResponse{
		Message: "login successful",
		Token:   token,
		Email:   claims.Email,
		Role:    claims.Role,
	})
}
