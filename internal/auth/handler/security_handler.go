package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SergeyYurch/blogger-auth/internal/auth/service"
	"github.com/SergeyYurch/blogger-auth/pkg/constant"
)

// SecurityHandler exposes device-session management; every endpoint is
// authenticated by the refresh-token cookie.
type SecurityHandler struct {
	authService *service.AuthService
}

func NewSecurityHandler(authService *service.AuthService) *SecurityHandler {
	return &SecurityHandler{authService: authService}
}

func (h *SecurityHandler) GetDeviceSessions(c *fiber.Ctx) error {
	token := c.Cookies(constant.RefreshTokenCookie)
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	sessions, err := h.authService.ListDeviceSessions(c.Context(), token)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(sessions)
}

func (h *SecurityHandler) DeleteOtherDeviceSessions(c *fiber.Ctx) error {
	token := c.Cookies(constant.RefreshTokenCookie)
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if err := h.authService.TerminateOtherSessions(c.Context(), token); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *SecurityHandler) DeleteDeviceSession(c *fiber.Ctx) error {
	token := c.Cookies(constant.RefreshTokenCookie)
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	deviceID := c.Params("deviceId")

	if err := h.authService.TerminateSession(c.Context(), deviceID, token); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
