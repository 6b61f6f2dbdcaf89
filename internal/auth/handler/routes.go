package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SergeyYurch/blogger-auth/internal/auth/service"
)

func RegisterRoutes(app *fiber.App, h *AuthHandler, sh *SecurityHandler, limiter *service.RateLimiter) {
	throttled := Throttle(limiter)

	auth := app.Group("/api/v1/auth")
	auth.Post("/login", throttled, h.Login)
	auth.Post("/refresh-token", throttled, h.Refresh)
	auth.Post("/logout", h.Logout)
	auth.Post("/registration", throttled, h.Register)
	auth.Post("/registration-confirmation", throttled, h.ConfirmEmail)
	auth.Post("/registration-email-resending", throttled, h.ResendConfirmation)
	auth.Post("/password-recovery", throttled, h.PasswordRecovery)
	auth.Post("/new-password", throttled, h.NewPassword)
	auth.Get("/me", h.Me)

	security := app.Group("/api/v1/security")
	security.Get("/devices", sh.GetDeviceSessions)
	security.Delete("/devices", sh.DeleteOtherDeviceSessions)
	security.Delete("/devices/:deviceId", sh.DeleteDeviceSession)
}
