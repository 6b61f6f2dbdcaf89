package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/SergeyYurch/blogger-auth/internal/auth/service"
	autherror "github.com/SergeyYurch/blogger-auth/internal/errors"
	"github.com/SergeyYurch/blogger-auth/pkg/constant"
	"github.com/SergeyYurch/blogger-auth/pkg/validator"
)

// Throttle gates a route through the rate limiter before any business logic
// runs. The throttle key is (client ip, route path); an empty ip counts as
// its own bucket.
func Throttle(limiter *service.RateLimiter) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := limiter.CheckAndRecord(c.Context(), c.IP(), c.Path())
		if err != nil {
			if errors.Is(err, autherror.ErrTooManyRequests) {
				return c.SendStatus(fiber.StatusTooManyRequests)
			}

			log.Error().Err(err).Str("path", c.Path()).Msg("rate limiter storage failure")

			return c.SendStatus(fiber.StatusInternalServerError)
		}

		return c.Next()
	}
}

func setRefreshCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     constant.RefreshTokenCookie,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

func clearRefreshCookie(c *fiber.Ctx) {
	c.ClearCookie(constant.RefreshTokenCookie)
}

func errorsMessages(field, message string) fiber.Map {
	return fiber.Map{
		"errorsMessages": []fiber.Map{{"message": message, "field": field}},
	}
}

func validationError(c *fiber.Ctx, err error) error {
	var fieldErr *validator.FieldError
	if errors.As(err, &fieldErr) {
		return c.Status(fiber.StatusBadRequest).
			JSON(errorsMessages(fieldErr.Field, fieldErr.Message))
	}

	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// errorResponse maps service errors onto transport status codes. Unknown
// errors are infrastructure failures and stay opaque.
func errorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, autherror.ErrTooManyRequests):
		return c.SendStatus(fiber.StatusTooManyRequests)
	case errors.Is(err, autherror.ErrInvalidCredentials),
		errors.Is(err, autherror.ErrInvalidToken),
		errors.Is(err, autherror.ErrSessionNotFound):
		return c.SendStatus(fiber.StatusUnauthorized)
	case errors.Is(err, autherror.ErrForeignSession):
		return c.SendStatus(fiber.StatusForbidden)
	case errors.Is(err, autherror.ErrDeviceNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	case errors.Is(err, autherror.ErrLoginAlreadyInUse):
		return c.Status(fiber.StatusBadRequest).
			JSON(errorsMessages("login", err.Error()))
	case errors.Is(err, autherror.ErrEmailAlreadyInUse):
		return c.Status(fiber.StatusBadRequest).
			JSON(errorsMessages("email", err.Error()))
	default:
		log.Error().Err(err).Msg("request failed")

		return c.SendStatus(fiber.StatusInternalServerError)
	}
}
