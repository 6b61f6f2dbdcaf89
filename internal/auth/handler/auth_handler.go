package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/SergeyYurch/blogger-auth/internal/auth/dto"
	"github.com/SergeyYurch/blogger-auth/internal/auth/service"
	autherror "github.com/SergeyYurch/blogger-auth/internal/errors"
	"github.com/SergeyYurch/blogger-auth/pkg/constant"
	"github.com/SergeyYurch/blogger-auth/pkg/validator"
)

type AuthHandler struct {
	authService *service.AuthService
	validate    *validator.Validator
}

func NewAuthHandler(authService *service.AuthService, validate *validator.Validator) *AuthHandler {
	return &AuthHandler{authService: authService, validate: validate}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input dto.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Validate(input); err != nil {
		return validationError(c, err)
	}

	input.IP = c.IP()
	input.Title = string(c.Request().Header.UserAgent())

	pair, err := h.authService.Login(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	setRefreshCookie(c, pair.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(pair)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	token := c.Cookies(constant.RefreshTokenCookie)
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	input := dto.RefreshInput{
		RefreshToken: token,
		IP:           c.IP(),
		Title:        string(c.Request().Header.UserAgent()),
	}

	pair, err := h.authService.Refresh(c.Context(), input)
	if err != nil {
		return errorResponse(c, err)
	}

	setRefreshCookie(c, pair.RefreshToken)

	return c.Status(fiber.StatusOK).JSON(pair)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token := c.Cookies(constant.RefreshTokenCookie)
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	if err := h.authService.Logout(c.Context(), token); err != nil {
		return errorResponse(c, err)
	}

	clearRefreshCookie(c)

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input dto.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Validate(input); err != nil {
		return validationError(c, err)
	}

	if _, err := h.authService.Register(c.Context(), input); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ConfirmEmail(c *fiber.Ctx) error {
	var input dto.ConfirmationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Validate(input); err != nil {
		return validationError(c, err)
	}

	if err := h.authService.ConfirmEmail(c.Context(), input.Code); err != nil {
		if errors.Is(err, autherror.ErrInvalidConfirmationCode) {
			return c.Status(fiber.StatusBadRequest).
				JSON(errorsMessages("code", "confirmation code is wrong or expired"))
		}

		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) ResendConfirmation(c *fiber.Ctx) error {
	var input dto.ResendConfirmationInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Validate(input); err != nil {
		return validationError(c, err)
	}

	if err := h.authService.ResendConfirmation(c.Context(), input.Email); err != nil {
		switch {
		case errors.Is(err, autherror.ErrUserNotFound),
			errors.Is(err, autherror.ErrAlreadyConfirmed),
			errors.Is(err, autherror.ErrResendLimitExceeded):
			return c.Status(fiber.StatusBadRequest).
				JSON(errorsMessages("email", "can't send email"))
		default:
			return errorResponse(c, err)
		}
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) PasswordRecovery(c *fiber.Ctx) error {
	var input dto.PasswordRecoveryInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Validate(input); err != nil {
		return validationError(c, err)
	}

	if err := h.authService.PasswordRecovery(c.Context(), input.Email); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) NewPassword(c *fiber.Ctx) error {
	var input dto.NewPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if err := h.validate.Validate(input); err != nil {
		return validationError(c, err)
	}

	if err := h.authService.ConfirmNewPassword(c.Context(), input); err != nil {
		if errors.Is(err, autherror.ErrInvalidRecoveryCode) {
			return c.Status(fiber.StatusBadRequest).
				JSON(errorsMessages("recoveryCode", "recoveryCode is wrong or expired"))
		}

		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	me, err := h.authService.CurrentUser(c.Context(), token)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(me)
}

func bearerToken(c *fiber.Ctx) string {
	auth := c.Get(fiber.HeaderAuthorization)
	if !strings.HasPrefix(auth, constant.BearerScheme+" ") {
		return ""
	}

	return strings.TrimPrefix(auth, constant.BearerScheme+" ")
}
