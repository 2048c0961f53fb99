package handler

import (
	"smart-sales-api/internal/middleware"
	"smart-sales-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// LogoutRequest represents the logout request body
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RefreshRequest represents the token refresh request body
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// Register creates an account and signs it in
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req service.RegisterInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidJSON())
	}

	response, err := h.authService.Register(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(response)
}

// Login handles user authentication
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req service.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidJSON())
	}

	response, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(response)
}

// Logout blacklists the given refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req LogoutRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidJSON())
	}

	if err := h.authService.Logout(c.UserContext(), middleware.UserID(c), req.RefreshToken); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Logout successful"})
}

// Profile returns the authenticated user
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *fiber.Ctx) error {
	profile, err := h.authService.Profile(c.UserContext(), middleware.UserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": profile})
}

// Refresh exchanges a refresh token for a new access token
// POST /api/auth/token/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return respondError(c, invalidJSON())
	}

	access, err := h.authService.Refresh(c.UserContext(), req.Refresh)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"access": access})
}
