package handlers

import (
	"errors"

	"contactform/internal/repositories"
	"contactform/internal/services"
	"contactform/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const (
	duplicateEmailMessage = "This email address is already registered. Please use a different email."
	internalErrorMessage  = "Internal server error. Please try again later."
)

// UserHandler handles HTTP requests for contact-form submissions.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// RegisterRoutes registers the user routes with the Fiber app.
func (h *UserHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/users", h.HandleCreate)
	router.Get("/users", h.HandleList)
}

// SubmissionRequest represents the request body for a submission.
type SubmissionRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// HandleCreate handles a new contact-form submission.
func (h *UserHandler) HandleCreate(c *fiber.Ctx) error {
	log := logger.Get()

	var req SubmissionRequest
	if err := c.BodyParser(&req); err != nil {
		log.Warn().Err(err).Msg("failed to parse submission body")
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	user, err := h.userService.Submit(req.Name, req.Email)
	if err != nil {
		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": firstFieldMessage(verr),
				"errors":  verr.Fields,
			})
		case errors.Is(err, repositories.ErrDuplicateEmail):
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": duplicateEmailMessage,
			})
		default:
			// Storage details stay server-side.
			log.Error().Err(err).Msg("failed to create user")
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": internalErrorMessage,
			})
		}
	}

	log.Info().Str("email", user.Email).Uint("user_id", user.ID).Msg("new user created")
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created successfully",
		"user":    user,
	})
}

// HandleList returns all stored submissions, newest first.
func (h *UserHandler) HandleList(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		log := logger.Get()
		log.Error().Err(err).Msg("failed to list users")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": internalErrorMessage,
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Users retrieved successfully",
		"users":   users,
		"count":   len(users),
	})
}

// firstFieldMessage picks a headline message for the response body, with the
// name violation taking precedence over email.
func firstFieldMessage(verr *services.ValidationError) string {
	if msg, ok := verr.Fields["name"]; ok {
		return msg
	}
	for _, msg := range verr.Fields {
		return msg
	}
	return "Validation failed"
}
