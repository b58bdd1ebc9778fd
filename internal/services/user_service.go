package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"contactform/internal/models"
	"contactform/internal/repositories"
	"contactform/internal/validation"
	"contactform/pkg/logger"

	"github.com/google/uuid"
)

// ValidationError carries the per-field messages for a rejected submission.
// Both fields are checked independently so a caller can surface all
// violations at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, m := range e.Fields {
		msgs = append(msgs, m)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// EventPublisher publishes domain events for downstream consumers.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// UserService orchestrates the submission pipeline:
// validate, normalize, duplicate pre-check, insert, read-back.
type UserService struct {
	repo      repositories.UserRepository
	publisher EventPublisher // optional; nil disables event publishing
}

// NewUserService creates a new UserService. publisher may be nil.
func NewUserService(repo repositories.UserRepository, publisher EventPublisher) *UserService {
	return &UserService{
		repo:      repo,
		publisher: publisher,
	}
}

// Submit validates and persists a contact-form submission, returning the
// stored record read back from the database.
//
// The duplicate pre-check is best-effort only: two concurrent submissions
// with the same email can both pass it. The unique constraint surfaced by the
// repository as ErrDuplicateEmail is the authoritative guard, and both paths
// return the identical error.
func (s *UserService) Submit(name, email string) (*models.User, error) {
	fieldErrs := make(map[string]string)
	if msg := validation.ValidateName(name); msg != "" {
		fieldErrs["name"] = msg
	}
	if msg := validation.ValidateEmail(email); msg != "" {
		fieldErrs["email"] = msg
	}
	if len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	user := &models.User{
		Name:  validation.NormalizeName(name),
		Email: validation.NormalizeEmail(email),
	}

	existing, err := s.repo.FindByEmail(user.Email)
	if err != nil && !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("duplicate pre-check failed: %w", err)
	}
	if existing != nil {
		return nil, repositories.ErrDuplicateEmail
	}

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	created, err := s.repo.GetByID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to read back user %d: %w", user.ID, err)
	}

	s.publishRegistered(created)

	return created, nil
}

// List returns all stored submissions, newest first.
func (s *UserService) List() ([]models.User, error) {
	return s.repo.ListAll()
}

// publishRegistered emits a user.registered event. Broker failures are
// logged and swallowed; event delivery never affects the submission result.
func (s *UserService) publishRegistered(user *models.User) {
	if s.publisher == nil {
		return
	}

	log := logger.Get()

	body, err := json.Marshal(map[string]interface{}{
		"event_id":   uuid.New().String(),
		"user_id":    user.ID,
		"email":      user.Email,
		"created_at": user.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal user.registered event")
		return
	}

	if err := s.publisher.Publish("user.registered", body); err != nil {
		log.Warn().Err(err).Uint("user_id", user.ID).Msg("failed to publish user.registered event")
		return
	}
	log.Debug().Uint("user_id", user.ID).Msg("published user.registered event")
}
