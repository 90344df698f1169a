package user

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/constants"
	"github.com/tigerlilly/api/internal/platform/icon"
	"github.com/tigerlilly/api/internal/platform/metrics"
	"github.com/tigerlilly/api/internal/platform/sec"
	"github.com/tigerlilly/api/internal/platform/validate"
)

type Service struct {
	repo      Repository
	tokens    *sec.TokenService
	icons     icon.Store
	sanitizer *bluemonday.Policy
	collector *metrics.Collector
	logger    *slog.Logger
}

func NewService(repo Repository, tokens *sec.TokenService, icons icon.Store, sanitizer *bluemonday.Policy, collector *metrics.Collector, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		tokens:    tokens,
		icons:     icons,
		sanitizer: sanitizer,
		collector: collector,
		logger:    logger,
	}
}

// Register creates a new account and issues its session token. A non-nil
// iconUpload is stored keyed by the username.
func (service *Service) Register(context context.Context, input *RegisterInput, iconUpload io.Reader) (*User, string, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUsername, input.Username).MaxLen(FieldUsername, input.Username, 50)
	validator.Required(FieldPassword, input.Password).MinLen(FieldPassword, input.Password, 6)
	validator.Required(FieldFirst, input.UserFirst).MaxLen(FieldFirst, input.UserFirst, 100)
	validator.Required(FieldLast, input.UserLast).MaxLen(FieldLast, input.UserLast, 100)
	validator.Required(FieldEmail, input.Email).Email(FieldEmail, input.Email)

	if err := validator.Err(); err != nil {
		return nil, "", err
	}

	taken, err := service.repo.UsernameExists(context, input.Username)
	if err != nil {
		return nil, "", err
	}
	if taken {
		return nil, "", apperr.Conflict(fmt.Sprintf("Duplicate username: %s", input.Username))
	}

	hash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	u := &User{
		Username:  input.Username,
		Password:  hash,
		UserFirst: input.UserFirst,
		UserLast:  input.UserLast,
		Email:     input.Email,
		IsAdmin:   input.IsAdmin,
		Icon:      constants.DefaultUserIcon,
	}

	if iconUpload != nil {
		filename, err := service.icons.Save(iconUpload, input.Username)
		if err != nil {
			return nil, "", apperr.Internal(err)
		}
		u.Icon = filename
		service.collector.RecordIconUpload()
	}

	if err := service.repo.CreateUser(context, u); err != nil {
		return nil, "", err
	}

	token, err := service.tokens.GenerateToken(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	service.logger.Info("user_registered",
		slog.Int("user_id", u.ID),
		slog.String("username", u.Username),
	)
	return u, token, nil
}

// Authenticate checks a username/password pair and issues a session token.
// Unknown usernames and wrong passwords fail identically.
func (service *Service) Authenticate(context context.Context, creds *Credentials) (*User, string, error) {
	u, err := service.repo.GetUserByUsername(context, creds.Username)
	if err != nil || !sec.CheckPasswordHash(creds.Password, u.Password) {
		service.collector.RecordLogin("failure")
		return nil, "", apperr.Unauthorized("Invalid username/password")
	}

	token, err := service.tokens.GenerateToken(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	service.collector.RecordLogin("success")
	service.logger.Info("user_login", slog.Int("user_id", u.ID))
	return u, token, nil
}

func (service *Service) ListUsers(context context.Context) ([]*User, error) {
	return service.repo.ListUsers(context)
}

func (service *Service) GetUser(context context.Context, username string) (*User, error) {
	u, err := service.repo.GetUserByUsername(context, username)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No user: %s", username))
		}
		return nil, err
	}
	return u, nil
}

// Update applies a partial update and issues a fresh token reflecting any
// username or role change. Empty fields keep the stored value; IsAdmin is
// OR-coalesced so a true survives and a false is treated as omitted; the
// password is re-hashed only when a new plaintext is supplied.
func (service *Service) Update(context context.Context, id int, patch *UpdateInput, iconUpload io.Reader) (*User, string, error) {
	existing, err := service.repo.GetUserByID(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperr.NotFound(fmt.Sprintf("No user found by that id: %d", id))
		}
		return nil, "", err
	}

	updated := &User{
		ID:        id,
		Username:  coalesce(patch.Username, existing.Username),
		Password:  existing.Password,
		UserFirst: coalesce(patch.UserFirst, existing.UserFirst),
		UserLast:  coalesce(patch.UserLast, existing.UserLast),
		Email:     coalesce(patch.Email, existing.Email),
		IsAdmin:   patch.IsAdmin || existing.IsAdmin,
		Icon:      existing.Icon,
	}

	if patch.Password != "" {
		hash, err := sec.HashPassword(patch.Password)
		if err != nil {
			return nil, "", apperr.Internal(err)
		}
		updated.Password = hash
	}

	if iconUpload != nil {
		filename, err := service.icons.Save(iconUpload, updated.Username)
		if err != nil {
			return nil, "", apperr.Internal(err)
		}
		updated.Icon = filename
		service.collector.RecordIconUpload()
	}

	if err := service.repo.UpdateUser(context, updated); err != nil {
		return nil, "", err
	}

	token, err := service.tokens.GenerateToken(updated.ID, updated.Username, updated.IsAdmin)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	service.logger.Info("user_updated", slog.Int("user_id", id))
	return updated, token, nil
}

func (service *Service) Delete(context context.Context, id int) (*DeletedUser, error) {
	deleted, err := service.repo.DeleteUser(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No user by that id: %d", id))
		}
		return nil, err
	}

	service.logger.Warn("user_deleted", slog.Int("user_id", id))
	return deleted, nil
}

// SubmitFeedback stores an anonymous visitor note. The text is run through the
// strict HTML sanitizer before it touches the database.
func (service *Service) SubmitFeedback(context context.Context, f *Feedback) (*Feedback, error) {
	validator := &validate.Validator{}
	validator.Required(FieldName, f.Name).MaxLen(FieldName, f.Name, 100)
	validator.Required(FieldEmail, f.Email).Email(FieldEmail, f.Email)
	validator.Required(FieldFeedback, f.FeedbackText)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	f.FeedbackText = service.sanitizer.Sanitize(f.FeedbackText)

	if err := service.repo.CreateFeedback(context, f); err != nil {
		return nil, err
	}

	service.logger.Info("feedback_received", slog.Int("feedback_id", f.ID))
	return f, nil
}

func coalesce(supplied, existing string) string {
	if supplied == "" {
		return existing
	}
	return supplied
}

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Status == http.StatusNotFound
}
