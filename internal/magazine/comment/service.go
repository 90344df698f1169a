package comment

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/validate"
	"github.com/tigerlilly/api/pkg/pointer"
)

type Service struct {
	repo      Repository
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

func NewService(repo Repository, sanitizer *bluemonday.Policy, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		sanitizer: sanitizer,
		logger:    logger,
	}
}

// CreateComment posts a comment. Text is sanitized before storage; the post
// date defaults to the database clock when the caller does not supply one.
func (service *Service) CreateComment(context context.Context, input *CreateInput) (*Comment, error) {
	validator := &validate.Validator{}
	validator.Required(FieldText, input.Text).MaxLen(FieldText, input.Text, 2000)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	input.Text = service.sanitizer.Sanitize(input.Text)

	created, err := service.repo.CreateComment(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment_created", slog.Int("comment_id", created.ID))
	return created, nil
}

func (service *Service) ListByUser(context context.Context, userID int) ([]*Comment, error) {
	comments, err := service.repo.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No comments associated with that user OR user by that id doesn't exist: %d", userID))
	}
	return comments, nil
}

func (service *Service) ListByArticle(context context.Context, articleID int) ([]*Comment, error) {
	comments, err := service.repo.ListByArticle(context, articleID)
	if err != nil {
		return nil, err
	}
	if len(comments) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No comments associated with that article OR articleId doesn't exist: %d", articleID))
	}
	return comments, nil
}

func (service *Service) GetComment(context context.Context, id int) (*Comment, error) {
	c, err := service.repo.GetComment(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No comment found by that id: %d", id))
		}
		return nil, err
	}
	return c, nil
}

// UpdateComment applies a partial update. Supplied fields replace stored ones;
// omitted fields keep the stored value.
func (service *Service) UpdateComment(context context.Context, id int, patch *UpdateInput) (*Comment, error) {
	existing, err := service.repo.GetRecord(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No comment found by that id: %d", id))
		}
		return nil, err
	}

	updated := &Record{
		ID:        id,
		UserID:    existing.UserID,
		ArticleID: existing.ArticleID,
		Text:      existing.Text,
		PostDate:  pointer.Fallback(patch.PostDate, existing.PostDate),
	}
	if patch.UserID != nil {
		updated.UserID = patch.UserID
	}
	if patch.ArticleID != nil {
		updated.ArticleID = patch.ArticleID
	}
	if patch.Text != "" {
		updated.Text = service.sanitizer.Sanitize(patch.Text)
	}

	c, err := service.repo.UpdateComment(context, updated)
	if err != nil {
		return nil, err
	}

	service.logger.Info("comment_updated", slog.Int("comment_id", id))
	return c, nil
}

func (service *Service) DeleteComment(context context.Context, id int) (*Comment, error) {
	deleted, err := service.repo.DeleteComment(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No comment found by id: %d", id))
		}
		return nil, err
	}

	service.logger.Warn("comment_deleted", slog.Int("comment_id", id))
	return deleted, nil
}

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Status == http.StatusNotFound
}
