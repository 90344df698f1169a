package issue

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tigerlilly/api/internal/magazine/shape"
	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/validate"
	"github.com/tigerlilly/api/pkg/pointer"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListIssues(context context.Context) ([]*Issue, error) {
	return service.repo.ListIssues(context)
}

func (service *Service) GetIssue(context context.Context, id int) ([]*ArticleRow, error) {
	rows, err := service.repo.GetIssueArticles(context, id)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No issue found by that id: %d", id))
	}

	teaseArticleRows(rows)
	return rows, nil
}

func (service *Service) GetIssueByTitle(context context.Context, title string) ([]*ArticleRow, error) {
	rows, err := service.repo.GetIssueArticlesByTitle(context, title)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No issue found by that title: %s", title))
	}

	teaseArticleRows(rows)
	return rows, nil
}

// GetCurrentIssue returns the latest issue by publication date.
func (service *Service) GetCurrentIssue(context context.Context) ([]*ArticleRow, error) {
	rows, err := service.repo.GetCurrentIssueArticles(context)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound("No issues have been published yet")
	}

	teaseArticleRows(rows)
	return rows, nil
}

func (service *Service) CreateIssue(context context.Context, input *CreateInput) (*Issue, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.IssueTitle).MaxLen(FieldTitle, input.IssueTitle, 200)
	validator.Positive(FieldVolume, input.Volume)
	validator.Positive(FieldIssueNum, input.IssueNum)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	taken, err := service.repo.TitleExists(context, input.IssueTitle)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(fmt.Sprintf("Duplicate issue title: %s", input.IssueTitle))
	}

	created, err := service.repo.CreateIssue(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("issue_created",
		slog.Int("issue_id", created.ID),
		slog.String("title", created.IssueTitle),
	)
	return created, nil
}

// UpdateIssue applies a partial update; zero values keep the stored ones.
func (service *Service) UpdateIssue(context context.Context, id int, patch *UpdateInput) (*Issue, error) {
	existing, err := service.repo.GetIssueByID(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No issue by that id: %d", id))
		}
		return nil, err
	}

	updated := &Issue{
		ID:         id,
		IssueTitle: existing.IssueTitle,
		Volume:     existing.Volume,
		IssueNum:   existing.IssueNum,
		PubDate:    pointer.Fallback(patch.PubDate, existing.PubDate),
	}

	if patch.IssueTitle != "" {
		updated.IssueTitle = patch.IssueTitle
	}
	if patch.Volume != 0 {
		updated.Volume = patch.Volume
	}
	if patch.IssueNum != 0 {
		updated.IssueNum = patch.IssueNum
	}

	if err := service.repo.UpdateIssue(context, updated); err != nil {
		return nil, err
	}

	service.logger.Info("issue_updated", slog.Int("issue_id", id))
	return updated, nil
}

func (service *Service) DeleteIssue(context context.Context, id int) (*Issue, error) {
	deleted, err := service.repo.DeleteIssue(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No issue found by id: %d", id))
		}
		return nil, err
	}

	service.logger.Warn("issue_deleted", slog.Int("issue_id", id))
	return deleted, nil
}

func teaseArticleRows(rows []*ArticleRow) {
	for _, row := range rows {
		row.Text = shape.TeaserPtr(row.Text)
	}
}

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Status == http.StatusNotFound
}
