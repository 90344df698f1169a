package author

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/tigerlilly/api/internal/magazine/shape"
	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/constants"
	"github.com/tigerlilly/api/internal/platform/icon"
	"github.com/tigerlilly/api/internal/platform/validate"
)

type Service struct {
	repo   Repository
	icons  icon.Store
	logger *slog.Logger
}

func NewService(repo Repository, icons icon.Store, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		icons:  icons,
		logger: logger,
	}
}

func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	authors, err := service.repo.ListAuthors(context)
	if err != nil {
		return nil, err
	}

	for _, a := range authors {
		a.AuthorBio = shape.Teaser(a.AuthorBio)
	}
	return authors, nil
}

func (service *Service) GetAuthor(context context.Context, handle string) (*Author, error) {
	a, err := service.repo.GetAuthorByHandle(context, handle)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No author by that handle: %s", handle))
		}
		return nil, err
	}

	a.AuthorBio = shape.Teaser(a.AuthorBio)
	return a, nil
}

// CreateAuthor inserts a new author. A non-nil iconUpload is stored keyed by
// the author's handle; otherwise the default avatar is assigned.
func (service *Service) CreateAuthor(context context.Context, input *Author, iconUpload io.Reader) (*Author, error) {
	validator := &validate.Validator{}
	validator.Required(FieldFirst, input.AuthorFirst).MaxLen(FieldFirst, input.AuthorFirst, 100)
	validator.Required(FieldLast, input.AuthorLast).MaxLen(FieldLast, input.AuthorLast, 100)
	validator.Required(FieldHandle, input.AuthorHandle).MaxLen(FieldHandle, input.AuthorHandle, 50)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	taken, err := service.repo.HandleExists(context, input.AuthorHandle)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(fmt.Sprintf("Duplicate author handle: %s", input.AuthorHandle))
	}

	if input.AuthorBio == "" {
		input.AuthorBio = constants.DefaultAuthorBio
	}

	input.Icon = constants.DefaultAuthorIcon
	if iconUpload != nil {
		filename, err := service.icons.Save(iconUpload, input.AuthorHandle)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		input.Icon = filename
	}

	if err := service.repo.CreateAuthor(context, input); err != nil {
		return nil, err
	}

	service.logger.Info("author_created",
		slog.Int("author_id", input.ID),
		slog.String("handle", input.AuthorHandle),
	)

	input.AuthorBio = shape.Teaser(input.AuthorBio)
	return input, nil
}

// UpdateAuthor applies a partial update. Supplied fields replace stored ones;
// empty fields keep the stored value (omitted and cleared are the same thing
// here, matching the API's long-standing coalescing contract).
//
// When the handle changes and no new icon is uploaded, the stored icon file is
// renamed to follow the new handle. The rename is a plain filesystem move
// outside the database write.
func (service *Service) UpdateAuthor(context context.Context, id int, patch *Author, iconUpload io.Reader) (*Author, error) {
	existing, err := service.repo.GetAuthorByID(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No author by that id: %d", id))
		}
		return nil, err
	}

	updated := &Author{
		ID:           id,
		AuthorFirst:  coalesce(patch.AuthorFirst, existing.AuthorFirst),
		AuthorLast:   coalesce(patch.AuthorLast, existing.AuthorLast),
		AuthorHandle: coalesce(patch.AuthorHandle, existing.AuthorHandle),
		AuthorSlogan: coalesce(patch.AuthorSlogan, existing.AuthorSlogan),
		AuthorBio:    coalesce(patch.AuthorBio, existing.AuthorBio),
		Icon:         existing.Icon,
	}

	switch {
	case iconUpload != nil:
		filename, err := service.icons.Save(iconUpload, updated.AuthorHandle)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		updated.Icon = filename

	case updated.AuthorHandle != existing.AuthorHandle && existing.Icon != constants.DefaultAuthorIcon:
		filename, err := service.icons.Rename(existing.AuthorHandle, updated.AuthorHandle)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		updated.Icon = filename
	}

	if err := service.repo.UpdateAuthor(context, updated); err != nil {
		return nil, err
	}

	service.logger.Info("author_updated", slog.Int("author_id", id))

	updated.AuthorBio = shape.Teaser(updated.AuthorBio)
	return updated, nil
}

func (service *Service) DeleteAuthor(context context.Context, id int) (*Author, error) {
	deleted, err := service.repo.DeleteAuthor(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No author found by that id: %d", id))
		}
		return nil, err
	}

	service.logger.Warn("author_deleted", slog.Int("author_id", id))

	deleted.AuthorBio = shape.Teaser(deleted.AuthorBio)
	return deleted, nil
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
