package keyword

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/constants"
	"github.com/tigerlilly/api/internal/platform/dberr"
	"github.com/tigerlilly/api/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Add associates the supplied keywords with one article, or with every
// article when the id is the broadcast sentinel. The broadcast path skips
// articles already carrying a keyword; the single-article path raises a
// conflict on a duplicate pair.
func (service *Service) Add(context context.Context, input *AddInput) (*AddResult, error) {
	validator := &validate.Validator{}
	validator.Custom(FieldKeywords, len(input.Keywords) == 0, "at least one keyword is required")
	for _, kwd := range input.Keywords {
		validator.Required(FieldKeyword, kwd).MaxLen(FieldKeyword, kwd, 50)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.ArticleID == constants.AllArticlesID {
		for _, kwd := range input.Keywords {
			if err := service.repo.AddToAllArticles(context, kwd); err != nil {
				return nil, err
			}
		}

		service.logger.Info("keywords_broadcast", slog.Int("count", len(input.Keywords)))
		return &AddResult{ArticleTitle: constants.AllArticlesTitle, Keywords: input.Keywords}, nil
	}

	var title string
	for _, kwd := range input.Keywords {
		articleTitle, err := service.repo.AddToArticle(context, input.ArticleID, kwd)
		if err != nil {
			if dberr.IsUniqueViolation(err) {
				return nil, apperr.Conflict(fmt.Sprintf("Duplicate keyword: %s", kwd))
			}
			return nil, err
		}
		title = articleTitle
	}

	service.logger.Info("keywords_added",
		slog.Int("article_id", input.ArticleID),
		slog.Int("count", len(input.Keywords)),
	)
	return &AddResult{ArticleTitle: title, Keywords: input.Keywords}, nil
}

func (service *Service) ListAssociations(context context.Context) ([]*Association, error) {
	return service.repo.ListAssociations(context)
}

func (service *Service) ListArticleKeywords(context context.Context, articleID int) ([]*Row, error) {
	keywords, err := service.repo.ListArticleKeywords(context, articleID)
	if err != nil {
		return nil, err
	}
	if len(keywords) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No keywords associated with that article OR articleId doesn't exist: %d", articleID))
	}
	return keywords, nil
}

// Rename changes a keyword's value on one article, or everywhere when the id
// is the broadcast sentinel.
func (service *Service) Rename(context context.Context, articleID int, input *EditInput) (*EditResult, error) {
	validator := &validate.Validator{}
	validator.Required(FieldKeyword, input.Keyword)
	validator.Required(FieldEdit, input.Edit).MaxLen(FieldEdit, input.Edit, 50)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if articleID == constants.AllArticlesID {
		if err := service.repo.RenameAll(context, input.Keyword, input.Edit); err != nil {
			return nil, err
		}
		return &EditResult{ArticleTitle: constants.AllArticlesTitle, Keyword: input.Edit}, nil
	}

	if err := service.repo.Rename(context, articleID, input.Keyword, input.Edit); err != nil {
		return nil, err
	}

	title, err := service.repo.GetArticleTitle(context, articleID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No article found by that id: %d", articleID))
		}
		return nil, err
	}

	return &EditResult{ArticleTitle: title, Keyword: input.Edit}, nil
}

// Remove deletes a keyword from one article, or everywhere when the id is the
// broadcast sentinel.
func (service *Service) Remove(context context.Context, articleID int, keyword string) (*EditResult, error) {
	if articleID == constants.AllArticlesID {
		if err := service.repo.RemoveAll(context, keyword); err != nil {
			return nil, err
		}
		return &EditResult{ArticleTitle: constants.AllArticlesTitle, Keyword: keyword}, nil
	}

	if err := service.repo.Remove(context, articleID, keyword); err != nil {
		return nil, err
	}

	title, err := service.repo.GetArticleTitle(context, articleID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No article found by that id: %d", articleID))
		}
		return nil, err
	}

	return &EditResult{ArticleTitle: title, Keyword: keyword}, nil
}

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Status == http.StatusNotFound
}
