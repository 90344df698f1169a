package article

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tigerlilly/api/internal/magazine/shape"
	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/validate"
	"github.com/tigerlilly/api/pkg/slice"
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

func (service *Service) ListArticles(context context.Context) ([]*Article, error) {
	articles, err := service.repo.ListArticles(context)
	if err != nil {
		return nil, err
	}
	return teaseAll(articles), nil
}

func (service *Service) GetArticle(context context.Context, id int) (*Article, error) {
	a, err := service.repo.GetArticle(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No article found by that id: %d", id))
		}
		return nil, err
	}
	return tease(a), nil
}

func (service *Service) GetArticleByTitle(context context.Context, title string) (*Article, error) {
	a, err := service.repo.GetArticleByTitle(context, title)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No article found by that title: %s", title))
		}
		return nil, err
	}
	return tease(a), nil
}

func (service *Service) ListArticlesByAuthor(context context.Context, handle string) ([]*Article, error) {
	articles, err := service.repo.ListArticlesByAuthorHandle(context, handle)
	if err != nil {
		return nil, err
	}
	return teaseAll(articles), nil
}

func (service *Service) ListArticlesByKeyword(context context.Context, keyword string) ([]*Article, error) {
	articles, err := service.repo.ListArticlesByKeyword(context, keyword)
	if err != nil {
		return nil, err
	}
	return teaseAll(articles), nil
}

// Search runs a free-text search over comma-separated terms. A term prefixed
// with the tag marker is matched against the keyword table instead of the
// article text; surrounding double quotes are stripped and carry no further
// meaning. Matches union across terms into a deduplicated result.
func (service *Service) Search(context context.Context, rawTerms string) ([]*Article, error) {
	textTerms, tagTerms := ParseSearchTerms(rawTerms)

	textIDs, err := service.repo.SearchTextIDs(context, textTerms)
	if err != nil {
		return nil, err
	}
	tagIDs, err := service.repo.SearchKeywordIDs(context, tagTerms)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	ids := slice.Filter(append(textIDs, tagIDs...), func(id int) bool {
		if seen[id] {
			return false
		}
		seen[id] = true
		return true
	})

	results := []*Article{}
	for _, id := range ids {
		a, err := service.repo.GetArticle(context, id)
		if err != nil {
			return nil, err
		}
		results = append(results, tease(a))
	}

	return results, nil
}

// ParseSearchTerms splits a comma-separated term list into text terms and
// keyword-table terms. Empty terms are dropped.
func ParseSearchTerms(rawTerms string) (textTerms, tagTerms []string) {
	for _, term := range strings.Split(rawTerms, ",") {
		term = strings.TrimSpace(term)
		term = strings.Trim(term, `"`)
		if term == "" {
			continue
		}

		if tag, found := strings.CutPrefix(term, TagMarker); found {
			if tag != "" {
				tagTerms = append(tagTerms, tag)
			}
			continue
		}
		textTerms = append(textTerms, term)
	}
	return textTerms, tagTerms
}

func (service *Service) CreateArticle(context context.Context, input *CreateInput) (*Article, error) {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, input.ArticleTitle).MaxLen(FieldTitle, input.ArticleTitle, 200)
	validator.Required(FieldText, input.Text)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	taken, err := service.repo.TitleExists(context, input.ArticleTitle)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.Conflict(fmt.Sprintf("Duplicate article title: %s", input.ArticleTitle))
	}

	created, err := service.repo.CreateArticle(context, input)
	if err != nil {
		return nil, err
	}

	service.logger.Info("article_created",
		slog.Int("article_id", created.ID),
		slog.String("title", created.ArticleTitle),
	)
	return tease(created), nil
}

// UpdateArticle applies a partial update; absent fields keep the stored
// values, including the optional author and issue references.
func (service *Service) UpdateArticle(context context.Context, id int, patch *UpdateInput) (*Article, error) {
	existing, err := service.repo.GetRecord(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No article found by that id: %d", id))
		}
		return nil, err
	}

	updated := &Record{
		ID:           id,
		ArticleTitle: existing.ArticleTitle,
		Text:         existing.Text,
		AuthorID:     existing.AuthorID,
		IssueID:      existing.IssueID,
	}

	if patch.ArticleTitle != "" {
		updated.ArticleTitle = patch.ArticleTitle
	}
	if patch.Text != "" {
		updated.Text = patch.Text
	}
	if patch.AuthorID != nil {
		updated.AuthorID = patch.AuthorID
	}
	if patch.IssueID != nil {
		updated.IssueID = patch.IssueID
	}

	result, err := service.repo.UpdateArticle(context, updated)
	if err != nil {
		return nil, err
	}

	service.logger.Info("article_updated", slog.Int("article_id", id))
	return tease(result), nil
}

func (service *Service) DeleteArticle(context context.Context, id int) (*Article, error) {
	deleted, err := service.repo.DeleteArticle(context, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.NotFound(fmt.Sprintf("No article found by id: %d", id))
		}
		return nil, err
	}

	service.logger.Warn("article_deleted", slog.Int("article_id", id))
	return tease(deleted), nil
}

func tease(a *Article) *Article {
	a.Text = shape.Teaser(a.Text)
	return a
}

func teaseAll(articles []*Article) []*Article {
	return slice.Map(articles, tease)
}

func isNotFound(err error) bool {
	appError := apperr.As(err)
	return appError != nil && appError.Status == http.StatusNotFound
}
