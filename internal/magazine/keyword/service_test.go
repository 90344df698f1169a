package keyword_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerlilly/api/internal/magazine/keyword"
	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/internal/platform/dberr"
)

// fakeRepository tracks keyword associations per article id.
type fakeRepository struct {
	titles       map[int]string
	associations map[int]map[string]bool
	allArticles  []int
}

func newFakeRepository(titles map[int]string) *fakeRepository {
	f := &fakeRepository{
		titles:       titles,
		associations: map[int]map[string]bool{},
	}
	for id := range titles {
		f.allArticles = append(f.allArticles, id)
		f.associations[id] = map[string]bool{}
	}
	return f
}

func (f *fakeRepository) AddToArticle(ctx context.Context, articleID int, kwd string) (string, error) {
	if f.associations[articleID][kwd] {
		// Same shape a real repository produces for a duplicate pair.
		return "", dberr.Wrap(&pgconn.PgError{Code: pgerrcode.UniqueViolation}, "add_keyword")
	}
	f.associations[articleID][kwd] = true
	return f.titles[articleID], nil
}

func (f *fakeRepository) AddToAllArticles(ctx context.Context, kwd string) error {
	for _, id := range f.allArticles {
		f.associations[id][kwd] = true
	}
	return nil
}

func (f *fakeRepository) ListAssociations(ctx context.Context) ([]*keyword.Association, error) {
	return nil, nil
}

func (f *fakeRepository) ListArticleKeywords(ctx context.Context, articleID int) ([]*keyword.Row, error) {
	var rows []*keyword.Row
	for kwd := range f.associations[articleID] {
		rows = append(rows, &keyword.Row{Keyword: kwd})
	}
	return rows, nil
}

func (f *fakeRepository) Rename(ctx context.Context, articleID int, kwd, edit string) error {
	if f.associations[articleID][kwd] {
		delete(f.associations[articleID], kwd)
		f.associations[articleID][edit] = true
	}
	return nil
}

func (f *fakeRepository) RenameAll(ctx context.Context, kwd, edit string) error {
	for _, id := range f.allArticles {
		_ = f.Rename(ctx, id, kwd, edit)
	}
	return nil
}

func (f *fakeRepository) Remove(ctx context.Context, articleID int, kwd string) error {
	delete(f.associations[articleID], kwd)
	return nil
}

func (f *fakeRepository) RemoveAll(ctx context.Context, kwd string) error {
	for _, id := range f.allArticles {
		delete(f.associations[id], kwd)
	}
	return nil
}

func (f *fakeRepository) GetArticleTitle(ctx context.Context, articleID int) (string, error) {
	if title, ok := f.titles[articleID]; ok {
		return title, nil
	}
	return "", apperr.NotFound("no row")
}

func newTestService(repo *fakeRepository) *keyword.Service {
	return keyword.NewService(repo, slog.New(slog.DiscardHandler))
}

func TestAdd_SingleArticle(t *testing.T) {
	repo := newFakeRepository(map[int]string{1: "First Article", 2: "Second Article"})
	service := newTestService(repo)

	result, err := service.Add(context.Background(), &keyword.AddInput{
		ArticleID: 1,
		Keywords:  []string{"funny", "satire"},
	})
	require.NoError(t, err)

	assert.Equal(t, "First Article", result.ArticleTitle)
	assert.Equal(t, []string{"funny", "satire"}, result.Keywords)

	// Only article 1 is tagged.
	assert.True(t, repo.associations[1]["funny"])
	assert.False(t, repo.associations[2]["funny"])
}

func TestAdd_DuplicateOnSingleArticleConflicts(t *testing.T) {
	repo := newFakeRepository(map[int]string{1: "First Article"})
	repo.associations[1]["funny"] = true
	service := newTestService(repo)

	_, err := service.Add(context.Background(), &keyword.AddInput{
		ArticleID: 1,
		Keywords:  []string{"funny"},
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusBadRequest, ae.Status)
	assert.Equal(t, "Duplicate keyword: funny", ae.Message)
}

func TestAdd_BroadcastToleratesDuplicates(t *testing.T) {
	repo := newFakeRepository(map[int]string{1: "First Article", 2: "Second Article"})
	// Article 1 already carries the tag; the broadcast must not fail.
	repo.associations[1]["funny"] = true
	service := newTestService(repo)

	result, err := service.Add(context.Background(), &keyword.AddInput{
		ArticleID: 0,
		Keywords:  []string{"funny"},
	})
	require.NoError(t, err)

	assert.Equal(t, "All Articles", result.ArticleTitle)
	assert.True(t, repo.associations[1]["funny"])
	assert.True(t, repo.associations[2]["funny"])
}

func TestAdd_RequiresKeywords(t *testing.T) {
	service := newTestService(newFakeRepository(map[int]string{1: "First Article"}))

	_, err := service.Add(context.Background(), &keyword.AddInput{ArticleID: 1})
	assert.Error(t, err)
}

func TestListArticleKeywords_EmptyIsNotFound(t *testing.T) {
	service := newTestService(newFakeRepository(map[int]string{1: "First Article"}))

	_, err := service.ListArticleKeywords(context.Background(), 1)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "No keywords associated with that article OR articleId doesn't exist: 1", ae.Message)
}

func TestRename(t *testing.T) {
	t.Run("single_article", func(t *testing.T) {
		repo := newFakeRepository(map[int]string{1: "First Article", 2: "Second Article"})
		repo.associations[1]["fnny"] = true
		repo.associations[2]["fnny"] = true
		service := newTestService(repo)

		result, err := service.Rename(context.Background(), 1, &keyword.EditInput{Keyword: "fnny", Edit: "funny"})
		require.NoError(t, err)

		assert.Equal(t, "First Article", result.ArticleTitle)
		assert.Equal(t, "funny", result.Keyword)
		assert.True(t, repo.associations[1]["funny"])
		// Article 2 keeps the old spelling.
		assert.True(t, repo.associations[2]["fnny"])
	})

	t.Run("broadcast", func(t *testing.T) {
		repo := newFakeRepository(map[int]string{1: "First Article", 2: "Second Article"})
		repo.associations[1]["fnny"] = true
		repo.associations[2]["fnny"] = true
		service := newTestService(repo)

		result, err := service.Rename(context.Background(), 0, &keyword.EditInput{Keyword: "fnny", Edit: "funny"})
		require.NoError(t, err)

		assert.Equal(t, "All Articles", result.ArticleTitle)
		assert.True(t, repo.associations[1]["funny"])
		assert.True(t, repo.associations[2]["funny"])
	})
}

func TestRemove(t *testing.T) {
	t.Run("single_article", func(t *testing.T) {
		repo := newFakeRepository(map[int]string{1: "First Article", 2: "Second Article"})
		repo.associations[1]["funny"] = true
		repo.associations[2]["funny"] = true
		service := newTestService(repo)

		result, err := service.Remove(context.Background(), 1, "funny")
		require.NoError(t, err)

		assert.Equal(t, "First Article", result.ArticleTitle)
		assert.Equal(t, "funny", result.Keyword)
		assert.False(t, repo.associations[1]["funny"])
		assert.True(t, repo.associations[2]["funny"])
	})

	t.Run("broadcast", func(t *testing.T) {
		repo := newFakeRepository(map[int]string{1: "First Article", 2: "Second Article"})
		repo.associations[1]["funny"] = true
		repo.associations[2]["funny"] = true
		service := newTestService(repo)

		result, err := service.Remove(context.Background(), 0, "funny")
		require.NoError(t, err)

		assert.Equal(t, "All Articles", result.ArticleTitle)
		assert.False(t, repo.associations[1]["funny"])
		assert.False(t, repo.associations[2]["funny"])
	})
}
