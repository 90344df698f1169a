package issue_test

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerlilly/api/internal/magazine/issue"
	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/pkg/pointer"
)

type fakeRepository struct {
	issues      map[int]*issue.Issue
	articleRows map[int][]*issue.ArticleRow
	currentRows []*issue.ArticleRow
	updated     *issue.Issue
}

func (f *fakeRepository) ListIssues(ctx context.Context) ([]*issue.Issue, error) {
	return nil, nil
}

func (f *fakeRepository) GetIssueByID(ctx context.Context, id int) (*issue.Issue, error) {
	if i, ok := f.issues[id]; ok {
		copied := *i
		return &copied, nil
	}
	return nil, apperr.NotFound("no row")
}

func (f *fakeRepository) GetIssueArticles(ctx context.Context, id int) ([]*issue.ArticleRow, error) {
	return f.articleRows[id], nil
}

func (f *fakeRepository) GetIssueArticlesByTitle(ctx context.Context, title string) ([]*issue.ArticleRow, error) {
	for _, rows := range f.articleRows {
		if len(rows) > 0 && rows[0].IssueTitle == title {
			return rows, nil
		}
	}
	return nil, nil
}

func (f *fakeRepository) GetCurrentIssueArticles(ctx context.Context) ([]*issue.ArticleRow, error) {
	return f.currentRows, nil
}

func (f *fakeRepository) TitleExists(ctx context.Context, title string) (bool, error) {
	for _, i := range f.issues {
		if i.IssueTitle == title {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepository) CreateIssue(ctx context.Context, in *issue.CreateInput) (*issue.Issue, error) {
	created := &issue.Issue{ID: 99, IssueTitle: in.IssueTitle, Volume: in.Volume, IssueNum: in.IssueNum}
	if in.PubDate != nil {
		created.PubDate = *in.PubDate
	} else {
		created.PubDate = time.Now()
	}
	return created, nil
}

func (f *fakeRepository) UpdateIssue(ctx context.Context, i *issue.Issue) error {
	f.updated = i
	return nil
}

func (f *fakeRepository) DeleteIssue(ctx context.Context, id int) (*issue.Issue, error) {
	if i, ok := f.issues[id]; ok {
		delete(f.issues, id)
		return i, nil
	}
	return nil, apperr.NotFound("no row")
}

func newTestService(repo *fakeRepository) *issue.Service {
	return issue.NewService(repo, slog.New(slog.DiscardHandler))
}

func TestGetIssue_EmptyRowsIsNotFound(t *testing.T) {
	service := newTestService(&fakeRepository{articleRows: map[int][]*issue.ArticleRow{}})

	_, err := service.GetIssue(context.Background(), 5)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "No issue found by that id: 5", ae.Message)
}

func TestGetIssue_TruncatesArticleText(t *testing.T) {
	long := strings.Repeat("x", 300)
	repo := &fakeRepository{articleRows: map[int][]*issue.ArticleRow{
		1: {
			{IssueTitle: "Vol 1", ArticleID: pointer.To(10), Text: &long},
			{IssueTitle: "Vol 1", ArticleID: nil, Text: nil},
		},
	}}
	service := newTestService(repo)

	rows, err := service.GetIssue(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.NotNil(t, rows[0].Text)
	assert.Equal(t, strings.Repeat("x", 200)+"...", *rows[0].Text)
	assert.Nil(t, rows[1].Text)
}

func TestGetCurrentIssue_NoneYet(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.GetCurrentIssue(context.Background())
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "No issues have been published yet", ae.Message)
}

func TestCreateIssue(t *testing.T) {
	repo := &fakeRepository{issues: map[int]*issue.Issue{}}
	service := newTestService(repo)

	t.Run("valid", func(t *testing.T) {
		created, err := service.CreateIssue(context.Background(), &issue.CreateInput{
			IssueTitle: "Summer Special",
			Volume:     2,
			IssueNum:   7,
		})
		require.NoError(t, err)
		assert.Equal(t, "Summer Special", created.IssueTitle)
		assert.False(t, created.PubDate.IsZero())
	})

	t.Run("duplicate_title", func(t *testing.T) {
		repo.issues[1] = &issue.Issue{ID: 1, IssueTitle: "Taken"}

		_, err := service.CreateIssue(context.Background(), &issue.CreateInput{
			IssueTitle: "Taken",
			Volume:     1,
			IssueNum:   1,
		})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "Duplicate issue title: Taken", ae.Message)
	})

	t.Run("nonpositive_volume", func(t *testing.T) {
		_, err := service.CreateIssue(context.Background(), &issue.CreateInput{
			IssueTitle: "Bad Volume",
			Volume:     0,
			IssueNum:   1,
		})
		assert.Error(t, err)
	})
}

func TestUpdateIssue_ZeroValuesKeepStored(t *testing.T) {
	pubDate := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepository{issues: map[int]*issue.Issue{
		1: {ID: 1, IssueTitle: "Original", Volume: 3, IssueNum: 4, PubDate: pubDate},
	}}
	service := newTestService(repo)

	updated, err := service.UpdateIssue(context.Background(), 1, &issue.UpdateInput{
		IssueNum: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, "Original", updated.IssueTitle)
	assert.Equal(t, 3, updated.Volume)
	assert.Equal(t, 5, updated.IssueNum)
	assert.Equal(t, pubDate, updated.PubDate)
}

func TestUpdateIssue_NotFound(t *testing.T) {
	service := newTestService(&fakeRepository{issues: map[int]*issue.Issue{}})

	_, err := service.UpdateIssue(context.Background(), 8, &issue.UpdateInput{})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "No issue by that id: 8", ae.Message)
}

func TestDeleteIssue_EchoesDeletedRow(t *testing.T) {
	repo := &fakeRepository{issues: map[int]*issue.Issue{
		1: {ID: 1, IssueTitle: "Doomed", Volume: 1, IssueNum: 1},
	}}
	service := newTestService(repo)

	deleted, err := service.DeleteIssue(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Doomed", deleted.IssueTitle)

	_, err = service.DeleteIssue(context.Background(), 1)
	assert.Error(t, err)
}
