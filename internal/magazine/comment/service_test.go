package comment_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tigerlilly/api/internal/magazine/comment"
	"github.com/tigerlilly/api/internal/platform/apperr"
	"github.com/tigerlilly/api/pkg/pointer"
)

type fakeRepository struct {
	comments  map[int]*comment.Comment
	records   map[int]*comment.Record
	byUser    map[int][]*comment.Comment
	byArticle map[int][]*comment.Comment
	created   *comment.CreateInput
	updated   *comment.Record
}

func (f *fakeRepository) CreateComment(ctx context.Context, in *comment.CreateInput) (*comment.Comment, error) {
	f.created = in
	return &comment.Comment{ID: 1, UserID: in.UserID, ArticleID: in.ArticleID, Text: in.Text, PostDate: time.Now()}, nil
}

func (f *fakeRepository) ListByUser(ctx context.Context, userID int) ([]*comment.Comment, error) {
	return f.byUser[userID], nil
}

func (f *fakeRepository) ListByArticle(ctx context.Context, articleID int) ([]*comment.Comment, error) {
	return f.byArticle[articleID], nil
}

func (f *fakeRepository) GetComment(ctx context.Context, id int) (*comment.Comment, error) {
	if c, ok := f.comments[id]; ok {
		copied := *c
		return &copied, nil
	}
	return nil, apperr.NotFound("no row")
}

func (f *fakeRepository) GetRecord(ctx context.Context, id int) (*comment.Record, error) {
	if rec, ok := f.records[id]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, apperr.NotFound("no row")
}

func (f *fakeRepository) UpdateComment(ctx context.Context, rec *comment.Record) (*comment.Comment, error) {
	f.updated = rec
	return &comment.Comment{ID: rec.ID, UserID: rec.UserID, ArticleID: rec.ArticleID, Text: rec.Text, PostDate: rec.PostDate}, nil
}

func (f *fakeRepository) DeleteComment(ctx context.Context, id int) (*comment.Comment, error) {
	if c, ok := f.comments[id]; ok {
		delete(f.comments, id)
		return c, nil
	}
	return nil, apperr.NotFound("no row")
}

func newTestService(repo *fakeRepository) *comment.Service {
	return comment.NewService(repo, bluemonday.StrictPolicy(), slog.New(slog.DiscardHandler))
}

func TestCreateComment_SanitizesText(t *testing.T) {
	repo := &fakeRepository{}
	service := newTestService(repo)

	created, err := service.CreateComment(context.Background(), &comment.CreateInput{
		UserID:    pointer.To(7),
		ArticleID: pointer.To(3),
		Text:      `Nice article!<script>alert("xss")</script>`,
	})
	require.NoError(t, err)

	assert.NotContains(t, created.Text, "<script>")
	assert.Contains(t, created.Text, "Nice article!")
	require.NotNil(t, repo.created)
	assert.NotContains(t, repo.created.Text, "<script>")
}

func TestCreateComment_RequiresText(t *testing.T) {
	service := newTestService(&fakeRepository{})

	_, err := service.CreateComment(context.Background(), &comment.CreateInput{
		UserID: pointer.To(7),
	})
	assert.Error(t, err)
}

func TestListByUser_EmptyIsNotFound(t *testing.T) {
	service := newTestService(&fakeRepository{byUser: map[int][]*comment.Comment{}})

	_, err := service.ListByUser(context.Background(), 9)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.Status)
	assert.Equal(t, "No comments associated with that user OR user by that id doesn't exist: 9", ae.Message)
}

func TestListByArticle_EmptyIsNotFound(t *testing.T) {
	service := newTestService(&fakeRepository{byArticle: map[int][]*comment.Comment{}})

	_, err := service.ListByArticle(context.Background(), 4)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "No comments associated with that article OR articleId doesn't exist: 4", ae.Message)
}

func TestListByArticle_ReturnsRows(t *testing.T) {
	repo := &fakeRepository{byArticle: map[int][]*comment.Comment{
		4: {
			{ID: 1, ArticleID: pointer.To(4), Text: "first"},
			{ID: 2, ArticleID: pointer.To(4), Text: "second"},
		},
	}}
	service := newTestService(repo)

	comments, err := service.ListByArticle(context.Background(), 4)
	require.NoError(t, err)
	assert.Len(t, comments, 2)
}

func TestUpdateComment_CoalescesAbsentFields(t *testing.T) {
	postDate := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepository{records: map[int]*comment.Record{
		1: {ID: 1, UserID: pointer.To(7), ArticleID: pointer.To(3), Text: "original", PostDate: postDate},
	}}
	service := newTestService(repo)

	_, err := service.UpdateComment(context.Background(), 1, &comment.UpdateInput{
		Text: "edited",
	})
	require.NoError(t, err)

	require.NotNil(t, repo.updated)
	assert.Equal(t, "edited", repo.updated.Text)
	assert.Equal(t, pointer.To(7), repo.updated.UserID)
	assert.Equal(t, pointer.To(3), repo.updated.ArticleID)
	assert.Equal(t, postDate, repo.updated.PostDate)
}

func TestUpdateComment_NotFound(t *testing.T) {
	service := newTestService(&fakeRepository{records: map[int]*comment.Record{}})

	_, err := service.UpdateComment(context.Background(), 12, &comment.UpdateInput{Text: "x"})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "No comment found by that id: 12", ae.Message)
}

func TestDeleteComment_EchoesDeletedRow(t *testing.T) {
	repo := &fakeRepository{comments: map[int]*comment.Comment{
		1: {ID: 1, Text: "doomed"},
	}}
	service := newTestService(repo)

	deleted, err := service.DeleteComment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "doomed", deleted.Text)

	_, err = service.DeleteComment(context.Background(), 1)
	assert.Error(t, err)
}
