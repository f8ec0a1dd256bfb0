package httpapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"newsroom/internal/common"
	"newsroom/internal/config"
	"newsroom/internal/dashboard"
	"newsroom/internal/dbmysql"
	"newsroom/internal/engage"
	"newsroom/internal/identity"
	"newsroom/internal/news"
)

type stubNews struct {
	item  *dbmysql.News
	items []dbmysql.News
	err   error
}

func (s *stubNews) Create(ctx context.Context, in news.CreateNewsInput) (*dbmysql.News, error) {
	return s.item, s.err
}

func (s *stubNews) Update(ctx context.Context, id int64, in news.UpdateNewsInput) (*dbmysql.News, error) {
	return s.item, s.err
}

func (s *stubNews) UpdateSections(ctx context.Context, id int64, patches []news.SectionPatch) (*dbmysql.News, error) {
	return s.item, s.err
}

func (s *stubNews) Delete(ctx context.Context, id int64) error { return s.err }

func (s *stubNews) GetByID(ctx context.Context, id int64) (*dbmysql.News, error) {
	return s.item, s.err
}

func (s *stubNews) GetByPath(ctx context.Context, path string) (*dbmysql.News, error) {
	return s.item, s.err
}

func (s *stubNews) List(ctx context.Context, subcategoryID int64) ([]dbmysql.News, error) {
	return s.items, s.err
}

type stubEngage struct {
	comment  *dbmysql.Comment
	comments []dbmysql.Comment
	added    bool
	err      error
}

func (s *stubEngage) AddComment(ctx context.Context, newsID int64, text string) (*dbmysql.Comment, error) {
	return s.comment, s.err
}

func (s *stubEngage) DeleteComment(ctx context.Context, commentID int64) error { return s.err }

func (s *stubEngage) ListCommentsByNews(ctx context.Context, newsID int64) ([]dbmysql.Comment, error) {
	return s.comments, s.err
}

func (s *stubEngage) MyComments(ctx context.Context) ([]dbmysql.Comment, error) {
	return s.comments, s.err
}

func (s *stubEngage) ToggleLike(ctx context.Context, newsID int64) (bool, error) {
	return s.added, s.err
}

func (s *stubEngage) ToggleBookmark(ctx context.Context, newsID int64) (bool, error) {
	return s.added, s.err
}

type stubResolver struct {
	user *identity.User
	err  error
}

func (s *stubResolver) CurrentUser(ctx context.Context) (*identity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func (s *stubResolver) ProfileOf(ctx context.Context, externalID string) (*identity.Profile, error) {
	return &identity.Profile{}, nil
}

type stubStatsRepo struct{}

func (stubStatsRepo) CountNewsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 1, nil
}

func (stubStatsRepo) CountCommentsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 2, nil
}

func (stubStatsRepo) CountLikesBetween(ctx context.Context, from, to time.Time) (int64, error) {
	return 3, nil
}

func (stubStatsRepo) CountNews(ctx context.Context) (int64, error)    { return 10, nil }
func (stubStatsRepo) CountLikes(ctx context.Context) (int64, error)   { return 20, nil }
func (stubStatsRepo) CountReaders(ctx context.Context) (int64, error) { return 5, nil }

func (stubStatsRepo) RecentAudit(ctx context.Context, limit int) ([]dbmysql.AuditLog, error) {
	return nil, nil
}

func newTestRouter(newsSvc news.NewsService, engageSvc engage.EngageService, resolver identity.Resolver) http.Handler {
	cfg := &config.Config{}
	cfg.Identity.JWTSecret = "secret"
	dash := dashboard.NewService(stubStatsRepo{}, resolver, zap.NewNop())
	return NewRouter(newsSvc, engageSvc, dash, resolver, cfg, zap.NewNop())
}

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h := newTestRouter(&stubNews{}, &stubEngage{}, &stubResolver{})
	rec := doRequest(h, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "validation", err: common.NewValidationError("bad input"), wantStatus: http.StatusBadRequest},
		{name: "unauthenticated", err: common.ErrUnauthenticated, wantStatus: http.StatusUnauthorized},
		{name: "unauthorized", err: common.ErrUnauthorized, wantStatus: http.StatusForbidden},
		{name: "not found", err: common.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "conflict", err: common.ErrConflict, wantStatus: http.StatusConflict},
		{name: "unknown", err: errors.New("db exploded"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestRouter(&stubNews{err: tc.err}, &stubEngage{}, &stubResolver{})
			rec := doRequest(h, http.MethodGet, "/news/5", "")

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusInternalServerError {
				// Internal details never reach the client.
				assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
				assert.NotContains(t, rec.Body.String(), "db exploded")
			}
		})
	}
}

func TestCreateNews(t *testing.T) {
	item := &dbmysql.News{NewsID: 1, Title: "Breaking", Path: "breaking"}
	h := newTestRouter(&stubNews{item: item}, &stubEngage{}, &stubResolver{})

	rec := doRequest(h, http.MethodPost, "/news", `{"title":"Breaking","subcategory_id":3}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"path":"breaking"`)
}

func TestCreateNews_BadJSON(t *testing.T) {
	h := newTestRouter(&stubNews{}, &stubEngage{}, &stubResolver{})

	rec := doRequest(h, http.MethodPost, "/news", `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListNews_BadSubcategoryFilter(t *testing.T) {
	h := newTestRouter(&stubNews{}, &stubEngage{}, &stubResolver{})

	rec := doRequest(h, http.MethodGet, "/news?subcategory_id=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNews_NonNumericIDDoesNotRoute(t *testing.T) {
	h := newTestRouter(&stubNews{}, &stubEngage{}, &stubResolver{})

	rec := doRequest(h, http.MethodGet, "/news/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteNews(t *testing.T) {
	h := newTestRouter(&stubNews{}, &stubEngage{}, &stubResolver{})

	rec := doRequest(h, http.MethodDelete, "/news/5", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestToggleLike(t *testing.T) {
	h := newTestRouter(&stubNews{}, &stubEngage{added: true}, &stubResolver{})

	rec := doRequest(h, http.MethodPost, "/news/5/like", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"liked":true}`, rec.Body.String())
}

func TestToggleBookmark(t *testing.T) {
	h := newTestRouter(&stubNews{}, &stubEngage{}, &stubResolver{})

	rec := doRequest(h, http.MethodPost, "/news/5/bookmark", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"bookmarked":false}`, rec.Body.String())
}

func TestAddComment(t *testing.T) {
	comment := &dbmysql.Comment{CommentID: 77, Text: "nice"}
	h := newTestRouter(&stubNews{}, &stubEngage{comment: comment}, &stubResolver{})

	rec := doRequest(h, http.MethodPost, "/news/5/comments", `{"text":"nice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"comment_id":77`)
}

func TestDashboard_Authorization(t *testing.T) {
	tests := []struct {
		name       string
		resolver   *stubResolver
		wantStatus int
	}{
		{
			name:       "no session",
			resolver:   &stubResolver{err: common.ErrUnauthenticated},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "member is rejected",
			resolver:   &stubResolver{user: &identity.User{ID: 9, Role: dbmysql.RoleMember}},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin passes",
			resolver:   &stubResolver{user: &identity.User{ID: 1, Role: dbmysql.RoleAdmin}},
			wantStatus: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newTestRouter(&stubNews{}, &stubEngage{}, tc.resolver)

			for _, target := range []string{"/dashboard/stats", "/dashboard/activity"} {
				rec := doRequest(h, http.MethodGet, target, "")
				assert.Equal(t, tc.wantStatus, rec.Code, target)
			}
		})
	}
}

func TestDashboardStats_Body(t *testing.T) {
	admin := &stubResolver{user: &identity.User{ID: 1, Role: dbmysql.RoleAdmin}}
	h := newTestRouter(&stubNews{}, &stubEngage{}, admin)

	rec := doRequest(h, http.MethodGet, "/dashboard/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total_news":10`)
	assert.Contains(t, rec.Body.String(), `"readers":5`)
}
