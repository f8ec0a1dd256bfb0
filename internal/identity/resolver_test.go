package identity

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"newsroom/internal/common"
	"newsroom/internal/config"
	"newsroom/internal/dbmysql"
)

type fakeUserRepo struct {
	byExternal map[string]*dbmysql.User
	nextID     int64

	// conflict simulates losing the provisioning race: Create fails with a
	// conflict after the winner's row has landed.
	conflict bool
	created  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byExternal: map[string]*dbmysql.User{}, nextID: 1}
}

func (r *fakeUserRepo) GetByExternalID(ctx context.Context, externalID string) (*dbmysql.User, error) {
	if u, ok := r.byExternal[externalID]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, fmt.Errorf("user %s: %w", externalID, common.ErrNotFound)
}

func (r *fakeUserRepo) CreateWithInteraction(ctx context.Context, user *dbmysql.User) error {
	r.created++
	if r.conflict {
		winner := &dbmysql.User{UserID: r.nextID, ExternalID: user.ExternalID, Role: dbmysql.RoleMember}
		r.byExternal[user.ExternalID] = winner
		r.nextID++
		return fmt.Errorf("insert user: %w", common.ErrConflict)
	}
	user.UserID = r.nextID
	r.nextID++
	cp := *user
	r.byExternal[user.ExternalID] = &cp
	return nil
}

func sessionCtx(externalID, role string) context.Context {
	return WithClaims(context.Background(), &Claims{
		Role:             role,
		RegisteredClaims: jwt.RegisteredClaims{Subject: externalID},
	})
}

func newTestResolver(users UserRepository, cfg *config.Config) Resolver {
	if cfg == nil {
		cfg = &config.Config{}
	}
	return NewResolver(users, cfg, zap.NewNop())
}

func TestCurrentUser_NoSession(t *testing.T) {
	r := newTestResolver(newFakeUserRepo(), nil)

	_, err := r.CurrentUser(context.Background())
	require.ErrorIs(t, err, common.ErrUnauthenticated)

	_, err = r.CurrentUser(sessionCtx("", ""))
	require.ErrorIs(t, err, common.ErrUnauthenticated)
}

func TestCurrentUser_ExistingUser(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byExternal["ext-42"] = &dbmysql.User{UserID: 7, ExternalID: "ext-42", Role: dbmysql.RoleAdmin}
	r := newTestResolver(repo, nil)

	user, err := r.CurrentUser(sessionCtx("ext-42", dbmysql.RoleAdmin))
	require.NoError(t, err)
	assert.EqualValues(t, 7, user.ID)
	assert.Equal(t, dbmysql.RoleAdmin, user.Role)
	assert.Zero(t, repo.created, "existing user must not be re-provisioned")
}

func TestCurrentUser_ProvisionsOnFirstContact(t *testing.T) {
	repo := newFakeUserRepo()
	r := newTestResolver(repo, nil)

	user, err := r.CurrentUser(sessionCtx("ext-new", ""))
	require.NoError(t, err)
	assert.Equal(t, "ext-new", user.ExternalID)
	assert.Equal(t, dbmysql.RoleMember, user.Role, "empty claim role defaults to member")
	assert.Equal(t, 1, repo.created)
	require.Contains(t, repo.byExternal, "ext-new")
}

func TestCurrentUser_ProvisionRaceRereads(t *testing.T) {
	repo := newFakeUserRepo()
	repo.conflict = true
	r := newTestResolver(repo, nil)

	user, err := r.CurrentUser(sessionCtx("ext-race", dbmysql.RoleMember))
	require.NoError(t, err)
	assert.Equal(t, "ext-race", user.ExternalID)
	assert.NotZero(t, user.ID, "loser of the race resolves to the winner's row")
}

func TestProfileOf(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/ext-42", r.URL.Path)
		assert.Equal(t, "Bearer svc-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"firstName":"Ada","lastName":"Lovelace","imageUrl":"https://img/ada"}`)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Identity.BaseURL = srv.URL
	cfg.Identity.ServiceToken = "svc-token"
	r := newTestResolver(newFakeUserRepo(), cfg)

	profile, err := r.ProfileOf(context.Background(), "ext-42")
	require.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)
	assert.Equal(t, "Lovelace", profile.LastName)
	assert.Equal(t, "https://img/ada", profile.ImageURL)
}

func TestProfileOf_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Identity.BaseURL = srv.URL
	r := newTestResolver(newFakeUserRepo(), cfg)

	_, err := r.ProfileOf(context.Background(), "ext-missing")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestProfileOf_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := &config.Config{}
	cfg.Identity.BaseURL = srv.URL
	r := newTestResolver(newFakeUserRepo(), cfg)

	_, err := r.ProfileOf(context.Background(), "ext-42")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}
