// Package identity maps external auth sessions to internal user records and
// resolves provider-side profile data.
package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"newsroom/internal/common"
	"newsroom/internal/config"
	"newsroom/internal/dbmysql"
)

// User is the internal view of the authenticated caller.
type User struct {
	ID         int64
	ExternalID string
	Role       string
}

// Profile carries the provider-side display fields for a user.
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	ImageURL  string `json:"imageUrl"`
}

type Resolver interface {
	// CurrentUser resolves the request session to an internal user record,
	// provisioning the row (and its UserInteraction) on first contact.
	CurrentUser(ctx context.Context) (*User, error)
	// ProfileOf fetches display fields for an external user id from the
	// identity provider.
	ProfileOf(ctx context.Context, externalID string) (*Profile, error)
}

type resolver struct {
	users  UserRepository
	client *http.Client
	cfg    *config.Config
	log    *zap.Logger
}

func NewResolver(users UserRepository, cfg *config.Config, log *zap.Logger) Resolver {
	return &resolver{
		users:  users,
		client: &http.Client{Timeout: 5 * time.Second},
		cfg:    cfg,
		log:    log,
	}
}

func (r *resolver) CurrentUser(ctx context.Context) (*User, error) {
	claims := ClaimsFrom(ctx)
	if claims == nil || claims.Subject == "" {
		return nil, common.ErrUnauthenticated
	}

	user, err := r.users.GetByExternalID(ctx, claims.Subject)
	if errors.Is(err, common.ErrNotFound) {
		user, err = r.provision(ctx, claims)
	}
	if err != nil {
		return nil, err
	}

	return &User{ID: user.UserID, ExternalID: user.ExternalID, Role: user.Role}, nil
}

// provision creates the internal row for a session seen for the first time.
// A concurrent first request can win the insert; the unique external_id
// constraint turns the loser into a re-read.
func (r *resolver) provision(ctx context.Context, claims *Claims) (*dbmysql.User, error) {
	role := claims.Role
	if role == "" {
		role = dbmysql.RoleMember
	}

	user := &dbmysql.User{ExternalID: claims.Subject, Role: role}
	err := r.users.CreateWithInteraction(ctx, user)
	if errors.Is(err, common.ErrConflict) {
		return r.users.GetByExternalID(ctx, claims.Subject)
	}
	if err != nil {
		return nil, err
	}

	r.log.Info("provisioned user", zap.String("external_id", user.ExternalID), zap.Int64("user_id", user.UserID))
	return user, nil
}

func (r *resolver) ProfileOf(ctx context.Context, externalID string) (*Profile, error) {
	url := fmt.Sprintf("%s/users/%s", r.cfg.Identity.BaseURL, externalID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", err)
	}
	if r.cfg.Identity.ServiceToken != "" {
		req.Header.Set("Authorization", "Bearer "+r.cfg.Identity.ServiceToken)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("identity provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("profile %s: %w", externalID, common.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("identity provider returned %d", resp.StatusCode)
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	return &profile, nil
}
