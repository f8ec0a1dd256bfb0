// Package dashboard computes the engagement metrics and activity feed shown
// to administrators.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"newsroom/internal/audit"
	"newsroom/internal/dbmysql"
	"newsroom/internal/identity"
)

// ActivityLimit is how many recent audit entries the feed shows.
const ActivityLimit = 20

// activeNewsWindow is the trailing window for the "active news" count.
const activeNewsWindow = 7 * 24 * time.Hour

// Trend compares today's count against yesterday's.
type Trend struct {
	Today     int64   `json:"today"`
	Yesterday int64   `json:"yesterday"`
	Percent   float64 `json:"percent"`
}

type Stats struct {
	News     Trend `json:"news"`
	Comments Trend `json:"comments"`
	Likes    Trend `json:"likes"`

	TotalNews  int64 `json:"total_news"`
	TotalLikes int64 `json:"total_likes"`
	Readers    int64 `json:"readers"`
	ActiveNews int64 `json:"active_news"`
}

// ActivityEntry is one denormalized audit entry. Profile fields are nil when
// the identity provider lookup for the acting user failed.
type ActivityEntry struct {
	AuditID     int64                 `json:"audit_id"`
	UserID      int64                 `json:"user_id"`
	Action      string                `json:"action"`
	Phrase      string                `json:"phrase"`
	Description string                `json:"description"`
	Metadata    dbmysql.AuditMetadata `json:"metadata"`
	CreatedAt   time.Time             `json:"created_at"`

	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	ImageURL  *string `json:"image_url"`
}

var actionPhrases = map[audit.Action]string{
	audit.ActionNewsCreated:     "published an article",
	audit.ActionNewsUpdated:     "updated an article",
	audit.ActionNewsDeleted:     "deleted an article",
	audit.ActionSectionsUpdated: "edited article sections",
	audit.ActionCommentAdded:    "left a comment",
	audit.ActionCommentDeleted:  "removed a comment",
	audit.ActionLikeAdded:       "liked an article",
	audit.ActionLikeRemoved:     "removed a like",
	audit.ActionBookmarkAdded:   "bookmarked an article",
	audit.ActionBookmarkRemoved: "removed a bookmark",
}

func phraseFor(action string) string {
	if phrase, ok := actionPhrases[audit.Action(action)]; ok {
		return phrase
	}
	return fmt.Sprintf("did %s", strings.ReplaceAll(action, "_", " "))
}

type Service struct {
	repo     StatsRepository
	resolver identity.Resolver
	log      *zap.Logger
	now      func() time.Time
}

func NewService(repo StatsRepository, resolver identity.Resolver, log *zap.Logger) *Service {
	return &Service{repo: repo, resolver: resolver, log: log, now: time.Now}
}

// trendPercent reports day-over-day change. A zero yesterday yields 0 rather
// than a division by zero, so a jump from 0 to N reads as flat.
func trendPercent(today, yesterday int64) float64 {
	if yesterday == 0 {
		return 0
	}
	return float64(today-yesterday) / float64(yesterday) * 100
}

// Stats gathers all dashboard counts. The independent counts run
// concurrently; the result is a best-effort snapshot, not a
// point-in-time-consistent view.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.AddDate(0, 0, 1)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	var (
		stats    Stats
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	count := func(dst *int64, fn func(context.Context) (int64, error)) {
		run(func() error {
			n, err := fn(ctx)
			*dst = n
			return err
		})
	}
	countBetween := func(dst *int64, from, to time.Time, fn func(context.Context, time.Time, time.Time) (int64, error)) {
		run(func() error {
			n, err := fn(ctx, from, to)
			*dst = n
			return err
		})
	}

	countBetween(&stats.News.Today, todayStart, todayEnd, s.repo.CountNewsBetween)
	countBetween(&stats.News.Yesterday, yesterdayStart, todayStart, s.repo.CountNewsBetween)
	countBetween(&stats.Comments.Today, todayStart, todayEnd, s.repo.CountCommentsBetween)
	countBetween(&stats.Comments.Yesterday, yesterdayStart, todayStart, s.repo.CountCommentsBetween)
	countBetween(&stats.Likes.Today, todayStart, todayEnd, s.repo.CountLikesBetween)
	countBetween(&stats.Likes.Yesterday, yesterdayStart, todayStart, s.repo.CountLikesBetween)
	countBetween(&stats.ActiveNews, now.Add(-activeNewsWindow), todayEnd, s.repo.CountNewsBetween)
	count(&stats.TotalNews, s.repo.CountNews)
	count(&stats.TotalLikes, s.repo.CountLikes)
	count(&stats.Readers, s.repo.CountReaders)

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	stats.News.Percent = trendPercent(stats.News.Today, stats.News.Yesterday)
	stats.Comments.Percent = trendPercent(stats.Comments.Today, stats.Comments.Yesterday)
	stats.Likes.Percent = trendPercent(stats.Likes.Today, stats.Likes.Yesterday)

	return &stats, nil
}

// Activity returns the most recent audit entries with the acting user's
// provider profile attached. Profile lookups fan out per entry; a failed
// lookup logs and leaves that entry's profile fields nil instead of failing
// the batch.
func (s *Service) Activity(ctx context.Context) ([]ActivityEntry, error) {
	logs, err := s.repo.RecentAudit(ctx, ActivityLimit)
	if err != nil {
		return nil, err
	}

	entries := make([]ActivityEntry, len(logs))
	var wg sync.WaitGroup
	for i := range logs {
		entry := &logs[i]
		entries[i] = ActivityEntry{
			AuditID:     entry.AuditID,
			UserID:      entry.UserID,
			Action:      entry.Action,
			Phrase:      phraseFor(entry.Action),
			Description: entry.Description,
			Metadata:    entry.Metadata,
			CreatedAt:   entry.CreatedAt,
		}

		wg.Add(1)
		go func(i int, externalID string) {
			defer wg.Done()
			profile, err := s.resolver.ProfileOf(ctx, externalID)
			if err != nil {
				s.log.Warn("profile lookup failed",
					zap.String("external_id", externalID),
					zap.Error(err))
				return
			}
			entries[i].FirstName = &profile.FirstName
			entries[i].LastName = &profile.LastName
			entries[i].ImageURL = &profile.ImageURL
		}(i, entry.User.ExternalID)
	}
	wg.Wait()

	return entries, nil
}
