package engage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"newsroom/internal/audit"
	"newsroom/internal/common"
	"newsroom/internal/dbmysql"
	"newsroom/internal/identity"
)

type EngageService interface {
	AddComment(ctx context.Context, newsID int64, text string) (*dbmysql.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
	ListCommentsByNews(ctx context.Context, newsID int64) ([]dbmysql.Comment, error)
	// MyComments lists the calling user's comments; unlike the other read
	// paths it requires a session.
	MyComments(ctx context.Context) ([]dbmysql.Comment, error)
	// ToggleLike flips the caller's like on an article and reports whether
	// the like is now present.
	ToggleLike(ctx context.Context, newsID int64) (bool, error)
	ToggleBookmark(ctx context.Context, newsID int64) (bool, error)
}

type engageService struct {
	repo     EngageRepository
	resolver identity.Resolver
	log      *zap.Logger
}

func NewService(repo EngageRepository, resolver identity.Resolver, log *zap.Logger) EngageService {
	return &engageService{repo: repo, resolver: resolver, log: log}
}

func (s *engageService) AddComment(ctx context.Context, newsID int64, text string) (*dbmysql.Comment, error) {
	if err := common.ValidateCommentText(text); err != nil {
		return nil, err
	}
	if newsID == 0 {
		return nil, common.NewValidationError("news reference is required")
	}

	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	entryFor := func(c *dbmysql.Comment) *dbmysql.AuditLog {
		return audit.Entry(actor.ID, audit.ActionCommentAdded,
			fmt.Sprintf("commented on news %d", newsID),
			dbmysql.AuditMetadata{
				"news_id":    newsID,
				"comment_id": c.CommentID,
			})
	}
	comment, err := s.repo.AddComment(ctx, actor.ID, newsID, text, entryFor)
	if err != nil {
		return nil, err
	}

	s.log.Info("comment added", zap.Int64("news_id", newsID), zap.Int64("comment_id", comment.CommentID))
	return comment, nil
}

func (s *engageService) DeleteComment(ctx context.Context, commentID int64) error {
	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return err
	}

	comment, err := s.repo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.UserInteraction.UserID != actor.ID {
		return fmt.Errorf("comment %d: %w", commentID, common.ErrUnauthorized)
	}

	entry := audit.Entry(actor.ID, audit.ActionCommentDeleted,
		fmt.Sprintf("deleted comment %d", commentID),
		dbmysql.AuditMetadata{
			"news_id":    comment.Interaction.NewsID,
			"comment_id": commentID,
		})
	if err := s.repo.DeleteComment(ctx, comment, entry); err != nil {
		return err
	}

	s.log.Info("comment deleted", zap.Int64("comment_id", commentID))
	return nil
}

func (s *engageService) ListCommentsByNews(ctx context.Context, newsID int64) ([]dbmysql.Comment, error) {
	return s.repo.ListCommentsByNews(ctx, newsID)
}

func (s *engageService) MyComments(ctx context.Context) ([]dbmysql.Comment, error) {
	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListCommentsByUser(ctx, actor.ID)
}

func (s *engageService) ToggleLike(ctx context.Context, newsID int64) (bool, error) {
	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return false, err
	}

	entryFor := func(added bool) *dbmysql.AuditLog {
		action := audit.ActionLikeAdded
		description := fmt.Sprintf("liked news %d", newsID)
		if !added {
			action = audit.ActionLikeRemoved
			description = fmt.Sprintf("unliked news %d", newsID)
		}
		return audit.Entry(actor.ID, action, description, dbmysql.AuditMetadata{"news_id": newsID})
	}
	return s.repo.ToggleLike(ctx, actor.ID, newsID, entryFor)
}

func (s *engageService) ToggleBookmark(ctx context.Context, newsID int64) (bool, error) {
	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return false, err
	}

	entryFor := func(added bool) *dbmysql.AuditLog {
		action := audit.ActionBookmarkAdded
		description := fmt.Sprintf("bookmarked news %d", newsID)
		if !added {
			action = audit.ActionBookmarkRemoved
			description = fmt.Sprintf("removed bookmark from news %d", newsID)
		}
		return audit.Entry(actor.ID, action, description, dbmysql.AuditMetadata{"news_id": newsID})
	}
	return s.repo.ToggleBookmark(ctx, actor.ID, newsID, entryFor)
}
