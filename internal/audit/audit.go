// Package audit records every notable mutation as an append-only log entry.
package audit

import (
	"context"

	"gorm.io/gorm"

	"newsroom/internal/dbmysql"
)

// Action enumerates the mutation kinds an audit entry can describe.
type Action string

const (
	ActionNewsCreated     Action = "news_created"
	ActionNewsUpdated     Action = "news_updated"
	ActionNewsDeleted     Action = "news_deleted"
	ActionSectionsUpdated Action = "sections_updated"
	ActionCommentAdded    Action = "comment_added"
	ActionCommentDeleted  Action = "comment_deleted"
	ActionLikeAdded       Action = "like_added"
	ActionLikeRemoved     Action = "like_removed"
	ActionBookmarkAdded   Action = "bookmark_added"
	ActionBookmarkRemoved Action = "bookmark_removed"
)

type Repository interface {
	// Create appends an entry using the caller's transaction handle so the
	// entry commits or rolls back with the mutation it describes.
	Create(ctx context.Context, tx *gorm.DB, entry *dbmysql.AuditLog) error
	// Recent returns the newest entries first, acting user preloaded.
	Recent(ctx context.Context, limit int) ([]dbmysql.AuditLog, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, tx *gorm.DB, entry *dbmysql.AuditLog) error {
	return tx.WithContext(ctx).Create(entry).Error
}

func (r *auditRepository) Recent(ctx context.Context, limit int) ([]dbmysql.AuditLog, error) {
	var entries []dbmysql.AuditLog
	err := r.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// Entry builds an audit row for the given actor and action.
func Entry(userID int64, action Action, description string, metadata dbmysql.AuditMetadata) *dbmysql.AuditLog {
	return &dbmysql.AuditLog{
		UserID:      userID,
		Action:      string(action),
		Description: description,
		Metadata:    metadata,
	}
}
