package dashboard

import (
	"context"
	"time"

	"gorm.io/gorm"

	"newsroom/internal/audit"
	"newsroom/internal/dbmysql"
)

type StatsRepository interface {
	CountNewsBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountCommentsBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountLikesBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountNews(ctx context.Context) (int64, error)
	CountLikes(ctx context.Context) (int64, error)
	// CountReaders counts distinct users who have liked or bookmarked
	// anything.
	CountReaders(ctx context.Context) (int64, error)
	RecentAudit(ctx context.Context, limit int) ([]dbmysql.AuditLog, error)
}

type statsRepository struct {
	db    *gorm.DB
	audit audit.Repository
}

func NewRepository(db *gorm.DB, auditRepo audit.Repository) StatsRepository {
	return &statsRepository{db: db, audit: auditRepo}
}

func (r *statsRepository) CountNewsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbmysql.News{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountCommentsBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Comment{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountLikesBetween(ctx context.Context, from, to time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Like{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Count(&n).Error
	return n, err
}

func (r *statsRepository) CountNews(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbmysql.News{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountLikes(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&dbmysql.Like{}).Count(&n).Error
	return n, err
}

func (r *statsRepository) CountReaders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COUNT(DISTINCT user_interaction_id) FROM (
			SELECT user_interaction_id FROM likes
			UNION
			SELECT user_interaction_id FROM bookmarks
		) AS readers`).Scan(&n).Error
	return n, err
}

func (r *statsRepository) RecentAudit(ctx context.Context, limit int) ([]dbmysql.AuditLog, error) {
	return r.audit.Recent(ctx, limit)
}
