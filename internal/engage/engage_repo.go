package engage

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"newsroom/internal/audit"
	"newsroom/internal/common"
	"newsroom/internal/dbmysql"
)

// ScoreStep is the amount every engagement event moves the popularity and
// contribution scores, symmetrically on create and delete. The scores
// therefore always equal ScoreStep times the live engagement count.
const ScoreStep = 2

// CommentEntryFunc builds the audit row for a comment mutation inside its
// transaction.
type CommentEntryFunc func(c *dbmysql.Comment) *dbmysql.AuditLog

// ToggleEntryFunc builds the audit row for a like/bookmark toggle; added
// reports which way the toggle went.
type ToggleEntryFunc func(added bool) *dbmysql.AuditLog

type EngageRepository interface {
	// AddComment inserts the comment and moves both scores by +ScoreStep in
	// one transaction. Fails with a not-found error when either aggregate
	// row is missing.
	AddComment(ctx context.Context, userID, newsID int64, text string, entryFor CommentEntryFunc) (*dbmysql.Comment, error)
	// GetComment loads the comment with its owning interaction/news and
	// user-interaction/user, for authorization and display.
	GetComment(ctx context.Context, commentID int64) (*dbmysql.Comment, error)
	// DeleteComment removes the comment and moves both scores by -ScoreStep
	// in one transaction.
	DeleteComment(ctx context.Context, c *dbmysql.Comment, entry *dbmysql.AuditLog) error
	ListCommentsByNews(ctx context.Context, newsID int64) ([]dbmysql.Comment, error)
	ListCommentsByUser(ctx context.Context, userID int64) ([]dbmysql.Comment, error)
	ToggleLike(ctx context.Context, userID, newsID int64, entryFor ToggleEntryFunc) (bool, error)
	ToggleBookmark(ctx context.Context, userID, newsID int64, entryFor ToggleEntryFunc) (bool, error)
}

type engageRepository struct {
	db    *gorm.DB
	audit audit.Repository
}

func NewRepository(db *gorm.DB, auditRepo audit.Repository) EngageRepository {
	return &engageRepository{db: db, audit: auditRepo}
}

// aggregates loads the article-side and user-side aggregate rows inside the
// caller's transaction. Both must already exist: they are created with the
// article and the user respectively.
func aggregates(tx *gorm.DB, userID, newsID int64) (*dbmysql.Interaction, *dbmysql.UserInteraction, error) {
	var inter dbmysql.Interaction
	if err := tx.Where("news_id = ?", newsID).First(&inter).Error; err != nil {
		return nil, nil, err
	}
	var userInter dbmysql.UserInteraction
	if err := tx.Where("user_id = ?", userID).First(&userInter).Error; err != nil {
		return nil, nil, err
	}
	return &inter, &userInter, nil
}

func adjustScores(tx *gorm.DB, interactionID, userInteractionID int64, delta int) error {
	err := tx.Model(&dbmysql.Interaction{}).
		Where("interaction_id = ?", interactionID).
		UpdateColumn("popularity_score", gorm.Expr("popularity_score + ?", delta)).Error
	if err != nil {
		return err
	}
	return tx.Model(&dbmysql.UserInteraction{}).
		Where("user_interaction_id = ?", userInteractionID).
		UpdateColumn("contribution_score", gorm.Expr("contribution_score + ?", delta)).Error
}

func (r *engageRepository) AddComment(ctx context.Context, userID, newsID int64, text string, entryFor CommentEntryFunc) (*dbmysql.Comment, error) {
	var comment *dbmysql.Comment
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inter, userInter, err := aggregates(tx, userID, newsID)
		if err != nil {
			return err
		}

		c := &dbmysql.Comment{
			Text:              text,
			InteractionID:     inter.InteractionID,
			UserInteractionID: userInter.UserInteractionID,
		}
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if err := adjustScores(tx, inter.InteractionID, userInter.UserInteractionID, ScoreStep); err != nil {
			return err
		}

		comment = c
		return r.audit.Create(ctx, tx, entryFor(c))
	})
	if err != nil {
		return nil, common.TranslateDBError(err)
	}
	return comment, nil
}

func (r *engageRepository) GetComment(ctx context.Context, commentID int64) (*dbmysql.Comment, error) {
	var c dbmysql.Comment
	err := r.db.WithContext(ctx).
		Preload("Interaction.News").
		Preload("UserInteraction.User").
		First(&c, "comment_id = ?", commentID).Error
	if err != nil {
		return nil, common.TranslateDBError(err)
	}
	return &c, nil
}

func (r *engageRepository) DeleteComment(ctx context.Context, c *dbmysql.Comment, entry *dbmysql.AuditLog) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&dbmysql.Comment{}, "comment_id = ?", c.CommentID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		if err := adjustScores(tx, c.InteractionID, c.UserInteractionID, -ScoreStep); err != nil {
			return err
		}
		return r.audit.Create(ctx, tx, entry)
	})
	return common.TranslateDBError(err)
}

func (r *engageRepository) ListCommentsByNews(ctx context.Context, newsID int64) ([]dbmysql.Comment, error) {
	var inter dbmysql.Interaction
	err := r.db.WithContext(ctx).Where("news_id = ?", newsID).First(&inter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []dbmysql.Comment{}, nil
	}
	if err != nil {
		return nil, err
	}

	var comments []dbmysql.Comment
	err = r.db.WithContext(ctx).
		Where("interaction_id = ?", inter.InteractionID).
		Preload("UserInteraction.User").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *engageRepository) ListCommentsByUser(ctx context.Context, userID int64) ([]dbmysql.Comment, error) {
	var userInter dbmysql.UserInteraction
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&userInter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []dbmysql.Comment{}, nil
	}
	if err != nil {
		return nil, err
	}

	var comments []dbmysql.Comment
	err = r.db.WithContext(ctx).
		Where("user_interaction_id = ?", userInter.UserInteractionID).
		Preload("Interaction.News").
		Order("created_at DESC").
		Find(&comments).Error
	return comments, err
}

func (r *engageRepository) ToggleLike(ctx context.Context, userID, newsID int64, entryFor ToggleEntryFunc) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inter, userInter, err := aggregates(tx, userID, newsID)
		if err != nil {
			return err
		}

		var existing dbmysql.Like
		err = tx.Where("interaction_id = ? AND user_interaction_id = ?",
			inter.InteractionID, userInter.UserInteractionID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := adjustScores(tx, inter.InteractionID, userInter.UserInteractionID, -ScoreStep); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			like := dbmysql.Like{
				InteractionID:     inter.InteractionID,
				UserInteractionID: userInter.UserInteractionID,
			}
			if err := tx.Create(&like).Error; err != nil {
				return err
			}
			if err := adjustScores(tx, inter.InteractionID, userInter.UserInteractionID, ScoreStep); err != nil {
				return err
			}
			added = true
		default:
			return err
		}

		return r.audit.Create(ctx, tx, entryFor(added))
	})
	if err != nil {
		return false, common.TranslateDBError(err)
	}
	return added, nil
}

func (r *engageRepository) ToggleBookmark(ctx context.Context, userID, newsID int64, entryFor ToggleEntryFunc) (bool, error) {
	var added bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inter, userInter, err := aggregates(tx, userID, newsID)
		if err != nil {
			return err
		}

		var existing dbmysql.Bookmark
		err = tx.Where("interaction_id = ? AND user_interaction_id = ?",
			inter.InteractionID, userInter.UserInteractionID).First(&existing).Error
		switch {
		case err == nil:
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
			if err := adjustScores(tx, inter.InteractionID, userInter.UserInteractionID, -ScoreStep); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			bookmark := dbmysql.Bookmark{
				InteractionID:     inter.InteractionID,
				UserInteractionID: userInter.UserInteractionID,
			}
			if err := tx.Create(&bookmark).Error; err != nil {
				return err
			}
			if err := adjustScores(tx, inter.InteractionID, userInter.UserInteractionID, ScoreStep); err != nil {
				return err
			}
			added = true
		default:
			return err
		}

		return r.audit.Create(ctx, tx, entryFor(added))
	})
	if err != nil {
		return false, common.TranslateDBError(err)
	}
	return added, nil
}
