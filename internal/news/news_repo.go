package news

import (
	"context"

	"gorm.io/gorm"

	"newsroom/internal/audit"
	"newsroom/internal/common"
	"newsroom/internal/dbmysql"
)

// AuditEntryFunc builds the audit row for a mutation once the affected news
// item is known. It runs inside the mutation's transaction, so the entry
// commits or rolls back with the rest of the write.
type AuditEntryFunc func(n *dbmysql.News) *dbmysql.AuditLog

type NewsRepository interface {
	// ListPaths returns every slug in use, optionally excluding one item's
	// own slug (excludeID 0 excludes nothing).
	ListPaths(ctx context.Context, excludeID int64) ([]string, error)
	// Create inserts the item, its sections and its interaction aggregate,
	// plus one audit entry, in a single transaction.
	Create(ctx context.Context, n *dbmysql.News, entryFor AuditEntryFunc) error
	// Update rewrites the item's scalar fields and replaces its full section
	// set. entryFor receives the pre-update row for old/new audit metadata.
	Update(ctx context.Context, n *dbmysql.News, entryFor AuditEntryFunc) error
	// UpdateSectionsInPlace patches existing sections keyed by section id
	// without touching the rest of the set.
	UpdateSectionsInPlace(ctx context.Context, newsID int64, sections []dbmysql.Section, entryFor AuditEntryFunc) error
	// Delete removes the item (sections and interaction cascade) and returns
	// the deleted row, sections preloaded, for the caller.
	Delete(ctx context.Context, id int64, entryFor AuditEntryFunc) (*dbmysql.News, error)
	GetByID(ctx context.Context, id int64) (*dbmysql.News, error)
	GetByPath(ctx context.Context, path string) (*dbmysql.News, error)
	// List returns items newest-first; subcategoryID 0 means no filter.
	List(ctx context.Context, subcategoryID int64) ([]dbmysql.News, error)
}

type newsRepository struct {
	db    *gorm.DB
	audit audit.Repository
}

func NewRepository(db *gorm.DB, auditRepo audit.Repository) NewsRepository {
	return &newsRepository{db: db, audit: auditRepo}
}

func (r *newsRepository) ListPaths(ctx context.Context, excludeID int64) ([]string, error) {
	var paths []string
	q := r.db.WithContext(ctx).Model(&dbmysql.News{})
	if excludeID != 0 {
		q = q.Where("news_id <> ?", excludeID)
	}
	err := q.Pluck("path", &paths).Error
	return paths, err
}

func (r *newsRepository) Create(ctx context.Context, n *dbmysql.News, entryFor AuditEntryFunc) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(n).Error; err != nil {
			return err
		}
		return r.audit.Create(ctx, tx, entryFor(n))
	})
	return common.TranslateDBError(err)
}

func (r *newsRepository) Update(ctx context.Context, n *dbmysql.News, entryFor AuditEntryFunc) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var old dbmysql.News
		if err := tx.First(&old, "news_id = ?", n.NewsID).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{
			"title":          n.Title,
			"description":    n.Description,
			"path":           n.Path,
			"thumbnail":      n.Thumbnail,
			"subcategory_id": n.SubcategoryID,
		}
		if err := tx.Model(&dbmysql.News{}).Where("news_id = ?", n.NewsID).Updates(updates).Error; err != nil {
			return err
		}

		// Full section replacement: the old set goes away as a whole and the
		// new ordered set is recreated.
		if err := tx.Where("news_id = ?", n.NewsID).Delete(&dbmysql.Section{}).Error; err != nil {
			return err
		}
		for i := range n.Sections {
			n.Sections[i].SectionID = 0
			n.Sections[i].NewsID = n.NewsID
		}
		if len(n.Sections) > 0 {
			if err := tx.Create(&n.Sections).Error; err != nil {
				return err
			}
		}

		return r.audit.Create(ctx, tx, entryFor(&old))
	})
	return common.TranslateDBError(err)
}

func (r *newsRepository) UpdateSectionsInPlace(ctx context.Context, newsID int64, sections []dbmysql.Section, entryFor AuditEntryFunc) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n dbmysql.News
		if err := tx.First(&n, "news_id = ?", newsID).Error; err != nil {
			return err
		}

		for i := range sections {
			s := &sections[i]
			res := tx.Model(&dbmysql.Section{}).
				Where("section_id = ? AND news_id = ?", s.SectionID, newsID).
				Updates(map[string]interface{}{
					"title":         s.Title,
					"separator":     s.Separator,
					"content_type":  s.ContentType,
					"text_content":  s.TextContent,
					"image_url":     s.ImageURL,
					"image_alt":     s.ImageAlt,
					"image_caption": s.ImageCaption,
				})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		return r.audit.Create(ctx, tx, entryFor(&n))
	})
	return common.TranslateDBError(err)
}

func (r *newsRepository) Delete(ctx context.Context, id int64, entryFor AuditEntryFunc) (*dbmysql.News, error) {
	var deleted dbmysql.News
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("Sections").First(&deleted, "news_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&dbmysql.News{}, "news_id = ?", id).Error; err != nil {
			return err
		}
		return r.audit.Create(ctx, tx, entryFor(&deleted))
	})
	if err != nil {
		return nil, common.TranslateDBError(err)
	}
	return &deleted, nil
}

func (r *newsRepository) GetByID(ctx context.Context, id int64) (*dbmysql.News, error) {
	var n dbmysql.News
	err := r.hydrated(ctx).First(&n, "news_id = ?", id).Error
	if err != nil {
		return nil, common.TranslateDBError(err)
	}
	return &n, nil
}

func (r *newsRepository) GetByPath(ctx context.Context, path string) (*dbmysql.News, error) {
	var n dbmysql.News
	err := r.hydrated(ctx).First(&n, "path = ?", path).Error
	if err != nil {
		return nil, common.TranslateDBError(err)
	}
	return &n, nil
}

func (r *newsRepository) List(ctx context.Context, subcategoryID int64) ([]dbmysql.News, error) {
	var items []dbmysql.News
	q := r.hydrated(ctx).Order("created_at DESC")
	if subcategoryID != 0 {
		q = q.Where("subcategory_id = ?", subcategoryID)
	}
	err := q.Find(&items).Error
	return items, err
}

// hydrated loads every relation the read paths expose: author, subcategory
// with its category, ordered sections, and the interaction with its
// engagement rows.
func (r *newsRepository) hydrated(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("User").
		Preload("Subcategory.Category").
		Preload("Sections", func(db *gorm.DB) *gorm.DB {
			return db.Order("sections.order_index ASC")
		}).
		Preload("Interaction.Comments").
		Preload("Interaction.Likes").
		Preload("Interaction.Bookmarks")
}
