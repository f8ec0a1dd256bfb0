package news

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"newsroom/internal/audit"
	"newsroom/internal/common"
	"newsroom/internal/dbmysql"
	"newsroom/internal/identity"
	"newsroom/internal/slug"
)

// SectionInput is one block of the article body. Type selects which payload
// fields apply.
type SectionInput struct {
	Title        string `json:"title"`
	Separator    bool   `json:"separator"`
	Type         string `json:"type"`
	Text         string `json:"text"`
	ImageURL     string `json:"image_url"`
	ImageAlt     string `json:"image_alt"`
	ImageCaption string `json:"image_caption"`
}

type CreateNewsInput struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Thumbnail     string         `json:"thumbnail"`
	SubcategoryID int64          `json:"subcategory_id"`
	Sections      []SectionInput `json:"sections"`
}

type UpdateNewsInput = CreateNewsInput

// SectionPatch updates one existing section in place, keyed by its id.
type SectionPatch struct {
	SectionID int64 `json:"section_id"`
	SectionInput
}

type NewsService interface {
	Create(ctx context.Context, in CreateNewsInput) (*dbmysql.News, error)
	Update(ctx context.Context, id int64, in UpdateNewsInput) (*dbmysql.News, error)
	UpdateSections(ctx context.Context, id int64, patches []SectionPatch) (*dbmysql.News, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*dbmysql.News, error)
	GetByPath(ctx context.Context, path string) (*dbmysql.News, error)
	List(ctx context.Context, subcategoryID int64) ([]dbmysql.News, error)
}

type newsService struct {
	repo     NewsRepository
	resolver identity.Resolver
	log      *zap.Logger
}

func NewService(repo NewsRepository, resolver identity.Resolver, log *zap.Logger) NewsService {
	return &newsService{repo: repo, resolver: resolver, log: log}
}

func (s *newsService) Create(ctx context.Context, in CreateNewsInput) (*dbmysql.News, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	sections, err := buildSections(in.Sections)
	if err != nil {
		return nil, err
	}

	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	paths, err := s.repo.ListPaths(ctx, 0)
	if err != nil {
		return nil, err
	}
	path := slug.NewGenerator(paths).Generate(in.Title)

	n := &dbmysql.News{
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Path:          path,
		Thumbnail:     in.Thumbnail,
		UserID:        actor.ID,
		SubcategoryID: in.SubcategoryID,
		Sections:      sections,
		Interaction:   &dbmysql.Interaction{},
	}

	entryFor := func(created *dbmysql.News) *dbmysql.AuditLog {
		return audit.Entry(actor.ID, audit.ActionNewsCreated,
			fmt.Sprintf("created news %q", created.Title),
			dbmysql.AuditMetadata{
				"news_id":       created.NewsID,
				"path":          created.Path,
				"title":         created.Title,
				"section_count": len(created.Sections),
			})
	}
	if err := s.repo.Create(ctx, n, entryFor); err != nil {
		return nil, err
	}

	s.log.Info("news created", zap.Int64("news_id", n.NewsID), zap.String("path", n.Path))
	return s.repo.GetByID(ctx, n.NewsID)
}

func (s *newsService) Update(ctx context.Context, id int64, in UpdateNewsInput) (*dbmysql.News, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	sections, err := buildSections(in.Sections)
	if err != nil {
		return nil, err
	}

	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, id); err != nil {
		return nil, err
	}

	// The item's own slug leaves the collision set so an unchanged title
	// keeps its slug instead of picking up a spurious suffix.
	paths, err := s.repo.ListPaths(ctx, id)
	if err != nil {
		return nil, err
	}
	path := slug.NewGenerator(paths).Generate(in.Title)

	n := &dbmysql.News{
		NewsID:        id,
		Title:         strings.TrimSpace(in.Title),
		Description:   in.Description,
		Path:          path,
		Thumbnail:     in.Thumbnail,
		SubcategoryID: in.SubcategoryID,
		Sections:      sections,
	}

	entryFor := func(old *dbmysql.News) *dbmysql.AuditLog {
		return audit.Entry(actor.ID, audit.ActionNewsUpdated,
			fmt.Sprintf("updated news %q", n.Title),
			dbmysql.AuditMetadata{
				"news_id":   id,
				"old_title": old.Title,
				"new_title": n.Title,
				"old_path":  old.Path,
				"new_path":  n.Path,
			})
	}
	if err := s.repo.Update(ctx, n, entryFor); err != nil {
		return nil, err
	}

	s.log.Info("news updated", zap.Int64("news_id", id), zap.String("path", path))
	return s.repo.GetByID(ctx, id)
}

func (s *newsService) UpdateSections(ctx context.Context, id int64, patches []SectionPatch) (*dbmysql.News, error) {
	if len(patches) == 0 {
		return nil, common.NewValidationError("at least one section is required")
	}

	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, actor, id); err != nil {
		return nil, err
	}

	sections := make([]dbmysql.Section, 0, len(patches))
	for i, p := range patches {
		if p.SectionID == 0 {
			return nil, common.NewValidationError("section %d: section_id is required", i)
		}
		built, err := buildSection(i, p.SectionInput)
		if err != nil {
			return nil, err
		}
		built.SectionID = p.SectionID
		sections = append(sections, built)
	}

	entryFor := func(n *dbmysql.News) *dbmysql.AuditLog {
		return audit.Entry(actor.ID, audit.ActionSectionsUpdated,
			fmt.Sprintf("updated %d sections of %q", len(sections), n.Title),
			dbmysql.AuditMetadata{
				"news_id":       id,
				"section_count": len(sections),
			})
	}
	if err := s.repo.UpdateSectionsInPlace(ctx, id, sections, entryFor); err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, id)
}

func (s *newsService) Delete(ctx context.Context, id int64) error {
	actor, err := s.resolver.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, actor, id); err != nil {
		return err
	}

	entryFor := func(deleted *dbmysql.News) *dbmysql.AuditLog {
		return audit.Entry(actor.ID, audit.ActionNewsDeleted,
			fmt.Sprintf("deleted news %q", deleted.Title),
			dbmysql.AuditMetadata{
				"news_id":       deleted.NewsID,
				"title":         deleted.Title,
				"section_count": len(deleted.Sections),
			})
	}
	deleted, err := s.repo.Delete(ctx, id, entryFor)
	if err != nil {
		return err
	}

	s.log.Info("news deleted", zap.Int64("news_id", deleted.NewsID), zap.String("title", deleted.Title))
	return nil
}

func (s *newsService) GetByID(ctx context.Context, id int64) (*dbmysql.News, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *newsService) GetByPath(ctx context.Context, path string) (*dbmysql.News, error) {
	return s.repo.GetByPath(ctx, path)
}

func (s *newsService) List(ctx context.Context, subcategoryID int64) ([]dbmysql.News, error) {
	return s.repo.List(ctx, subcategoryID)
}

// authorize allows the item's owner and admins through.
func (s *newsService) authorize(ctx context.Context, actor *identity.User, newsID int64) error {
	if actor.Role == dbmysql.RoleAdmin {
		return nil
	}
	existing, err := s.repo.GetByID(ctx, newsID)
	if err != nil {
		return err
	}
	if existing.UserID != actor.ID {
		return fmt.Errorf("news %d: %w", newsID, common.ErrUnauthorized)
	}
	return nil
}

func validateInput(in CreateNewsInput) error {
	if err := common.ValidateTitle(in.Title); err != nil {
		return err
	}
	if err := common.ValidateDescription(in.Description); err != nil {
		return err
	}
	if in.SubcategoryID == 0 {
		return common.NewValidationError("subcategory is required")
	}
	return nil
}

func buildSections(inputs []SectionInput) ([]dbmysql.Section, error) {
	sections := make([]dbmysql.Section, 0, len(inputs))
	for i, in := range inputs {
		built, err := buildSection(i, in)
		if err != nil {
			return nil, err
		}
		built.OrderIndex = i
		sections = append(sections, built)
	}
	return sections, nil
}

func buildSection(i int, in SectionInput) (dbmysql.Section, error) {
	section := dbmysql.Section{
		Title:     in.Title,
		Separator: in.Separator,
	}

	switch in.Type {
	case dbmysql.SectionText:
		if strings.TrimSpace(in.Text) == "" {
			return section, common.NewValidationError("section %d: text content is required", i)
		}
		text := in.Text
		section.ContentType = dbmysql.SectionText
		section.TextContent = &text
	case dbmysql.SectionImage:
		if in.ImageURL == "" {
			return section, common.NewValidationError("section %d: image url is required", i)
		}
		url, alt, caption := in.ImageURL, in.ImageAlt, in.ImageCaption
		section.ContentType = dbmysql.SectionImage
		section.ImageURL = &url
		section.ImageAlt = &alt
		section.ImageCaption = &caption
	default:
		return section, common.NewValidationError("section %d: unknown content type %q", i, in.Type)
	}

	return section, nil
}
