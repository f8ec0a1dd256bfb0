package identity

import (
	"context"

	"gorm.io/gorm"

	"newsroom/internal/common"
	"newsroom/internal/dbmysql"
)

type UserRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*dbmysql.User, error)
	// CreateWithInteraction provisions the internal user row together with
	// its UserInteraction aggregate in one transaction.
	CreateWithInteraction(ctx context.Context, user *dbmysql.User) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByExternalID(ctx context.Context, externalID string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&user).Error
	if err != nil {
		return nil, common.TranslateDBError(err)
	}
	return &user, nil
}

func (r *userRepository) CreateWithInteraction(ctx context.Context, user *dbmysql.User) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return tx.Create(&dbmysql.UserInteraction{UserID: user.UserID}).Error
	})
	return common.TranslateDBError(err)
}
