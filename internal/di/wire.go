//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"
	"go.uber.org/zap"

	"newsroom/internal/audit"
	"newsroom/internal/config"
	"newsroom/internal/dashboard"
	"newsroom/internal/dbmysql"
	"newsroom/internal/engage"
	"newsroom/internal/httpapi"
	"newsroom/internal/identity"
	"newsroom/internal/news"
)

func InitializeApplication(cfg *config.Config, logger *zap.Logger) (*Application, error) {
	wire.Build(
		dbmysql.NewMySQL,
		audit.NewRepository,
		identity.NewUserRepository,
		identity.NewResolver,
		news.NewRepository,
		news.NewService,
		engage.NewRepository,
		engage.NewService,
		dashboard.NewRepository,
		dashboard.NewService,
		httpapi.NewRouter,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
