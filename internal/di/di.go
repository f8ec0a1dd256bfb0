// Package di assembles the application graph with google/wire.
package di

import (
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"newsroom/internal/config"
)

type Application struct {
	Config *config.Config
	DB     *gorm.DB
	Router *mux.Router
}
