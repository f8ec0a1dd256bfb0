package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"newsroom/internal/config"
	"newsroom/internal/dashboard"
	"newsroom/internal/engage"
	"newsroom/internal/identity"
	"newsroom/internal/news"
)

// NewRouter wires the operation surface the presentation layer consumes.
func NewRouter(
	newsSvc news.NewsService,
	engageSvc engage.EngageService,
	dashSvc *dashboard.Service,
	resolver identity.Resolver,
	cfg *config.Config,
	log *zap.Logger,
) *mux.Router {
	h := &Handlers{
		news:     newsSvc,
		engage:   engageSvc,
		dash:     dashSvc,
		resolver: resolver,
		log:      log,
	}

	router := mux.NewRouter()
	router.Use(identity.Middleware(cfg.Identity.JWTSecret))

	router.HandleFunc("/health", h.health).Methods(http.MethodGet)

	router.HandleFunc("/news", h.listNews).Methods(http.MethodGet)
	router.HandleFunc("/news", h.createNews).Methods(http.MethodPost)
	router.HandleFunc("/news/path/{path}", h.getNewsByPath).Methods(http.MethodGet)
	router.HandleFunc("/news/{id:[0-9]+}", h.getNews).Methods(http.MethodGet)
	router.HandleFunc("/news/{id:[0-9]+}", h.updateNews).Methods(http.MethodPut)
	router.HandleFunc("/news/{id:[0-9]+}/sections", h.updateSections).Methods(http.MethodPut)
	router.HandleFunc("/news/{id:[0-9]+}", h.deleteNews).Methods(http.MethodDelete)

	router.HandleFunc("/news/{id:[0-9]+}/comments", h.listComments).Methods(http.MethodGet)
	router.HandleFunc("/news/{id:[0-9]+}/comments", h.addComment).Methods(http.MethodPost)
	router.HandleFunc("/comments/{id:[0-9]+}", h.deleteComment).Methods(http.MethodDelete)
	router.HandleFunc("/me/comments", h.myComments).Methods(http.MethodGet)

	router.HandleFunc("/news/{id:[0-9]+}/like", h.toggleLike).Methods(http.MethodPost)
	router.HandleFunc("/news/{id:[0-9]+}/bookmark", h.toggleBookmark).Methods(http.MethodPost)

	router.HandleFunc("/dashboard/stats", h.dashboardStats).Methods(http.MethodGet)
	router.HandleFunc("/dashboard/activity", h.dashboardActivity).Methods(http.MethodGet)

	return router
}
