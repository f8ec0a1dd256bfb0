package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"newsroom/internal/common"
	"newsroom/internal/dashboard"
	"newsroom/internal/dbmysql"
	"newsroom/internal/engage"
	"newsroom/internal/identity"
	"newsroom/internal/news"
)

type Handlers struct {
	news     news.NewsService
	engage   engage.EngageService
	dash     *dashboard.Service
	resolver identity.Resolver
	log      *zap.Logger
}

func (h *Handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// --------- NEWS ---------

func (h *Handlers) listNews(w http.ResponseWriter, r *http.Request) {
	var subcategoryID int64
	if raw := r.URL.Query().Get("subcategory_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.writeError(w, common.NewValidationError("invalid subcategory_id"))
			return
		}
		subcategoryID = id
	}

	items, err := h.news.List(r.Context(), subcategoryID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) getNews(w http.ResponseWriter, r *http.Request) {
	id := pathID(r, "id")
	item, err := h.news.GetByID(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) getNewsByPath(w http.ResponseWriter, r *http.Request) {
	path := mux.Vars(r)["path"]
	item, err := h.news.GetByPath(r.Context(), path)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) createNews(w http.ResponseWriter, r *http.Request) {
	var in news.CreateNewsInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, err)
		return
	}

	item, err := h.news.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handlers) updateNews(w http.ResponseWriter, r *http.Request) {
	var in news.UpdateNewsInput
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, err)
		return
	}

	item, err := h.news.Update(r.Context(), pathID(r, "id"), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) updateSections(w http.ResponseWriter, r *http.Request) {
	var patches []news.SectionPatch
	if err := decodeJSON(r, &patches); err != nil {
		h.writeError(w, err)
		return
	}

	item, err := h.news.UpdateSections(r.Context(), pathID(r, "id"), patches)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handlers) deleteNews(w http.ResponseWriter, r *http.Request) {
	if err := h.news.Delete(r.Context(), pathID(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --------- COMMENTS ---------

func (h *Handlers) listComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.engage.ListCommentsByNews(r.Context(), pathID(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

func (h *Handlers) addComment(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &in); err != nil {
		h.writeError(w, err)
		return
	}

	comment, err := h.engage.AddComment(r.Context(), pathID(r, "id"), in.Text)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}

func (h *Handlers) deleteComment(w http.ResponseWriter, r *http.Request) {
	if err := h.engage.DeleteComment(r.Context(), pathID(r, "id")); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) myComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.engage.MyComments(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, comments)
}

// --------- ENGAGEMENT TOGGLES ---------

func (h *Handlers) toggleLike(w http.ResponseWriter, r *http.Request) {
	liked, err := h.engage.ToggleLike(r.Context(), pathID(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"liked": liked})
}

func (h *Handlers) toggleBookmark(w http.ResponseWriter, r *http.Request) {
	bookmarked, err := h.engage.ToggleBookmark(r.Context(), pathID(r, "id"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"bookmarked": bookmarked})
}

// --------- DASHBOARD ---------

func (h *Handlers) dashboardStats(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		h.writeError(w, err)
		return
	}

	stats, err := h.dash.Stats(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handlers) dashboardActivity(w http.ResponseWriter, r *http.Request) {
	if err := h.requireAdmin(r); err != nil {
		h.writeError(w, err)
		return
	}

	entries, err := h.dash.Activity(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handlers) requireAdmin(r *http.Request) error {
	actor, err := h.resolver.CurrentUser(r.Context())
	if err != nil {
		return err
	}
	if actor.Role != dbmysql.RoleAdmin {
		return fmt.Errorf("dashboard: %w", common.ErrUnauthorized)
	}
	return nil
}

// --------- HELPERS ---------

func pathID(r *http.Request, key string) int64 {
	id, _ := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	return id
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return common.NewValidationError("invalid request body")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func (h *Handlers) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case common.IsValidationError(err):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, common.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, common.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		h.log.Error("request failed", zap.Error(err))
		writeJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
