package routehandlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/coreybb/studio/catalog"
	"github.com/coreybb/studio/models"
	"github.com/coreybb/studio/webutil"
	"github.com/go-chi/chi/v5"
)

const (
	viewList = "list"
	viewGrid = "grid"
)

// ContentHandler holds dependencies for catalog route handlers.
type ContentHandler struct {
	Catalog *catalog.Service
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(svc *catalog.Service) *ContentHandler {
	return &ContentHandler{Catalog: svc}
}

type contentListResponse struct {
	Items any `json:"items"`
	Count int `json:"count"`
	Total int `json:"total"`
}

type shareLinkResponse struct {
	ID        int64  `json:"id"`
	ShareLink string `json:"share_link"`
}

// HandleGetContent lists the catalog filtered by the category, type and q
// query parameters. view=grid returns card projections.
func (h *ContentHandler) HandleGetContent(w http.ResponseWriter, r *http.Request) error {
	query := r.URL.Query()
	filter := catalog.NewFilter(query.Get("category"), query.Get("type"), query.Get("q"))

	if filter.Type != catalog.All {
		if _, ok := models.ParseContentType(filter.Type); !ok {
			return webutil.ErrBadRequest(fmt.Sprintf("Invalid type value. Must be %q or one of: %s", catalog.All, models.ContentTypeNames()))
		}
	}

	view := query.Get("view")
	if view == "" {
		view = viewList
	}
	if view != viewList && view != viewGrid {
		return webutil.ErrBadRequest("Invalid view value. Must be one of: list, grid")
	}

	result, err := h.Catalog.List(r.Context(), filter)
	if err != nil {
		return fmt.Errorf("failed to retrieve content: %w", err)
	}

	resp := contentListResponse{Count: len(result.Items), Total: result.Total}
	if view == viewGrid {
		resp.Items = catalog.NewCards(result.Items)
	} else {
		resp.Items = result.Items
	}
	webutil.RespondWithJSON(w, http.StatusOK, resp)
	return nil
}

func (h *ContentHandler) HandleGetContentByID(w http.ResponseWriter, r *http.Request) error {
	id, err := contentIDParam(r)
	if err != nil {
		return err
	}

	item, err := h.Catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return webutil.ErrNotFoundWrap("Content not found", err)
		}
		return fmt.Errorf("failed to retrieve content %d: %w", id, err)
	}

	webutil.RespondWithJSON(w, http.StatusOK, item)
	return nil
}

// HandleDeleteContent removes an item. It answers 204 whether or not the
// item existed.
func (h *ContentHandler) HandleDeleteContent(w http.ResponseWriter, r *http.Request) error {
	id, err := contentIDParam(r)
	if err != nil {
		return err
	}

	if err := h.Catalog.Delete(r.Context(), id); err != nil {
		return webutil.ErrInternalServerWrap("Failed to delete content", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *ContentHandler) HandleToggleThrottle(w http.ResponseWriter, r *http.Request) error {
	id, err := contentIDParam(r)
	if err != nil {
		return err
	}

	item, err := h.Catalog.ToggleThrottle(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return webutil.ErrNotFoundWrap("Content not found", err)
		}
		return webutil.ErrInternalServerWrap("Failed to toggle throttle", err)
	}

	webutil.RespondWithJSON(w, http.StatusOK, item)
	return nil
}

func (h *ContentHandler) HandleGetShareLink(w http.ResponseWriter, r *http.Request) error {
	id, err := contentIDParam(r)
	if err != nil {
		return err
	}

	link, err := h.Catalog.ShareLink(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			return webutil.ErrNotFoundWrap("Content not found", err)
		}
		return fmt.Errorf("failed to retrieve share link for content %d: %w", id, err)
	}

	webutil.RespondWithJSON(w, http.StatusOK, shareLinkResponse{ID: id, ShareLink: link})
	return nil
}

func contentIDParam(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, webutil.ErrBadRequest("Invalid content ID format")
	}
	return id, nil
}
