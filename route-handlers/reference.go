package routehandlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/coreybb/studio/datastore"
	"github.com/coreybb/studio/models"
	"github.com/coreybb/studio/scheduler"
	"github.com/coreybb/studio/webutil"
)

// ReferenceHandler serves the selection data behind the studio's inputs.
type ReferenceHandler struct {
	Categories *datastore.CategoryRepository
	Now        func() time.Time
}

func NewReferenceHandler(categories *datastore.CategoryRepository, now func() time.Time) *ReferenceHandler {
	if now == nil {
		now = time.Now
	}
	return &ReferenceHandler{Categories: categories, Now: now}
}

func (h *ReferenceHandler) HandleGetCategories(w http.ResponseWriter, r *http.Request) error {
	categories, err := h.Categories.GetCategories(r.Context())
	if err != nil {
		return fmt.Errorf("failed to retrieve categories: %w", err)
	}
	webutil.RespondWithJSON(w, http.StatusOK, categories)
	return nil
}

func (h *ReferenceHandler) HandleGetContentTypes(w http.ResponseWriter, r *http.Request) error {
	types := models.AllContentTypes()
	out := make([]models.TypePresentation, 0, len(types))
	for _, t := range types {
		p, _ := t.Presentation()
		out = append(out, p)
	}
	webutil.RespondWithJSON(w, http.StatusOK, out)
	return nil
}

type scheduleOptionsResponse struct {
	Timezones   []models.Timezone           `json:"timezones"`
	QuickPicks  []scheduler.QuickPickOption `json:"quick_picks"`
	Filters     []string                    `json:"filters"`
	GeneratedAt time.Time                   `json:"generated_at"`
}

// HandleGetQuickPicks evaluates the quick-schedule shortcuts against the
// current time in the requested timezone (default EST).
func (h *ReferenceHandler) HandleGetQuickPicks(w http.ResponseWriter, r *http.Request) error {
	label := r.URL.Query().Get("timezone")
	if label == "" {
		label = models.DefaultTimezoneLabel
	}
	loc, err := scheduler.Location(label)
	if err != nil {
		return webutil.ErrBadRequestWrap("Invalid timezone", err)
	}

	now := h.Now()
	webutil.RespondWithJSON(w, http.StatusOK, scheduleOptionsResponse{
		Timezones:   models.Timezones,
		QuickPicks:  scheduler.QuickPicks(now, loc),
		Filters:     models.AvailableFilters,
		GeneratedAt: now.In(loc),
	})
	return nil
}
