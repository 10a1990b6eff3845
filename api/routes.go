package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	rh "github.com/coreybb/studio/route-handlers"
	"github.com/coreybb/studio/webutil"
)

const (
	apiBasePath        = "/api"
	contentBasePath    = "/content"
	categoriesBasePath = "/categories"
	typesBasePath      = "/content-types"
	uploadsBasePath    = "/uploads"
	scheduleBasePath   = "/schedule"
)

const (
	throttleSubPath   = "/throttle"
	shareLinkSubPath  = "/share-link"
	formSubPath       = "/form"
	publishSubPath    = "/publish"
	draftSubPath      = "/draft"
	scheduleSubPath   = "/schedule"
	quickPicksSubPath = "/quick-picks"
)

const (
	paramID = "id" // General parameter name for resource IDs
)

const defaultRequestTimeout = 60 * time.Second

// Options tunes the router's middleware.
type Options struct {
	RequestTimeout time.Duration
	Limiter        *rate.Limiter // applied to mutating routes; nil disables
}

func SetupRoutes(
	contentHandler *rh.ContentHandler,
	referenceHandler *rh.ReferenceHandler,
	uploadHandler *rh.UploadHandler,
	opts Options,
) http.Handler {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	// Middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)    // Log every request
	r.Use(middleware.Recoverer) // Recover from panics
	r.Use(middleware.Timeout(opts.RequestTimeout))

	r.Route(apiBasePath, func(r chi.Router) {
		configureContentRoutes(r, contentHandler, opts.Limiter)
		configureReferenceRoutes(r, referenceHandler)
		configureUploadRoutes(r, uploadHandler, opts.Limiter)
	})

	// Health check endpoint
	r.Get("/healthz", handleHealthCheck)

	return r
}

// Helper for constructing paths with a parameter
func pathWithParam(basePath string, paramName string) string {
	if basePath == "" {
		return "/{" + paramName + "}"
	}
	return basePath + "/{" + paramName + "}"
}

// --- Content Routes ---
func configureContentRoutes(r chi.Router, handler *rh.ContentHandler, limiter *rate.Limiter) {
	specificContentPath := pathWithParam("", paramID) // e.g., "/{id}"

	r.Route(contentBasePath, func(r chi.Router) {
		r.Get("/", webutil.MakeHandler(handler.HandleGetContent)) // ?category=&type=&q=&view=
		r.Route(specificContentPath, func(r chi.Router) {
			r.Get("/", webutil.MakeHandler(handler.HandleGetContentByID))
			r.Get(shareLinkSubPath, webutil.MakeHandler(handler.HandleGetShareLink)) // GET /content/{id}/share-link

			r.With(RateLimit(limiter)).Delete("/", webutil.MakeHandler(handler.HandleDeleteContent))
			r.With(RateLimit(limiter)).Post(throttleSubPath, webutil.MakeHandler(handler.HandleToggleThrottle)) // POST /content/{id}/throttle
		})
	})
}

// --- Reference Data Routes ---
func configureReferenceRoutes(r chi.Router, handler *rh.ReferenceHandler) {
	r.Get(categoriesBasePath, webutil.MakeHandler(handler.HandleGetCategories))
	r.Get(typesBasePath, webutil.MakeHandler(handler.HandleGetContentTypes))
	r.Get(scheduleBasePath+quickPicksSubPath, webutil.MakeHandler(handler.HandleGetQuickPicks)) // ?timezone=
}

// --- Upload Workflow Routes ---
func configureUploadRoutes(r chi.Router, handler *rh.UploadHandler, limiter *rate.Limiter) {
	specificUploadPath := pathWithParam("", paramID)

	r.Route(uploadsBasePath, func(r chi.Router) {
		r.Use(RateLimit(limiter))
		r.Use(SetHeader("Cache-Control", "no-store")) // sessions change on every step

		r.Post("/", webutil.MakeHandler(handler.HandleCreateUpload))
		r.Route(specificUploadPath, func(r chi.Router) {
			r.Get("/", webutil.MakeHandler(handler.HandleGetUpload))
			r.Delete("/", webutil.MakeHandler(handler.HandleDismissUpload))
			r.Put(formSubPath, webutil.MakeHandler(handler.HandleUpdateForm))
			r.Post(publishSubPath, webutil.MakeHandler(handler.HandlePublishNow))
			r.Post(draftSubPath, webutil.MakeHandler(handler.HandleSaveDraft))

			// Nested: the schedule dialog layered over the upload modal
			r.Route(scheduleSubPath, func(r chi.Router) {
				r.Post("/", webutil.MakeHandler(handler.HandleOpenSchedule))
				r.Put("/", webutil.MakeHandler(handler.HandleUpdateSchedule))
				r.Delete("/", webutil.MakeHandler(handler.HandleCancelSchedule))
				r.Post("/quick", webutil.MakeHandler(handler.HandleQuickSchedule))
				r.Get("/preview", webutil.MakeHandler(handler.HandleGetSchedulePreview))
				r.Post("/save", webutil.MakeHandler(handler.HandleSaveSchedule))
				r.Post("/confirm", webutil.MakeHandler(handler.HandleScheduleContent))
			})
		})
	})
}

// handleHealthCheck responds to a health check request.
func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(webutil.HeaderContentType, webutil.ContentTypeTextPlainUTF8)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
