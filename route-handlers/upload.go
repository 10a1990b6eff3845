package routehandlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coreybb/studio/datastore"
	"github.com/coreybb/studio/models"
	"github.com/coreybb/studio/scheduler"
	"github.com/coreybb/studio/webutil"
	"github.com/coreybb/studio/workflow"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UploadHandler drives upload sessions through the workflow.
type UploadHandler struct {
	Repo *datastore.UploadSessionRepository
	Now  func() time.Time
}

// NewUploadHandler creates a new UploadHandler. A nil clock uses time.Now.
func NewUploadHandler(repo *datastore.UploadSessionRepository, now func() time.Time) *UploadHandler {
	if now == nil {
		now = time.Now
	}
	return &UploadHandler{Repo: repo, Now: now}
}

type createUploadRequest struct {
	Type string `json:"type"`
}

// updateFormRequest takes hashtags space-separated and keywords
// comma-separated, as typed into the form.
type updateFormRequest struct {
	Title          string                      `json:"title"`
	Description    string                      `json:"description"`
	Category       string                      `json:"category"`
	SubCategory    string                      `json:"sub_category"`
	CustomCategory string                      `json:"custom_category"`
	Label          models.ContentLabel         `json:"label"`
	Hashtags       string                      `json:"hashtags"`
	Keywords       string                      `json:"keywords"`
	Filters        []string                    `json:"filters"`
	Podcast        *models.PodcastSettings     `json:"podcast,omitempty"`
	Interaction    *models.InteractionSettings `json:"interaction,omitempty"`
}

// updateScheduleRequest is a partial update; omitted fields keep their value.
type updateScheduleRequest struct {
	Date              *string                `json:"date"`
	Time              *string                `json:"time"`
	Timezone          *string                `json:"timezone"`
	Repeat            *models.RepeatPolicy   `json:"repeat"`
	Reminder          *models.ReminderOffset `json:"reminder"`
	AutoArchive       *models.AutoArchive    `json:"auto_archive"`
	AutoPromote       *bool                  `json:"auto_promote"`
	EmailNotification *bool                  `json:"email_notification"`
}

type quickScheduleRequest struct {
	Pick scheduler.QuickPick `json:"pick"`
}

type uploadResponse struct {
	*models.UploadSession
	Accept  string                  `json:"accept"`
	Preview *models.SchedulePreview `json:"preview,omitempty"`
	Action  workflow.Action         `json:"action,omitempty"`
}

func newUploadResponse(s *models.UploadSession) uploadResponse {
	p, _ := s.Type.Presentation()
	resp := uploadResponse{UploadSession: s, Accept: p.Accept}
	if s.Schedule != nil {
		// An unparsable draft simply has no preview.
		if preview, ok, err := scheduler.Preview(*s.Schedule); err == nil && ok {
			resp.Preview = preview
		}
	}
	return resp
}

// HandleCreateUpload opens the upload modal for a content type.
func (h *UploadHandler) HandleCreateUpload(w http.ResponseWriter, r *http.Request) error {
	var req createUploadRequest
	if err := webutil.DecodeJSON(r, &req); err != nil {
		return err
	}

	session, err := workflow.Start(models.ContentType(req.Type), h.Now())
	if err != nil {
		return err
	}
	if err := h.Repo.CreateSession(r.Context(), session); err != nil {
		return webutil.ErrInternalServerWrap("Failed to open upload", err)
	}

	slog.Info("Upload opened", "session_id", session.ID, "type", session.Type)
	webutil.RespondWithJSON(w, http.StatusCreated, newUploadResponse(session))
	return nil
}

func (h *UploadHandler) HandleGetUpload(w http.ResponseWriter, r *http.Request) error {
	id, err := sessionIDParam(r)
	if err != nil {
		return err
	}

	session, err := h.Repo.GetSession(r.Context(), id)
	if err != nil {
		return h.notFoundOr(err, "Failed to retrieve upload")
	}

	webutil.RespondWithJSON(w, http.StatusOK, newUploadResponse(session))
	return nil
}

func (h *UploadHandler) HandleUpdateForm(w http.ResponseWriter, r *http.Request) error {
	var req updateFormRequest
	if err := webutil.DecodeJSON(r, &req); err != nil {
		return err
	}

	form := models.UploadForm{
		Title:          req.Title,
		Description:    req.Description,
		Category:       req.Category,
		SubCategory:    req.SubCategory,
		CustomCategory: req.CustomCategory,
		Label:          req.Label,
		Hashtags:       workflow.ParseHashtags(req.Hashtags),
		Keywords:       workflow.ParseKeywords(req.Keywords),
		Filters:        req.Filters,
		Podcast:        req.Podcast,
		Interaction:    models.DefaultUploadForm().Interaction,
	}
	if req.Interaction != nil {
		form.Interaction = *req.Interaction
	}

	return h.apply(w, r, func(s *models.UploadSession) error {
		return workflow.UpdateForm(s, form)
	})
}

func (h *UploadHandler) HandlePublishNow(w http.ResponseWriter, r *http.Request) error {
	return h.close(w, r, workflow.ActionPublishNow)
}

func (h *UploadHandler) HandleSaveDraft(w http.ResponseWriter, r *http.Request) error {
	return h.close(w, r, workflow.ActionSaveDraft)
}

// HandleDismissUpload closes the modal (close button or backdrop), from
// either the form or the schedule dialog.
func (h *UploadHandler) HandleDismissUpload(w http.ResponseWriter, r *http.Request) error {
	return h.close(w, r, workflow.ActionDismiss)
}

func (h *UploadHandler) HandleOpenSchedule(w http.ResponseWriter, r *http.Request) error {
	return h.apply(w, r, workflow.OpenSchedule)
}

func (h *UploadHandler) HandleCancelSchedule(w http.ResponseWriter, r *http.Request) error {
	return h.apply(w, r, workflow.CancelSchedule)
}

func (h *UploadHandler) HandleUpdateSchedule(w http.ResponseWriter, r *http.Request) error {
	var req updateScheduleRequest
	if err := webutil.DecodeJSON(r, &req); err != nil {
		return err
	}

	return h.apply(w, r, func(s *models.UploadSession) error {
		if s.Schedule == nil {
			return workflow.UpdateSchedule(s, models.ScheduleDraft{})
		}
		return workflow.UpdateSchedule(s, mergeSchedule(*s.Schedule, req))
	})
}

func (h *UploadHandler) HandleQuickSchedule(w http.ResponseWriter, r *http.Request) error {
	var req quickScheduleRequest
	if err := webutil.DecodeJSON(r, &req); err != nil {
		return err
	}

	now := h.Now()
	return h.apply(w, r, func(s *models.UploadSession) error {
		return workflow.QuickSchedule(s, req.Pick, now)
	})
}

// HandleGetSchedulePreview answers 204 while the draft lacks a date or time.
func (h *UploadHandler) HandleGetSchedulePreview(w http.ResponseWriter, r *http.Request) error {
	id, err := sessionIDParam(r)
	if err != nil {
		return err
	}

	session, err := h.Repo.GetSession(r.Context(), id)
	if err != nil {
		return h.notFoundOr(err, "Failed to retrieve upload")
	}

	preview, ok, err := workflow.Preview(session)
	if err != nil {
		return err
	}
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return nil
	}

	webutil.RespondWithJSON(w, http.StatusOK, preview)
	return nil
}

func (h *UploadHandler) HandleSaveSchedule(w http.ResponseWriter, r *http.Request) error {
	return h.close(w, r, workflow.ActionSaveSchedule)
}

func (h *UploadHandler) HandleScheduleContent(w http.ResponseWriter, r *http.Request) error {
	return h.close(w, r, workflow.ActionScheduleContent)
}

// apply runs a workflow step against the stored session and responds with
// the updated session.
func (h *UploadHandler) apply(w http.ResponseWriter, r *http.Request, step func(*models.UploadSession) error) error {
	id, err := sessionIDParam(r)
	if err != nil {
		return err
	}

	session, err := h.Repo.UpdateSession(r.Context(), id, step)
	if err != nil {
		return h.notFoundOr(err, "Failed to update upload")
	}

	webutil.RespondWithJSON(w, http.StatusOK, newUploadResponse(session))
	return nil
}

func (h *UploadHandler) close(w http.ResponseWriter, r *http.Request, action workflow.Action) error {
	id, err := sessionIDParam(r)
	if err != nil {
		return err
	}

	session, err := h.Repo.UpdateSession(r.Context(), id, func(s *models.UploadSession) error {
		return workflow.Close(s, action)
	})
	if err != nil {
		return h.notFoundOr(err, "Failed to close upload")
	}

	slog.Info("Upload closed", "session_id", id, "action", action)
	resp := newUploadResponse(session)
	resp.Action = action
	webutil.RespondWithJSON(w, http.StatusOK, resp)
	return nil
}

func (h *UploadHandler) notFoundOr(err error, msg string) error {
	switch {
	case errors.Is(err, datastore.ErrNotFound):
		return webutil.ErrNotFoundWrap("Upload not found", err)
	case errors.Is(err, workflow.ErrInvalidTransition), errors.Is(err, workflow.ErrInvalidInput):
		return err
	default:
		return webutil.ErrInternalServerWrap(msg, err)
	}
}

func mergeSchedule(draft models.ScheduleDraft, req updateScheduleRequest) models.ScheduleDraft {
	if req.Date != nil {
		draft.Date = *req.Date
	}
	if req.Time != nil {
		draft.Time = *req.Time
	}
	if req.Timezone != nil {
		draft.Timezone = *req.Timezone
	}
	if req.Repeat != nil {
		draft.Repeat = *req.Repeat
	}
	if req.Reminder != nil {
		draft.Reminder = *req.Reminder
	}
	if req.AutoArchive != nil {
		draft.AutoArchive = *req.AutoArchive
	}
	if req.AutoPromote != nil {
		draft.AutoPromote = *req.AutoPromote
	}
	if req.EmailNotification != nil {
		draft.EmailNotification = *req.EmailNotification
	}
	return draft
}

func sessionIDParam(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return "", webutil.ErrBadRequest(fmt.Sprintf("Invalid upload ID format: %q", id))
	}
	return id, nil
}
