package webutil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/coreybb/studio/datastore"
	"github.com/coreybb/studio/workflow"
)

func TestMakeHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{"http error", ErrBadRequest("Invalid content ID format"), http.StatusBadRequest, "Invalid content ID format"},
		{"wrapped http error", fmt.Errorf("handler: %w", ErrTooManyRequests("")), http.StatusTooManyRequests, msgTooManyRequests},
		{"internal wrap hides cause", ErrInternalServerWrap("Failed to delete content", errors.New("disk on fire")), http.StatusInternalServerError, msgInternalServer},
		{"not found", fmt.Errorf("content 9: %w", datastore.ErrNotFound), http.StatusNotFound, msgNotFound},
		{"invalid transition", fmt.Errorf("%w: cannot publish_now while upload is schedule_open", workflow.ErrInvalidTransition), http.StatusConflict, "invalid upload transition: cannot publish_now while upload is schedule_open"},
		{"invalid input", fmt.Errorf("%w: unknown filter %q", workflow.ErrInvalidInput, "fun"), http.StatusBadRequest, `invalid upload input: unknown filter "fun"`},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, msgInternalServer},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handler := MakeHandler(func(w http.ResponseWriter, r *http.Request) error {
				return test.err
			})
			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			if rec.Code != test.wantCode {
				t.Errorf("status = %d, expected %d", rec.Code, test.wantCode)
			}
			var body map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body["error"] != test.wantMessage {
				t.Errorf("error = %q, expected %q", body["error"], test.wantMessage)
			}
			if ct := rec.Header().Get(HeaderContentType); ct != ContentTypeJSONUTF8 {
				t.Errorf("Content-Type = %q, expected %q", ct, ContentTypeJSONUTF8)
			}
		})
	}
}

func TestMakeHandler_Success(t *testing.T) {
	handler := MakeHandler(func(w http.ResponseWriter, r *http.Request) error {
		w.WriteHeader(http.StatusNoContent)
		return nil
	})
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodDelete, "/", nil))

	if rec.Code != http.StatusNoContent || rec.Body.Len() != 0 {
		t.Errorf("status = %d, body = %q, expected an empty 204", rec.Code, rec.Body.String())
	}
}
