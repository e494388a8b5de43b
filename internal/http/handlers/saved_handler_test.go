package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/domain"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/services"
)

// savedTestRig mounts the saved-library routes over real services and returns
// the engine plus the ID of one already-saved item owned by "u1".
func savedTestRig(t *testing.T) (*gin.Engine, string, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gw := &fakeGateway{}
	h, _ := newRealHandlers(t, gw)
	r := gin.New()
	r.POST("/prompts/enhance", h.EnhancePrompt)
	r.POST("/saved", h.CreateSaved)
	r.GET("/saved", h.ListSaved)
	r.GET("/saved/favorites", h.ListFavorites)
	r.GET("/saved/:id", h.GetSaved)
	r.POST("/saved/:id/toggle_favorite", h.ToggleFavorite)
	r.PATCH("/saved/:id", h.UpdateSaved)
	r.DELETE("/saved/:id", h.DeleteSaved)

	hdr := map[string]string{"X-User-ID": "u1"}
	w := doJSON(r, http.MethodPost, "/prompts/enhance", `{"prompt_text":"write release notes for v2"}`, hdr)
	if w.Code != http.StatusCreated {
		t.Fatalf("enhance -> %d", w.Code)
	}
	var created EnhanceResponse
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("json: %v", err)
	}

	w = doJSON(r, http.MethodPost, "/saved", `{"prompt_id":"`+created.ID+`"}`, hdr)
	if w.Code != http.StatusCreated {
		t.Fatalf("save -> %d body=%s", w.Code, w.Body.String())
	}
	var sp domain.SavedPrompt
	if err := json.Unmarshal(w.Body.Bytes(), &sp); err != nil {
		t.Fatalf("json: %v", err)
	}
	return r, sp.ID, created.ID
}

func TestCreateSaved_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newStubHandlers()
	r := gin.New()
	r.POST("/saved", h.CreateSaved)

	w := doJSON(r, http.MethodPost, "/saved", "{bad", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad json -> %d", w.Code)
	}
	w = doJSON(r, http.MethodPost, "/saved", `{"prompt_id":"not-a-uuid"}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("non-uuid -> %d", w.Code)
	}
}

func TestCreateSaved_ErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"category invalid", &services.ValidationError{Fields: []string{"category"}}, http.StatusBadRequest, ErrCodeBadRequest},
		{"prompt missing", services.ErrPromptNotFound, http.StatusNotFound, ErrCodeNotFound},
		{"not enhanced", services.ErrNotEnhanced, http.StatusBadRequest, ErrCodeBadRequest},
		{"already saved", services.ErrDuplicateSaved, http.StatusConflict, ErrCodeConflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := New(stubTplSvc{}, stubEnhSvc{}, stubSavedSvc{
				create: func(context.Context, string, services.SavedInput) (*domain.SavedPrompt, error) {
					return nil, tc.err
				},
			})
			r := gin.New()
			r.POST("/saved", h.CreateSaved)

			w := doJSON(r, http.MethodPost, "/saved", `{"prompt_id":"`+uuid.NewString()+`"}`, nil)
			if w.Code != tc.status {
				t.Fatalf("status = %d, want %d", w.Code, tc.status)
			}
			if e := decodeErr(t, w); e.Code != tc.code {
				t.Fatalf("code = %q, want %q", e.Code, tc.code)
			}
		})
	}
}

func TestSavedRoutes_EndToEnd(t *testing.T) {
	r, savedID, promptID := savedTestRig(t)
	hdr := map[string]string{"X-User-ID": "u1"}

	// Duplicate save of the same pair conflicts.
	w := doJSON(r, http.MethodPost, "/saved", `{"prompt_id":"`+promptID+`"}`, hdr)
	if w.Code != http.StatusConflict {
		t.Fatalf("duplicate save -> %d", w.Code)
	}

	// List contains the item.
	w = doJSON(r, http.MethodGet, "/saved", "", hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d", w.Code)
	}
	var items []domain.SavedPrompt
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(items) != 1 || items[0].ID != savedID {
		t.Fatalf("list = %+v", items)
	}

	// Favorites are empty until toggled.
	w = doJSON(r, http.MethodGet, "/saved/favorites", "", hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("favorites -> %d", w.Code)
	}
	items = nil
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("favorites before toggle = %+v", items)
	}

	w = doJSON(r, http.MethodPost, "/saved/"+savedID+"/toggle_favorite", "", hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("toggle -> %d", w.Code)
	}
	var sp domain.SavedPrompt
	if err := json.Unmarshal(w.Body.Bytes(), &sp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if !sp.IsFavorite {
		t.Fatalf("toggle did not set favorite")
	}

	w = doJSON(r, http.MethodGet, "/saved/favorites", "", hdr)
	items = nil
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("json: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("favorites after toggle = %+v", items)
	}

	// Fetch one item.
	w = doJSON(r, http.MethodGet, "/saved/"+savedID, "", hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("get -> %d", w.Code)
	}

	// Patch metadata.
	w = doJSON(r, http.MethodPatch, "/saved/"+savedID, `{"notes":"for sprint review","category":"content"}`, hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("patch -> %d body=%s", w.Code, w.Body.String())
	}
	sp = domain.SavedPrompt{}
	if err := json.Unmarshal(w.Body.Bytes(), &sp); err != nil {
		t.Fatalf("json: %v", err)
	}
	if sp.Notes != "for sprint review" || sp.Category != domain.CategoryContent {
		t.Fatalf("patch result = %+v", sp)
	}

	// Invalid category rejected.
	w = doJSON(r, http.MethodPatch, "/saved/"+savedID, `{"category":"bogus"}`, hdr)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad category -> %d", w.Code)
	}

	// Cross-owner requests answer 404.
	other := map[string]string{"X-User-ID": "u2"}
	w = doJSON(r, http.MethodGet, "/saved/"+savedID, "", other)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-owner get -> %d", w.Code)
	}
	w = doJSON(r, http.MethodDelete, "/saved/"+savedID, "", other)
	if w.Code != http.StatusNotFound {
		t.Fatalf("cross-owner delete -> %d", w.Code)
	}

	// Delete, then the item is gone.
	w = doJSON(r, http.MethodDelete, "/saved/"+savedID, "", hdr)
	if w.Code != http.StatusNoContent {
		t.Fatalf("delete -> %d", w.Code)
	}
	w = doJSON(r, http.MethodGet, "/saved/"+savedID, "", hdr)
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete -> %d", w.Code)
	}
}

func TestSavedRoutes_InvalidID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newStubHandlers()
	r := gin.New()
	r.GET("/saved/:id", h.GetSaved)
	r.POST("/saved/:id/toggle_favorite", h.ToggleFavorite)
	r.PATCH("/saved/:id", h.UpdateSaved)
	r.DELETE("/saved/:id", h.DeleteSaved)

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/saved/xyz"},
		{http.MethodPost, "/saved/xyz/toggle_favorite"},
		{http.MethodPatch, "/saved/xyz"},
		{http.MethodDelete, "/saved/xyz"},
	} {
		w := doJSON(r, req.method, req.path, "{}", nil)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s %s -> %d", req.method, req.path, w.Code)
		}
	}
}

func TestSavedLists_ETag304(t *testing.T) {
	r, savedID, _ := savedTestRig(t)
	hdr := map[string]string{"X-User-ID": "u1"}

	w := doJSON(r, http.MethodGet, "/saved", "", hdr)
	if w.Code != http.StatusOK {
		t.Fatalf("list -> %d", w.Code)
	}
	etag := w.Header().Get("ETag")
	if etag == "" {
		t.Fatalf("missing ETag")
	}

	w = doJSON(r, http.MethodGet, "/saved", "", map[string]string{
		"X-User-ID": "u1", "If-None-Match": etag,
	})
	if w.Code != http.StatusNotModified {
		t.Fatalf("conditional -> %d", w.Code)
	}

	// The favorites list carries its own tag; the all-items tag never matches it.
	w = doJSON(r, http.MethodGet, "/saved/favorites", "", map[string]string{
		"X-User-ID": "u1", "If-None-Match": etag,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("favorites with list tag -> %d", w.Code)
	}

	// Deleting the item changes the count, so the stale tag stops matching.
	if w := doJSON(r, http.MethodDelete, "/saved/"+savedID, "", hdr); w.Code != http.StatusNoContent {
		t.Fatalf("delete -> %d", w.Code)
	}
	w = doJSON(r, http.MethodGet, "/saved", "", map[string]string{
		"X-User-ID": "u1", "If-None-Match": etag,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("stale conditional after delete -> %d", w.Code)
	}
}

func TestResaveAfterDelete_EndToEnd(t *testing.T) {
	r, savedID, promptID := savedTestRig(t)
	hdr := map[string]string{"X-User-ID": "u1"}

	if w := doJSON(r, http.MethodDelete, "/saved/"+savedID, "", hdr); w.Code != http.StatusNoContent {
		t.Fatalf("delete -> %d", w.Code)
	}

	// Saving the same prompt again after deleting the bookmark is not a conflict.
	w := doJSON(r, http.MethodPost, "/saved", `{"prompt_id":"`+promptID+`"}`, hdr)
	if w.Code != http.StatusCreated {
		t.Fatalf("re-save after delete -> %d body=%s", w.Code, w.Body.String())
	}
}
