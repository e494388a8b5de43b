// Saved-library HTTP handlers.
//
// This file exposes REST endpoints for the user's saved enhancements:
//   - GET    /saved                      (list, most recently accessed first)
//   - POST   /saved                      (bookmark an enhanced prompt)
//   - GET    /saved/favorites            (favorites only)
//   - GET    /saved/{id}                 (one item, touches last-accessed)
//   - POST   /saved/{id}/toggle_favorite (flip the flag)
//   - PATCH  /saved/{id}                 (edit title/notes/category)
//   - DELETE /saved/{id}
//
// All routes are scoped to the current user; items owned by someone else
// answer 404.
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/repo"
	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/services"
)

//
// DTOs
//

// CreateSavedRequest is the JSON payload for saving an enhanced prompt.
type CreateSavedRequest struct {
	// PromptID references an already-enhanced prompt owned by the caller.
	PromptID string `json:"prompt_id" binding:"required" format:"uuid"`
	// CustomTitle overrides the auto-generated title.
	CustomTitle *string `json:"custom_title,omitempty" example:"Sorting helper"`
	// Notes holds free-form user annotations.
	Notes string `json:"notes,omitempty"`
	// Category tags the item (code|content|data|creative|business|research).
	Category string `json:"category,omitempty" example:"code"`
}

// UpdateSavedRequest is the JSON payload for a partial saved-item edit.
// Absent fields are left untouched.
type UpdateSavedRequest struct {
	CustomTitle *string `json:"custom_title,omitempty"`
	Notes       *string `json:"notes,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsFavorite  *bool   `json:"is_favorite,omitempty"`
}

// savedNotModified runs the ETag pre-check for the saved list endpoints.
// The tag is derived from the caller's bookmark count and newest
// last_accessed timestamp, so any create/edit/toggle/delete invalidates it.
// Returns true when a 304 was written. Best effort: stub services without
// a real DB skip the check.
func (h *Handlers) savedNotModified(c *gin.Context, scope string) bool {
	db := h.db()
	if db == nil {
		return false
	}
	uid := userID(c)
	count, maxTS, err := repo.SavedStats(c.Request.Context(), db, uid)
	if err != nil {
		return false
	}
	var ts int64
	if maxTS != nil {
		ts = maxTS.Unix()
	}
	etag := fmt.Sprintf(`W/"saved:%s:%s:%d:%d"`, scope, uid, count, ts)
	c.Header("ETag", etag)
	if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
		c.Status(http.StatusNotModified)
		return true
	}
	return false
}

// savedID validates the :id path param, failing the request on a non-UUID.
func savedID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "saved item id must be a UUID")
		return "", false
	}
	return id, true
}

// failSaved maps saved-library service errors onto the error taxonomy.
func failSaved(c *gin.Context, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.As(err, &vErr):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, vErr.Error())
	case errors.Is(err, services.ErrPromptNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "prompt not found")
	case errors.Is(err, services.ErrSavedNotFound):
		fail(c, http.StatusNotFound, ErrCodeNotFound, "saved item not found")
	case errors.Is(err, services.ErrNotEnhanced):
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "prompt has no enhancement to save")
	case errors.Is(err, services.ErrDuplicateSaved):
		fail(c, http.StatusConflict, ErrCodeConflict, "prompt already saved")
	default:
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
	}
}

//
// Handlers
//

// CreateSaved godoc
// @ID          createSaved
// @Summary     Save an enhanced prompt
// @Description Bookmarks the enhancement of a prompt owned by the current user.
// @Tags        Saved
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       body       body    handlers.CreateSavedRequest  true  "Save payload"
//
// @Success     201  {object}  domain.SavedPrompt
// @Failure     400  {object}  handlers.ErrorResponse "Bad request or unenhanced prompt"
// @Failure     404  {object}  handlers.ErrorResponse "Prompt not found"
// @Failure     409  {object}  handlers.ErrorResponse "Already saved"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved [post]
func (h *Handlers) CreateSaved(c *gin.Context) {
	var req CreateSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	if _, err := uuid.Parse(req.PromptID); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "prompt_id must be a UUID")
		return
	}

	sp, err := h.savedSvc.Create(c.Request.Context(), userID(c), services.SavedInput{
		PromptID:    req.PromptID,
		CustomTitle: req.CustomTitle,
		Notes:       req.Notes,
		Category:    req.Category,
	})
	if err != nil {
		failSaved(c, err)
		return
	}
	ok(c, http.StatusCreated, sp)
}

// ListSaved godoc
// @ID          listSaved
// @Summary     List saved items
// @Description Returns the user's saved items, most recently accessed first.
// @Tags        Saved
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {array}   domain.SavedPrompt
// @Header      200  {string}  ETag "Weak ETag for current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved [get]
func (h *Handlers) ListSaved(c *gin.Context) {
	if h.savedNotModified(c, "all") {
		return
	}
	items, err := h.savedSvc.List(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// ListFavorites godoc
// @ID          listFavorites
// @Summary     List favorite saved items
// @Description Returns only the user's favorited items.
// @Tags        Saved
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
//
// @Success     200  {array}   domain.SavedPrompt
// @Header      200  {string}  ETag "Weak ETag for current result"
// @Success     304  {string}  string "Not Modified"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved/favorites [get]
func (h *Handlers) ListFavorites(c *gin.Context) {
	if h.savedNotModified(c, "fav") {
		return
	}
	items, err := h.savedSvc.ListFavorites(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetSaved godoc
// @ID          getSaved
// @Summary     Fetch one saved item
// @Description Returns a saved item owned by the current user and refreshes its last-accessed timestamp.
// @Tags        Saved
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Saved item ID (UUID)"   format(uuid)
//
// @Success     200  {object}  domain.SavedPrompt
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Saved item not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved/{id} [get]
func (h *Handlers) GetSaved(c *gin.Context) {
	id, valid := savedID(c)
	if !valid {
		return
	}
	sp, err := h.savedSvc.Get(c.Request.Context(), userID(c), id)
	if err != nil {
		failSaved(c, err)
		return
	}
	ok(c, http.StatusOK, sp)
}

// ToggleFavorite godoc
// @ID          toggleFavorite
// @Summary     Toggle the favorite flag
// @Description Flips is_favorite on a saved item and returns the updated resource.
// @Tags        Saved
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Saved item ID (UUID)"   format(uuid)
//
// @Success     200  {object}  domain.SavedPrompt
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Saved item not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved/{id}/toggle_favorite [post]
func (h *Handlers) ToggleFavorite(c *gin.Context) {
	id, valid := savedID(c)
	if !valid {
		return
	}
	sp, err := h.savedSvc.ToggleFavorite(c.Request.Context(), userID(c), id)
	if err != nil {
		failSaved(c, err)
		return
	}
	ok(c, http.StatusOK, sp)
}

// UpdateSaved godoc
// @ID          updateSaved
// @Summary     Edit a saved item
// @Description Applies a partial update to title, notes, category, or favorite flag.
// @Tags        Saved
// @Accept      json
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Saved item ID (UUID)"   format(uuid)
// @Param       body       body    handlers.UpdateSavedRequest  true  "Fields to update"
//
// @Success     200  {object}  domain.SavedPrompt
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Saved item not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved/{id} [patch]
func (h *Handlers) UpdateSaved(c *gin.Context) {
	id, valid := savedID(c)
	if !valid {
		return
	}
	var req UpdateSavedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	sp, err := h.savedSvc.Update(c.Request.Context(), userID(c), id, services.SavedUpdate{
		CustomTitle: req.CustomTitle,
		Notes:       req.Notes,
		Category:    req.Category,
		IsFavorite:  req.IsFavorite,
	})
	if err != nil {
		failSaved(c, err)
		return
	}
	ok(c, http.StatusOK, sp)
}

// DeleteSaved godoc
// @ID          deleteSaved
// @Summary     Delete a saved item
// @Description Removes a saved item from the user's library.
// @Tags        Saved
// @Produce     json
//
// @Param       X-User-ID  header  string  false "User ID (demo header)"  example(user123)
// @Param       id         path    string  true  "Saved item ID (UUID)"   format(uuid)
//
// @Success     204  {string}  string "No Content"
// @Failure     400  {object}  handlers.ErrorResponse "Bad request"
// @Failure     404  {object}  handlers.ErrorResponse "Saved item not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /saved/{id} [delete]
func (h *Handlers) DeleteSaved(c *gin.Context) {
	id, valid := savedID(c)
	if !valid {
		return
	}
	if err := h.savedSvc.Delete(c.Request.Context(), userID(c), id); err != nil {
		failSaved(c, err)
		return
	}
	noContent(c)
}
