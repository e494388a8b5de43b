// Template catalog HTTP handlers.
//
// Templates are read-only presets seeded at startup; both endpoints are
// public (no user scoping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Logeshkumar-2004/Echo-prompt-generator/internal/services"
)

// ListTemplates godoc
// @ID          listTemplates
// @Summary     List templates
// @Description Returns active templates, optionally filtered by category.
// @Tags        Templates
// @Produce     json
//
// @Param       category  query  string  false "Category filter"  Enums(code, content, data, creative, business, research)
//
// @Success     200  {array}   domain.Template
// @Failure     400  {object}  handlers.ErrorResponse "Unknown category"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /templates [get]
func (h *Handlers) ListTemplates(c *gin.Context) {
	items, err := h.tplSvc.List(c.Request.Context(), c.Query("category"))
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, vErr.Error())
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	ok(c, http.StatusOK, items)
}

// GetTemplate godoc
// @ID          getTemplate
// @Summary     Fetch one template
// @Description Returns a single active template by id.
// @Tags        Templates
// @Produce     json
//
// @Param       id  path  string  true "Template ID"  example(code-gen)
//
// @Success     200  {object}  domain.Template
// @Failure     404  {object}  handlers.ErrorResponse "Template not found"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /templates/{id} [get]
func (h *Handlers) GetTemplate(c *gin.Context) {
	t, err := h.tplSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrTemplateNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "template not found")
			return
		}
		fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		return
	}
	ok(c, http.StatusOK, t)
}
