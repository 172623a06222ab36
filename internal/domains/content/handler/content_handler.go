package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"classweb-backend/internal/domains/content"
	"classweb-backend/internal/shared/response"
	"classweb-backend/pkg/logger"
)

// ContentHandler serves the uniform REST surface for one content kind:
//
//	GET    /api/{kind}        list
//	GET    /api/{kind}/:id    get one
//	POST   /api/{kind}        create
//	PUT    /api/{kind}/:id    update
//	DELETE /api/{kind}/:id    delete
//
// The PC/PU parameters let the handler allocate the request DTOs itself,
// so one implementation covers all five kinds.
type ContentHandler[T, C, U any, PC interface {
	*C
	content.CreateRequest[T]
}, PU interface {
	*U
	content.UpdateRequest
}] struct {
	service content.Service[T, PC, PU]
	label   string // display name used in messages, e.g. "Info"
}

func NewContentHandler[T, C, U any, PC interface {
	*C
	content.CreateRequest[T]
}, PU interface {
	*U
	content.UpdateRequest
}](service content.Service[T, PC, PU], label string) *ContentHandler[T, C, U, PC, PU] {
	return &ContentHandler[T, C, U, PC, PU]{service: service, label: label}
}

func (h *ContentHandler[T, C, U, PC, PU]) List(c *gin.Context) {
	docs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, docs)
}

func (h *ContentHandler[T, C, U, PC, PU]) GetByID(c *gin.Context) {
	doc, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

func (h *ContentHandler[T, C, U, PC, PU]) Create(c *gin.Context) {
	req := PC(new(C))
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, doc)
}

func (h *ContentHandler[T, C, U, PC, PU]) Update(c *gin.Context) {
	req := PU(new(U))
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	doc, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.handleError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, doc)
}

func (h *ContentHandler[T, C, U, PC, PU]) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("%s deleted", h.label))
}

func (h *ContentHandler[T, C, U, PC, PU]) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, content.ErrNotFound):
		response.NotFound(c, fmt.Sprintf("%s not found", h.label))
	case content.IsValidationError(err):
		response.BadRequest(c, err.Error())
	default:
		logger.Error(fmt.Sprintf("%s request failed", h.label), err)
		response.InternalServerError(c, err.Error())
	}
}
