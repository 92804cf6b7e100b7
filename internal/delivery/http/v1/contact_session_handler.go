package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactSessionHandler struct {
	sessions domain.ContactSessionUsecase
}

// NewContactSessionHandler registers the server-held form routes. submitLimit
// guards the submit endpoint the same way as the one-shot route.
func NewContactSessionHandler(public *gin.RouterGroup, sessions domain.ContactSessionUsecase, submitLimit gin.HandlerFunc) {
	handler := &ContactSessionHandler{sessions: sessions}

	group := public.Group("/contact/sessions")
	{
		group.POST("", handler.Create)
		group.GET("/:id", handler.Get)
		group.PATCH("/:id", handler.UpdateField)
		group.POST("/:id/submit", submitLimit, handler.Submit)
		group.POST("/:id/reset", handler.Reset)
		group.DELETE("/:id", handler.Close)
	}
}

// Create godoc
// @Summary      Open Contact Form
// @Description  Create a server-held contact form in the idle state.
// @Tags         contact
// @Produce      json
// @Success      201  {object}  response.Response{data=domain.FormSnapshot}
// @Failure      503  {object}  response.Response
// @Router       /contact/sessions [post]
func (h *ContactSessionHandler) Create(c *gin.Context) {
	snap, err := h.sessions.Create()
	if err != nil {
		c.Error(submissionError(err))
		return
	}
	response.Success(c, http.StatusCreated, "Contact form created", snap)
}

// Get godoc
// @Summary      Get Contact Form
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.FormSnapshot}
// @Failure      404  {object}  response.Response
// @Router       /contact/sessions/{id} [get]
func (h *ContactSessionHandler) Get(c *gin.Context) {
	snap, err := h.sessions.Snapshot(c.Param("id"))
	if err != nil {
		c.Error(submissionError(err))
		return
	}
	response.Success(c, http.StatusOK, "Contact form retrieved", snap)
}

// UpdateField godoc
// @Summary      Edit Contact Form Field
// @Description  Replace the value of one field. A displayed error is cleared by the edit.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id     path      string                     true  "Session ID"
// @Param        field  body      domain.UpdateFieldRequest  true  "Field and value"
// @Success      200    {object}  response.Response{data=domain.FormSnapshot}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /contact/sessions/{id} [patch]
func (h *ContactSessionHandler) UpdateField(c *gin.Context) {
	var req domain.UpdateFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request").WithDetails(validation.FormatValidationErrors(err)))
		return
	}
	field, err := domain.ParseFieldName(req.Field)
	if err != nil {
		c.Error(submissionError(err))
		return
	}
	// Same rule the one-shot route applies through binding tags.
	if field != domain.MessageField && !validation.IsSingleLine(req.Value) {
		c.Error(apperror.BadRequest("Invalid request").WithDetails([]string{"Value: must not contain line breaks"}))
		return
	}

	snap, err := h.sessions.UpdateField(c.Param("id"), field, req.Value)
	if err != nil {
		c.Error(submissionError(err))
		return
	}
	response.Success(c, http.StatusOK, "Field updated", snap)
}

// Submit godoc
// @Summary      Submit Contact Form
// @Description  Validate and deliver the form. A submit while another is in flight returns the current snapshot unchanged.
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.FormSnapshot}
// @Failure      400  {object}  response.Response{data=domain.FormSnapshot}
// @Failure      404  {object}  response.Response
// @Failure      502  {object}  response.Response{data=domain.FormSnapshot}
// @Failure      503  {object}  response.Response{data=domain.FormSnapshot}
// @Router       /contact/sessions/{id}/submit [post]
func (h *ContactSessionHandler) Submit(c *gin.Context) {
	snap, err := h.sessions.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := submissionError(err)
		if snap.ID != "" {
			appErr = appErr.WithData(snap)
		}
		c.Error(appErr)
		return
	}
	response.Success(c, http.StatusOK, snap.Status.Message, snap)
}

// Reset godoc
// @Summary      Reset Contact Form
// @Description  Return a finished form to idle ("send another message").
// @Tags         contact
// @Produce      json
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.Response{data=domain.FormSnapshot}
// @Failure      404  {object}  response.Response
// @Router       /contact/sessions/{id}/reset [post]
func (h *ContactSessionHandler) Reset(c *gin.Context) {
	snap, err := h.sessions.Reset(c.Param("id"))
	if err != nil {
		c.Error(submissionError(err))
		return
	}
	response.Success(c, http.StatusOK, "Contact form reset", snap)
}

// Close godoc
// @Summary      Close Contact Form
// @Description  Discard the form. An in-flight submission is cancelled and its result ignored.
// @Tags         contact
// @Param        id  path  string  true  "Session ID"
// @Success      204
// @Failure      404  {object}  response.Response
// @Router       /contact/sessions/{id} [delete]
func (h *ContactSessionHandler) Close(c *gin.Context) {
	if err := h.sessions.Close(c.Param("id")); err != nil {
		c.Error(submissionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}
