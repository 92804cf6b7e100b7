package v1

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the one-shot contact route (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, limit gin.HandlerFunc) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/contact", limit, handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Validate and deliver a contact message in one request. The returned status is what the form should display.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response{data=domain.SubmissionStatus}
// @Failure      400      {object}  response.Response{data=domain.SubmissionStatus}
// @Failure      429      {object}  response.Response
// @Failure      502      {object}  response.Response{data=domain.SubmissionStatus}
// @Failure      503      {object}  response.Response{data=domain.SubmissionStatus}
// @Router       /contact [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request").WithDetails(validation.FormatValidationErrors(err)))
		return
	}

	status, err := h.contactUC.SendContactMessage(c.Request.Context(), &req)
	if err != nil {
		c.Error(submissionError(err).WithData(status))
		return
	}

	response.Success(c, http.StatusOK, status.Message, status)
}

// submissionError maps a classified submission failure onto an HTTP error.
// The message is always the visitor-facing status text.
func submissionError(err error) *apperror.AppError {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return apperror.BadRequest(verr.Message).WithDetails(verr)
	case errors.Is(err, domain.ErrTransportUnavailable):
		return apperror.ServiceUnavailable("Contact service temporarily unavailable", err)
	case errors.Is(err, domain.ErrDeliveryFailed):
		return apperror.BadGateway("Failed to send message", err)
	case errors.Is(err, domain.ErrUnknownField):
		return apperror.BadRequest("Unknown form field")
	case errors.Is(err, domain.ErrSessionNotFound):
		return apperror.NotFound("Contact session not found")
	case errors.Is(err, domain.ErrTooManySessions):
		return apperror.ServiceUnavailable("Too many open contact forms. Please try again later.", err)
	case errors.Is(err, domain.ErrControllerClosed):
		return apperror.New(http.StatusGone, "Contact form is closed", err)
	default:
		return apperror.Internal(err)
	}
}
