package v1

import (
	"net/http"
	"strconv"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	inboxUC domain.InboxUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, inboxUC domain.InboxUsecase) {
	handler := &AdminHandler{inboxUC: inboxUC}

	admin := protected.Group("/admin")
	{
		// Contact inbox
		admin.GET("/contact-messages", handler.ListContactMessages)
	}
}

// ListContactMessages godoc
// @Summary      List contact messages
// @Description  Returns recorded submissions (delivered, failed and spam), newest first
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Items per page (max 100)"
// @Param        offset  query     int  false  "Items to skip"
// @Success      200     {object}  response.Response{data=domain.ContactMessageList}
// @Failure      400     {object}  response.Response
// @Failure      401     {object}  response.Response
// @Router       /admin/contact-messages [get]
func (h *AdminHandler) ListContactMessages(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil {
		c.Error(apperror.BadRequest("limit must be a number"))
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		c.Error(apperror.BadRequest("offset must be a number"))
		return
	}

	result, err := h.inboxUC.ListMessages(c.Request.Context(), limit, offset)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Contact messages", result)
}
