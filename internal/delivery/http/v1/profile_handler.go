package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileUC domain.ProfileUsecase
}

func NewProfileHandler(public *gin.RouterGroup, profileUC domain.ProfileUsecase) {
	handler := &ProfileHandler{profileUC: profileUC}
	public.GET("/profile", handler.GetProfile)
}

// GetProfile godoc
// @Summary      Get site profile
// @Description  Static portfolio content: profile, skills, projects, testimonials and contact details
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.SiteProfile}
// @Failure      500  {object}  response.Response
// @Router       /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileUC.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	response.Success(c, http.StatusOK, "Site profile", profile)
}
