package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError && appErr.Err != nil {
				logger.Log.Error("Request failed",
					"status", appErr.Code,
					"path", c.FullPath(),
					"request_id", response.RequestID(c),
					"error", appErr.Err,
				)
			}
			response.ErrorWithData(c, appErr.Code, appErr.Message, appErr.Data, appErr.Details)
			return
		}

		// Internal details stay in the log
		logger.Log.Error("Internal Server Error",
			"path", c.FullPath(),
			"request_id", response.RequestID(c),
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
