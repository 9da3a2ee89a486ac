package apperrors

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"yocc-backend/internal/models"
)

// Middleware renders the last error attached with c.Error. Server-side
// failures are logged with their cause; clients only see Message.
func Middleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		appErr := From(c.Errors.Last().Err)
		if appErr.Code >= 500 {
			logger.Error("request failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int("status", appErr.Code),
				zap.String("message", appErr.Message),
				zap.Error(appErr.Err),
			)
		}

		resp := models.ErrorResponse{Error: appErr.Message}
		if appErr.Code < 500 && appErr.Err != nil {
			resp.Message = appErr.Err.Error()
		}
		c.AbortWithStatusJSON(appErr.Code, resp)
	}
}
