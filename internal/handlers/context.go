package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/middleware"
)

func currentUserID(c *gin.Context) (uuid.UUID, error) {
	userIDStr := c.GetString(middleware.UserIDKey)
	if userIDStr == "" {
		return uuid.Nil, apperrors.Unauthorized("user id not found")
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, apperrors.Validation("invalid user id", err)
	}
	return userID, nil
}
