package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"yocc-backend/internal/apperrors"
	"yocc-backend/internal/models"
)

type ProfileStore interface {
	UpsertProfile(ctx context.Context, profile *models.Profile) (*models.Profile, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
}

type ProfilesHandler struct {
	profiles ProfileStore
}

func NewProfilesHandler(profiles ProfileStore) *ProfilesHandler {
	return &ProfilesHandler{profiles: profiles}
}

// GetProfile godoc
// @Summary     Get my profile
// @Tags        profile
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.Profile
// @Failure     404 {object} models.ErrorResponse
// @Router      /profile [get]
func (h *ProfilesHandler) GetProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	profile, err := h.profiles.GetProfile(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary     Create or update my profile
// @Description The profile is shown to administrators next to each order.
// @Tags        profile
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ProfileRequest true "Profile"
// @Success     200 {object} models.Profile
// @Failure     400 {object} models.ErrorResponse
// @Router      /profile [put]
func (h *ProfilesHandler) UpdateProfile(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var req models.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(apperrors.Validation("Invalid profile data.", err))
		return
	}

	profile, err := h.profiles.UpsertProfile(c.Request.Context(), &models.Profile{
		UserID:    userID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Address:   req.Address,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
