package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/httpresp"
	"github.com/medibook/clinic-scheduler/internal/middleware"
)

// ======================================================
// HANDLER — CURRENT USER
// ======================================================

type MeHandler struct {
	repo domain.Repository
}

func NewMeHandler(repo domain.Repository) *MeHandler {
	return &MeHandler{repo: repo}
}

// GetMe returns the profile of the authenticated user, loaded fresh so
// the client sees role or contact changes made since the token was cut.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	user, err := h.repo.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		httperr.NotFound(c, "user_not_found", "Your account could not be found.")
		return
	}

	httpresp.OK(c, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"phone": user.Phone,
			"role":  user.Role,
		},
	})
}
