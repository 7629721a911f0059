package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
)

// mapBookingError translates domain and use-case errors into wire
// responses. Validation failures carry the failed field names so the
// client can drive inline error display.
func mapBookingError(c *gin.Context, err error) {
	var ve domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "validation_failed",
			"message":    "Please correct the highlighted fields.",
			"fields":     ve.Fields,
		})
		return
	}

	var be httperr.BusinessError
	if errors.As(err, &be) {
		switch be.Code {
		case "doctor_not_found", "appointment_not_found", "session_not_found":
			httperr.NotFound(c, be.Code, messageFor(be.Code))
		default:
			httperr.BadRequest(c, be.Code, messageFor(be.Code))
		}
		return
	}

	httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
}

func messageFor(code string) string {
	switch code {
	case "doctor_not_found":
		return "The doctor you're looking for doesn't exist."
	case "appointment_not_found":
		return "Appointment not found."
	case "session_not_found":
		return "Booking session not found."
	case "slot_not_selected":
		return "You need to select an available time slot to continue."
	case "slot_unavailable":
		return "That time slot is not available."
	case "invalid_state":
		return "The appointment cannot change to that status."
	case "invalid_stage":
		return "That action is not allowed at this step."
	case "invalid_status":
		return "Unknown appointment status."
	case "invalid_date":
		return "Invalid date."
	case "invalid_time":
		return "Invalid time."
	default:
		return "Request refused."
	}
}
