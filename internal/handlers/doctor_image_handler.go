package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/medibook/clinic-scheduler/internal/domain/booking"
	"github.com/medibook/clinic-scheduler/internal/httperr"
	"github.com/medibook/clinic-scheduler/internal/media"
)

// ======================================================
// HANDLER — DOCTOR PORTRAIT UPLOAD (admin)
// ======================================================

const maxPortraitBytes = 5 << 20 // 5 MiB

type DoctorImageHandler struct {
	repo     domain.Repository
	uploader *media.Uploader
}

func NewDoctorImageHandler(
	repo domain.Repository,
	uploader *media.Uploader,
) *DoctorImageHandler {
	return &DoctorImageHandler{
		repo:     repo,
		uploader: uploader,
	}
}

func (h *DoctorImageHandler) Upload(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_doctor_id", "Invalid doctor id.")
		return
	}

	if _, err := h.repo.GetDoctorByID(c.Request.Context(), uint(id)); err != nil {
		httperr.NotFound(c, "doctor_not_found", "The doctor you're looking for doesn't exist.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An image file is required.")
		return
	}

	if fileHeader.Size > maxPortraitBytes {
		httperr.BadRequest(c, "image_too_large", "The image exceeds the size limit.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	processed, err := media.ProcessPortrait(file)
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "The file is not a decodable image.")
		return
	}

	url, err := h.uploader.UploadPortrait(c.Request.Context(), uint(id), processed)
	if err != nil {
		httperr.Internal(c, "failed_to_upload_image", "Could not store the image.")
		return
	}

	if err := h.repo.UpdateDoctorImage(c.Request.Context(), uint(id), url); err != nil {
		httperr.Internal(c, "failed_to_update_doctor", "Could not update the doctor record.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image": url})
}
