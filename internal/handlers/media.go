package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/m1z23r/drift/pkg/drift"

	"github.com/dimitrije/places-api/internal/services"
	"github.com/dimitrije/places-api/pkg/dto"
)

// maxUploadSize caps uploaded images at 5 MiB.
const maxUploadSize = 5 << 20

type MediaHandler struct {
	media *services.MediaService
}

func NewMediaHandler(media *services.MediaService) *MediaHandler {
	return &MediaHandler{media: media}
}

func (h *MediaHandler) Gallery(c *drift.Context) {
	images, err := h.media.Gallery()
	if err != nil {
		c.InternalServerError("failed to load gallery")
		return
	}
	_ = c.JSON(http.StatusOK, images)
}

func (h *MediaHandler) Upload(c *drift.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadSize); err != nil {
		c.BadRequest("invalid multipart form")
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.BadRequest("no file was uploaded")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		c.InternalServerError("failed to read uploaded file")
		return
	}
	if len(data) > maxUploadSize {
		c.BadRequest("file too large (max 5MB)")
		return
	}

	image, err := h.media.Save(header.Filename, data)
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedImageType) {
			c.BadRequest("only JPEG, PNG, GIF and WebP images are allowed")
			return
		}
		c.InternalServerError("failed to store file")
		return
	}

	_ = c.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		Filename: image.Filename,
		URL:      image.URL,
		Message:  "file uploaded",
	})
}

func (h *MediaHandler) Delete(c *drift.Context) {
	if err := h.media.Remove(c.Param("filename")); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			c.NotFound("file not found")
			return
		}
		c.InternalServerError("failed to delete file")
		return
	}
	_ = c.JSON(http.StatusOK, dto.DeleteFileResponse{
		Success: true,
		Message: "file deleted",
	})
}
