package handlers

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/robot-coder/converso-multimodal/api/http/presenter"
	"github.com/robot-coder/converso-multimodal/pkg/conversation"
)

type MediaHandler struct {
	store conversation.MediaStore
}

func NewMediaHandler(store conversation.MediaStore) *MediaHandler {
	return &MediaHandler{store: store}
}

// Upload stores a media file on its own, outside any conversation.
// @Summary Upload media
// @Tags    media
// @Accept  mpfd
// @Produce json
// @Param   file formData file true "File to store"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /upload_media [post]
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "file is required")
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, maxUploadBytes)
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	url, err := h.store.Save(c.Context(), data, fh.Filename)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Media upload failed: %v", err))
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"media_url": url})
}
