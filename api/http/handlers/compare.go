package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/robot-coder/converso-multimodal/api/http/presenter"
	"github.com/robot-coder/converso-multimodal/pkg/compare"
)

type CompareHandler struct {
	uc compare.UseCase
}

func NewCompareHandler(uc compare.UseCase) *CompareHandler { return &CompareHandler{uc: uc} }

// Compare sends one message to several backends and returns all answers.
// @Summary Compare model answers
// @Description Relays the same message to each requested backend independently; a failing backend yields a fixed placeholder instead of aborting the comparison.
// @Tags    compare
// @Accept  mpfd
// @Produce json
// @Param   message formData string true "Message to relay"
// @Param   models  formData []string true "Backend identifiers (repeat the field)"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /compare_models [post]
func (h *CompareHandler) Compare(c *fiber.Ctx) error {
	message := c.FormValue("message")
	models := formValues(c, "models")
	if message == "" || len(models) == 0 {
		return presenter.Error(c, http.StatusBadRequest, "message and models are required")
	}
	results := h.uc.Compare(c.Context(), message, models)
	return presenter.JSON(c, http.StatusOK, results)
}

// formValues collects every value of a repeated form field, from multipart
// bodies and url-encoded ones alike.
func formValues(c *fiber.Ctx, key string) []string {
	if form, err := c.MultipartForm(); err == nil && form != nil {
		if vs := form.Value[key]; len(vs) > 0 {
			return vs
		}
	}
	var vals []string
	for _, v := range c.Request().PostArgs().PeekMulti(key) {
		vals = append(vals, string(v))
	}
	return vals
}
