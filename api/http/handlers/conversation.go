package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/robot-coder/converso-multimodal/api/http/presenter"
	"github.com/robot-coder/converso-multimodal/pkg/conversation"
	"github.com/robot-coder/converso-multimodal/pkg/llm"
	"github.com/robot-coder/converso-multimodal/pkg/media"
)

type ConversationHandler struct {
	uc conversation.UseCase
}

func NewConversationHandler(uc conversation.UseCase) *ConversationHandler {
	return &ConversationHandler{uc: uc}
}

// Start opens a new conversation.
// @Summary Start a conversation
// @Description Initializes an empty conversation with an optional theme and returns its id.
// @Tags    conversations
// @Accept  mpfd
// @Produce json
// @Param   theme formData string false "Conversation theme"
// @Success 200 {object} map[string]string
// @Router  /start_conversation [post]
func (h *ConversationHandler) Start(c *fiber.Ctx) error {
	theme := c.FormValue("theme")
	id, err := h.uc.Start(c.Context(), theme)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to start conversation")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"conversation_id": id})
}

// Send relays one user message and returns the assistant reply.
// @Summary Send a message
// @Description Appends the user message (with optional media), relays the history to the chosen backend and returns the reply.
// @Tags    conversations
// @Accept  mpfd
// @Produce json
// @Param   conversation_id formData string true  "Conversation id"
// @Param   message         formData string true  "User message"
// @Param   model_choice    formData string false "Backend identifier (default model_a)"
// @Param   media           formData file   false "Optional media attachment"
// @Success 200 {object} map[string]string
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /send_message [post]
func (h *ConversationHandler) Send(c *fiber.Ctx) error {
	conversationID := c.FormValue("conversation_id")
	message := c.FormValue("message")
	if conversationID == "" || message == "" {
		return presenter.Error(c, http.StatusBadRequest, "conversation_id and message are required")
	}
	in := conversation.SendInput{
		ConversationID: conversationID,
		Text:           message,
		Backend:        c.FormValue("model_choice", "model_a"),
	}

	if fh, err := c.FormFile("media"); err == nil && fh != nil {
		file, err := fh.Open()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded media")
		}
		data, err := readAtMost(file, maxUploadBytes)
		file.Close()
		if err != nil {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		in.Media = data
		in.MediaName = fh.Filename
	}

	res, err := h.uc.Send(c.Context(), in)
	if err != nil {
		return sendError(c, err)
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"response":        res.Response,
		"conversation_id": res.ConversationID,
	})
}

func sendError(c *fiber.Ctx, err error) error {
	var be *llm.BackendError
	switch {
	case errors.Is(err, conversation.ErrNotFound):
		return presenter.Error(c, http.StatusNotFound, "Conversation not found")
	case errors.Is(err, media.ErrStorage):
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Media upload failed: %v", err))
	case errors.As(err, &be):
		return presenter.Error(c, http.StatusBadGateway, fmt.Sprintf("LLM API error: %s", be.Detail))
	default:
		return presenter.Error(c, http.StatusInternalServerError, fmt.Sprintf("Unexpected error: %v", err))
	}
}

// Get returns the full conversation history.
// @Summary Get a conversation
// @Tags    conversations
// @Produce json
// @Param   conversation_id query string true "Conversation id"
// @Success 200 {object} conversation.Conversation
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /get_conversation [get]
func (h *ConversationHandler) Get(c *fiber.Ctx) error {
	id := c.Query("conversation_id")
	if id == "" {
		return presenter.Error(c, http.StatusBadRequest, "conversation_id is required")
	}
	conv, err := h.uc.Get(c.Context(), id)
	if err != nil {
		return presenter.Error(c, http.StatusNotFound, "Conversation not found")
	}
	return presenter.JSON(c, http.StatusOK, conv)
}

// List returns conversation summaries, paginated.
// @Summary List conversations
// @Tags    conversations
// @Produce json
// @Param   limit  query int false "Page size (max 200)"
// @Param   offset query int false "Offset"
// @Success 200 {array} conversation.Summary
// @Router  /api/v1/conversations [get]
func (h *ConversationHandler) List(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	summaries, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list conversations")
	}
	return presenter.JSON(c, http.StatusOK, summaries)
}
