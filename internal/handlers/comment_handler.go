package handlers

import (
	"fileshare-api/internal/auth"
	"fileshare-api/internal/registry"
	"fileshare-api/internal/requests"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	registry *registry.Registry
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(reg *registry.Registry) *CommentHandler {
	return &CommentHandler{
		registry: reg,
	}
}

// CreateComment appends a comment to a file the principal can view
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	principal, ok := auth.FromContext(c)
	if !ok {
		response := httpx.Unauthorized("Missing authenticated principal")
		return httpx.SendResponse(c, response)
	}

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.CreateCommentRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	comment, err := h.registry.AddComment(principal, fileID, input.Text)
	if err != nil {
		return sendRegistryError(c, "Failed to add comment", err)
	}

	response := httpx.Created("Comment added successfully", comment)
	return httpx.SendResponse(c, response)
}

// ListComments returns the comments of a file, oldest first
func (h *CommentHandler) ListComments(c *fiber.Ctx) error {
	principal, ok := auth.FromContext(c)
	if !ok {
		response := httpx.Unauthorized("Missing authenticated principal")
		return httpx.SendResponse(c, response)
	}

	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	comments, err := h.registry.ListComments(principal, fileID)
	if err != nil {
		return sendRegistryError(c, "Failed to fetch comments", err)
	}

	response := httpx.OK("Comments retrieved successfully", comments)
	return httpx.SendResponse(c, response)
}
