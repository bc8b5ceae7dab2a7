package handlers

import (
	"errors"
	"log"

	"fileshare-api/internal/access"
	"fileshare-api/internal/auth"
	"fileshare-api/internal/config"
	"fileshare-api/internal/registry"
	"fileshare-api/internal/requests"
	"fileshare-api/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"
)

// FileHandler handles file-related HTTP requests
type FileHandler struct {
	registry *registry.Registry
}

// NewFileHandler creates a new file handler
func NewFileHandler(reg *registry.Registry) *FileHandler {
	return &FileHandler{
		registry: reg,
	}
}

// sendRegistryError maps registry errors to HTTP responses.
func sendRegistryError(c *fiber.Ctx, msg string, err error) error {
	switch {
	case errors.Is(err, registry.ErrNotFound):
		return httpx.SendResponse(c, httpx.NotFound("File not found"))
	case errors.Is(err, registry.ErrForbidden):
		return httpx.SendResponse(c, httpx.Forbidden("Only the owner may delete a file"))
	case errors.Is(err, registry.ErrValidation):
		return httpx.SendResponse(c, httpx.BadRequest(msg, err))
	default:
		log.Printf("%s: %v", msg, err)
		return httpx.SendResponse(c, httpx.InternalServerError(msg, err))
	}
}

// UploadFile handles file upload requests
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	principal, ok := auth.FromContext(c)
	if !ok {
		response := httpx.Unauthorized("Missing authenticated principal")
		return httpx.SendResponse(c, response)
	}

	// Parse multipart form
	file, err := c.FormFile("file")
	if err != nil {
		response := httpx.BadRequest("No file provided", err)
		return httpx.SendResponse(c, response)
	}

	// Parse additional form data
	var input requests.UploadFileRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	// Validate request
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	// Upload gate: size and blocked extensions
	cfg := config.GetConfig().Fileshare.Validation
	if cfg.MaxFileSize > 0 && file.Size > cfg.MaxFileSize {
		response := httpx.BadRequest("File exceeds the maximum allowed size", nil)
		return httpx.SendResponse(c, response)
	}
	ext := utils.GetFileExtension(file.Filename)
	for _, blocked := range cfg.BlockedExtensions {
		if ext == blocked {
			response := httpx.BadRequest("File type ."+ext+" is not allowed", nil)
			return httpx.SendResponse(c, response)
		}
	}

	src, err := file.Open()
	if err != nil {
		response := httpx.InternalServerError("Failed to open uploaded file", err)
		return httpx.SendResponse(c, response)
	}
	defer src.Close()

	record, err := h.registry.Create(principal, registry.Upload{
		OriginalName: file.Filename,
		Description:  input.Description,
		ContentType:  file.Header.Get("Content-Type"),
		Size:         file.Size,
		Content:      src,
	})
	if err != nil {
		return sendRegistryError(c, "Failed to upload file", err)
	}

	response := httpx.Created("File uploaded successfully", record)
	return httpx.SendResponse(c, response)
}

// ListFiles returns the files the principal may view, newest first
func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	principal, ok := auth.FromContext(c)
	if !ok {
		response := httpx.Unauthorized("Missing authenticated principal")
		return httpx.SendResponse(c, response)
	}

	files, err := h.registry.ListVisible(principal)
	if err != nil {
		return sendRegistryError(c, "Failed to list files", err)
	}

	response := httpx.OK("Files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}

// GetFile retrieves file information together with its comments
func (h *FileHandler) GetFile(c *fiber.Ctx) error {
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

	file, err := h.registry.GetForAccess(principal, fileID, access.CapabilityView)
	if err != nil {
		return sendRegistryError(c, "Failed to fetch file", err)
	}

	comments, err := h.registry.ListComments(principal, fileID)
	if err != nil {
		return sendRegistryError(c, "Failed to fetch comments", err)
	}
	file.Comments = comments

	response := httpx.OK("File retrieved successfully", file)
	return httpx.SendResponse(c, response)
}

// DownloadFile streams the blob under its original name
func (h *FileHandler) DownloadFile(c *fiber.Ctx) error {
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

	file, blob, err := h.registry.Open(principal, fileID)
	if err != nil {
		return sendRegistryError(c, "Failed to open file", err)
	}

	c.Set(fiber.HeaderContentDisposition, utils.ContentDisposition(file.OriginalName))
	if file.ContentType != "" {
		c.Set(fiber.HeaderContentType, file.ContentType)
	}
	return c.SendStream(blob)
}

// DeleteFile deletes a file the principal owns
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
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

	if err := h.registry.Delete(principal, fileID); err != nil {
		return sendRegistryError(c, "Failed to delete file", err)
	}

	response := httpx.OK("File deleted successfully", nil)
	return httpx.SendResponse(c, response)
}
