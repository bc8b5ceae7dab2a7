package requests

// UploadFileRequest carries the form fields of a file upload (the file
// itself arrives as a multipart part).
type UploadFileRequest struct {
	Description string `json:"description" form:"description" validate:"omitempty,max=255"`
}

// CreateCommentRequest represents a comment on a file
type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
