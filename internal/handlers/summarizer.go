package handlers

import (
	"errors"
	"io"
	"net/http"

	"booksmart/internal/summarizer"

	"github.com/gin-gonic/gin"
)

// Summarize accepts raw text or a PDF upload (text wins when both are
// supplied) and returns a retrieval-augmented summary for the user.
func (h *Handler) Summarize(c *gin.Context) {
	userID := c.PostForm("user_id")
	if userID == "" {
		h.handleError(c, http.StatusBadRequest, "user_id is required", errors.New("missing user_id form field"))
		return
	}
	userInstructions := c.PostForm("user_instructions")
	text := c.PostForm("text")

	var docs []string
	switch {
	case text != "":
		docs = []string{text}
	default:
		fileHeader, err := c.FormFile("file")
		if err != nil {
			h.handleError(c, http.StatusBadRequest, "Either text or a PDF file must be provided.", err)
			return
		}
		if fileHeader.Header.Get("Content-Type") != "application/pdf" {
			h.handleError(c, http.StatusBadRequest, "Only PDF files are supported.",
				errors.New("unsupported upload content type"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			h.handleError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			h.handleError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
			return
		}

		docs, err = summarizer.ExtractPDF(data)
		if err != nil {
			h.handleError(c, http.StatusBadRequest, "Only PDF files are supported.", err)
			return
		}
	}

	summary, err := h.summarizer.Summarize(c.Request.Context(), userID, docs, userInstructions)
	if err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to generate summary: "+err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
