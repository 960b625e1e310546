package api

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	echo "github.com/labstack/echo/v5"
	"github.com/google/uuid"

	"github.com/Mootbing/angine/pkg/auth"
	"github.com/Mootbing/angine/pkg/models"
)

// uploadHandler handles POST /api/v1/jobs/upload: a multipart attachment
// upload, optionally pre-bound to an existing job via the jobId form field.
func (s *Server) uploadHandler(c *echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return newAPIError(http.StatusBadRequest, CodeMissingFile, "multipart field 'file' is required")
	}
	if fileHeader.Size > maxUploadBytes {
		return newAPIError(http.StatusBadRequest, CodeFileTooLarge,
			fmt.Sprintf("file exceeds the %d byte limit", maxUploadBytes))
	}

	jobID := c.FormValue("jobId")
	if jobID != "" {
		// Binding to an existing job requires the caller to own it.
		j, err := s.store.Get(c.Request().Context(), jobID)
		if err != nil {
			return mapServiceError(err)
		}
		cred := credentialFrom(c)
		if j.APIKeyID != cred.ID && !auth.HasScope(auth.ScopeAdmin, cred.Scopes) {
			return newAPIError(http.StatusNotFound, CodeNotFound, "resource not found")
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return newAPIError(http.StatusBadRequest, CodeMissingFile, "failed to read uploaded file")
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return newAPIError(http.StatusBadRequest, CodeMissingFile, "failed to read uploaded file")
	}
	if int64(len(data)) > maxUploadBytes {
		return newAPIError(http.StatusBadRequest, CodeFileTooLarge,
			fmt.Sprintf("file exceeds the %d byte limit", maxUploadBytes))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	storagePath := fmt.Sprintf("attachments/%s/%s", uuid.New().String(), fileHeader.Filename)
	publicURL, err := s.objectStore.Upload(c.Request().Context(), storagePath, data, contentType)
	if err != nil {
		return newAPIError(http.StatusInternalServerError, CodeUploadError,
			"object store rejected the upload")
	}

	att, err := s.store.CreateAttachment(c.Request().Context(), jobID,
		fileHeader.Filename, contentType, storagePath, publicURL, int64(len(data)))
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, models.UploadResponse{
		ID:          att.ID,
		Filename:    att.Filename,
		MimeType:    att.MimeType,
		SizeBytes:   att.SizeBytes,
		StoragePath: att.StoragePath,
		PublicURL:   att.PublicURL,
	})
}
