// handlers_documents.go - Document conversion operation handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/docdrip/backend/internal/document"
	"github.com/docdrip/backend/internal/models"
)

// DocumentHandlerImpl implements the DocumentHandler interface
type DocumentHandlerImpl struct {
	service *document.Service
}

// NewDocumentHandler creates a new document handler instance
func NewDocumentHandler(service *document.Service) DocumentHandler {
	return &DocumentHandlerImpl{
		service: service,
	}
}

// HandleSupportedFormats returns the accepted extensions and size limit
func (h *DocumentHandlerImpl) HandleSupportedFormats(c echo.Context) error {
	registry := h.service.Registry()

	return c.JSON(http.StatusOK, models.SupportedFormatsResponse{
		SupportedFormats: registry.Extensions(),
		MaxFileSizeMB:    registry.MaxFileSizeMB(),
	})
}

// HandleConvertDocument converts an uploaded document to markdown
func (h *DocumentHandlerImpl) HandleConvertDocument(c echo.Context) error {
	upload, cleanup, err := uploadFromRequest(c)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	result, err := h.service.Process(upload)
	if err != nil {
		return translateDocumentError(err)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleValidateDocument checks an upload without converting it.
// Expected bad input still yields a 200 with the problem described.
func (h *DocumentHandlerImpl) HandleValidateDocument(c echo.Context) error {
	upload, cleanup, err := uploadFromRequest(c)
	if err != nil {
		return err
	}
	if cleanup != nil {
		defer cleanup()
	}

	return c.JSON(http.StatusOK, h.service.Validate(upload))
}

// uploadFromRequest extracts the multipart "file" part. A missing part maps
// to a nil upload so the pipeline reports its canonical message; only a
// failure to open the part is surfaced here.
func uploadFromRequest(c echo.Context) (*document.Upload, func(), error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, nil, nil
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, nil, NewInternalError("failed to open uploaded file", err)
	}

	upload := &document.Upload{
		Filename: fileHeader.Filename,
		Content:  src,
	}
	return upload, func() { src.Close() }, nil
}
