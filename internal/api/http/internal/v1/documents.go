package v1

import (
	"errors"
	"io"
	"net/http"

	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/service"
	"github.com/skyticket/backend/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedDocumentTypes = []string{"image/jpeg", "image/png", "application/pdf"}

// @Summary Get Document
// @Tags Documents
// @Description Identity document of the current user
// @ModuleID getDocument
// @Accept  json
// @Produce  json
// @Success 200 {object} domain.UserDocument
// @Failure 401
// @Failure 404 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /users/me/document [get]
func (h *Handler) getDocument(c *gin.Context) {
	userID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	document, err := h.services.Documents.GetDocument(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			errorStatusResponse(c, http.StatusNotFound, DocumentNotFoundCode)
			return
		}
		logger.Error("get document failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, document)
}

type uploadDocumentRequest struct {
	NationalCode   string `form:"national_code" binding:"required,numeric,len=10"`
	PassportNumber string `form:"passport_number" binding:"omitempty,alphanum,max=20"`
}

type uploadDocumentResponse struct {
	Document *domain.UserDocument `json:"document"`
	Message  string               `json:"message"`
}

// @Summary Upload Document
// @Tags Documents
// @Description Upload or replace the identity document of the user. Only the user may do this.
// @ModuleID uploadDocument
// @Accept  multipart/form-data
// @Produce  json
// @Param id path string true "user id"
// @Param national_code formData string true "national code"
// @Param passport_number formData string false "passport number"
// @Param file formData file true "scan of the document (jpeg, png or pdf)"
// @Success 200 {object} uploadDocumentResponse
// @Failure 400 {object} ErrorStruct
// @Failure 401
// @Failure 403 {object} ErrorStruct
// @Failure 413 {object} ErrorStruct
// @Failure 500 {object} ErrorStruct
// @Security UserAuth
// @Router /users/{id}/document [put]
func (h *Handler) uploadDocument(c *gin.Context) {
	requesterID, err := h.getUserUUID(c)
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		errorStatusResponse(c, http.StatusNotFound, UserNotFoundCode)
		return
	}

	// Foreign uploads are rejected before the multipart body is parsed.
	if requesterID != userID {
		errorStatusResponse(c, http.StatusForbidden, ForbiddenCode)
		return
	}

	maxSize := h.config.HttpServer.MaxUploadSize
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize+1<<20)

	var req uploadDocumentRequest
	if err := c.ShouldBind(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			errorStatusResponse(c, http.StatusRequestEntityTooLarge, DocumentTooLargeCode)
			return
		}
		validationErrorResponse(c, err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		errorResponse(c, DocumentFileRequiredCode)
		return
	}
	if fileHeader.Size > maxSize {
		errorStatusResponse(c, http.StatusRequestEntityTooLarge, DocumentTooLargeCode)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("open uploaded file failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}
	defer file.Close()

	mtype, err := mimetype.DetectReader(file)
	if err != nil {
		logger.Error("detect uploaded file type failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}
	if !mimetype.EqualsAny(mtype.String(), allowedDocumentTypes...) {
		errorResponse(c, DocumentTypeInvalidCode)
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		logger.Error("rewind uploaded file failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	document, err := h.services.Documents.UploadDocument(c.Request.Context(), requesterID, service.UploadDocumentInput{
		UserID:         userID,
		NationalCode:   req.NationalCode,
		PassportNumber: req.PassportNumber,
		FileName:       "document" + mtype.Extension(),
		ContentType:    mtype.String(),
		File:           file,
	})
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			errorStatusResponse(c, http.StatusForbidden, ForbiddenCode)
			return
		}
		logger.Error("upload document failed", zap.Error(err))
		internalErrorResponse(c)
		return
	}

	c.JSON(http.StatusOK, uploadDocumentResponse{Document: document, Message: "مدارک با موفقیت ثبت شد"})
}
