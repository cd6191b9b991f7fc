package handlers

import (
	"fmt"
	"io"
	"net/http"

	"jobtrack_backend/internal/middleware"
	"jobtrack_backend/internal/services"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// maxMultipartMemory - буфер парсинга multipart-формы (сам лимит размера
// файла проверяет FileService)
const maxMultipartMemory = 10 << 20

type ResumeHandler struct {
	*BaseHandler
	resumeService services.ResumeService
}

func NewResumeHandler(base *BaseHandler, resumeService services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		BaseHandler:   base,
		resumeService: resumeService,
	}
}

func (h *ResumeHandler) RegisterRoutes(r *gin.RouterGroup) {
	resumes := r.Group("/resumes")
	resumes.Use(middleware.AuthMiddleware())
	{
		resumes.POST("/upload", h.Upload)
		resumes.GET("", h.List)
		resumes.GET("/:resumeId", h.Get)
		resumes.GET("/:resumeId/file", h.GetFile)
		resumes.PUT("/:resumeId", h.Update)
		resumes.DELETE("/:resumeId", h.Delete)
	}
}

// Upload - загрузка нового резюме (multipart: file + originalName + notes)
func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := c.Request.ParseMultipartForm(maxMultipartMemory); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
		return
	}

	// Метаданные приходят полями формы, а не JSON
	var req dto.UploadResumeRequest
	if err := c.ShouldBind(&req); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("invalid form data: "+err.Error()))
		return
	}
	if !h.validate(c, &req) {
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Please upload a PDF file"))
		return
	}

	response, err := h.resumeService.Upload(c.Request.Context(), h.GetDB(c), userID, &req, fileHeader)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

// List - все резюме пользователя, новые сверху
func (h *ResumeHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.resumeService.List(c.Request.Context(), h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Get - одно резюме по id
func (h *ResumeHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	response, err := h.resumeService.Get(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetFile - отдача сохраненного PDF
func (h *ResumeHandler) GetFile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	rc, resume, err := h.resumeService.GetFile(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", resume.OriginalName+".pdf"))
	c.Header("Content-Type", resume.MimeType)
	if resume.Size > 0 {
		c.Header("Content-Length", fmt.Sprintf("%d", resume.Size))
	}

	if _, err := io.Copy(c.Writer, rc); err != nil {
		// Заголовки уже ушли, остается только залогировать
		_ = c.Error(err)
	}
}

// Update - частичное обновление имени/заметок
func (h *ResumeHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateResumeRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.resumeService.Update(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Delete - удаление резюме вместе с файлом
func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), h.GetDB(c), userID, c.Param("resumeId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}
