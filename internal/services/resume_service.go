package services

import (
	"context"
	"io"
	"mime/multipart"
	"time"

	"jobtrack_backend/internal/logger"
	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ResumeService interface {
	Upload(ctx context.Context, db *gorm.DB, userID string, req *dto.UploadResumeRequest, file *multipart.FileHeader) (*dto.ResumeResponse, error)
	List(ctx context.Context, db *gorm.DB, userID string) ([]*dto.ResumeResponse, error)
	Get(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error)
	Update(ctx context.Context, db *gorm.DB, userID, resumeID string, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error)
	Delete(ctx context.Context, db *gorm.DB, userID, resumeID string) error

	// GetFile отдает поток сохраненного PDF для выдачи клиенту
	GetFile(ctx context.Context, db *gorm.DB, userID, resumeID string) (io.ReadCloser, *models.Resume, error)
}

type resumeService struct {
	resumeRepo  repositories.ResumeRepository
	fileService FileService
}

func NewResumeService(resumeRepo repositories.ResumeRepository, fileService FileService) ResumeService {
	return &resumeService{
		resumeRepo:  resumeRepo,
		fileService: fileService,
	}
}

func (s *resumeService) Upload(ctx context.Context, db *gorm.DB, userID string, req *dto.UploadResumeRequest, file *multipart.FileHeader) (*dto.ResumeResponse, error) {
	if file == nil {
		return nil, apperrors.NewBadRequestError("Please upload a PDF file")
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.NewBadRequestError("Failed to read uploaded file")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")

	// Сначала файл, потом метаданные: висячая запись без байтов хуже,
	// чем осиротевший файл (его находит и логирует откат ниже)
	fileName, err := s.fileService.Store(ctx, src, file.Filename, contentType, file.Size)
	if err != nil {
		return nil, err
	}

	resume := &models.Resume{
		UserID:       userID,
		FileName:     fileName,
		OriginalName: req.OriginalName,
		Notes:        req.Notes,
		MimeType:     contentType,
		Size:         file.Size,
		UploadDate:   time.Now(),
	}

	if err := s.resumeRepo.Create(db, resume); err != nil {
		logger.CtxWithError(ctx, "resume record creation failed, removing stored file", err, "file", fileName)
		if delErr := s.fileService.Delete(ctx, fileName); delErr != nil {
			logger.CtxWithError(ctx, "orphaned resume file left in storage", delErr, "file", fileName)
		}
		return nil, apperrors.InternalError(err)
	}

	return buildResumeResponse(resume), nil
}

func (s *resumeService) List(ctx context.Context, db *gorm.DB, userID string) ([]*dto.ResumeResponse, error) {
	resumes, err := s.resumeRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ResumeResponse, 0, len(resumes))
	for i := range resumes {
		responses = append(responses, buildResumeResponse(&resumes[i]))
	}
	return responses, nil
}

func (s *resumeService) Get(ctx context.Context, db *gorm.DB, userID, resumeID string) (*dto.ResumeResponse, error) {
	resume, err := s.findOwned(db, userID, resumeID)
	if err != nil {
		return nil, err
	}
	return buildResumeResponse(resume), nil
}

func (s *resumeService) Update(ctx context.Context, db *gorm.DB, userID, resumeID string, req *dto.UpdateResumeRequest) (*dto.ResumeResponse, error) {
	resume, err := s.findOwned(db, userID, resumeID)
	if err != nil {
		return nil, err
	}

	// Запрос без полей - no-op, текущее состояние возвращается как есть
	if req.IsEmpty() {
		return buildResumeResponse(resume), nil
	}

	if req.OriginalName != nil {
		// nil-указатель и указатель на пустую строку для валидатора
		// неразличимы, обязательность проверяется здесь
		if *req.OriginalName == "" {
			return nil, apperrors.NewBadRequestError("Resume name cannot be empty")
		}
		resume.OriginalName = *req.OriginalName
	}
	if req.Notes != nil {
		resume.Notes = *req.Notes
	}

	if err := s.resumeRepo.Update(db, resume); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return buildResumeResponse(resume), nil
}

func (s *resumeService) Delete(ctx context.Context, db *gorm.DB, userID, resumeID string) error {
	resume, err := s.findOwned(db, userID, resumeID)
	if err != nil {
		return err
	}

	// Файл удаляется best-effort: неудача логируется, но не блокирует
	// удаление записи. Отклики, ссылающиеся на это резюме, не трогаются.
	if err := s.fileService.Delete(ctx, resume.FileName); err != nil {
		logger.CtxWithError(ctx, "failed to delete resume file, record will be removed anyway", err, "file", resume.FileName)
	}

	if err := s.resumeRepo.Delete(db, resume.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *resumeService) GetFile(ctx context.Context, db *gorm.DB, userID, resumeID string) (io.ReadCloser, *models.Resume, error) {
	resume, err := s.findOwned(db, userID, resumeID)
	if err != nil {
		return nil, nil, err
	}

	rc, err := s.fileService.Retrieve(ctx, resume.FileName)
	if err != nil {
		return nil, nil, err
	}
	return rc, resume, nil
}

// findOwned - проверка существования, затем владения (в этом порядке)
func (s *resumeService) findOwned(db *gorm.DB, userID, resumeID string) (*models.Resume, error) {
	resume, err := s.resumeRepo.FindByID(db, resumeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrNotFound(err, "resume", "Resume not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := checkOwnership(resume.UserID, userID, "resume"); err != nil {
		return nil, err
	}
	return resume, nil
}

func buildResumeResponse(r *models.Resume) *dto.ResumeResponse {
	return &dto.ResumeResponse{
		ID:           r.ID,
		OriginalName: r.OriginalName,
		FileName:     r.FileName,
		Notes:        r.Notes,
		MimeType:     r.MimeType,
		Size:         r.Size,
		UploadDate:   r.UploadDate,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
