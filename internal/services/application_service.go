package services

import (
	"context"
	"time"

	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// StatusFilterAll - сентинел "без фильтра" в списке откликов
const StatusFilterAll = "All"

type ApplicationService interface {
	Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	List(ctx context.Context, db *gorm.DB, userID, statusFilter string) ([]*dto.ApplicationResponse, error)
	Get(ctx context.Context, db *gorm.DB, userID, applicationID string) (*dto.ApplicationResponse, error)
	Update(ctx context.Context, db *gorm.DB, userID, applicationID string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	Delete(ctx context.Context, db *gorm.DB, userID, applicationID string) error
}

type applicationService struct {
	applicationRepo repositories.ApplicationRepository
	resumeRepo      repositories.ResumeRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	resumeRepo repositories.ResumeRepository,
) ApplicationService {
	return &applicationService{
		applicationRepo: applicationRepo,
		resumeRepo:      resumeRepo,
	}
}

func (s *applicationService) Create(ctx context.Context, db *gorm.DB, userID string, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	// Резюме должно существовать (NotFound) и принадлежать автору (Forbidden) -
	// проверяется до любой мутации
	resume, err := s.resumeRepo.FindByID(db, req.ResumeID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrResumeNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Resume not found")
		}
		return nil, apperrors.InternalError(err)
	}
	if err := checkOwnership(resume.UserID, userID, "application"); err != nil {
		return nil, err
	}

	status := models.ApplicationStatusApplied
	if req.Status != "" {
		if !models.IsValidApplicationStatus(req.Status) {
			return nil, apperrors.ErrInvalidStatus("application", "Unknown application status: "+req.Status)
		}
		status = models.ApplicationStatus(req.Status)
	}

	applicationDate := time.Now()
	if req.ApplicationDate != nil {
		applicationDate = *req.ApplicationDate
	}

	app := &models.Application{
		UserID:          userID,
		ResumeID:        req.ResumeID,
		Company:         req.Company,
		Role:            req.Role,
		Status:          status,
		ApplicationDate: applicationDate,
		Notes:           req.Notes,
	}

	if err := s.applicationRepo.Create(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}

	app.Resume = resume
	return buildApplicationResponse(app), nil
}

func (s *applicationService) List(ctx context.Context, db *gorm.DB, userID, statusFilter string) ([]*dto.ApplicationResponse, error) {
	var status models.ApplicationStatus
	if statusFilter != "" && statusFilter != StatusFilterAll {
		if !models.IsValidApplicationStatus(statusFilter) {
			return nil, apperrors.ErrInvalidStatus("application", "Unknown application status: "+statusFilter)
		}
		status = models.ApplicationStatus(statusFilter)
	}

	apps, err := s.applicationRepo.FindByUser(db, userID, status)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.attachResumes(db, apps); err != nil {
		return nil, err
	}

	responses := make([]*dto.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, buildApplicationResponse(&apps[i]))
	}
	return responses, nil
}

func (s *applicationService) Get(ctx context.Context, db *gorm.DB, userID, applicationID string) (*dto.ApplicationResponse, error) {
	app, err := s.findOwned(db, userID, applicationID)
	if err != nil {
		return nil, err
	}

	// Резюме могло быть удалено: ссылка остается висячей, Get все равно успешен
	if resume, err := s.resumeRepo.FindByID(db, app.ResumeID); err == nil {
		app.Resume = resume
	}

	return buildApplicationResponse(app), nil
}

func (s *applicationService) Update(ctx context.Context, db *gorm.DB, userID, applicationID string, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	app, err := s.findOwned(db, userID, applicationID)
	if err != nil {
		return nil, err
	}

	if !req.IsEmpty() {
		// Валидатор не отличает nil-указатель от указателя на пустую строку,
		// поэтому обязательные поля проверяются здесь
		if req.Company != nil {
			if *req.Company == "" {
				return nil, apperrors.NewBadRequestError("Company cannot be empty")
			}
			app.Company = *req.Company
		}
		if req.Role != nil {
			if *req.Role == "" {
				return nil, apperrors.NewBadRequestError("Role cannot be empty")
			}
			app.Role = *req.Role
		}
		if req.Status != nil {
			if !models.IsValidApplicationStatus(*req.Status) {
				return nil, apperrors.ErrInvalidStatus("application", "Unknown application status: "+*req.Status)
			}
			app.Status = models.ApplicationStatus(*req.Status)
		}
		if req.ApplicationDate != nil {
			app.ApplicationDate = *req.ApplicationDate
		}
		if req.Notes != nil {
			app.Notes = *req.Notes
		}

		if err := s.applicationRepo.Update(db, app); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	if resume, err := s.resumeRepo.FindByID(db, app.ResumeID); err == nil {
		app.Resume = resume
	}
	return buildApplicationResponse(app), nil
}

func (s *applicationService) Delete(ctx context.Context, db *gorm.DB, userID, applicationID string) error {
	app, err := s.findOwned(db, userID, applicationID)
	if err != nil {
		return err
	}

	// Никаких каскадных эффектов на резюме
	if err := s.applicationRepo.Delete(db, app.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *applicationService) findOwned(db *gorm.DB, userID, applicationID string) (*models.Application, error) {
	app, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrNotFound(err, "application", "Application not found")
		}
		return nil, apperrors.InternalError(err)
	}

	if err := checkOwnership(app.UserID, userID, "application"); err != nil {
		return nil, err
	}
	return app, nil
}

// attachResumes пакетно резолвит ссылки на резюме; удаленные резюме
// оставляют Resume == nil
func (s *applicationService) attachResumes(db *gorm.DB, apps []models.Application) error {
	if len(apps) == 0 {
		return nil
	}

	ids := make([]string, 0, len(apps))
	seen := make(map[string]bool, len(apps))
	for i := range apps {
		if !seen[apps[i].ResumeID] {
			seen[apps[i].ResumeID] = true
			ids = append(ids, apps[i].ResumeID)
		}
	}

	resumes, err := s.resumeRepo.FindByIDs(db, ids)
	if err != nil {
		return apperrors.InternalError(err)
	}

	for i := range apps {
		apps[i].Resume = resumes[apps[i].ResumeID]
	}
	return nil
}

func buildApplicationResponse(a *models.Application) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:              a.ID,
		ResumeID:        a.ResumeID,
		Company:         a.Company,
		Role:            a.Role,
		Status:          string(a.Status),
		ApplicationDate: a.ApplicationDate,
		Notes:           a.Notes,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.Resume != nil {
		resp.Resume = &dto.ResumeRef{
			ID:           a.Resume.ID,
			OriginalName: a.Resume.OriginalName,
			FileName:     a.Resume.FileName,
		}
	}
	return resp
}
