package services

import (
	"context"

	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// recentApplicationsLimit - размер ленты недавних откликов на дашборде
const recentApplicationsLimit = 5

type DashboardService interface {
	GetStats(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardStats, error)
}

type dashboardService struct {
	applicationRepo repositories.ApplicationRepository
	resumeRepo      repositories.ResumeRepository
}

func NewDashboardService(
	applicationRepo repositories.ApplicationRepository,
	resumeRepo repositories.ResumeRepository,
) DashboardService {
	return &dashboardService{
		applicationRepo: applicationRepo,
		resumeRepo:      resumeRepo,
	}
}

// GetStats собирает сводку по текущему состоянию хранилищ.
// Карта статусов всегда содержит все четыре ключа, нули включительно.
func (s *dashboardService) GetStats(ctx context.Context, db *gorm.DB, userID string) (*dto.DashboardStats, error) {
	totalApplications, err := s.applicationRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalResumes, err := s.resumeRepo.CountByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	stats := make(map[string]int64, len(models.AllApplicationStatuses))
	for _, status := range models.AllApplicationStatuses {
		stats[string(status)] = 0
	}

	counts, err := s.applicationRepo.CountByStatus(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, c := range counts {
		stats[string(c.Status)] = c.Count
	}

	recent, err := s.applicationRepo.FindRecentByUser(db, userID, recentApplicationsLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Подтягиваем имена резюме для ленты недавних
	ids := make([]string, 0, len(recent))
	for i := range recent {
		ids = append(ids, recent[i].ResumeID)
	}
	resumes, err := s.resumeRepo.FindByIDs(db, ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	recentResponses := make([]*dto.ApplicationResponse, 0, len(recent))
	for i := range recent {
		recent[i].Resume = resumes[recent[i].ResumeID]
		recentResponses = append(recentResponses, buildApplicationResponse(&recent[i]))
	}

	return &dto.DashboardStats{
		TotalApplications:  totalApplications,
		TotalResumes:       totalResumes,
		Stats:              stats,
		RecentApplications: recentResponses,
	}, nil
}
