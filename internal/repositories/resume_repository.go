package repositories

import (
	"errors"

	"jobtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrResumeNotFound = errors.New("resume not found")

type ResumeRepository interface {
	Create(db *gorm.DB, resume *models.Resume) error
	FindByID(db *gorm.DB, id string) (*models.Resume, error)
	FindByUser(db *gorm.DB, userID string) ([]models.Resume, error)
	FindByIDs(db *gorm.DB, ids []string) (map[string]*models.Resume, error)
	Update(db *gorm.DB, resume *models.Resume) error
	Delete(db *gorm.DB, id string) error
	CountByUser(db *gorm.DB, userID string) (int64, error)
}

type ResumeRepositoryImpl struct{}

func NewResumeRepository() ResumeRepository {
	return &ResumeRepositoryImpl{}
}

func (r *ResumeRepositoryImpl) Create(db *gorm.DB, resume *models.Resume) error {
	return db.Create(resume).Error
}

func (r *ResumeRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Resume, error) {
	var resume models.Resume
	err := db.First(&resume, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResumeNotFound
		}
		return nil, err
	}
	return &resume, nil
}

// FindByUser возвращает все резюме пользователя, новые сверху
func (r *ResumeRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.Resume, error) {
	var resumes []models.Resume
	err := db.Where("user_id = ?", userID).
		Order("upload_date DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// FindByIDs возвращает карту id -> резюме для пакетного резолва ссылок.
// Отсутствующие id просто не попадают в карту - это не ошибка.
func (r *ResumeRepositoryImpl) FindByIDs(db *gorm.DB, ids []string) (map[string]*models.Resume, error) {
	result := make(map[string]*models.Resume, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var resumes []models.Resume
	if err := db.Where("id IN ?", ids).Find(&resumes).Error; err != nil {
		return nil, err
	}
	for i := range resumes {
		result[resumes[i].ID] = &resumes[i]
	}
	return result, nil
}

func (r *ResumeRepositoryImpl) Update(db *gorm.DB, resume *models.Resume) error {
	return db.Save(resume).Error
}

func (r *ResumeRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Resume{}, "id = ?", id).Error
}

func (r *ResumeRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Resume{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
