package repositories

import (
	"errors"

	"jobtrack_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

// StatusCount - одна строка агрегации GROUP BY status
type StatusCount struct {
	Status models.ApplicationStatus
	Count  int64
}

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByUser(db *gorm.DB, userID string, status models.ApplicationStatus) ([]models.Application, error)
	FindRecentByUser(db *gorm.DB, userID string, limit int) ([]models.Application, error)
	Update(db *gorm.DB, app *models.Application) error
	Delete(db *gorm.DB, id string) error
	CountByUser(db *gorm.DB, userID string) (int64, error)
	CountByStatus(db *gorm.DB, userID string) ([]StatusCount, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

// FindByUser возвращает отклики пользователя, опционально отфильтрованные
// по одному статусу (пустой статус = без фильтра). Новые сверху; при равной
// дате отклика порядок стабилен за счет created_at.
func (r *ApplicationRepositoryImpl) FindByUser(db *gorm.DB, userID string, status models.ApplicationStatus) ([]models.Application, error) {
	query := db.Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var apps []models.Application
	err := query.
		Order("application_date DESC").
		Order("created_at DESC").
		Order("id").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// FindRecentByUser возвращает последние отклики по дате подачи
func (r *ApplicationRepositoryImpl) FindRecentByUser(db *gorm.DB, userID string, limit int) ([]models.Application, error) {
	var apps []models.Application
	err := db.Where("user_id = ?", userID).
		Order("application_date DESC").
		Order("created_at DESC").
		Limit(limit).
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *ApplicationRepositoryImpl) Update(db *gorm.DB, app *models.Application) error {
	return db.Save(app).Error
}

func (r *ApplicationRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Delete(&models.Application{}, "id = ?", id).Error
}

func (r *ApplicationRepositoryImpl) CountByUser(db *gorm.DB, userID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// CountByStatus считает отклики пользователя по статусам. Статусы без
// записей в выборку не попадают - нулевое заполнение делает сервис.
func (r *ApplicationRepositoryImpl) CountByStatus(db *gorm.DB, userID string) ([]StatusCount, error) {
	var counts []StatusCount
	err := db.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
