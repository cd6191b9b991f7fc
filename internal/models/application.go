package models

import "time"

// Application - отклик на вакансию, ссылается на использованное резюме.
// ResumeID неизменяем после создания и НЕ каскадируется при удалении резюме:
// история откликов сохраняется, ссылка может стать висячей.
type Application struct {
	BaseModel
	UserID          string            `gorm:"type:uuid;not null;index" json:"user_id"`
	ResumeID        string            `gorm:"type:uuid;not null;index" json:"resume_id"`
	Company         string            `gorm:"not null" json:"company"`
	Role            string            `gorm:"not null" json:"role"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;default:'Applied'" json:"status"`
	ApplicationDate time.Time         `json:"application_date"`
	Notes           string            `gorm:"default:''" json:"notes"`

	// Заполняется вручную в сервисе; constraint в БД намеренно отсутствует,
	// чтобы удаление резюме не трогало отклики
	Resume *Resume `gorm:"-" json:"resume,omitempty"`
}
