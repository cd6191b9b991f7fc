package models

import "time"

// Resume - загруженный PDF плюс метаданные одной версии резюме.
// FileName - имя на диске/в хранилище, OriginalName - имя, которое дал пользователь.
type Resume struct {
	BaseModel
	UserID       string    `gorm:"type:uuid;not null;index" json:"user_id"`
	FileName     string    `gorm:"not null;uniqueIndex" json:"file_name"`
	OriginalName string    `gorm:"not null" json:"original_name"`
	Notes        string    `gorm:"default:''" json:"notes"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	UploadDate   time.Time `json:"upload_date"`
}
