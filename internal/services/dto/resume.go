package dto

import "time"

// ==========================
// Requests
// ==========================

// UploadResumeRequest - метаданные загрузки; сам файл приходит
// отдельной частью multipart-формы
type UploadResumeRequest struct {
	OriginalName string `form:"originalName" json:"originalName" validate:"required,min=1"`
	Notes        string `form:"notes" json:"notes" validate:"omitempty,max=2000"`
}

// UpdateResumeRequest - частичное обновление: nil означает "не трогать",
// пустая строка в Notes - "очистить". Имя файла и владелец неизменяемы.
type UpdateResumeRequest struct {
	OriginalName *string `json:"originalName,omitempty" validate:"omitempty,min=1"`
	Notes        *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// IsEmpty - запрос без единого поля является no-op'ом, а не ошибкой
func (r *UpdateResumeRequest) IsEmpty() bool {
	return r.OriginalName == nil && r.Notes == nil
}

// ==========================
// Responses
// ==========================

type ResumeResponse struct {
	ID           string    `json:"id"`
	OriginalName string    `json:"original_name"`
	FileName     string    `json:"file_name"`
	Notes        string    `json:"notes"`
	MimeType     string    `json:"mime_type"`
	Size         int64     `json:"size"`
	UploadDate   time.Time `json:"upload_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
