package dto

import "time"

// ==========================
// Requests
// ==========================

type CreateApplicationRequest struct {
	ResumeID        string     `json:"resume_id" validate:"required"`
	Company         string     `json:"company" validate:"required,min=1"`
	Role            string     `json:"role" validate:"required,min=1"`
	Status          string     `json:"status" validate:"omitempty,is-application-status"`
	ApplicationDate *time.Time `json:"application_date,omitempty"`
	Notes           string     `json:"notes" validate:"omitempty,max=2000"`
}

// UpdateApplicationRequest - частичное обновление. nil = "не трогать",
// пустая строка в Notes = "очистить". ResumeID здесь отсутствует намеренно:
// ссылка на резюме неизменяема, присланное клиентом значение игнорируется.
type UpdateApplicationRequest struct {
	Company         *string    `json:"company,omitempty" validate:"omitempty,min=1"`
	Role            *string    `json:"role,omitempty" validate:"omitempty,min=1"`
	Status          *string    `json:"status,omitempty" validate:"omitempty,is-application-status"`
	ApplicationDate *time.Time `json:"application_date,omitempty"`
	Notes           *string    `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

func (r *UpdateApplicationRequest) IsEmpty() bool {
	return r.Company == nil && r.Role == nil && r.Status == nil &&
		r.ApplicationDate == nil && r.Notes == nil
}

// ListApplicationsQuery - фильтр списка. Пустая строка и "All" означают
// "без фильтра"; прочие значения проверяются против закрытого множества.
type ListApplicationsQuery struct {
	Status string `form:"status"`
}

// ==========================
// Responses
// ==========================

// ResumeRef - краткая ссылка на резюме внутри ответа об отклике.
// nil, когда резюме было удалено (висячая ссылка - документированное поведение).
type ResumeRef struct {
	ID           string `json:"id"`
	OriginalName string `json:"original_name"`
	FileName     string `json:"file_name"`
}

type ApplicationResponse struct {
	ID              string     `json:"id"`
	ResumeID        string     `json:"resume_id"`
	Company         string     `json:"company"`
	Role            string     `json:"role"`
	Status          string     `json:"status"`
	ApplicationDate time.Time  `json:"application_date"`
	Notes           string     `json:"notes"`
	Resume          *ResumeRef `json:"resume,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
