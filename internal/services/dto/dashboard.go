package dto

// DashboardStats - производное read-only представление: считается
// по текущему состоянию хранилищ на каждый вызов, без кэша.
// Stats всегда содержит все четыре статуса, нули включительно.
type DashboardStats struct {
	TotalApplications  int64                  `json:"total_applications"`
	TotalResumes       int64                  `json:"total_resumes"`
	Stats              map[string]int64       `json:"stats"`
	RecentApplications []*ApplicationResponse `json:"recent_applications"`
}
