package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AuthService        AuthService
	ResumeService      ResumeService
	ApplicationService ApplicationService
	DashboardService   DashboardService
	FileService        FileService
}
