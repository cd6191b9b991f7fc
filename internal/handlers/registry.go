package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	ResumeHandler      *ResumeHandler
	ApplicationHandler *ApplicationHandler
	DashboardHandler   *DashboardHandler
}
