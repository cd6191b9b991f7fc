package services_test

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"jobtrack_backend/database"
	"jobtrack_backend/internal/config"
	"jobtrack_backend/internal/logger"
	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/repositories"
	"jobtrack_backend/internal/services"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/internal/storage"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testMaxFileSize = 5 * 1024 * 1024

func init() {
	// Тестовый конфиг подставляется напрямую, без yaml и env
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.JWT.Secret = "test_secret_key_1234567890"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg

	logger.Init("test")
}

// newTestDB поднимает изолированную in-memory базу на каждый тест
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// In-memory SQLite живет в рамках одного соединения
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: "not-a-real-hash",
	}
	require.NoError(t, repositories.NewUserRepository().Create(db, user))
	return user
}

// newTestServices собирает полный граф сервисов поверх локального
// хранилища во временной директории теста
func newTestServices(t *testing.T) *services.ServiceContainer {
	t.Helper()

	st, err := storage.NewStorage(storage.Config{
		Type:     "local",
		BasePath: t.TempDir(),
	})
	require.NoError(t, err)

	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	resumeRepo := repositories.NewResumeRepository()
	applicationRepo := repositories.NewApplicationRepository()

	fileService := services.NewFileService(st, testMaxFileSize, []string{"application/pdf"})

	return &services.ServiceContainer{
		AuthService:        services.NewAuthService(userRepo, refreshTokenRepo),
		ResumeService:      services.NewResumeService(resumeRepo, fileService),
		ApplicationService: services.NewApplicationService(applicationRepo, resumeRepo),
		DashboardService:   services.NewDashboardService(applicationRepo, resumeRepo),
		FileService:        fileService,
	}
}

// makeFileHeader собирает multipart.FileHeader так же, как его видит
// хэндлер после разбора формы
func makeFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["resume"]
	require.Len(t, files, 1)
	return files[0]
}

func pdfBytes(n int) []byte {
	content := make([]byte, n)
	copy(content, "%PDF-1.4")
	return content
}

func uploadTestResume(t *testing.T, sc *services.ServiceContainer, db *gorm.DB, userID, originalName string) *dto.ResumeResponse {
	t.Helper()

	file := makeFileHeader(t, "resume.pdf", "application/pdf", pdfBytes(1024))
	resume, err := sc.ResumeService.Upload(context.Background(), db, userID, &dto.UploadResumeRequest{
		OriginalName: originalName,
	}, file)
	require.NoError(t, err)
	return resume
}

func createTestApplication(t *testing.T, sc *services.ServiceContainer, db *gorm.DB, userID, resumeID, company, status string, date time.Time) *dto.ApplicationResponse {
	t.Helper()

	app, err := sc.ApplicationService.Create(context.Background(), db, userID, &dto.CreateApplicationRequest{
		ResumeID:        resumeID,
		Company:         company,
		Role:            "Backend Engineer",
		Status:          status,
		ApplicationDate: &date,
	})
	require.NoError(t, err)
	return app
}
