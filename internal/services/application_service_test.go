package services_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"jobtrack_backend/internal/models"
	"jobtrack_backend/internal/services"
	"jobtrack_backend/internal/services/dto"
	"jobtrack_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicationCreate_Defaults(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "appcreate@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "Main CV")

	before := time.Now()
	app, err := sc.ApplicationService.Create(context.Background(), db, user.ID, &dto.CreateApplicationRequest{
		ResumeID: resume.ID,
		Company:  "Acme",
		Role:     "Go Developer",
	})
	require.NoError(t, err)

	assert.Equal(t, string(models.ApplicationStatusApplied), app.Status)
	assert.False(t, app.ApplicationDate.Before(before.Add(-time.Second)))

	// Ссылка на резюме сразу присоединена
	require.NotNil(t, app.Resume)
	assert.Equal(t, resume.ID, app.Resume.ID)
	assert.Equal(t, "Main CV", app.Resume.OriginalName)
	assert.Equal(t, resume.FileName, app.Resume.FileName)
}

func TestApplicationCreate_InvalidStatus(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "badstatus@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "CV")

	// Регистр значим: "applied" не входит в закрытое множество
	_, err := sc.ApplicationService.Create(context.Background(), db, user.ID, &dto.CreateApplicationRequest{
		ResumeID: resume.ID,
		Company:  "Acme",
		Role:     "Go Developer",
		Status:   "applied",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestApplicationCreate_ResumeNotFound(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "noresume@test.com")

	_, err := sc.ApplicationService.Create(context.Background(), db, user.ID, &dto.CreateApplicationRequest{
		ResumeID: "00000000-0000-0000-0000-000000000000",
		Company:  "Acme",
		Role:     "Go Developer",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestApplicationCreate_StrangersResumeForbidden(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	owner := createTestUser(t, db, "resowner@test.com")
	stranger := createTestUser(t, db, "resstranger@test.com")
	resume := uploadTestResume(t, sc, db, owner.ID, "Not Yours")

	_, err := sc.ApplicationService.Create(context.Background(), db, stranger.ID, &dto.CreateApplicationRequest{
		ResumeID: resume.ID,
		Company:  "Acme",
		Role:     "Go Developer",
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestApplicationList_StatusFilter(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "filter@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "CV")

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	createTestApplication(t, sc, db, user.ID, resume.ID, "A", "Applied", base)
	createTestApplication(t, sc, db, user.ID, resume.ID, "B", "Interview", base.AddDate(0, 0, 1))
	createTestApplication(t, sc, db, user.ID, resume.ID, "C", "Interview", base.AddDate(0, 0, 2))
	createTestApplication(t, sc, db, user.ID, resume.ID, "D", "Rejected", base.AddDate(0, 0, 3))

	interviews, err := sc.ApplicationService.List(context.Background(), db, user.ID, "Interview")
	require.NoError(t, err)
	require.Len(t, interviews, 2)
	for _, a := range interviews {
		assert.Equal(t, "Interview", a.Status)
	}

	// "All" и пустая строка эквивалентны: фильтра нет
	all, err := sc.ApplicationService.List(context.Background(), db, user.ID, services.StatusFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	unfiltered, err := sc.ApplicationService.List(context.Background(), db, user.ID, "")
	require.NoError(t, err)
	assert.Len(t, unfiltered, 4)

	// Свежие отклики первыми
	assert.Equal(t, "D", unfiltered[0].Company)
	assert.Equal(t, "A", unfiltered[3].Company)
}

func TestApplicationList_UnknownFilterRejected(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "unknownfilter@test.com")

	_, err := sc.ApplicationService.List(context.Background(), db, user.ID, "Pending")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidStatus, appErr.Code)
}

func TestApplicationUpdate_PartialRetainsFields(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "appupdate@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "CV")

	app := createTestApplication(t, sc, db, user.ID, resume.ID, "Acme", "Applied", time.Now())

	status := "Offer"
	updated, err := sc.ApplicationService.Update(context.Background(), db, user.ID, app.ID, &dto.UpdateApplicationRequest{
		Status: &status,
	})
	require.NoError(t, err)

	assert.Equal(t, "Offer", updated.Status)
	assert.Equal(t, "Acme", updated.Company)
	assert.Equal(t, "Backend Engineer", updated.Role)
	assert.Equal(t, resume.ID, updated.ResumeID)
}

func TestApplicationUpdate_InvalidStatusRejected(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "appbadupd@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "CV")

	app := createTestApplication(t, sc, db, user.ID, resume.ID, "Acme", "Applied", time.Now())

	status := "Ghosted"
	_, err := sc.ApplicationService.Update(context.Background(), db, user.ID, app.ID, &dto.UpdateApplicationRequest{
		Status: &status,
	})
	require.Error(t, err)

	// Отклик не изменился
	got, err := sc.ApplicationService.Get(context.Background(), db, user.ID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Applied", got.Status)
}

func TestApplicationUpdate_EmptyRequiredFieldRejected(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "emptyfield@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "CV")

	app := createTestApplication(t, sc, db, user.ID, resume.ID, "Acme", "Applied", time.Now())

	empty := ""
	_, err := sc.ApplicationService.Update(context.Background(), db, user.ID, app.ID, &dto.UpdateApplicationRequest{
		Company: &empty,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)

	// Пустые заметки при этом валидны: это "очистить"
	notes := ""
	updated, err := sc.ApplicationService.Update(context.Background(), db, user.ID, app.ID, &dto.UpdateApplicationRequest{
		Notes: &notes,
	})
	require.NoError(t, err)
	assert.Empty(t, updated.Notes)
	assert.Equal(t, "Acme", updated.Company)
}

func TestApplicationUpdate_ForbiddenForStranger(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	owner := createTestUser(t, db, "appowner@test.com")
	stranger := createTestUser(t, db, "appstranger@test.com")
	resume := uploadTestResume(t, sc, db, owner.ID, "CV")

	app := createTestApplication(t, sc, db, owner.ID, resume.ID, "Acme", "Applied", time.Now())

	company := "Hijacked"
	_, err := sc.ApplicationService.Update(context.Background(), db, stranger.ID, app.ID, &dto.UpdateApplicationRequest{
		Company: &company,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode)
}

func TestApplicationGet_DanglingResumeRef(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "dangling@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "Doomed CV")

	app := createTestApplication(t, sc, db, user.ID, resume.ID, "Acme", "Applied", time.Now())

	// Удаление резюме не каскадирует на отклики
	require.NoError(t, sc.ResumeService.Delete(context.Background(), db, user.ID, resume.ID))

	got, err := sc.ApplicationService.Get(context.Background(), db, user.ID, app.ID)
	require.NoError(t, err)
	assert.Equal(t, resume.ID, got.ResumeID)
	assert.Nil(t, got.Resume)

	// Список тоже просто оставляет ссылку пустой
	list, err := sc.ApplicationService.List(context.Background(), db, user.ID, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Nil(t, list[0].Resume)
}

func TestApplicationDelete_DoesNotTouchResume(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sc := newTestServices(t)
	user := createTestUser(t, db, "appdelete@test.com")
	resume := uploadTestResume(t, sc, db, user.ID, "Survivor CV")

	app := createTestApplication(t, sc, db, user.ID, resume.ID, "Acme", "Applied", time.Now())

	require.NoError(t, sc.ApplicationService.Delete(context.Background(), db, user.ID, app.ID))

	_, err := sc.ApplicationService.Get(context.Background(), db, user.ID, app.ID)
	require.Error(t, err)

	// Резюме на месте
	got, err := sc.ResumeService.Get(context.Background(), db, user.ID, resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "Survivor CV", got.OriginalName)
}
