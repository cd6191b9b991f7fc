package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"jobtrack_backend/internal/storage"
	"jobtrack_backend/pkg/apperrors"
)

// FileService - менеджер файлов резюме: хранит бинарники под
// сгенерированными именами и отвечает за валидацию типа/размера.
type FileService interface {
	// Store валидирует и сохраняет файл, возвращает сгенерированное имя
	Store(ctx context.Context, reader io.Reader, originalName, contentType string, size int64) (string, error)

	// Retrieve возвращает поток содержимого файла
	Retrieve(ctx context.Context, fileName string) (io.ReadCloser, error)

	// Delete удаляет файл; отсутствующий файл не является ошибкой
	Delete(ctx context.Context, fileName string) error
}

type fileService struct {
	storage      storage.Storage
	maxSize      int64
	allowedTypes []string
}

func NewFileService(st storage.Storage, maxSize int64, allowedTypes []string) FileService {
	return &fileService{
		storage:      st,
		maxSize:      maxSize,
		allowedTypes: allowedTypes,
	}
}

func (s *fileService) Store(ctx context.Context, reader io.Reader, originalName, contentType string, size int64) (string, error) {
	if err := s.validate(contentType, size); err != nil {
		return "", err
	}

	fileName := generateFileName(originalName)
	if err := s.storage.Save(ctx, fileName, reader, contentType); err != nil {
		return "", apperrors.StorageError(err, "Failed to store file")
	}

	return fileName, nil
}

func (s *fileService) Retrieve(ctx context.Context, fileName string) (io.ReadCloser, error) {
	rc, err := s.storage.Get(ctx, fileName)
	if err != nil {
		return nil, apperrors.StorageError(err, "Failed to read file")
	}
	return rc, nil
}

func (s *fileService) Delete(ctx context.Context, fileName string) error {
	if err := s.storage.Delete(ctx, fileName); err != nil {
		return apperrors.StorageError(err, "Failed to delete file")
	}
	return nil
}

func (s *fileService) validate(contentType string, size int64) error {
	if size <= 0 {
		return apperrors.NewBadRequestError("File is empty")
	}
	if s.maxSize > 0 && size > s.maxSize {
		return apperrors.ErrFileTooLarge
	}

	for _, allowed := range s.allowedTypes {
		if contentType == allowed {
			return nil
		}
	}
	return apperrors.ErrInvalidFileType
}

// generateFileName строит коллизионно-устойчивое имя: временной префикс
// плюс случайный суффикс, расширение берется из исходного имени
func generateFileName(originalName string) string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), hex.EncodeToString(buf), filepath.Ext(originalName))
}
