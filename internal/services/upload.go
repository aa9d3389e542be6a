package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"jobfluence/api/internal/models"
)

var ErrFileTooLarge = errors.New("file too large")

// UploadService reads uploaded files into memory. Nothing is written to disk.
type UploadService interface {
	Read(file *multipart.FileHeader) (*models.RawDocument, error)
	MaxFileSize() int64
}

type uploadService struct {
	maxFileSize int64
}

func NewUploadService(maxFileSize int64) UploadService {
	return &uploadService{maxFileSize: maxFileSize}
}

func (s *uploadService) MaxFileSize() int64 {
	return s.maxFileSize
}

// Read implements UploadService.
func (s *uploadService) Read(file *multipart.FileHeader) (*models.RawDocument, error) {
	if file.Size > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	// Read one byte past the limit so a lying Size header is still caught.
	data, err := io.ReadAll(io.LimitReader(src, s.maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	if int64(len(data)) > s.maxFileSize {
		return nil, ErrFileTooLarge
	}

	return &models.RawDocument{
		Filename: file.Filename,
		Data:     data,
	}, nil
}
