package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/skyticket/backend/internal/domain"
	"github.com/skyticket/backend/internal/repository"
	"github.com/skyticket/backend/pkg/logger"
	"github.com/skyticket/backend/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const documentKeyPrefix = "documents"

type documentService struct {
	documentRepository repository.UserDocuments
	uploader           storage.Uploader
}

func newDocumentService(documentRepository repository.UserDocuments, uploader storage.Uploader) *documentService {
	return &documentService{
		documentRepository: documentRepository,
		uploader:           uploader,
	}
}

func (s *documentService) GetDocument(ctx context.Context, userID uuid.UUID) (*domain.UserDocument, error) {
	document, err := s.documentRepository.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("get user document failed: %w", err)
	}

	return document, nil
}

// UploadDocument stores the file and creates or replaces the user's document.
func (s *documentService) UploadDocument(ctx context.Context, requesterID uuid.UUID, input UploadDocumentInput) (*domain.UserDocument, error) {
	if err := authorizeOwner(requesterID, input.UserID); err != nil {
		return nil, err
	}

	document, err := s.documentRepository.GetByUserID(ctx, input.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		id, err := uuid.NewV7()
		if err != nil {
			return nil, fmt.Errorf("generate document id failed: %w", err)
		}
		document = &domain.UserDocument{ID: id, UserID: input.UserID}
	case err != nil:
		return nil, fmt.Errorf("get user document failed: %w", err)
	}

	key := documentKey(input.UserID, input.FileName)
	fileURL, err := s.uploader.Upload(ctx, key, input.ContentType, input.File)
	if err != nil {
		return nil, fmt.Errorf("upload document file failed: %w", err)
	}

	previousKey := document.FileKey
	document.NationalCode = input.NationalCode
	document.PassportNumber = input.PassportNumber
	document.FileKey = key
	document.FileURL = fileURL
	document.ContentType = input.ContentType

	if err := s.documentRepository.Upsert(ctx, document); err != nil {
		s.deleteObject(ctx, key)
		return nil, fmt.Errorf("save user document failed: %w", err)
	}

	if previousKey != "" && previousKey != key {
		s.deleteObject(ctx, previousKey)
	}

	return document, nil
}

// deleteObject removes a file no document row points to. Failures only leave an orphan behind.
func (s *documentService) deleteObject(ctx context.Context, key string) {
	if err := s.uploader.Delete(ctx, key); err != nil {
		logger.Warn("delete document file failed", zap.String("key", key), zap.Error(err))
	}
}

func documentKey(userID uuid.UUID, fileName string) string {
	ext := strings.ToLower(path.Ext(fileName))
	return path.Join(documentKeyPrefix, userID.String(), uuid.NewString()+ext)
}
