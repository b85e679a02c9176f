package service

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/agenturjaeger/immocrm/internal/filestore"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/internal/store"
	"github.com/agenturjaeger/immocrm/models"
)

// propertyFileService is the concrete implementation of PropertyFileService.
// It resolves the property's address from the database on every call, so
// file operations follow address changes without any cached state.
type propertyFileService struct {
	properties store.PropertyRepository
	gateway    filestore.Gateway
	logger     *logger.Logger
}

// NewPropertyFileService constructs a PropertyFileService on top of the
// given repository and NAS gateway.
func NewPropertyFileService(properties store.PropertyRepository, gateway filestore.Gateway, logger *logger.Logger) PropertyFileService {
	return &propertyFileService{
		properties: properties,
		gateway:    gateway,
		logger:     logger,
	}
}

// checkCategory turns a raw category string into a filestore.Category.
// Category names coming over the wire are user input, so an unknown one is
// an error here, not a panic.
func checkCategory(category string) (filestore.Category, error) {
	cat := filestore.Category(category)
	if !cat.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, category)
	}

	return cat, nil
}

func checkFileName(fileName string) error {
	if fileName == "" || strings.ContainsAny(fileName, "/\\") {
		return fmt.Errorf("%w: %q", ErrInvalidFileName, fileName)
	}

	return nil
}

func (s *propertyFileService) Upload(ctx context.Context, propertyID int64, category, fileName string, data []byte) (models.FileDescriptor, error) {
	log := logger.FromContext(ctx)

	cat, err := checkCategory(category)
	if err != nil {
		return models.FileDescriptor{}, err
	}
	if err := checkFileName(fileName); err != nil {
		return models.FileDescriptor{}, err
	}

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return models.FileDescriptor{}, fmt.Errorf("property lookup ended with error: %w", err)
	}

	remotePath, err := s.gateway.Upload(ctx, property.Address(), cat, fileName, data)
	if err != nil {
		log.Err(err).Int64("property_id", propertyID).Str("file", fileName).Msg("file upload ended with error")
		return models.FileDescriptor{}, fmt.Errorf("file upload ended with error: %w", err)
	}

	return models.FileDescriptor{
		Path: remotePath,
		Name: fileName,
		Size: int64(len(data)),
	}, nil
}

func (s *propertyFileService) List(ctx context.Context, propertyID int64, category string) ([]models.FileDescriptor, error) {
	cat, err := checkCategory(category)
	if err != nil {
		return nil, err
	}

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return nil, fmt.Errorf("property lookup ended with error: %w", err)
	}

	files, err := s.gateway.List(ctx, property.Address(), cat)
	if err != nil {
		return nil, fmt.Errorf("file listing ended with error: %w", err)
	}

	return files, nil
}

func (s *propertyFileService) Delete(ctx context.Context, propertyID int64, category, fileName string) error {
	log := logger.FromContext(ctx)

	cat, err := checkCategory(category)
	if err != nil {
		return err
	}
	if err := checkFileName(fileName); err != nil {
		return err
	}

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("property lookup ended with error: %w", err)
	}

	remotePath := path.Join(s.gateway.ResolveCategoryPath(property.Address(), cat), fileName)
	if err := s.gateway.Delete(ctx, remotePath); err != nil {
		log.Err(err).Str("path", remotePath).Msg("file delete ended with error")
		return fmt.Errorf("file delete ended with error: %w", err)
	}

	return nil
}

func (s *propertyFileService) RemoveAll(ctx context.Context, propertyID int64) error {
	log := logger.FromContext(ctx)

	property, err := s.properties.GetByID(ctx, propertyID)
	if err != nil {
		return fmt.Errorf("property lookup ended with error: %w", err)
	}

	if err := s.gateway.RemovePropertyFolder(ctx, property.Address()); err != nil {
		log.Err(err).Int64("property_id", propertyID).Msg("property folder removal ended with error")
		return fmt.Errorf("property folder removal ended with error: %w", err)
	}

	return nil
}
