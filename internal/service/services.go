package service

import (
	"github.com/agenturjaeger/immocrm/internal/adapter"
	"github.com/agenturjaeger/immocrm/internal/filestore"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/internal/store"
)

type Services struct {
	PropertyService     PropertyService
	ContactService      ContactService
	PropertyFileService PropertyFileService
}

func NewServices(storages *store.Storages, files filestore.Gateway, crm adapter.ContactNotifier, logger *logger.Logger) *Services {
	return &Services{
		PropertyService:     NewPropertyService(storages.PropertyRepository, files, logger),
		ContactService:      NewContactService(storages.ContactRepository, crm, logger),
		PropertyFileService: NewPropertyFileService(storages.PropertyRepository, files, logger),
	}
}
