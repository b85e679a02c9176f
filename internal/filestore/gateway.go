package filestore

import (
	"context"

	"github.com/agenturjaeger/immocrm/models"
)

//go:generate mockgen -source=gateway.go -destination=../mock/filestore_gateway_mock.go -package=mock

// Gateway is the capability a remote hierarchical file store must provide.
// The concrete transport (WebDAV against the NAS, or plain FTP) is an
// interchangeable backend behind this interface.
//
// Implementations are stateless between calls: every operation opens a
// fresh transport session and releases it on every exit path. All errors
// returned are *StorageError values carrying a normalised kind.
type Gateway interface {
	// EnsureDirectory creates the directory and all missing ancestors.
	// It is idempotent: an already existing directory is not an error.
	EnsureDirectory(ctx context.Context, remotePath string) error

	// Upload resolves the category path for the property address, ensures
	// the property folder and all category subfolders exist, then writes
	// the file, overwriting any existing file of the same name. It returns
	// the full remote path written.
	Upload(ctx context.Context, addr models.PropertyAddress, category Category, fileName string, data []byte) (string, error)

	// Delete removes a single remote file. A missing path is an
	// ErrNotFound-kind failure, not a silent success.
	Delete(ctx context.Context, remotePath string) error

	// List returns one descriptor per file in the property/category
	// directory, directories excluded. A missing directory yields an
	// empty list, not an error.
	List(ctx context.Context, addr models.PropertyAddress, category Category) ([]models.FileDescriptor, error)

	// ResolveCategoryPath returns the remote directory of one
	// property/category pair under the backend's base path, without
	// touching the remote store.
	ResolveCategoryPath(addr models.PropertyAddress, category Category) string

	// RemovePropertyFolder deletes a property's entire remote folder tree.
	// Used as the explicit cleanup step when a property is deleted. A
	// folder that never existed is not an error.
	RemovePropertyFolder(ctx context.Context, addr models.PropertyAddress) error
}
