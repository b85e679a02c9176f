package filestore

import (
	"context"
	"os"
	"path"

	"github.com/agenturjaeger/immocrm/internal/config"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/models"
	"github.com/studio-b12/gowebdav"
)

// WebDAVGateway stores property files on the NAS over WebDAV. The base path
// includes the Synology volume prefix (e.g. "/volume1/...").
//
// No client instance is cached: every operation builds and probes a fresh
// gowebdav client, so a dropped NAS session can never poison later calls.
type WebDAVGateway struct {
	cfg    config.NAS
	logger *logger.Logger
}

// NewWebDAVGateway constructs a Gateway backed by the WebDAV share
// described in cfg.
func NewWebDAVGateway(cfg config.NAS, logger *logger.Logger) *WebDAVGateway {
	logger.Debug().Str("address", cfg.Address).Str("base_path", cfg.WebDAVBasePath).Msg("WebDAV gateway created")
	return &WebDAVGateway{
		cfg:    cfg,
		logger: logger,
	}
}

var _ Gateway = (*WebDAVGateway)(nil)

// connect builds a fresh WebDAV client and verifies the session. The
// returned client holds no connection state beyond its HTTP transport, so
// there is nothing to close on the way out.
func (g *WebDAVGateway) connect(ctx context.Context) (*gowebdav.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	client := gowebdav.NewClient(g.cfg.Address, g.cfg.User, g.cfg.Password)
	client.SetTimeout(g.cfg.OperationTimeout)

	if err := client.Connect(); err != nil {
		return nil, err
	}

	return client, nil
}

func (g *WebDAVGateway) EnsureDirectory(ctx context.Context, remotePath string) error {
	log := logger.FromContext(ctx)

	client, err := g.connect(ctx)
	if err != nil {
		log.Err(err).Str("path", remotePath).Msg("WebDAV connect failed")
		return newStorageError("mkdir", remotePath, err)
	}

	if err := client.MkdirAll(remotePath, os.ModePerm); err != nil {
		log.Err(err).Str("path", remotePath).Msg("WebDAV mkdir failed")
		return newStorageError("mkdir", remotePath, err)
	}

	return nil
}

func (g *WebDAVGateway) Upload(ctx context.Context, addr models.PropertyAddress, category Category, fileName string, data []byte) (string, error) {
	log := logger.FromContext(ctx)

	client, err := g.connect(ctx)
	if err != nil {
		log.Err(err).Msg("WebDAV connect failed")
		return "", newStorageError("upload", fileName, err)
	}

	// The whole category skeleton is created on every upload so the
	// dashboard file browser always sees all four folders.
	for _, cat := range Categories() {
		dir := CategoryPath(g.cfg.WebDAVBasePath, addr, cat)
		if mkdirErr := client.MkdirAll(dir, os.ModePerm); mkdirErr != nil {
			log.Err(mkdirErr).Str("path", dir).Msg("WebDAV mkdir failed")
			return "", newStorageError("mkdir", dir, mkdirErr)
		}
	}

	remotePath := path.Join(CategoryPath(g.cfg.WebDAVBasePath, addr, category), fileName)
	if err := client.Write(remotePath, data, os.ModePerm); err != nil {
		log.Err(err).Str("path", remotePath).Msg("WebDAV write failed")
		return "", newStorageError("upload", remotePath, err)
	}

	log.Info().Str("path", remotePath).Int("size", len(data)).Msg("file uploaded")
	return remotePath, nil
}

func (g *WebDAVGateway) ResolveCategoryPath(addr models.PropertyAddress, category Category) string {
	return CategoryPath(g.cfg.WebDAVBasePath, addr, category)
}

func (g *WebDAVGateway) Delete(ctx context.Context, remotePath string) error {
	log := logger.FromContext(ctx)

	client, err := g.connect(ctx)
	if err != nil {
		log.Err(err).Str("path", remotePath).Msg("WebDAV connect failed")
		return newStorageError("delete", remotePath, err)
	}

	if err := client.Remove(remotePath); err != nil {
		log.Err(err).Str("path", remotePath).Msg("WebDAV remove failed")
		return newStorageError("delete", remotePath, err)
	}

	return nil
}

func (g *WebDAVGateway) List(ctx context.Context, addr models.PropertyAddress, category Category) ([]models.FileDescriptor, error) {
	log := logger.FromContext(ctx)
	dir := CategoryPath(g.cfg.WebDAVBasePath, addr, category)

	client, err := g.connect(ctx)
	if err != nil {
		log.Err(err).Str("path", dir).Msg("WebDAV connect failed")
		return nil, newStorageError("list", dir, err)
	}

	entries, err := client.ReadDir(dir)
	if err != nil {
		// A category folder that was never created is an empty listing,
		// not a failure.
		if gowebdav.IsErrNotFound(err) {
			return []models.FileDescriptor{}, nil
		}
		log.Err(err).Str("path", dir).Msg("WebDAV readdir failed")
		return nil, newStorageError("list", dir, err)
	}

	files := make([]models.FileDescriptor, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files = append(files, models.FileDescriptor{
			Path: path.Join(dir, entry.Name()),
			Name: entry.Name(),
			Size: entry.Size(),
		})
	}

	return files, nil
}

func (g *WebDAVGateway) RemovePropertyFolder(ctx context.Context, addr models.PropertyAddress) error {
	log := logger.FromContext(ctx)
	dir := PropertyPath(g.cfg.WebDAVBasePath, addr)

	client, err := g.connect(ctx)
	if err != nil {
		log.Err(err).Str("path", dir).Msg("WebDAV connect failed")
		return newStorageError("remove-folder", dir, err)
	}

	if err := client.RemoveAll(dir); err != nil {
		if gowebdav.IsErrNotFound(err) {
			return nil
		}
		log.Err(err).Str("path", dir).Msg("WebDAV remove-folder failed")
		return newStorageError("remove-folder", dir, err)
	}

	log.Info().Str("path", dir).Msg("property folder removed")
	return nil
}
