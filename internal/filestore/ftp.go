package filestore

import (
	"bytes"
	"context"
	"errors"
	"net/textproto"
	"path"
	"strings"

	"github.com/agenturjaeger/immocrm/internal/config"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/models"
	"github.com/jlaffaye/ftp"
)

// FTPGateway stores property files on the NAS over plain FTP. The FTP
// server roots the share itself, so the base path carries no volume prefix.
//
// FTP sessions are stateful; every operation dials, logs in, works, and
// quits, so no session outlives a single call.
type FTPGateway struct {
	cfg    config.NAS
	logger *logger.Logger
}

// NewFTPGateway constructs a Gateway backed by the FTP server described in
// cfg.
func NewFTPGateway(cfg config.NAS, logger *logger.Logger) *FTPGateway {
	logger.Debug().Str("address", cfg.Address).Str("base_path", cfg.FTPBasePath).Msg("FTP gateway created")
	return &FTPGateway{
		cfg:    cfg,
		logger: logger,
	}
}

var _ Gateway = (*FTPGateway)(nil)

// withConn dials a fresh FTP session, authenticates, runs fn, and always
// quits the session, whatever fn returns.
func (g *FTPGateway) withConn(ctx context.Context, fn func(conn *ftp.ServerConn) error) error {
	ctx, cancel := context.WithTimeout(ctx, g.cfg.OperationTimeout)
	defer cancel()

	conn, err := ftp.Dial(g.cfg.Address,
		ftp.DialWithContext(ctx),
		ftp.DialWithTimeout(g.cfg.OperationTimeout),
	)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Quit()
	}()

	if err := conn.Login(g.cfg.User, g.cfg.Password); err != nil {
		return err
	}

	return fn(conn)
}

// ensureDir creates remotePath segment by segment, tolerating segments that
// already exist.
func ensureDir(conn *ftp.ServerConn, remotePath string) error {
	current := "/"
	for _, segment := range strings.Split(strings.Trim(remotePath, "/"), "/") {
		current = path.Join(current, segment)
		if err := conn.ChangeDir(current); err == nil {
			continue
		}
		if err := conn.MakeDir(current); err != nil {
			return err
		}
		if err := conn.ChangeDir(current); err != nil {
			return err
		}
	}

	return conn.ChangeDir("/")
}

func (g *FTPGateway) EnsureDirectory(ctx context.Context, remotePath string) error {
	log := logger.FromContext(ctx)

	err := g.withConn(ctx, func(conn *ftp.ServerConn) error {
		return ensureDir(conn, remotePath)
	})
	if err != nil {
		log.Err(err).Str("path", remotePath).Msg("FTP mkdir failed")
		return newStorageError("mkdir", remotePath, err)
	}

	return nil
}

func (g *FTPGateway) Upload(ctx context.Context, addr models.PropertyAddress, category Category, fileName string, data []byte) (string, error) {
	log := logger.FromContext(ctx)
	remotePath := path.Join(CategoryPath(g.cfg.FTPBasePath, addr, category), fileName)

	err := g.withConn(ctx, func(conn *ftp.ServerConn) error {
		// Create the whole category skeleton so the dashboard file
		// browser always sees all four folders.
		for _, cat := range Categories() {
			if err := ensureDir(conn, CategoryPath(g.cfg.FTPBasePath, addr, cat)); err != nil {
				return err
			}
		}

		return conn.Stor(remotePath, bytes.NewReader(data))
	})
	if err != nil {
		log.Err(err).Str("path", remotePath).Msg("FTP upload failed")
		return "", newStorageError("upload", remotePath, err)
	}

	log.Info().Str("path", remotePath).Int("size", len(data)).Msg("file uploaded")
	return remotePath, nil
}

func (g *FTPGateway) ResolveCategoryPath(addr models.PropertyAddress, category Category) string {
	return CategoryPath(g.cfg.FTPBasePath, addr, category)
}

func (g *FTPGateway) Delete(ctx context.Context, remotePath string) error {
	log := logger.FromContext(ctx)

	err := g.withConn(ctx, func(conn *ftp.ServerConn) error {
		return conn.Delete(remotePath)
	})
	if err != nil {
		log.Err(err).Str("path", remotePath).Msg("FTP delete failed")
		return newStorageError("delete", remotePath, err)
	}

	return nil
}

func (g *FTPGateway) List(ctx context.Context, addr models.PropertyAddress, category Category) ([]models.FileDescriptor, error) {
	log := logger.FromContext(ctx)
	dir := CategoryPath(g.cfg.FTPBasePath, addr, category)

	var files []models.FileDescriptor
	err := g.withConn(ctx, func(conn *ftp.ServerConn) error {
		entries, listErr := conn.List(dir)
		if listErr != nil {
			return listErr
		}

		files = make([]models.FileDescriptor, 0, len(entries))
		for _, entry := range entries {
			if entry.Type != ftp.EntryTypeFile {
				continue
			}
			files = append(files, models.FileDescriptor{
				Path: path.Join(dir, entry.Name),
				Name: entry.Name,
				Size: int64(entry.Size),
			})
		}

		return nil
	})
	if err != nil {
		// A category folder that was never created is an empty listing,
		// not a failure.
		if isFTPNotFound(err) {
			return []models.FileDescriptor{}, nil
		}
		log.Err(err).Str("path", dir).Msg("FTP list failed")
		return nil, newStorageError("list", dir, err)
	}

	return files, nil
}

func (g *FTPGateway) RemovePropertyFolder(ctx context.Context, addr models.PropertyAddress) error {
	log := logger.FromContext(ctx)
	dir := PropertyPath(g.cfg.FTPBasePath, addr)

	err := g.withConn(ctx, func(conn *ftp.ServerConn) error {
		return conn.RemoveDirRecur(dir)
	})
	if err != nil {
		if isFTPNotFound(err) {
			return nil
		}
		log.Err(err).Str("path", dir).Msg("FTP remove-folder failed")
		return newStorageError("remove-folder", dir, err)
	}

	log.Info().Str("path", dir).Msg("property folder removed")
	return nil
}

func isFTPNotFound(err error) bool {
	var protoErr *textproto.Error
	return errors.As(err, &protoErr) && protoErr.Code == ftp.StatusFileUnavailable
}
