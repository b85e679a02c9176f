package filestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/textproto"
	"os"
	"syscall"

	"github.com/jlaffaye/ftp"
	"github.com/studio-b12/gowebdav"
)

// Normalised storage error kinds. Callers branch on these with [errors.Is];
// provider-specific error types and message texts never leave this package.
var (
	// ErrConnection indicates that the remote store could not be reached
	// (refused, reset, DNS failure).
	ErrConnection = errors.New("storage connection failed")

	// ErrAuth indicates rejected credentials or insufficient permissions.
	ErrAuth = errors.New("storage authentication failed")

	// ErrNotFound indicates that the target path does not exist remotely.
	ErrNotFound = errors.New("remote path not found")

	// ErrTimeout indicates that a remote operation exceeded its deadline.
	ErrTimeout = errors.New("storage operation timed out")

	// ErrStorage is the catch-all kind for remote failures that match none
	// of the specific kinds above.
	ErrStorage = errors.New("storage operation failed")
)

// StorageError is the error type every gateway operation returns on remote
// failure. It identifies the operation, the target path and the normalised
// kind; the raw provider error is retained for structured logging but is
// not part of the message.
type StorageError struct {
	// Op is the failed gateway operation: "mkdir", "upload", "delete",
	// "list" or "remove-folder".
	Op string

	// Path is the remote path the operation targeted.
	Path string

	// Kind is one of the sentinel kinds above.
	Kind error

	// Cause is the underlying provider error, kept for logs only.
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Path, e.Kind)
}

// Unwrap exposes the normalised kind so that callers can match with
// [errors.Is] against ErrConnection, ErrAuth, ErrNotFound, ErrTimeout or
// ErrStorage. The raw cause is deliberately not unwrapped.
func (e *StorageError) Unwrap() error {
	return e.Kind
}

// newStorageError classifies err and wraps it into a *StorageError for the
// given operation and path.
func newStorageError(op, path string, err error) *StorageError {
	return &StorageError{Op: op, Path: path, Kind: classify(err), Cause: err}
}

// classify maps a provider error onto one of the sentinel kinds. The order
// matters: timeouts are a subset of network errors and must win over
// ErrConnection.
func classify(err error) error {
	if err == nil {
		return ErrStorage
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}

	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return ErrConnection
	}
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return ErrConnection
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrConnection
	}

	// WebDAV: gowebdav wraps HTTP status codes into StatusError.
	if gowebdav.IsErrCode(err, 401) || gowebdav.IsErrCode(err, 403) {
		return ErrAuth
	}
	if gowebdav.IsErrNotFound(err) || errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}

	// FTP: jlaffaye/ftp surfaces server replies as textproto errors.
	var protoErr *textproto.Error
	if errors.As(err, &protoErr) {
		switch protoErr.Code {
		case ftp.StatusNotLoggedIn, ftp.StatusInvalidCredentials:
			return ErrAuth
		case ftp.StatusFileUnavailable:
			return ErrNotFound
		case ftp.StatusNotAvailable:
			return ErrConnection
		}
	}

	return ErrStorage
}
