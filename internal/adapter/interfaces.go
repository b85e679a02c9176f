// Package adapter provides transport-layer abstractions for communicating
// with the external Allianz CRM.
//
// The primary abstraction is [ContactNotifier], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPCRMNotifier]) and a no-op implementation
// ([NewNopNotifier]) for installations that run without a CRM connection.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/agenturjaeger/immocrm/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/contact_notifier_mock.go -package=mock

// ContactNotifier pushes contact changes to the external CRM. Implementations
// are responsible for serialisation, authentication header management, and
// mapping transport-level errors to the sentinel values defined in this
// package.
type ContactNotifier interface {
	// SyncContact sends a created or updated contact to the CRM. Returns an
	// error if the request fails or the CRM responds with a non-2xx status.
	SyncContact(ctx context.Context, contact models.Contact) error

	// RemoveContact tells the CRM that a contact was deleted. A contact the
	// CRM never knew about is not an error.
	RemoveContact(ctx context.Context, contactID int64) error
}
