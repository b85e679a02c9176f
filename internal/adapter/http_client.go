package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/agenturjaeger/immocrm/internal/config"
	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/models"
	"github.com/go-resty/resty/v2"
)

type httpCRMNotifier struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPCRMNotifier builds a ContactNotifier that talks to the CRM's REST
// API. When no base URL is configured the returned notifier is a no-op, so
// callers never have to branch on whether a CRM is connected.
func NewHTTPCRMNotifier(cfg config.Adapter, logger *logger.Logger) ContactNotifier {
	if cfg.CRMBaseURL == "" {
		logger.Info().Msg("no CRM base URL configured, contact sync disabled")
		return NewNopNotifier()
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.CRMBaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)
	if cfg.CRMAPIKey != "" {
		cli.SetHeader("X-Api-Key", cfg.CRMAPIKey)
	}

	return &httpCRMNotifier{client: cli, logger: logger}
}

func (h *httpCRMNotifier) SyncContact(ctx context.Context, contact models.Contact) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(contact).
		Put("/api/v1/contacts/" + strconv.FormatInt(contact.ID, 10))
	if err != nil {
		return fmt.Errorf("sync contact request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCRMNotifier) RemoveContact(ctx context.Context, contactID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete("/api/v1/contacts/" + strconv.FormatInt(contactID, 10))
	if err != nil {
		return fmt.Errorf("remove contact request: %w", err)
	}

	if err := mapHTTPError(resp); err != nil {
		// The CRM not knowing the contact is the desired end state.
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	return nil
}

type nopNotifier struct{}

// NewNopNotifier returns a ContactNotifier that accepts every call without
// talking to anything.
func NewNopNotifier() ContactNotifier {
	return nopNotifier{}
}

func (nopNotifier) SyncContact(context.Context, models.Contact) error { return nil }

func (nopNotifier) RemoveContact(context.Context, int64) error { return nil }
