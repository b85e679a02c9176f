package service

import (
	"context"
	"errors"
	"testing"

	"github.com/agenturjaeger/immocrm/internal/logger"
	"github.com/agenturjaeger/immocrm/internal/mapping"
	"github.com/agenturjaeger/immocrm/internal/mock"
	"github.com/agenturjaeger/immocrm/internal/store"
	"github.com/agenturjaeger/immocrm/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestPropertySvc(t *testing.T, ctrl *gomock.Controller) (PropertyService, *mock.MockPropertyRepository, *mock.MockGateway) {
	t.Helper()
	repo := mock.NewMockPropertyRepository(ctrl)
	gateway := mock.NewMockGateway(ctrl)
	return NewPropertyService(repo, gateway, logger.Nop()), repo, gateway
}

func strPtr(s string) *string { return &s }

// ── Create ──────────────────────────────────────────────────────────────────

func TestPropertyService_Create_MapsAndStrips(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	payload := map[string]any{
		"price":       135000.0, // router name, stored as purchasePrice
		"title":       "Kapitalanlage in Geislingen",
		"description": nil, // stripped on create
		"city":        "",  // stripped on create
	}

	repo.EXPECT().Insert(ctx, map[string]any{
		"purchasePrice": 135000.0,
		"title":         "Kapitalanlage in Geislingen",
	}).Return(models.Property{ID: 1, Title: strPtr("Kapitalanlage in Geislingen")}, nil)

	property, err := svc.Create(ctx, payload)

	require.NoError(t, err)
	assert.Equal(t, int64(1), property.ID)
}

func TestPropertyService_Create_AllValuesEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPropertySvc(t, ctrl)

	_, err := svc.Create(context.Background(), map[string]any{
		"price": nil,
		"title": "",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNothingToInsert)
}

func TestPropertyService_Create_UnknownFieldRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPropertySvc(t, ctrl)

	_, err := svc.Create(context.Background(), map[string]any{
		"title":     "Haus",
		"sunroofXL": true,
	})

	require.Error(t, err)
	var unknownErr *mapping.UnknownFieldsError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, []string{"sunroofXL"}, unknownErr.Fields)
}

func TestPropertyService_Create_ReservedFieldsDropped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Insert(ctx, map[string]any{"title": "Haus"}).
		Return(models.Property{ID: 5}, nil)

	_, err := svc.Create(ctx, map[string]any{
		"id":        99.0,
		"createdAt": "2020-01-01T00:00:00Z",
		"title":     "Haus",
	})

	require.NoError(t, err)
}

func TestPropertyService_Create_InsertError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Insert(ctx, gomock.Any()).Return(models.Property{}, store.ErrExecutingQuery)

	_, err := svc.Create(ctx, map[string]any{"title": "Haus"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestPropertyService_Update_PreservesExplicitNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	// On update an explicit null clears the column, so it must reach the
	// repository untouched.
	repo.EXPECT().Update(ctx, int64(7), map[string]any{"purchasePrice": nil}).Return(nil)

	err := svc.Update(ctx, 7, map[string]any{"price": nil})

	require.NoError(t, err)
}

func TestPropertyService_Update_PreservesEmptyString(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, int64(7), map[string]any{"description": ""}).Return(nil)

	require.NoError(t, svc.Update(ctx, 7, map[string]any{"description": ""}))
}

func TestPropertyService_Update_EmptyPayloadIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPropertySvc(t, ctrl)

	// No repository expectation set: the call must never reach it.
	require.NoError(t, svc.Update(context.Background(), 7, map[string]any{}))
}

func TestPropertyService_Update_UnknownFieldRefused(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestPropertySvc(t, ctrl)

	err := svc.Update(context.Background(), 7, map[string]any{"sunroofXL": true})

	require.Error(t, err)
	var unknownErr *mapping.UnknownFieldsError
	assert.ErrorAs(t, err, &unknownErr)
}

func TestPropertyService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().Update(ctx, int64(404), gomock.Any()).Return(store.ErrPropertyNotFound)

	err := svc.Update(ctx, 404, map[string]any{"title": "Haus"})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrPropertyNotFound)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestPropertyService_Delete_RemovesFolder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, gateway := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	property := models.Property{
		ID:          3,
		Street:      strPtr("Klingenweg"),
		HouseNumber: strPtr("15"),
		ZipCode:     strPtr("73312"),
		City:        strPtr("Geislingen an der Steige"),
	}

	gomock.InOrder(
		repo.EXPECT().GetByID(ctx, int64(3)).Return(property, nil),
		repo.EXPECT().Delete(ctx, int64(3)).Return(nil),
		gateway.EXPECT().RemovePropertyFolder(ctx, property.Address()).Return(nil),
	)

	require.NoError(t, svc.Delete(ctx, 3))
}

func TestPropertyService_Delete_FolderCleanupFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, gateway := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(3)).Return(models.Property{ID: 3}, nil)
	repo.EXPECT().Delete(ctx, int64(3)).Return(nil)
	gateway.EXPECT().RemovePropertyFolder(ctx, gomock.Any()).Return(errors.New("nas unreachable"))

	// The record is gone either way.
	require.NoError(t, svc.Delete(ctx, 3))
}

func TestPropertyService_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestPropertySvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().GetByID(ctx, int64(404)).Return(models.Property{}, store.ErrPropertyNotFound)

	err := svc.Delete(ctx, 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrPropertyNotFound)
}
