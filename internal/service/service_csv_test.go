package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/mock"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	jbx001 = models.Entry{ID: 1, Name: "pGFP", PartNumber: "JBx_001", RecordType: models.EntryTypePlasmid, OwnerEmail: aliceEmail}
	jbx002 = models.Entry{ID: 2, Name: "pGFP", PartNumber: "JBx_002", RecordType: models.EntryTypePlasmid, OwnerEmail: "bob@example.org"}
)

func TestCSVService_Validate_ByPartNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock.NewMockEntryRepository(ctrl)
	gomock.InOrder(
		entries.EXPECT().GetEntryByPartNumber(gomock.Any(), "JBx_001").Return(jbx001, nil),
		entries.EXPECT().GetEntryByPartNumber(gomock.Any(), "unknown_name").Return(models.Entry{}, store.ErrEntryNotFound),
	)

	tx := &passthroughTransactor{}
	svc := NewCSVService(tx, entries, &stubAuthorization{}, logger.Nop())

	got, err := svc.Validate(context.Background(), aliceEmail, strings.NewReader("JBx_001,extra\n,ignored\nunknown_name\n"), false)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.ParsedEntryID{RawToken: "JBx_001", Part: models.NewPartData(jbx001)}, got[0])
	assert.True(t, got[0].Resolved())
	assert.Equal(t, "unknown_name", got[1].RawToken)
	assert.False(t, got[1].Resolved())
	assert.Equal(t, 1, tx.readTx)
}

func TestCSVService_Validate_NameCollisionsYieldOneRowPerEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock.NewMockEntryRepository(ctrl)
	entries.EXPECT().GetEntriesByName(gomock.Any(), "pGFP").Return([]models.Entry{jbx001, jbx002}, nil)

	svc := NewCSVService(&passthroughTransactor{}, entries, &stubAuthorization{}, logger.Nop())

	got, err := svc.Validate(context.Background(), aliceEmail, strings.NewReader("  pGFP  \n"), true)

	require.NoError(t, err)
	require.Len(t, got, 2)
	for i, want := range []models.Entry{jbx001, jbx002} {
		assert.Equal(t, "  pGFP  ", got[i].RawToken)
		require.NotNil(t, got[i].Part)
		assert.Equal(t, want.ID, got[i].Part.ID)
		assert.Equal(t, want.PartNumber, got[i].Part.PartID)
	}
}

func TestCSVService_Validate_UnreadableEntriesAreUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock.NewMockEntryRepository(ctrl)
	entries.EXPECT().GetEntriesByName(gomock.Any(), "pGFP").Return([]models.Entry{jbx001, jbx002}, nil)

	auth := &stubAuthorization{canReadEntry: func(e models.Entry) bool { return e.OwnerEmail == aliceEmail }}
	svc := NewCSVService(&passthroughTransactor{}, entries, auth, logger.Nop())

	got, err := svc.Validate(context.Background(), aliceEmail, strings.NewReader("pGFP"), true)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Resolved())
	assert.Equal(t, models.ParsedEntryID{RawToken: "pGFP"}, got[1])
}

func TestCSVService_Validate_EmptyUpload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewCSVService(&passthroughTransactor{}, mock.NewMockEntryRepository(ctrl), &stubAuthorization{}, logger.Nop())

	got, err := svc.Validate(context.Background(), aliceEmail, strings.NewReader("\n,x\n\n"), false)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCSVService_Validate_BlankTokenIsReportedUnresolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository call is expected for a whitespace-only token
	svc := NewCSVService(&passthroughTransactor{}, mock.NewMockEntryRepository(ctrl), &stubAuthorization{}, logger.Nop())

	got, err := svc.Validate(context.Background(), aliceEmail, strings.NewReader("  ,x\n"), false)

	require.NoError(t, err)
	assert.Equal(t, []models.ParsedEntryID{{RawToken: "  "}}, got)
}

func TestCSVService_Validate_StorageFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := mock.NewMockEntryRepository(ctrl)
	entries.EXPECT().GetEntryByPartNumber(gomock.Any(), "JBx_001").Return(models.Entry{}, store.ErrExecutingQuery)

	svc := NewCSVService(&passthroughTransactor{}, entries, &stubAuthorization{}, logger.Nop())

	got, err := svc.Validate(context.Background(), aliceEmail, strings.NewReader("JBx_001\nJBx_002\n"), false)

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestCSVService_Validate_MalformedCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tx := &passthroughTransactor{}
	svc := NewCSVService(tx, mock.NewMockEntryRepository(ctrl), &stubAuthorization{}, logger.Nop())

	_, err := svc.Validate(context.Background(), aliceEmail, strings.NewReader("JBx_001\nbad\"quote\n"), false)

	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorContains(t, err, "csv row 2")
	var rowErr *RowError
	require.ErrorAs(t, err, &rowErr)
	assert.Equal(t, 2, rowErr.Row)
	assert.Zero(t, tx.readTx)
}

func TestCSVService_Validate_UnknownAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	auth := &stubAuthorization{principal: func(string) (models.Principal, error) {
		return models.Principal{}, ErrUnauthorized
	}}
	svc := NewCSVService(&passthroughTransactor{}, mock.NewMockEntryRepository(ctrl), auth, logger.Nop())

	_, err := svc.Validate(context.Background(), "ghost@example.org", strings.NewReader("JBx_001"), false)

	assert.ErrorIs(t, err, ErrUnauthorized)
}
