package store

import (
	"context"
	"testing"

	"deepcheck_api/models/tables"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestModerateReport(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "moderate@example.com")

	rep := &tables.Report{
		ID: uuid.New().String(), UserID: user.ID,
		ReportType: tables.ReportFalseNegative, Description: "missed an obvious fake",
		Status: tables.ReportPending,
	}
	require.NoError(t, s.CreateReport(ctx, rep))

	require.NoError(t, s.ModerateReport(ctx, rep.ID, tables.ReportResolved, "provider weights retrained"))

	got, err := s.GetReport(ctx, rep.ID)
	require.NoError(t, err)
	require.Equal(t, tables.ReportResolved, got.Status)
	require.Equal(t, "provider weights retrained", got.AdminNotes)

	require.ErrorIs(t, s.ModerateReport(ctx, "missing", tables.ReportDismissed, ""), ErrNotFound)
}

func TestListReportsByStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	user := seedUser(t, s, "queue@example.com")

	for _, status := range []tables.ReportStatus{
		tables.ReportPending, tables.ReportPending, tables.ReportResolved,
	} {
		require.NoError(t, s.CreateReport(ctx, &tables.Report{
			ID: uuid.New().String(), UserID: user.ID,
			ReportType: tables.ReportBug, Description: "x", Status: status,
		}))
	}

	pending, err := s.ListReportsByStatus(ctx, tables.ReportPending, 0)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	all, err := s.ListReportsByStatus(ctx, "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}
