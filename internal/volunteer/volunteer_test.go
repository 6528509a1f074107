package volunteer

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/store"
)

func fixedNow(t *testing.T, iso string) func() time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", iso)
	require.NoError(t, err)
	return func() time.Time { return parsed }
}

func newTestService(t *testing.T, iso string) *Service {
	t.Helper()
	svc := NewService(store.NewMemoryStore(), fixedNow(t, iso), zap.NewNop())
	require.NoError(t, svc.Seed())
	return svc
}

func TestSeedIsIdempotent(t *testing.T) {
	svc := newTestService(t, "2025-11-22")

	first, err := svc.List()
	require.NoError(t, err)
	require.Len(t, first, 6)

	_, err = svc.Add("New Volunteer", "new@example.com", "Downtown")
	require.NoError(t, err)
	require.NoError(t, svc.Seed())

	second, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, second, 7)
}

func TestAdd(t *testing.T) {
	svc := newTestService(t, "2025-11-22")

	added, err := svc.Add("Priya Patel", "priya@example.com", "Eastside")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, 0, added.Hours)
	assert.Equal(t, 0, added.TasksCompleted)
	assert.Equal(t, "2025-11-22", added.RecentActivity)

	volunteers, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, added, volunteers[len(volunteers)-1])
}

func TestAddRequiresFields(t *testing.T) {
	svc := newTestService(t, "2025-11-22")

	_, err := svc.Add("", "a@example.com", "Downtown")
	assert.Error(t, err)
	_, err = svc.Add("Name", "", "Downtown")
	assert.Error(t, err)
	_, err = svc.Add("Name", "a@example.com", "")
	assert.Error(t, err)
}

func TestStatusFor(t *testing.T) {
	tests := []struct {
		hours int
		want  string
	}{
		{0, "Needs Help"},
		{4, "Needs Help"},
		{5, "Steady"},
		{15, "Steady"},
		{16, "High Impact"},
		{22, "High Impact"},
	}

	for _, tt := range tests {
		got := StatusFor(tt.hours)
		if got.Label != tt.want {
			t.Errorf("StatusFor(%d) = %q, want %q", tt.hours, got.Label, tt.want)
		}
		if got.Suggestion == "" {
			t.Errorf("StatusFor(%d) has no suggestion", tt.hours)
		}
	}
}

func TestComputeKPIs(t *testing.T) {
	svc := newTestService(t, "2025-11-22")

	kpis, err := svc.ComputeKPIs(9)
	require.NoError(t, err)

	// Seed hours: 18+12+4+22+8+15 = 79 over 6 volunteers
	assert.InDelta(t, 79.0/6.0, kpis.AvgHours, 1e-9)
	assert.Equal(t, 9, kpis.TotalDonations)
	// All seed activity dates fall within 7 days of 2025-11-22
	assert.Equal(t, 6, kpis.ActiveThisWeek)
}

func TestComputeKPIsStaleActivity(t *testing.T) {
	svc := newTestService(t, "2025-12-15")

	kpis, err := svc.ComputeKPIs(0)
	require.NoError(t, err)
	assert.Equal(t, 0, kpis.ActiveThisWeek)
}

func TestComputeKPIsEmptyRoster(t *testing.T) {
	svc := NewService(store.NewMemoryStore(), fixedNow(t, "2025-11-22"), zap.NewNop())

	kpis, err := svc.ComputeKPIs(3)
	require.NoError(t, err)
	assert.Zero(t, kpis.AvgHours)
	assert.Equal(t, 3, kpis.TotalDonations)
	assert.Zero(t, kpis.ActiveThisWeek)
}

func TestExportAnonymized(t *testing.T) {
	svc := newTestService(t, "2025-11-22")

	var buf bytes.Buffer
	require.NoError(t, svc.ExportAnonymized(&buf))

	var rows []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 6)

	for _, row := range rows {
		assert.Contains(t, row, "hours")
		assert.Contains(t, row, "location")
		assert.Contains(t, row, "tasksCompleted")
		assert.NotContains(t, row, "name")
		assert.NotContains(t, row, "email")
		assert.NotContains(t, row, "id")
	}
}
