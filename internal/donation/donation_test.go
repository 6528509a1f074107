package donation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/secondchapter/booktruck/internal/store"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	now := func() time.Time {
		return time.Date(2025, time.November, 22, 10, 0, 0, 0, time.UTC)
	}
	return NewService(store.NewMemoryStore(), now, zap.NewNop())
}

func TestAddAndList(t *testing.T) {
	svc := newTestService(t)

	donations, err := svc.List()
	require.NoError(t, err)
	assert.Empty(t, donations)

	added, err := svc.Add("Jane Doe", "jane@example.com", "Dune", "Well Loved", "water damage on cover")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "2025-11-22", added.Date)
	assert.Equal(t, "Well Loved", added.Condition)

	_, err = svc.Add("John Roe", "john@example.com", "Emma", "", "")
	require.NoError(t, err)

	donations, err = svc.List()
	require.NoError(t, err)
	require.Len(t, donations, 2)
	assert.Equal(t, added, donations[0])
	assert.Equal(t, DefaultCondition, donations[1].Condition)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestAddRequiresFields(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name      string
		donor     string
		email     string
		bookTitle string
	}{
		{"missing donor", "", "a@example.com", "Dune"},
		{"missing email", "Jane", "", "Dune"},
		{"missing title", "Jane", "a@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Add(tt.donor, tt.email, tt.bookTitle, "", "")
			assert.Error(t, err)
		})
	}
}

func TestReceipt(t *testing.T) {
	receipt := Receipt(Donation{
		DonorName: "Jane Doe",
		Email:     "jane@example.com",
		BookTitle: "Dune",
		Condition: "Gently Used",
		Date:      "2025-11-22",
	})

	assert.Contains(t, receipt, "DONATION RECEIPT")
	assert.Contains(t, receipt, "Donor: Jane Doe")
	assert.Contains(t, receipt, "Book: Dune")
	assert.Contains(t, receipt, "Condition: Gently Used")
	assert.Contains(t, receipt, "Date: 2025-11-22")
	assert.Contains(t, receipt, "Thank you for your generous donation!")
}
