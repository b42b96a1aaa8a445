package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kpandey16/Rent-Manage-RDB-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.Period
		wantErr bool
	}{
		{"2024-01", domain.Period{Year: 2024, Month: time.January}, false},
		{"2024-12", domain.Period{Year: 2024, Month: time.December}, false},
		{"2024-13", domain.Period{}, true},
		{"2024-1", domain.Period{}, true},
		{"202401", domain.Period{}, true},
		{"", domain.Period{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParsePeriod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriod_String(t *testing.T) {
	p := domain.Period{Year: 2024, Month: time.March}
	assert.Equal(t, "2024-03", p.String())
}

func TestPeriod_NextCrossesYearBoundary(t *testing.T) {
	p := domain.Period{Year: 2024, Month: time.December}
	assert.Equal(t, domain.Period{Year: 2025, Month: time.January}, p.Next())
}

func TestPeriod_EndHandlesMonthLengths(t *testing.T) {
	feb := domain.Period{Year: 2024, Month: time.February} // leap year
	assert.Equal(t, time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC), feb.End())

	feb23 := domain.Period{Year: 2023, Month: time.February}
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), feb23.End())
}

func TestPeriodsBetween(t *testing.T) {
	from := domain.Period{Year: 2024, Month: time.November}
	through := domain.Period{Year: 2025, Month: time.February}

	periods := domain.PeriodsBetween(from, through)
	require.Len(t, periods, 4)
	assert.Equal(t, "2024-11", periods[0].String())
	assert.Equal(t, "2025-02", periods[3].String())

	assert.Nil(t, domain.PeriodsBetween(through, from))
	assert.Equal(t, []domain.Period{from}, domain.PeriodsBetween(from, from))
}

func TestPeriod_JSONRoundTrip(t *testing.T) {
	p := domain.Period{Year: 2024, Month: time.July}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"2024-07"`, string(data))

	var got domain.Period
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, p, got)

	assert.Error(t, json.Unmarshal([]byte(`"not-a-period"`), &got))
}

func TestAllocation_ActiveIn(t *testing.T) {
	moveOut := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	alloc := domain.TenantRoomAllocation{
		MoveInDate:  time.Date(2024, time.February, 20, 0, 0, 0, 0, time.UTC),
		MoveOutDate: &moveOut,
	}

	tests := []struct {
		period string
		want   bool
	}{
		{"2024-01", false}, // before move-in
		{"2024-02", true},  // move-in mid-month still owes the month
		{"2024-03", true},
		{"2024-04", true}, // move-out mid-month still owes the month
		{"2024-05", false},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			p, err := domain.ParsePeriod(tt.period)
			require.NoError(t, err)
			assert.Equal(t, tt.want, alloc.ActiveIn(p))
		})
	}
}

func TestLedgerEntry_BeforeOrAt(t *testing.T) {
	cutoffDate := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)
	cutoffAt := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	entry := func(txn, created time.Time) domain.LedgerEntry {
		return domain.LedgerEntry{TransactionDate: txn, AuditFields: domain.AuditFields{CreatedAt: created}}
	}

	assert.True(t, entry(cutoffDate.AddDate(0, 0, -1), cutoffAt.Add(time.Hour)).BeforeOrAt(cutoffDate, cutoffAt))
	assert.True(t, entry(cutoffDate, cutoffAt).BeforeOrAt(cutoffDate, cutoffAt))
	assert.False(t, entry(cutoffDate, cutoffAt.Add(time.Nanosecond)).BeforeOrAt(cutoffDate, cutoffAt))
	assert.False(t, entry(cutoffDate.AddDate(0, 0, 1), cutoffAt.Add(-time.Hour)).BeforeOrAt(cutoffDate, cutoffAt))
}
