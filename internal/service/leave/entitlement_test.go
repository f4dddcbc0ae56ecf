package leave

import (
	"testing"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
)

func TestEntitlementFor(t *testing.T) {
	tests := []struct {
		months int
		want   leave.Entitlement
	}{
		{months: -3, want: leave.Entitlement{}},
		{months: 0, want: leave.Entitlement{}},
		{months: 5, want: leave.Entitlement{}},
		{months: 6, want: leave.Entitlement{Casual: 10, Sick: 6}},
		{months: 11, want: leave.Entitlement{Casual: 10, Sick: 6}},
		{months: 12, want: leave.Entitlement{Casual: 10, Sick: 6, Earned: 1}},
		{months: 13, want: leave.Entitlement{Casual: 10, Sick: 6, Earned: 2}},
		{months: 36, want: leave.Entitlement{Casual: 10, Sick: 6, Earned: 25}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EntitlementFor(tt.months), "months=%d", tt.months)
	}
}

func TestMonthsBetween(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 0, MonthsBetween(date(2025, 1, 31), date(2025, 2, 28)))
	assert.Equal(t, 1, MonthsBetween(date(2025, 1, 15), date(2025, 2, 15)))
	assert.Equal(t, 12, MonthsBetween(date(2024, 3, 1), date(2025, 3, 1)))
	assert.Equal(t, -1, MonthsBetween(date(2025, 3, 10), date(2025, 2, 10)))
}

func TestEntitlementCalculator_FourHundredDays(t *testing.T) {
	now := time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)
	calc := NewEntitlementCalculator(func() time.Time { return now })

	got := calc.Calculate(now.AddDate(0, 0, -400))

	assert.Equal(t, leave.Entitlement{Casual: 10, Sick: 6, Earned: 2}, got)
}
