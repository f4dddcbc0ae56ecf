package mock

import (
	"context"
	"testing"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	_ leave.BalanceService = (*MockBalanceService)(nil)
	_ leave.LeaveService   = (*MockLeaveService)(nil)
)

func TestMockBalanceService_ReturnsExpectation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewMockBalanceService(ctrl)

	want := leave.RefreshSummary{Processed: 2, Failed: 1}
	svc.EXPECT().RefreshAll(gomock.Any()).Return(want, nil)

	got, err := svc.RefreshAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
