package memory

import (
	"cmp"
	"context"
	"maps"
	"slices"
	"time"

	"github.com/oryfolks/hrms-backend-go/internal/domain/leave"
)

type balanceRepository struct {
	s *Store
}

func NewBalanceRepository(s *Store) leave.BalanceRepository {
	return &balanceRepository{s: s}
}

func (r *balanceRepository) Create(_ context.Context, b leave.LeaveBalance) (leave.LeaveBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.balances[b.EmployeeID]; ok {
		return leave.LeaveBalance{}, leave.ErrBalanceAlreadyExists
	}
	b.ID = newID()
	b.UpdatedAt = r.s.now()
	r.s.data.balances[b.EmployeeID] = b
	return b, nil
}

func (r *balanceRepository) GetByEmployeeID(_ context.Context, employeeID string) (leave.LeaveBalance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.data.balances[employeeID]
	if !ok {
		return leave.LeaveBalance{}, leave.ErrBalanceNotFound
	}
	return b, nil
}

// GetByEmployeeIDForUpdate relies on the store serializing transactions.
func (r *balanceRepository) GetByEmployeeIDForUpdate(ctx context.Context, employeeID string) (leave.LeaveBalance, error) {
	return r.GetByEmployeeID(ctx, employeeID)
}

func (r *balanceRepository) List(_ context.Context) ([]leave.LeaveBalance, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	balances := slices.Collect(maps.Values(r.s.data.balances))
	slices.SortFunc(balances, func(a, b leave.LeaveBalance) int { return cmp.Compare(a.EmployeeID, b.EmployeeID) })
	return balances, nil
}

func (r *balanceRepository) mutate(employeeID string, fn func(*leave.LeaveBalance)) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.data.balances[employeeID]
	if !ok {
		return leave.ErrBalanceNotFound
	}
	fn(&b)
	b.UpdatedAt = r.s.now()
	r.s.data.balances[employeeID] = b
	return nil
}

func (r *balanceRepository) UpdateTotals(_ context.Context, b leave.LeaveBalance) error {
	return r.mutate(b.EmployeeID, func(cur *leave.LeaveBalance) {
		cur.SetEntitlement(b.Entitlement())
	})
}

func (r *balanceRepository) UpdateUsage(_ context.Context, b leave.LeaveBalance) error {
	return r.mutate(b.EmployeeID, func(cur *leave.LeaveBalance) {
		cur.CasualUsed = b.CasualUsed
		cur.SickUsed = b.SickUsed
		cur.EarnedUsed = b.EarnedUsed
	})
}

func (r *balanceRepository) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.data.balances, employeeID)
	return nil
}

type leaveRepository struct {
	s *Store
}

func NewLeaveRepository(s *Store) leave.LeaveRepository {
	return &leaveRepository{s: s}
}

// withNames fills the joined display names. Caller holds mu.
func (r *leaveRepository) withNames(l leave.Leave) leave.Leave {
	l.EmployeeName = r.s.fullName(l.EmployeeID)
	l.ApproverName = nil
	if l.ApprovedBy != nil {
		l.ApproverName = r.s.userDisplayName(*l.ApprovedBy)
	}
	return l
}

func newestFirst(a, b leave.Leave) int {
	if c := b.SubmittedAt.Compare(a.SubmittedAt); c != 0 {
		return c
	}
	return cmp.Compare(b.ID, a.ID)
}

func (r *leaveRepository) collect(match func(leave.Leave) bool, order func(a, b leave.Leave) int) []leave.Leave {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	leaves := make([]leave.Leave, 0)
	for _, l := range r.s.data.leaves {
		if match(l) {
			leaves = append(leaves, r.withNames(l))
		}
	}
	slices.SortFunc(leaves, order)
	return leaves
}

func (r *leaveRepository) Create(_ context.Context, l leave.Leave) (leave.Leave, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l.ID = newID()
	l.SubmittedAt = r.s.now()
	if l.Status == "" {
		l.Status = leave.LeaveStatusPending
	}
	r.s.data.leaves[l.ID] = l
	return r.withNames(l), nil
}

func (r *leaveRepository) GetByID(_ context.Context, id string) (leave.Leave, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	l, ok := r.s.data.leaves[id]
	if !ok {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return r.withNames(l), nil
}

func (r *leaveRepository) GetByIDForUpdate(ctx context.Context, id string) (leave.Leave, error) {
	return r.GetByID(ctx, id)
}

func (r *leaveRepository) List(_ context.Context) ([]leave.Leave, error) {
	return r.collect(func(leave.Leave) bool { return true }, newestFirst), nil
}

func (r *leaveRepository) ListByEmployeeID(_ context.Context, employeeID string, limit int) ([]leave.Leave, error) {
	leaves := r.collect(func(l leave.Leave) bool { return l.EmployeeID == employeeID }, newestFirst)
	if limit > 0 && len(leaves) > limit {
		leaves = leaves[:limit]
	}
	return leaves, nil
}

func (r *leaveRepository) ListByEmployeeIDs(_ context.Context, employeeIDs []string) ([]leave.Leave, error) {
	set := inSet(employeeIDs)
	return r.collect(func(l leave.Leave) bool {
		_, ok := set[l.EmployeeID]
		return ok
	}, newestFirst), nil
}

func (r *leaveRepository) ListApprovedOverlapping(_ context.Context, start, end time.Time) ([]leave.Leave, error) {
	return r.collect(func(l leave.Leave) bool {
		return l.Status == leave.LeaveStatusApproved && l.Overlaps(start, end)
	}, func(a, b leave.Leave) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	}), nil
}

func (r *leaveRepository) UpdateReview(_ context.Context, l leave.Leave) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	cur, ok := r.s.data.leaves[l.ID]
	if !ok {
		return leave.ErrLeaveNotFound
	}
	cur.Status = l.Status
	cur.RejectionReason = l.RejectionReason
	cur.ApprovedBy = l.ApprovedBy
	cur.ReviewedAt = l.ReviewedAt
	r.s.data.leaves[l.ID] = cur
	return nil
}

func (r *leaveRepository) ClearApprover(_ context.Context, userID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for id, l := range r.s.data.leaves {
		if l.ApprovedBy != nil && *l.ApprovedBy == userID {
			l.ApprovedBy = nil
			r.s.data.leaves[id] = l
		}
	}
	return nil
}

func (r *leaveRepository) DeleteByEmployeeID(_ context.Context, employeeID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	maps.DeleteFunc(r.s.data.leaves, func(_ string, l leave.Leave) bool { return l.EmployeeID == employeeID })
	return nil
}
