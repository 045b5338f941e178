package service

import (
	"sort"

	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/fixture"
)

// Summary holds the dashboard pipeline counts
type Summary struct {
	TotalLoans    int
	PendingLoans  int
	ApprovedLoans int
	RejectedLoans int
}

// DashboardService derives the dashboard summary from the loan fixture
type DashboardService struct {
	data   *fixture.Dataset
	logger *zap.Logger
}

// NewDashboardService creates a DashboardService over the given dataset
func NewDashboardService(data *fixture.Dataset, logger *zap.Logger) *DashboardService {
	return &DashboardService{data: data, logger: logger}
}

// Summarize buckets loans into the dashboard counts: pending covers
// everything still moving toward a decision, approved and rejected cover
// the decided buckets.
func (s *DashboardService) Summarize() Summary {
	sum := Summary{TotalLoans: len(s.data.Loans)}
	for _, loan := range s.data.Loans {
		switch loan.Status {
		case entity.LoanStatusPending, entity.LoanStatusSubmitted, entity.LoanStatusInReview:
			sum.PendingLoans++
		case entity.LoanStatusApproved, entity.LoanStatusDisbursed:
			sum.ApprovedLoans++
		case entity.LoanStatusRejected, entity.LoanStatusDeclined:
			sum.RejectedLoans++
		}
	}
	return sum
}

// RecentActivities returns the n most recent activities across all loans
func (s *DashboardService) RecentActivities(n int) []entity.Activity {
	acts := make([]entity.Activity, len(s.data.Activities))
	copy(acts, s.data.Activities)
	sort.SliceStable(acts, func(i, j int) bool {
		return acts[i].Timestamp.After(acts[j].Timestamp)
	})
	if n < len(acts) {
		acts = acts[:n]
	}
	return acts
}
