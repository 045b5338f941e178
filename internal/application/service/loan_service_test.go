package service

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/fixture"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func testLoan(id, applicant string, amount int64, status entity.LoanStatus, submitted time.Time, loanType string) entity.Loan {
	return entity.Loan{
		ID:            id,
		ApplicantName: applicant,
		RawAmount:     decimal.NewFromInt(amount),
		Status:        status,
		SubmittedDate: submitted,
		LoanType:      loanType,
	}
}

func testData() *fixture.Dataset {
	return &fixture.Dataset{
		Loans: []entity.Loan{
			testLoan("LOAN1000", "Customer A", 50000, entity.LoanStatusApproved, day(3), entity.LoanTypeMortgage),
			testLoan("LOAN1001", "Customer B", 25000, entity.LoanStatusPending, day(1), entity.LoanTypePersonal),
			testLoan("LOAN1002", "Customer C", 75000, entity.LoanStatusApproved, day(5), entity.LoanTypeAuto),
			testLoan("LOAN1003", "Customer D", 10000, entity.LoanStatusRejected, day(2), entity.LoanTypeBusiness),
		},
		Documents: []entity.Document{
			{ID: "DOC1", LoanID: "LOAN1000", Name: "Document 1 for Customer A"},
			{ID: "DOC2", LoanID: "LOAN1000", Name: "Document 2 for Customer A"},
			{ID: "DOC3", LoanID: "LOAN1001", Name: "Document 1 for Customer B"},
		},
		Activities: []entity.Activity{
			{ID: "ACT1", LoanID: "LOAN1000", ActionType: entity.ActivityApproved, Timestamp: day(4)},
			{ID: "ACT2", LoanID: "LOAN1000", ActionType: entity.ActivitySubmission, Timestamp: day(3)},
			{ID: "ACT3", LoanID: "LOAN1001", ActionType: entity.ActivitySubmission, Timestamp: day(1)},
		},
		Approvals: []entity.Approval{
			{ID: "APPR1", LoanID: "LOAN1000", Decision: entity.DecisionApproved},
		},
	}
}

func TestLoanService_List_StatusFilter(t *testing.T) {
	svc := NewLoanService(testData(), zap.NewNop())

	approved := svc.List(ListQuery{Status: entity.LoanStatusApproved})
	require.Len(t, approved, 2)
	for _, loan := range approved {
		assert.Equal(t, entity.LoanStatusApproved, loan.Status)
	}

	// Clearing the filter restores the full set.
	all := svc.List(ListQuery{})
	assert.Len(t, all, 4)
}

func TestLoanService_List_Search(t *testing.T) {
	svc := NewLoanService(testData(), zap.NewNop())

	tests := []struct {
		name   string
		search string
		ids    []string
	}{
		{"applicant substring, case-insensitive", "customer a", []string{"LOAN1000"}},
		{"loan id", "loan1002", []string{"LOAN1002"}},
		{"loan type", "mortgage", []string{"LOAN1000"}},
		{"no match", "zzz", nil},
		{"common substring matches all applicants", "customer", []string{"LOAN1000", "LOAN1001", "LOAN1002", "LOAN1003"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.List(ListQuery{Search: tt.search})
			var ids []string
			for _, loan := range got {
				ids = append(ids, loan.ID)
			}
			assert.ElementsMatch(t, tt.ids, ids)
		})
	}
}

func TestLoanService_List_Sort(t *testing.T) {
	svc := NewLoanService(testData(), zap.NewNop())

	newest := svc.List(ListQuery{Sort: SortNewest})
	for i := 1; i < len(newest); i++ {
		assert.False(t, newest[i].SubmittedDate.After(newest[i-1].SubmittedDate))
	}

	oldest := svc.List(ListQuery{Sort: SortOldest})
	for i := 1; i < len(oldest); i++ {
		assert.False(t, oldest[i].SubmittedDate.Before(oldest[i-1].SubmittedDate))
	}

	desc := svc.List(ListQuery{Sort: SortAmountDesc})
	for i := 1; i < len(desc); i++ {
		assert.False(t, desc[i].RawAmount.GreaterThan(desc[i-1].RawAmount))
	}

	asc := svc.List(ListQuery{Sort: SortAmountAsc})
	for i := 1; i < len(asc); i++ {
		assert.False(t, asc[i].RawAmount.LessThan(asc[i-1].RawAmount))
	}
}

func TestLoanService_List_DoesNotReorderFixture(t *testing.T) {
	data := testData()
	svc := NewLoanService(data, zap.NewNop())

	_ = svc.List(ListQuery{Sort: SortAmountDesc})
	assert.Equal(t, "LOAN1000", data.Loans[0].ID, "underlying fixture order must be untouched")
}

func TestLoanService_Get(t *testing.T) {
	svc := NewLoanService(testData(), zap.NewNop())

	detail, err := svc.Get("LOAN1000")
	require.NoError(t, err)
	assert.Equal(t, "LOAN1000", detail.Loan.ID)
	assert.Len(t, detail.Documents, 2)
	assert.Len(t, detail.Activities, 2)
	assert.Len(t, detail.Approvals, 1)
}

func TestLoanService_Get_NotFound(t *testing.T) {
	svc := NewLoanService(testData(), zap.NewNop())

	_, err := svc.Get("LOAN9999")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLoanNotFound))
}

func TestSortOrder_IsValid(t *testing.T) {
	for _, s := range []SortOrder{SortNewest, SortOldest, SortAmountDesc, SortAmountAsc} {
		assert.True(t, s.IsValid())
	}
	assert.False(t, SortOrder("sideways").IsValid())
}
