package fixture

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loanflow/loanflow/internal/domain/entity"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func testDataset(t *testing.T, seed int64) *Dataset {
	t.Helper()
	return NewGeneratorAt(seed, testNow).Generate(DefaultConfig())
}

func TestGenerate_Deterministic(t *testing.T) {
	a := NewGeneratorAt(42, testNow).Generate(DefaultConfig())
	b := NewGeneratorAt(42, testNow).Generate(DefaultConfig())
	require.True(t, reflect.DeepEqual(a, b), "same seed must yield the same dataset")

	c := NewGeneratorAt(43, testNow).Generate(DefaultConfig())
	assert.False(t, reflect.DeepEqual(a.Loans, c.Loans), "different seeds should diverge")
}

func TestGenerateCustomers(t *testing.T) {
	g := NewGeneratorAt(1, testNow)
	customers := g.GenerateCustomers(7)
	require.Len(t, customers, 7)

	for i, c := range customers {
		assert.Equal(t, fmt.Sprintf("CUST%d", i+1), c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Email)

		var score int
		_, err := fmt.Sscanf(c.CreditScore, "%d", &score)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, score, 400)
		assert.LessOrEqual(t, score, 800)

		assert.GreaterOrEqual(t, c.TotalLoans, 0)
		assert.LessOrEqual(t, c.TotalLoans, 2)
	}
}

func TestGenerateLoans_Invariants(t *testing.T) {
	// A larger run makes it overwhelmingly likely every status occurs.
	g := NewGeneratorAt(7, testNow)
	customers := g.GenerateCustomers(7)
	loans := g.GenerateLoans(200, customers)
	require.Len(t, loans, 200)

	names := make(map[string]bool, len(customers))
	for _, c := range customers {
		names[c.Name] = true
	}

	for i, loan := range loans {
		assert.Equal(t, fmt.Sprintf("LOAN%d", 1000+i), loan.ID)
		assert.Equal(t, fmt.Sprintf("APP%d", 10000+i), loan.ApplicationID)
		assert.True(t, loan.Status.IsValid(), "loan %s has status %s", loan.ID, loan.Status)
		assert.True(t, names[loan.ApplicantName], "applicant %q must be a generated customer", loan.ApplicantName)

		assert.True(t, loan.DueDate.After(loan.SubmittedDate), "due date must follow submission")
		assert.False(t, loan.SubmittedDate.After(testNow))

		if loan.Status.ImpliesApproval() {
			require.NotNil(t, loan.ApprovedDate, "loan %s (%s) must carry an approved date", loan.ID, loan.Status)
			assert.False(t, loan.ApprovedDate.Before(loan.SubmittedDate),
				"approved date must not precede submission")
		} else {
			assert.Nil(t, loan.ApprovedDate, "loan %s (%s) must not carry an approved date", loan.ID, loan.Status)
		}

		assert.GreaterOrEqual(t, loan.RiskScore, 0.0)
		assert.LessOrEqual(t, loan.RiskScore, 10.0)
		assert.Contains(t, []string{"Officer A", "Officer B", "Officer C"}, loan.AssignedTo)

		min := loan.SubmittedDate.AddDate(0, 3, 0)
		assert.False(t, loan.DueDate.Before(min), "due date must be at least 3 months out")
	}
}

func TestGenerateDocuments_ReferentialIntegrity(t *testing.T) {
	data := testDataset(t, 11)

	loanIDs := make(map[string]int)
	for _, loan := range data.Loans {
		loanIDs[loan.ID] = 0
	}

	for _, doc := range data.Documents {
		_, ok := loanIDs[doc.LoanID]
		require.True(t, ok, "document %s references unknown loan %s", doc.ID, doc.LoanID)
		loanIDs[doc.LoanID]++
		assert.NotEmpty(t, doc.Name)
		assert.Contains(t, entity.DocumentTypes, doc.Type)
	}

	for id, n := range loanIDs {
		assert.GreaterOrEqual(t, n, 2, "loan %s needs at least 2 documents", id)
		assert.LessOrEqual(t, n, 4, "loan %s may have at most 4 documents", id)
	}
}

func TestGenerateActivities_OrderAndConditions(t *testing.T) {
	data := testDataset(t, 13)

	byLoan := make(map[string][]entity.Activity)
	for _, act := range data.Activities {
		require.NotNil(t, data.LoanByID(act.LoanID), "activity %s references unknown loan", act.ID)
		byLoan[act.LoanID] = append(byLoan[act.LoanID], act)
	}

	for _, loan := range data.Loans {
		acts := byLoan[loan.ID]
		require.NotEmpty(t, acts, "every loan has at least a submission activity")

		for i := 1; i < len(acts); i++ {
			assert.False(t, acts[i].Timestamp.After(acts[i-1].Timestamp),
				"activities for %s must be ordered newest first", loan.ID)
		}

		types := make(map[entity.ActivityType]int)
		for _, act := range acts {
			types[act.ActionType]++
		}
		assert.Equal(t, 1, types[entity.ActivitySubmission])

		started := loan.Status != entity.LoanStatusPending && loan.Status != entity.LoanStatusDraft
		if started {
			assert.Equal(t, 1, types[entity.ActivityDocumentUpload], "loan %s (%s)", loan.ID, loan.Status)
		} else {
			assert.Zero(t, types[entity.ActivityDocumentUpload])
		}

		inReview := started && loan.Status != entity.LoanStatusSubmitted
		if inReview {
			assert.Equal(t, 1, types[entity.ActivityReviewStart], "loan %s (%s)", loan.ID, loan.Status)
		} else {
			assert.Zero(t, types[entity.ActivityReviewStart])
		}

		switch {
		case loan.Status.ImpliesApproval():
			assert.Equal(t, 1, types[entity.ActivityApproved], "loan %s (%s)", loan.ID, loan.Status)
			assert.Zero(t, types[entity.ActivityRejected])
		case loan.Status.IsRejectLike():
			assert.Equal(t, 1, types[entity.ActivityRejected], "loan %s (%s)", loan.ID, loan.Status)
			assert.Zero(t, types[entity.ActivityApproved])
		default:
			assert.Zero(t, types[entity.ActivityApproved])
			assert.Zero(t, types[entity.ActivityRejected])
		}
	}
}

func TestGenerateApprovals_ExactlyOnePerDecidedLoan(t *testing.T) {
	data := testDataset(t, 17)

	byLoan := make(map[string][]entity.Approval)
	for _, appr := range data.Approvals {
		require.NotNil(t, data.LoanByID(appr.LoanID), "approval %s references unknown loan", appr.ID)
		byLoan[appr.LoanID] = append(byLoan[appr.LoanID], appr)
	}

	for _, loan := range data.Loans {
		approvals := byLoan[loan.ID]
		if !loan.Status.IsDecided() {
			assert.Empty(t, approvals, "undecided loan %s (%s) must have no approval", loan.ID, loan.Status)
			continue
		}

		require.Len(t, approvals, 1, "decided loan %s (%s) must have exactly one approval", loan.ID, loan.Status)
		appr := approvals[0]

		if loan.Status.IsApproveLike() {
			assert.Equal(t, entity.DecisionApproved, appr.Decision)
		} else {
			assert.Equal(t, entity.DecisionRejected, appr.Decision)
		}

		if loan.ApprovedDate != nil {
			assert.True(t, appr.ApprovalDate.Equal(*loan.ApprovedDate),
				"approval date must mirror the loan's approved date")
		} else {
			assert.False(t, appr.ApprovalDate.Before(loan.SubmittedDate))
		}
	}
}

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount   int64
		expected string
	}{
		{0, "$0.00"},
		{950, "$950.00"},
		{25000, "$25,000.00"},
		{249999, "$249,999.00"},
		{1234567, "$1,234,567.00"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatUSD(decimal.NewFromInt(tt.amount)))
		})
	}
}
