package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanStatus represents the lifecycle status of a loan application
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "PENDING"
	LoanStatusSubmitted LoanStatus = "SUBMITTED"
	LoanStatusInReview  LoanStatus = "IN_REVIEW"
	LoanStatusApproved  LoanStatus = "APPROVED"
	LoanStatusRejected  LoanStatus = "REJECTED"
	LoanStatusDisbursed LoanStatus = "DISBURSED"
	LoanStatusCompleted LoanStatus = "COMPLETED"
	LoanStatusDeclined  LoanStatus = "DECLINED"
	LoanStatusDraft     LoanStatus = "DRAFT"
)

// LoanStatuses lists all valid loan statuses in display order.
var LoanStatuses = []LoanStatus{
	LoanStatusPending,
	LoanStatusSubmitted,
	LoanStatusInReview,
	LoanStatusApproved,
	LoanStatusRejected,
	LoanStatusDisbursed,
	LoanStatusCompleted,
	LoanStatusDeclined,
	LoanStatusDraft,
}

var validLoanStatuses = map[LoanStatus]bool{
	LoanStatusPending:   true,
	LoanStatusSubmitted: true,
	LoanStatusInReview:  true,
	LoanStatusApproved:  true,
	LoanStatusRejected:  true,
	LoanStatusDisbursed: true,
	LoanStatusCompleted: true,
	LoanStatusDeclined:  true,
	LoanStatusDraft:     true,
}

// String returns the string representation of the status
func (s LoanStatus) String() string {
	return string(s)
}

// IsValid returns true if the status is a known loan status
func (s LoanStatus) IsValid() bool {
	return validLoanStatuses[s]
}

// ImpliesApproval returns true for statuses that carry an approval date.
// A loan has an approved date if and only if its status implies approval.
func (s LoanStatus) ImpliesApproval() bool {
	return s == LoanStatusApproved || s == LoanStatusDisbursed || s == LoanStatusCompleted
}

// IsDecided returns true for statuses that carry a recorded approval decision
func (s LoanStatus) IsDecided() bool {
	switch s {
	case LoanStatusApproved, LoanStatusRejected, LoanStatusDeclined, LoanStatusDisbursed:
		return true
	}
	return false
}

// IsApproveLike returns true when the decision bucket is an approval
func (s LoanStatus) IsApproveLike() bool {
	return s == LoanStatusApproved || s == LoanStatusDisbursed
}

// IsRejectLike returns true when the decision bucket is a rejection
func (s LoanStatus) IsRejectLike() bool {
	return s == LoanStatusRejected || s == LoanStatusDeclined
}

// Loan types as they appear on applications
const (
	LoanTypePersonal = "Personal Loan"
	LoanTypeMortgage = "Mortgage"
	LoanTypeAuto     = "Auto Loan"
	LoanTypeBusiness = "Business Loan"
)

// LoanTypes lists the available loan products.
var LoanTypes = []string{LoanTypePersonal, LoanTypeMortgage, LoanTypeAuto, LoanTypeBusiness}

// Loan represents a loan application together with its applicant snapshot.
// Loans are generated once per session and never mutated afterwards.
type Loan struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	ApplicantName string          `json:"applicant_name"`
	Amount        string          `json:"amount"`
	RawAmount     decimal.Decimal `json:"raw_amount"`
	Status        LoanStatus      `json:"status"`
	LoanType      string          `json:"loan_type"`
	SubmittedDate time.Time       `json:"submitted_date"`
	DueDate       time.Time       `json:"due_date"`
	ApprovedDate  *time.Time      `json:"approved_date,omitempty"`
	RiskScore     float64         `json:"risk_score"`
	AssignedTo    string          `json:"assigned_to"`
	LastActivity  string          `json:"last_activity"`

	// Applicant snapshot captured at submission time
	CreditBureauScore string `json:"credit_bureau_score"`
	Address           string `json:"address"`
	MaritalStatus     string `json:"marital_status"`
	EmploymentStatus  string `json:"employment_status"`
	Income            string `json:"income"`
}
