package entity

import "time"

// Customer represents a borrower profile. Customers are linked to loans by
// name only; there is no enforced foreign key between the two.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	CreditScore string `json:"credit_score"`
	TotalLoans  int    `json:"total_loans"`
}

// DocumentStatus represents the verification status of an uploaded document
type DocumentStatus string

const (
	DocumentStatusUploaded      DocumentStatus = "UPLOADED"
	DocumentStatusPendingReview DocumentStatus = "PENDING_REVIEW"
	DocumentStatusVerified      DocumentStatus = "VERIFIED"
	DocumentStatusRejected      DocumentStatus = "REJECTED"
)

// DocumentStatuses lists all valid document statuses.
var DocumentStatuses = []DocumentStatus{
	DocumentStatusUploaded,
	DocumentStatusPendingReview,
	DocumentStatusVerified,
	DocumentStatusRejected,
}

// String returns the string representation of the status
func (s DocumentStatus) String() string {
	return string(s)
}

// Document types requested during loan processing
const (
	DocumentTypeIDProof         = "ID Proof"
	DocumentTypeIncomeStatement = "Income Statement"
	DocumentTypeBankStatement   = "Bank Statement"
	DocumentTypeAddressProof    = "Address Proof"
	DocumentTypeApplicationForm = "Application Form"
)

// DocumentTypes lists the document types requested during processing.
var DocumentTypes = []string{
	DocumentTypeIDProof,
	DocumentTypeIncomeStatement,
	DocumentTypeBankStatement,
	DocumentTypeAddressProof,
	DocumentTypeApplicationForm,
}

// Document represents a file attached to a loan application
type Document struct {
	ID           string         `json:"id"`
	LoanID       string         `json:"loan_id"`
	Name         string         `json:"name"`
	Type         string         `json:"type"`
	Status       DocumentStatus `json:"status"`
	UploadedBy   string         `json:"uploaded_by"`
	UploadedDate time.Time      `json:"uploaded_date"`
}

// ActivityType classifies a processing event on a loan
type ActivityType string

const (
	ActivitySubmission       ActivityType = "SUBMISSION"
	ActivityDocumentUpload   ActivityType = "DOCUMENT_UPLOAD"
	ActivityReviewStart      ActivityType = "REVIEW_START"
	ActivityEligibilityCheck ActivityType = "ELIGIBILITY_CHECK"
	ActivityCreditAssessment ActivityType = "CREDIT_ASSESSMENT"
	ActivityRiskAnalysis     ActivityType = "RISK_ANALYSIS"
	ActivityApproved         ActivityType = "APPROVED"
	ActivityRejected         ActivityType = "REJECTED"
	ActivityDisbursement     ActivityType = "DISBURSEMENT"
	ActivityComment          ActivityType = "COMMENT"
)

// String returns the string representation of the activity type
func (t ActivityType) String() string {
	return string(t)
}

// Activity represents one processing event in a loan's audit trail.
// Per loan, activities are stored newest-first; this is display order,
// not causal order.
type Activity struct {
	ID          string       `json:"id"`
	LoanID      string       `json:"loan_id"`
	Description string       `json:"description"`
	Timestamp   time.Time    `json:"timestamp"`
	Actor       string       `json:"actor"`
	ActionType  ActivityType `json:"action_type"`
}

// ApprovalDecision is the recorded outcome of an approval review
type ApprovalDecision string

const (
	DecisionApproved ApprovalDecision = "APPROVED"
	DecisionRejected ApprovalDecision = "REJECTED"
)

// Approval represents the recorded decision for a loan that reached a
// terminal review outcome. At most one approval exists per loan.
type Approval struct {
	ID           string           `json:"id"`
	LoanID       string           `json:"loan_id"`
	Approver     string           `json:"approver"`
	Decision     ApprovalDecision `json:"decision"`
	Comment      string           `json:"comment"`
	ApprovalDate time.Time        `json:"approval_date"`
	Role         string           `json:"role"`
}
