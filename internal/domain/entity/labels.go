package entity

// Human-readable labels for rendering statuses and activity types.

var loanStatusLabels = map[LoanStatus]string{
	LoanStatusPending:   "Pending Submission",
	LoanStatusSubmitted: "Submitted",
	LoanStatusInReview:  "In Review",
	LoanStatusApproved:  "Approved",
	LoanStatusRejected:  "Rejected",
	LoanStatusDisbursed: "Disbursed",
	LoanStatusCompleted: "Completed",
	LoanStatusDeclined:  "Declined",
	LoanStatusDraft:     "Draft",
}

// Label returns the display label for the status, falling back to the raw
// value for unknown statuses.
func (s LoanStatus) Label() string {
	if l, ok := loanStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

var documentStatusLabels = map[DocumentStatus]string{
	DocumentStatusUploaded:      "Uploaded",
	DocumentStatusPendingReview: "Pending Review",
	DocumentStatusVerified:      "Verified",
	DocumentStatusRejected:      "Rejected",
}

// Label returns the display label for the document status.
func (s DocumentStatus) Label() string {
	if l, ok := documentStatusLabels[s]; ok {
		return l
	}
	return string(s)
}

var activityTypeLabels = map[ActivityType]string{
	ActivitySubmission:       "Loan Submission",
	ActivityDocumentUpload:   "Document Upload",
	ActivityReviewStart:      "Review Started",
	ActivityEligibilityCheck: "Eligibility Check",
	ActivityCreditAssessment: "Credit Assessment",
	ActivityRiskAnalysis:     "Risk Analysis",
	ActivityApproved:         "Loan Approved",
	ActivityRejected:         "Loan Rejected",
	ActivityDisbursement:     "Loan Disbursement",
	ActivityComment:          "Comment Added",
}

// Label returns the display label for the activity type.
func (t ActivityType) Label() string {
	if l, ok := activityTypeLabels[t]; ok {
		return l
	}
	return string(t)
}
