package fixture

import "github.com/loanflow/loanflow/internal/domain/entity"

// Dataset is the complete fixture generated for a session. It is built in
// one pass at startup and treated as read-only afterwards.
type Dataset struct {
	Customers  []entity.Customer
	Loans      []entity.Loan
	Documents  []entity.Document
	Activities []entity.Activity
	Approvals  []entity.Approval
}

// LoanByID returns the loan with the given id, or nil if none exists
func (d *Dataset) LoanByID(id string) *entity.Loan {
	for i := range d.Loans {
		if d.Loans[i].ID == id {
			return &d.Loans[i]
		}
	}
	return nil
}

// DocumentsFor returns the documents attached to the given loan
func (d *Dataset) DocumentsFor(loanID string) []entity.Document {
	var out []entity.Document
	for _, doc := range d.Documents {
		if doc.LoanID == loanID {
			out = append(out, doc)
		}
	}
	return out
}

// ActivitiesFor returns the activities recorded for the given loan,
// newest first
func (d *Dataset) ActivitiesFor(loanID string) []entity.Activity {
	var out []entity.Activity
	for _, act := range d.Activities {
		if act.LoanID == loanID {
			out = append(out, act)
		}
	}
	return out
}

// ApprovalsFor returns the approval decisions recorded for the given loan
func (d *Dataset) ApprovalsFor(loanID string) []entity.Approval {
	var out []entity.Approval
	for _, appr := range d.Approvals {
		if appr.LoanID == loanID {
			out = append(out, appr)
		}
	}
	return out
}
