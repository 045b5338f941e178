package console

import (
	"fmt"
	"strings"

	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/domain/navigation"
)

const timeLayout = "2006-01-02 15:04"

func (c *Console) render() {
	snap := c.session.Snapshot()

	fmt.Fprintf(c.out, "\n== LoanFlow == role: %s\n", snap.Role)
	c.renderBreadcrumbs(snap.View.Path)

	switch snap.EffectiveScreen {
	case navigation.ScreenDashboard:
		c.renderDashboard()
	case navigation.ScreenLoansList:
		c.renderLoansList()
	case navigation.ScreenLoanDetail:
		c.renderLoanDetail(snap.View.Params.LoanID)
	case navigation.ScreenActivityLogs:
		c.renderActivityLogs(snap.Role)
	case navigation.ScreenSettings:
		c.renderSettings(snap.Role)
	case navigation.ScreenAccessDenied:
		c.renderAccessDenied()
	}
}

func (c *Console) renderBreadcrumbs(path []navigation.Breadcrumb) {
	labels := make([]string, 0, len(path))
	for _, b := range path {
		labels = append(labels, b.Label)
	}
	fmt.Fprintln(c.out, strings.Join(labels, " > "))
	fmt.Fprintln(c.out, strings.Repeat("-", 60))
}

func (c *Console) renderDashboard() {
	sum := c.dashboard.Summarize()
	fmt.Fprintln(c.out, "Dashboard")
	fmt.Fprintf(c.out, "  Total Loans:       %d\n", sum.TotalLoans)
	fmt.Fprintf(c.out, "  Pending Approvals: %d\n", sum.PendingLoans)
	fmt.Fprintf(c.out, "  Approved Loans:    %d\n", sum.ApprovedLoans)
	fmt.Fprintf(c.out, "  Rejected Loans:    %d\n", sum.RejectedLoans)

	fmt.Fprintln(c.out, "\nRecent Activities")
	recent := c.dashboard.RecentActivities(5)
	if len(recent) == 0 {
		fmt.Fprintln(c.out, "  No recent activities.")
		return
	}
	for _, act := range recent {
		c.renderActivity(act)
	}
}

func (c *Console) renderLoansList() {
	loans := c.loans.List(c.query)

	fmt.Fprintln(c.out, "Loan Applications")
	if c.query.Search != "" || c.query.Status != "" {
		fmt.Fprintf(c.out, "  (search=%q status=%q)\n", c.query.Search, string(c.query.Status))
	}

	if len(loans) == 0 {
		fmt.Fprintln(c.out, "  No loans found matching your criteria.")
		return
	}
	for _, loan := range loans {
		fmt.Fprintf(c.out, "  %-9s %-12s %12s  %-13s %-18s submitted %s, assigned %s\n",
			loan.ID, loan.ApplicantName, loan.Amount, loan.LoanType,
			loan.Status.Label(), loan.SubmittedDate.Format("2006-01-02"), loan.AssignedTo)
	}
}

func (c *Console) renderLoanDetail(loanID string) {
	detail, err := c.loans.Get(loanID)
	if err != nil {
		fmt.Fprintln(c.out, "Loan Not Found")
		fmt.Fprintln(c.out, "  The loan you are looking for does not exist.")
		fmt.Fprintln(c.out, "  (go loans to return to the list)")
		return
	}

	loan := detail.Loan
	fmt.Fprintf(c.out, "Loan Application: %s (%s) - %s\n", loan.ApplicantName, loan.ID, loan.Status.Label())

	fmt.Fprintln(c.out, "\nLoan Details")
	fmt.Fprintf(c.out, "  Application ID: %s\n", loan.ApplicationID)
	fmt.Fprintf(c.out, "  Amount:         %s\n", loan.Amount)
	fmt.Fprintf(c.out, "  Loan Type:      %s\n", loan.LoanType)
	fmt.Fprintf(c.out, "  Submitted On:   %s\n", loan.SubmittedDate.Format("2006-01-02"))
	fmt.Fprintf(c.out, "  Due Date:       %s\n", loan.DueDate.Format("2006-01-02"))
	fmt.Fprintf(c.out, "  Assigned To:    %s\n", loan.AssignedTo)
	fmt.Fprintf(c.out, "  Risk Score:     %.1f\n", loan.RiskScore)

	fmt.Fprintln(c.out, "\nApplicant Information")
	fmt.Fprintf(c.out, "  Credit Bureau Score: %s\n", loan.CreditBureauScore)
	fmt.Fprintf(c.out, "  Address:             %s\n", loan.Address)
	fmt.Fprintf(c.out, "  Marital Status:      %s\n", loan.MaritalStatus)
	fmt.Fprintf(c.out, "  Employment Status:   %s\n", loan.EmploymentStatus)
	fmt.Fprintf(c.out, "  Annual Income:       %s\n", loan.Income)

	fmt.Fprintln(c.out, "\nRequired Documents")
	if len(detail.Documents) == 0 {
		fmt.Fprintln(c.out, "  No documents uploaded yet.")
	}
	for _, doc := range detail.Documents {
		fmt.Fprintf(c.out, "  %s [%s] %s, uploaded by %s on %s\n",
			doc.Name, doc.Status.Label(), doc.Type, doc.UploadedBy, doc.UploadedDate.Format("2006-01-02"))
	}

	fmt.Fprintln(c.out, "\nApproval History")
	if len(detail.Approvals) == 0 {
		fmt.Fprintln(c.out, "  No approval decisions yet.")
	}
	for _, appr := range detail.Approvals {
		fmt.Fprintf(c.out, "  %s by %s (%s) on %s: %s\n",
			appr.Decision, appr.Approver, appr.Role, appr.ApprovalDate.Format("2006-01-02"), appr.Comment)
	}

	fmt.Fprintln(c.out, "\nActivity Log")
	if len(detail.Activities) == 0 {
		fmt.Fprintln(c.out, "  No activities recorded for this loan.")
	}
	for _, act := range detail.Activities {
		c.renderActivity(act)
	}

	snap := c.session.Snapshot()
	var actions []string
	if c.decisions.CanEdit(snap.Role, loan.Status) {
		actions = append(actions, "edit")
	}
	if c.decisions.CanDecide(snap.Role) && c.decisions.DecisionPending(loan.Status) {
		actions = append(actions, "approve", "reject")
	}
	if len(actions) > 0 {
		fmt.Fprintf(c.out, "\nAvailable actions: %s\n", strings.Join(actions, ", "))
	}
}

func (c *Console) renderActivityLogs(role navigation.Role) {
	fmt.Fprintln(c.out, "System Activity Logs")
	visible := c.activities.VisibleTo(role)
	if len(visible) == 0 {
		fmt.Fprintln(c.out, "  No activities visible for your role.")
		return
	}
	for _, act := range visible {
		c.renderActivity(act)
	}
}

func (c *Console) renderSettings(role navigation.Role) {
	fmt.Fprintln(c.out, "Settings")
	fmt.Fprintln(c.out, "  User preferences and application settings would be managed here.")
	fmt.Fprintf(c.out, "  Current Role: %s\n", role)
}

func (c *Console) renderAccessDenied() {
	fmt.Fprintln(c.out, "Access Denied")
	fmt.Fprintln(c.out, "  You do not have permission to view this page with your current role.")
	fmt.Fprintln(c.out, "  (go dashboard to return, or logout)")
}

func (c *Console) renderActivity(act entity.Activity) {
	fmt.Fprintf(c.out, "  [%s] %s - %s (actor: %s, loan: %s)\n",
		act.Timestamp.Format(timeLayout), act.ActionType.Label(), act.Description, act.Actor, act.LoanID)
}
