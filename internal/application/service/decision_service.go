package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/domain/navigation"
)

// Outcome is the result of a simulated loan action: a notification message
// plus an optional follow-up navigation target. Actions never mutate the
// loan fixture.
type Outcome struct {
	Message    string
	NextScreen navigation.Screen
	NextParams navigation.Params
}

// DecisionService simulates approve, reject and edit actions on the loan
// detail screen. Gating mirrors the review roles: admins, credit analysts
// and risk managers decide; admins and loan officers edit drafts.
type DecisionService struct {
	logger *zap.Logger
}

// NewDecisionService creates a DecisionService
func NewDecisionService(logger *zap.Logger) *DecisionService {
	return &DecisionService{logger: logger}
}

// CanDecide returns true if the role may approve or reject loans
func (s *DecisionService) CanDecide(role navigation.Role) bool {
	switch role {
	case navigation.RoleAdmin, navigation.RoleCreditAnalyst, navigation.RoleRiskManager:
		return true
	}
	return false
}

// CanEdit returns true if the role may edit a loan in the given status
func (s *DecisionService) CanEdit(role navigation.Role, status entity.LoanStatus) bool {
	if role != navigation.RoleAdmin && role != navigation.RoleLoanOfficer {
		return false
	}
	return status == entity.LoanStatusDraft || status == entity.LoanStatusPending
}

// DecisionPending returns true if the loan status still allows a decision
func (s *DecisionService) DecisionPending(status entity.LoanStatus) bool {
	switch status {
	case entity.LoanStatusPending, entity.LoanStatusSubmitted, entity.LoanStatusInReview:
		return true
	}
	return false
}

// Approve simulates approving the loan and points the session back at the
// approved list
func (s *DecisionService) Approve(role navigation.Role, loan entity.Loan) (*Outcome, error) {
	if err := s.checkDecision(role, loan); err != nil {
		return nil, err
	}
	s.logger.Info("loan approval simulated",
		zap.String("loan_id", loan.ID),
		zap.String("role", role.String()))
	return &Outcome{
		Message:    fmt.Sprintf("Loan %s for %s has been approved.", loan.ID, loan.ApplicantName),
		NextScreen: navigation.ScreenLoansList,
		NextParams: navigation.Params{Status: string(entity.LoanStatusApproved)},
	}, nil
}

// Reject simulates rejecting the loan and points the session back at the
// rejected list
func (s *DecisionService) Reject(role navigation.Role, loan entity.Loan) (*Outcome, error) {
	if err := s.checkDecision(role, loan); err != nil {
		return nil, err
	}
	s.logger.Info("loan rejection simulated",
		zap.String("loan_id", loan.ID),
		zap.String("role", role.String()))
	return &Outcome{
		Message:    fmt.Sprintf("Loan %s for %s has been rejected.", loan.ID, loan.ApplicantName),
		NextScreen: navigation.ScreenLoansList,
		NextParams: navigation.Params{Status: string(entity.LoanStatusRejected)},
	}, nil
}

// Edit simulates opening the loan for editing. No form exists, so the
// outcome carries only the notification.
func (s *DecisionService) Edit(role navigation.Role, loan entity.Loan) (*Outcome, error) {
	if !s.CanEdit(role, loan.Status) {
		if role == navigation.RoleAdmin || role == navigation.RoleLoanOfficer {
			return nil, fmt.Errorf("%w: loan %s is %s", ErrNotActionable, loan.ID, loan.Status)
		}
		return nil, fmt.Errorf("%w: %s", ErrNotPermitted, role)
	}
	return &Outcome{
		Message: fmt.Sprintf("Editing Loan %s. (Form not implemented)", loan.ID),
	}, nil
}

func (s *DecisionService) checkDecision(role navigation.Role, loan entity.Loan) error {
	if !s.CanDecide(role) {
		return fmt.Errorf("%w: %s", ErrNotPermitted, role)
	}
	if !s.DecisionPending(loan.Status) {
		return fmt.Errorf("%w: loan %s is %s", ErrNotActionable, loan.ID, loan.Status)
	}
	return nil
}
