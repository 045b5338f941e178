package service

import (
	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/domain/navigation"
	"github.com/loanflow/loanflow/internal/fixture"
)

// ActivityService answers activity log queries for the activity screen
type ActivityService struct {
	data   *fixture.Dataset
	logger *zap.Logger
}

// NewActivityService creates an ActivityService over the given dataset
func NewActivityService(data *fixture.Dataset, logger *zap.Logger) *ActivityService {
	return &ActivityService{data: data, logger: logger}
}

// staff actors whose activities remain visible to non-admin reviewers
var staffActors = map[string]bool{
	"Credit Analyst": true,
	"Loan Officer":   true,
	"Risk Manager":   true,
}

// VisibleTo returns the activities the given role may see on the activity
// log screen. Admins see everything; other reviewer roles see staff
// activity and anything scoped to a loan.
func (s *ActivityService) VisibleTo(role navigation.Role) []entity.Activity {
	if role == navigation.RoleAdmin {
		out := make([]entity.Activity, len(s.data.Activities))
		copy(out, s.data.Activities)
		return out
	}

	var out []entity.Activity
	for _, act := range s.data.Activities {
		if staffActors[act.Actor] || act.LoanID != "" {
			out = append(out, act)
		}
	}
	return out
}
