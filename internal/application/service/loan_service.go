package service

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/fixture"
)

// SortOrder selects how the loan list is ordered
type SortOrder string

const (
	SortNewest     SortOrder = "newest"
	SortOldest     SortOrder = "oldest"
	SortAmountDesc SortOrder = "amount_desc"
	SortAmountAsc  SortOrder = "amount_asc"
)

var validSortOrders = map[SortOrder]bool{
	SortNewest:     true,
	SortOldest:     true,
	SortAmountDesc: true,
	SortAmountAsc:  true,
}

// IsValid returns true if the sort order is one of the four supported modes
func (s SortOrder) IsValid() bool {
	return validSortOrders[s]
}

// ListQuery captures the loan list controls: free-text search, exact status
// filter and sort mode. Zero values mean unfiltered, newest first.
type ListQuery struct {
	Search string
	Status entity.LoanStatus
	Sort   SortOrder
}

// LoanDetail bundles a loan with its related records for the detail screen
type LoanDetail struct {
	Loan       entity.Loan
	Documents  []entity.Document
	Activities []entity.Activity
	Approvals  []entity.Approval
}

// LoanService answers read-only queries over the generated loan fixture
type LoanService struct {
	data   *fixture.Dataset
	logger *zap.Logger
}

// NewLoanService creates a LoanService over the given dataset
func NewLoanService(data *fixture.Dataset, logger *zap.Logger) *LoanService {
	return &LoanService{data: data, logger: logger}
}

// List returns the loans matching the query, sorted per the requested
// order. The returned slice is a copy; the underlying fixture is never
// reordered.
func (s *LoanService) List(q ListQuery) []entity.Loan {
	term := strings.ToLower(q.Search)

	var out []entity.Loan
	for _, loan := range s.data.Loans {
		if term != "" && !matchesSearch(loan, term) {
			continue
		}
		if q.Status != "" && loan.Status != q.Status {
			continue
		}
		out = append(out, loan)
	}

	sortLoans(out, q.Sort)

	s.logger.Debug("loan list queried",
		zap.String("search", q.Search),
		zap.String("status", string(q.Status)),
		zap.String("sort", string(q.Sort)),
		zap.Int("matched", len(out)))

	return out
}

// Get returns the loan with the given id together with its documents,
// activities and approvals
func (s *LoanService) Get(loanID string) (*LoanDetail, error) {
	loan := s.data.LoanByID(loanID)
	if loan == nil {
		return nil, fmt.Errorf("%w: %s", ErrLoanNotFound, loanID)
	}
	return &LoanDetail{
		Loan:       *loan,
		Documents:  s.data.DocumentsFor(loanID),
		Activities: s.data.ActivitiesFor(loanID),
		Approvals:  s.data.ApprovalsFor(loanID),
	}, nil
}

// matchesSearch reports whether the loan matches the lowercased search term
// on applicant name, loan id or loan type
func matchesSearch(loan entity.Loan, term string) bool {
	return strings.Contains(strings.ToLower(loan.ApplicantName), term) ||
		strings.Contains(strings.ToLower(loan.ID), term) ||
		strings.Contains(strings.ToLower(loan.LoanType), term)
}

func sortLoans(loans []entity.Loan, order SortOrder) {
	switch order {
	case SortOldest:
		sort.SliceStable(loans, func(i, j int) bool {
			return loans[i].SubmittedDate.Before(loans[j].SubmittedDate)
		})
	case SortAmountDesc:
		sort.SliceStable(loans, func(i, j int) bool {
			return loans[i].RawAmount.GreaterThan(loans[j].RawAmount)
		})
	case SortAmountAsc:
		sort.SliceStable(loans, func(i, j int) bool {
			return loans[i].RawAmount.LessThan(loans[j].RawAmount)
		})
	default: // SortNewest
		sort.SliceStable(loans, func(i, j int) bool {
			return loans[i].SubmittedDate.After(loans[j].SubmittedDate)
		})
	}
}
