package fixture

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/loanflow/loanflow/internal/domain/entity"
)

// Config controls the size of the generated dataset
type Config struct {
	CustomerCount int
	LoanCount     int
}

// DefaultConfig returns the fixture sizes used by the console by default.
func DefaultConfig() Config {
	return Config{CustomerCount: 7, LoanCount: 15}
}

// Generator produces a cross-referentially consistent in-memory dataset.
// All randomness flows through a single seeded source, so the same seed
// always yields the same fixture. Loans are generated first; documents,
// activities and approvals are derived strictly from the materialized loan
// records, which guarantees referential integrity by construction.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator seeded with the given value
func NewGenerator(seed int64) *Generator {
	return NewGeneratorAt(seed, time.Now().UTC())
}

// NewGeneratorAt creates a generator with a fixed "now" reference point.
// Generated dates never exceed now.
func NewGeneratorAt(seed int64, now time.Time) *Generator {
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: now.UTC(),
	}
}

// Generate builds the full dataset in a single pass
func (g *Generator) Generate(cfg Config) *Dataset {
	customers := g.GenerateCustomers(cfg.CustomerCount)
	loans := g.GenerateLoans(cfg.LoanCount, customers)
	return &Dataset{
		Customers:  customers,
		Loans:      loans,
		Documents:  g.GenerateDocuments(loans),
		Activities: g.GenerateActivities(loans),
		Approvals:  g.GenerateApprovals(loans),
	}
}

var fixtureEpoch = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)

var officerPool = []string{"Officer A", "Officer B", "Officer C"}

// GenerateCustomers produces count customers with sequential ids CUST1..n
func (g *Generator) GenerateCustomers(count int) []entity.Customer {
	customers := make([]entity.Customer, 0, count)
	for i := 0; i < count; i++ {
		customers = append(customers, entity.Customer{
			ID:          fmt.Sprintf("CUST%d", i+1),
			Name:        customerName(i),
			Email:       fmt.Sprintf("customer%d@example.com", i+1),
			Phone:       fmt.Sprintf("+1-555-%d", 1000+i),
			Address:     fmt.Sprintf("%d Main St, Anytown, USA", 100+i),
			CreditScore: fmt.Sprintf("%d", 400+g.rng.Intn(401)),
			TotalLoans:  g.rng.Intn(3),
		})
	}
	return customers
}

// GenerateLoans produces count loans with sequential ids LOAN1000.. and
// applicant names drawn from the customer pool. Demographic snapshot fields
// are randomized independently of the customer record.
func (g *Generator) GenerateLoans(count int, customers []entity.Customer) []entity.Loan {
	loans := make([]entity.Loan, 0, count)
	for i := 0; i < count; i++ {
		status := entity.LoanStatuses[g.rng.Intn(len(entity.LoanStatuses))]
		submitted := g.dateBetween(fixtureEpoch, g.now)
		due := submitted.AddDate(0, 3+g.rng.Intn(9), 0)
		officer := officerPool[g.rng.Intn(len(officerPool))]

		var approved *time.Time
		if status.ImpliesApproval() {
			t := g.dateBetween(submitted, g.now)
			approved = &t
		}

		applicant := "Unknown Applicant"
		if len(customers) > 0 {
			applicant = customers[g.rng.Intn(len(customers))].Name
		}

		amount := decimal.NewFromInt(int64(25000 + g.rng.Intn(225000)))
		income := decimal.NewFromInt(int64(50000 + g.rng.Intn(150000)))

		loans = append(loans, entity.Loan{
			ID:                fmt.Sprintf("LOAN%d", 1000+i),
			ApplicationID:     fmt.Sprintf("APP%d", 10000+i),
			ApplicantName:     applicant,
			Amount:            formatUSD(amount),
			RawAmount:         amount,
			Status:            status,
			LoanType:          entity.LoanTypes[g.rng.Intn(len(entity.LoanTypes))],
			SubmittedDate:     submitted,
			DueDate:           due,
			ApprovedDate:      approved,
			RiskScore:         math.Round(g.rng.Float64()*100) / 10,
			AssignedTo:        officer,
			LastActivity:      fmt.Sprintf("Review started by %s", officer),
			CreditBureauScore: fmt.Sprintf("%d", 300+g.rng.Intn(600)),
			Address:           fmt.Sprintf("%d Oak Ave, Metropol, USA", 100+i),
			MaritalStatus:     pick(g.rng, "Single", "Married", "Divorced"),
			EmploymentStatus:  pick(g.rng, "Employed", "Self-Employed", "Unemployed"),
			Income:            formatUSD(income),
		})
	}
	return loans
}

// GenerateDocuments produces 2-4 documents per loan, each carrying the
// loan's id. Type, status and upload date are independently randomized.
func (g *Generator) GenerateDocuments(loans []entity.Loan) []entity.Document {
	var docs []entity.Document
	for _, loan := range loans {
		n := 2 + g.rng.Intn(3)
		for i := 0; i < n; i++ {
			docs = append(docs, entity.Document{
				ID:           g.id("DOC"),
				LoanID:       loan.ID,
				Name:         fmt.Sprintf("Document %d for %s", i+1, loan.ApplicantName),
				Type:         entity.DocumentTypes[g.rng.Intn(len(entity.DocumentTypes))],
				Status:       entity.DocumentStatuses[g.rng.Intn(len(entity.DocumentStatuses))],
				UploadedBy:   loan.ApplicantName,
				UploadedDate: g.dateBetween(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC), g.now),
			})
		}
	}
	return docs
}

// GenerateActivities builds a status-conditional event sequence per loan:
// submission always comes first causally; document upload and review start
// appear once the status shows processing began; the terminal activity
// matches the loan's decision bucket; a comment appears with probability
// one half. The stored order per loan is newest first.
func (g *Generator) GenerateActivities(loans []entity.Loan) []entity.Activity {
	var all []entity.Activity
	for _, loan := range loans {
		acts := g.loanActivities(loan)
		sort.SliceStable(acts, func(i, j int) bool {
			return acts[i].Timestamp.After(acts[j].Timestamp)
		})
		all = append(all, acts...)
	}
	return all
}

func (g *Generator) loanActivities(loan entity.Loan) []entity.Activity {
	submission := loan.SubmittedDate
	acts := []entity.Activity{{
		ID:          g.id("ACT"),
		LoanID:      loan.ID,
		Description: fmt.Sprintf("%s for %s", entity.ActivitySubmission.Label(), loan.ApplicantName),
		Timestamp:   submission,
		Actor:       loan.ApplicantName,
		ActionType:  entity.ActivitySubmission,
	}}

	status := loan.Status
	started := status != entity.LoanStatusPending && status != entity.LoanStatusDraft

	docUpload := submission
	if started {
		docUpload = g.within(submission, 24*time.Hour)
		acts = append(acts, entity.Activity{
			ID:          g.id("ACT"),
			LoanID:      loan.ID,
			Description: fmt.Sprintf("%s by %s", entity.ActivityDocumentUpload.Label(), loan.ApplicantName),
			Timestamp:   docUpload,
			Actor:       loan.ApplicantName,
			ActionType:  entity.ActivityDocumentUpload,
		})
	}

	reviewStart := docUpload
	if started && status != entity.LoanStatusSubmitted {
		reviewStart = g.within(docUpload, 24*time.Hour)
		acts = append(acts, entity.Activity{
			ID:          g.id("ACT"),
			LoanID:      loan.ID,
			Description: fmt.Sprintf("%s by %s", entity.ActivityReviewStart.Label(), loan.AssignedTo),
			Timestamp:   reviewStart,
			Actor:       loan.AssignedTo,
			ActionType:  entity.ActivityReviewStart,
		})
	}

	switch {
	case status.ImpliesApproval():
		at := reviewStart
		if loan.ApprovedDate != nil && loan.ApprovedDate.After(at) {
			at = *loan.ApprovedDate
		}
		acts = append(acts, entity.Activity{
			ID:          g.id("ACT"),
			LoanID:      loan.ID,
			Description: fmt.Sprintf("%s by Credit Analyst", entity.ActivityApproved.Label()),
			Timestamp:   at,
			Actor:       "Credit Analyst",
			ActionType:  entity.ActivityApproved,
		})
	case status.IsRejectLike():
		acts = append(acts, entity.Activity{
			ID:          g.id("ACT"),
			LoanID:      loan.ID,
			Description: fmt.Sprintf("%s by Risk Manager", entity.ActivityRejected.Label()),
			Timestamp:   g.within(reviewStart, 3*24*time.Hour),
			Actor:       "Risk Manager",
			ActionType:  entity.ActivityRejected,
		})
	}

	if g.rng.Float64() > 0.5 {
		acts = append(acts, entity.Activity{
			ID:          g.id("ACT"),
			LoanID:      loan.ID,
			Description: "Discussed with applicant regarding missing document.",
			Timestamp:   g.dateBetween(submission, g.now),
			Actor:       loan.AssignedTo,
			ActionType:  entity.ActivityComment,
		})
	}

	return acts
}

// GenerateApprovals produces exactly one approval per loan whose status
// carries a recorded decision
func (g *Generator) GenerateApprovals(loans []entity.Loan) []entity.Approval {
	var approvals []entity.Approval
	for _, loan := range loans {
		if !loan.Status.IsDecided() {
			continue
		}

		decision := entity.DecisionRejected
		comment := "Applicant credit score too low"
		if loan.Status.IsApproveLike() {
			decision = entity.DecisionApproved
			comment = "Meets all criteria"
		}

		at := g.dateBetween(loan.SubmittedDate, g.now)
		if loan.ApprovedDate != nil {
			at = *loan.ApprovedDate
		}

		approvals = append(approvals, entity.Approval{
			ID:           g.id("APPR"),
			LoanID:       loan.ID,
			Approver:     "Credit Analyst A",
			Decision:     decision,
			Comment:      comment,
			ApprovalDate: at,
			Role:         pick(g.rng, "Credit Analyst", "Risk Manager"),
		})
	}
	return approvals
}

// dateBetween returns a date uniformly distributed in [start, end]
func (g *Generator) dateBetween(start, end time.Time) time.Time {
	d := end.Sub(start)
	if d <= 0 {
		return start
	}
	return start.Add(time.Duration(g.rng.Int63n(int64(d))))
}

// within returns a date in (after, after+window], never exceeding now
func (g *Generator) within(after time.Time, window time.Duration) time.Time {
	t := after.Add(time.Duration(g.rng.Int63n(int64(window))) + time.Nanosecond)
	if t.After(g.now) && g.now.After(after) {
		return g.now
	}
	return t
}

// id returns a prefixed identifier drawn from the seeded random source
func (g *Generator) id(prefix string) string {
	u, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		// rand.Rand.Read never fails
		panic(err)
	}
	hex := strings.ToUpper(strings.ReplaceAll(u.String(), "-", ""))
	return prefix + hex[:12]
}

func customerName(i int) string {
	letter := rune('A' + i%26)
	if i < 26 {
		return fmt.Sprintf("Customer %c", letter)
	}
	return fmt.Sprintf("Customer %c%d", letter, i/26+1)
}

func pick(rng *rand.Rand, options ...string) string {
	return options[rng.Intn(len(options))]
}

// formatUSD renders a dollar amount with thousands separators, e.g.
// "$123,456.00"
func formatUSD(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}
