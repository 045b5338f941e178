// Package console renders the loan dashboard screens as text and drives
// them through a line-oriented command loop. All state lives in the
// session and the query services; this package is presentation only.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/application/service"
	"github.com/loanflow/loanflow/internal/application/session"
	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/domain/navigation"
	"github.com/loanflow/loanflow/internal/export"
)

// Console wires the session, the query services and the exporter to a
// terminal
type Console struct {
	session    *session.Session
	loans      *service.LoanService
	dashboard  *service.DashboardService
	activities *service.ActivityService
	decisions  *service.DecisionService
	exporter   *export.LoanExporter
	logger     *zap.Logger

	in  io.Reader
	out io.Writer

	// loan list controls, reseeded from params on navigation
	query service.ListQuery
}

// New creates a console reading commands from in and writing screens to out
func New(
	sess *session.Session,
	loans *service.LoanService,
	dashboard *service.DashboardService,
	activities *service.ActivityService,
	decisions *service.DecisionService,
	exporter *export.LoanExporter,
	logger *zap.Logger,
	in io.Reader,
	out io.Writer,
) *Console {
	return &Console{
		session:    sess,
		loans:      loans,
		dashboard:  dashboard,
		activities: activities,
		decisions:  decisions,
		exporter:   exporter,
		logger:     logger,
		in:         in,
		out:        out,
	}
}

// Run renders the current screen and processes commands until quit or EOF
func (c *Console) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(c.in)
	c.render()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		quit, err := c.Execute(scanner.Text())
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
		c.render()
	}
}

// Execute runs one command line. It returns true when the console should
// exit.
func (c *Console) Execute(line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		c.printHelp()
		return false, nil
	case "go":
		return false, c.cmdGo(args)
	case "role":
		return false, c.cmdRole(args)
	case "logout":
		c.session.Logout()
		c.notify("Logging out...")
		return false, nil
	case "search":
		c.query.Search = strings.Join(args, " ")
		return false, nil
	case "status":
		return false, c.cmdStatus(args)
	case "sort":
		return false, c.cmdSort(args)
	case "clear":
		c.query = service.ListQuery{}
		return false, nil
	case "open":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: open <loan-id>")
		}
		return false, c.navigate(navigation.ScreenLoanDetail, navigation.Params{LoanID: args[0]})
	case "approve", "reject", "edit":
		return false, c.cmdAction(cmd)
	case "export":
		return false, c.cmdExport()
	default:
		return false, fmt.Errorf("unknown command %q (try help)", cmd)
	}
}

func (c *Console) cmdGo(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: go <dashboard|loans|loan <id>|activity|settings>")
	}
	switch strings.ToLower(args[0]) {
	case "dashboard":
		return c.navigate(navigation.ScreenDashboard, navigation.Params{})
	case "loans":
		params := navigation.Params{}
		if len(args) > 1 {
			params.Status = strings.ToUpper(args[1])
		}
		return c.navigate(navigation.ScreenLoansList, params)
	case "loan":
		if len(args) != 2 {
			return fmt.Errorf("usage: go loan <loan-id>")
		}
		return c.navigate(navigation.ScreenLoanDetail, navigation.Params{LoanID: args[1]})
	case "activity":
		return c.navigate(navigation.ScreenActivityLogs, navigation.Params{})
	case "settings":
		return c.navigate(navigation.ScreenSettings, navigation.Params{})
	default:
		return fmt.Errorf("unknown screen %q", args[0])
	}
}

func (c *Console) cmdRole(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: role <%s|guest>", strings.Join(roleNames(), "|"))
	}
	name := strings.ToUpper(args[0])
	role := navigation.Role(name)
	if name == "GUEST" {
		role = navigation.RoleGuest
	}
	return c.session.ChangeRole(role)
}

func (c *Console) cmdStatus(args []string) error {
	if len(args) == 0 || strings.EqualFold(args[0], "all") {
		c.query.Status = ""
		return nil
	}
	status := entity.LoanStatus(strings.ToUpper(args[0]))
	if !status.IsValid() {
		return fmt.Errorf("unknown status %q", args[0])
	}
	c.query.Status = status
	return nil
}

func (c *Console) cmdSort(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: sort <newest|oldest|amount_desc|amount_asc>")
	}
	order := service.SortOrder(strings.ToLower(args[0]))
	if !order.IsValid() {
		return fmt.Errorf("unknown sort order %q", args[0])
	}
	c.query.Sort = order
	return nil
}

func (c *Console) cmdAction(action string) error {
	snap := c.session.Snapshot()
	if snap.EffectiveScreen != navigation.ScreenLoanDetail {
		return fmt.Errorf("%s only works on a loan detail screen", action)
	}

	detail, err := c.loans.Get(snap.View.Params.LoanID)
	if err != nil {
		return err
	}

	var outcome *service.Outcome
	switch action {
	case "approve":
		outcome, err = c.decisions.Approve(snap.Role, detail.Loan)
	case "reject":
		outcome, err = c.decisions.Reject(snap.Role, detail.Loan)
	case "edit":
		outcome, err = c.decisions.Edit(snap.Role, detail.Loan)
	}
	if err != nil {
		return err
	}

	c.notify(outcome.Message)
	if outcome.NextScreen != "" {
		return c.navigate(outcome.NextScreen, outcome.NextParams)
	}
	return nil
}

func (c *Console) cmdExport() error {
	snap := c.session.Snapshot()
	if snap.EffectiveScreen != navigation.ScreenLoansList {
		return errors.New("export only works on the loans list screen")
	}
	path, err := c.exporter.Export(c.loans.List(c.query))
	if err != nil {
		return err
	}
	c.notify(fmt.Sprintf("Exported loans to %s", path))
	return nil
}

// navigate moves the session and reseeds the list controls from the
// captured params
func (c *Console) navigate(screen navigation.Screen, params navigation.Params) error {
	if err := c.session.Navigate(screen, params); err != nil {
		return err
	}
	if screen == navigation.ScreenLoansList {
		c.query = service.ListQuery{Status: entity.LoanStatus(params.Status)}
	}
	return nil
}

func (c *Console) notify(msg string) {
	fmt.Fprintf(c.out, "\n*** %s ***\n", msg)
}

func roleNames() []string {
	names := make([]string, 0, len(navigation.Roles))
	for _, r := range navigation.Roles {
		names = append(names, r.String())
	}
	return names
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, `Commands:
  go dashboard | go loans [STATUS] | go loan <id> | go activity | go settings
  open <loan-id>            open a loan from the list
  search <term>             filter the list by applicant, id or type
  status <STATUS|all>       filter the list by status
  sort <newest|oldest|amount_desc|amount_asc>
  clear                     reset list filters
  approve | reject | edit   act on the open loan (simulated)
  export                    write the current list to an .xlsx file
  role <NAME> | logout      switch the simulated role
  help | quit`)
}
