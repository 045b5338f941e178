package navigation

import "fmt"

// Breadcrumb is one element of the trail from the root screen to the
// current screen. Params are captured so a crumb can be re-navigated.
type Breadcrumb struct {
	Screen Screen
	Label  string
	Params Params
}

// StatusLabeler resolves a status filter value to its display label for
// breadcrumb annotation. Kept as a function so this package stays free of
// entity imports.
type StatusLabeler func(status string) string

// Trail rebuilds the full breadcrumb path for the target screen. The trail
// is derived from a fixed template per screen, never pushed or popped, so
// cyclic navigation does not accumulate crumbs.
func Trail(screen Screen, params Params, labelFor StatusLabeler) []Breadcrumb {
	trail := []Breadcrumb{{Screen: ScreenDashboard, Label: "Dashboard"}}

	switch screen {
	case ScreenLoansList:
		label := "Loans"
		if params.Status != "" {
			status := params.Status
			if labelFor != nil {
				status = labelFor(params.Status)
			}
			label = fmt.Sprintf("Loans (%s)", status)
		}
		trail = append(trail, Breadcrumb{Screen: ScreenLoansList, Label: label, Params: params})
	case ScreenLoanDetail:
		trail = append(trail,
			Breadcrumb{Screen: ScreenLoansList, Label: "Loans"},
			Breadcrumb{Screen: ScreenLoanDetail, Label: fmt.Sprintf("Loan %s", params.LoanID), Params: params},
		)
	case ScreenActivityLogs:
		trail = append(trail, Breadcrumb{Screen: ScreenActivityLogs, Label: "Activity Logs", Params: params})
	case ScreenSettings:
		trail = append(trail, Breadcrumb{Screen: ScreenSettings, Label: "Settings", Params: params})
	}

	return trail
}
