package navigation

// Screen represents a view state in the console
type Screen string

const (
	ScreenDashboard    Screen = "DASHBOARD"
	ScreenLoansList    Screen = "LOANS_LIST"
	ScreenLoanDetail   Screen = "LOAN_DETAIL"
	ScreenActivityLogs Screen = "ACTIVITY_LOGS"
	ScreenSettings     Screen = "SETTINGS"

	// ScreenAccessDenied is never navigated to directly; it is substituted
	// at render time when the active role may not enter the stored screen.
	ScreenAccessDenied Screen = "ACCESS_DENIED"
)

var validScreens = map[Screen]bool{
	ScreenDashboard:    true,
	ScreenLoansList:    true,
	ScreenLoanDetail:   true,
	ScreenActivityLogs: true,
	ScreenSettings:     true,
}

// String returns the string representation of the screen
func (s Screen) String() string {
	return string(s)
}

// IsValid returns true if the screen is a navigable target
func (s Screen) IsValid() bool {
	return validScreens[s]
}

// Params carries route parameters captured at navigation time
type Params struct {
	// LoanID selects a loan on the detail screen
	LoanID string
	// Status pre-filters the loans list
	Status string
}

// IsZero returns true when no parameter is set
func (p Params) IsZero() bool {
	return p.LoanID == "" && p.Status == ""
}
