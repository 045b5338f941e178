package navigation

// Role represents the simulated logged-in role. RoleGuest is the
// unauthenticated sentinel used after logout.
type Role string

const (
	RoleAdmin         Role = "ADMIN"
	RoleLoanOfficer   Role = "LOAN_OFFICER"
	RoleCreditAnalyst Role = "CREDIT_ANALYST"
	RoleRiskManager   Role = "RISK_MANAGER"
	RoleCustomer      Role = "CUSTOMER"
	RoleGuest         Role = ""
)

// Roles lists the selectable roles, guest last.
var Roles = []Role{
	RoleAdmin,
	RoleLoanOfficer,
	RoleCreditAnalyst,
	RoleRiskManager,
	RoleCustomer,
	RoleGuest,
}

var validRoles = map[Role]bool{
	RoleAdmin:         true,
	RoleLoanOfficer:   true,
	RoleCreditAnalyst: true,
	RoleRiskManager:   true,
	RoleCustomer:      true,
	RoleGuest:         true,
}

// String returns the string representation of the role
func (r Role) String() string {
	if r == RoleGuest {
		return "GUEST"
	}
	return string(r)
}

// IsValid returns true if the role is a known role (guest included)
func (r Role) IsValid() bool {
	return validRoles[r]
}

// allowedScreens is the static permission table. A role may only render
// screens in its set; everything else becomes ACCESS_DENIED at render time.
var allowedScreens = map[Role]map[Screen]bool{
	RoleAdmin: {
		ScreenDashboard:    true,
		ScreenLoansList:    true,
		ScreenLoanDetail:   true,
		ScreenActivityLogs: true,
		ScreenSettings:     true,
	},
	RoleLoanOfficer: {
		ScreenDashboard:  true,
		ScreenLoansList:  true,
		ScreenLoanDetail: true,
	},
	RoleCreditAnalyst: {
		ScreenDashboard:  true,
		ScreenLoansList:  true,
		ScreenLoanDetail: true,
	},
	RoleRiskManager: {
		ScreenDashboard:  true,
		ScreenLoansList:  true,
		ScreenLoanDetail: true,
	},
	RoleCustomer: {
		ScreenDashboard: true,
		ScreenLoansList: true,
	},
	RoleGuest: {
		ScreenDashboard: true,
	},
}

// CanAccess returns true if the role may render the given screen
func CanAccess(role Role, screen Screen) bool {
	return allowedScreens[role][screen]
}

// AllowedScreens returns the screens the role may render, in nav order.
func AllowedScreens(role Role) []Screen {
	var out []Screen
	for _, s := range []Screen{ScreenDashboard, ScreenLoansList, ScreenLoanDetail, ScreenActivityLogs, ScreenSettings} {
		if allowedScreens[role][s] {
			out = append(out, s)
		}
	}
	return out
}
