package navigation

import "testing"

func TestScreen_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		screen   Screen
		expected bool
	}{
		{"dashboard", ScreenDashboard, true},
		{"loans list", ScreenLoansList, true},
		{"loan detail", ScreenLoanDetail, true},
		{"activity logs", ScreenActivityLogs, true},
		{"settings", ScreenSettings, true},
		{"access denied is not navigable", ScreenAccessDenied, false},
		{"unknown", Screen("NOPE"), false},
		{"empty", Screen(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.screen.IsValid(); got != tt.expected {
				t.Errorf("Screen.IsValid() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCanAccess(t *testing.T) {
	all := []Screen{ScreenDashboard, ScreenLoansList, ScreenLoanDetail, ScreenActivityLogs, ScreenSettings}

	for _, s := range all {
		if !CanAccess(RoleAdmin, s) {
			t.Errorf("admin must access %s", s)
		}
	}

	tests := []struct {
		name    string
		role    Role
		screen  Screen
		allowed bool
	}{
		{"officer sees loans", RoleLoanOfficer, ScreenLoansList, true},
		{"officer sees detail", RoleLoanOfficer, ScreenLoanDetail, true},
		{"officer blocked from settings", RoleLoanOfficer, ScreenSettings, false},
		{"officer blocked from activity logs", RoleLoanOfficer, ScreenActivityLogs, false},
		{"analyst sees detail", RoleCreditAnalyst, ScreenLoanDetail, true},
		{"analyst blocked from settings", RoleCreditAnalyst, ScreenSettings, false},
		{"risk manager blocked from activity logs", RoleRiskManager, ScreenActivityLogs, false},
		{"customer sees dashboard", RoleCustomer, ScreenDashboard, true},
		{"customer sees loans list", RoleCustomer, ScreenLoansList, true},
		{"customer blocked from detail", RoleCustomer, ScreenLoanDetail, false},
		{"customer blocked from activity logs", RoleCustomer, ScreenActivityLogs, false},
		{"customer blocked from settings", RoleCustomer, ScreenSettings, false},
		{"guest sees dashboard only", RoleGuest, ScreenDashboard, true},
		{"guest blocked from loans", RoleGuest, ScreenLoansList, false},
		{"unknown role blocked everywhere", Role("NOPE"), ScreenDashboard, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanAccess(tt.role, tt.screen); got != tt.allowed {
				t.Errorf("CanAccess(%s, %s) = %v, want %v", tt.role, tt.screen, got, tt.allowed)
			}
		})
	}
}

func TestTrail_Templates(t *testing.T) {
	labelFor := func(status string) string {
		if status == "APPROVED" {
			return "Approved"
		}
		return status
	}

	tests := []struct {
		name   string
		screen Screen
		params Params
		labels []string
	}{
		{"dashboard", ScreenDashboard, Params{}, []string{"Dashboard"}},
		{"loans", ScreenLoansList, Params{}, []string{"Dashboard", "Loans"}},
		{"loans with status", ScreenLoansList, Params{Status: "APPROVED"}, []string{"Dashboard", "Loans (Approved)"}},
		{"loan detail", ScreenLoanDetail, Params{LoanID: "LOAN1003"}, []string{"Dashboard", "Loans", "Loan LOAN1003"}},
		{"activity logs", ScreenActivityLogs, Params{}, []string{"Dashboard", "Activity Logs"}},
		{"settings", ScreenSettings, Params{}, []string{"Dashboard", "Settings"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trail := Trail(tt.screen, tt.params, labelFor)
			if len(trail) != len(tt.labels) {
				t.Fatalf("Trail() has %d crumbs, want %d", len(trail), len(tt.labels))
			}
			for i, want := range tt.labels {
				if trail[i].Label != want {
					t.Errorf("crumb %d label = %q, want %q", i, trail[i].Label, want)
				}
			}
			if trail[0].Screen != ScreenDashboard {
				t.Errorf("root crumb must be the dashboard, got %s", trail[0].Screen)
			}
		})
	}
}

func TestTrail_FlatRebuild(t *testing.T) {
	// Navigating A -> B -> A yields a fresh one-deep trail, not history.
	_ = Trail(ScreenLoansList, Params{}, nil)
	_ = Trail(ScreenSettings, Params{}, nil)
	trail := Trail(ScreenDashboard, Params{}, nil)

	if len(trail) != 1 {
		t.Fatalf("returning to the dashboard must reset the trail, got %d crumbs", len(trail))
	}
}

func TestTrail_DetailCrumbCarriesParams(t *testing.T) {
	params := Params{LoanID: "LOAN1001"}
	trail := Trail(ScreenLoanDetail, params, nil)

	last := trail[len(trail)-1]
	if last.Params != params {
		t.Errorf("leaf crumb params = %+v, want %+v", last.Params, params)
	}
	// The intermediate Loans crumb re-navigates without a filter.
	if !trail[1].Params.IsZero() {
		t.Errorf("intermediate crumb must carry empty params, got %+v", trail[1].Params)
	}
}

func TestRole_String(t *testing.T) {
	if got := RoleGuest.String(); got != "GUEST" {
		t.Errorf("RoleGuest.String() = %q, want GUEST", got)
	}
	if got := RoleAdmin.String(); got != "ADMIN" {
		t.Errorf("RoleAdmin.String() = %q, want ADMIN", got)
	}
}
