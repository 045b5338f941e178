// Package session owns the mutable view and role state of a console
// session. All mutation goes through Navigate, ChangeRole and Logout;
// consumers only ever see immutable snapshots.
package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/loanflow/loanflow/internal/domain/entity"
	"github.com/loanflow/loanflow/internal/domain/navigation"
)

// View is the stored navigation state: current screen, its parameters and
// the breadcrumb trail leading to it
type View struct {
	Screen navigation.Screen
	Params navigation.Params
	Path   []navigation.Breadcrumb
}

// Snapshot is an immutable copy of the session state handed to views.
// EffectiveScreen already accounts for the render-time access check.
type Snapshot struct {
	Role            navigation.Role
	View            View
	EffectiveScreen navigation.Screen
}

// Session is the single owner of view and role state
type Session struct {
	role   navigation.Role
	view   View
	logger *zap.Logger
}

// New creates a session on the dashboard with the given starting role
func New(role navigation.Role, logger *zap.Logger) *Session {
	return &Session{
		role:   role,
		view:   initialView(),
		logger: logger,
	}
}

func initialView() View {
	return View{
		Screen: navigation.ScreenDashboard,
		Path:   navigation.Trail(navigation.ScreenDashboard, navigation.Params{}, statusLabel),
	}
}

func statusLabel(status string) string {
	return entity.LoanStatus(status).Label()
}

// Navigate moves the stored view to the target screen and rebuilds the
// breadcrumb trail from its template. The access check is not applied
// here; a denied screen is substituted at render time, so the stored state
// still advances.
func (s *Session) Navigate(screen navigation.Screen, params navigation.Params) error {
	if !screen.IsValid() {
		return fmt.Errorf("%w: %s", navigation.ErrUnknownScreen, screen)
	}

	s.view = View{
		Screen: screen,
		Params: params,
		Path:   navigation.Trail(screen, params, statusLabel),
	}

	s.logger.Debug("navigated",
		zap.String("screen", screen.String()),
		zap.String("loan_id", params.LoanID),
		zap.String("status", params.Status))

	return nil
}

// ChangeRole switches the simulated role. The current screen is not
// re-checked against the new role; the session unconditionally returns to
// the dashboard.
func (s *Session) ChangeRole(role navigation.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: %s", navigation.ErrUnknownRole, role)
	}
	s.role = role
	s.logger.Info("role changed", zap.String("role", role.String()))
	return s.Navigate(navigation.ScreenDashboard, navigation.Params{})
}

// Logout resets the role to guest and the view to the initial dashboard
// state with a single-element trail
func (s *Session) Logout() {
	s.role = navigation.RoleGuest
	s.view = initialView()
	s.logger.Info("logged out")
}

// Role returns the active role
func (s *Session) Role() navigation.Role {
	return s.role
}

// Snapshot returns an immutable copy of the current state. The effective
// screen is ACCESS_DENIED whenever the active role may not render the
// stored screen.
func (s *Session) Snapshot() Snapshot {
	path := make([]navigation.Breadcrumb, len(s.view.Path))
	copy(path, s.view.Path)

	effective := s.view.Screen
	if !navigation.CanAccess(s.role, s.view.Screen) {
		effective = navigation.ScreenAccessDenied
	}

	return Snapshot{
		Role: s.role,
		View: View{
			Screen: s.view.Screen,
			Params: s.view.Params,
			Path:   path,
		},
		EffectiveScreen: effective,
	}
}
