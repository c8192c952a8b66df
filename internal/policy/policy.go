// Package policy computes route visibility and playback locks from a
// session snapshot. Pure functions, no side effects.
package policy

import "github.com/otaviobrantes/lumen/internal/entity"

type RouteAccess int

const (
	// Public routes are always visible.
	Public RouteAccess = iota
	// SessionGated routes require any authenticated session.
	SessionGated
	// StaffGated routes require an ADMIN or EDITOR session.
	StaffGated
)

// CanAccessRoute reports whether the session may reach a route with the
// given access level. A nil session is an anonymous visitor.
func CanAccessRoute(session *entity.Session, access RouteAccess) bool {
	switch access {
	case Public:
		return true
	case SessionGated:
		return session != nil
	case StaffGated:
		return session != nil && IsStaff(session.Role)
	default:
		return false
	}
}

// IsStaff reports whether a role grants access to the staff console.
func IsStaff(role entity.UserRole) bool {
	return role == entity.RoleAdmin || role == entity.RoleEditor
}

// IsPlaybackLocked reports whether premium content must show the paywall
// instead of playing. ADMIN always bypasses the lock; everyone else needs
// an ACTIVE subscription. Free content is never locked, even for an
// anonymous session.
func IsPlaybackLocked(video entity.Video, session *entity.Session) bool {
	if !video.IsPremium {
		return false
	}
	if session == nil {
		return true
	}
	return session.Role != entity.RoleAdmin && session.Subscription != entity.SubscriptionActive
}
