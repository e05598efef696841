package moderation

import (
	profile "github.com/Azotik83/Eclipse.github.io/internal/profile/model"
)

// The permission checks pin down who may touch whom. They operate on loaded
// profiles so callers decide when to hit the store.

func HasRole(p *profile.Profile, role profile.Role) bool {
	if p == nil {
		return false
	}
	return p.IsSuperAdmin || p.Role.Level() >= role.Level()
}

func IsModerator(p *profile.Profile) bool { return HasRole(p, profile.RoleModo) }

func IsAdmin(p *profile.Profile) bool { return HasRole(p, profile.RoleAdmin) }

// CanBan allows moderators to act on strictly lower-ranked targets.
// Super-admins outrank everyone and can never be acted on.
func CanBan(actor, target *profile.Profile) bool {
	if actor == nil || target == nil {
		return false
	}
	if target.IsSuperAdmin {
		return false
	}
	if actor.IsSuperAdmin {
		return true
	}
	return IsModerator(actor) && actor.Role.Level() > target.Role.Level()
}

// CanModifyRole gates promotions and demotions. Admins manage the ladder
// below them; only a super-admin changes another admin, and super-admins
// themselves are immutable.
func CanModifyRole(actor, target *profile.Profile) bool {
	if actor == nil || target == nil {
		return false
	}
	if target.IsSuperAdmin {
		return false
	}
	if actor.IsSuperAdmin {
		return true
	}
	return IsAdmin(actor) && actor.Role.Level() > target.Role.Level()
}
