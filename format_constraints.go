package constraint

import (
	"net/mail"
	"strings"

	"github.com/google/uuid"
)

// IsUUID is valid when the value's canonical rendering is an RFC 4122
// UUID. Length and hyphen positions are checked before parsing to reject
// obvious non-UUIDs cheaply.
func IsUUID() Constraint {
	return newConstraint("IsUUID", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		s, ok := scalarString(value)
		if !ok || len(s) != 36 {
			return ctx.fail("Not a valid UUID")
		}
		if s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
			return ctx.fail("Not a valid UUID")
		}
		if _, err := uuid.Parse(s); err != nil {
			return ctx.fail("Not a valid UUID")
		}
		return ctx.ok()
	})
}

// IsEmail is valid when the value is an RFC 5322 address acceptable for
// typical web use: parseable, non-empty local part, and a dotted domain
// that neither starts nor ends with a dot.
func IsEmail() Constraint {
	return newConstraint("IsEmail", func(ctx *evalContext, value any) *Result {
		if isUndefined(value) {
			return ctx.fail(undefinedMessage)
		}
		s, ok := scalarString(value)
		if !ok || strings.TrimSpace(s) == "" {
			return ctx.fail("Not a valid email address")
		}
		addr, err := mail.ParseAddress(s)
		if err != nil {
			return ctx.fail("Not a valid email address")
		}
		local, domain, found := strings.Cut(addr.Address, "@")
		if !found || local == "" {
			return ctx.fail("Not a valid email address")
		}
		if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
			return ctx.fail("Not a valid email address")
		}
		return ctx.ok()
	})
}
