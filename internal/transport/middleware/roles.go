package middleware

import (
	"context"

	"github.com/heartmarshall/hostel-backend/internal/domain"
	"github.com/heartmarshall/hostel-backend/pkg/ctxutil"
)

// RequireRole returns domain.ErrUnauthorized for anonymous callers and
// domain.ErrForbidden when the caller's role is not one of allowed.
// Use in REST handlers, not as HTTP middleware.
func RequireRole(ctx context.Context, allowed ...domain.UserRole) error {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}

	role := domain.UserRole(ctxutil.UserRoleFromCtx(ctx))
	for _, a := range allowed {
		if role == a {
			return nil
		}
	}
	return domain.ErrForbidden
}

// RequireAdmin allows administrators only.
func RequireAdmin(ctx context.Context) error {
	return RequireRole(ctx, domain.UserRoleAdmin)
}

// RequireKitchen allows staff who manage stock and meal plans.
func RequireKitchen(ctx context.Context) error {
	return RequireRole(ctx, domain.UserRoleAdmin, domain.UserRoleKitchen)
}

// RequireStaff allows every authenticated role that may record attendance.
func RequireStaff(ctx context.Context) error {
	return RequireRole(ctx, domain.UserRoleAdmin, domain.UserRoleKitchen, domain.UserRoleWarden)
}
