package serverutils

import (
	"github.com/DevDad-Main/ServIQ/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// Cookie names shared between middleware and controllers.
const (
	SessionCookieName  = "user_session"
	StateCookieName    = "sk_state"
	MetadataCookieName = "metadata"
)

// Locals keys populated by SessionMiddleware.
const (
	LocalsUserEmail      = "user_email"
	LocalsOrganizationId = "organization_id"
)

// SessionMiddleware is a pure gate: it verifies the session cookie and
// attaches identity to the request context. It never refreshes or rewrites
// the cookie, and absent and invalid cookies produce the same response.
func SessionMiddleware(codec *session.Codec) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		cookie := ctx.Cookies(SessionCookieName)
		if cookie == "" {
			return ErrUnauthenticated
		}

		claims, ok := codec.Verify(cookie)
		if !ok {
			return ErrUnauthenticated
		}

		ctx.Locals(LocalsUserEmail, claims.Email)
		ctx.Locals(LocalsOrganizationId, claims.OrganizationId)
		return ctx.Next()
	}
}

// SessionEmail reads the identity attached by SessionMiddleware.
func SessionEmail(ctx *fiber.Ctx) string {
	email, _ := ctx.Locals(LocalsUserEmail).(string)
	return email
}

func SessionOrganizationId(ctx *fiber.Ctx) string {
	orgId, _ := ctx.Locals(LocalsOrganizationId).(string)
	return orgId
}
