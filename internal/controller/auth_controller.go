package controller

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/pkg/session"
	"github.com/DevDad-Main/ServIQ/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Initiate(ctx *fiber.Ctx) error
	Callback(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service      service.IAuthService
	codec        *session.Codec
	clientURL    string
	stateTTL     time.Duration
	secureCookie bool
}

func NewAuthController(
	service service.IAuthService,
	codec *session.Codec,
	clientURL string,
	stateTTL time.Duration,
	secureCookie bool,
) IAuthController {
	return &authController{
		service:      service,
		codec:        codec,
		clientURL:    clientURL,
		stateTTL:     stateTTL,
		secureCookie: secureCookie,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Get("", c.Initiate)
	h.Get("/callback", c.Callback)
	h.Get("/status", serverutils.SessionMiddleware(c.codec), c.Status)
	h.Post("/logout", c.Logout)
}

// Initiate starts the login flow: mint a random state nonce, pin it in a
// short-lived cookie, and bounce the browser to the provider.
func (c *authController) Initiate(ctx *fiber.Ctx) error {
	state, err := newStateNonce()
	if err != nil {
		return serverutils.NewInternalError(err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.StateCookieName,
		Value:    state,
		MaxAge:   int(c.stateTTL.Seconds()),
		HTTPOnly: true,
		Secure:   c.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return ctx.Redirect(c.service.LoginURL(state), fiber.StatusFound)
}

// Callback validates the state echo against the sk_state cookie before any
// provider round trip, exchanges the code, and mints the session cookie. The
// state cookie is cleared on every exit path.
func (c *authController) Callback(ctx *fiber.Ctx) error {
	defer c.clearCookie(ctx, serverutils.StateCookieName)

	if providerErr := ctx.Query("error"); providerErr != "" {
		return serverutils.NewAppError(fiber.StatusUnauthorized, "Authentication failed: "+providerErr)
	}

	state := ctx.Query("state")
	expected := ctx.Cookies(serverutils.StateCookieName)
	if state == "" || expected == "" || state != expected {
		return serverutils.NewAppError(fiber.StatusUnauthorized, "Invalid state parameter")
	}

	code := ctx.Query("code")
	if code == "" {
		return serverutils.NewValidationError("Missing authorization code")
	}

	user, err := c.service.HandleCallback(ctx.Context(), code)
	if err != nil {
		return err
	}

	token, err := c.codec.Issue(user.Email, user.OrganizationId)
	if err != nil {
		return serverutils.NewInternalError(err)
	}

	ctx.Cookie(&fiber.Cookie{
		Name:     serverutils.SessionCookieName,
		Value:    token,
		MaxAge:   int(c.codec.TTL().Seconds()),
		HTTPOnly: true,
		Secure:   c.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return ctx.Redirect(c.clientURL, fiber.StatusFound)
}

func (c *authController) Status(ctx *fiber.Ctx) error {
	res := dto.AuthStatusResponse{
		Authenticated: true,
		User: dto.AuthStatusUser{
			Email:          serverutils.SessionEmail(ctx),
			OrganizationId: serverutils.SessionOrganizationId(ctx),
		},
	}
	return ctx.JSON(serverutils.SuccessResponse("Authenticated", res))
}

// Logout clears the session and metadata cookies. The JWT itself stays valid
// until expiry; deletion of the cookie is the invalidation mechanism.
func (c *authController) Logout(ctx *fiber.Ctx) error {
	c.clearCookie(ctx, serverutils.SessionCookieName)
	c.clearCookie(ctx, serverutils.MetadataCookieName)
	return ctx.JSON(serverutils.SuccessResponse("Logged out", struct{}{}))
}

func (c *authController) clearCookie(ctx *fiber.Ctx, name string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    "",
		MaxAge:   -1,
		HTTPOnly: true,
		Secure:   c.secureCookie,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func newStateNonce() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
