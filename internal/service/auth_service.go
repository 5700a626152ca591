package service

import (
	"context"
	"errors"
	"time"

	"github.com/DevDad-Main/ServIQ/internal/dto"
	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/pkg/logger"
	"github.com/DevDad-Main/ServIQ/internal/pkg/serverutils"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"
	"github.com/DevDad-Main/ServIQ/internal/repository/unitofwork"
	"github.com/DevDad-Main/ServIQ/pkg/scalekit"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// IdentityProvider is the slice of the OAuth bridge the auth flow needs.
type IdentityProvider interface {
	AuthorizationURL(state string) string
	AuthenticateWithCode(ctx context.Context, code string) (*scalekit.Identity, error)
}

type IAuthService interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (*dto.AuthenticatedUser, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	provider   IdentityProvider
	log        logger.ILogger
}

func NewAuthService(
	uowFactory unitofwork.RepositoryFactory,
	provider IdentityProvider,
	log logger.ILogger,
) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		provider:   provider,
		log:        log,
	}
}

func (s *authService) LoginURL(state string) string {
	return s.provider.AuthorizationURL(state)
}

// HandleCallback exchanges the authorization code for identity claims and
// upserts the user row keyed by email. The session cookie is minted by the
// controller from the returned identity, never from provider tokens.
func (s *authService) HandleCallback(ctx context.Context, code string) (*dto.AuthenticatedUser, error) {
	identity, err := s.provider.AuthenticateWithCode(ctx, code)
	if err != nil {
		if errors.Is(err, scalekit.ErrMissingOrganization) {
			s.log.Error("auth", "identity response missing organization claim", map[string]interface{}{
				"error": err.Error(),
			})
			return nil, serverutils.NewAppError(fiber.StatusInternalServerError, "No organization ID found in token claims")
		}
		s.log.Warn("auth", "code exchange failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, serverutils.NewAppError(fiber.StatusUnauthorized, "Authentication failed")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: identity.Email})
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if user == nil {
		user = &entity.User{
			Id:             uuid.New(),
			Email:          identity.Email,
			Name:           identity.Name,
			OrganizationId: identity.OrganizationId,
			CreatedAt:      now,
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, err
		}
	} else {
		user.Name = identity.Name
		user.OrganizationId = identity.OrganizationId
		user.UpdatedAt = now
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, err
		}
	}

	s.log.Info("auth", "user authenticated", map[string]interface{}{
		"email":           user.Email,
		"organization_id": user.OrganizationId,
	})

	return &dto.AuthenticatedUser{
		Email:          user.Email,
		Name:           user.Name,
		OrganizationId: user.OrganizationId,
	}, nil
}
