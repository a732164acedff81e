package http

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Role scopes a token to one of the three API surfaces.
type Role string

const (
	RoleUser  Role = "user"
	RoleDrone Role = "drone"
	RoleAdmin Role = "admin"
)

const actorIDContextKey = "actorID"

type tokenClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens. User and drone
// identities are created on first use, so a fresh client only needs to pick
// a name. The token subject is the identity's UUID.
type TokenService struct {
	secret []byte
	ttl    time.Duration

	uowFactory    ports.UnitOfWorkFactory
	createDrone   commands.CreateDroneCommandHandler
	createEndUser commands.CreateEndUserCommandHandler
}

// NewTokenService creates a token service signing with the given secret.
func NewTokenService(
	secret string,
	ttl time.Duration,
	uowFactory ports.UnitOfWorkFactory,
	createDrone commands.CreateDroneCommandHandler,
	createEndUser commands.CreateEndUserCommandHandler,
) *TokenService {
	return &TokenService{
		secret:        []byte(secret),
		ttl:           ttl,
		uowFactory:    uowFactory,
		createDrone:   createDrone,
		createEndUser: createEndUser,
	}
}

// Issue returns a signed token for the named identity. End users and drones
// are looked up by name and registered when missing. Admin identities are
// not persisted.
func (s *TokenService) Issue(ctx context.Context, name string, role string) (string, error) {
	if name == "" {
		return "", errs.NewInvalidStateError("name must not be empty")
	}

	var subject kernel.UUID
	var err error

	switch Role(role) {
	case RoleUser:
		subject, err = s.endUserID(ctx, name)
	case RoleDrone:
		subject, err = s.droneID(ctx, name)
	case RoleAdmin:
		subject = kernel.NewUUID()
	default:
		return "", errs.NewInvalidStateError(fmt.Sprintf("unknown role %q", role))
	}
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := tokenClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// RequireRole authenticates the request and rejects tokens issued for a
// different role. The token subject is stored in the request context for
// handlers to read via actorID.
func (s *TokenService) RequireRole(role Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found {
				return respondUnauthorized(ctx, "missing bearer token")
			}

			claims, err := s.parse(raw)
			if err != nil {
				return respondUnauthorized(ctx, "invalid token")
			}

			if claims.Role != string(role) {
				return respondForbidden(ctx,
					fmt.Sprintf("token is not valid for the %s API", role))
			}

			subject, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return respondUnauthorized(ctx, "invalid token subject")
			}

			ctx.Set(actorIDContextKey, subject)
			return next(ctx)
		}
	}
}

func (s *TokenService) parse(raw string) (*tokenClaims, error) {
	claims := &tokenClaims{}

	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	return claims, nil
}

func (s *TokenService) endUserID(ctx context.Context, name string) (kernel.UUID, error) {
	existingID, err := s.lookupEndUser(ctx, name)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return kernel.UUID{}, err
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewCreateEndUserCommand(userID, name)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = s.createEndUser.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}

	return userID, nil
}

func (s *TokenService) droneID(ctx context.Context, name string) (kernel.UUID, error) {
	existingID, err := s.lookupDrone(ctx, name)
	if err == nil {
		return existingID, nil
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return kernel.UUID{}, err
	}

	droneID := kernel.NewUUID()
	cmd, err := commands.NewCreateDroneCommand(droneID, name)
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = s.createDrone.Handle(ctx, cmd); err != nil {
		return kernel.UUID{}, err
	}

	return droneID, nil
}

func (s *TokenService) lookupEndUser(ctx context.Context, name string) (kernel.UUID, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.EndUserRepository().GetByName(ctx, name)
	if err != nil {
		return kernel.UUID{}, err
	}
	return user.ID(), nil
}

func (s *TokenService) lookupDrone(ctx context.Context, name string) (kernel.UUID, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	found, err := uow.DroneRepository().GetByName(ctx, name)
	if err != nil {
		return kernel.UUID{}, err
	}
	return found.ID(), nil
}

// actorID returns the authenticated identity stored by RequireRole.
func actorID(ctx echo.Context) (kernel.UUID, error) {
	id, ok := ctx.Get(actorIDContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errors.New("request is not authenticated")
	}
	return id, nil
}
