package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secrets/internal/crypto"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/metrics"
	"github.com/MKhiriev/go-secrets/internal/store"
	"github.com/MKhiriev/go-secrets/internal/validators"
	"github.com/MKhiriev/go-secrets/models"
)

// authService is the concrete implementation of AuthService.
// It validates submitted credentials, hashes passwords with a
// crypto.PasswordHasher and delegates login checks to a Strategy.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	hasher   crypto.PasswordHasher
	strategy Strategy

	validator validators.Validator
}

// NewAuthService constructs a new AuthService.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, strategy Strategy) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		strategy:       strategy,
		validator:      validators.NewCredentialsValidator(),
	}
}

// RegisterUser creates a new user account.
//
// A lookup runs first so that a known duplicate is refused without paying for
// a hash. The unique constraint on the login column still decides races
// between concurrent registrations.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - store.ErrLoginAlreadyExists (wrapped) if the login is taken.
//   - A wrapped hasher or storage error otherwise.
func (a *authService) RegisterUser(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{Login: login, Password: password}
	if err := a.validator.Validate(ctx, user); err != nil {
		log.Warn().Err(err).Msg("invalid user data provided")
		metrics.RecordRegistration(metrics.ResultInvalid)
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByLogin(ctx, user)
	switch {
	case err == nil:
		log.Info().Str("login", login).Msg("login is already registered")
		metrics.RecordRegistration(metrics.ResultDuplicate)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrLoginAlreadyExists)
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("login", login).Msg("user search by login failed")
		metrics.RecordRegistration(metrics.ResultError)
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	hash, err := a.hasher.Hash(ctx, password)
	if err != nil {
		log.Err(err).Str("login", login).Msg("password hashing failed")
		metrics.RecordRegistration(metrics.ResultError)
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = hash
	user.Password = ""

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrLoginAlreadyExists) {
			log.Info().Str("login", login).Msg("login was registered concurrently")
			metrics.RecordRegistration(metrics.ResultDuplicate)
		} else {
			log.Err(err).Str("login", login).Msg("user creation ended with error")
			metrics.RecordRegistration(metrics.ResultError)
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	registeredUser.PasswordHash = ""
	metrics.RecordRegistration(metrics.ResultSuccess)
	log.Info().Str("login", registeredUser.Login).Int64("id", registeredUser.UserID).Msg("user registered")
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Unknown login and wrong password both come back as ErrInvalidCredentials;
// the wrapped ErrUserNotFound or ErrWrongPassword is for logs only.
// Strategy failures are returned wrapped and are not credential errors.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, models.User{Login: login, Password: password}); err != nil {
		log.Info().Err(err).Msg("login attempt with incomplete credentials")
		metrics.RecordLogin(metrics.ResultInvalid)
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrInvalidDataProvided)
	}

	result := a.strategy.Authenticate(ctx, login, password)
	switch result.Status {
	case models.AuthAccepted:
		metrics.RecordLogin(metrics.ResultSuccess)
		log.Info().Str("login", result.User.Login).Msg("user logged in")
		return result.User, nil

	case models.AuthRejected:
		metrics.RecordLogin(metrics.ResultRejected)
		log.Info().Str("login", login).Str("reason", result.Reason).Msg("login rejected")
		if result.Reason == models.RejectReasonNotFound {
			return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrUserNotFound)
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, ErrWrongPassword)

	default:
		metrics.RecordLogin(metrics.ResultError)
		log.Err(result.Err).Str("login", login).Msg("login failed")
		return models.User{}, fmt.Errorf("login failed: %w", result.Err)
	}
}
