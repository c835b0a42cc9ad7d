package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/internal/utils"
	"github.com/MKhiriev/sheetcharts/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes; tokens are HS256 JWTs.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// google verifies third-party ID tokens. Nil disables Google login.
	google GoogleVerifier

	// adminEmails lists the lower-cased addresses that are granted the admin
	// role on account creation.
	adminEmails map[string]struct{}

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository.
// google may be nil, in which case GoogleLogin reports ErrGoogleLoginDisabled.
func NewAuthService(userRepository store.UserRepository, google GoogleVerifier, cfg config.App, logger *logger.Logger) AuthService {
	admins := make(map[string]struct{}, len(cfg.AdminEmails))
	for _, email := range cfg.AdminEmails {
		if email = normalizeEmail(email); email != "" {
			admins[email] = struct{}{}
		}
	}

	return &authService{
		userRepository: userRepository,
		google:         google,
		adminEmails:    admins,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     bcrypt.DefaultCost,
		logger:         logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (a *authService) roleFor(email string) models.Role {
	if _, ok := a.adminEmails[email]; ok {
		return models.RoleAdmin
	}
	return models.RoleUser
}

// Register creates a new password account.
//
// Returns ErrInvalidDataProvided when the name, e-mail or password is
// missing, and a wrapped store.ErrEmailAlreadyExists when the e-mail is taken.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Name:     req.DisplayName(),
		Email:    normalizeEmail(req.Email),
		Password: req.Password,
	}
	if user.Name == "" || user.Email == "" || user.Password == "" {
		log.Error().Str("func", "*authService.Register").Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("password hashing failed")
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, ErrInvalidDataProvided
		}
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.PasswordHash = string(hash)
	user.Password = ""
	user.Role = a.roleFor(user.Email)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates a password account. Unknown e-mails, wrong passwords
// and Google-only accounts all yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	email := normalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		log.Error().Str("func", "*authService.Login").Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("func", "*authService.Login").Str("email", email).Msg("unknown email")
			return models.User{}, ErrWrongPassword
		}
		log.Err(err).Str("func", "*authService.Login").Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if foundUser.PasswordHash == "" {
		log.Warn().Int64("id", foundUser.UserID).Msg("password login attempted on google-only account")
		return models.User{}, ErrWrongPassword
	}

	if err = bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// GoogleLogin verifies a Google ID token and returns the matching account.
// A first login with a new Google account links it to the existing account
// with the same e-mail, or creates a password-less account.
func (a *authService) GoogleLogin(ctx context.Context, req models.GoogleLoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if a.google == nil {
		return models.User{}, ErrGoogleLoginDisabled
	}
	if strings.TrimSpace(req.Token) == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	identity, err := a.google.Verify(ctx, req.Token)
	if err != nil {
		log.Err(err).Str("func", "*authService.GoogleLogin").Msg("google token rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidGoogleToken, err)
	}

	user, err := a.userRepository.FindUserByGoogleID(ctx, identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("user search by google id failed: %w", err)
	}

	email := normalizeEmail(identity.Email)
	user, err = a.userRepository.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		if err = a.userRepository.LinkGoogleID(ctx, user.UserID, identity.Subject); err != nil {
			log.Err(err).Str("func", "*authService.GoogleLogin").Int64("id", user.UserID).Msg("linking google account failed")
			return models.User{}, fmt.Errorf("linking google account failed: %w", err)
		}
		user.GoogleID = identity.Subject
		return user, nil
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	created, err := a.userRepository.CreateUser(ctx, models.User{
		Name:     name,
		Email:    email,
		Role:     a.roleFor(email),
		GoogleID: identity.Subject,
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.GoogleLogin").Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

func (a *authService) Profile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}
	return user, nil
}

// CreateToken issues a signed JWT carrying the user id and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT. Expired tokens yield ErrTokenIsExpired;
// every other failure is ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
