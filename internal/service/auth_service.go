package service

import (
	"context"
	"errors"
	"time"

	"fitsphere/workout-api/internal/domain"
	"fitsphere/workout-api/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Service Interface ---
type AuthService interface {
	// GetOrCreate looks a user up by their external identity-provider ID and
	// returns the existing record verbatim if found; supplied attributes
	// never overwrite an existing profile. A signed token is issued either way.
	GetOrCreate(ctx context.Context, externalID, name, avatar, email string) (user *domain.User, token string, created bool, err error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.User, error)
}

// authService implements the AuthService interface.
type authService struct {
	userRepo      repository.UserRepository
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthService creates a new instance of authService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret string, jwtExpiration time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if jwtExpiration <= 0 {
		jwtExpiration = time.Hour
	}
	return &authService{
		userRepo:      userRepo,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// GetOrCreate handles the lazy-creation auth flow.
func (s *authService) GetOrCreate(ctx context.Context, externalID, name, avatar, email string) (*domain.User, string, bool, error) {
	if externalID == "" {
		return nil, "", false, &Error{KindValidation, "external user ID is required"}
	}

	user, err := s.userRepo.GetByExternalID(ctx, externalID)
	if err == nil {
		token, tokenErr := s.generateJWT(user)
		if tokenErr != nil {
			return nil, "", false, ErrTokenGeneration
		}
		return user, token, false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, "", false, err
	}

	user = &domain.User{
		ExternalID: externalID,
		Name:       name,
		Avatar:     avatar,
		Email:      email,
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, "", false, err
	}
	user.ID = userID

	token, err := s.generateJWT(user)
	if err != nil {
		return nil, "", false, ErrTokenGeneration
	}
	return user, token, true, nil
}

// UpdateProfile applies a partial update to the user's profile fields.
func (s *authService) UpdateProfile(ctx context.Context, id primitive.ObjectID, update domain.ProfileUpdate) (*domain.User, error) {
	if update.Experience != nil {
		switch *update.Experience {
		case domain.ExperienceBeginner, domain.ExperienceIntermediate, domain.ExperienceAdvanced:
		default:
			return nil, &Error{KindValidation, "experience must be beginner, intermediate or advanced"}
		}
	}

	user, err := s.userRepo.UpdateProfile(ctx, id, update)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// --- JWT Helper ---

// jwtClaims defines the structure of the JWT payload.
type jwtClaims struct {
	UserID     string `json:"uid"` // Mongo ObjectID, hex
	ExternalID string `json:"sub_ext"`
	jwt.RegisteredClaims
}

// generateJWT creates a new signed token for the given user.
func (s *authService) generateJWT(user *domain.User) (string, error) {
	expirationTime := time.Now().Add(s.jwtExpiration)
	claims := &jwtClaims{
		UserID:     user.ID.Hex(),
		ExternalID: user.ExternalID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "workout-api",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}
	return signedToken, nil
}
