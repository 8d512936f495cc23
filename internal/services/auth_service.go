// file: internal/services/auth_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"weplanet/internal/config"
	"weplanet/internal/models"
	"weplanet/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// authService implements AuthService: local credentials, JWT issuing and
// the Google OAuth handshake. It is glue around the core; the engine only
// ever sees the authenticated user ID.
type authService struct {
	userRepo    repositories.UserRepository
	cfg         *config.AuthConfig
	oauthConfig *oauth2.Config
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.AuthConfig, logger *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		cfg:      cfg,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"email", "profile"},
			Endpoint:     google.Endpoint,
		},
		validate: validator.New(),
		logger:   logger,
	}
}

// ===============================
// LOCAL ACCOUNTS
// ===============================

// Register creates a local account with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, req *RegisterRequest) (*models.User, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationError("invalid registration request", err)
	}
	if len(req.Password) < s.cfg.MinPasswordLength {
		return nil, NewValidationError(
			fmt.Sprintf("password must be at least %d characters", s.cfg.MinPasswordLength), nil)
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewInternalError("failed to check existing user", err)
	}
	if existing != nil {
		return nil, NewConflictError("email already registered", "EMAIL_TAKEN")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BCryptCost)
	if err != nil {
		return nil, NewInternalError("failed to hash password", err)
	}

	hashStr := string(hash)
	user := &models.User{
		Email:        req.Email,
		PasswordHash: &hashStr,
		AuthProvider: "local",
		Nickname:     req.Nickname,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, NewInternalError("failed to create user", err)
	}
	return user, nil
}

// Login verifies local credentials and issues an access token.
func (s *authService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, NewValidationError("invalid login request", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, NewInternalError("failed to look up user", err)
	}
	if user == nil || user.PasswordHash == nil {
		return nil, NewUnauthorizedError("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Info("Login failed", zap.Int64("user_id", user.ID))
		return nil, NewUnauthorizedError("Invalid credentials")
	}

	return s.issueToken(user.ID)
}

// ===============================
// GOOGLE OAUTH
// ===============================

// GoogleAuthURL returns the Google consent page URL for the given state.
func (s *authService) GoogleAuthURL(state string) string {
	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

type googleUserInfo struct {
	Sub   string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleCallback exchanges the authorization code, fetches the Google
// profile and finds or creates the matching user by email.
func (s *authService) GoogleCallback(ctx context.Context, code string) (*TokenResponse, error) {
	if code == "" {
		return nil, NewValidationError("authorization code is required", nil)
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, NewUnauthorizedError("failed to exchange authorization code")
	}

	info, err := s.fetchGoogleUserInfo(ctx, token)
	if err != nil {
		return nil, NewInternalError("failed to fetch user info", err)
	}
	if info.Email == "" {
		return nil, NewUnauthorizedError("Google login failed")
	}

	user, err := s.userRepo.GetByEmail(ctx, info.Email)
	if err != nil {
		return nil, NewInternalError("failed to look up user", err)
	}
	if user == nil {
		user = &models.User{
			Email:          info.Email,
			AuthProvider:   "google",
			ProviderUserID: &info.Sub,
		}
		if info.Name != "" {
			user.Nickname = &info.Name
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, NewInternalError("failed to create user", err)
		}
	}

	return s.issueToken(user.ID)
}

func (s *authService) fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo: %w", err)
	}
	return &info, nil
}

// ===============================
// TOKENS
// ===============================

func (s *authService) issueToken(userID int64) (*TokenResponse, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": fmt.Sprintf("%d", userID),
		"iat": now.Unix(),
		"exp": now.Add(s.cfg.JWTExpiry).Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, NewInternalError("failed to sign token", err)
	}
	return &TokenResponse{AccessToken: signed, TokenType: "bearer"}, nil
}

// ValidateToken verifies the token signature and expiry and returns the
// subject user ID.
func (s *authService) ValidateToken(ctx context.Context, tokenString string) (int64, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return 0, NewUnauthorizedError("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, NewUnauthorizedError("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return 0, NewUnauthorizedError("invalid token subject")
	}

	var userID int64
	if _, err := fmt.Sscanf(sub, "%d", &userID); err != nil || userID <= 0 {
		return 0, NewUnauthorizedError("invalid token subject")
	}
	return userID, nil
}
