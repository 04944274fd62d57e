package identity

import (
	"context"
	"time"

	"github.com/gemba/backend/internal/domain/identity"
	"github.com/gemba/backend/internal/domain/shared"
	"github.com/gemba/backend/internal/infrastructure/auth"
)

// errInvalidCredentials is returned for every sign-in failure so responses do
// not reveal whether the company, the user, or the password was wrong.
func errInvalidCredentials() error {
	return shared.NewDomainError("INVALID_CREDENTIALS", "Invalid company code, username, or password")
}

// AuthService handles sign-in, token refresh, and sign-out
type AuthService struct {
	companyRepo identity.CompanyRepository
	userRepo    identity.UserRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
}

// NewAuthService creates a new AuthService
func NewAuthService(
	companyRepo identity.CompanyRepository,
	userRepo identity.UserRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
) *AuthService {
	return &AuthService{
		companyRepo: companyRepo,
		userRepo:    userRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
	}
}

// Login authenticates a staff member by company code, username, and password
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	company, err := s.companyRepo.FindByCode(ctx, req.CompanyCode)
	if err != nil {
		return nil, errInvalidCredentials()
	}
	if !company.IsActive || company.IsExpired() {
		return nil, shared.NewDomainError("COMPANY_INACTIVE", "This company account is not active")
	}

	user, err := s.userRepo.FindByUsername(ctx, company.ID, req.Username)
	if err != nil {
		return nil, errInvalidCredentials()
	}
	if !user.IsActive {
		return nil, errInvalidCredentials()
	}
	if !user.VerifyPassword(req.Password) {
		return nil, errInvalidCredentials()
	}

	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		TenantID:  company.ID,
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
		StaffCode: user.StaffCode,
	})
	if err != nil {
		return nil, err
	}

	user.RecordLogin(time.Now())
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenExpiration().Seconds()),
		User:         *ToUserResponse(user),
		Company:      *ToCompanyResponse(company),
	}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	if blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID); err == nil && blacklisted {
		return nil, auth.ErrTokenBlacklisted
	}
	if invalidated, err := s.blacklist.IsUserTokenInvalidated(ctx, claims.UserID, claims.GetIssuedAtTime()); err == nil && invalidated {
		return nil, auth.ErrTokenBlacklisted
	}

	// The refresh token carries identity only, so the role and staff code are
	// re-read from the user record. A deactivated user cannot refresh.
	tenantID, err := claims.GetTenantUUID()
	if err != nil {
		return nil, auth.ErrInvalidClaims
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, auth.ErrInvalidClaims
	}
	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil || !user.IsActive {
		return nil, auth.ErrInvalidToken
	}

	pair, err := s.jwtService.RefreshTokenPair(req.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    int64(s.jwtService.GetAccessTokenExpiration().Seconds()),
	}, nil
}

// Logout blacklists the presented access token for its remaining lifetime
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := claims.GetRemainingTTL()
	if ttl <= 0 {
		return nil
	}
	return s.blacklist.AddToBlacklist(ctx, claims.ID, ttl)
}

// Me returns the signed-in user's profile
func (s *AuthService) Me(ctx context.Context, claims *auth.Claims) (*UserResponse, error) {
	tenantID, err := claims.GetTenantUUID()
	if err != nil {
		return nil, auth.ErrInvalidClaims
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, auth.ErrInvalidClaims
	}

	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return nil, err
	}
	return ToUserResponse(user), nil
}

// ChangePassword changes the signed-in user's password and invalidates every
// token issued before the change.
func (s *AuthService) ChangePassword(ctx context.Context, claims *auth.Claims, req ChangePasswordRequest) error {
	tenantID, err := claims.GetTenantUUID()
	if err != nil {
		return auth.ErrInvalidClaims
	}
	userID, err := claims.GetUserUUID()
	if err != nil {
		return auth.ErrInvalidClaims
	}

	user, err := s.userRepo.FindByIDForTenant(ctx, tenantID, userID)
	if err != nil {
		return err
	}

	if err := user.ChangePassword(req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return err
	}

	return s.blacklist.AddUserTokensToBlacklist(ctx, claims.UserID, s.jwtService.GetRefreshTokenExpiration())
}
