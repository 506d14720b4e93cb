package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/streamhive/streamhive-api/internal/jwt"
	"github.com/streamhive/streamhive-api/internal/logger"
	"github.com/streamhive/streamhive-api/internal/models"
)

// Upload is a file received from a multipart request, handed to the media
// facade as-is.
type Upload struct {
	Filename string
	File     io.Reader
}

// MediaUploader defines the media host operations services depend on.
type MediaUploader interface {
	Upload(ctx context.Context, filename string, file io.Reader) (*models.MediaAsset, error)
	Delete(ctx context.Context, publicID string) error
}

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error)
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, email, fullName, avatar string, coverImage *string, passwordHash string) (uuid.UUID, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	SetRefreshTokenHash(ctx context.Context, userID uuid.UUID, hash *string) error
}

// TokenPairGenerator issues and validates the access/refresh token pair.
type TokenPairGenerator interface {
	GenerateAccess(ctx context.Context, userID uuid.UUID) (string, error)
	GenerateRefresh(ctx context.Context, userID uuid.UUID) (string, error)
	GetRefreshClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RegisterRequest carries everything needed to create an account. Avatar is
// required; the cover image is optional.
type RegisterRequest struct {
	Username   string
	Email      string
	FullName   string
	Password   string
	Avatar     Upload
	CoverImage *Upload
}

// AuthService handles registration, login and the refresh-token lifecycle.
type AuthService struct {
	reader UserReader
	writer UserWriter
	media  MediaUploader
	jwt    TokenPairGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, media MediaUploader, jwt TokenPairGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		media:  media,
		jwt:    jwt,
	}
}

// hashToken derives the stored fingerprint of a refresh token. Tokens exceed
// bcrypt's input limit, so a plain digest is used instead.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account, uploading the avatar and optional cover
// image to the media host first.
func (svc *AuthService) Register(ctx context.Context, req RegisterRequest) (*models.CurrentUser, error) {
	if req.Username == "" || req.Email == "" || req.FullName == "" || req.Password == "" {
		return nil, validationError("username, email, fullName and password are required")
	}
	if req.Avatar.File == nil {
		return nil, validationError("avatar is required")
	}

	existing, err := svc.reader.GetByUsernameOrEmail(ctx, &req.Username, &req.Email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, conflictError("user with this username or email")
	}

	avatar, err := svc.media.Upload(ctx, req.Avatar.Filename, req.Avatar.File)
	if err != nil {
		logger.Log.Errorw("failed to upload avatar", "err", err)
		return nil, err
	}

	var coverURL *string
	if req.CoverImage != nil && req.CoverImage.File != nil {
		cover, err := svc.media.Upload(ctx, req.CoverImage.Filename, req.CoverImage.File)
		if err != nil {
			logger.Log.Errorw("failed to upload cover image", "err", err)
			return nil, err
		}
		coverURL = &cover.URL
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	userID, err := svc.writer.Save(ctx, req.Username, req.Email, req.FullName, avatar.URL, coverURL, string(hashedPassword))
	if err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load created user", "err", err)
		return nil, err
	}
	if user == nil {
		return nil, notFoundError("user")
	}

	return currentUser(user), nil
}

// Login authenticates by username or email and issues a token pair. The
// refresh token's fingerprint is stored so Refresh can verify it later.
func (svc *AuthService) Login(ctx context.Context, username, email, password string) (*models.CurrentUser, string, string, error) {
	if username == "" && email == "" {
		return nil, "", "", validationError("username or email is required")
	}

	var usernamePtr, emailPtr *string
	if username != "" {
		usernamePtr = &username
	}
	if email != "" {
		emailPtr = &email
	}

	user, err := svc.reader.GetByUsernameOrEmail(ctx, usernamePtr, emailPtr)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, "", "", err
	}
	if user == nil {
		return nil, "", "", notFoundError("user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", ErrUnauthenticated
	}

	access, refresh, err := svc.issuePair(ctx, user.UserID)
	if err != nil {
		return nil, "", "", err
	}

	return currentUser(user), access, refresh, nil
}

// Logout invalidates the stored refresh token.
func (svc *AuthService) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := svc.writer.SetRefreshTokenHash(ctx, userID, nil); err != nil {
		logger.Log.Errorw("failed to clear refresh token", "user_id", userID, "err", err)
		return err
	}
	return nil
}

// Refresh validates a refresh token against its stored fingerprint and
// rotates the pair. A token that was already rotated out is rejected.
func (svc *AuthService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthenticated
	}

	claims, err := svc.jwt.GetRefreshClaims(ctx, refreshToken)
	if err != nil {
		return "", "", ErrUnauthenticated
	}

	user, err := svc.reader.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to get user for refresh", "err", err)
		return "", "", err
	}
	if user == nil || user.RefreshTokenHash == nil || *user.RefreshTokenHash != hashToken(refreshToken) {
		return "", "", ErrUnauthenticated
	}

	return svc.issuePair(ctx, user.UserID)
}

// ChangePassword verifies the old password and stores the new hash.
func (svc *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	if newPassword == "" {
		return validationError("new password is required")
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return err
	}
	if user == nil {
		return notFoundError("user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)); err != nil {
		return ErrUnauthenticated
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	return svc.writer.UpdatePassword(ctx, userID, string(hashedPassword))
}

func (svc *AuthService) issuePair(ctx context.Context, userID uuid.UUID) (string, string, error) {
	access, err := svc.jwt.GenerateAccess(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate access token", "err", err)
		return "", "", err
	}
	refresh, err := svc.jwt.GenerateRefresh(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to generate refresh token", "err", err)
		return "", "", err
	}

	hash := hashToken(refresh)
	if err := svc.writer.SetRefreshTokenHash(ctx, userID, &hash); err != nil {
		logger.Log.Errorw("failed to store refresh token", "err", err)
		return "", "", err
	}

	return access, refresh, nil
}
