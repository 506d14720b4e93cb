package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/streamhive/streamhive-api/internal/jwt"
	"github.com/streamhive/streamhive-api/internal/models"
	"github.com/streamhive/streamhive-api/internal/services"
)

const maxUploadMemory = 32 << 20

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, req services.RegisterRequest) (*models.CurrentUser, error)
}

// NewRegisterHandler returns an HTTP handler for account registration.
// @Summary Register a new user
// @Description Creates an account from a multipart form. The avatar file is required, the cover image optional.
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Param username formData string true "Unique username"
// @Param email formData string true "Unique email"
// @Param fullName formData string true "Display name"
// @Param password formData string true "Password"
// @Param avatar formData file true "Avatar image"
// @Param coverImage formData file false "Cover image"
// @Success 201 {object} models.APIResponse "User registered"
// @Failure 400 {object} models.APIErrorResponse "Validation failed"
// @Failure 409 {object} models.APIErrorResponse "Username or email taken"
// @Router /users/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		req := services.RegisterRequest{
			Username: r.FormValue("username"),
			Email:    r.FormValue("email"),
			FullName: r.FormValue("fullName"),
			Password: r.FormValue("password"),
		}
		if avatar := formUpload(r, "avatar"); avatar != nil {
			req.Avatar = *avatar
		}
		req.CoverImage = formUpload(r, "coverImage")

		user, err := svc.Register(r.Context(), req)
		if err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusCreated, user, "User registered successfully")
	}
}

// LoginProvider defines the interface that the service must implement.
type LoginProvider interface {
	Login(ctx context.Context, username, email, password string) (*models.CurrentUser, string, string, error)
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the data block of a successful login.
type LoginResult struct {
	User         *models.CurrentUser `json:"user"`
	AccessToken  string              `json:"accessToken"`
	RefreshToken string              `json:"refreshToken"`
}

// NewLoginHandler returns an HTTP handler for login.
// @Summary Log in
// @Description Authenticates by username or email, sets the token pair as cookies and returns it in the body.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Credentials"
// @Success 200 {object} models.APIResponse "Logged in"
// @Failure 401 {object} models.APIErrorResponse "Invalid credentials"
// @Failure 404 {object} models.APIErrorResponse "User not found"
// @Router /users/login [post]
func NewLoginHandler(svc LoginProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		user, access, refresh, err := svc.Login(r.Context(), req.Username, req.Email, req.Password)
		if err != nil {
			writeError(w, err)
			return
		}

		setAuthCookies(w, access, refresh)
		writeData(w, http.StatusOK, LoginResult{
			User:         user,
			AccessToken:  access,
			RefreshToken: refresh,
		}, "Logged in successfully")
	}
}

// LogoutProvider defines the interface that the service must implement.
type LogoutProvider interface {
	Logout(ctx context.Context, userID uuid.UUID) error
}

// NewLogoutHandler returns an HTTP handler for logout.
// @Summary Log out
// @Description Invalidates the stored refresh token and clears the auth cookies.
// @Tags auth
// @Produce json
// @Success 200 {object} models.APIResponse "Logged out"
// @Failure 401 {object} models.APIErrorResponse "Unauthenticated"
// @Router /users/logout [post]
// @Security BearerAuth
func NewLogoutHandler(svc LogoutProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Logout(r.Context(), userID); err != nil {
			writeError(w, err)
			return
		}

		clearAuthCookies(w)
		writeData(w, http.StatusOK, nil, "Logged out successfully")
	}
}

// TokenRefresher defines the interface that the service must implement.
type TokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

// RefreshRequest represents the optional JSON body for token refresh
// swagger:model RefreshRequest
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPairResult is the data block of a successful refresh.
type TokenPairResult struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// NewRefreshTokenHandler returns an HTTP handler for refresh-token rotation.
// @Summary Refresh the token pair
// @Description Reads the refresh token from the cookie or the request body and rotates the pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest false "Refresh token when no cookie is present"
// @Success 200 {object} models.APIResponse "Tokens rotated"
// @Failure 401 {object} models.APIErrorResponse "Invalid or reused refresh token"
// @Router /users/refresh-token [post]
func NewRefreshTokenHandler(svc TokenRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := ""
		if c, err := r.Cookie(jwt.RefreshCookie); err == nil {
			token = c.Value
		}
		if token == "" {
			var req RefreshRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
				token = req.RefreshToken
			}
		}

		access, refresh, err := svc.Refresh(r.Context(), token)
		if err != nil {
			writeError(w, err)
			return
		}

		setAuthCookies(w, access, refresh)
		writeData(w, http.StatusOK, TokenPairResult{
			AccessToken:  access,
			RefreshToken: refresh,
		}, "Tokens refreshed successfully")
	}
}

// PasswordChanger defines the interface that the service must implement.
type PasswordChanger interface {
	ChangePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error
}

// ChangePasswordRequest represents the JSON body for password change
// swagger:model ChangePasswordRequest
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// NewChangePasswordHandler returns an HTTP handler for password change.
// @Summary Change password
// @Tags auth
// @Accept json
// @Produce json
// @Param changePasswordRequest body handlers.ChangePasswordRequest true "Old and new password"
// @Success 200 {object} models.APIResponse "Password changed"
// @Failure 401 {object} models.APIErrorResponse "Wrong old password"
// @Router /users/change-password [post]
// @Security BearerAuth
func NewChangePasswordHandler(svc PasswordChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := principal(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		var req ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, services.ErrValidation)
			return
		}

		if err := svc.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
			writeError(w, err)
			return
		}

		writeData(w, http.StatusOK, nil, "Password changed successfully")
	}
}
