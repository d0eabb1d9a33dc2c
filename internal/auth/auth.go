package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/cpalomino/wedding-api/internal/config"
)

const (
	// CookieName matches the cookie the admin frontend was built against.
	CookieName = "wedding_admin_auth"

	TokenDuration = 7 * 24 * time.Hour
)

// AuthHandler gates the admin surface behind a single shared password and
// hands out signed, expiring session tokens in an HTTP-only cookie.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

// AuthInput is embedded by every admin operation input so the session
// cookie rides along with the request.
type AuthInput struct {
	Cookie string `header:"Cookie"`
}

type LoginInput struct {
	Body struct {
		Password string `json:"password,omitempty" doc:"Shared admin password"`
	}
}

type LoginOutput struct {
	SetCookie string `header:"Set-Cookie"`
	Body      struct {
		Success bool `json:"success"`
	}
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if input.Body.Password == "" {
		return nil, huma.Error400BadRequest("Password is required")
	}

	// An unset password keeps the admin panel closed rather than open.
	if h.cfg.AdminPassword == "" ||
		subtle.ConstantTimeCompare([]byte(input.Body.Password), []byte(h.cfg.AdminPassword)) != 1 {
		return nil, huma.Error401Unauthorized("Invalid password")
	}

	token, err := h.GenerateToken()
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	cookie := http.Cookie{
		Name:     CookieName,
		Value:    token,
		MaxAge:   int(TokenDuration.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	}

	out := &LoginOutput{SetCookie: cookie.String()}
	out.Body.Success = true
	return out, nil
}

type LogoutOutput struct {
	SetCookie string `header:"Set-Cookie"`
	Body      struct {
		Success bool `json:"success"`
	}
}

func (h *AuthHandler) HandleLogout(ctx context.Context, input *struct{}) (*LogoutOutput, error) {
	cookie := http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	}

	out := &LogoutOutput{SetCookie: cookie.String()}
	out.Body.Success = true
	return out, nil
}

// GenerateToken signs a session token carrying nothing but an admin claim
// and an expiry.
func (h *AuthHandler) GenerateToken() (string, error) {
	claims := jwt.MapClaims{
		"admin": true,
		"exp":   time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize validates the session cookie from a raw Cookie header and
// returns a 401 huma error when the request carries no valid session.
func (h *AuthHandler) Authorize(ctx context.Context, cookieHeader string) error {
	req := http.Request{Header: http.Header{"Cookie": {cookieHeader}}}
	cookie, err := req.Cookie(CookieName)
	if err != nil {
		return huma.Error401Unauthorized("Unauthorized: no session")
	}
	if !h.validToken(cookie.Value) {
		return huma.Error401Unauthorized("Unauthorized: invalid session")
	}
	return nil
}

// IsAuthenticated is the plain-HTTP variant of Authorize, used by routes
// that bypass the typed API layer (CSV export).
func (h *AuthHandler) IsAuthenticated(r *http.Request) bool {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return false
	}
	return h.validToken(cookie.Value)
}

func (h *AuthHandler) validToken(tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	return err == nil && token.Valid
}
