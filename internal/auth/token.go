package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/bitlance/web/internal/domain"
	jwtlib "github.com/golang-jwt/jwt/v5"
)

// ErrNoUserID is returned by SessionFromLogin when neither the login response
// nor its token names the user.
var ErrNoUserID = errors.New("login response carried no user id")

// Claims are the fields this front end reads from a backend-issued token.
type Claims struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role,omitempty"`

	jwtlib.RegisteredClaims
}

// Expiry returns the token's expiry, or the zero time if it has none.
func (c Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// TokenParser reads claims from the backend's session tokens. With a secret
// it verifies the HS256 signature; without one it only decodes the token,
// since issuance and verification belong to the backend.
type TokenParser struct {
	secret []byte
	now    func() time.Time
}

// NewTokenParser creates a parser. An empty secret disables signature checks.
func NewTokenParser(secret string) *TokenParser {
	return &TokenParser{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// LooksLikeJWT reports whether token has the three dot-separated segments of
// a compact JWS. Opaque tokens are stored but never parsed.
func LooksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

// Parse decodes the token and validates its expiry.
func (p *TokenParser) Parse(token string) (Claims, error) {
	var c Claims
	if len(p.secret) == 0 {
		parser := jwtlib.NewParser()
		if _, _, err := parser.ParseUnverified(token, &c); err != nil {
			return Claims{}, domain.ErrTokenInvalid
		}
		if exp := c.Expiry(); !exp.IsZero() && p.now().After(exp) {
			return Claims{}, domain.ErrTokenExpired
		}
		return c, nil
	}

	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(p.now),
	)
	tok, err := parser.ParseWithClaims(token, &c, func(*jwtlib.Token) (any, error) {
		return p.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, domain.ErrTokenExpired
		}
		return Claims{}, domain.ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, domain.ErrTokenInvalid
	}
	return c, nil
}

// MergeUser fills the empty fields of user from the claims. Values returned
// in the login response body take precedence over the token.
func MergeUser(user *domain.User, c Claims) *domain.User {
	if user == nil {
		user = &domain.User{}
	}
	if user.ID == "" {
		user.ID = c.UserID
		if user.ID == "" {
			user.ID = c.Subject
		}
	}
	if user.Email == "" {
		user.Email = c.Email
	}
	if user.Username == "" {
		user.Username = c.Username
	}
	if user.Name == "" {
		user.Name = c.Name
	}
	if user.Role == "" {
		user.Role = c.Role
	}
	return user
}

// SessionFromLogin builds the session for a login response. A JWT token is
// parsed to fill missing user fields and the expiry; an opaque token is kept
// as is. A rejected login returns domain.ErrInvalidCredentials.
func (p *TokenParser) SessionFromLogin(res *domain.LoginResult) (*Session, error) {
	if !res.OK() {
		return nil, domain.ErrInvalidCredentials
	}
	s := &Session{User: res.User, Token: res.Token}
	if LooksLikeJWT(res.Token) {
		claims, err := p.Parse(res.Token)
		if err != nil {
			return nil, err
		}
		s.User = MergeUser(s.User, claims)
		s.Expires = claims.Expiry()
	}
	if s.User == nil || s.User.ID == "" {
		return nil, ErrNoUserID
	}
	return s, nil
}
