package session

import (
	"fmt"
	"time"

	"go-dreamjob/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const cookieName = "dreamjob_session"

// Manager issues and resolves browser sessions. The session id travels
// in an HS256-signed cookie; the user payload stays server-side in the
// Store, so logout can revoke a session immediately.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

func NewManager(store Store, secret []byte, ttl time.Duration) *Manager {
	return &Manager{store: store, secret: secret, ttl: ttl}
}

// Current returns the logged-in user for the request, or nil when there
// is no valid session. A tampered or expired cookie is treated the same
// as no cookie at all.
func (m *Manager) Current(c *gin.Context) *domain.User {
	sid := m.sessionID(c)
	if sid == "" {
		return nil
	}
	user, err := m.store.Get(c.Request.Context(), sid)
	if err != nil {
		return nil
	}
	return user
}

// SignIn creates a fresh session for user and sets the cookie. Any
// session the browser previously held is abandoned, not reused.
func (m *Manager) SignIn(c *gin.Context, user *domain.User) error {
	sid := uuid.NewString()
	if err := m.store.Set(c.Request.Context(), sid, user, m.ttl); err != nil {
		return err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(m.ttl).Unix(),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return err
	}

	c.SetCookie(cookieName, signed, int(m.ttl.Seconds()), "/", "", false, true)
	return nil
}

// SignOut revokes the server-side session and expires the cookie.
func (m *Manager) SignOut(c *gin.Context) {
	if sid := m.sessionID(c); sid != "" {
		_ = m.store.Delete(c.Request.Context(), sid)
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)
}

func (m *Manager) sessionID(c *gin.Context) string {
	raw, err := c.Cookie(cookieName)
	if err != nil || raw == "" {
		return ""
	}

	token, err := jwt.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return ""
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	sid, _ := claims["sid"].(string)
	return sid
}

// Middleware resolves the current user once per request and shares it
// with handlers and templates through the gin context.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := m.Current(c); user != nil {
			c.Set(domain.KeyUser, user)
		}
		c.Next()
	}
}

// UserFrom returns the user placed in the gin context by Middleware.
func UserFrom(c *gin.Context) *domain.User {
	value, exists := c.Get(domain.KeyUser)
	if !exists {
		return nil
	}
	user, _ := value.(*domain.User)
	return user
}
