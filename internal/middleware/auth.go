package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/AldebertBarber/aldebert-api/internal/config"
)

const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
	ContextUserRole  = "userRole"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Identity é o resultado da verificação do bearer token: quem é e com
// qual papel. Handlers nunca inspecionam o token, só a Identity.
type Identity struct {
	ID    uint
	Email string
	Role  string
}

var errNoCredential = errors.New("no credential presented")

// identityFromRequest é o único caminho de verificação de credencial: os
// modos required e optional diferem apenas no que fazem com o erro.
func identityFromRequest(c *gin.Context, secret string) (*Identity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errNoCredential
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errors.New("invalid authorization header")
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	sub, okID := claims["sub"].(float64)
	role, okRole := claims["role"].(string)
	email, _ := claims["email"].(string)
	if !okID || !okRole {
		return nil, errors.New("invalid token payload")
	}

	return &Identity{
		ID:    uint(sub),
		Email: email,
		Role:  role,
	}, nil
}

func setIdentity(c *gin.Context, id *Identity) {
	c.Set(ContextUserID, id.ID)
	c.Set(ContextUserEmail, id.Email)
	c.Set(ContextUserRole, id.Role)
}

// AuthMiddleware exige um bearer token válido.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := identityFromRequest(c, cfg.JWTSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		setIdentity(c, id)
		c.Next()
	}
}

// OptionalAuth resolve a identidade quando houver credencial válida e
// segue anônimo em qualquer outro caso. Usado só pelo booking público.
func OptionalAuth(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, err := identityFromRequest(c, cfg.JWTSecret); err == nil {
			setIdentity(c, id)
		}
		c.Next()
	}
}

// RequireRole barra identidades autenticadas com papel errado.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, _ := c.Get(ContextUserRole)
		if current != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// IdentityFrom recupera a identidade do contexto; ok=false em requisição
// anônima.
func IdentityFrom(c *gin.Context) (*Identity, bool) {
	idVal, exists := c.Get(ContextUserID)
	if !exists {
		return nil, false
	}

	id, ok := idVal.(uint)
	if !ok {
		return nil, false
	}

	email, _ := c.Get(ContextUserEmail)
	role, _ := c.Get(ContextUserRole)

	emailStr, _ := email.(string)
	roleStr, _ := role.(string)

	return &Identity{ID: id, Email: emailStr, Role: roleStr}, true
}
