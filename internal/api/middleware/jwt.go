package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/linskybing/form-platform/internal/config"
	"github.com/linskybing/form-platform/pkg/response"
	"github.com/linskybing/form-platform/pkg/types"
	"github.com/linskybing/form-platform/pkg/utils"
)

var jwtKey []byte

// Init sets the JWT signing key.
func Init() {
	jwtKey = []byte(config.JwtSecret)
}

// GenerateToken issues a signed token carrying the caller's role.
var GenerateToken = func(userID uint, username, role string, roleID *uint, expireDuration time.Duration) (string, error) {
	now := time.Now()
	claims := &types.Claims{
		UserID:   userID,
		Username: username,
		Role:     role,
		RoleID:   roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expireDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    config.Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ParseToken validates and extracts claims.
func ParseToken(tokenStr string) (*types.Claims, error) {
	claims := &types.Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	return claims, nil
}

// tokenFrom reads the bearer header, then the token cookie. allowQuery also accepts
// ?token=, which browsers need for websocket upgrades.
func tokenFrom(c *gin.Context, allowQuery bool) (string, string) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return "", "Authorization header format must be Bearer {token}"
		}
		return parts[1], ""
	}
	if cookie, err := c.Cookie("token"); err == nil && cookie != "" {
		return cookie, ""
	}
	if allowQuery {
		if q := c.Query("token"); q != "" {
			return q, ""
		}
	}
	return "", "Authorization required (header or cookie)"
}

func authenticate(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, problem := tokenFrom(c, allowQuery)
		if problem != "" {
			response.Abort(c, http.StatusUnauthorized, problem)
			return
		}

		claims, err := ParseToken(tokenStr)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "Invalid token: "+err.Error())
			return
		}
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			response.Abort(c, http.StatusUnauthorized, "token expired")
			return
		}

		c.Set("claims", claims)
		c.Set(utils.ContextKey, claims.RequestContext())
		c.Next()
	}
}

// JWTAuthMiddleware resolves the caller once per request from a header or cookie token.
func JWTAuthMiddleware() gin.HandlerFunc {
	return authenticate(false)
}

// WebSocketAuthMiddleware is JWTAuthMiddleware that also reads the token query parameter.
func WebSocketAuthMiddleware() gin.HandlerFunc {
	return authenticate(true)
}
