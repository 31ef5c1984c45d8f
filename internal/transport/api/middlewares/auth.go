package middlewares

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/consulting-checkout/internal/service/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenNotExist     = errors.New("token not exist")
	ErrInvalidGuestToken = errors.New("invalid guest token")
)

const (
	CurrentUserIDKey = "currentUserID"
	GuestTokenKey    = "guestToken"

	GuestTokenHeader = "X-Guest-Token"
	AdminKeyHeader   = "X-Admin-Key"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан, вернется ошибка
// ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.UserClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, ErrTokenNotExist
	}

	token, err := tokens.ValidateUserJWT(tokenHeader[len(bearer):], jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claimsFromToken(token)
}

func claimsFromToken(token *jwt.Token) (*tokens.UserClaims, error) {
	userClaim, ok := token.Claims.(*tokens.UserClaims)
	if !ok {
		return nil, errors.New("invalid jwt claims type")
	}
	return userClaim, nil
}

func abortUnauthorized(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "code": "UNAUTHORIZED"})
	if !errors.Is(err, ErrTokenNotExist) {
		_ = c.Error(err).SetType(gin.ErrorTypePrivate)
	}
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст (поле CurrentUserIDKey)
// id юзера.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		c.Set(CurrentUserIDKey, claims.ID)
		c.Next()
	}
}

// NonAuthRequired пропускает запросы без токена или с недействительным токеном.
func NonAuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := checkAuthorization(c, jwtTokenSecret); err == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Already authorized"})
			return
		}
		c.Next()
	}
}

// OwnerRequired пропускает авторизованного юзера либо гостя с токеном в заголовке GuestTokenHeader.
// Передан bearer токен - он обязан быть валидным, гостевой токен в этом случае игнорируется.
func OwnerRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		switch {
		case err == nil:
			c.Set(CurrentUserIDKey, claims.ID)
			c.Next()
			return
		case !errors.Is(err, ErrTokenNotExist):
			abortUnauthorized(c, err)
			return
		}

		guestToken := c.GetHeader(GuestTokenHeader)
		if guestToken == "" {
			abortUnauthorized(c, ErrTokenNotExist)
			return
		}
		if _, parseErr := uuid.Parse(guestToken); parseErr != nil {
			abortUnauthorized(c, fmt.Errorf("%w: %s", ErrInvalidGuestToken, parseErr.Error()))
			return
		}
		c.Set(GuestTokenKey, guestToken)
		c.Next()
	}
}

// AdminKey пропускает запросы с ключом администратора в заголовке AdminKeyHeader. Пустой ключ
// в конфигурации закрывает доступ полностью.
func AdminKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		given := c.GetHeader(AdminKeyHeader)
		if key == "" || subtle.ConstantTimeCompare([]byte(given), []byte(key)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden", "code": "FORBIDDEN"})
			return
		}
		c.Next()
	}
}
