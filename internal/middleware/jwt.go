package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a2sh3r/stablex/internal/logger"
	"github.com/a2sh3r/stablex/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

type contextKey string

const (
	UserIDKey contextKey = "user_id"
	RoleKey   contextKey = "role"

	// TokenQueryParam carries the token for clients that cannot set headers, such as browser websockets.
	TokenQueryParam = "access_token"
)

var ErrEmptySecretKey = errors.New("jwt secret key is empty")

// NewToken signs an HS256 token carrying the user id and role.
func NewToken(secretKey string, userID int64, role models.Role, ttl time.Duration) (string, error) {
	if secretKey == "" {
		return "", ErrEmptySecretKey
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"exp":     time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secretKey))
}

// JWTMiddleware rejects every request when secretKey is empty.
func JWTMiddleware(secretKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secretKey == "" {
				logger.Log.Error("jwt secret key is not configured", zap.String("path", r.URL.Path))
				http.Error(w, "authentication is not configured", http.StatusUnauthorized)
				return
			}

			tokenString, ok := tokenFromRequest(w, r)
			if !ok {
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method")
				}
				return []byte(secretKey), nil
			})

			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token claims", http.StatusUnauthorized)
				return
			}

			rawUserID, ok := claims["user_id"]
			if !ok {
				http.Error(w, "user_id missing in token claims", http.StatusUnauthorized)
				return
			}

			var userID int64
			switch v := rawUserID.(type) {
			case float64:
				userID = int64(v)
			case string:
				userID, err = strconv.ParseInt(v, 10, 64)
				if err != nil {
					http.Error(w, "invalid user_id format in token claims", http.StatusUnauthorized)
					return
				}
			default:
				http.Error(w, "invalid user_id type in token claims", http.StatusUnauthorized)
				return
			}

			rawRole, _ := claims["role"].(string)
			role, err := models.ParseRole(rawRole)
			if err != nil {
				http.Error(w, "invalid role in token claims", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			ctx = context.WithValue(ctx, RoleKey, role)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func tokenFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if t := r.URL.Query().Get(TokenQueryParam); t != "" {
			return t, true
		}
		http.Error(w, "authorization header missing", http.StatusUnauthorized)
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		http.Error(w, "authorization header format must be Bearer {token}", http.StatusUnauthorized)
		return "", false
	}
	return parts[1], true
}

func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(UserIDKey).(int64)
	return id, ok
}

func GetRole(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleKey).(models.Role)
	return role, ok
}

// GetActor returns the authenticated caller stored by JWTMiddleware.
func GetActor(ctx context.Context) (models.Actor, bool) {
	id, ok := GetUserID(ctx)
	if !ok {
		return models.Actor{}, false
	}
	role, ok := GetRole(ctx)
	if !ok {
		return models.Actor{}, false
	}
	return models.Actor{UserID: id, Role: role}, true
}
