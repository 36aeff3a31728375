package jwt

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/threadhub-dev/threadhub/internal/domain"
	internal_errors "github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/logger"
)

type TokenService interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeToken(jwtStr string) (*jwt.Token, error)
	DecodeUser(jwtStr string) (domain.User, error)
}

type Jwt struct {
	secretKey  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func New(secretKey string, accessTTL, refreshTTL time.Duration) *Jwt {
	return &Jwt{secretKey, accessTTL, refreshTTL}
}

func (j *Jwt) NewAccessToken(user domain.User) (string, error) {
	return j.newToken(user, j.accessTTL)
}

func (j *Jwt) NewRefreshToken(user domain.User) (string, error) {
	return j.newToken(user, j.refreshTTL)
}

func (j *Jwt) newToken(user domain.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{}
	claims["uid"] = user.Id
	claims["username"] = user.Username
	claims["exp"] = time.Now().Add(ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		logger.Log.Error("failed to sign token", "error", err)
		return "", errors.New("can't create token")
	}

	return tokenString, nil
}

func (j *Jwt) DecodeToken(jwtStr string) (*jwt.Token, error) {
	token, err := jwt.Parse(jwtStr, func(token *jwt.Token) (interface{}, error) {
		// Verify signing algorithm
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, &internal_errors.ErrorWithStatusCode{Message: fmt.Sprintf("Unexpected signing method: %v", token.Header["alg"]), StatusCode: http.StatusUnauthorized}
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid token signature", StatusCode: http.StatusUnauthorized}
	}

	if !token.Valid {
		return nil, &internal_errors.ErrorWithStatusCode{Message: "Invalid access token", StatusCode: http.StatusUnauthorized}
	}

	return token, nil
}

// DecodeUser decodes a token and extracts the user identity from its claims.
func (j *Jwt) DecodeUser(jwtStr string) (domain.User, error) {
	token, err := j.DecodeToken(jwtStr)
	if err != nil {
		return domain.User{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}
	username, ok := claims["username"].(string)
	if !ok {
		return domain.User{}, &internal_errors.ErrorWithStatusCode{Message: "Invalid token claims", StatusCode: http.StatusUnauthorized}
	}

	return domain.User{Id: domain.UserId(uid), Username: domain.Username(username)}, nil
}
