package service

import (
	"net/http"
	"regexp"

	"golang.org/x/crypto/bcrypt"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
	"github.com/threadhub-dev/threadhub/internal/logger"
)

type AuthService interface {
	Register(username, password, fullname string) (domain.User, error)
	Login(username, password string) (TokenPair, error)
	RefreshAccessToken(refreshToken string) (string, error)
	Logout(refreshToken string) error
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type Jwt interface {
	NewAccessToken(user domain.User) (string, error)
	NewRefreshToken(user domain.User) (string, error)
	DecodeUser(jwtStr string) (domain.User, error)
}

type Auth struct {
	users  UserRepository
	tokens AuthenticationRepository
	jwt    Jwt
}

func NewAuth(users UserRepository, tokens AuthenticationRepository, jwt Jwt) *Auth {
	return &Auth{users, tokens, jwt}
}

var usernamePattern = regexp.MustCompile(`^\w+$`)

func validateUsername(username domain.Username) error {
	if username == "" {
		return &errors.ValidationError{Message: "username must not be empty"}
	}
	if len(username) > 50 {
		return &errors.ValidationError{Message: "username must not exceed 50 characters"}
	}
	if !usernamePattern.MatchString(string(username)) {
		return &errors.ValidationError{Message: "username contains restricted characters"}
	}
	return nil
}

func (a *Auth) Register(username, password, fullname string) (domain.User, error) {
	uname := domain.Username(username)
	if err := validateUsername(uname); err != nil {
		return domain.User{}, err
	}

	if err := a.users.VerifyAvailableUsername(uname); err != nil {
		return domain.User{}, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.User{}, err
	}

	user := domain.User{Username: uname, Password: domain.Password(passHash), Fullname: fullname}
	id, err := a.users.AddUser(user)
	if err != nil {
		return domain.User{}, err
	}

	user.Id = id
	user.Password = ""
	return user, nil
}

func (a *Auth) Login(username, password string) (TokenPair, error) {
	uname := domain.Username(username)
	passHash, err := a.users.GetPasswordByUsername(uname)
	if err != nil {
		return TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passHash), []byte(password)); err != nil {
		return TokenPair{}, &errors.ErrorWithStatusCode{Message: "wrong password", StatusCode: http.StatusUnauthorized}
	}

	id, err := a.users.GetIdByUsername(uname)
	if err != nil {
		return TokenPair{}, err
	}

	user := domain.User{Id: id, Username: uname}
	accessToken, err := a.jwt.NewAccessToken(user)
	if err != nil {
		return TokenPair{}, err
	}
	refreshToken, err := a.jwt.NewRefreshToken(user)
	if err != nil {
		return TokenPair{}, err
	}

	if err := a.tokens.AddToken(refreshToken); err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// RefreshAccessToken exchanges a stored refresh token for a fresh access
// token. The refresh token must exist in the authentications store.
func (a *Auth) RefreshAccessToken(refreshToken string) (string, error) {
	if err := a.tokens.CheckAvailabilityToken(refreshToken); err != nil {
		return "", err
	}

	user, err := a.jwt.DecodeUser(refreshToken)
	if err != nil {
		return "", err
	}

	return a.jwt.NewAccessToken(user)
}

func (a *Auth) Logout(refreshToken string) error {
	if err := a.tokens.CheckAvailabilityToken(refreshToken); err != nil {
		return err
	}
	return a.tokens.DeleteToken(refreshToken)
}
