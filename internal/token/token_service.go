package token

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

const Issuer = "groupware"

// ErrInvalidToken sengaja satu nilai untuk semua kegagalan verifikasi
// (signature salah, issuer salah, format rusak).
var ErrInvalidToken = errors.New("authentication failed")

type Service struct {
	secret []byte
}

func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// Issue membuat token HS256 dengan claim {iss, sub}. Tidak ada exp.
func (s *Service) Issue(subject string) (string, error) {
	claims := jwt.RegisteredClaims{
		Issuer:  Issuer,
		Subject: subject,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) Verify(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
	)
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
