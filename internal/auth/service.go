package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/safiyu/ranthal/internal/identity"
)

var (
	// ErrInvalidCredentials covers both unknown email and password mismatch.
	// The two causes must stay indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken covers malformed, badly signed, and expired tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Claims is the signed claim set carried by a bearer token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Profile is the caller-visible view of an identity.
type Profile struct {
	ID    string
	Email string
	Name  string
}

// Service registers identities and issues and verifies bearer tokens.
type Service struct {
	store  *identity.Store
	secret []byte
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger
}

// NewService constructs the auth service. The secret is injected; there is
// no fallback value.
func NewService(store *identity.Store, secret []byte, ttl time.Duration, logger *zap.Logger) *Service {
	return &Service{
		store:  store,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
		logger: logger.Named("auth_service"),
	}
}

// Register creates a new identity and issues a token as if the caller had
// just logged in. The plaintext password is hashed and discarded.
func (s *Service) Register(email, password, name string) (string, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}

	ident, err := s.store.Put(email, identity.Identity{
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return "", "", err
	}

	token, err := s.issueToken(ident.ID, email)
	if err != nil {
		return "", "", err
	}
	s.logger.Info("user registered", zap.String("user_id", ident.ID))
	return token, ident.ID, nil
}

// Login verifies the credentials and issues a fresh token. Unknown email
// and wrong password produce the same error.
func (s *Service) Login(email, password string) (string, string, string, error) {
	ident, err := s.store.Get(email)
	if err != nil {
		return "", "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(ident.PasswordHash), []byte(password)); err != nil {
		return "", "", "", ErrInvalidCredentials
	}

	token, err := s.issueToken(ident.ID, email)
	if err != nil {
		return "", "", "", err
	}
	return token, ident.ID, ident.Name, nil
}

// VerifyToken parses and validates a bearer token. All rejection causes
// collapse to ErrInvalidToken; the distinction is only logged.
func (s *Service) VerifyToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		s.logger.Debug("token rejected", zap.Error(err))
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// WhoAmI resolves the current profile for verified claims. The display name
// is read from the store rather than the token so it is never a stale
// issuance-time snapshot.
func (s *Service) WhoAmI(claims *Claims) *Profile {
	profile := &Profile{ID: claims.Subject, Email: claims.Email}
	if ident, err := s.store.Get(claims.Email); err == nil {
		profile.Name = ident.Name
	}
	return profile
}

func (s *Service) issueToken(userID, email string) (string, error) {
	now := s.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
