package services

import (
	"strings"
	"sync"
	"time"

	"github.com/jculp24/thrsty/entity"
	"github.com/jculp24/thrsty/repository"
	"github.com/jculp24/thrsty/utils"

	"golang.org/x/crypto/bcrypt"
)

// TokenBlacklist remembers revoked session IDs (jti) until their tokens
// would have expired anyway.
type TokenBlacklist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func NewTokenBlacklist() *TokenBlacklist {
	return &TokenBlacklist{revoked: make(map[string]time.Time)}
}

func (b *TokenBlacklist) Revoke(tokenID string, expiresAt time.Time) {
	if tokenID == "" {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.revoked[tokenID] = expiresAt
	for id, exp := range b.revoked {
		if time.Now().After(exp) {
			delete(b.revoked, id)
		}
	}
}

func (b *TokenBlacklist) IsRevoked(tokenID string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	exp, ok := b.revoked[tokenID]
	return ok && time.Now().Before(exp)
}

type AuthService struct {
	userRepo  *repository.UserRepository
	blacklist *TokenBlacklist
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, blacklist *TokenBlacklist, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		blacklist: blacklist,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Signup creates the auth identity and its profile row together.
func (s *AuthService) Signup(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        "customer",
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login checks credentials and issues a session token.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

// Logout revokes the presented session. The token stays unusable until it
// would have expired on its own.
func (s *AuthService) Logout(tokenID string, expiresAt time.Time) {
	s.blacklist.Revoke(tokenID, expiresAt)
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}
