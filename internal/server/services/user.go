// Package services contains server-side business logic. This file implements
// UserService, which issues e-mailed sign-in links and exchanges them for
// session JWTs.
package services

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/google/uuid"
	"github.com/ledgerline/taxintake/internal/common"
	"github.com/ledgerline/taxintake/internal/intake"
	"github.com/ledgerline/taxintake/internal/server/auth"
	"github.com/ledgerline/taxintake/internal/server/config"
	"github.com/ledgerline/taxintake/internal/server/models"
	"github.com/ledgerline/taxintake/internal/server/repositories/repomanager"
)

var randomSecret = func() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// UserService provides authentication-related operations:
//   - IssueSignInLink: create the account if needed and mint a single-use link
//   - ExchangeSignInLink: redeem a link for a session JWT
type UserService struct {
	db                         *sql.DB
	repomanager                repomanager.RepositoryManager
	jwtSecret                  []byte
	sessionValidityDuration    time.Duration
	signInLinkValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:                         db,
		repomanager:                m,
		jwtSecret:                  []byte(cfg.SecretKey),
		sessionValidityDuration:    cfg.SessionValidityDuration,
		signInLinkValidityDuration: cfg.SignInLinkValidityDuration,
	}
}

// IssueSignInLink creates the user account on first contact and returns an
// opaque link token of the form "<id>.<secret>". Only a bcrypt hash of the
// secret is stored, so a database leak does not expose usable links.
func (s *UserService) IssueSignInLink(ctx context.Context, email string) (string, error) {
	if !intake.IsValidEmail(email) {
		return "", common.ErrInvalidEmail
	}

	user, err := s.repomanager.Users(s.db).FindOrCreate(ctx, strings.ToLower(email))
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	secret, err := randomSecret()
	if err != nil {
		return "", fmt.Errorf("error generating secret: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	token := &models.SignInToken{
		ID:         uuid.NewString(),
		UserID:     user.ID,
		SecretHash: string(hash),
		Expires:    time.Now().Add(s.signInLinkValidityDuration),
	}
	if err := s.repomanager.SignInTokens(s.db).Create(ctx, token); err != nil {
		return "", fmt.Errorf("error storing sign-in token: %w", err)
	}

	return token.ID + "." + secret, nil
}

// ExchangeSignInLink redeems a sign-in link and returns a session JWT. The
// token row is deleted before the JWT is minted, so each link works once.
func (s *UserService) ExchangeSignInLink(ctx context.Context, link string) (string, error) {
	id, secret, ok := strings.Cut(link, ".")
	if !ok || id == "" || secret == "" {
		return "", common.ErrInvalidToken
	}

	repo := s.repomanager.SignInTokens(s.db)

	token, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", common.ErrorInternal
	}

	if token.Expires.Before(time.Now()) {
		// Sweep every expired row, not just this one. Links that were
		// never redeemed have no other cleanup path.
		_ = repo.DeleteExpired(ctx)
		return "", common.ErrTokenExpired
	}

	if bcrypt.CompareHashAndPassword([]byte(token.SecretHash), []byte(secret)) != nil {
		return "", common.ErrInvalidToken
	}

	if err := repo.Delete(ctx, id); err != nil {
		// A concurrent redeem won the race. The link is spent.
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrInvalidToken
		}
		return "", common.ErrorInternal
	}

	return auth.GenerateToken(token.UserID, s.jwtSecret, s.sessionValidityDuration)
}
