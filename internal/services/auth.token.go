package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
	sharedhash "github.com/joshuarp/vrf-coordinator/internal/shared/hash"
	sharedjwt "github.com/joshuarp/vrf-coordinator/internal/shared/jwt"
)

type APIClientRepository interface {
	GetAPIClient(ctx context.Context, clientID string) (domain.APIClient, error)
}

type AuthTokenService struct {
	repository   APIClientRepository
	hasher       sharedhash.Hasher
	tokenManager sharedjwt.TokenManager
}

func NewAuthTokenService(
	repository APIClientRepository,
	hasher sharedhash.Hasher,
	tokenManager sharedjwt.TokenManager,
) *AuthTokenService {
	return &AuthTokenService{
		repository:   repository,
		hasher:       hasher,
		tokenManager: tokenManager,
	}
}

// IssueToken exchanges client credentials for a bearer token whose subject is the client id and
// whose audience is the client's role.
func (s *AuthTokenService) IssueToken(ctx context.Context, clientID, secret string) (vo.AuthToken, error) {
	normalizedID := strings.TrimSpace(clientID)
	if normalizedID == "" || strings.TrimSpace(secret) == "" {
		return vo.AuthToken{}, vo.ErrInvalidCredentials
	}

	client, err := s.repository.GetAPIClient(ctx, normalizedID)
	if err != nil {
		if errors.Is(err, vo.ErrClientNotFound) {
			return vo.AuthToken{}, vo.ErrInvalidCredentials
		}
		return vo.AuthToken{}, err
	}

	if client.Status != domain.APIClientActive {
		return vo.AuthToken{}, vo.ErrInvalidCredentials
	}

	if err := s.hasher.Compare(ctx, client.SecretHash, secret); err != nil {
		return vo.AuthToken{}, vo.ErrInvalidCredentials
	}

	token, err := s.tokenManager.Sign(ctx, sharedjwt.Claims{
		Subject:  client.ClientID,
		Audience: []string{string(client.Role)},
	})
	if err != nil {
		return vo.AuthToken{}, fmt.Errorf("service: failed to issue token: %w", err)
	}

	return vo.AuthToken{
		AccessToken: token,
		TokenType:   "Bearer",
		Role:        string(client.Role),
	}, nil
}
