package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
	servicemocks "github.com/joshuarp/vrf-coordinator/internal/mock/services"
	hashmocks "github.com/joshuarp/vrf-coordinator/internal/mock/shared/hash"
	jwtmocks "github.com/joshuarp/vrf-coordinator/internal/mock/shared/jwt"
	sharedjwt "github.com/joshuarp/vrf-coordinator/internal/shared/jwt"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedTime() time.Time {
	return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
}

type AuthTokenServiceSuite struct {
	suite.Suite

	repository   *servicemocks.APIClientRepository
	hasher       *hashmocks.Hasher
	tokenManager *jwtmocks.TokenManager
	service      *AuthTokenService
}

func (s *AuthTokenServiceSuite) SetupTest() {
	s.repository = servicemocks.NewAPIClientRepository(s.T())
	s.hasher = hashmocks.NewHasher(s.T())
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.service = NewAuthTokenService(s.repository, s.hasher, s.tokenManager)
}

func (s *AuthTokenServiceSuite) TestIssueToken_TableDriven() {
	repoErr := errors.New("repository failure")
	signErr := errors.New("sign failed")
	minter := domain.APIClient{
		ClientID:   "0x00000000000000000000000000000000000000aa",
		SecretHash: "hashed",
		Role:       domain.RoleMinter,
		Status:     domain.APIClientActive,
	}

	tests := []struct {
		name      string
		clientID  string
		secret    string
		setupMock func()
		assertion func(vo.AuthToken, error)
	}{
		{
			name:     "invalid when client id empty",
			clientID: "   ",
			secret:   "secret",
			assertion: func(result vo.AuthToken, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
				assert.Equal(s.T(), vo.AuthToken{}, result)
			},
		},
		{
			name:     "invalid when secret empty",
			clientID: minter.ClientID,
			secret:   " ",
			assertion: func(result vo.AuthToken, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:     "unknown client is reported as invalid credentials",
			clientID: minter.ClientID,
			secret:   "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClient(mock.Anything, minter.ClientID).Return(domain.APIClient{}, vo.ErrClientNotFound)
			},
			assertion: func(result vo.AuthToken, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:     "propagates repository error",
			clientID: " " + minter.ClientID + " ",
			secret:   "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClient(mock.Anything, minter.ClientID).Return(domain.APIClient{}, repoErr)
			},
			assertion: func(result vo.AuthToken, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, repoErr)
			},
		},
		{
			name:     "disabled client",
			clientID: minter.ClientID,
			secret:   "secret",
			setupMock: func() {
				disabled := minter
				disabled.Status = "disabled"
				s.repository.EXPECT().GetAPIClient(mock.Anything, minter.ClientID).Return(disabled, nil)
			},
			assertion: func(result vo.AuthToken, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:     "secret mismatch",
			clientID: minter.ClientID,
			secret:   "wrong",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClient(mock.Anything, minter.ClientID).Return(minter, nil)
				s.hasher.EXPECT().Compare(mock.Anything, "hashed", "wrong").Return(errors.New("mismatch"))
			},
			assertion: func(result vo.AuthToken, err error) {
				require.Error(s.T(), err)
				assert.ErrorIs(s.T(), err, vo.ErrInvalidCredentials)
			},
		},
		{
			name:     "returns wrapped error when token signing fails",
			clientID: minter.ClientID,
			secret:   "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClient(mock.Anything, minter.ClientID).Return(minter, nil)
				s.hasher.EXPECT().Compare(mock.Anything, "hashed", "secret").Return(nil)
				s.tokenManager.EXPECT().Sign(mock.Anything, mock.Anything).Return("", signErr)
			},
			assertion: func(result vo.AuthToken, err error) {
				require.Error(s.T(), err)
				assert.ErrorContains(s.T(), err, "failed to issue token")
				assert.ErrorIs(s.T(), err, signErr)
			},
		},
		{
			name:     "success carries role as audience",
			clientID: minter.ClientID,
			secret:   "secret",
			setupMock: func() {
				s.repository.EXPECT().GetAPIClient(mock.Anything, minter.ClientID).Return(minter, nil)
				s.hasher.EXPECT().Compare(mock.Anything, "hashed", "secret").Return(nil)
				s.tokenManager.EXPECT().
					Sign(mock.Anything, mock.MatchedBy(func(claims sharedjwt.Claims) bool {
						return claims.Subject == minter.ClientID && claims.HasAudience("minter")
					})).
					Return("signed-token", nil)
			},
			assertion: func(result vo.AuthToken, err error) {
				require.NoError(s.T(), err)
				assert.Equal(s.T(), vo.AuthToken{AccessToken: "signed-token", TokenType: "Bearer", Role: "minter"}, result)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			result, err := s.service.IssueToken(context.Background(), tc.clientID, tc.secret)
			tc.assertion(result, err)
		})
	}
}

func TestAuthTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthTokenServiceSuite))
}
