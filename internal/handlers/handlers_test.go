package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gofiber/fiber/v3"
	handlermocks "github.com/joshuarp/vrf-coordinator/internal/mock/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/joshuarp/vrf-coordinator/internal/domain"
	"github.com/joshuarp/vrf-coordinator/internal/domain/vo"
	"github.com/joshuarp/vrf-coordinator/internal/middlewares"
)

var (
	callerHex    = "0x00000000000000000000000000000000000000c1"
	requesterHex = "0x00000000000000000000000000000000000000e1"
	adminHex     = "0x00000000000000000000000000000000000000ad"

	caller    = common.HexToAddress(callerHex)
	requester = common.HexToAddress(requesterHex)
	admin     = common.HexToAddress(adminHex)
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func performJSONRequest(app *fiber.App, method, path string, body []byte, headers map[string]string) (*http.Response, map[string]interface{}, []byte) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil
	}

	defer resp.Body.Close()
	rawBody, _ := io.ReadAll(resp.Body)
	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody
}

// withClient stands in for the JWT middleware.
func withClient(clientID string) fiber.Handler {
	return func(c fiber.Ctx) error {
		if clientID != "" {
			c.Locals(middlewares.LocalClientID, clientID)
		}
		return c.Next()
	}
}

func bigEq(expected int64) interface{} {
	return mock.MatchedBy(func(value *big.Int) bool {
		return value != nil && value.Cmp(big.NewInt(expected)) == 0
	})
}

type AuthTokenHandlerSuite struct {
	suite.Suite

	service *handlermocks.AuthTokenService
	handler *AuthTokenHandler
	app     *fiber.App
}

func (s *AuthTokenHandlerSuite) SetupTest() {
	s.service = handlermocks.NewAuthTokenService(s.T())
	s.handler = NewAuthTokenHandler(s.service, newTestLogger())
	s.app = fiber.New()
	s.handler.Register(s.app)
}

func (s *AuthTokenHandlerSuite) TestHandle_TableDriven() {
	serviceErr := errors.New("service error")

	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "invalid body",
			body: []byte(`{"client_id":`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name: "missing credentials",
			body: []byte(`{"client_id":"  ","client_secret":""}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "client_id and client_secret are required", payload["error"])
			},
		},
		{
			name: "invalid credentials",
			body: []byte(`{"client_id":"minter-1","client_secret":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().IssueToken(mock.Anything, "minter-1", "secret").Return(vo.AuthToken{}, vo.ErrInvalidCredentials)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "invalid client credentials", payload["error"])
			},
		},
		{
			name: "internal error",
			body: []byte(`{"client_id":"minter-1","client_secret":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().IssueToken(mock.Anything, "minter-1", "secret").Return(vo.AuthToken{}, serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name: "success",
			body: []byte(`{"client_id":"minter-1","client_secret":"secret"}`),
			setupMock: func() {
				s.service.EXPECT().IssueToken(mock.Anything, "minter-1", "secret").Return(vo.AuthToken{
					AccessToken: "token-123",
					TokenType:   "Bearer",
					Role:        "minter",
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "token-123", payload["access_token"])
				assert.Equal(s.T(), "Bearer", payload["token_type"])
				assert.Equal(s.T(), "minter", payload["role"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/auth/token", tc.body, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestAuthTokenHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthTokenHandlerSuite))
}

type FeeQuoteHandlerSuite struct {
	suite.Suite

	service *handlermocks.FeeQuoteService
	app     *fiber.App
}

func (s *FeeQuoteHandlerSuite) SetupTest() {
	s.service = handlermocks.NewFeeQuoteService(s.T())
	s.app = fiber.New()
	NewFeeQuoteHandler(s.service, newTestLogger()).Register(s.app)
}

func (s *FeeQuoteHandlerSuite) TestHandle_TableDriven() {
	tests := []struct {
		name      string
		path      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "missing batch size",
			path: "/quotes",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "batch_size must be a positive integer", payload["error"])
			},
		},
		{
			name: "zero batch size",
			path: "/quotes?batch_size=0",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
			},
		},
		{
			name: "batch size overflows uint32",
			path: "/quotes?batch_size=4294967296",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
			},
		},
		{
			name: "not configured",
			path: "/quotes?batch_size=3",
			setupMock: func() {
				s.service.EXPECT().Quote(mock.Anything, uint32(3)).Return(vo.FeeQuote{}, vo.ErrNotConfigured)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusServiceUnavailable, resp.StatusCode)
				assert.Equal(s.T(), vo.ErrNotConfigured.Error(), payload["error"])
			},
		},
		{
			name: "success",
			path: "/quotes?batch_size=1",
			setupMock: func() {
				s.service.EXPECT().Quote(mock.Anything, uint32(1)).Return(vo.FeeQuote{
					BatchSize:        1,
					OracleBasePrice:  big.NewInt(1000),
					CallbackGasLimit: 100000,
					CallbackGasCost:  big.NewInt(200000),
					PlatformMarkup:   big.NewInt(100),
					Billing:          "flat",
					Total:            big.NewInt(201100),
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), float64(201100), payload["total"])
				assert.Equal(s.T(), float64(100000), payload["callback_gas_limit"])
				assert.Equal(s.T(), "flat", payload["billing"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodGet, tc.path, nil, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestFeeQuoteHandlerSuite(t *testing.T) {
	suite.Run(t, new(FeeQuoteHandlerSuite))
}

type RandomnessRequestHandlerSuite struct {
	suite.Suite

	service *handlermocks.RandomnessRequestService
	handler *RandomnessRequestHandler
	app     *fiber.App
}

func (s *RandomnessRequestHandlerSuite) SetupTest() {
	s.service = handlermocks.NewRandomnessRequestService(s.T())
	s.handler = NewRandomnessRequestHandler(s.service, newTestLogger())
	s.app = fiber.New()
}

func (s *RandomnessRequestHandlerSuite) TestHandle_TableDriven() {
	serviceErr := errors.New("ledger unavailable")
	validBody := []byte(`{"requester":"` + requesterHex + `","quantity":3,"max_rarity":2,"payment":"10000000"}`)
	matchesInput := mock.MatchedBy(func(input vo.RequestInput) bool {
		return input.Caller == caller &&
			input.Requester == requester &&
			input.Quantity == 3 &&
			input.MaxRarity == 2 &&
			input.Payment.Cmp(big.NewInt(10000000)) == 0
	})

	tests := []struct {
		name      string
		clientID  string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "missing authenticated client",
			body: validBody,
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing authenticated client", payload["error"])
			},
		},
		{
			name:     "client id is not an address",
			clientID: "oracle-1",
			body:     validBody,
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
			},
		},
		{
			name:     "invalid body",
			clientID: callerHex,
			body:     []byte(`{"requester":`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "invalid request body", payload["error"])
			},
		},
		{
			name:     "invalid requester",
			clientID: callerHex,
			body:     []byte(`{"requester":"0x12","quantity":3,"payment":"1"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "requester must be a hex address", payload["error"])
			},
		},
		{
			name:     "missing payment",
			clientID: callerHex,
			body:     []byte(`{"requester":"` + requesterHex + `","quantity":3}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "payment is required", payload["error"])
			},
		},
		{
			name:     "negative payment",
			clientID: callerHex,
			body:     []byte(`{"requester":"` + requesterHex + `","quantity":3,"payment":"-5"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "payment must be an unsigned 256-bit integer", payload["error"])
			},
		},
		{
			name:     "unauthorized caller",
			clientID: callerHex,
			body:     validBody,
			setupMock: func() {
				s.service.EXPECT().Request(mock.Anything, matchesInput).Return(vo.RequestReceipt{}, vo.ErrUnauthorized)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusForbidden, resp.StatusCode)
				assert.Equal(s.T(), vo.ErrUnauthorized.Error(), payload["error"])
			},
		},
		{
			name:     "already pending",
			clientID: callerHex,
			body:     validBody,
			setupMock: func() {
				s.service.EXPECT().Request(mock.Anything, matchesInput).Return(vo.RequestReceipt{}, vo.ErrAlreadyPending)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
			},
		},
		{
			name:     "insufficient payment",
			clientID: callerHex,
			body:     validBody,
			setupMock: func() {
				s.service.EXPECT().Request(mock.Anything, matchesInput).Return(vo.RequestReceipt{}, vo.ErrInsufficientPayment)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusPaymentRequired, resp.StatusCode)
			},
		},
		{
			name:     "out of gas risk",
			clientID: callerHex,
			body:     validBody,
			setupMock: func() {
				s.service.EXPECT().Request(mock.Anything, matchesInput).Return(vo.RequestReceipt{}, vo.ErrOutOfGasRisk)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnprocessableEntity, resp.StatusCode)
			},
		},
		{
			name:     "internal error",
			clientID: callerHex,
			body:     validBody,
			setupMock: func() {
				s.service.EXPECT().Request(mock.Anything, matchesInput).Return(vo.RequestReceipt{}, serviceErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "internal server error", payload["error"])
			},
		},
		{
			name:     "hex payment is accepted",
			clientID: callerHex,
			body:     []byte(`{"requester":"` + requesterHex + `","quantity":3,"max_rarity":2,"payment":"0x989680"}`),
			setupMock: func() {
				s.service.EXPECT().Request(mock.Anything, matchesInput).Return(vo.RequestReceipt{RequestHandle: "req-1"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Equal(s.T(), "req-1", payload["request_handle"])
			},
		},
		{
			name:     "success",
			clientID: callerHex,
			body:     validBody,
			setupMock: func() {
				s.service.EXPECT().Request(mock.Anything, matchesInput).Return(vo.RequestReceipt{
					Caller:           caller,
					Requester:        requester,
					RequestHandle:    "req-1",
					Anchor:           100,
					Quantity:         3,
					NumWords:         1,
					CallbackGasLimit: 200000,
					Payment:          big.NewInt(10000000),
					Overpayment:      big.NewInt(9598900),
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.Equal(s.T(), "req-1", payload["request_handle"])
				assert.Equal(s.T(), float64(100), payload["anchor"])
				assert.Equal(s.T(), float64(9598900), payload["overpayment"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.app.Use(withClient(tc.clientID))
			s.handler.Register(s.app)
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/requests", tc.body, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func (s *RandomnessRequestHandlerSuite) TestGuardsRunBeforeHandler() {
	var order []string
	rateLimit := func(c fiber.Ctx) error {
		order = append(order, "rate_limit")
		return c.Next()
	}
	idempotency := func(c fiber.Ctx) error {
		order = append(order, "idempotency")
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "request is already in progress"})
	}

	s.app.Use(withClient(callerHex))
	s.handler.WithGuards(rateLimit, idempotency).Register(s.app)

	resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/requests", []byte(`{}`), nil)
	require.NotNil(s.T(), resp)
	assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
	assert.Equal(s.T(), "request is already in progress", payload["error"])
	assert.Equal(s.T(), []string{"rate_limit", "idempotency"}, order)
	s.service.AssertNotCalled(s.T(), "Request", mock.Anything, mock.Anything)
}

func TestRandomnessRequestHandlerSuite(t *testing.T) {
	suite.Run(t, new(RandomnessRequestHandlerSuite))
}

type RevealHandlerSuite struct {
	suite.Suite

	service *handlermocks.RevealService
	handler *RevealHandler
	app     *fiber.App
}

func (s *RevealHandlerSuite) SetupTest() {
	s.service = handlermocks.NewRevealService(s.T())
	s.handler = NewRevealHandler(s.service, newTestLogger())
	s.app = fiber.New()
}

func (s *RevealHandlerSuite) TestHandle_TableDriven() {
	tests := []struct {
		name      string
		clientID  string
		path      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "missing authenticated client",
			path: "/requests/" + requesterHex + "/reveal",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
			},
		},
		{
			name:     "invalid requester",
			clientID: callerHex,
			path:     "/requests/not-an-address/reveal",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "requester must be a hex address", payload["error"])
			},
		},
		{
			name:     "no commitment",
			clientID: callerHex,
			path:     "/requests/" + requesterHex + "/reveal",
			setupMock: func() {
				s.service.EXPECT().Reveal(mock.Anything, caller, requester).Return(vo.RevealResult{}, vo.ErrCommitmentNotFound)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusNotFound, resp.StatusCode)
			},
		},
		{
			name:     "not ready",
			clientID: callerHex,
			path:     "/requests/" + requesterHex + "/reveal",
			setupMock: func() {
				s.service.EXPECT().Reveal(mock.Anything, caller, requester).Return(vo.RevealResult{}, vo.ErrNotReady)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusTooEarly, resp.StatusCode)
				assert.Equal(s.T(), vo.ErrNotReady.Error(), payload["error"])
			},
		},
		{
			name:     "success",
			clientID: callerHex,
			path:     "/requests/" + requesterHex + "/reveal",
			setupMock: func() {
				s.service.EXPECT().Reveal(mock.Anything, caller, requester).Return(vo.RevealResult{
					Caller:        caller,
					Requester:     requester,
					RequestHandle: "req-1",
					Quantity:      2,
					Outcomes: []vo.Outcome{
						{Index: 0, Rarity: 1, Power: 120},
						{Index: 1, Rarity: 3, Power: 410},
					},
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "req-1", payload["request_handle"])
				outcomes, ok := payload["outcomes"].([]interface{})
				require.True(s.T(), ok)
				assert.Len(s.T(), outcomes, 2)
				assert.Equal(s.T(), false, payload["forced"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.app.Use(withClient(tc.clientID))
			s.handler.Register(s.app)
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, tc.path, nil, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestRevealHandlerSuite(t *testing.T) {
	suite.Run(t, new(RevealHandlerSuite))
}

type CommitmentHandlerSuite struct {
	suite.Suite

	service *handlermocks.CommitmentService
	handler *CommitmentHandler
	app     *fiber.App
}

func (s *CommitmentHandlerSuite) SetupTest() {
	s.service = handlermocks.NewCommitmentService(s.T())
	s.handler = NewCommitmentHandler(s.service, newTestLogger())
	s.app = fiber.New()
}

func (s *CommitmentHandlerSuite) TestStatus_TableDriven() {
	tests := []struct {
		name      string
		path      string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "invalid caller",
			path: "/commitments/0xzz/" + requesterHex,
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "caller must be a hex address", payload["error"])
			},
		},
		{
			name: "not found",
			path: "/commitments/" + callerHex + "/" + requesterHex,
			setupMock: func() {
				s.service.EXPECT().Status(mock.Anything, caller, requester).Return(vo.CommitmentStatus{}, vo.ErrCommitmentNotFound)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusNotFound, resp.StatusCode)
				assert.Equal(s.T(), vo.ErrCommitmentNotFound.Error(), payload["error"])
			},
		},
		{
			name: "success",
			path: "/commitments/" + callerHex + "/" + requesterHex,
			setupMock: func() {
				s.service.EXPECT().Status(mock.Anything, caller, requester).Return(vo.CommitmentStatus{
					RequestHandle:   "req-1",
					State:           "requested",
					Anchor:          100,
					RevealOpensAt:   103,
					RevealClosesAt:  359,
					Position:        360,
					ForceRevealable: true,
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "requested", payload["state"])
				assert.Equal(s.T(), true, payload["force_revealable"])
				assert.Equal(s.T(), float64(359), payload["reveal_closes_at"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.handler.Register(s.app)
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodGet, tc.path, nil, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func (s *CommitmentHandlerSuite) TestForceReveal_TableDriven() {
	path := "/commitments/" + callerHex + "/" + requesterHex + "/force-reveal"
	keeper := common.HexToAddress("0x00000000000000000000000000000000000000fe")

	tests := []struct {
		name      string
		clientID  string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "anonymous actor is the zero address",
			setupMock: func() {
				s.service.EXPECT().ForceReveal(mock.Anything, common.Address{}, caller, requester).Return(vo.ForceRevealReceipt{
					RequestHandle: "req-1",
					Position:      360,
				}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "req-1", payload["request_handle"])
				assert.Equal(s.T(), float64(360), payload["position"])
			},
		},
		{
			name:     "authenticated actor is passed through",
			clientID: keeper.Hex(),
			setupMock: func() {
				s.service.EXPECT().ForceReveal(mock.Anything, keeper, caller, requester).Return(vo.ForceRevealReceipt{RequestHandle: "req-1"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
			},
		},
		{
			name: "window not elapsed",
			setupMock: func() {
				s.service.EXPECT().ForceReveal(mock.Anything, common.Address{}, caller, requester).Return(vo.ForceRevealReceipt{}, vo.ErrWindowNotElapsed)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), vo.ErrWindowNotElapsed.Error(), payload["error"])
			},
		},
		{
			name: "already fulfilled",
			setupMock: func() {
				s.service.EXPECT().ForceReveal(mock.Anything, common.Address{}, caller, requester).Return(vo.ForceRevealReceipt{}, vo.ErrAlreadyFulfilled)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.app.Use(withClient(tc.clientID))
			s.handler.Register(s.app)
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, path, nil, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func (s *CommitmentHandlerSuite) TestRateLimitGuardsForceRevealOnly() {
	limited := func(c fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "rate limit exceeded"})
	}
	s.handler.WithRateLimit(limited).Register(s.app)
	s.service.EXPECT().Status(mock.Anything, caller, requester).Return(vo.CommitmentStatus{RequestHandle: "req-1"}, nil)

	resp, _, _ := performJSONRequest(s.app, http.MethodPost, "/commitments/"+callerHex+"/"+requesterHex+"/force-reveal", nil, nil)
	require.NotNil(s.T(), resp)
	assert.Equal(s.T(), fiber.StatusTooManyRequests, resp.StatusCode)

	resp, payload, _ := performJSONRequest(s.app, http.MethodGet, "/commitments/"+callerHex+"/"+requesterHex, nil, nil)
	require.NotNil(s.T(), resp)
	assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
	assert.Equal(s.T(), "req-1", payload["request_handle"])
	s.service.AssertNotCalled(s.T(), "ForceReveal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCommitmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(CommitmentHandlerSuite))
}

type OracleFulfillmentHandlerSuite struct {
	suite.Suite

	service *handlermocks.FulfillmentService
	app     *fiber.App
}

func (s *OracleFulfillmentHandlerSuite) SetupTest() {
	s.service = handlermocks.NewFulfillmentService(s.T())
	s.app = fiber.New()
	NewOracleFulfillmentHandler(s.service, newTestLogger()).Register(s.app)
}

func (s *OracleFulfillmentHandlerSuite) TestHandle_TableDriven() {
	wordsMatch := func(expected ...int64) interface{} {
		return mock.MatchedBy(func(words []*big.Int) bool {
			if len(words) != len(expected) {
				return false
			}
			for i, word := range words {
				if word.Cmp(big.NewInt(expected[i])) != 0 {
					return false
				}
			}
			return true
		})
	}

	tests := []struct {
		name      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name: "missing handle",
			body: []byte(`{"request_handle":" ","random_words":["1"]}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "request_handle is required", payload["error"])
			},
		},
		{
			name: "word is not a number",
			body: []byte(`{"request_handle":"req-1","random_words":["1","abc"]}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "random_words[1] must be an unsigned 256-bit integer", payload["error"])
			},
		},
		{
			name: "word wider than 256 bits",
			body: []byte(`{"request_handle":"req-1","random_words":["0x1` + "0000000000000000000000000000000000000000000000000000000000000000" + `"]}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
			},
		},
		{
			name: "empty words are rejected by the service",
			body: []byte(`{"request_handle":"req-1","random_words":[]}`),
			setupMock: func() {
				s.service.EXPECT().Fulfill(mock.Anything, "req-1", wordsMatch()).Return(vo.FulfillmentResult{}, vo.ErrEmptyRandomWords)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), vo.ErrEmptyRandomWords.Error(), payload["error"])
			},
		},
		{
			name: "unknown handle",
			body: []byte(`{"request_handle":"req-9","random_words":["7"]}`),
			setupMock: func() {
				s.service.EXPECT().Fulfill(mock.Anything, "req-9", wordsMatch(7)).Return(vo.FulfillmentResult{}, vo.ErrUnknownRequest)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusNotFound, resp.StatusCode)
			},
		},
		{
			name: "duplicate delivery is acknowledged",
			body: []byte(`{"request_handle":"req-1","random_words":["0xff","42"]}`),
			setupMock: func() {
				s.service.EXPECT().Fulfill(mock.Anything, "req-1", wordsMatch(255, 42)).Return(vo.FulfillmentResult{RequestHandle: "req-1", Duplicate: true}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), true, payload["duplicate"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, http.MethodPost, "/oracle/fulfillments", tc.body, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestOracleFulfillmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(OracleFulfillmentHandlerSuite))
}

type AdminConfigHandlerSuite struct {
	suite.Suite

	service *handlermocks.CoordinatorConfigService
	handler *AdminConfigHandler
	app     *fiber.App
}

func (s *AdminConfigHandlerSuite) SetupTest() {
	s.service = handlermocks.NewCoordinatorConfigService(s.T())
	s.handler = NewAdminConfigHandler(s.service, newTestLogger())
	s.app = fiber.New()
}

func (s *AdminConfigHandlerSuite) TestSetters_TableDriven() {
	configured := domain.CoordinatorConfig{Admin: admin, BatchLimit: 50}
	newAdmin := common.HexToAddress("0x00000000000000000000000000000000000000a2")

	tests := []struct {
		name      string
		clientID  string
		method    string
		path      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:   "read config",
			method: http.MethodGet,
			path:   "/admin/config",
			setupMock: func() {
				s.service.EXPECT().Config(mock.Anything).Return(configured, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), float64(50), payload["batch_limit"])
			},
		},
		{
			name:   "setter requires an authenticated address",
			method: http.MethodPut,
			path:   "/admin/batch-limit",
			body:   []byte(`{"batch_limit":10}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
			},
		},
		{
			name:     "fee parameters",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/fee-parameters",
			body:     []byte(`{"oracle_base_price":"1000","platform_markup":"0x64"}`),
			setupMock: func() {
				s.service.EXPECT().SetFeeParameters(mock.Anything, admin, mock.MatchedBy(func(input vo.FeeParametersInput) bool {
					return input.OracleBasePrice.Cmp(big.NewInt(1000)) == 0 && input.PlatformMarkup.Cmp(big.NewInt(100)) == 0
				})).Return(configured, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
			},
		},
		{
			name:     "fee parameters reject a bad amount",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/fee-parameters",
			body:     []byte(`{"oracle_base_price":"ten","platform_markup":"1"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "oracle_base_price must be an unsigned 256-bit integer", payload["error"])
			},
		},
		{
			name:     "billing mode",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/billing-mode",
			body:     []byte(`{"mode":"per_item"}`),
			setupMock: func() {
				s.service.EXPECT().SetBillingMode(mock.Anything, admin, domain.BillingPerItem).Return(configured, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
			},
		},
		{
			name:     "callback gas price",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/callback-gas-price",
			body:     []byte(`{"callback_gas_price":"2"}`),
			setupMock: func() {
				s.service.EXPECT().SetCallbackGasPrice(mock.Anything, admin, bigEq(2)).Return(configured, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
			},
		},
		{
			name:     "callback gas policy is invalid",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/callback-gas-policy",
			body:     []byte(`{"min":5,"max":1,"per_item":1}`),
			setupMock: func() {
				s.service.EXPECT().SetCallbackGasPolicy(mock.Anything, admin, vo.CallbackGasPolicyInput{Min: 5, Max: 1, PerItem: 1}).Return(domain.CoordinatorConfig{}, vo.ErrInvalidConfig)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
			},
		},
		{
			name:     "reveal window by non admin",
			clientID: callerHex,
			method:   http.MethodPut,
			path:     "/admin/reveal-window",
			body:     []byte(`{"min_delay":3,"max_window":256}`),
			setupMock: func() {
				s.service.EXPECT().SetRevealWindow(mock.Anything, caller, vo.RevealWindowInput{MinDelay: 3, MaxWindow: 256}).Return(domain.CoordinatorConfig{}, vo.ErrPermissionDenied)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusForbidden, resp.StatusCode)
				assert.Equal(s.T(), vo.ErrPermissionDenied.Error(), payload["error"])
			},
		},
		{
			name:     "batch limit",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/batch-limit",
			body:     []byte(`{"batch_limit":25}`),
			setupMock: func() {
				s.service.EXPECT().SetBatchLimit(mock.Anything, admin, uint32(25)).Return(configured, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
			},
		},
		{
			name:     "oracle policy",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/oracle-request-policy",
			body:     []byte(`{"num_words":2,"confirmations":5}`),
			setupMock: func() {
				s.service.EXPECT().SetOracleRequestPolicy(mock.Anything, admin, vo.OracleRequestPolicyInput{NumWords: 2, Confirmations: 5}).Return(configured, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
			},
		},
		{
			name:     "transfer admin rejects a bad address",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/admin",
			body:     []byte(`{"new_admin":"nobody"}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "new_admin must be a hex address", payload["error"])
			},
		},
		{
			name:     "transfer admin",
			clientID: adminHex,
			method:   http.MethodPut,
			path:     "/admin/admin",
			body:     []byte(`{"new_admin":"` + newAdmin.Hex() + `"}`),
			setupMock: func() {
				s.service.EXPECT().TransferAdmin(mock.Anything, admin, newAdmin).Return(domain.CoordinatorConfig{Admin: newAdmin}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				got, _ := payload["admin"].(string)
				assert.Equal(s.T(), strings.ToLower(newAdmin.Hex()), got)
				assert.Equal(s.T(), newAdmin, common.HexToAddress(got))
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.app.Use(withClient(tc.clientID))
			s.handler.Register(s.app)
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, tc.method, tc.path, tc.body, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestAdminConfigHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminConfigHandlerSuite))
}

type AdminAuthorizationHandlerSuite struct {
	suite.Suite

	service *handlermocks.AuthorizationService
	handler *AdminAuthorizationHandler
	app     *fiber.App
}

func (s *AdminAuthorizationHandlerSuite) SetupTest() {
	s.service = handlermocks.NewAuthorizationService(s.T())
	s.handler = NewAdminAuthorizationHandler(s.service, newTestLogger())
	s.app = fiber.New()
}

func (s *AdminAuthorizationHandlerSuite) TestHandlers_TableDriven() {
	tests := []struct {
		name      string
		method    string
		path      string
		body      []byte
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:   "list returns an empty array",
			method: http.MethodGet,
			path:   "/admin/authorizations",
			setupMock: func() {
				s.service.EXPECT().ListAuthorized(mock.Anything).Return(nil, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), []interface{}{}, payload["callers"])
			},
		},
		{
			name:   "authorized flag is required",
			method: http.MethodPut,
			path:   "/admin/authorizations/" + callerHex,
			body:   []byte(`{}`),
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "authorized is required", payload["error"])
			},
		},
		{
			name:   "revoke",
			method: http.MethodPut,
			path:   "/admin/authorizations/" + callerHex,
			body:   []byte(`{"authorized":false}`),
			setupMock: func() {
				s.service.EXPECT().Authorize(mock.Anything, admin, caller, false).Return(vo.AuthorizedCaller{Caller: caller}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), false, payload["authorized"])
			},
		},
		{
			name:   "non admin",
			method: http.MethodPut,
			path:   "/admin/authorizations/" + callerHex,
			body:   []byte(`{"authorized":true}`),
			setupMock: func() {
				s.service.EXPECT().Authorize(mock.Anything, admin, caller, true).Return(vo.AuthorizedCaller{}, vo.ErrPermissionDenied)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				assert.Equal(s.T(), fiber.StatusForbidden, resp.StatusCode)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			s.app.Use(withClient(adminHex))
			s.handler.Register(s.app)
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _ := performJSONRequest(s.app, tc.method, tc.path, tc.body, nil)
			if resp == nil {
				s.T().Fatal("failed to execute request")
			}
			tc.assertion(resp, payload)
		})
	}
}

func TestAdminAuthorizationHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminAuthorizationHandlerSuite))
}
