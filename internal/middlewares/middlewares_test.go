package middlewares

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v3"
	idempotencymocks "github.com/joshuarp/vrf-coordinator/internal/mock/shared/idempotency"
	jwtmocks "github.com/joshuarp/vrf-coordinator/internal/mock/shared/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	sharedidempotency "github.com/joshuarp/vrf-coordinator/internal/shared/idempotency"
	sharedjwt "github.com/joshuarp/vrf-coordinator/internal/shared/jwt"
	sharedratelimit "github.com/joshuarp/vrf-coordinator/internal/shared/ratelimit"
)

func doRequest(app *fiber.App, method, path string, body []byte, headers map[string]string) (*http.Response, map[string]interface{}, []byte, error) {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if len(body) > 0 {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	if err != nil {
		return nil, nil, nil, err
	}
	defer resp.Body.Close()
	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, nil, err
	}

	parsed := map[string]interface{}{}
	_ = json.Unmarshal(rawBody, &parsed)

	return resp, parsed, rawBody, nil
}

type HTTPJWTMiddlewareSuite struct {
	suite.Suite

	tokenManager *jwtmocks.TokenManager
	app          *fiber.App
}

func (s *HTTPJWTMiddlewareSuite) SetupTest() {
	s.tokenManager = jwtmocks.NewTokenManager(s.T())
	s.app = fiber.New()
	s.app.Post("/auth/token", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	protected := s.app.Group("", NewHTTPJWTMiddleware(s.tokenManager))
	protected.Get("/secure", func(c fiber.Ctx) error {
		claims, _ := c.Locals(LocalJWTClaims).(*sharedjwt.Claims)
		return c.JSON(fiber.Map{
			"client_id": ClientIDFromContext(c),
			"subject":   claims.Subject,
		})
	})
}

func (s *HTTPJWTMiddlewareSuite) TestNewHTTPJWTMiddleware_TableDriven() {
	verifyErr := errors.New("invalid")

	tests := []struct {
		name      string
		method    string
		path      string
		headers   map[string]string
		setupMock func()
		assertion func(*http.Response, map[string]interface{})
	}{
		{
			name:   "routes outside the group stay public",
			method: http.MethodPost,
			path:   "/auth/token",
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), true, payload["ok"])
			},
		},
		{
			name:    "missing authorization header",
			method:  http.MethodGet,
			path:    "/secure",
			headers: map[string]string{},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing or invalid authorization header", payload["error"])
			},
		},
		{
			name:   "missing bearer token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer   ",
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing or invalid authorization header", payload["error"])
			},
		},
		{
			name:   "invalid token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer token-123",
			},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(nil, verifyErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "invalid token", payload["error"])
			},
		},
		{
			name:   "valid token",
			method: http.MethodGet,
			path:   "/secure",
			headers: map[string]string{
				fiber.HeaderAuthorization: "Bearer token-123",
			},
			setupMock: func() {
				s.tokenManager.EXPECT().Verify(mock.Anything, "token-123").Return(&sharedjwt.Claims{Subject: "0x00000000000000000000000000000000000000c1"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusOK, resp.StatusCode)
				assert.Equal(s.T(), "0x00000000000000000000000000000000000000c1", payload["client_id"])
				assert.Equal(s.T(), "0x00000000000000000000000000000000000000c1", payload["subject"])
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()
			if tc.setupMock != nil {
				tc.setupMock()
			}

			resp, payload, _, err := doRequest(s.app, tc.method, tc.path, nil, tc.headers)
			require.NoError(s.T(), err)
			tc.assertion(resp, payload)
		})
	}
}

func TestHTTPJWTMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPJWTMiddlewareSuite))
}

type HTTPRequestIdempotencyMiddlewareSuite struct {
	suite.Suite

	store *idempotencymocks.Store
	app   *fiber.App
}

func (s *HTTPRequestIdempotencyMiddlewareSuite) SetupTest() {
	s.store = idempotencymocks.NewStore(s.T())
	s.app = fiber.New()
}

func (s *HTTPRequestIdempotencyMiddlewareSuite) TestNewHTTPRequestIdempotencyMiddleware_TableDriven() {
	acquireErr := errors.New("acquire failed")
	completeErr := errors.New("complete failed")
	responseBody := []byte(`{"ok":true}`)

	tests := []struct {
		name      string
		storeNil  bool
		clientID  string
		headers   map[string]string
		body      []byte
		setupMock func(store *idempotencymocks.Store)
		assertion func(*http.Response, map[string]interface{}, []byte)
	}{
		{
			name:     "store not available",
			storeNil: true,
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "idempotency store is not available", payload["error"])
			},
		},
		{
			name:     "missing authenticated client",
			clientID: "",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusUnauthorized, resp.StatusCode)
				assert.Equal(s.T(), "missing authenticated client", payload["error"])
			},
		},
		{
			name:     "missing idempotency key",
			clientID: "0x00000000000000000000000000000000000000c1",
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusBadRequest, resp.StatusCode)
				assert.Equal(s.T(), "missing idempotency key", payload["error"])
			},
		},
		{
			name:     "acquire failed",
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{}, acquireErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "failed to acquire idempotency key", payload["error"])
			},
		},
		{
			name:     "replay existing response",
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{
					Type:        sharedidempotency.DecisionReplay,
					StatusCode:  fiber.StatusAccepted,
					Body:        []byte(`{"status":"replay"}`),
					ContentType: fiber.MIMEApplicationJSON,
				}, nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, raw []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusAccepted, resp.StatusCode)
				assert.JSONEq(s.T(), `{"status":"replay"}`, string(raw))
			},
		},
		{
			name:     "request still in progress",
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionInProgress}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), "request is already in progress", payload["error"])
			},
		},
		{
			name:     "idempotency conflict",
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionConflict}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusConflict, resp.StatusCode)
				assert.Equal(s.T(), "idempotency key reused with different payload", payload["error"])
			},
		},
		{
			name:     "invalid decision type",
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: "unknown"}, nil)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "invalid idempotency state", payload["error"])
			},
		},
		{
			name:     "complete failed",
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionAcquired}, nil)
				store.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return(completeErr)
			},
			assertion: func(resp *http.Response, payload map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusInternalServerError, resp.StatusCode)
				assert.Equal(s.T(), "failed to persist idempotency response", payload["error"])
			},
		},
		{
			name:     "scopes the key to the lower-cased client",
			clientID: "0x00000000000000000000000000000000000000C1",
			headers:  map[string]string{IdempotencyKeyHeader: " idem-2 "},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				matches := mock.MatchedBy(func(request sharedidempotency.Request) bool {
					return request.Scope == "requests:0x00000000000000000000000000000000000000c1" &&
						request.Key == "idem-2" &&
						request.RequestHash != ""
				})
				store.EXPECT().Acquire(mock.Anything, matches).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionAcquired}, nil)
				store.EXPECT().Complete(mock.Anything, matches, mock.MatchedBy(func(response sharedidempotency.StoredResponse) bool {
					return response.StatusCode == fiber.StatusCreated && string(response.Body) == `{"ok":true}`
				})).Return(nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, _ []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
			},
		},
		{
			name:     "acquired and persisted",
			clientID: "0x00000000000000000000000000000000000000c1",
			headers:  map[string]string{IdempotencyKeyHeader: "idem-1"},
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			setupMock: func(store *idempotencymocks.Store) {
				store.EXPECT().Acquire(mock.Anything, mock.Anything).Return(sharedidempotency.Decision{Type: sharedidempotency.DecisionAcquired}, nil)
				store.EXPECT().Complete(mock.Anything, mock.Anything, mock.Anything).Return(nil)
			},
			assertion: func(resp *http.Response, _ map[string]interface{}, raw []byte) {
				require.NotNil(s.T(), resp)
				assert.Equal(s.T(), fiber.StatusCreated, resp.StatusCode)
				assert.JSONEq(s.T(), string(responseBody), string(raw))
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			s.SetupTest()

			var middleware fiber.Handler
			if tc.storeNil {
				middleware = NewHTTPRequestIdempotencyMiddleware(nil, "requests")
			} else {
				if tc.setupMock != nil {
					tc.setupMock(s.store)
				}
				middleware = NewHTTPRequestIdempotencyMiddleware(s.store, "requests")
			}

			s.app.Use(func(c fiber.Ctx) error {
				if tc.clientID != "" {
					c.Locals(LocalClientID, tc.clientID)
				}
				return c.Next()
			})
			s.app.Post("/requests", middleware, func(c fiber.Ctx) error {
				return c.Status(fiber.StatusCreated).Send(responseBody)
			})

			resp, payload, raw, err := doRequest(s.app, http.MethodPost, "/requests", tc.body, tc.headers)
			require.NoError(s.T(), err)
			tc.assertion(resp, payload, raw)
		})
	}
}

func (s *HTTPRequestIdempotencyMiddlewareSuite) TestRequestHash_TableDriven() {
	tests := []struct {
		name        string
		method      string
		path        string
		clientID    string
		body        []byte
		other       []byte
		otherClient string
		assertFn    func(string, string)
	}{
		{
			name:     "same payload produces same hash",
			method:   "post",
			path:     " /requests ",
			clientID: " 0x00000000000000000000000000000000000000C1 ",
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			other:    []byte(`{"requester":"0xe1","quantity":3}`),
			assertFn: func(left, right string) {
				assert.Equal(s.T(), left, right)
			},
		},
		{
			name:        "different client produces different hash",
			method:      "POST",
			path:        "/requests",
			clientID:    "0x00000000000000000000000000000000000000c1",
			body:        []byte(`{"requester":"0xe1","quantity":3}`),
			other:       []byte(`{"requester":"0xe1","quantity":3}`),
			otherClient: "0x00000000000000000000000000000000000000c2",
			assertFn: func(left, right string) {
				assert.NotEqual(s.T(), left, right)
			},
		},
		{
			name:     "different payload produces different hash",
			method:   "POST",
			path:     "/requests",
			clientID: "0x00000000000000000000000000000000000000c1",
			body:     []byte(`{"requester":"0xe1","quantity":3}`),
			other:    []byte(`{"requester":"0xe1","quantity":4}`),
			assertFn: func(left, right string) {
				assert.NotEqual(s.T(), left, right)
			},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			first := requestHash(tc.method, tc.path, tc.clientID, tc.body)
			otherClient := tc.clientID
			if tc.otherClient != "" {
				otherClient = tc.otherClient
			}
			second := requestHash(tc.method, tc.path, otherClient, tc.other)
			tc.assertFn(first, second)
		})
	}
}

func TestHTTPRequestIdempotencyMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(HTTPRequestIdempotencyMiddlewareSuite))
}

type stubRateLimiter struct {
	result  sharedratelimit.Result
	err     error
	lastKey string
}

func (s *stubRateLimiter) AllowKey(_ context.Context, key string) (sharedratelimit.Result, error) {
	s.lastKey = key
	return s.result, s.err
}

func (s *stubRateLimiter) ResetKey(_ context.Context, _ string) error {
	return nil
}

func (s *stubRateLimiter) Close() error {
	return nil
}

func TestHTTPRateLimitMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name          string
		limiter       *stubRateLimiter
		keyExtractor  func(c fiber.Ctx) string
		expectedCode  int
		expectedError string
		assertHeaders bool
		expectedKey   string
	}{
		{
			name:          "allows request and sets headers",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: true, Limit: 20, Remaining: 19, ResetAt: time.Unix(200, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "requests:client:test-client" },
			expectedCode:  fiber.StatusOK,
			assertHeaders: true,
			expectedKey:   "requests:client:test-client",
		},
		{
			name:          "rejects when limit exceeded",
			limiter:       &stubRateLimiter{result: sharedratelimit.Result{Allowed: false, Limit: 20, Remaining: 0, RetryAfter: 5 * time.Second, ResetAt: time.Unix(250, 0)}},
			keyExtractor:  func(c fiber.Ctx) string { return "requests:client:test-client" },
			expectedCode:  fiber.StatusTooManyRequests,
			expectedError: "rate limit exceeded",
			expectedKey:   "requests:client:test-client",
		},
		{
			name:          "returns internal error when limiter fails",
			limiter:       &stubRateLimiter{err: errors.New("boom")},
			keyExtractor:  func(c fiber.Ctx) string { return "requests:client:test-client" },
			expectedCode:  fiber.StatusInternalServerError,
			expectedError: "internal server error",
			expectedKey:   "requests:client:test-client",
		},
		{
			name:          "passes through when limiter is nil",
			limiter:       nil,
			keyExtractor:  func(c fiber.Ctx) string { return "requests:client:test-client" },
			expectedCode:  fiber.StatusOK,
			expectedError: "",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				c.Locals(LocalClientID, "test-client")
				return c.Next()
			})

			var limiter sharedratelimit.Limiter
			if tc.limiter != nil {
				limiter = tc.limiter
			}

			app.Use(NewHTTPRateLimitMiddleware(RateLimitConfig{
				Limiter:      limiter,
				KeyExtractor: tc.keyExtractor,
			}))

			app.Get("/limited", func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{"ok": true})
			})

			resp, payload, _, err := doRequest(app, http.MethodGet, "/limited", nil, nil)
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)

			if tc.expectedError != "" {
				assert.Equal(t, tc.expectedError, payload["error"])
			}

			if tc.assertHeaders {
				assert.Equal(t, "20", resp.Header.Get("X-RateLimit-Limit"))
				assert.Equal(t, "19", resp.Header.Get("X-RateLimit-Remaining"))
			}

			if tc.limiter != nil {
				assert.Equal(t, tc.expectedKey, tc.limiter.lastKey)
			}
		})
	}
}

type recordedObservation struct {
	method string
	route  string
	status int
}

type stubHTTPObserver struct {
	observations []recordedObservation
}

func (s *stubHTTPObserver) HTTPObserved(method, route string, status int, _ time.Duration) {
	s.observations = append(s.observations, recordedObservation{method: method, route: route, status: status})
}

func TestHTTPRoleMiddleware_TableDriven(t *testing.T) {
	tests := []struct {
		name         string
		claims       *sharedjwt.Claims
		roles        []string
		expectedCode int
		expectedErr  string
	}{
		{
			name:         "missing claims",
			roles:        []string{"admin"},
			expectedCode: fiber.StatusUnauthorized,
			expectedErr:  "missing authenticated client",
		},
		{
			name:         "role not in audience",
			claims:       &sharedjwt.Claims{Subject: "client-1", Audience: []string{"minter"}},
			roles:        []string{"admin"},
			expectedCode: fiber.StatusForbidden,
			expectedErr:  "insufficient role",
		},
		{
			name:         "one of several roles matches",
			claims:       &sharedjwt.Claims{Subject: "client-1", Audience: []string{"admin"}},
			roles:        []string{"minter", "admin"},
			expectedCode: fiber.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				if tc.claims != nil {
					c.Locals(LocalJWTClaims, tc.claims)
				}
				return c.Next()
			})
			app.Use(NewHTTPRoleMiddleware(tc.roles...))
			app.Get("/admin", func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{"ok": true})
			})

			resp, payload, _, err := doRequest(app, http.MethodGet, "/admin", nil, nil)
			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, tc.expectedCode, resp.StatusCode)
			if tc.expectedErr != "" {
				assert.Equal(t, tc.expectedErr, payload["error"])
			}
		})
	}
}

func TestHTTPMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	observer := &stubHTTPObserver{}
	app := fiber.New()
	app.Use(NewHTTPMetricsMiddleware(observer))
	app.Get("/commitments/:caller/:requester", func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "commitment not found"})
	})

	resp, _, _, err := doRequest(app, http.MethodGet, "/commitments/0xc1/0xe1", nil, nil)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	require.Len(t, observer.observations, 1)
	assert.Equal(t, recordedObservation{
		method: http.MethodGet,
		route:  "/commitments/:caller/:requester",
		status: fiber.StatusNotFound,
	}, observer.observations[0])
}

func TestHTTPMetricsMiddleware_NilObserverPassesThrough(t *testing.T) {
	app := fiber.New()
	app.Use(NewHTTPMetricsMiddleware(nil))
	app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	resp, _, _, err := doRequest(app, http.MethodGet, "/healthz", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestKeyExtractors(t *testing.T) {
	tests := []struct {
		name      string
		clientID  string
		extractor func(c fiber.Ctx) string
		expected  string
	}{
		{
			name:      "per client uses the authenticated client",
			clientID:  "0xc1",
			extractor: PerClientKeyExtractor("requests"),
			expected:  "requests:client:0xc1",
		},
		{
			name:      "per client falls back to ip",
			extractor: PerClientKeyExtractor("requests"),
			expected:  "requests:ip:0.0.0.0",
		},
		{
			name:      "per ip ignores the client",
			clientID:  "0xc1",
			extractor: PerIPKeyExtractor("force_reveal"),
			expected:  "force_reveal:ip:0.0.0.0",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			limiter := &stubRateLimiter{result: sharedratelimit.Result{Allowed: true, Limit: 1, Remaining: 0, ResetAt: time.Unix(100, 0)}}
			app := fiber.New()
			app.Use(func(c fiber.Ctx) error {
				if tc.clientID != "" {
					c.Locals(LocalClientID, tc.clientID)
				}
				return c.Next()
			})
			app.Use(NewHTTPRateLimitMiddleware(RateLimitConfig{
				Limiter:      limiter,
				KeyExtractor: tc.extractor,
				Skipper:      SkipHealthCheck,
			}))
			app.Get("/limited", func(c fiber.Ctx) error {
				return c.JSON(fiber.Map{"ok": true})
			})

			resp, _, _, err := doRequest(app, http.MethodGet, "/limited", nil, nil)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)
			assert.Equal(t, tc.expected, limiter.lastKey)
		})
	}
}

func TestHTTPRecoveryMiddleware_ConvertsPanic(t *testing.T) {
	app := fiber.New()
	app.Use(NewHTTPRecoveryMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	app.Get("/panic", func(c fiber.Ctx) error {
		panic("boom")
	})

	resp, _, _, err := doRequest(app, http.MethodGet, "/panic", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
}
