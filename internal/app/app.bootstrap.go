package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/fx"

	"github.com/joshuarp/vrf-coordinator/internal/shared/config"
	sharedhash "github.com/joshuarp/vrf-coordinator/internal/shared/hash"
	sharedjwt "github.com/joshuarp/vrf-coordinator/internal/shared/jwt"
	sharedlog "github.com/joshuarp/vrf-coordinator/internal/shared/log"
	"github.com/joshuarp/vrf-coordinator/internal/shared/metrics"
	"github.com/joshuarp/vrf-coordinator/internal/shared/uid"
)

const envPrefix = "VRF"

type configBinIn struct {
	fx.In
	Bin string `name:"bin"`
}

func New(bin string, modules ...fx.Option) *fx.App {
	normalizedBin := strings.TrimSpace(strings.ToLower(bin))
	opts := []fx.Option{
		fx.Supply(
			fx.Annotate(
				normalizedBin,
				fx.ResultTags(`name:"bin"`),
			),
		),
		CoreModule(),
	}
	opts = append(opts, modules...)
	opts = append(opts, fx.Invoke(registerLifecycle))
	return fx.New(opts...)
}

func CoreModule() fx.Option {
	return fx.Module("core",
		fx.Provide(
			provideConfig,
			sharedlog.NewJSONLogger,
			provideRedisClient,
			provideFiberApp,
			providePasswordHasher,
			provideJWTTokenManager,
			provideUIDGenerator,
			metrics.NewRecorder,
			provideRouterGroups,
		),
		fx.Invoke(registerResourceCleanup),
	)
}

func provideConfig(in configBinIn) (config.ConfigProvider, error) {
	loadOrder := configLoadOrder(in.Bin)

	var lastErr error
	for _, opts := range loadOrder {
		provider, err := config.Init(opts)
		if err == nil {
			return provider, nil
		}
		lastErr = err
	}

	return nil, lastErr
}

func configLoadOrder(bin string) []config.Options {
	bin = strings.TrimSpace(strings.ToLower(bin))

	loadOrder := make([]config.Options, 0, 4)
	if bin == "api" || bin == "keeper" {
		loadOrder = append(loadOrder,
			config.Options{
				YAMLPath:  fmt.Sprintf("config.%s.yaml", bin),
				EnvPath:   fmt.Sprintf(".env.%s", bin),
				EnvPrefix: envPrefix,
			},
			config.Options{
				YAMLPath:  fmt.Sprintf("config.%s.yaml.example", bin),
				EnvPath:   fmt.Sprintf(".env.%s.example", bin),
				EnvPrefix: envPrefix,
			},
		)
	}

	return append(loadOrder,
		config.Options{
			YAMLPath:  "config.yaml",
			EnvPath:   ".env",
			EnvPrefix: envPrefix,
		},
		config.Options{
			YAMLPath:  "config.yaml.example",
			EnvPath:   ".env.example",
			EnvPrefix: envPrefix,
		},
	)
}

func provideFiberApp(cfg config.ConfigProvider) *fiber.App {
	readTimeout := cfg.GetDuration("server.read_timeout")
	if readTimeout <= 0 {
		readTimeout = 30 * time.Second
	}

	writeTimeout := cfg.GetDuration("server.write_timeout")
	if writeTimeout <= 0 {
		writeTimeout = 30 * time.Second
	}

	return fiber.New(fiber.Config{
		AppName:      "vrf-coordinator",
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})
}

func providePasswordHasher(cfg config.ConfigProvider) (sharedhash.Hasher, error) {
	return sharedhash.New(sharedhash.Options{
		Strategy: sharedhash.StrategyBcrypt,
		Cost:     cfg.GetInt("security.bcrypt_cost"),
	})
}

func provideJWTTokenManager(cfg config.ConfigProvider) (sharedjwt.TokenManager, error) {
	secret := cfg.GetString("security.jwt.secret")
	if secret == "" {
		secret = cfg.GetString("jwt.secret")
	}
	if secret == "" {
		secret = "change-me-please-use-strong-secret-in-production"
	}

	if len(secret) < 32 {
		secret = secret + strings.Repeat("x", 32-len(secret))
	}

	ttl := cfg.GetDuration("security.jwt.ttl")
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	tokenManager, err := sharedjwt.New(sharedjwt.Options{
		Strategy:  sharedjwt.StrategyHMAC,
		Secret:    []byte(secret),
		Algorithm: "HS256",
		TTL:       ttl,
		Issuer:    cfg.GetString("security.jwt.issuer"),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init JWT manager: %w", err)
	}

	return tokenManager, nil
}

func provideUIDGenerator(cfg config.ConfigProvider) (uid.UIDGenerator, error) {
	generator, err := uid.New(uid.Options{
		Strategy: uid.Strategy(strings.TrimSpace(strings.ToLower(cfg.GetString("uid.strategy")))),
		NodeID:   int64(cfg.GetInt("uid.node_id")),
	})
	if err != nil {
		return nil, fmt.Errorf("app: failed to init uid generator: %w", err)
	}
	return generator, nil
}
