// Package webapi is the HTTP shell of the ledger. It binds and validates
// requests, calls the account service and renders results or problem
// documents. Sub-packages:
// - account: account and deposit endpoints
// - transaction: transfer and ledger entry endpoints
// - common: envelopes, validation and failure mapping
package webapi

import (
	"errors"

	_ "github.com/amirasaad/ledger/docs" // registers the OpenAPI document
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	accountweb "github.com/amirasaad/ledger/webapi/account"
	"github.com/amirasaad/ledger/webapi/common"
	transactionweb "github.com/amirasaad/ledger/webapi/transaction"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
)

// SetupApp Initialize Fiber with custom configuration
func SetupApp(a *app.App) *fiber.App {
	fiberCfg := fiber.Config{
		AppName:      "ledger",
		ErrorHandler: errorHandler,
	}
	if a.Config != nil && a.Config.Server != nil && len(a.Config.Server.TrustedProxies) > 0 {
		fiberCfg.ProxyHeader = a.Config.Server.ProxyHeader
		fiberCfg.EnableTrustedProxyCheck = true
		fiberCfg.TrustedProxies = a.Config.Server.TrustedProxies
	}
	fiberApp := fiber.New(fiberCfg)
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled: true,
	}))

	if rl := rateLimit(a.Config); rl != nil {
		fiberApp.Use(limiter.New(*rl))
	}
	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))

	// Health check endpoint
	fiberApp.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger API is running!")
	})

	accountweb.Routes(fiberApp, a.AccountService)
	transactionweb.Routes(fiberApp, a.AccountService)
	return fiberApp
}

// errorHandler renders errors that escape the handlers. Fiber errors keep
// their status; anything else is a generic 500 with no internal detail.
func errorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return common.ErrorResponseJSON(c, fe.Code, fe.Message, nil)
	}
	return common.ErrorResponseJSON(c, fiber.StatusInternalServerError, "Internal Server Error", common.ReasonServerError)
}

// rateLimit builds the limiter config, or nil when limiting is disabled.
func rateLimit(cfg *config.App) *limiter.Config {
	if cfg == nil || cfg.RateLimit == nil || cfg.RateLimit.MaxRequests <= 0 {
		return nil
	}
	return &limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		// c.IP honours the proxy header only for trusted proxies.
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "rate limit exceeded")
		},
	}
}
