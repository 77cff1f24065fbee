package handler

import (
	"github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/http/middleware"
	redisStore "github.com/EthGlobal-BA-Builders/gotagota/internal/adapter/storage/redis"
	"github.com/EthGlobal-BA-Builders/gotagota/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	IngestSvc      ports.FileIngestor
	PayrollSvc     ports.PayrollService
	ClaimSvc       ports.ClaimService
	RelaySvc       ports.RelayService
	LedgerSvc      ports.ClaimLedger
	TokenCodec     ports.ClaimTokenCodec
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(10 << 20)) // 10 MB; covers spreadsheet uploads

	// Health check (deep; verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	importHandler := NewImportHandler(deps.IngestSvc)
	payrollHandler := NewPayrollHandler(deps.PayrollSvc, deps.LedgerSvc, deps.TokenCodec)
	payrolls := v1.Group("/payrolls")
	{
		payrolls.POST("/import", rl("import"), importHandler.Import)
		payrolls.POST("", rl("payrolls"), payrollHandler.Create)
		payrolls.GET("", rl("payrolls"), payrollHandler.List)
		payrolls.GET("/:id", rl("payrolls"), payrollHandler.Get)
		payrolls.GET("/:id/entries/:entry_id/unclaimed", rl("payrolls"), payrollHandler.Unclaimed)
	}

	// Claim links circulate publicly; no auth, tightest rate limits.
	claimHandler := NewClaimHandler(deps.ClaimSvc)
	claims := v1.Group("/claims")
	{
		claims.GET("/:token", rl("claims"), claimHandler.Preview)
		claims.POST("/:token", rl("claims"), claimHandler.Execute)
	}

	transferHandler := NewTransferHandler(deps.RelaySvc)
	transfers := v1.Group("/transfers")
	{
		transfers.POST("/relay", rl("transfers"), transferHandler.Relay)
	}

	return r
}
