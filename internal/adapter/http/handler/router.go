package handler

import (
	"github.com/HemantKumar01/ARKane-Wallet/internal/adapter/http/middleware"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
	Mode           string // gin mode: debug, release, test
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.CORS())
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Deep health check over registered dependencies
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc)
	txHandler := NewTransactionHandler(deps.WalletSvc)

	// Wallet lifecycle
	r.POST("/create_wallet", walletHandler.CreateWallet)
	r.POST("/restore_wallet", walletHandler.RestoreWallet)
	r.GET("/get_address/:wallet_id", walletHandler.GetAddress)
	r.GET("/get_balance/:wallet_id", walletHandler.GetBalance)

	// Funds movement
	r.POST("/faucet", txHandler.Faucet)
	r.POST("/settle", txHandler.Settle)
	r.POST("/send_to_ark_address", txHandler.SendToAddress)

	return r
}
