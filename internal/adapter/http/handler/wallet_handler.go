package handler

import (
	"github.com/HemantKumar01/ARKane-Wallet/internal/adapter/http/dto"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/apperror"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler handles wallet lifecycle endpoints.
type WalletHandler struct {
	svc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc ports.WalletService) *WalletHandler {
	return &WalletHandler{svc: svc}
}

// CreateWallet handles POST /create_wallet.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	result, err := h.svc.CreateWallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.CreateWalletResponse{WalletID: result.WalletID})
}

// RestoreWallet handles POST /restore_wallet.
func (h *WalletHandler) RestoreWallet(c *gin.Context) {
	var req dto.RestoreWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.RestoreWallet(c.Request.Context(), req.WalletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AddressResponse{
		WalletID:        result.WalletID,
		OnchainAddress:  result.Addresses.Onchain,
		OffchainAddress: result.Addresses.Offchain,
	})
}

// GetAddress handles GET /get_address/:wallet_id.
func (h *WalletHandler) GetAddress(c *gin.Context) {
	result, err := h.svc.GetAddresses(c.Request.Context(), c.Param("wallet_id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AddressResponse{
		WalletID:        result.WalletID,
		OnchainAddress:  result.Addresses.Onchain,
		OffchainAddress: result.Addresses.Offchain,
	})
}

// GetBalance handles GET /get_balance/:wallet_id.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	walletID := c.Param("wallet_id")

	bal, err := h.svc.GetBalance(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		WalletID: walletID,
		OffchainBalance: dto.OffchainBalancePart{
			Spendable: bal.Offchain.Spendable,
			Expired:   bal.Offchain.Expired,
		},
		BoardingBalance: dto.BoardingBalancePart{
			Spendable: bal.Boarding.Spendable,
			Expired:   bal.Boarding.Expired,
			Pending:   bal.Boarding.Pending,
		},
	})
}
