package handler

import (
	"errors"

	"github.com/HemantKumar01/ARKane-Wallet/internal/adapter/http/dto"
	"github.com/HemantKumar01/ARKane-Wallet/internal/core/ports"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/apperror"
	"github.com/HemantKumar01/ARKane-Wallet/pkg/response"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles funds movement endpoints: faucet, settle and
// offchain sends.
type TransactionHandler struct {
	svc ports.WalletService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(svc ports.WalletService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Faucet handles POST /faucet.
func (h *TransactionHandler) Faucet(c *gin.Context) {
	var req dto.FaucetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.RequestFaucet(c.Request.Context(), ports.FaucetRequest{
		OnchainAddress: req.OnchainAddress,
		AmountBTC:      req.Amount.String(),
	})
	if err != nil {
		// A failing faucet command keeps the original embedded-error shape;
		// everything else uses the standard error body.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && appErr.Code == "FCT_001" {
			c.JSON(appErr.HTTPStatus, dto.FaucetResponse{
				Success: false,
				Address: req.OnchainAddress,
				Amount:  req.Amount.String(),
				Error:   appErr.Message,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.FaucetResponse{
		Success: true,
		Address: req.OnchainAddress,
		Amount:  req.Amount.String(),
		Txid:    result.Txid,
	})
}

// Settle handles POST /settle.
func (h *TransactionHandler) Settle(c *gin.Context) {
	var req dto.SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.Settle(c.Request.Context(), ports.SettleRequest{
		WalletID:  req.WalletID,
		ToAddress: req.ToAddress,
	})
	if err != nil {
		// Round-level outcomes keep the original embedded-error shape.
		var appErr *apperror.AppError
		if errors.As(err, &appErr) && (appErr.Code == "TXN_004" || appErr.Code == "TXN_006") {
			c.JSON(appErr.HTTPStatus, dto.SettleResponse{
				WalletID: req.WalletID,
				Success:  false,
				Error:    appErr.Message,
			})
			return
		}
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SettleResponse{
		WalletID: result.WalletID,
		Success:  true,
		Txid:     result.Txid,
		FeeSats:  result.Fee,
	})
}

// SendToAddress handles POST /send_to_ark_address.
func (h *TransactionHandler) SendToAddress(c *gin.Context) {
	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.svc.SendToAddress(c.Request.Context(), ports.SendRequest{
		WalletID: req.WalletID,
		Address:  req.Address,
		Amount:   req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.SendResponse{
		WalletID:  result.WalletID,
		ToAddress: result.ToAddress,
		Amount:    result.Amount,
		Txid:      result.Txid,
	})
}
