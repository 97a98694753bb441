package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/piresc/tumpangan/internal/utils"
	"github.com/piresc/tumpangan/services/payment"
	"github.com/piresc/tumpangan/services/wallet"
)

// WalletHandler handles HTTP requests for wallet and payment operations
type WalletHandler struct {
	ledger   wallet.Ledger
	payments payment.Processor
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(ledger wallet.Ledger, payments payment.Processor) *WalletHandler {
	return &WalletHandler{ledger: ledger, payments: payments}
}

// RegisterRoutes registers the wallet API routes
func (h *WalletHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/wallets/:owner_id", h.GetWallet)
	e.PUT("/wallets/:owner_id/payout-method", h.SetPayoutMethod)
	e.POST("/wallets/:owner_id/withdrawals", h.RequestWithdrawal)
	e.POST("/wallets/:owner_id/credit-packs", h.PurchaseCreditPack)
	e.POST("/wallets/:owner_id/checklist", h.ToggleChecklistItem)
	e.GET("/wallets/:owner_id/payments", h.ListPayments)
}

// GetWallet handles wallet retrieval requests
func (h *WalletHandler) GetWallet(c echo.Context) error {
	ownerID := c.Param("owner_id")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "Invalid owner ID")
	}

	w := h.ledger.GetWallet(ownerID)
	return utils.SuccessResponse(c, http.StatusOK, "Wallet retrieved successfully", w)
}

type payoutMethodRequest struct {
	Brand string `json:"brand"`
	Last4 string `json:"last4"`
}

// SetPayoutMethod handles payout destination registration requests
func (h *WalletHandler) SetPayoutMethod(c echo.Context) error {
	ownerID := c.Param("owner_id")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "Invalid owner ID")
	}

	var req payoutMethodRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Brand == "" || req.Last4 == "" {
		return utils.BadRequestResponse(c, "brand and last4 are required")
	}

	h.ledger.SetPayoutMethod(ownerID, req.Brand, req.Last4)
	return utils.SuccessResponse(c, http.StatusOK, "Payout method saved successfully", h.ledger.GetWallet(ownerID))
}

// RequestWithdrawal handles monthly withdrawal requests
func (h *WalletHandler) RequestWithdrawal(c echo.Context) error {
	ownerID := c.Param("owner_id")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "Invalid owner ID")
	}

	result := h.ledger.RequestMonthlyWithdrawal(ownerID)
	if !result.OK {
		return utils.SuccessResponse(c, http.StatusConflict, "Withdrawal not available", result)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Withdrawal processed successfully", result)
}

type creditPackRequest struct {
	PackSize int    `json:"pack_size"`
	Price    string `json:"price"`
}

// PurchaseCreditPack handles ride credit pack purchase requests
func (h *WalletHandler) PurchaseCreditPack(c echo.Context) error {
	ownerID := c.Param("owner_id")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "Invalid owner ID")
	}

	var req creditPackRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PackSize <= 0 {
		return utils.BadRequestResponse(c, "pack_size must be positive")
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return utils.BadRequestResponse(c, "Invalid price")
	}

	if !h.ledger.PurchaseRideCreditPack(ownerID, req.PackSize, price) {
		return utils.ConflictResponse(c, "Insufficient funds for credit pack")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Credit pack purchased successfully", h.ledger.GetWallet(ownerID))
}

type checklistRequest struct {
	Item string `json:"item"`
}

// ToggleChecklistItem handles onboarding checklist toggle requests
func (h *WalletHandler) ToggleChecklistItem(c echo.Context) error {
	ownerID := c.Param("owner_id")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "Invalid owner ID")
	}

	var req checklistRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Item == "" {
		return utils.BadRequestResponse(c, "item is required")
	}

	state := h.ledger.ToggleChecklistItem(ownerID, req.Item)
	return utils.SuccessResponse(c, http.StatusOK, "Checklist item toggled successfully", map[string]interface{}{
		"item":  req.Item,
		"state": state,
	})
}

// ListPayments handles passenger receipt listing requests
func (h *WalletHandler) ListPayments(c echo.Context) error {
	ownerID := c.Param("owner_id")
	if ownerID == "" {
		return utils.BadRequestResponse(c, "Invalid owner ID")
	}

	receipts := h.payments.GetPaymentsForPassenger(ownerID)
	return utils.SuccessResponse(c, http.StatusOK, "Payments retrieved successfully", receipts)
}
