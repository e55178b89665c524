package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/cyphera/cyphera-circles/internal/auth"
	"github.com/cyphera/cyphera-circles/internal/db"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/cyphera/cyphera-circles/internal/services"
	"github.com/gin-gonic/gin"
)

// FaucetHandler serves testnet fund claims for authenticated wallets
type FaucetHandler struct {
	faucet interfaces.FaucetService
}

func NewFaucetHandler(faucet interfaces.FaucetService) *FaucetHandler {
	return &FaucetHandler{faucet: faucet}
}

// ClaimResponse is returned for a successful claim
type ClaimResponse struct {
	RequestID      string   `json:"request_id"`
	TransactionIDs []string `json:"transaction_ids"`
}

// DisbursementResponse is the public view of a disbursement request
type DisbursementResponse struct {
	ID             string   `json:"id"`
	WalletAddress  string   `json:"wallet_address"`
	Status         string   `json:"status"`
	RequestedAt    *int64   `json:"requested_at"`
	TransactionIDs []string `json:"transaction_ids"`
	FailedStep     *int32   `json:"failed_step,omitempty"`
	FailureReason  string   `json:"failure_reason,omitempty"`
	CompletedAt    *int64   `json:"completed_at,omitempty"`
}

// FaucetStatusResponse reports the caller's latest claim and next eligible time
type FaucetStatusResponse struct {
	WalletAddress  string                `json:"wallet_address"`
	Eligible       bool                  `json:"eligible"`
	NextEligibleAt int64                 `json:"next_eligible_at"`
	Latest         *DisbursementResponse `json:"latest,omitempty"`
}

func toDisbursementResponse(r db.DisbursementRequest) *DisbursementResponse {
	resp := &DisbursementResponse{
		ID:             r.ID.String(),
		WalletAddress:  r.WalletAddress,
		Status:         string(r.Status),
		RequestedAt:    unixOrNil(r.RequestedAt),
		TransactionIDs: r.TransactionIds,
		CompletedAt:    unixOrNil(r.CompletedAt),
	}
	if resp.TransactionIDs == nil {
		resp.TransactionIDs = []string{}
	}
	if r.FailedStep.Valid {
		step := r.FailedStep.Int32
		resp.FailedStep = &step
	}
	if r.FailureReason.Valid {
		resp.FailureReason = r.FailureReason.String
	}
	return resp
}

// Claim godoc
// @Summary      Claim testnet funds
// @Description  Sends a gas drip and a token drip to the authenticated wallet. One claim per wallet per 24 hours.
// @Tags         faucet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ClaimResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      429  {object}  ErrorResponse
// @Failure      502  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /faucet/claim [post]
func (h *FaucetHandler) Claim(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	wallet, hasWallet := auth.GetWalletAddress(c)
	if !ok || !hasWallet {
		sendError(c, http.StatusUnauthorized, "Authentication required", auth.ErrMissingToken)
		return
	}

	if !h.faucet.Enabled() {
		sendError(c, http.StatusServiceUnavailable, "Faucet is not configured", services.ErrServiceUnavailable)
		return
	}

	result, err := h.faucet.RequestDisbursement(c.Request.Context(), userID, wallet)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidWalletAddress):
			sendError(c, http.StatusBadRequest, "Invalid wallet address", err)
		case errors.Is(err, services.ErrServiceUnavailable):
			sendError(c, http.StatusServiceUnavailable, "Faucet is not configured", err)
		case errors.Is(err, services.ErrRateLimited):
			sendError(c, http.StatusTooManyRequests, "Wallet already claimed in the last 24 hours", err)
		case errors.Is(err, services.ErrDisbursementFailed):
			sendError(c, http.StatusBadGateway, "Failed to send faucet funds", err)
		default:
			sendError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, ClaimResponse{
		RequestID:      result.RequestID.String(),
		TransactionIDs: result.TransactionIDs,
	})
}

// Status godoc
// @Summary      Faucet status
// @Description  Returns the latest claim for the authenticated wallet and when it may claim again
// @Tags         faucet
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  FaucetStatusResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /faucet/status [get]
func (h *FaucetHandler) Status(c *gin.Context) {
	wallet, ok := auth.GetWalletAddress(c)
	if !ok {
		sendError(c, http.StatusUnauthorized, "Authentication required", auth.ErrMissingToken)
		return
	}

	status, err := h.faucet.GetStatus(c.Request.Context(), wallet)
	if err != nil {
		if errors.Is(err, services.ErrInvalidWalletAddress) {
			sendError(c, http.StatusBadRequest, "Invalid wallet address", err)
			return
		}
		handleDBError(c, err, "Disbursement not found")
		return
	}

	resp := FaucetStatusResponse{
		WalletAddress:  strings.ToLower(wallet),
		Eligible:       status.Eligible,
		NextEligibleAt: status.NextEligibleAt.Unix(),
	}
	if status.Latest != nil {
		resp.Latest = toDisbursementResponse(*status.Latest)
	}
	c.JSON(http.StatusOK, resp)
}
