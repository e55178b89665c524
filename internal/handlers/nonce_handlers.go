package handlers

import (
	"net/http"

	"github.com/cyphera/cyphera-circles/internal/helpers"
	"github.com/cyphera/cyphera-circles/internal/interfaces"
	"github.com/gin-gonic/gin"
)

// NonceHandler lets operators inspect and reset the in-memory nonce cursor
type NonceHandler struct {
	nonces     interfaces.NonceSequencer
	dispatcher interfaces.TransactionDispatcher
}

func NewNonceHandler(nonces interfaces.NonceSequencer, dispatcher interfaces.TransactionDispatcher) *NonceHandler {
	return &NonceHandler{nonces: nonces, dispatcher: dispatcher}
}

// NonceResponse reports the cursor for one address. Nonce is omitted until the cursor is seeded.
type NonceResponse struct {
	Address     string  `json:"address"`
	Initialized bool    `json:"initialized"`
	NextNonce   *uint64 `json:"next_nonce,omitempty"`
}

// resolveAddress uses the address query parameter, falling back to the signing address.
func (h *NonceHandler) resolveAddress(c *gin.Context) (string, bool) {
	address := c.Query("address")
	if address == "" {
		address = h.dispatcher.SignerAddress()
		if address == "" {
			sendError(c, http.StatusServiceUnavailable, "No signing key configured", nil)
			return "", false
		}
	}
	if !helpers.IsAddressValid(address) {
		sendError(c, http.StatusBadRequest, "Invalid address", nil)
		return "", false
	}
	return address, true
}

// GetNonce godoc
// @Summary      Inspect nonce cursor
// @Description  Returns the next nonce the service will use for an address (defaults to the signing address)
// @Tags         admin
// @Produce      json
// @Security     AdminKey
// @Param        address  query  string  false  "Account address"
// @Success      200  {object}  NonceResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /admin/nonce [get]
func (h *NonceHandler) GetNonce(c *gin.Context) {
	address, ok := h.resolveAddress(c)
	if !ok {
		return
	}

	resp := NonceResponse{Address: address}
	if next, initialized := h.nonces.CurrentNonce(address); initialized {
		resp.Initialized = true
		resp.NextNonce = &next
	}
	c.JSON(http.StatusOK, resp)
}

// ResetNonce godoc
// @Summary      Reset nonce cursor
// @Description  Drops the cursor so the next allocation re-reads the ledger's pending nonce
// @Tags         admin
// @Security     AdminKey
// @Param        address  query  string  false  "Account address"
// @Success      204
// @Failure      400  {object}  ErrorResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /admin/nonce/reset [post]
func (h *NonceHandler) ResetNonce(c *gin.Context) {
	address, ok := h.resolveAddress(c)
	if !ok {
		return
	}

	h.nonces.ResetNonce(address)
	c.Status(http.StatusNoContent)
}
