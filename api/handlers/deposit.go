package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/bridger"
)

type DepositHandler struct {
	l1     L1Client
	l2     bridger.ChainClient
	l3     bridger.ChainClient
	status DepositStatusReader
}

func NewDepositHandler(l1 L1Client, l2 bridger.ChainClient, l3 bridger.ChainClient, status DepositStatusReader) *DepositHandler {
	return &DepositHandler{
		l1:     l1,
		l2:     l2,
		l3:     l3,
		status: status,
	}
}

// HandleStatus returns the status of every hop of the token teleport sent in the l1 transaction
func (h *DepositHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	hash, err := txHash(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	receipt, err := h.l1.TransactionReceipt(r.Context(), hash)
	if errors.Is(err, ethereum.NotFound) {
		JSONError(w, fmt.Errorf("deposit %s not found", hash.Hex()), http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, fmt.Errorf("failed fetching deposit: %s", err), http.StatusInternalServerError)
		return
	}

	status, err := h.status.GetDepositStatus(r.Context(), receipt, h.l2, h.l3)
	if errors.Is(err, bridger.ErrNotTeleport) {
		JSONError(w, err, http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Warn().Err(err).Msgf("Failed reading status of deposit %s", hash.Hex())
		JSONError(w, fmt.Errorf("failed reading deposit status: %s", err), http.StatusInternalServerError)
		return
	}

	JSONResponse(w, status)
}

// HandleRelayerInfo returns the relayer info encoded in the calldata of a relayed teleport
func (h *DepositHandler) HandleRelayerInfo(w http.ResponseWriter, r *http.Request) {
	hash, err := txHash(r)
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	tx, _, err := h.l1.TransactionByHash(r.Context(), hash)
	if errors.Is(err, ethereum.NotFound) {
		JSONError(w, fmt.Errorf("deposit %s not found", hash.Hex()), http.StatusNotFound)
		return
	}
	if err != nil {
		JSONError(w, fmt.Errorf("failed fetching deposit: %s", err), http.StatusInternalServerError)
		return
	}

	info, err := bridger.ParseRelayerInfoFromTx(tx.To(), tx.Data())
	if err != nil {
		JSONError(w, err, http.StatusBadRequest)
		return
	}

	JSONResponse(w, info)
}
