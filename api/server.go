package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-teleport/api/handlers"
)

func NewRouter(
	depositHandler *handlers.DepositHandler,
	relayHandler *handlers.RelayHandler,
	networkHandler *handlers.NetworkHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/deposits/{txHash}/status", depositHandler.HandleStatus).Methods("GET")
	r.HandleFunc("/v1/deposits/{txHash}/relayer-info", depositHandler.HandleRelayerInfo).Methods("GET")
	r.HandleFunc("/v1/deposits/{txHash}/relay", relayHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/networks/{chainId:[0-9]+}", networkHandler.HandleRequest).Methods("GET")
	return r
}

func Serve(ctx context.Context, addr string, router *mux.Router) {
	server := &http.Server{
		Addr:        addr,
		Handler:     router,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
