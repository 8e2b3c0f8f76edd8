// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package health

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Check reports an error while the checked component is unhealthy
type Check func() error

// Handler returns ok while every check passes and the failed check otherwise
func Handler(checks map[string]Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for name, check := range checks {
			err := check()
			if err != nil {
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(fmt.Sprintf("%s: %s", name, err)))
				return
			}
		}
		_, _ = w.Write([]byte("ok"))
	}
}

// StartHealthEndpoint starts /health endpoint on provided port
func StartHealthEndpoint(port uint16, checks map[string]Check) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", Handler(checks))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	log.Info().Msgf("Starting /health endpoint on port %d", port)
	err := srv.ListenAndServe()
	if err != nil {
		log.Err(err).Msgf("Failed starting health server")
	}
}
