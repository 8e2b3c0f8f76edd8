// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/sprintertech/sprinter-teleport/app"
)

var (
	runCMD = &cobra.Command{
		Use:   "run",
		Short: "Run the teleport status API and forwarder call relayer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run()
		},
	}

	versionCMD = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("v%s\n", app.Version)
		},
	}
)
