// Command contactctl checks and sends contact messages from the shell and
// issues inbox access tokens.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "contactctl",
		Short: "Operate the portfolio contact form",
		Long: `Operate the portfolio contact form without the HTTP server.

Available subcommands:
  validate - Check a message against the form rules
  send     - Validate and deliver a message with the configured transport
  token    - Issue a bearer token for the admin inbox
  profile  - Check a site profile file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newValidateCmd(), newSendCmd(), newTokenCmd(), newProfileCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
