package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/email"
	"go-portfolio-backend/pkg/logger"

	"github.com/spf13/cobra"
)

type messageFlags struct {
	name        string
	email       string
	message     string
	messageFile string
}

func (f *messageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Sender name")
	cmd.Flags().StringVar(&f.email, "email", "", "Sender email address")
	cmd.Flags().StringVar(&f.message, "message", "", "Message body")
	cmd.Flags().StringVar(&f.messageFile, "message-file", "", "Read the message body from a file (- for stdin)")
	cmd.MarkFlagsMutuallyExclusive("message", "message-file")
}

func (f *messageFlags) fields(stdin io.Reader) (domain.FormFields, error) {
	fields := domain.FormFields{Name: f.name, Email: f.email, Message: f.message}
	switch f.messageFile {
	case "":
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fields, fmt.Errorf("read stdin: %w", err)
		}
		fields.Message = string(b)
	default:
		b, err := os.ReadFile(f.messageFile)
		if err != nil {
			return fields, fmt.Errorf("read message file: %w", err)
		}
		fields.Message = string(b)
	}
	return fields, nil
}

// validateCmd checks a message against the form rules
func newValidateCmd() *cobra.Command {
	var flags messageFlags
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a message against the contact form rules",
		Long: `Check a message against the contact form rules and print the first
problem the visitor would see. Exits non-zero when the message is invalid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := flags.fields(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if verr := domain.Validate(fields); verr != nil {
				return fmt.Errorf("%s (%s)", verr.Message, verr.Kind)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// sendCmd delivers one message through the transport configured in the environment
func newSendCmd() *cobra.Command {
	var (
		flags   messageFlags
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "send",
		Short: "Validate and deliver a message with the configured transport",
		Long: `Validate and deliver a message with the transport selected by MAIL_PROVIDER.

Configuration is read from the environment (and .env) exactly like the API server.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields, err := flags.fields(cmd.InOrStdin())
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			sender, err := email.NewSender(cfg)
			if err != nil {
				return err
			}
			if timeout <= 0 {
				timeout = cfg.ContactSubmitTimeout
			}

			fallback := cfg.ContactFallbackEmail
			if fallback == "" {
				fallback = "the address on the site"
			}
			c, err := usecase.NewContactController(usecase.ContactControllerConfig{
				Sender:        sender,
				FallbackEmail: fallback,
				Timeout:       timeout,
				Logger:        logger.Discard(),
			})
			if err != nil {
				return err
			}
			defer c.Close()
			if err := c.SetFields(fields); err != nil {
				return err
			}

			status := c.Submit(cmd.Context())
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", status.State, status.Message)
			if status.State != domain.StateSuccess {
				return errors.New("message not delivered")
			}
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Transport deadline (default CONTACT_SUBMIT_TIMEOUT)")
	return cmd
}
