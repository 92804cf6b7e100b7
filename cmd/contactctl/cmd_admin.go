package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go-portfolio-backend/internal/usecase"
	"go-portfolio-backend/pkg/auth"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// tokenCmd issues an inbox access token
func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the admin inbox",
		Long: `Issue an HS256 bearer token for GET /v1/admin/contact-messages.

The token is signed with ADMIN_JWT_SECRET (read from the environment or .env).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			secret := os.Getenv("ADMIN_JWT_SECRET")
			if secret == "" {
				return errors.New("ADMIN_JWT_SECRET is not set")
			}
			token, err := auth.IssueAdminToken(secret, subject, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "owner", "Token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}

// profileCmd checks a site profile document
func newProfileCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Check a site profile file",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := usecase.LoadSiteProfile(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %s (%d skills, %d projects, %d testimonials)\n",
				profile.Profile.Name, len(profile.Skills), len(profile.Projects), len(profile.Testimonials))
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "file", "configs/profile.yaml", "Profile YAML file")
	return cmd
}
