package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/investment-app/portfolio-api/internal/core/service"
	"github.com/investment-app/portfolio-api/internal/core/validation"
	"github.com/investment-app/portfolio-api/internal/infrastructure/auth"
	"github.com/investment-app/portfolio-api/internal/infrastructure/queue"
	"github.com/investment-app/portfolio-api/pkg/logger"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for an existing account",
	Long: `Checks the account credentials and prints a signed token. The token is
accepted by the server when IDENTITY_MODE=jwt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" || password == "" {
			return errors.New("--email and --password are required")
		}
		if cfg.Identity.JWTSecret == "" {
			return errors.New("JWT_SECRET must be set to issue tokens")
		}

		b, err := openBackend(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		defer b.close(context.WithoutCancel(cmd.Context()), log)

		accounts := service.NewAccountService(
			b.accounts,
			validation.New(),
			queue.NewDispatcher(logger.Component("serializer")),
			service.NewIdentityResolver(b.accounts, 1, time.Minute, logger.Component("identity")),
			logger.Component("accounts"),
		)
		acc, err := accounts.Authenticate(cmd.Context(), email, password)
		if err != nil {
			return fmt.Errorf("authenticate %s: %w", email, err)
		}

		token, err := auth.NewIssuer(cfg.Identity.JWTSecret, cfg.Identity.JWTTTL).Issue(acc)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	tokenCmd.Flags().String("email", "", "Email of the account to issue the token for")
	tokenCmd.Flags().String("password", "", "Password of the account")
}
