package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/investment-app/portfolio-api/internal/pkg/config"
	"github.com/investment-app/portfolio-api/pkg/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Investment portfolio API",
	Long: `Investment portfolio API manages accounts, the investment catalog and the
holdings each account keeps in it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		envErr := godotenv.Load(envFile)

		var err error
		cfg, err = config.Load(cmd.Context())
		if err != nil {
			return err
		}

		log = logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})
		if envErr != nil {
			log.Debug().Str("file", envFile).Msg("no env file loaded; relying on the environment")
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file loaded before the configuration")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
