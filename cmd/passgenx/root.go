package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/passgenx"
)

// envVault overrides the vault location for the CLI only.
const envVault = "PASSGENX_VAULT"

// app carries the persistent flags shared by every command.
type app struct {
	verbose   bool
	vaultPath string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "passgenx",
		Short: "Deterministic password derivation with a local identifier vault",
		Long: `passgenx derives the same password every time from a domain, a master secret
and a per-domain identifier. Only the identifiers are stored, in ~/.passgenx/vault.yml.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
			slog.SetDefault(logger)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&a.vaultPath, "vault", os.Getenv(envVault), "Vault file (default ~/.passgenx/vault.yml, env "+envVault+")")

	rootCmd.AddCommand(
		newGenerateCmd(a),
		newVaultCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// openStore opens the vault selected by the persistent flags.
func (a *app) openStore() (*passgenx.Store, error) {
	opts := []passgenx.Option{passgenx.WithLogger(slog.Default())}
	if a.vaultPath != "" {
		opts = append(opts, passgenx.WithPath(a.vaultPath))
	}
	return passgenx.OpenVault(opts...)
}
