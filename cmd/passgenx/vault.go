package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/aretw0/passgenx/pkg/adapters/lifecycle"
)

func newVaultCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault",
		Short: "Manage stored identifiers",
	}
	cmd.AddCommand(
		newVaultGetCmd(a),
		newVaultSetCmd(a),
		newVaultNewCmd(a),
		newVaultRmCmd(a),
		newVaultListCmd(a),
		newVaultStatusCmd(a),
		newVaultWatchCmd(a),
	)
	return cmd
}

func newVaultGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <domain>",
		Short: "Print the identifier stored for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			id, ok := store.GetIdentifier(args[0])
			if !ok {
				return fmt.Errorf("no identifier stored for %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newVaultSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <domain> <identifier>",
		Short: "Store an identifier for a domain",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			if err := store.StoreIdentifier(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Identifier for %s saved.\n", args[0])
			return nil
		},
	}
}

func newVaultNewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new <domain>",
		Short: "Mint, store and print a random identifier for a domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			id, err := store.GenerateAndStore(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newVaultRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <domain>",
		Aliases: []string{"delete"},
		Short:   "Remove a domain from the vault",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			removed, err := store.Delete(args[0])
			if err != nil {
				return err
			}
			if !removed {
				return fmt.Errorf("no identifier stored for %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}

func newVaultListCmd(a *app) *cobra.Command {
	var (
		match    string
		withIDs  bool
		listJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the domains in the vault",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if match != "" && !doublestar.ValidatePattern(match) {
				return fmt.Errorf("invalid --match pattern %q", match)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}

			var domains []string
			for _, d := range store.ListDomains() {
				if match != "" {
					ok, err := doublestar.Match(match, d)
					if err != nil {
						return err
					}
					if !ok {
						continue
					}
				}
				domains = append(domains, d)
			}

			out := cmd.OutOrStdout()
			if listJSON {
				entries := make(map[string]string, len(domains))
				for _, d := range domains {
					id, _ := store.GetIdentifier(d)
					entries[d] = id
				}
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				if withIDs {
					return encoder.Encode(entries)
				}
				if domains == nil {
					domains = []string{}
				}
				return encoder.Encode(domains)
			}

			for _, d := range domains {
				if withIDs {
					id, _ := store.GetIdentifier(d)
					fmt.Fprintf(out, "%s\t%s\n", d, id)
					continue
				}
				fmt.Fprintln(out, d)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&match, "match", "", "Only list domains matching a glob, e.g. '*.example.com'")
	cmd.Flags().BoolVar(&withIDs, "ids", false, "Print identifiers next to domains")
	cmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	return cmd
}

func newVaultStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the vault lives and how it was loaded",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(map[string]any{
				"component": store.ComponentType(),
				"state":     store.State(),
			})
		},
	}
}

func newVaultWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload and report whenever the vault file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := a.openStore()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			events, err := store.Watch(ctx)
			if err != nil {
				return err
			}

			src := lifecycle.NewSource(events)
			if err := src.Start(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)\n", store.Path())
			for e := range src.Events() {
				fmt.Fprintln(cmd.OutOrStdout(), e.String())
			}
			return nil
		},
	}
}
