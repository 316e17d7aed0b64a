package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/passgenx"
	"github.com/aretw0/passgenx/pkg/core"
)

type generateFlags struct {
	identifier    string
	newIdentifier bool
	save          bool
	length        int
	caseType      string
	noDigits      bool
	noSymbols     bool
}

func newGenerateCmd(a *app) *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:     "generate <domain>",
		Aliases: []string{"gen"},
		Short:   "Derive the password for a domain",
		Long: `Derive the password for a domain. The identifier comes from --identifier,
from the vault, or falls back to "default". The master secret is read from the
terminal without echo, or from the first line of stdin when piped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			domain := args[0]

			caseType, err := core.ParseCaseType(f.caseType)
			if err != nil {
				return err
			}
			if f.newIdentifier && f.identifier != "" {
				return fmt.Errorf("%w: --identifier and --new-identifier are mutually exclusive", core.ErrInvalidArgument)
			}

			store, err := a.openStore()
			if err != nil {
				return err
			}

			identifier, source, persist, err := resolveIdentifier(store, domain, f)
			if err != nil {
				return err
			}

			secret, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			req := passgenx.Request{
				Domain:         domain,
				MasterSecret:   secret,
				Identifier:     identifier,
				Length:         f.length,
				Case:           caseType,
				IncludeDigits:  !f.noDigits,
				IncludeSymbols: !f.noSymbols,
			}
			req = req.Normalize()
			if err := req.CheckBounds(); err != nil {
				return err
			}

			pw, err := passgenx.Generate(req)
			if err != nil {
				return err
			}
			if persist {
				if err := store.StoreIdentifier(domain, req.Identifier); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "identifier: %s (%s)\n", req.Identifier, source)
			fmt.Fprintln(cmd.OutOrStdout(), pw)
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.identifier, "identifier", "i", "", "Identifier to use instead of the stored one")
	cmd.Flags().BoolVar(&f.newIdentifier, "new-identifier", false, "Mint and store a new random identifier for the domain")
	cmd.Flags().BoolVar(&f.save, "save", false, "Store --identifier in the vault")
	cmd.Flags().IntVarP(&f.length, "length", "l", core.DefaultLength, fmt.Sprintf("Password length (%d-%d)", core.MinLength, core.MaxLength))
	cmd.Flags().StringVarP(&f.caseType, "case", "c", string(core.CaseBoth), "Letter case: lower, upper, both or none")
	cmd.Flags().BoolVar(&f.noDigits, "no-digits", false, "Exclude digits")
	cmd.Flags().BoolVar(&f.noSymbols, "no-symbols", false, "Exclude symbols")
	return cmd
}

// resolveIdentifier picks the identifier for domain and says where it came
// from. The boolean reports whether the identifier must be stored once the
// password has been derived.
func resolveIdentifier(store *passgenx.Store, domain string, f *generateFlags) (string, string, bool, error) {
	switch {
	case f.newIdentifier:
		id, err := store.NewIdentifier()
		if err != nil {
			return "", "", false, err
		}
		return id, "new", true, nil

	case f.identifier != "":
		if f.save {
			return f.identifier, "flag, saved", true, nil
		}
		return f.identifier, "flag", false, nil
	}

	if id, ok := store.GetIdentifier(domain); ok {
		return id, "vault", false, nil
	}
	return core.DefaultIdentifier, "default", false, nil
}
