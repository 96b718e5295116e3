package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/valger11/suomifi-ui-components/internal/config"
	"github.com/valger11/suomifi-ui-components/internal/themesource"
	ui "github.com/valger11/suomifi-ui-components/internal/ui/components"
	"github.com/valger11/suomifi-ui-components/pkg/diff"
)

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Validate and fetch theme documents",
	}
	cmd.AddCommand(newThemeValidateCmd())
	cmd.AddCommand(newThemeDiffCmd())
	cmd.AddCommand(newThemeFetchCmd(rootFlags))
	return cmd
}

func newThemeValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a theme document against the token set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return newCommandError("validate", fmt.Sprintf("reading %s", path), err, "Check that the file exists and is readable.")
			}

			file, err := config.ParseThemeFile(path, data)
			if err != nil {
				return newCommandError("validate", fmt.Sprintf("parsing %s", path), err, "Token keys must match 'catalog colors' and values must be #rrggbb.")
			}
			theme, err := file.Resolve()
			if err != nil {
				return newCommandError("validate", "resolving theme", err, "Remove unknown token keys from the document.")
			}

			fmt.Fprintf(cmd.OutOrStdout(), "✓ theme %q is valid (base %s, %d overrides)\n", file.Name, theme.Name, len(file.Tokens))
			return nil
		},
	}
}

func newThemeDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file>",
		Short: "Show which tokens a theme document changes from its base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			data, err := os.ReadFile(path)
			if err != nil {
				return newCommandError("diff", fmt.Sprintf("reading %s", path), err, "Check that the file exists and is readable.")
			}
			file, err := config.ParseThemeFile(path, data)
			if err != nil {
				return newCommandError("diff", fmt.Sprintf("parsing %s", path), err, "Run 'catalog theme validate' for details.")
			}

			base, err := ui.ThemeByName(file.Base)
			if err != nil {
				return newCommandError("diff", "resolving base theme", err, fmt.Sprintf("Use one of: %s.", strings.Join(ui.ThemeNames(), ", ")))
			}
			resolved, err := file.Resolve()
			if err != nil {
				return newCommandError("diff", "resolving theme", err, "Remove unknown token keys from the document.")
			}

			before, after := tokenListing(base.Tokens()), tokenListing(resolved.Tokens())
			out := diff.Unified(before, after, base.Name, file.Name)
			if out == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "theme %q matches %s\n", file.Name, base.Name)
				return nil
			}
			_, added := diff.Changed(before, after)
			fmt.Fprint(cmd.OutOrStdout(), out)
			fmt.Fprintf(cmd.OutOrStdout(), "%d tokens changed\n", added)
			return nil
		},
	}
}

func tokenListing(tokens []ui.ColorToken) []byte {
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%-16s %s\n", tok.Key, strings.ToLower(tok.Hex))
	}
	return []byte(b.String())
}

type fetchOptions struct {
	source config.ThemeSource
	out    string
}

func newThemeFetchCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &fetchOptions{}

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch a theme document from a git repository",
		Example: `  catalog theme fetch --repo https://github.com/example/themes --path brand.yaml
  catalog theme fetch --repo ./themes --ref main --path brand.yaml --out brand.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeFetch(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.source.Repo, "repo", "", "Repository URL or local path")
	cmd.Flags().StringVar(&opts.source.Ref, "ref", "", "Branch to check out (default: remote HEAD)")
	cmd.Flags().StringVar(&opts.source.Path, "path", "", "Theme file path inside the repository")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the theme to this file instead of stdout")
	_ = cmd.MarkFlagRequired("repo")
	_ = cmd.MarkFlagRequired("path")

	return cmd
}

func runThemeFetch(cmd *cobra.Command, rootFlags *rootFlags, opts *fetchOptions) error {
	app, err := loadApp(cmd, rootFlags)
	if err != nil {
		return err
	}

	file, err := themesource.New(app.Logger).Fetch(cmd.Context(), opts.source)
	if err != nil {
		return newCommandError("fetch", fmt.Sprintf("fetching %s from %s", opts.source.Path, opts.source.Repo), err, "Check the repository URL, branch and path.")
	}

	data, err := yaml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode theme: %w", err)
	}

	if opts.out == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.out, data, 0o644); err != nil {
		return newCommandError("fetch", fmt.Sprintf("writing %s", opts.out), err, "Check that the target directory exists.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✓ wrote theme %q to %s\n", file.Name, opts.out)
	return nil
}
