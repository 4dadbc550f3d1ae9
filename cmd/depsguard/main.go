package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZettaPloom/DepsGuard/internal/ui"
)

const version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:   "depsguard <organization> <rules-file>",
	Short: "Scan an organization's repositories for compromised package versions",
	Long: `Scan every repository in a GitHub organization for lockfiles that pin
compromised package versions.

The rules file lists one package per line in the form pkg@v1,v2,v3.
Each repository is cloned (or fast-forwarded) into ./{org}_repos/ and
its recognized lockfiles (package-lock.json, npm-shrinkwrap.json,
yarn.lock, pnpm-lock.yaml) are searched for every rule. Matching is
literal: listing 9.0.36 will not match the range specifier ^9.0.36.

The GitHub token is read from --github-token, GITHUB_TOKEN, or
GH_TOKEN, in that order.`,
	Version:       version,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScan,
}

func init() {
	rootCmd.Flags().Bool("ssh", false, "clone over SSH instead of HTTPS")
	rootCmd.Flags().Int("workers", defaultWorkers, "concurrent repository scans (1 = fully sequential)")
	rootCmd.Flags().String("github-token", "", "GitHub token (defaults to GITHUB_TOKEN or GH_TOKEN)")

	_ = viper.BindPFlag("github-token", rootCmd.Flags().Lookup("github-token"))
	_ = viper.BindEnv("github-token", "GITHUB_TOKEN", "GH_TOKEN")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		ui.Fail("%v", err)
		os.Exit(1)
	}
}
