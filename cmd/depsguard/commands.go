package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZettaPloom/DepsGuard/internal/git"
	"github.com/ZettaPloom/DepsGuard/internal/github"
	"github.com/ZettaPloom/DepsGuard/internal/rules"
	"github.com/ZettaPloom/DepsGuard/internal/scanner"
	"github.com/ZettaPloom/DepsGuard/internal/ui"
)

const defaultWorkers = 4

// runScan drives the whole audit: authenticate, load rules, list the
// organization's repositories, then scan each one. Configuration
// errors and listing failures are fatal; a single repository's
// failure only skips that repository.
func runScan(cmd *cobra.Command, args []string) error {
	org, rulesPath := args[0], args[1]
	useSSH, _ := cmd.Flags().GetBool("ssh")
	workers, _ := cmd.Flags().GetInt("workers")

	ui.Header()
	defer ui.Footer()

	token := viper.GetString("github-token")
	if token == "" {
		return fmt.Errorf("no GitHub token found: set GITHUB_TOKEN or GH_TOKEN, or pass --github-token")
	}

	ruleSet, err := rules.Load(rulesPath)
	if err != nil {
		return err
	}
	ui.Info("Loaded %d rules from %s", len(ruleSet), rulesPath)

	ui.Info("Listing repositories for %s...", ui.Bold(org))
	client := github.NewClient(token)
	repos, err := client.ListOrgRepos(cmd.Context(), org)
	if err != nil {
		return err
	}
	ui.Success("Found %d repositories", len(repos))
	ui.BlankLine()

	scan := scanner.New(git.NewSyncer(org, useSSH), ruleSet)

	var flagged, skipped int
	scan.ScanAll(repos, workers, func(res scanner.Result) {
		reportResult(res)
		if res.Err != nil {
			skipped++
		} else if res.Matched() {
			flagged++
		}
	})

	ui.BlankLine()
	ui.Info("Scanned %d repositories: %s flagged, %d skipped",
		len(repos), ui.Bold(fmt.Sprintf("%d", flagged)), skipped)
	if flagged == 0 {
		ui.Success("No compromised versions found")
	}

	// Matches are findings, not failures: the process exits 0 either way.
	return nil
}

// reportResult prints one repository's outcome. Match lines go to
// stdout so they can be piped; status lines go through ui.
func reportResult(res scanner.Result) {
	switch {
	case res.Err != nil:
		ui.Warn("%s: skipped: %v", res.Repo, res.Err)

	case res.Lockfiles == 0:
		ui.DimMsg("%s: no lockfiles", res.Repo)

	case res.Matched():
		if res.Stale {
			ui.Warn("%s: pull failed, scanned existing checkout", res.Repo)
		}
		for _, m := range res.Matches {
			fmt.Printf("%s: %s in %s (%s)\n", res.Repo, m.Rule, m.File, m.Strategy)
		}
		ui.Fail("%s: %d match(es)", res.Repo, len(res.Matches))

	default:
		if res.Stale {
			ui.Warn("%s: pull failed, scanned existing checkout", res.Repo)
		}
		ui.Success("%s: clean", res.Repo)
	}
}
