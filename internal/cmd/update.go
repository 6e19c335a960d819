package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	oerrors "github.com/create-zk-app/cza/internal/errors"
	"github.com/create-zk-app/cza/internal/output"
	"github.com/create-zk-app/cza/internal/update"
	"github.com/create-zk-app/cza/internal/version"
)

// NewUpdateCmd creates the update command.
func NewUpdateCmd() *cobra.Command {
	var flagCheck bool

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update cza to the latest release",
		Long: `Update cza to the latest published release.

Queries the GitHub releases feed, compares versions, and replaces the
running binary when a newer release exists. Use --check to only report
whether an update is available.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			checker := update.NewChecker()

			release, err := checker.LatestRelease(cmd.Context())
			if err != nil {
				return fatal(&oerrors.DetailError{
					Type:    "update failed",
					Message: err.Error(),
					Hint:    "Check your network connection and try again.",
					Cause:   err,
				})
			}

			current := version.Version
			newer, err := update.IsNewer(current, release.TagName)
			if err != nil {
				return fatal(err)
			}
			if !newer {
				output.Success(fmt.Sprintf("cza is up to date (%s)", current))
				return nil
			}

			if flagCheck {
				output.Println(fmt.Sprintf("Update available: %s -> %s", current, release.TagName))
				output.Hint("Run 'cza update' to install it.")
				return nil
			}

			err = output.RunWithSpinner(cmd.Context(), fmt.Sprintf("Updating to %s...", release.TagName), func() error {
				return checker.Upgrade(cmd.Context(), release)
			})
			if err != nil {
				return fatal(err)
			}

			output.Success(fmt.Sprintf("Updated to %s", release.TagName))
			return nil
		},
	}

	cmd.Flags().BoolVar(&flagCheck, "check", false, "only check for a newer release")

	return cmd
}
