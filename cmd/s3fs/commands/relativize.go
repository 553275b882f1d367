package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s3fs-go/s3fs/pkg/s3path"
)

var relativizeCmd = &cobra.Command{
	Use:   "relativize <base> <target>",
	Short: "Compute the relative path from a base to a target",
	Long: `Compute the relative path from a base to a target, such that
resolving the result against the base yields the target again.

Both paths must be absolute and share a bucket.

Example:
  s3fs relativize /bucket/a/b /bucket/a/b/c/d`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := s3path.New(args[0])
		if err != nil {
			return err
		}
		target, err := s3path.New(args[1])
		if err != nil {
			return err
		}

		rel, err := base.Relativize(target)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), rel)
		return nil
	},
}
