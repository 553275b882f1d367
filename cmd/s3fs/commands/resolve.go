package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s3fs-go/s3fs/pkg/s3path"
)

var resolveSibling bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <base> <other>",
	Short: "Resolve a path against a base path",
	Long: `Resolve a path against a base path.

An absolute other path wins unchanged; a relative one is appended to the
base. With --sibling the other path is resolved against the base's parent.

Examples:
  s3fs resolve /bucket/docs report.pdf
  s3fs resolve --sibling /bucket/docs/a.txt b.txt`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := s3path.New(args[0])
		if err != nil {
			return err
		}

		var resolved s3path.Path
		if resolveSibling {
			resolved, err = base.ResolveSiblingString(args[1])
		} else {
			resolved, err = base.ResolveString(args[1])
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), resolved)
		return nil
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&resolveSibling, "sibling", false, "resolve against the base path's parent")
}
