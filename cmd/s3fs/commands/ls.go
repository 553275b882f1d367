package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/s3fs-go/s3fs/internal/cli/output"
	"github.com/s3fs-go/s3fs/pkg/s3path"
)

var lsCmd = &cobra.Command{
	Use:   "ls <path>",
	Short: "List the children of a path in the store",
	Long: `List the direct children of an absolute path in the configured
store. Key prefixes list as directories, objects with their size and
modification time.

Examples:
  s3fs ls /bucket
  s3fs ls /bucket/docs`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := s3path.New(args[0])
		if err != nil {
			return err
		}

		st, err := newStore(cmd.Context())
		if err != nil {
			return err
		}
		defer reportMetrics()

		children, err := st.List(cmd.Context(), p)
		if err != nil {
			return err
		}

		table := output.NewTable("NAME", "TYPE", "SIZE", "MODIFIED")
		for _, child := range children {
			attrs := child.Attributes()
			name := child.FileName().String()
			if attrs.IsDirectory() {
				table.AddRow(name+"/", "dir", "", "")
				continue
			}
			table.AddRow(
				name,
				"object",
				strconv.FormatInt(attrs.Size, 10),
				attrs.LastModified.Format("2006-01-02 15:04:05"),
			)
		}
		table.Render(cmd.OutOrStdout())
		return nil
	},
}
