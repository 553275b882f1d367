package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s3fs-go/s3fs/pkg/s3path"
)

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show the store attributes behind a path",
	Long: `Fetch and print the attributes of the object or key prefix
behind an absolute path.

Example:
  s3fs stat /bucket/docs/report.pdf`,
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

		attrs, err := st.Stat(cmd.Context(), p)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "path:     %s\n", p)
		if uri, ok := p.URI(); ok {
			fmt.Fprintf(out, "uri:      %s\n", uri)
		}
		if attrs.IsDirectory() {
			fmt.Fprintf(out, "type:     directory\n")
			return nil
		}
		fmt.Fprintf(out, "type:     object\n")
		fmt.Fprintf(out, "size:     %d\n", attrs.Size)
		fmt.Fprintf(out, "modified: %s\n", attrs.LastModified.Format("2006-01-02 15:04:05 MST"))
		if attrs.ETag != "" {
			fmt.Fprintf(out, "etag:     %s\n", attrs.ETag)
		}
		return nil
	},
}
