package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s3fs-go/s3fs/pkg/s3path"
)

var parseCmd = &cobra.Command{
	Use:   "parse <path>",
	Short: "Parse a path and print its structure",
	Long: `Parse a path and print its structure.

Examples:
  s3fs parse /bucket/docs/report.pdf
  s3fs parse docs/report.pdf`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := s3path.New(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "path:      %s\n", p)
		fmt.Fprintf(out, "absolute:  %v\n", p.IsAbsolute())
		if p.IsAbsolute() {
			fmt.Fprintf(out, "bucket:    %s\n", p.Bucket())
			uri, _ := p.URI()
			fmt.Fprintf(out, "uri:       %s\n", uri)
		}
		fmt.Fprintf(out, "key:       %s\n", p.Key())
		fmt.Fprintf(out, "segments:  %d\n", p.NameCount())
		for i, name := range p.Names() {
			fmt.Fprintf(out, "  [%d] %s\n", i, name)
		}
		if parent := p.Parent(); parent != nil {
			fmt.Fprintf(out, "parent:    %s\n", parent)
		}
		fmt.Fprintf(out, "file name: %s\n", p.FileName())
		return nil
	},
}
