package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/ansikit/internal/tabledata"
)

type tableOptions struct {
	Path   string
	CSV    bool
	Header bool
}

func newTableCmd(app *AppContext) *cobra.Command {
	opts := tableOptions{}

	cmd := &cobra.Command{
		Use:   "table FILE|-",
		Short: "Render a YAML or CSV document as a bordered table",
		Long: `Render a table document. YAML documents carry "header" and "rows" keys;
CSV documents hold one row per record. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Path = args[0]
			if err := validateInputPath(opts.Path); err != nil {
				return err
			}
			return runTable(cmd, app, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.CSV, "csv", false, "Read the input as CSV regardless of extension")
	cmd.Flags().BoolVar(&opts.Header, "header", false, "Use the first CSV record as header")
	return cmd
}

func runTable(cmd *cobra.Command, app *AppContext, opts tableOptions) error {
	format := tabledata.DetectFormat(opts.Path)
	if opts.CSV {
		format = tabledata.FormatCSV
	}

	var r io.Reader = cmd.InOrStdin()
	if opts.Path != "-" {
		f, err := os.Open(opts.Path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	doc, err := tabledata.Read(opts.Path, r, format, opts.Header)
	if err != nil {
		return err
	}

	app.Logger.WithFields(map[string]any{"rows": len(doc.Rows), "format": string(format)}).Debug("rendering table")
	return app.Console.Table(doc.Rows, doc.Header)
}
