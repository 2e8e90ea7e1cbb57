package cmd

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssargent/yxdb/pkg/format"
	"github.com/ssargent/yxdb/pkg/store"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <file.yxdb>",
	Short: "Export a YXDB file to CSV",
	Long: `Export the records of a YXDB file as CSV. The first row holds
the field names; null values export as empty cells.

Example:
  yxdb export sales.yxdb -o sales.csv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFromContext(cmd)

		out := io.Writer(os.Stdout)
		if path, _ := cmd.Flags().GetString("output"); path != "" {
			file, err := os.Create(path)
			if err != nil {
				return err
			}
			defer file.Close()
			out = file
		}

		r, err := store.NewReader(store.ReaderConfig{FilePath: args[0]})
		if err != nil {
			return err
		}
		defer r.Close()

		if len(r.Metadata().Records) == 0 {
			return store.ErrSchemaRequired
		}

		w := csv.NewWriter(out)
		w.Comma = rune(cfg.CSV.Delimiter[0])

		schema := r.Metadata().Records[0]
		names := make([]string, 0, len(schema.Fields))
		for _, f := range schema.Fields {
			names = append(names, f.Name)
		}
		if err := w.Write(names); err != nil {
			return err
		}

		row := make([]string, len(schema.Fields))
		for {
			values, err := r.Next()
			if err == io.EOF {
				break
			}
			if err != nil {
				return err
			}
			for i, v := range values {
				row[i] = formatValue(v)
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	},
}

func formatValue(v format.Value) string {
	if v.Null {
		return ""
	}
	return strconv.FormatFloat(v.Double, 'g', -1, 64)
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "Output file (default stdout)")
	rootCmd.AddCommand(exportCmd)
}
