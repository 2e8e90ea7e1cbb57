package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ssargent/yxdb/pkg/store"
)

// infoCmd represents the info command
var infoCmd = &cobra.Command{
	Use:   "info <file.yxdb>",
	Short: "Show header and section layout of a YXDB file",
	Long: `Show the header fields and section offsets of a YXDB file.

Example:
  yxdb info sales.yxdb`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := store.NewReader(store.ReaderConfig{FilePath: args[0]})
		if err != nil {
			return err
		}
		defer r.Close()

		h := r.Header()
		fmt.Printf("%-24s %s\n", "description:", h.DescriptionString())
		fmt.Printf("%-24s %#08x\n", "file id:", h.FileID)
		fmt.Printf("%-24s %s\n", "created:", time.Unix(int64(h.CreationDate), 0).UTC().Format(time.RFC3339))
		fmt.Printf("%-24s %d\n", "records:", h.NumRecords)
		fmt.Printf("%-24s %d\n", "schemas:", len(r.Metadata().Records))
		fmt.Printf("%-24s %t\n", "spatial index:", h.HasSpatialIndex())
		fmt.Printf("%-24s %d code units\n", "metadata length:", h.MetaInfoLength)
		fmt.Printf("%-24s %d\n", "blocks start:", h.StartOfBlocks())
		fmt.Printf("%-24s %d\n", "block index at:", h.RecordBlockIndexPos)
		fmt.Printf("%-24s %d\n", "blocks:", len(r.BlockIndex()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}
