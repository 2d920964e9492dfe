package zz

import (
	"github.com/spf13/cobra"
	"github.com/wal-g/tracelog"
	"github.com/wal-g/zz/internal"
)

const DecompressShortDescription = "Decompresses a file or unpacks an archive, chosen by its extension"

// decompressCmd represents the x command
var decompressCmd = &cobra.Command{
	Use:     "x input [output]",
	Aliases: []string{"e", "decompress", "extract"},
	Short:   DecompressShortDescription,
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		var destination string
		if len(args) > 1 {
			destination = args[1]
		}
		err := internal.HandleDecompressOnce(args[0], destination)
		tracelog.ErrorLogger.FatalOnError(err)
	},
}

func init() {
	Cmd.AddCommand(decompressCmd)
}
