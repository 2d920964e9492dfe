package zz

import (
	"github.com/spf13/cobra"
	"github.com/wal-g/tracelog"
	"github.com/wal-g/zz/internal"
)

const (
	DecompressAllShortDescription = "Decompresses several files concurrently into one directory"
	IntoFlag                      = "into"
	IntoDescription               = "directory receiving one output per input (default: next to each input)"
)

var intoDirectory string

// decompressAllCmd represents the xa command
var decompressAllCmd = &cobra.Command{
	Use:     "xa input...",
	Aliases: []string{"extract-all"},
	Short:   DecompressAllShortDescription,
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := internal.HandleDecompressAll(args, intoDirectory)
		tracelog.ErrorLogger.FatalOnError(err)
	},
}

func init() {
	Cmd.AddCommand(decompressAllCmd)
	decompressAllCmd.Flags().StringVar(&intoDirectory, IntoFlag, "", IntoDescription)
}
