package zz

import (
	"github.com/spf13/cobra"
	"github.com/wal-g/tracelog"
	"github.com/wal-g/zz/internal"
)

const (
	FormatsShortDescription = "Lists the recognized extensions"
	PrettyFlag              = "pretty"
	JSONFlag                = "json"
)

var (
	// formatsCmd represents the formats command
	formatsCmd = &cobra.Command{
		Use:   "formats",
		Short: FormatsShortDescription,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			err := internal.HandleFormatList(pretty, json)
			tracelog.ErrorLogger.FatalOnError(err)
		},
	}
	pretty = false
	json   = false
)

func init() {
	Cmd.AddCommand(formatsCmd)

	formatsCmd.Flags().BoolVar(&pretty, PrettyFlag, false, "Prints more readable output")
	formatsCmd.Flags().BoolVar(&json, JSONFlag, false, "Prints output in json format")
}
