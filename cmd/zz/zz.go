package zz

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wal-g/zz/internal"
)

const ShortDescription = "Decompress and unpack files by their extension"

// These variables are here only to show current version. They are set in makefile during build process
var ZzVersion = "devel"
var GitRevision = "devel"
var BuildDate = "devel"

var Cmd = &cobra.Command{
	Use:     "zz",
	Short:   ShortDescription,
	Version: ZzVersion + "\t" + GitRevision + "\t" + BuildDate,
	PersistentPreRun: func(*cobra.Command, []string) {
		internal.Configure()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the Cmd.
func Execute() {
	if err := Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(internal.InitConfig)

	Cmd.PersistentFlags().StringVar(&internal.CfgFile, "config", "", "config file (default is $HOME/.zz.yaml)")
	internal.AddConfigFlags(Cmd)
	Cmd.InitDefaultVersionFlag()
}
