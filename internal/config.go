package internal

import (
	"os/user"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wal-g/tracelog"
)

const (
	LogLevelSetting           = "ZZ_LOG_LEVEL"
	ExtractConcurrencySetting = "ZZ_EXTRACT_CONCURRENCY"
	TarDisableFsyncSetting    = "ZZ_TAR_DISABLE_FSYNC"
)

var (
	CfgFile string

	defaultConfigValues = map[string]string{
		LogLevelSetting:           tracelog.NormalLogLevel,
		ExtractConcurrencySetting: "4",
		TarDisableFsyncSetting:    "false",
	}

	AllowedSettings = map[string]bool{
		LogLevelSetting:           true,
		ExtractConcurrencySetting: true,
		TarDisableFsyncSetting:    true,
	}
)

// AddConfigFlags exposes every allowed setting as a persistent flag, e.g.
// ZZ_EXTRACT_CONCURRENCY as --extract-concurrency.
func AddConfigFlags(Cmd *cobra.Command) {
	cfgFlags := &pflag.FlagSet{}
	for k := range AllowedSettings {
		flagName := toFlagName(k)
		cfgFlags.String(flagName, "", "can be set through this flag or "+k+" variable")
		_ = viper.BindPFlag(k, cfgFlags.Lookup(flagName))
	}
	Cmd.PersistentFlags().AddFlagSet(cfgFlags)
}

func toFlagName(setting string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(setting, "ZZ_")), "_", "-")
}

// InitConfig reads config file and ENV variables if set.
func InitConfig() {
	var globalViper = viper.GetViper()
	globalViper.AutomaticEnv() // read in environment variables that match
	SetDefaultValues(globalViper)
	ReadConfigFromFile(globalViper, CfgFile)
	CheckAllowedSettings(globalViper)
}

// ReadConfigFromFile read config to the viper instance
func ReadConfigFromFile(config *viper.Viper, configFile string) {
	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		// Find home directory.
		usr, err := user.Current()
		if err != nil {
			tracelog.WarningLogger.Printf("Failed to find home directory: %v", err)
			return
		}

		// Search config in home directory with name ".zz" (without extension).
		config.AddConfigPath(usr.HomeDir)
		config.SetConfigName(".zz")
	}

	// If a config file is found, read it in.
	err := config.ReadInConfig()
	if err == nil {
		tracelog.DebugLogger.Println("Using config file:", config.ConfigFileUsed())
	} else if config.ConfigFileUsed() != "" {
		// Config file is found, but parsing failed
		tracelog.WarningLogger.Printf("Failed to parse config file %s. %s.", config.ConfigFileUsed(), err)
	}
}

// SetDefaultValues set default settings to the viper instance
func SetDefaultValues(config *viper.Viper) {
	for setting, value := range defaultConfigValues {
		config.SetDefault(setting, value)
	}
}

func CheckAllowedSettings(config *viper.Viper) {
	for k := range config.AllSettings() {
		k = strings.ToUpper(k)
		if !AllowedSettings[k] {
			tracelog.WarningLogger.Println(k + " is unknown")
		}
	}
}

func ConfigureLogging() error {
	if viper.IsSet(LogLevelSetting) {
		return tracelog.UpdateLogLevel(viper.GetString(LogLevelSetting))
	}
	return nil
}

// Configure applies settings that take effect before any command runs.
func Configure() {
	err := ConfigureLogging()
	if err != nil {
		tracelog.ErrorLogger.Println("Failed to configure logging.")
		tracelog.ErrorLogger.FatalError(err)
	}
}
