package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/beanboi7/chyp8/emu/config"
	homedir "github.com/mitchellh/go-homedir"
	"github.com/retroenv/retrogolib/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	logger  *log.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "chyp8 [command]",
	Short: "Chip-8 emulator using Go",
	Long:  "A Chip-8 emulator written from scratch that mimics the functionalities of a Chip-8, an interpretted language originally written for the COSMIC-VIP/ Telmac 8 bit systems.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = config.CreateLogger(viper.GetBool(config.KeyDebug), viper.GetBool(config.KeyQuiet))
		if file := viper.ConfigFileUsed(); file != "" {
			logger.Debug("Using config file", log.String("file", file))
		}
	},
	SilenceUsage: true,
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.chyp8.yaml)")
	flags.Bool(config.KeyDebug, false, "enable debug logging")
	flags.BoolP(config.KeyQuiet, "q", false, "only log errors")
	bindFlags(flags.Lookup(config.KeyDebug), flags.Lookup(config.KeyQuiet))

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(disasmCmd)
}

// Execute runs the command line interface.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".chyp8" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".chyp8")
	}

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// The default config file is optional, one given by flag is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			cobra.CheckErr(err)
		}
	}
}
