package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gopfly/gopfly/cmd/check"
	"github.com/gopfly/gopfly/cmd/send"
	"github.com/gopfly/gopfly/cmd/stream"
	"github.com/gopfly/gopfly/cmd/util"
	"github.com/gopfly/gopfly/internal/logging"
	"github.com/gopfly/gopfly/ipc/transport"
)

const (
	Version = "1.0.2"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "gopfly",
		Short: "projectFly telemetry bridge client",
		Long: fmt.Sprintf(`gopfly (v%s)

A client for the projectFly companion service. Connects to the service's
local Unix socket and transmits fixed-layout flight telemetry records,
originally built as a Linux alternative to the native X-Plane plugin.`, Version),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlags(cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return logging.Init(viper.GetString("log-level"), viper.GetString("log-format"))
		},
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gopfly",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("gopfly v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add Commands
	RootCmd.AddCommand(send.SendCmd)
	RootCmd.AddCommand(stream.StreamCmd)
	RootCmd.AddCommand(check.CheckCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "socket"
	RootCmd.PersistentFlags().String(key, transport.DefaultSocketPath, util.WrapString("Path of the companion service socket. The service always listens at the default; overriding is a diagnostic affordance"))
	key = "log-level"
	RootCmd.PersistentFlags().String(key, "info", util.WrapString("log level (debug, info, warn, error)"))
	key = "log-format"
	RootCmd.PersistentFlags().String(key, "console", util.WrapString("log format (json, console)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
