package check

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gopfly/gopfly/cmd/util"
	"github.com/gopfly/gopfly/ipc/client"
	"github.com/gopfly/gopfly/ipc/serializer"
	"github.com/gopfly/gopfly/ipc/transport/unix"
)

var (
	// CheckCmd probes whether the companion service is listening
	CheckCmd = &cobra.Command{
		Use:   "check",
		Short: "Check whether the companion service is reachable",
		RunE:  runCheck,
	}
)

func runCheck(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	config := util.GetClientConfig()

	c, err := client.New(config, unix.NewUnixConnector(), serializer.NewWireSerializer())
	if err != nil {
		return fmt.Errorf("companion service not reachable at %s: %w", config.SocketPath, err)
	}
	defer c.Close()

	fmt.Printf("companion service listening at %s\n", c.SocketPath())
	return nil
}
