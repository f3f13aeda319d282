package stream

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gopfly/gopfly/cmd/util"
	"github.com/gopfly/gopfly/ipc/client"
	"github.com/gopfly/gopfly/ipc/serializer"
	"github.com/gopfly/gopfly/ipc/transport/unix"
	"github.com/gopfly/gopfly/telemetry"
)

var (
	// StreamCmd replays a JSON-lines telemetry file over one connection
	StreamCmd = &cobra.Command{
		Use:   "stream [file]",
		Short: "Replay a JSON-lines telemetry file to the companion service",
		Long: util.WrapString("Reads telemetry records from a JSON-lines file (one record per line, " +
			"fields named as in the wire schema) and sends them in order over a single connection, " +
			"pacing them at the given interval."),
		Args: cobra.ExactArgs(1),
		RunE: runStream,
	}
)

func init() {
	key := "interval"
	StreamCmd.Flags().Duration(key, time.Second, util.WrapString("delay between records"))
}

func runStream(cmd *cobra.Command, args []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open replay file: %w", err)
	}
	defer file.Close()

	c, err := client.New(util.GetClientConfig(), unix.NewUnixConnector(), serializer.NewWireSerializer())
	if err != nil {
		log.Fatal().Err(err).Msg("companion service not reachable, is projectFly running?")
	}
	defer c.Close()

	interval := viper.GetDuration("interval")
	jsonSer := serializer.NewJSONSerializer()

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		if len(scanner.Bytes()) == 0 {
			continue
		}

		var rec telemetry.TelemetryRecord
		if err := jsonSer.Deserialize(scanner.Bytes(), &rec); err != nil {
			return fmt.Errorf("line %d: invalid record: %w", line, err)
		}

		if err := c.SendRecord(&rec); err != nil {
			log.Error().Err(err).Int("line", line).Msg("send failed")
		} else {
			log.Debug().Int("line", line).Int32("altitude", rec.Altitude).Msg("record sent")
		}

		time.Sleep(interval)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read replay file: %w", err)
	}

	sent, failed := c.Stats()
	log.Info().Uint64("sent", sent).Uint64("failed", failed).Msg("replay finished")

	if failed > 0 {
		return fmt.Errorf("%d of %d records failed to send", failed, sent+failed)
	}
	return nil
}
