package send

import (
	"fmt"

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
	// SendCmd builds one telemetry record from flags and transmits it
	SendCmd = &cobra.Command{
		Use:   "send",
		Short: "Send one telemetry record to the companion service",
		Long: util.WrapString("Builds a single telemetry record from the given flags and " +
			"writes it to the companion service socket. Fields that are not set are sent as zero."),
		RunE: runSend,
	}
)

func init() {
	key := "altitude"
	SendCmd.Flags().Int32(key, 0, util.WrapString("altitude in feet MSL"))
	key = "agl"
	SendCmd.Flags().Int32(key, 0, util.WrapString("altitude above ground in feet"))
	key = "groundspeed"
	SendCmd.Flags().Int32(key, 0, util.WrapString("ground speed in knots"))
	key = "ias"
	SendCmd.Flags().Int32(key, 0, util.WrapString("indicated airspeed in knots"))
	key = "heading-true"
	SendCmd.Flags().Int32(key, 0, util.WrapString("true heading in degrees"))
	key = "heading-magnetic"
	SendCmd.Flags().Int32(key, 0, util.WrapString("magnetic heading in degrees"))
	key = "lat"
	SendCmd.Flags().Float64(key, 0, util.WrapString("latitude in decimal degrees"))
	key = "lon"
	SendCmd.Flags().Float64(key, 0, util.WrapString("longitude in decimal degrees"))
	key = "vertical-speed"
	SendCmd.Flags().Int32(key, 0, util.WrapString("vertical speed in feet per minute"))
	key = "landing-vertical-speed"
	SendCmd.Flags().Int32(key, 0, util.WrapString("vertical speed at touchdown in feet per minute"))
	key = "gforce"
	SendCmd.Flags().Int32(key, 1000, util.WrapString("g-force times 1000 (the service divides)"))
	key = "fuel"
	SendCmd.Flags().Int32(key, 0, util.WrapString("fuel quantity"))
	key = "transponder"
	SendCmd.Flags().Int32(key, 0, util.WrapString("transponder code"))
	key = "bridge-type"
	SendCmd.Flags().String(key, "xplane", util.WrapString("source simulator (simconnect, fsuipc, if, xplane)"))
	key = "on-ground"
	SendCmd.Flags().Bool(key, false, util.WrapString("aircraft has ground contact"))
	key = "slew"
	SendCmd.Flags().Bool(key, false, util.WrapString("simulator is in slew mode"))
	key = "paused"
	SendCmd.Flags().Bool(key, false, util.WrapString("simulation is paused"))
	key = "pitch"
	SendCmd.Flags().Int32(key, 0, util.WrapString("pitch attitude in degrees"))
	key = "roll"
	SendCmd.Flags().Int32(key, 0, util.WrapString("roll attitude in degrees"))
	key = "time"
	SendCmd.Flags().Int32(key, 0, util.WrapString("simulator time (ignored and recomputed by the service)"))
	key = "fps"
	SendCmd.Flags().Int32(key, 0, util.WrapString("simulator frame rate"))
	key = "aircraft-type"
	SendCmd.Flags().String(key, "", util.WrapString("aircraft type code, e.g. B77W (truncated to 8 bytes)"))
	key = "dump"
	SendCmd.Flags().Bool(key, false, util.WrapString("print the record as JSON before sending"))
}

func runSend(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	rec, err := recordFromFlags()
	if err != nil {
		return err
	}

	if viper.GetBool("dump") {
		data, err := serializer.NewJSONSerializer().Serialize(rec)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	}

	c, err := client.New(util.GetClientConfig(), unix.NewUnixConnector(), serializer.NewWireSerializer())
	if err != nil {
		// The companion service being absent is a hard precondition failure
		log.Fatal().Err(err).Msg("companion service not reachable, is projectFly running?")
	}
	defer c.Close()

	if err := c.SendRecord(rec); err != nil {
		return err
	}

	log.Info().
		Str("socket", c.SocketPath()).
		Int32("altitude", rec.Altitude).
		Str("bridge", rec.BridgeType.String()).
		Msg("telemetry record sent")
	return nil
}

// recordFromFlags assembles the telemetry record from viper
func recordFromFlags() (*telemetry.TelemetryRecord, error) {
	bridge, err := telemetry.ParseBridgeType(viper.GetString("bridge-type"))
	if err != nil {
		return nil, err
	}

	return &telemetry.TelemetryRecord{
		Altitude:             viper.GetInt32("altitude"),
		AGL:                  viper.GetInt32("agl"),
		Groundspeed:          viper.GetInt32("groundspeed"),
		IAS:                  viper.GetInt32("ias"),
		HeadingTrue:          viper.GetInt32("heading-true"),
		HeadingMagnetic:      viper.GetInt32("heading-magnetic"),
		Latitude:             viper.GetFloat64("lat"),
		Longitude:            viper.GetFloat64("lon"),
		VerticalSpeed:        viper.GetInt32("vertical-speed"),
		LandingVerticalSpeed: viper.GetInt32("landing-vertical-speed"),
		GForce:               viper.GetInt32("gforce"),
		Fuel:                 viper.GetInt32("fuel"),
		Transponder:          viper.GetInt32("transponder"),
		BridgeType:           bridge,
		IsOnGround:           viper.GetBool("on-ground"),
		IsSlew:               viper.GetBool("slew"),
		IsPaused:             viper.GetBool("paused"),
		Pitch:                viper.GetInt32("pitch"),
		Roll:                 viper.GetInt32("roll"),
		Time:                 viper.GetInt32("time"),
		FPS:                  viper.GetInt32("fps"),
		AircraftType:         viper.GetString("aircraft-type"),
	}, nil
}
