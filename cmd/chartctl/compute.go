package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nixie-Tech-LLC/jyotish/internal/chart"
	"github.com/Nixie-Tech-LLC/jyotish/internal/ephemeris"
	"github.com/Nixie-Tech-LLC/jyotish/internal/geocode"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api/chart/packets"
)

func newComputeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a chart and print it as JSON",
		Long: "Compute a chart from an ephemeris snapshot file (--snapshot) or a live " +
			"ephemeris service (--ephemeris-url). Every flag can also be set through " +
			"CHARTCTL_<FLAG> environment variables, e.g. CHARTCTL_EPHEMERIS_URL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompute(cmd, v)
		},
	}

	f := cmd.Flags()
	f.String("date", "", "birth date, DD/MM/YYYY")
	f.String("time", "", "local birth time, HH:MM")
	f.String("city", "", "birth city, geocoded when --lat/--lon are not given")
	f.Float64("lat", 0, "latitude in degrees")
	f.Float64("lon", 0, "longitude in degrees")
	f.Float64("tz", 0, "UTC offset in hours, e.g. 5.5")
	f.String("snapshot", "", "path to an ephemeris snapshot JSON file")
	f.String("ephemeris-url", "", "base URL of the ephemeris service")
	f.Duration("ephemeris-timeout", 15*time.Second, "ephemeris request timeout")
	f.Bool("pretty", false, "indent the JSON output")
	for _, name := range []string{"date", "time", "city", "lat", "lon", "tz", "snapshot",
		"ephemeris-url", "ephemeris-timeout", "pretty"} {
		_ = v.BindPFlag(name, f.Lookup(name))
	}
	return cmd
}

func runCompute(cmd *cobra.Command, v *viper.Viper) error {
	provider, err := providerFrom(v)
	if err != nil {
		return err
	}
	geocoder := geocode.NewNominatim(v.GetString("geocoder-url"), defaultUserAgent, 10*time.Second, nil)

	birth := chart.BirthData{
		Date: v.GetString("date"),
		Time: v.GetString("time"),
		City: v.GetString("city"),
	}
	if birth.Date == "" || birth.Time == "" {
		return fmt.Errorf("--date and --time are required")
	}
	if v.IsSet("lat") && v.IsSet("lon") {
		lat, lon := v.GetFloat64("lat"), v.GetFloat64("lon")
		birth.Lat, birth.Lon = &lat, &lon
	}
	if v.IsSet("tz") {
		tz := v.GetFloat64("tz")
		birth.Timezone = &tz
	}

	computed, err := chart.NewService(provider, geocoder, nil).Calculate(cmd.Context(), birth)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(packets.NewChartResponse(computed))
}

func providerFrom(v *viper.Viper) (ephemeris.Provider, error) {
	if path := v.GetString("snapshot"); path != "" {
		snap, err := ephemeris.LoadSnapshot(path)
		if err != nil {
			return nil, err
		}
		return ephemeris.Static{Snapshot: *snap}, nil
	}
	if url := v.GetString("ephemeris-url"); url != "" {
		return ephemeris.NewHTTPProvider(url, v.GetDuration("ephemeris-timeout"), nil), nil
	}
	return nil, fmt.Errorf("one of --snapshot or --ephemeris-url is required")
}
