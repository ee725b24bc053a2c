package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nixie-Tech-LLC/jyotish/internal/logging"
)

const (
	defaultGeocoderURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent   = "vedic_astro_secure"
)

// newRootCmd builds the command tree with its own viper instance so flags can
// also come from CHARTCTL_* environment variables.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("CHARTCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "chartctl",
		Short:         "Compute Vedic birth charts from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cfg := logging.DefaultConfig()
			cfg.Level = zerolog.WarnLevel.String()
			if v.GetBool("verbose") {
				cfg.Level = zerolog.DebugLevel.String()
			}
			logging.InitWriter(cfg, os.Stderr)
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "verbose logging on stderr")
	root.PersistentFlags().String("geocoder-url", defaultGeocoderURL, "Nominatim compatible geocoder")
	_ = v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("geocoder-url", root.PersistentFlags().Lookup("geocoder-url"))

	root.AddCommand(newComputeCmd(v), newSearchCmd(v))
	return root
}
