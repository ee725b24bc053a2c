package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Nixie-Tech-LLC/jyotish/internal/geocode"
)

func newSearchCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <city>",
		Short: "Look up candidate coordinates for a city",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			g := geocode.NewNominatim(v.GetString("geocoder-url"), defaultUserAgent, 10*time.Second, nil)
			places, err := g.Search(cmd.Context(), query, v.GetInt("limit"))
			if err != nil {
				return err
			}
			if len(places) == 0 {
				return fmt.Errorf("no match for %q", query)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "LAT\tLON\tNAME")
			for _, p := range places {
				fmt.Fprintf(w, "%.4f\t%.4f\t%s\n", p.Latitude, p.Longitude, p.Name)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Int("limit", 5, "maximum number of matches")
	_ = v.BindPFlag("limit", cmd.Flags().Lookup("limit"))
	return cmd
}
