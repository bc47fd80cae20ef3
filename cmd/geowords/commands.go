package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/andreiashu/geowords"
	"github.com/andreiashu/geowords/internal/config"
)

// app carries the configuration shared by every subcommand.
type app struct {
	cfg config.Config
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{cfg: cfg}

	rootCmd := &cobra.Command{
		Use:           "geowords",
		Short:         "Name every place on Earth with three words",
		Long:          `Converts latitude/longitude pairs to reversible three-word names and back.`,
		SilenceUsage:  true,
	}
	flags := rootCmd.PersistentFlags()
	flags.Float64Var(&a.cfg.PrecisionMeters, "precision", cfg.PrecisionMeters, "precision in meters")
	flags.Float64Var(&a.cfg.DegreeLengthMeters, "degree-length", cfg.DegreeLengthMeters, "length of one degree at the equator in meters")
	flags.StringVar(&a.cfg.Rounding, "rounding", cfg.Rounding, "decimal place rounding: half-even or half-away-from-zero")
	flags.StringVar(&a.cfg.WordFile, "words", cfg.WordFile, "newline-delimited word list (default: embedded list)")
	flags.StringVar(&a.cfg.SnapshotFile, "snapshot", cfg.SnapshotFile, "vocabulary snapshot written by update-vocab")
	flags.StringVar(&a.cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	var withGeohash bool
	encodeCmd := &cobra.Command{
		Use:   "encode LAT,LON | -- LAT LON",
		Short: "Encode a coordinate as three words",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			lat, lon, err := parseCoordinate(args)
			if err != nil {
				return err
			}
			name, err := c.Encode(lat, lon)
			if err != nil {
				return err
			}
			if withGeohash {
				loc, err := c.DecodeName(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", name, loc.Geohash())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
	encodeCmd.Flags().BoolVar(&withGeohash, "geohash", false, "also print the geohash of the named cell")

	geohashCmd := &cobra.Command{
		Use:   "geohash HASH",
		Short: "Encode the centre of a geohash cell as three words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			name, err := c.EncodeGeohash(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode WORD.WORD.WORD | WORD WORD WORD",
		Short: "Decode three words to a coordinate",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			name, err := geowords.ParseName(strings.Join(args, " "))
			if err != nil {
				return err
			}
			loc, err := c.DecodeName(name)
			if err != nil {
				return err
			}
			p := c.Params()
			fmt.Fprintf(cmd.OutOrStdout(), "%.*f,%.*f\n", p.DecimalPlaces, loc.Lat, p.DecimalPlaces, loc.Lng)
			return nil
		},
	}

	var samples int
	var seed uint64
	roundtripCmd := &cobra.Command{
		Use:   "roundtrip",
		Short: "Encode and decode random coordinates and check the precision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			rep, err := c.RoundTrip(samples, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "samples=%d unaddressable=%d max_lat_error=%g max_lng_error=%g max_error_m=%.1f\n",
				rep.Samples, rep.Unaddressable, rep.MaxLatError, rep.MaxLngError, rep.MaxErrorMeters)
			return nil
		},
	}
	roundtripCmd.Flags().IntVarP(&samples, "samples", "n", 100, "number of random coordinates")
	roundtripCmd.Flags().Uint64Var(&seed, "seed", 1, "random seed")

	var limit int
	suggestCmd := &cobra.Command{
		Use:   "suggest WORD",
		Short: "List vocabulary words close to WORD",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			for _, w := range c.Suggest(args[0], limit) {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}
			return nil
		},
	}
	suggestCmd.Flags().IntVar(&limit, "limit", 5, "maximum number of suggestions")

	infoCmd := &cobra.Command{
		Use:   "info",
		Short: "Print the derived codec parameters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.codec()
			if err != nil {
				return err
			}
			p := c.Params()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "decimal_places:    %d\n", p.DecimalPlaces)
			fmt.Fprintf(out, "rounding:          %s\n", p.Rounding)
			fmt.Fprintf(out, "vocab_size:        %d\n", p.VocabSize)
			fmt.Fprintf(out, "total_coordinates: %d\n", p.TotalCoordinates)
			fmt.Fprintf(out, "capacity:          %d\n", p.Capacity)
			fmt.Fprintf(out, "max_address:       %d\n", p.MaxAddress)
			return nil
		},
	}

	rootCmd.AddCommand(encodeCmd, geohashCmd, decodeCmd, roundtripCmd, suggestCmd, infoCmd)
	return rootCmd
}

func (a *app) codec() (*geowords.Codec, error) {
	if err := a.cfg.Validate(); err != nil {
		return nil, err
	}
	opts, err := a.cfg.Options(a.cfg.Logger())
	if err != nil {
		return nil, err
	}
	return geowords.NewCodec(opts...)
}

// parseCoordinate accepts "LAT,LON" as one argument or LAT and LON as two.
func parseCoordinate(args []string) (lat, lon float64, err error) {
	parts := args
	if len(args) == 1 {
		parts = strings.Split(args[0], ",")
	}
	if len(parts) != 2 {
		return 0, 0, errors.New("want a coordinate as LAT,LON or LAT LON")
	}
	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("latitude: %w", err)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("longitude: %w", err)
	}
	return lat, lon, nil
}
