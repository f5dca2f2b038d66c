/*
Copyright © 2025 the DotSpatial-Go authors.
This file is part of DotSpatial-Go.

DotSpatial-Go is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

DotSpatial-Go is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with DotSpatial-Go.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package cmd wires together the dotspatial command-line interface.
package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"

	"github.com/mytudousi/DotSpatial/layers"
	"github.com/mytudousi/DotSpatial/positioning"
)

// Version is the version of this release of the toolkit.
const Version = "0.1.0"

// Cfg holds configuration information. Flag values are read back
// through it so that they can also be supplied via the environment
// (DOTSPATIAL_* variables).
var Cfg *viper.Viper

var log = logrus.StandardLogger()

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(infoCmd)
	Root.AddCommand(convertCmd)
	Root.AddCommand(presetsCmd)

	// Create the configuration flags.
	Root.PersistentFlags().String("culture", "",
		"BCP 47 language tag giving the numeric conventions for reading and writing measurements, e.g. 'de' or 'en-US'. Empty means the invariant culture.")
	Root.PersistentFlags().Bool("verbose", false,
		"Log additional detail while running.")

	Cfg = viper.New()
	Cfg.BindPFlag("culture", Root.PersistentFlags().Lookup("culture"))
	Cfg.BindPFlag("verbose", Root.PersistentFlags().Lookup("verbose"))
	Cfg.SetEnvPrefix("DOTSPATIAL")
	Cfg.AutomaticEnv()
}

// culture resolves the configured culture tag.
func culture() (positioning.Culture, error) {
	t := cast.ToString(Cfg.Get("culture"))
	if t == "" {
		return positioning.InvariantCulture, nil
	}
	tag, err := language.Parse(t)
	if err != nil {
		return positioning.Culture{}, fmt.Errorf("invalid culture tag %q: %v", t, err)
	}
	return positioning.CultureFor(tag), nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "dotspatial",
	Short: "A toolkit for working with vector map data.",
	Long: `dotspatial inspects vector map layers and converts geographic
measurement values between representations. Use the subcommands
specified below to access the toolkit functionality.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if cast.ToBool(Cfg.Get("verbose")) {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	DisableAutoGenTag: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dotspatial v%s\n", Version)
	},
	DisableAutoGenTag: true,
}

// infoCmd opens a data file as a point layer and reports its
// configuration.
var infoCmd = &cobra.Command{
	Use:   "info [file]",
	Short: "Describe a point layer",
	Long: `info opens the given data file (currently ESRI shapefiles) as a
point map layer and reports its geometry kind, feature count, spatial
extent, and rendering scheme.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := layers.OpenPointLayer(args[0])
		if err != nil {
			return err
		}
		fs := l.FeatureSet
		log.WithFields(logrus.Fields{
			"file":     args[0],
			"kind":     fs.GeometryKind().String(),
			"features": fs.Count(),
		}).Info("opened point layer")
		if fs.SR != nil {
			log.WithFields(logrus.Fields{"sr": fs.SR.Name}).Debug("spatial reference")
		}
		if l.Extent.Empty() {
			fmt.Println("extent: empty")
		} else {
			fmt.Printf("extent: [%g, %g] - [%g, %g]\n",
				l.Extent.Min.X, l.Extent.Min.Y, l.Extent.Max.X, l.Extent.Max.Y)
		}
		for _, c := range l.Symbology.Categories {
			fmt.Printf("category: %s (size %g)\n", c.LegendText, c.Size)
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// convertCmd runs the conversion bridge on a single value.
var convertCmd = &cobra.Command{
	Use:   "convert [value]",
	Short: "Convert an angular measurement between representations",
	Long: `convert parses the given text as an angular measurement under the
configured culture and prints its number, text, and reconstruction
descriptor representations.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := culture()
		if err != nil {
			return err
		}
		var conv positioning.AngleConverter
		a, err := conv.ConvertFrom(args[0], c)
		if err != nil {
			return err
		}
		num, err := conv.ConvertTo(a, positioning.ReprNumber, c)
		if err != nil {
			return err
		}
		text, err := conv.ConvertTo(a, positioning.ReprText, c)
		if err != nil {
			return err
		}
		desc, err := conv.ConvertTo(a, positioning.ReprDescriptor, c)
		if err != nil {
			return err
		}
		fmt.Printf("number: %v\n", num)
		fmt.Printf("text: %v\n", text)
		fmt.Printf("descriptor: %+v\n", desc)
		return nil
	},
	DisableAutoGenTag: true,
}

// presetsCmd lists the symbolic standard values the conversion bridge
// suggests to hosts.
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the standard angular measurement presets",
	Run: func(cmd *cobra.Command, args []string) {
		var conv positioning.AngleConverter
		for _, name := range conv.StandardValues() {
			a, _ := positioning.StandardAngle(name)
			fmt.Printf("%s: %s\n", name, a)
		}
		fmt.Printf("exclusive: %v\n", conv.StandardValuesExclusive())
	},
	DisableAutoGenTag: true,
}
