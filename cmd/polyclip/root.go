package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"zappem.net/pub/math/polyclip/geom"
)

var log = logrus.StandardLogger()

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: time.RFC3339})
}

var outPath string

// root is the polyclip command tree: three subcommands, one per Boolean
// operation, each taking two GeoJSON polygon files and writing a GeoJSON
// FeatureCollection of the result.
var root = &cobra.Command{
	Use:   "polyclip",
	Short: "Boolean set operations on GeoJSON polygons.",
	Long: `polyclip reads two GeoJSON polygon features and computes their
intersection, union, or difference using a Greiner-Hormann clipping
engine, writing the result as a GeoJSON FeatureCollection.`,
	DisableAutoGenTag: true,
}

func init() {
	root.PersistentFlags().StringVar(&outPath, "out", "", "output GeoJSON path (default stdout)")
	root.AddCommand(intersectCmd, unionCmd, diffCmd)
}

var intersectCmd = &cobra.Command{
	Use:   "intersect a.geojson b.geojson",
	Short: "Compute the intersection of two polygons.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(geom.Intersection, args[0], args[1])
	},
	DisableAutoGenTag: true,
}

var unionCmd = &cobra.Command{
	Use:   "union a.geojson b.geojson",
	Short: "Compute the union of two polygons.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(geom.Union, args[0], args[1])
	},
	DisableAutoGenTag: true,
}

var diffCmd = &cobra.Command{
	Use:   "diff a.geojson b.geojson",
	Short: "Compute a minus b.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runOp(geom.Difference, args[0], args[1])
	},
	DisableAutoGenTag: true,
}

func runOp(op func(a, b geom.Polygon) ([]geom.Polygon, error), pathA, pathB string) error {
	start := time.Now()

	a, err := readPolygon(pathA)
	if err != nil {
		return fmt.Errorf("reading %s: %w", pathA, err)
	}
	b, err := readPolygon(pathB)
	if err != nil {
		return fmt.Errorf("reading %s: %w", pathB, err)
	}

	log.WithFields(logrus.Fields{"a": pathA, "b": pathB}).Debug("running operation")

	result, err := op(a, b)
	if err != nil {
		return fmt.Errorf("operation failed: %w", err)
	}
	log.WithFields(logrus.Fields{
		"pieces":   len(result),
		"duration": time.Since(start),
	}).Info("operation complete")

	data, err := encodePolygonsGeoJSON(result)
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return writeOutput(data)
}

func readPolygon(path string) (geom.Polygon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geom.Polygon{}, err
	}
	return decodePolygonGeoJSON(data)
}

func writeOutput(data []byte) error {
	if outPath == "" {
		_, err := os.Stdout.Write(append(data, '\n'))
		return err
	}
	return os.WriteFile(outPath, data, 0o644)
}
