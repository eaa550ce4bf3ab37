// Command polyclip computes Boolean set operations (intersection, union,
// difference) between two GeoJSON polygons.
package main

import "os"

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
