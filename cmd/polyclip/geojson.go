package main

import (
	"encoding/json"
	"fmt"

	ctessumgeom "github.com/ctessum/geom"
	ctessumgeojson "github.com/ctessum/geom/encoding/geojson"

	"zappem.net/pub/math/polyclip/geom"
)

// featureEnvelope peels a GeoJSON Feature wrapper down to its geometry,
// leaving a bare geometry object untouched. ctessum/geom/encoding/geojson
// only knows how to decode a bare Geometry, not a Feature, so this is the
// seam between the wire format this tool accepts and the geometry decoder
// it delegates to.
type featureEnvelope struct {
	Type     string          `json:"type"`
	Geometry json.RawMessage `json:"geometry"`
}

func geometryBytes(data []byte) ([]byte, error) {
	var env featureEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Type == "Feature" {
		if len(env.Geometry) == 0 {
			return nil, fmt.Errorf("polyclip: feature has no geometry")
		}
		return env.Geometry, nil
	}
	return data, nil
}

func ringFromCtessum(pts []ctessumgeom.Point) geom.Ring {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = geom.NewPoint(p.X, p.Y)
	}
	return geom.NewRing(out...)
}

// decodePolygonGeoJSON parses raw GeoJSON bytes holding either a bare
// Polygon geometry or a Feature wrapping one, into a geom.Polygon, using
// ctessum/geom's own decoder for the geometry itself. The first ring is
// the exterior; any further rings are holes, per the GeoJSON Polygon
// convention.
func decodePolygonGeoJSON(data []byte) (geom.Polygon, error) {
	raw, err := geometryBytes(data)
	if err != nil {
		return geom.Polygon{}, err
	}
	g, err := ctessumgeojson.Decode(raw)
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("polyclip: %w", err)
	}
	poly, ok := g.(ctessumgeom.Polygon)
	if !ok {
		return geom.Polygon{}, fmt.Errorf("polyclip: unsupported geometry type %T", g)
	}
	if len(poly) == 0 {
		return geom.Polygon{}, fmt.Errorf("polyclip: polygon has no rings")
	}
	exterior := ringFromCtessum(poly[0])
	holes := make([]geom.Ring, len(poly)-1)
	for i, r := range poly[1:] {
		holes[i] = ringFromCtessum(r)
	}
	return geom.NewPolygon(exterior, holes...)
}

func ctessumPolygonFrom(p geom.Polygon) ctessumgeom.Polygon {
	rings := make(ctessumgeom.Polygon, 0, 1+len(p.HoleRings()))
	rings = append(rings, ctessumPointsFrom(p.ExteriorRing()))
	for _, h := range p.HoleRings() {
		rings = append(rings, ctessumPointsFrom(h))
	}
	return rings
}

func ctessumPointsFrom(r geom.Ring) []ctessumgeom.Point {
	pts := make([]ctessumgeom.Point, len(r))
	for i, p := range r {
		pts[i] = ctessumgeom.Point{X: p.X(), Y: p.Y()}
	}
	return pts
}

// encodePolygonsGeoJSON encodes a list of polygons as a GeoJSON
// FeatureCollection, one Feature per polygon, using ctessum/geom's own
// GeoJSON geometry encoder for each polygon's geometry field.
func encodePolygonsGeoJSON(polys []geom.Polygon) ([]byte, error) {
	type outFeature struct {
		Type       string                   `json:"type"`
		Geometry   *ctessumgeojson.Geometry `json:"geometry"`
		Properties map[string]any           `json:"properties"`
	}
	type featureCollection struct {
		Type     string       `json:"type"`
		Features []outFeature `json:"features"`
	}

	fc := featureCollection{Type: "FeatureCollection"}
	for _, p := range polys {
		g, err := ctessumgeojson.ToGeoJSON(ctessumPolygonFrom(p))
		if err != nil {
			return nil, fmt.Errorf("polyclip: encoding polygon: %w", err)
		}
		fc.Features = append(fc.Features, outFeature{
			Type:       "Feature",
			Geometry:   g,
			Properties: map[string]any{},
		})
	}
	return json.MarshalIndent(fc, "", "  ")
}
