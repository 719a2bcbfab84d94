package feed

import (
	"fmt"
	"time"

	gtfsrtpb "github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"
)

// DecodeGTFSRT extracts fixes from a GTFS-Realtime FeedMessage carrying
// VehiclePosition entities. This lets fleet-side GNSS bridges push positions
// in the same protobuf envelope they already produce.
func DecodeGTFSRT(b []byte) ([]Fix, error) {
	var fm gtfsrtpb.FeedMessage
	if err := proto.Unmarshal(b, &fm); err != nil {
		return nil, fmt.Errorf("feed: decode gtfsrt: %w", err)
	}
	var fixes []Fix
	for _, e := range fm.Entity {
		vp := e.Vehicle
		if vp == nil || vp.Position == nil || vp.Position.Latitude == nil || vp.Position.Longitude == nil {
			continue
		}
		f := Fix{
			Lon: float64(*vp.Position.Longitude),
			Lat: float64(*vp.Position.Latitude),
		}
		if vp.Position.Bearing != nil {
			f.Yaw = normalizeYaw(float64(*vp.Position.Bearing))
		}
		if vp.Timestamp != nil {
			f.Time = time.Unix(int64(*vp.Timestamp), 0).UTC()
		}
		fixes = append(fixes, f)
	}
	return fixes, nil
}

func normalizeYaw(deg float64) float64 {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	return deg
}
