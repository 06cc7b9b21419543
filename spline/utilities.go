package spline

import (
	"fmt"
	"strings"

	"github.com/npillmayer/splinerope"
)

// AsString returns a path as a (debugging) string, in a notation close to
// MetaPost's. Example, the default path at origin:
//
//	(0,0,0) .. controls (0.5,1,0) and (1.5,-1,0)
//	  .. (2,0,0)
//
// Closed paths end with "cycle" instead of repeating z0.
func AsString(path *Path) string {
	var sb strings.Builder
	for s := 0; s < path.SegmentCount(); s++ {
		seg := path.Segment(s)
		if s == 0 {
			sb.WriteString(ptstring(seg[0]))
		}
		fmt.Fprintf(&sb, " .. controls %s and %s\n  .. ", ptstring(seg[1]), ptstring(seg[2]))
		if path.closed && s == path.SegmentCount()-1 {
			sb.WriteString("cycle")
		} else {
			sb.WriteString(ptstring(seg[3]))
		}
	}
	return sb.String()
}

func ptstring(v splinerope.Vec3) string {
	return fmt.Sprintf("(%.4g,%.4g,%.4g)", round(v.X), round(v.Y), round(v.Z))
}

func round(x float64) float64 {
	if x >= 0 {
		return float64(int64(x*10000.0+0.5)) / 10000.0
	}
	return float64(int64(x*10000.0-0.5)) / 10000.0
}
