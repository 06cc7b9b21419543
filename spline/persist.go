package spline

import (
	"errors"
	"fmt"
	"io"

	"github.com/npillmayer/splinerope"
	"gopkg.in/yaml.v3"
)

// ErrMalformedPath indicates a persisted path which does not describe a
// valid sequence of segments.
var ErrMalformedPath = errors.New("malformed path document")

// pathDocument is the persisted form of a path.
type pathDocument struct {
	Closed bool          `yaml:"closed"`
	Policy Policy        `yaml:"policy"`
	Points [][]float64   `yaml:"points"`
	Modes  []TangentMode `yaml:"modes,omitempty"`
}

// MarshalYAML implements yaml.Marshaler.
func (path *Path) MarshalYAML() (interface{}, error) {
	doc := pathDocument{
		Closed: path.closed,
		Policy: path.policy.kind(),
		Points: make([][]float64, len(path.points)),
	}
	for i, pt := range path.points {
		doc.Points[i] = []float64{pt.X, pt.Y, pt.Z}
	}
	if e, ok := path.policy.(*explicitModes); ok {
		doc.Modes = append([]TangentMode(nil), e.modes...)
	}
	return doc, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. The document is validated
// structurally; an invalid document leaves path unchanged.
func (path *Path) UnmarshalYAML(node *yaml.Node) error {
	var doc pathDocument
	if err := node.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}
	p, err := doc.path()
	if err != nil {
		return err
	}
	*path = *p
	return nil
}

func (doc *pathDocument) path() (*Path, error) {
	n := len(doc.Points)
	if doc.Closed && (n < 6 || n%3 != 0) {
		return nil, fmt.Errorf("%w: closed path cannot have %d points", ErrMalformedPath, n)
	} else if !doc.Closed && (n < 4 || n%3 != 1) {
		return nil, fmt.Errorf("%w: open path cannot have %d points", ErrMalformedPath, n)
	}
	path := &Path{
		points: make([]splinerope.Vec3, n),
		closed: doc.Closed,
	}
	for i, c := range doc.Points {
		if len(c) != 3 {
			return nil, fmt.Errorf("%w: point %d has %d coordinates", ErrMalformedPath, i, len(c))
		}
		path.points[i] = splinerope.V(c[0], c[1], c[2])
		if path.points[i].IsNaN() {
			return nil, fmt.Errorf("%w: point %d is not finite", ErrMalformedPath, i)
		}
	}
	switch doc.Policy {
	case ExplicitMode:
		e := &explicitModes{}
		e.attach(path)
		if len(doc.Modes) > 0 {
			if len(doc.Modes) != len(e.modes) {
				return nil, fmt.Errorf("%w: %d tangent modes for %d anchors", ErrMalformedPath,
					len(doc.Modes), len(e.modes))
			}
			copy(e.modes, doc.Modes)
		}
		path.policy = e
	case AutoSmooth:
		if len(doc.Modes) > 0 {
			return nil, fmt.Errorf("%w: tangent modes given for policy %s", ErrMalformedPath, doc.Policy)
		}
		path.policy = autoSmooth{} // guides are taken as stored
	default:
		return nil, fmt.Errorf("%w: unknown tangent policy %d", ErrMalformedPath, doc.Policy)
	}
	return path, nil
}

// Save writes path as a YAML document to w.
func Save(w io.Writer, path *Path) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(path); err != nil {
		return err
	}
	return enc.Close()
}

// Load reads a path from a YAML document.
func Load(r io.Reader) (*Path, error) {
	path := &Path{}
	if err := yaml.NewDecoder(r).Decode(path); err != nil {
		if errors.Is(err, ErrMalformedPath) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedPath, err)
	}
	tracer().Infof("loaded path of %d segments", path.SegmentCount())
	return path, nil
}
