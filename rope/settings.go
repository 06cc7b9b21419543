package rope

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings indicates a settings value out of range.
var ErrInvalidSettings = errors.New("invalid rope settings")

// Settings holds the parameters for deriving a mesh from a rope's path.
type Settings struct {
	Width      float64 `yaml:"width"`       // width of the ribbon
	Spacing    float64 `yaml:"spacing"`     // distance between ribbon points
	Tiling     float64 `yaml:"tiling"`      // texture repetitions per unit of length
	Resolution float64 `yaml:"resolution"`  // sampling density; 0 means 1
	AutoUpdate bool    `yaml:"auto-update"` // re-derive the mesh after every edit
}

// DefaultSettings returns settings for a ribbon of unit width and spacing.
func DefaultSettings() Settings {
	return Settings{
		Width:      1,
		Spacing:    1,
		Tiling:     1,
		Resolution: 1,
		AutoUpdate: true,
	}
}

// Validate checks settings for values a mesh cannot be derived with.
func (s Settings) Validate() error {
	switch {
	case !positive(s.Width):
		return fmt.Errorf("%w: width = %g", ErrInvalidSettings, s.Width)
	case !positive(s.Spacing):
		return fmt.Errorf("%w: spacing = %g", ErrInvalidSettings, s.Spacing)
	case !nonNegative(s.Resolution):
		return fmt.Errorf("%w: resolution = %g", ErrInvalidSettings, s.Resolution)
	case !nonNegative(s.Tiling):
		return fmt.Errorf("%w: tiling = %g", ErrInvalidSettings, s.Tiling)
	}
	return nil
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

func nonNegative(x float64) bool {
	return x >= 0 && !math.IsInf(x, 1)
}

// LoadSettings reads settings from a YAML document. Fields missing in the
// document keep their default value, unknown fields are an error.
// An empty document results in DefaultSettings.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	tracer().Debugf("loaded settings %+v", s)
	return s, nil
}
