package geo

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Degrees is an angle in decimal degrees that can be configured
// either as a number or as a [degrees, minutes, seconds] sequence.
type Degrees float64

func (d *Degrees) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var f float64
		if err := value.Decode(&f); err != nil {
			return err
		}
		*d = Degrees(f)
		return nil
	case yaml.SequenceNode:
		var dms []float64
		if err := value.Decode(&dms); err != nil {
			return err
		}
		if len(dms) == 0 || len(dms) > 3 {
			return fmt.Errorf("line %d: degrees need 1 to 3 components, got %d", value.Line, len(dms))
		}
		for len(dms) < 3 {
			dms = append(dms, 0)
		}
		*d = Degrees(DMS(dms[0], dms[1], dms[2]))
		return nil
	}
	return fmt.Errorf("line %d: degrees must be a number or a sequence", value.Line)
}

// Extent is a configurable longitude / latitude rectangle.
type Extent struct {
	West  Degrees `yaml:"west"`
	East  Degrees `yaml:"east"`
	South Degrees `yaml:"south"`
	North Degrees `yaml:"north"`
}

// Bounds converts the extent to plain decimal bounds.
func (e Extent) Bounds() Bounds {
	return Bounds{
		West:  float64(e.West),
		East:  float64(e.East),
		South: float64(e.South),
		North: float64(e.North),
	}
}
