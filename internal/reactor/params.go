package reactor

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/pfrsim/internal/dynamo"
)

// Params holds the reactor's physical and discretization constants. It is
// a plain value: copies are independent and safe to share across goroutines.
type Params struct {
	Length   float64 `yaml:"length" json:"length"`
	Diameter float64 `yaml:"diameter" json:"diameter"`
	// Area is the heat-exchange area per unit length. Zero means derive it
	// from Diameter as the tube perimeter.
	Area float64 `yaml:"area" json:"area"`

	K0 float64 `yaml:"k0" json:"k0"`
	Ea float64 `yaml:"ea" json:"ea"`
	Rg float64 `yaml:"rg" json:"rg"`

	DeltaH float64 `yaml:"delta_h" json:"delta_h"`
	Rho    float64 `yaml:"rho" json:"rho"`
	Cp     float64 `yaml:"cp" json:"cp"`
	U      float64 `yaml:"u" json:"u"`
	CMolar float64 `yaml:"c_molar" json:"c_molar"`

	CInlet float64 `yaml:"c_inlet" json:"c_inlet"`
	Dz     float64 `yaml:"dz" json:"dz"`
}

func DefaultParams() Params {
	return Params{
		Length:   5.0,
		Diameter: 0.05,
		Area:     0.785,
		K0:       50000.0,
		Ea:       30000.0,
		Rg:       8.314,
		DeltaH:   -250000.0,
		Rho:      1000.0,
		Cp:       4200.0,
		U:        500.0,
		CMolar:   1000.0,
		CInlet:   1.0,
		Dz:       0.01,
	}
}

// ExchangeArea returns A, falling back to π·D when Area is unset.
func (p Params) ExchangeArea() float64 {
	if p.Area > 0 {
		return p.Area
	}
	return math.Pi * p.Diameter
}

// gridTolerance absorbs rounding in L/dz so that an exact multiple such as
// 0.3/0.1 is not floored one step short.
const gridTolerance = 1e-12

// GridSize is the number of axial points, floor(L/dz) + 1.
func (p Params) GridSize() int {
	return int(math.Floor(p.Length/p.Dz*(1+gridTolerance))) + 1
}

func (p Params) Validate() error {
	fields := p.fields()
	for _, name := range paramNames {
		v := fields[name]
		switch name {
		case "delta_h":
			if !(v < 0) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: delta_h must be negative (exothermic), got %g", dynamo.ErrParameterBounds, v)
			}
		case "area":
			if !(v >= 0) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: area must be >= 0, got %g", dynamo.ErrParameterBounds, v)
			}
		default:
			if !(v > 0) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: %s must be positive, got %g", dynamo.ErrParameterBounds, name, v)
			}
		}
	}
	if p.ExchangeArea() <= 0 {
		return fmt.Errorf("%w: exchange area resolves to %g", dynamo.ErrParameterBounds, p.ExchangeArea())
	}
	return nil
}

var paramNames = []string{
	"area", "c_inlet", "c_molar", "cp", "delta_h", "diameter", "dz",
	"ea", "k0", "length", "rg", "rho", "u",
}

func (p Params) fields() map[string]float64 {
	return map[string]float64{
		"length":   p.Length,
		"diameter": p.Diameter,
		"area":     p.Area,
		"k0":       p.K0,
		"ea":       p.Ea,
		"rg":       p.Rg,
		"delta_h":  p.DeltaH,
		"rho":      p.Rho,
		"cp":       p.Cp,
		"u":        p.U,
		"c_molar":  p.CMolar,
		"c_inlet":  p.CInlet,
		"dz":       p.Dz,
	}
}

// GetParams returns the parameters keyed by their config names.
func (p Params) GetParams() map[string]float64 {
	return p.fields()
}

// ParamNames lists the config names accepted by SetParam, sorted.
func ParamNames() []string {
	names := make([]string, len(paramNames))
	copy(names, paramNames)
	sort.Strings(names)
	return names
}

func (p *Params) SetParam(name string, value float64) error {
	switch name {
	case "length":
		p.Length = value
	case "diameter":
		p.Diameter = value
	case "area":
		p.Area = value
	case "k0":
		p.K0 = value
	case "ea":
		p.Ea = value
	case "rg":
		p.Rg = value
	case "delta_h":
		p.DeltaH = value
	case "rho":
		p.Rho = value
	case "cp":
		p.Cp = value
	case "u":
		p.U = value
	case "c_molar":
		p.CMolar = value
	case "c_inlet":
		p.CInlet = value
	case "dz":
		p.Dz = value
	default:
		return fmt.Errorf("unknown param: %s", name)
	}
	return nil
}
