package reactor

import "math"

type Summary struct {
	FinalConversion float64 `json:"final_conversion"`
	MaxTemperature  float64 `json:"max_temperature"`
}

// FinalConversion is the percentage of inlet reactant consumed at the outlet.
func FinalConversion(prof *Profile, cInlet float64) float64 {
	if prof.Len() == 0 {
		return 0
	}
	return (cInlet - prof.C[prof.Len()-1]) / cInlet * 100
}

func MaxTemperature(prof *Profile) float64 {
	maxT := math.Inf(-1)
	for _, t := range prof.T {
		if t > maxT {
			maxT = t
		}
	}
	return maxT
}

func Summarize(prof *Profile, p Params) Summary {
	return Summary{
		FinalConversion: FinalConversion(prof, p.CInlet),
		MaxTemperature:  MaxTemperature(prof),
	}
}
