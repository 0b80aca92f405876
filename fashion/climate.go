package fashion

type TemperatureCategory string

const (
	TemperatureCold TemperatureCategory = "Cold"
	TemperatureCool TemperatureCategory = "Cool"
	TemperatureWarm TemperatureCategory = "Warm"
	TemperatureHot  TemperatureCategory = "Hot"
)

// ClassifyTemperature buckets a Celsius reading. Boundary values belong to
// the lower band: 5 is Cold, 15 is Cool, 25 is Warm.
func ClassifyTemperature(celsius float64) TemperatureCategory {
	switch {
	case celsius <= 5:
		return TemperatureCold
	case celsius <= 15:
		return TemperatureCool
	case celsius <= 25:
		return TemperatureWarm
	default:
		return TemperatureHot
	}
}

// TargetWarmth is the warmth level to dress for in each band.
func (t TemperatureCategory) TargetWarmth() int {
	switch t {
	case TemperatureCold:
		return 9
	case TemperatureCool:
		return 6
	case TemperatureWarm:
		return 3
	default:
		return 1
	}
}

// Categories returns the outfit slots to fill for the band. Outerwear only
// comes out when it is Cold or Cool.
func (t TemperatureCategory) Categories() []string {
	if t == TemperatureCold || t == TemperatureCool {
		return []string{CategoryTop, CategoryBottom, CategoryOuterwear, CategoryFootwear, CategoryAccessory}
	}
	return []string{CategoryTop, CategoryBottom, CategoryFootwear, CategoryAccessory}
}
