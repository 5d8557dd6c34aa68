package gravity

// G is the gravitational constant in SI units [m^3 kg^-1 s^-2].
const G = 6.674e-11

// Unit tables map a unit name to its coefficient in fundamental SI
// units (seconds, meters, kilograms).
var (
	TimeUnits = map[string]float64{
		"millisecs": 0.001,
		"secs":      1,
		"mins":      60,
		"hrs":       3600,
		"days":      86_400,
		"wks":       604_800,
		"months":    2_592_000,
		"yrs":       31_536_000,
	}

	SpaceUnits = map[string]float64{
		"mm": 0.001,
		"cm": 0.01,
		"m":  1,
		"km": 1000,
	}

	MassUnits = map[string]float64{
		"mg": 1e-6,
		"g":  0.001,
		"kg": 1,
		"t":  1000,
	}
)

// ScaleG converts the SI gravitational constant into one consistent
// with the named units, so that accelerations computed from it come
// out directly in spaceUnits per timeUnits squared.
func ScaleG(timeUnits, spaceUnits, massUnits string) (float64, error) {
	t, ok := TimeUnits[timeUnits]
	if !ok {
		return 0, ConfigurationError{Param: "time_units", Value: timeUnits, Message: "unrecognized unit"}
	}
	s, ok := SpaceUnits[spaceUnits]
	if !ok {
		return 0, ConfigurationError{Param: "space_units", Value: spaceUnits, Message: "unrecognized unit"}
	}
	m, ok := MassUnits[massUnits]
	if !ok {
		return 0, ConfigurationError{Param: "mass_units", Value: massUnits, Message: "unrecognized unit"}
	}
	return G * m * t * t / (s * s * s), nil
}
