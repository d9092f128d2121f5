package fermat

var (
	// ParamsDefault is the default parameters set:
	// 20 witnesses per candidate, scanning candidates below 1000.
	ParamsDefault = ParametersLiteral{
		Trials: 20,
		Max:    1000,
	}
)
