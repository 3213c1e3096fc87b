package segregation

import (
	"strconv"

	"github.com/Pautrik/neighbours/internal/core"
)

// Parameters reports the current configuration for display purposes.
func (w *World) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "World",
				Params: []core.Parameter{
					intParam("locations", "Locations", w.cfg.Locations),
					intParam("side", "Side", w.side),
					int64Param("seed", "Seed", w.cfg.Seed),
				},
			},
			{
				Name: "Model",
				Params: []core.Parameter{
					floatParam("red", "Red fraction", w.cfg.Red),
					floatParam("blue", "Blue fraction", w.cfg.Blue),
					floatParam("threshold", "Threshold", w.cfg.Threshold),
				},
			},
		},
	}
}

// SetFloatParameter updates a runtime-adjustable parameter. Only the
// satisfaction threshold can change on a live world; values clamp into
// [0.05, 0.95].
func (w *World) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "threshold":
		if value < thresholdFloor {
			value = thresholdFloor
		}
		if value > thresholdCeil {
			value = thresholdCeil
		}
		w.cfg.Threshold = value
		return true
	}
	return false
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
