// SPDX-License-Identifier: EPL-2.0

package engine

import (
	"math"
	"sync/atomic"

	"github.com/ik5/padtape/utils"
)

// ParamID identifies one of the engine's exposed parameters.
type ParamID uint8

const (
	// ParamAux1 and ParamAux2 are auxiliary 10-bit continuous controls,
	// stored normalized to [0, 1]. The engine holds them for the host but
	// does not consume them itself.
	ParamAux1 ParamID = iota
	ParamAux2
	// ParamDepth is the bipolar depth control. Its sign selects the mode:
	// negative records, non-negative plays.
	ParamDepth
	// ParamChoice is a 4-way selector with display strings.
	ParamChoice

	numParams
)

// InvalidParamValue is returned by ParameterValue for an unknown ParamID.
const InvalidParamValue = math.MinInt32

// paramSpec describes one parameter: its raw clamp range and the raw/stored
// conversions. Dispatch is by table lookup so the parameter surface stays a
// closed set.
type paramSpec struct {
	min, max int32
	store    func(raw int32) float32
	load     func(stored float32) int32
}

var paramTable = [numParams]paramSpec{
	ParamAux1:   {0, 1023, storeTenBit, loadTenBit},
	ParamAux2:   {0, 1023, storeTenBit, loadTenBit},
	ParamDepth:  {-1000, 1000, storeDepth, loadDepth},
	ParamChoice: {0, 3, storeIdentity, loadIdentity},
}

func storeTenBit(raw int32) float32 { return float32(raw) / 1023 }
func loadTenBit(v float32) int32    { return int32(math.Round(float64(v) * 1023)) }

func storeDepth(raw int32) float32 { return float32(raw) / 1000 }
func loadDepth(v float32) int32    { return int32(math.Round(float64(v) * 1000)) }

func storeIdentity(raw int32) float32 { return float32(raw) }
func loadIdentity(v float32) int32    { return int32(v) }

// choiceStrings are the display labels for ParamChoice values.
var choiceStrings = [...]string{"VAL 0", "VAL 1", "VAL 2", "VAL 3"}

// params holds the stored parameter values. Each value lives in its own
// atomic word (float32 bits) because the control context writes while the
// audio thread reads depth to derive the mode.
type params struct {
	values [numParams]atomic.Uint32
}

// reset restores default values. Parameters default to zero except the
// choice selector, which defaults to 1.
func (p *params) reset() {
	for id := range numParams {
		p.values[id].Store(math.Float32bits(0))
	}
	p.values[ParamChoice].Store(math.Float32bits(1))
}

func (p *params) set(id ParamID, raw int32) {
	if id >= numParams {
		return
	}

	spec := &paramTable[id]
	raw = utils.ClipInt32(spec.min, raw, spec.max)
	p.values[id].Store(math.Float32bits(spec.store(raw)))
}

func (p *params) value(id ParamID) int32 {
	if id >= numParams {
		return InvalidParamValue
	}

	stored := math.Float32frombits(p.values[id].Load())
	return paramTable[id].load(stored)
}

func (p *params) depth() float32 {
	return math.Float32frombits(p.values[ParamDepth].Load())
}

// SetParameter clamps raw into the parameter's declared range and stores the
// normalized value. Unknown IDs are ignored.
func (e *Engine) SetParameter(id ParamID, raw int32) {
	e.params.set(id, raw)
}

// ParameterValue returns the raw representation of a stored parameter value.
// Integral-range parameters round-trip exactly through SetParameter.
// Unknown IDs return InvalidParamValue.
func (e *Engine) ParameterValue(id ParamID) int32 {
	return e.params.value(id)
}

// ParameterString returns the display string for an enumerated parameter
// value, or "" when the parameter has no string form or the value is out of
// range.
func (e *Engine) ParameterString(id ParamID, value int32) string {
	if id != ParamChoice {
		return ""
	}
	if value < 0 || int(value) >= len(choiceStrings) {
		return ""
	}
	return choiceStrings[value]
}
