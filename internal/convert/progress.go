// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/convert-hub/pkg/types"
)

// ProgressSteps is the number of progress ticks emitted before conversion.
const ProgressSteps = 100

// Reporter receives progress ticks and the terminal outcome of a run.
type Reporter interface {
	// Progress is called with 1..ProgressSteps in increasing order.
	Progress(percent int)

	// Finish is called exactly once, after all progress ticks.
	Finish(result types.ConversionResult)
}

// Discard is a Reporter that ignores everything.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Progress(int)                  {}
func (discard) Finish(types.ConversionResult) {}

// Simulator turns a request into converted text. Simulate is the default.
type Simulator func(types.ConversionRequest) (string, error)

// Runner drives a Simulator and reports progress around it.
type Runner struct {
	// Simulate is the conversion function. Nil uses Simulate.
	Simulate Simulator
}

// Run converts req, emitting ProgressSteps ticks to rep before invoking the
// simulator and then exactly one Finish. Blank input short-circuits with
// StatusEmptyInput and no ticks. A simulator error or panic yields
// StatusError with no output text.
func (r Runner) Run(req types.ConversionRequest, rep Reporter) types.ConversionResult {
	if rep == nil {
		rep = Discard
	}

	if IsBlank(req.SourceText) {
		res := emptyResult()
		rep.Finish(res)
		return res
	}

	for i := 1; i <= ProgressSteps; i++ {
		rep.Progress(i)
	}

	sim := r.Simulate
	if sim == nil {
		sim = Simulate
	}

	out, err := safeSimulate(sim, req)
	var res types.ConversionResult
	if err != nil {
		logrus.WithError(err).WithField("pair", req.Pair().String()).Warn("conversion failed")
		res = errorResult(err)
	} else {
		res = successResult(req, out)
	}
	rep.Finish(res)
	return res
}

// safeSimulate calls sim, turning a panic into an error.
func safeSimulate(sim Simulator, req types.ConversionRequest) (out string, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, err = "", fmt.Errorf("%v", p)
		}
	}()
	return sim(req)
}
