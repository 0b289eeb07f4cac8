package cubesolve

// Option configures a solve attempt.
type Option func(*solveConfig)

type solveConfig struct {
	stopAfter Phase
	onStep    func(Step)
}

func defaultSolveConfig() *solveConfig {
	return &solveConfig{
		stopAfter: PhasePermuteLast,
	}
}

// WithStopAfter stops the pipeline once the given phase has run.
// Use it to solve partway, e.g. just the bottom cross:
//
//	sol := cubesolve.Solve(cube, cubesolve.WithStopAfter(cubesolve.PhaseCross))
func WithStopAfter(p Phase) Option {
	return func(c *solveConfig) {
		c.stopAfter = p
	}
}

// WithStepCallback registers a callback that fires for every recorded step,
// in order, as the solver finds it.
func WithStepCallback(cb func(Step)) Option {
	return func(c *solveConfig) {
		c.onStep = cb
	}
}
