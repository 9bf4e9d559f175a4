/*
Package profiler provides named-timer accumulation for coarse pipeline
timing.

A Profiler maps stage names to total duration and call count. Attach one to
a chain with WithProfiler to have each run recorded under its execution
mode, or record sections of host code directly:

	prof := profiler.New()

	start := time.Now()
	loadInput()
	prof.Record("load", time.Since(start))

	fmt.Print(prof)
*/
package profiler
