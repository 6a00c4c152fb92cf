// Package microbench is a small benchmarking harness with adaptive sampling.
//
// # Overview
//
// microbench times repeated executions of a workload and decides on its own
// when it has seen enough. Each sample times a batch of iterations; after
// every sample the harness recomputes the running mean and relative standard
// deviation (RSD) of the samples collected so far and stops once the RSD
// drops below a configured threshold. The reported result is the fastest
// sample observed, which best approximates steady-state performance once
// scheduler noise and cache effects are excluded.
//
// Stopping conditions, in order of evaluation after each sample:
//
//   - Convergence: at least MinSamples collected and RSD strictly below
//     MaxRSD.
//   - Wall-clock budget: cumulative run time reached MaxDuration.
//   - Sample cap: MaxSamples collected.
//
// # Quick Start
//
// Benchmark a function and print its throughput:
//
//	bench, err := microbench.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opts := microbench.DefaultOptions()
//	opts.Iterations = 1000
//	opts.WarmupIterations = 100
//
//	buf := make([]byte, 1<<16)
//	res := microbench.Run(bench, &opts, func() [32]byte {
//	    return sha256.Sum256(buf)
//	})
//
//	fmt.Println(res)                                    // "0.42s"
//	fmt.Println(res.ThroughputBytes(uint64(len(buf))))  // "155.21 MB/s"
//
// Every workload invocation is routed through [BlackBox], so the compiler
// cannot discard the benchmarked computation as dead code. Use BlackBox
// directly for intermediate values inside the workload if needed.
//
// # Verbose narration
//
// With Options.Verbose set (or the BENCHMARK_VERBOSE environment variable
// present when DefaultOptions is called), the harness narrates each sample
// through its slog logger: per-sample elapsed time, running mean ± RSD, and
// the reason it stopped. Narration is observational only and never affects
// the sampling decisions. The examples wire a tint handler for readable
// output:
//
//	slog.SetDefault(slog.New(
//	    tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}),
//	))
//
// # Timer precision
//
// Elapsed time is read from a monotonic tick source described by a
// [Precision] descriptor (tick frequency). All unit conversions on results
// go through the descriptor, so tick arithmetic stays exact and a Result can
// only be merged with another Result measured at a compatible precision.
package microbench
