// Package kangaroo searches for the discrete logarithm of a point on a
// short-Weierstrass curve (secp256k1 by default) within a known exponent
// range, using a randomized Pollard kangaroo walk with distinguished-point
// collision detection.
//
// Each round draws a random anchor inside the range and places a tame
// herd around it and a wild herd around the target. Both herds hop
// through the same pseudorandom jump table. Walkers that land on a
// distinguished point (x mod D == 0) are recorded, and a tame and a wild
// walker meeting at the same point reveal the logarithm as the difference
// of their offsets. A round that spends its hop budget is discarded and
// the search restarts elsewhere.
//
// # Quick Start
//
//	c := curve.Secp256k1()
//	target, err := kangaroo.TargetForBits(c, "033c4a45...4f7c", 20)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cfg := kangaroo.DefaultConfig()
//	cfg.TameHerd, cfg.WildHerd = 16, 16
//	cfg.HopModulo, cfg.DPRarity, cfg.SpreadBits = 16, 32, 12
//
//	solver, err := kangaroo.NewSolver(c, target, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sol, err := solver.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Recovered key: %s\n", sol.Hex())
//
// # Sinks
//
// The solver reports through two interfaces. A SolutionSink receives the
// validated key once; a ProgressSink is told when each round starts and
// gets a Progress snapshot every Config.ProgressInterval hops.
//
//	solver.WithSolutionSink(kangaroo.SolutionFunc(func(sol *kangaroo.Solution) error {
//	    return os.WriteFile("found.txt", []byte(sol.Hex()), 0o600)
//	}))
package kangaroo
