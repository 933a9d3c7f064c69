// Package bounce computes kinematic quantities for an idealized bouncing ball.
//
// A ball is dropped from height H0 and every bounce reaches exactly half of
// the previous apex. There is no air resistance, so each rise takes as long
// as the matching fall, t = sqrt(2h/g).
//
//   - [Compute]: apex height, distance and elapsed time at the n-th apex
//   - [ComputeClosedForm]: the same quantities via geometric series
//   - [Segments]: per-phase breakdown of the motion
//   - [Trajectory]: sampled height over time
//
// # Example
//
//	r := bounce.ComputeDefault(10)
//	fmt.Printf("%.6f %.6f %.6f\n", r.BounceHeight, r.TotalDistance, r.TotalTime)
package bounce
