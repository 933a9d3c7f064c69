// Package viz renders bounce results for the terminal.
//
//   - [RenderReport]: styled summary of a [bounce.Result]
//   - [PlotTrajectory]: ASCII height-over-time chart
//   - [Explorer]: bubbletea model for stepping through bounce counts
package viz
