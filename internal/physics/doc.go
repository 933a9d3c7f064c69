// Package physics provides the ball model integrated by the simulator.
//
// [Ball] implements [dynamo.System] and [dynamo.Hamiltonian]; its state is
// [height, velocity] with height measured upward from the ground.
package physics
