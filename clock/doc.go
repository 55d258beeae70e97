// Package clock implements the monotonic cycle counter the CPU
// interpreter and memory bus share: a 64-bit tick count, optional
// wall-clock pacing to a target frequency, and a timeout helper for
// running an instruction loop under a wall-clock budget.
package clock
