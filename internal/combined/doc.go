// Package combined provides interaction benchmarks that run the queue the
// way the commands do: together with cancellation polling and occupancy
// ticks, and side by side with other ring implementations.
//
// These benchmarks are more representative than the isolated ones in
// internal/queue because they include the cost of everything a real spin
// loop checks on each iteration.
package combined
