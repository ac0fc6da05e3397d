// Package sim provides the kernel-side state for the network simulator:
// node creation, model registration, and deterministic random numbers.
//
// # Reading Guide
//
// Start with these three files to understand the kernel:
//   - kernel.go: the Kernel object, GID allocation, and the node lookup table
//   - model.go: the model registry mapping model names to ModelIDs
//   - network.go: YAML network specifications and population construction
//
// # Architecture
//
// The kernel owns all mutable state: the monotonic GID counter, the
// allocation log, the model registry, and the per-virtual-process RNG
// streams. The collection type that addresses created nodes lives in the
// sim/gid sub-package and holds no mutable state at all; it reads kernel
// state only through the narrow gid.Registry interface, which Kernel
// implements.
//
// The kernel is not safe for concurrent use. Callers that share one Kernel
// across goroutines must serialize access themselves; gid.Collection values
// handed out by Create are immutable and need no such care.
package sim
