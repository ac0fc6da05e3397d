package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// GlobalStream is the stream name for kernel-wide randomness (e.g. model
// parameter randomization at creation time). Uses the master seed directly.
const GlobalStream = "global"

// VPStream returns the stream name for virtual process vp. Node-local
// randomness draws from its virtual process stream so that results are
// independent of how nodes are distributed over processes.
func VPStream(vp int) string {
	return fmt.Sprintf("vp_%d", vp)
}

// PartitionedRNG provides deterministic, isolated RNG streams per named
// consumer. Two kernels with the same master seed produce identical streams.
//
// Derivation:
//   - GlobalStream uses the master seed directly.
//   - Every other stream uses masterSeed XOR fnv1a64(streamName).
//
// Not safe for concurrent use; the kernel serializes access.
type PartitionedRNG struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a master seed.
func NewPartitionedRNG(seed int64) *PartitionedRNG {
	return &PartitionedRNG{
		seed:    seed,
		streams: make(map[string]*rand.Rand),
	}
}

// Stream returns the deterministically seeded RNG for the named stream. The
// same name always returns the same *rand.Rand instance. Never returns nil.
func (p *PartitionedRNG) Stream(name string) *rand.Rand {
	if rng, ok := p.streams[name]; ok {
		return rng
	}
	derived := p.seed
	if name != GlobalStream {
		derived ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(derived))
	p.streams[name] = rng
	return rng
}

// Global returns the kernel-wide stream.
func (p *PartitionedRNG) Global() *rand.Rand {
	return p.Stream(GlobalStream)
}

// VP returns the stream for virtual process vp.
func (p *PartitionedRNG) VP(vp int) *rand.Rand {
	return p.Stream(VPStream(vp))
}

// Seed returns the master seed behind this PartitionedRNG.
func (p *PartitionedRNG) Seed() int64 {
	return p.seed
}

// Reseed discards all streams and restarts derivation from seed. Used by
// Kernel.Reset.
func (p *PartitionedRNG) Reseed(seed int64) {
	p.seed = seed
	p.streams = make(map[string]*rand.Rand)
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
