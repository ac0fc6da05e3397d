package sim

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/AlexVanMeegen/nest-simulator/sim/gid"
)

// Kernel holds the mutable simulation state this component depends on: the
// monotonic GID counter, the allocation log, the model registry, and the
// RNG streams. It is the explicit stand-in for what the original system kept
// as kernel-global state, passed into creation and validation operations by
// reference.
//
// Kernel implements gid.Registry.
type Kernel struct {
	// RunID correlates log lines across resets of the same process.
	RunID string

	models  *ModelRegistry
	rng     *PartitionedRNG
	seed    int64
	nextGID gid.GID
	// log of every allocation in creation order, i.e. ascending by First.
	// Lookup binary-searches it; adjacent same-model allocations are kept
	// distinct here because population boundaries matter for diagnostics.
	log []gid.RangeBlock
}

// NewKernel creates a kernel with an empty identifier space, the built-in
// model registry, and RNG streams derived from seed.
func NewKernel(seed int64) *Kernel {
	k := &Kernel{
		RunID:   uuid.NewString(),
		models:  NewModelRegistry(),
		rng:     NewPartitionedRNG(seed),
		seed:    seed,
		nextGID: 1,
	}
	logrus.Debugf("kernel %s initialized (seed %d)", k.RunID, seed)
	return k
}

// Models returns the kernel's model registry.
func (k *Kernel) Models() *ModelRegistry {
	return k.models
}

// RNG returns the kernel's partitioned RNG.
func (k *Kernel) RNG() *PartitionedRNG {
	return k.rng
}

// Reset clears all created nodes and reseeds the RNG streams, returning the
// kernel to its initial state. The model registry survives a reset. Any
// collection created before the reset keeps its GIDs but no longer resolves
// against this kernel.
func (k *Kernel) Reset() {
	k.nextGID = 1
	k.log = nil
	k.rng.Reseed(k.seed)
	logrus.Debugf("kernel %s reset", k.RunID)
}

// AllocateContiguous assigns the next n GIDs to model m and returns the
// covering block. n must be positive.
func (k *Kernel) AllocateContiguous(n int, m gid.ModelID) gid.RangeBlock {
	if n <= 0 {
		panic(fmt.Sprintf("AllocateContiguous: n must be positive, got %d", n))
	}
	b := gid.RangeBlock{First: k.nextGID, Last: k.nextGID + gid.GID(n) - 1, Model: m}
	k.nextGID = b.Last + 1
	k.log = append(k.log, b)
	return b
}

// Create allocates n nodes of the named model and returns them as a
// primitive collection. It fails when the model is not registered or n is
// not positive.
func (k *Kernel) Create(model string, n int) (gid.Collection, error) {
	m, ok := k.models.ID(model)
	if !ok {
		return gid.Collection{}, fmt.Errorf("creating nodes: unknown model %q", model)
	}
	if n <= 0 {
		return gid.Collection{}, fmt.Errorf("creating nodes: count must be positive, got %d", n)
	}
	b := k.AllocateContiguous(n, m)
	logrus.Debugf("kernel %s: created %d %s nodes, GIDs %d..%d", k.RunID, n, model, b.First, b.Last)
	return gid.NewPrimitive(b), nil
}

// MaxGID returns the highest GID assigned so far, 0 when no node has been
// created. Part of gid.Registry.
func (k *Kernel) MaxGID() gid.GID {
	return k.nextGID - 1
}

// NumNodes returns the number of nodes created since the last reset.
func (k *Kernel) NumNodes() int {
	return int(k.nextGID - 1)
}

// Lookup returns the model of g, or false when g has never been assigned.
// Part of gid.Registry.
func (k *Kernel) Lookup(g gid.GID) (gid.ModelID, bool) {
	i := sort.Search(len(k.log), func(i int) bool {
		return k.log[i].Last >= g
	})
	if i == len(k.log) || !k.log[i].Contains(g) {
		return 0, false
	}
	return k.log[i].Model, true
}

// interface check
var _ gid.Registry = (*Kernel)(nil)
