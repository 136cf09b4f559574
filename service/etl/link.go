package etl

import (
	"hash/fnv"
	"math/rand"

	entity "sterileops/model/entity"
)

// PartAssigner picks an inventory part ID for a production job. No
// authoritative link exists in the source data, so the assignment is a
// stand-in that only guarantees membership in the inventory part-ID set.
type PartAssigner interface {
	Assign(jobID string, index int) string
}

// Linker strategy names.
const (
	StrategyRandom     = "random"
	StrategyRoundRobin = "roundrobin"
	StrategyHash       = "hash"
)

type randomAssigner struct {
	parts []string
	rng   *rand.Rand
}

func (a *randomAssigner) Assign(string, int) string {
	return a.parts[a.rng.Intn(len(a.parts))]
}

type roundRobinAssigner struct {
	parts []string
}

func (a *roundRobinAssigner) Assign(_ string, index int) string {
	return a.parts[index%len(a.parts)]
}

type hashAssigner struct {
	parts []string
}

func (a *hashAssigner) Assign(jobID string, _ int) string {
	h := fnv.New32a()
	h.Write([]byte(jobID))
	// Reduce in unsigned space; int(uint32) can be negative on 32-bit platforms
	return a.parts[int(h.Sum32()%uint32(len(a.parts)))]
}

// NewAssigner builds the named strategy over the given part-ID set. An
// unrecognized name falls back to seeded random, which matches the original
// system's observable behavior while staying reproducible.
func NewAssigner(strategy string, seed int64, parts []string) PartAssigner {
	switch strategy {
	case StrategyRoundRobin:
		return &roundRobinAssigner{parts: parts}
	case StrategyHash:
		return &hashAssigner{parts: parts}
	default:
		return &randomAssigner{parts: parts, rng: rand.New(rand.NewSource(seed))}
	}
}

// PartIDs returns the distinct inventory part IDs in order of appearance.
func PartIDs(items []entity.InventoryItem) []string {
	seen := make(map[string]bool, len(items))
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.PartID == "" || seen[item.PartID] {
			continue
		}
		seen[item.PartID] = true
		ids = append(ids, item.PartID)
	}
	return ids
}

// AssignParts sets PartID on every job. With an empty part-ID set every job
// gets the UNKNOWN sentinel so downstream joins degrade instead of failing.
func AssignParts(jobs []entity.ProductionJob, parts []string, assigner PartAssigner) {
	if len(parts) == 0 {
		for i := range jobs {
			jobs[i].PartID = entity.PartUnknown
		}
		return
	}
	for i := range jobs {
		jobs[i].PartID = assigner.Assign(jobs[i].JobID, i)
	}
}
