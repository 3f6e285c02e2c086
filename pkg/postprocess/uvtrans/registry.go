package uvtrans

import (
	"go.uber.org/zap"

	"github.com/Faultbox/scenepost/internal/logger"
)

// registry collects candidate transform setups during phase 1 and merges
// equivalent ones. Matching is applied candidate-against-representative in
// discovery order, never pairwise across all candidates: the tolerance is
// not transitive, and first-representative-wins is what bounds the drift.
type registry struct {
	// setups holds every entry in discovery order. Identity entries are
	// kept too: they claim their source channel during allocation.
	setups []*setup

	// reps indexes the mergeable (non-identity) representatives by
	// source channel. Setups on different source channels never merge.
	reps map[int][]*setup

	eps     float32
	noMerge bool
}

func newRegistry(eps float32, noMerge bool) *registry {
	if eps <= 0 {
		eps = defaultMergeEpsilon
	}
	return &registry{
		reps:    make(map[int][]*setup),
		eps:     eps,
		noMerge: noMerge,
	}
}

// add registers a candidate and its material reference, returning the
// setup the reference now belongs to. Non-finite candidates degrade to
// the identity with a warning. A reference belongs to exactly one setup.
func (r *registry) add(cand setup, ref materialRef) *setup {
	if !cand.finite() {
		logger.Warn("UV transform has non-finite components, ignoring it",
			zap.String("material", ref.mat.Name),
			zap.String("semantic", ref.semantic.String()),
			zap.Int("slot", ref.index))
		cand.reset()
	}

	cand.normalize()

	if cand.untransformed() {
		// Identity candidates need no resolution and are not merged
		// against each other; the material keeps its source channel.
		cand.state = stateIdentity
		cand.refs = []materialRef{ref}
		entry := &cand
		r.setups = append(r.setups, entry)
		return entry
	}

	if !r.noMerge {
		for _, rep := range r.reps[cand.srcChannel] {
			if rep.matches(&cand, r.eps) {
				// First-seen mapping mode is kept on a merge; the mode
				// only affects sampling outside [0,1], not the channel.
				rep.refs = append(rep.refs, ref)
				return rep
			}
		}
	}

	cand.refs = []materialRef{ref}
	entry := &cand
	r.setups = append(r.setups, entry)
	r.reps[cand.srcChannel] = append(r.reps[cand.srcChannel], entry)
	return entry
}

// transformed returns the number of non-identity setups.
func (r *registry) transformed() int {
	n := 0
	for _, s := range r.setups {
		if s.state != stateIdentity {
			n++
		}
	}
	return n
}
