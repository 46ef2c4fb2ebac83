package reconcile

import (
	"github.com/arthur-debert/modsync/pkg/types"
)

// Plan is the difference between a local listing and a remote manifest
type Plan struct {
	// Remove holds local names absent from the manifest, in listing order
	Remove []types.ModName
	// Download holds manifest names missing locally, in manifest order and
	// without duplicates
	Download []types.ModName
	// Present holds manifest names already on disk, in manifest order
	Present []types.ModName
}

// NewPlan computes what a reconcile of local against remote would do.
// Equality is by exact name.
func NewPlan(local, remote []types.ModName) Plan {
	localSet := types.NewModSet(local)
	remoteSet := types.NewModSet(remote)

	p := Plan{
		Remove:   []types.ModName{},
		Download: []types.ModName{},
		Present:  []types.ModName{},
	}

	for _, name := range local {
		if !remoteSet.Has(name) {
			p.Remove = append(p.Remove, name)
		}
	}

	seen := make(types.ModSet, len(remote))
	for _, name := range remote {
		if seen.Has(name) {
			continue
		}
		seen[name] = struct{}{}
		if localSet.Has(name) {
			p.Present = append(p.Present, name)
		} else {
			p.Download = append(p.Download, name)
		}
	}

	return p
}

// Empty reports whether applying the plan would change nothing on disk
func (p Plan) Empty() bool {
	return len(p.Remove) == 0 && len(p.Download) == 0
}
