package reconcile

import (
	"math/rand"
	"testing"

	"github.com/arthur-debert/modsync/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestNewPlan(t *testing.T) {
	tests := []struct {
		name   string
		local  []types.ModName
		remote []types.ModName
		want   Plan
	}{
		{
			name:   "mixed",
			local:  types.ModNames("a.jar", "b.jar"),
			remote: types.ModNames("b.jar", "c.jar"),
			want: Plan{
				Remove:   types.ModNames("a.jar"),
				Download: types.ModNames("c.jar"),
				Present:  types.ModNames("b.jar"),
			},
		},
		{
			name:   "empty remote removes everything",
			local:  types.ModNames("a.jar", "b.jar"),
			remote: []types.ModName{},
			want: Plan{
				Remove:   types.ModNames("a.jar", "b.jar"),
				Download: []types.ModName{},
				Present:  []types.ModName{},
			},
		},
		{
			name:   "empty local downloads in manifest order",
			local:  nil,
			remote: types.ModNames("z.jar", "a.jar", "m.jar"),
			want: Plan{
				Remove:   []types.ModName{},
				Download: types.ModNames("z.jar", "a.jar", "m.jar"),
				Present:  []types.ModName{},
			},
		},
		{
			name:   "duplicates collapse",
			local:  types.ModNames("b.jar"),
			remote: types.ModNames("a.jar", "b.jar", "a.jar", "b.jar"),
			want: Plan{
				Remove:   []types.ModName{},
				Download: types.ModNames("a.jar"),
				Present:  types.ModNames("b.jar"),
			},
		},
		{
			name:   "names are case sensitive",
			local:  types.ModNames("A.jar"),
			remote: types.ModNames("a.jar"),
			want: Plan{
				Remove:   types.ModNames("A.jar"),
				Download: types.ModNames("a.jar"),
				Present:  []types.ModName{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPlan(tt.local, tt.remote))
		})
	}
}

func TestPlanEmpty(t *testing.T) {
	assert.True(t, NewPlan(types.ModNames("a.jar"), types.ModNames("a.jar")).Empty())
	assert.False(t, NewPlan(nil, types.ModNames("a.jar")).Empty())
	assert.False(t, NewPlan(types.ModNames("a.jar"), nil).Empty())
}

// Applying a plan to the local set always yields the remote set
func TestPlanSetEquality(t *testing.T) {
	pool := types.ModNames("a.jar", "b.jar", "c.jar", "d.jar", "e.jar", "f.jar")
	rng := rand.New(rand.NewSource(42))

	pick := func() []types.ModName {
		var out []types.ModName
		for _, name := range pool {
			if rng.Intn(2) == 0 {
				out = append(out, name)
			}
		}
		rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	for i := 0; i < 200; i++ {
		local, remote := pick(), pick()
		p := NewPlan(local, remote)

		after := types.NewModSet(local)
		for _, name := range p.Remove {
			delete(after, name)
		}
		for _, name := range p.Download {
			after[name] = struct{}{}
		}

		assert.Equal(t, types.NewModSet(remote), after, "local=%v remote=%v", local, remote)
		assert.True(t, NewPlan(after.Sorted(), remote).Empty(), "second plan must be a no-op")
	}
}
