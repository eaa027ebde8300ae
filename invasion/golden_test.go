package invasion_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/porelab/percolate/invasion"
	"github.com/porelab/percolate/pnet"
)

// invasionSnapshot is the canonical serialized form of a Result used
// for golden comparison. Field order is fixed by the struct, so equal
// Results always marshal to identical bytes.
type invasionSnapshot struct {
	PoreSequence   []int `json:"pore_sequence"`
	ThroatSequence []int `json:"throat_sequence"`
}

// assertGolden runs the invasion and compares the snapshot against
// testdata/golden/<name>.golden. Regenerate with:
//
//	go test ./invasion -run TestGolden -update
func assertGolden(t *testing.T, name string, net *pnet.Network, entry []float64, inlets []int) {
	t.Helper()

	res, err := invasion.Run(net, entry, inlets)
	require.NoError(t, err)

	data, err := json.Marshal(invasionSnapshot{
		PoreSequence:   res.PoreSequence,
		ThroatSequence: res.ThroatSequence,
	})
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}

func TestGolden_Ring4(t *testing.T) {
	net, err := pnet.FromThroats(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	require.NoError(t, err)

	assertGolden(t, "ring4", net, []float64{0.2, 0.5, 0.1, 0.4}, []int{0})
}

func TestGolden_Lattice3x3(t *testing.T) {
	// 3×3 square lattice, row-major pore ids, horizontal throat before
	// vertical at each pore. Entry pressures decrease with throat id, so
	// the front spirals counter-clockwise from the corner inlet.
	const side = 3
	var throats [][2]int
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			p := r*side + c
			if c+1 < side {
				throats = append(throats, [2]int{p, p + 1})
			}
			if r+1 < side {
				throats = append(throats, [2]int{p, p + side})
			}
		}
	}
	net, err := pnet.FromThroats(side*side, throats)
	require.NoError(t, err)

	entry := make([]float64, net.Throats())
	for i := range entry {
		entry[i] = float64(net.Throats() - i)
	}

	assertGolden(t, "lattice3x3", net, entry, []int{0})
}

func TestGolden_SplitPair(t *testing.T) {
	// Two islands; the dry one must keep its -1 sentinels.
	net, err := pnet.FromThroats(4, [][2]int{{0, 1}, {2, 3}})
	require.NoError(t, err)

	assertGolden(t, "split_pair", net, []float64{1.0, 0.5}, []int{0})
}
