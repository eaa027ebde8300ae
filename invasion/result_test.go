package invasion_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/porelab/percolate/invasion"
	"github.com/porelab/percolate/pnet"
)

// ringResult runs the canonical ring from pore 0.
func ringResult(t *testing.T) *invasion.Result {
	t.Helper()
	net, err := pnet.FromThroats(4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	if err != nil {
		t.Fatalf("FromThroats: %v", err)
	}
	res, err := invasion.Run(net, []float64{0.2, 0.5, 0.1, 0.4}, []int{0})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	return res
}

// ---- Select ----

func TestSelect_Subsets(t *testing.T) {
	res := ringResult(t)

	cases := []struct {
		name        string
		pores       []int
		throats     []int
		wantPores   []int
		wantThroats []int
	}{
		{
			name:        "everything on nil subsets",
			wantPores:   []int{0, 1, 3, 2},
			wantThroats: []int{0, 3, 2, 1},
		},
		{
			name:        "everything on empty subsets",
			pores:       []int{},
			throats:     []int{},
			wantPores:   []int{0, 1, 3, 2},
			wantThroats: []int{0, 3, 2, 1},
		},
		{
			name:        "request order preserved",
			pores:       []int{2, 0},
			throats:     []int{1},
			wantPores:   []int{3, 0},
			wantThroats: []int{3},
		},
		{
			name:        "repeated ids allowed",
			pores:       []int{3, 3},
			throats:     []int{0, 0, 2},
			wantPores:   []int{2, 2},
			wantThroats: []int{0, 0, 2},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pores, throats, err := res.Select(tc.pores, tc.throats)
			if err != nil {
				t.Fatalf("Select: %v", err)
			}
			if !reflect.DeepEqual(pores, tc.wantPores) {
				t.Errorf("pores = %v, want %v", pores, tc.wantPores)
			}
			if !reflect.DeepEqual(throats, tc.wantThroats) {
				t.Errorf("throats = %v, want %v", throats, tc.wantThroats)
			}
		})
	}
}

func TestSelect_RangeErrors(t *testing.T) {
	res := ringResult(t)

	if _, _, err := res.Select([]int{4}, nil); !errors.Is(err, invasion.ErrPoreRange) {
		t.Errorf("pore 4: got %v, want ErrPoreRange", err)
	}
	if _, _, err := res.Select(nil, []int{-1}); !errors.Is(err, invasion.ErrThroatRange) {
		t.Errorf("throat -1: got %v, want ErrThroatRange", err)
	}
	// The pore subset is validated first.
	if _, _, err := res.Select([]int{9}, []int{9}); !errors.Is(err, invasion.ErrPoreRange) {
		t.Errorf("both bad: got %v, want ErrPoreRange", err)
	}
}

func TestSelect_ReturnsCopies(t *testing.T) {
	res := ringResult(t)

	pores, throats, err := res.Select(nil, nil)
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	pores[0], throats[0] = 99, 99

	if res.PoreSequence[0] == 99 || res.ThroatSequence[0] == 99 {
		t.Error("Select must not alias the Result's own slices")
	}
}

// ---- Counters ----

func TestInvadedCounts(t *testing.T) {
	res := ringResult(t)

	if got := res.InvadedPores(); got != 4 {
		t.Errorf("InvadedPores = %d, want 4", got)
	}
	if got := res.InvadedThroats(); got != 4 {
		t.Errorf("InvadedThroats = %d, want 4", got)
	}

	partial := &invasion.Result{
		PoreSequence:   []int{0, 1, -1, -1},
		ThroatSequence: []int{0, -1},
	}
	if got := partial.InvadedPores(); got != 2 {
		t.Errorf("InvadedPores = %d, want 2", got)
	}
	if got := partial.InvadedThroats(); got != 1 {
		t.Errorf("InvadedThroats = %d, want 1", got)
	}
}
