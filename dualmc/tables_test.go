package dualmc

import "testing"

// edgeCorners lists the two corner indices of each cell edge, matching
// the numbering in codes.go.
var edgeCorners = [12][2]int{
	{0, 1}, {1, 5}, {4, 5}, {0, 4},
	{2, 3}, {3, 7}, {6, 7}, {2, 6},
	{0, 2}, {1, 3}, {5, 7}, {4, 6},
}

// crossingEdges returns the mask of edges whose endpoints lie on opposite
// sides of the surface for a given cell code.
func crossingEdges(code int) pointCode {
	var mask pointCode
	for e, c := range edgeCorners {
		a := code>>c[0]&1 != 0
		b := code>>c[1]&1 != 0
		if a != b {
			mask |= 1 << e
		}
	}
	return mask
}

func popcount(code int) int {
	n := 0
	for ; code != 0; code &= code - 1 {
		n++
	}
	return n
}

func TestDualPointsListInvariants(t *testing.T) {
	for code := 0; code < 256; code++ {
		slots := dualPointsList[code]

		// non-zero slots form a prefix
		seenZero := false
		for i, s := range slots {
			if s == 0 {
				seenZero = true
				continue
			}
			if seenZero {
				t.Fatalf("code %d: slot %d non-zero after a zero slot", code, i)
			}
			if s > 0xFFF {
				t.Fatalf("code %d: slot %d = %#x exceeds 12 bits", code, i, s)
			}
		}

		// distinct dual points use disjoint edge sets
		var union pointCode
		for i, a := range slots {
			if a == 0 {
				continue
			}
			for _, b := range slots[i+1:] {
				if a&b != 0 {
					t.Fatalf("code %d: overlapping slots %#x and %#x", code, a, b)
				}
			}
			union |= a
		}

		// the dual points together cover exactly the intersected edges
		if want := crossingEdges(code); union != want {
			t.Fatalf("code %d: edge union %#x, want %#x", code, union, want)
		}
		if code != 0 && code != 255 && slots[0] == 0 {
			t.Fatalf("code %d: no dual points", code)
		}
	}
}

func TestResolverSlotMatch(t *testing.T) {
	for code := 0; code < 256; code++ {
		crossing := crossingEdges(code)
		for e := 0; e < 12; e++ {
			bit := pointCode(1) << e
			var hit pointCode
			for _, s := range dualPointsList[code] {
				if s&bit != 0 {
					hit = s
					break
				}
			}
			if crossing&bit != 0 && hit == 0 {
				t.Fatalf("code %d: intersected edge %d has no dual point", code, e)
			}
			if crossing&bit == 0 && hit != 0 {
				t.Fatalf("code %d: non-intersected edge %d resolves to %#x", code, e, hit)
			}
		}
	}
}

func TestProblematicConfigsDomain(t *testing.T) {
	flagged := 0
	for code := 0; code < 256; code++ {
		dir := problematicConfigs[code]
		switch {
		case dir == 255:
			continue
		case dir > 5:
			t.Fatalf("code %d: direction %d out of range", code, dir)
		}
		flagged++
		if n := popcount(code); n != 5 && n != 6 {
			t.Fatalf("code %d: flagged with %d inside corners", code, n)
		}
		// the inverse configuration separates the ambiguous face
		if problematicConfigs[code^0xFF] != 255 {
			t.Fatalf("code %d: inverse %d is also flagged", code, code^0xFF)
		}
	}
	if flagged != 36 {
		t.Fatalf("flagged %d configurations, want 36", flagged)
	}
}

func TestPinnedTableEntries(t *testing.T) {
	if dualPointsList[0] != [4]pointCode{} {
		t.Fatalf("code 0: %#v", dualPointsList[0])
	}
	if dualPointsList[255] != [4]pointCode{} {
		t.Fatalf("code 255: %#v", dualPointsList[255])
	}
	// single corner 0 inside: one point on edges 0, 3, 8
	if want := [4]pointCode{0x109, 0, 0, 0}; dualPointsList[1] != want {
		t.Fatalf("code 1: %#v, want %#v", dualPointsList[1], want)
	}
	// alternating corners 0,3,5,6: four isolated three-edge points
	if want := [4]pointCode{0x109, 0x230, 0x406, 0x8C0}; dualPointsList[105] != want {
		t.Fatalf("code 105: %#v, want %#v", dualPointsList[105], want)
	}
	// corners 0,3 outside, rest inside: one joined six-edge point
	if want := [4]pointCode{0x339, 0, 0, 0}; dualPointsList[246] != want {
		t.Fatalf("code 246: %#v, want %#v", dualPointsList[246], want)
	}

	if problematicConfigs[246] != 4 { // ambiguous face toward -z
		t.Fatalf("problematicConfigs[246] = %d", problematicConfigs[246])
	}
	if problematicConfigs[111] != 5 { // ambiguous face toward +z
		t.Fatalf("problematicConfigs[111] = %d", problematicConfigs[111])
	}
	for _, code := range []int{0, 9, 105, 144, 255} {
		if problematicConfigs[code] != 255 {
			t.Fatalf("problematicConfigs[%d] = %d, want 255", code, problematicConfigs[code])
		}
	}
}
