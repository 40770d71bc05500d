/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"math"
	"math/rand"
	"testing"
)

func TestRoleTableCounts(t *testing.T) {
	for players, counts := range roleTable {
		if got := counts[0] + counts[1] + counts[2]; got != players {
			t.Errorf("players=%d: repartition %v sums to %d", players, counts, got)
		}
	}
}

func TestDealMatchesRoleTable(t *testing.T) {
	for players := range roleTable {
		for seed := int64(0); seed < 20; seed++ {
			state, err := newGameState(players, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatalf("players=%d seed=%d: %v", players, seed, err)
			}

			if len(state.Characters) != players {
				t.Fatalf("players=%d seed=%d: dealt %d characters", players, seed, len(state.Characters))
			}

			type dealt struct {
				align Alignment
				i     int
			}

			perAlign := make(map[Alignment]int)
			seen := make(map[dealt]bool)
			for _, c := range state.Characters {
				perAlign[c.Align]++

				key := dealt{align: c.Align, i: c.I}
				if seen[key] {
					t.Errorf("players=%d seed=%d: archetype %s/%d dealt twice", players, seed, c.Align, c.I)
				}
				seen[key] = true

				if c.Revealed {
					t.Errorf("players=%d seed=%d: character dealt revealed", players, seed)
				}
				if len(c.Equipments) != 0 {
					t.Errorf("players=%d seed=%d: character dealt with equipment", players, seed)
				}
			}

			counts := roleTable[players]
			for n, align := range alignments {
				if perAlign[align] != counts[n] {
					t.Errorf("players=%d seed=%d: %d %s characters, want %d",
						players, seed, perAlign[align], align, counts[n])
				}
			}
		}
	}
}

func TestSixPlayerDeal(t *testing.T) {
	state, err := newGameState(6, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	perAlign := make(map[Alignment]int)
	for _, c := range state.Characters {
		perAlign[c.Align]++
	}
	for _, align := range alignments {
		if perAlign[align] != 2 {
			t.Errorf("%s: got %d characters, want 2", align, perAlign[align])
		}
	}
}

// Below seven players the full Neutral roster is available, Bob included.
func TestSmallDealKeepsRemovedArchetype(t *testing.T) {
	bob := -1
	for i, a := range rosters[AlignNeutral] {
		if a.Name == removedArchetype {
			bob = i
		}
	}
	if bob != len(rosters[AlignNeutral])-1 {
		t.Fatalf("%s is not the last Neutral roster entry", removedArchetype)
	}

	found := false
	for seed := int64(0); seed < 200 && !found; seed++ {
		state, err := newGameState(6, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		for _, c := range state.Characters {
			if c.Align == AlignNeutral && c.I == bob {
				found = true
			}
		}
	}
	if !found {
		t.Errorf("%s never dealt in 200 six-player deals", removedArchetype)
	}
}

func TestLargeDealRemovesArchetype(t *testing.T) {
	bob := len(rosters[AlignNeutral]) - 1

	for _, players := range []int{7, 8} {
		for seed := int64(0); seed < 200; seed++ {
			state, err := newGameState(players, rand.New(rand.NewSource(seed)))
			if err != nil {
				t.Fatal(err)
			}
			for _, c := range state.Characters {
				if c.Align == AlignNeutral && c.I == bob {
					t.Fatalf("players=%d seed=%d: %s dealt despite removal", players, seed, removedArchetype)
				}
			}
		}
	}
}

func TestUnsupportedPlayerCount(t *testing.T) {
	for _, players := range []int{0, 1, 3, 9, 100} {
		if _, err := newGameState(players, rand.New(rand.NewSource(1))); err == nil {
			t.Errorf("players=%d: expected an error", players)
		}
	}
}

func isPermutation(p []int, size int) bool {
	if len(p) != size {
		return false
	}
	seen := make([]bool, size)
	for _, v := range p {
		if v < 0 || v >= size || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}

func TestAreasArePermutation(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		state, err := newGameState(8, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		if !isPermutation(state.Areas, len(areaCards)) {
			t.Fatalf("seed=%d: areas %v is not a permutation", seed, state.Areas)
		}
	}
}

func TestPilesArePermutations(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		state, err := newGameState(8, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		for _, cardType := range cardTypes {
			if !isPermutation(state.piles[cardType], len(decks[cardType])) {
				t.Fatalf("seed=%d: %s pile %v is not a permutation", seed, cardType, state.piles[cardType])
			}
		}
	}
}

func TestInitialDiceInRange(t *testing.T) {
	for seed := int64(0); seed < 100; seed++ {
		state, err := newGameState(8, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatal(err)
		}
		if state.DicesVal[0] < 1 || state.DicesVal[0] > smallDiceFaces {
			t.Fatalf("seed=%d: d%d showed %d", seed, smallDiceFaces, state.DicesVal[0])
		}
		if state.DicesVal[1] < 1 || state.DicesVal[1] > largeDiceFaces {
			t.Fatalf("seed=%d: d%d showed %d", seed, largeDiceFaces, state.DicesVal[1])
		}
	}
}

func TestTokenLayout(t *testing.T) {
	for _, players := range []int{4, 5, 6, 7, 8} {
		centers := tokenLayout(players)
		if len(centers) != 2*players {
			t.Fatalf("players=%d: %d token centers", players, len(centers))
		}

		for i := 0; i < players; i++ {
			theta := 2 * float64(i) * math.Pi / float64(players)
			want := [2]float64{.25 + .02*math.Cos(theta), .15 + .02*math.Sin(theta)}
			if got := centers[2*i]; math.Abs(got[0]-want[0]) > 1e-12 || math.Abs(got[1]-want[1]) > 1e-12 {
				t.Errorf("players=%d token %d: got %v, want %v", players, 2*i, got, want)
			}
		}

		// The staging grid depends only on seat index and seat count.
		again := tokenLayout(players)
		for i := range centers {
			if centers[i] != again[i] {
				t.Errorf("players=%d: layout not deterministic at token %d", players, i)
			}
		}
	}
}

func TestDealIsReproducible(t *testing.T) {
	a, err := newGameState(8, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := newGameState(8, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatal(err)
	}

	if a.DicesVal != b.DicesVal {
		t.Errorf("dice differ: %v vs %v", a.DicesVal, b.DicesVal)
	}
	for i := range a.Characters {
		if a.Characters[i].Align != b.Characters[i].Align || a.Characters[i].I != b.Characters[i].I {
			t.Errorf("seat %d differs: %v vs %v", i, a.Characters[i], b.Characters[i])
		}
	}
	for i := range a.Areas {
		if a.Areas[i] != b.Areas[i] {
			t.Errorf("area slot %d differs", i)
		}
	}
	for _, cardType := range cardTypes {
		for i := range a.piles[cardType] {
			if a.piles[cardType][i] != b.piles[cardType][i] {
				t.Errorf("%s pile differs at %d", cardType, i)
			}
		}
	}
}

func TestDeckSizes(t *testing.T) {
	for _, cardType := range cardTypes {
		if len(decks[cardType]) != 16 {
			t.Errorf("%s deck holds %d cards, want 16", cardType, len(decks[cardType]))
		}
	}

	equips := map[CardType]int{}
	for _, cardType := range cardTypes {
		for _, c := range decks[cardType] {
			if c.Equip {
				equips[cardType]++
			}
		}
	}
	if equips[CardVision] != 0 {
		t.Errorf("vision deck holds %d equipment cards, want 0", equips[CardVision])
	}
	if equips[CardDark] != 6 || equips[CardLight] != 6 {
		t.Errorf("equipment counts dark=%d light=%d, want 6 each", equips[CardDark], equips[CardLight])
	}
}
