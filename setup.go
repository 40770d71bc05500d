/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
)

// Equipment is a reference to a printed card sitting in front of a player.
type Equipment struct {
	Type  CardType `json:"type"`
	ICard int      `json:"i_card"`
}

// Character is one dealt character: the roster it was drawn from, its
// index within that roster, and the mutable per-seat state. Revealed is
// monotonic; it never goes back to false.
type Character struct {
	Align      Alignment   `json:"align"`
	I          int         `json:"i"`
	Revealed   bool        `json:"revealed"`
	Equipments []Equipment `json:"equipments"`
}

// GameState is the authoritative copy of everything the table shares.
// It is only ever touched from the hub's run loop.
type GameState struct {
	Players      int
	TokensCenter [][2]float64
	DicesVal     [2]int
	Characters   []Character
	Areas        []int
	ActivePlayer int

	// piles holds the remaining card indices per deck, drawn from the end.
	// Deck contents are never sent to clients; they learn cards one draw
	// at a time.
	piles map[CardType][]int
}

// newGameState deals the table once, before any client connects. All
// randomness for the session's setup flows through rng.
func newGameState(players int, rng *rand.Rand) (*GameState, error) {
	counts, ok := roleTable[players]
	if !ok {
		return nil, fmt.Errorf("no role repartition for %d players", players)
	}

	state := &GameState{
		Players:      players,
		TokensCenter: tokenLayout(players),
		DicesVal:     [2]int{rng.Intn(smallDiceFaces) + 1, rng.Intn(largeDiceFaces) + 1},
		Characters:   make([]Character, 0, players),
		Areas:        rng.Perm(len(areaCards)),
		piles:        make(map[CardType][]int, len(cardTypes)),
	}

	for n, align := range alignments {
		roster := rosters[align]
		if align == AlignNeutral && players >= removalPlayerThreshold {
			roster = roster[:len(roster)-1] // drop Bob
		}

		for _, i := range rng.Perm(len(roster))[:counts[n]] {
			state.Characters = append(state.Characters, Character{
				Align:      align,
				I:          i,
				Equipments: []Equipment{},
			})
		}
	}
	rng.Shuffle(len(state.Characters), func(i, j int) {
		state.Characters[i], state.Characters[j] = state.Characters[j], state.Characters[i]
	})

	for _, cardType := range cardTypes {
		state.piles[cardType] = rng.Perm(len(decks[cardType]))
	}

	return state, nil
}

// tokenLayout places each seat's two tokens in board-relative units:
// the first on a ring around the board center, the second on a staging
// grid along the left edge. Positions depend only on seat index and
// seat count.
func tokenLayout(players int) [][2]float64 {
	centers := make([][2]float64, 2*players)
	half := float64(players) / 2

	for i := 0; i < players; i++ {
		theta := 2 * float64(i) * math.Pi / float64(players)
		centers[2*i] = [2]float64{.25 + .02*math.Cos(theta), .15 + .02*math.Sin(theta)}
		centers[2*i+1] = [2]float64{.03 + .02*math.Mod(float64(i), half), .25 + .02*math.Floor(float64(i)/half)}
	}

	return centers
}

// newRNG seeds the session's math/rand source from crypto/rand.
func newRNG() *rand.Rand {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		panic("crypto/rand failure: " + err.Error())
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(buf[:]))))
}
