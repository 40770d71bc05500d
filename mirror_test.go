/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"reflect"
	"testing"
)

func applyAll(t *testing.T, m *Mirror, msgs []any) {
	t.Helper()

	for _, msg := range msgs {
		data, err := json.Marshal(msg)
		if err != nil {
			t.Fatal(err)
		}
		if err := m.ApplyDelta(data); err != nil {
			t.Fatalf("applying %s: %v", data, err)
		}
	}
}

// Two replicas fed only by relay messages end up identical to the
// authoritative table, vision cards excepted.
func TestMirrorConvergence(t *testing.T) {
	h := newTestHub(t, newTestState(t, 4, 1), 2)
	a, b := join(h), join(h)

	mirrorA, mirrorB := NewMirror(), NewMirror()

	// Both intents and relay messages go through JSON, same as the wire.
	view(h)
	applyAll(t, mirrorA, recvAll(a))
	applyAll(t, mirrorB, recvAll(b))

	if mirrorA.ID != 0 || mirrorB.ID != 1 {
		t.Fatalf("mirrors seated as %d and %d", mirrorA.ID, mirrorB.ID)
	}

	h.inbox <- intentRequest{client: a, msg: MoveTokenIntent(0, [2]float64{.4, .6})}
	h.inbox <- intentRequest{client: a, msg: RollDiceIntent()}
	h.inbox <- intentRequest{client: b, msg: RevealIntent()}
	for i := 0; i < len(decks[CardDark]); i++ {
		h.inbox <- intentRequest{client: a, msg: DrawCardIntent(CardDark)}
	}
	h.inbox <- intentRequest{client: b, msg: DrawCardIntent(CardLight)}
	h.inbox <- intentRequest{client: b, msg: TakeEquipmentIntent(0, 0)}
	h.inbox <- intentRequest{client: a, msg: VisionIntent(5, 1)}
	h.inbox <- intentRequest{client: a, msg: EndTurnIntent()}

	v := view(h)
	applyAll(t, mirrorA, recvAll(a))
	applyAll(t, mirrorB, recvAll(b))

	for name, m := range map[string]*Mirror{"a": mirrorA, "b": mirrorB} {
		if !reflect.DeepEqual(m.TokensCenter, v.State.TokensCenter) {
			t.Errorf("mirror %s tokens diverged: %v vs %v", name, m.TokensCenter, v.State.TokensCenter)
		}
		if m.DicesVal != v.State.DicesVal {
			t.Errorf("mirror %s dice diverged: %v vs %v", name, m.DicesVal, v.State.DicesVal)
		}
		if !reflect.DeepEqual(m.Characters, v.State.Characters) {
			t.Errorf("mirror %s characters diverged:\n%v\n%v", name, m.Characters, v.State.Characters)
		}
		if !reflect.DeepEqual(m.Areas, v.State.Areas) {
			t.Errorf("mirror %s areas diverged: %v vs %v", name, m.Areas, v.State.Areas)
		}
		if m.ActivePlayer != v.State.ActivePlayer {
			t.Errorf("mirror %s active player diverged: %d vs %d", name, m.ActivePlayer, v.State.ActivePlayer)
		}
	}

	// The vision card reached its target and nobody else.
	want := []VisionMessage{{Type: "vision", ICard: 5, IFrom: 0}}
	if !reflect.DeepEqual(mirrorB.Visions, want) {
		t.Errorf("target visions = %v, want %v", mirrorB.Visions, want)
	}
	if len(mirrorA.Visions) != 0 {
		t.Errorf("sender collected %d visions", len(mirrorA.Visions))
	}
}

func TestMirrorRejectedInit(t *testing.T) {
	m := NewMirror()
	applyAll(t, m, []any{InitMessage{Type: "init", ID: -1}})

	if !m.Rejected || m.ID != -1 {
		t.Errorf("rejection not recorded: id=%d rejected=%v", m.ID, m.Rejected)
	}
	if m.TokensCenter != nil || m.Characters != nil {
		t.Error("rejected mirror holds table state")
	}
	if m.Hold(0) {
		t.Error("rejected mirror allowed a drag")
	}
}

func TestMirrorUnknownDelta(t *testing.T) {
	m := NewMirror()

	if err := m.ApplyDelta([]byte(`{"type":"checkmate"}`)); err == nil {
		t.Error("expected an error for an unknown delta")
	}
	if err := m.ApplyDelta([]byte(`not json`)); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func TestMirrorBadIndices(t *testing.T) {
	m := NewMirror()
	applyAll(t, m, []any{InitMessage{
		Type:         "init",
		ID:           0,
		TokensCenter: [][2]float64{{.1, .1}, {.2, .2}},
		Characters:   []Character{{Align: AlignHunter, I: 0}},
	}})

	for _, data := range []string{
		`{"type":"move_token","i_token":7,"center":[0.5,0.5]}`,
		`{"type":"reveal","who":3}`,
		`{"type":"draw_card","who":9,"card_type":"Black","i_card":0}`,
		`{"type":"take_equipment","who":0,"i_player":0,"i_equipment":4}`,
	} {
		if err := m.ApplyDelta([]byte(data)); err == nil {
			t.Errorf("expected an error for %s", data)
		}
	}
}

// Dragging is local: the mirror owns only its seat's two tokens and the
// server hears nothing until release.
func TestMirrorHoldRelease(t *testing.T) {
	m := NewMirror()
	applyAll(t, m, []any{InitMessage{
		Type:         "init",
		ID:           1,
		TokensCenter: [][2]float64{{.1, .1}, {.2, .2}, {.3, .3}, {.4, .4}},
		Characters:   []Character{{}, {}},
	}})

	for _, iToken := range []int{0, 1, 4, -1} {
		if m.Hold(iToken) {
			t.Errorf("held token %d belonging to another seat", iToken)
		}
	}

	if !m.Hold(2) || !m.Held[0] {
		t.Fatal("could not hold own token")
	}

	intent, ok := m.Release(2, [2]float64{.7, .8})
	if !ok || m.Held[0] {
		t.Fatal("release failed")
	}
	want := MoveTokenIntent(2, [2]float64{.7, .8})
	if intent.Type != want.Type || intent.IToken != want.IToken || *intent.Center != *want.Center {
		t.Errorf("release intent = %+v", intent)
	}

	// Release does not move the local token; the echo from the server does.
	if m.TokensCenter[2] != [2]float64{.3, .3} {
		t.Errorf("release moved the local token to %v", m.TokensCenter[2])
	}

	if _, ok := m.Release(0, [2]float64{0, 0}); ok {
		t.Error("released another seat's token")
	}
}
