/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

import (
	"encoding/json"
	"fmt"
)

// Mirror is a client's local replica of the shared table. It changes
// only when relay messages arrive, in arrival order; it never predicts
// what other players did. The browser client keeps the same replica in
// javascript; this one backs tests and Go clients.
type Mirror struct {
	ID           int
	TokensCenter [][2]float64
	DicesVal     [2]int
	Characters   []Character
	Areas        []int
	ActivePlayer int
	Rejected     bool

	// Held tracks the drag state of this client's own two tokens. It is
	// purely local; the server only ever hears the final drop position.
	Held [2]bool

	// Visions collects the vision cards handed to this seat.
	Visions []VisionMessage
}

func NewMirror() *Mirror {
	return &Mirror{ID: -1}
}

// ApplyInit installs the snapshot the server sends on connect. An
// id of -1 means the table was full; the mirror then stays empty.
func (m *Mirror) ApplyInit(msg InitMessage) {
	m.ID = msg.ID
	if msg.ID < 0 {
		m.Rejected = true
		return
	}

	m.TokensCenter = append([][2]float64(nil), msg.TokensCenter...)
	if len(msg.DicesVal) == 2 {
		m.DicesVal = [2]int{msg.DicesVal[0], msg.DicesVal[1]}
	}
	m.Characters = append([]Character(nil), msg.Characters...)
	for i := range m.Characters {
		m.Characters[i].Equipments = append([]Equipment(nil), msg.Characters[i].Equipments...)
	}
	m.Areas = append([]int(nil), msg.Areas...)
	m.ActivePlayer = msg.ActivePlayer
}

// ApplyDelta decodes one relay message and folds it into the replica.
func (m *Mirror) ApplyDelta(data []byte) error {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}

	switch envelope.Type {
	case "init":
		var msg InitMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		m.ApplyInit(msg)

	case "move_token":
		var msg TokenMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		if msg.IToken < 0 || msg.IToken >= len(m.TokensCenter) {
			return fmt.Errorf("move_token for unknown token %d", msg.IToken)
		}
		m.TokensCenter[msg.IToken] = msg.Center

	case "roll_dice":
		var msg DiceMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		m.DicesVal = msg.DicesVal

	case "reveal":
		var msg RevealMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		if msg.Who < 0 || msg.Who >= len(m.Characters) {
			return fmt.Errorf("reveal for unknown seat %d", msg.Who)
		}
		m.Characters[msg.Who].Revealed = true

	case "draw_card":
		var msg DrawMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		if msg.Who < 0 || msg.Who >= len(m.Characters) {
			return fmt.Errorf("draw_card for unknown seat %d", msg.Who)
		}
		if deck, ok := decks[msg.CardType]; ok && msg.ICard >= 0 && msg.ICard < len(deck) && deck[msg.ICard].Equip {
			m.Characters[msg.Who].Equipments = append(m.Characters[msg.Who].Equipments,
				Equipment{Type: msg.CardType, ICard: msg.ICard})
		}

	case "vision":
		var msg VisionMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		m.Visions = append(m.Visions, msg)

	case "take_equipment":
		var msg TakeMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		if msg.IPlayer < 0 || msg.IPlayer >= len(m.Characters) ||
			msg.Who < 0 || msg.Who >= len(m.Characters) {
			return fmt.Errorf("take_equipment between unknown seats %d and %d", msg.Who, msg.IPlayer)
		}
		source := &m.Characters[msg.IPlayer]
		if msg.IEquipment < 0 || msg.IEquipment >= len(source.Equipments) {
			return fmt.Errorf("take_equipment with stale index %d", msg.IEquipment)
		}
		taken := source.Equipments[msg.IEquipment]
		source.Equipments = append(source.Equipments[:msg.IEquipment], source.Equipments[msg.IEquipment+1:]...)
		m.Characters[msg.Who].Equipments = append(m.Characters[msg.Who].Equipments, taken)

	case "turn":
		var msg TurnMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			return err
		}
		m.ActivePlayer = msg.Active

	default:
		return fmt.Errorf("unknown delta %q", envelope.Type)
	}

	return nil
}

// Hold marks one of the client's own tokens as being dragged. Only the
// owner's two tokens can be held.
func (m *Mirror) Hold(iToken int) bool {
	if m.ID < 0 || (iToken != 2*m.ID && iToken != 2*m.ID+1) {
		return false
	}
	m.Held[iToken-2*m.ID] = true
	return true
}

// Release ends a drag and returns the intent carrying the final
// position, to be sent to the server for rebroadcast.
func (m *Mirror) Release(iToken int, center [2]float64) (ClientMessage, bool) {
	if m.ID < 0 || (iToken != 2*m.ID && iToken != 2*m.ID+1) {
		return ClientMessage{}, false
	}
	m.Held[iToken-2*m.ID] = false
	return MoveTokenIntent(iToken, center), true
}

// Intent constructors, one per client request in the protocol.

func MoveTokenIntent(iToken int, center [2]float64) ClientMessage {
	return ClientMessage{Type: "move_token", IToken: iToken, Center: &center}
}

func RollDiceIntent() ClientMessage {
	return ClientMessage{Type: "roll_dice"}
}

func RevealIntent() ClientMessage {
	return ClientMessage{Type: "reveal"}
}

func DrawCardIntent(cardType CardType) ClientMessage {
	return ClientMessage{Type: "draw_card", CardType: cardType}
}

func VisionIntent(iCard, iPlayer int) ClientMessage {
	return ClientMessage{Type: "vision", ICard: iCard, IPlayer: iPlayer}
}

func TakeEquipmentIntent(iPlayer, iEquipment int) ClientMessage {
	return ClientMessage{Type: "take_equipment", IPlayer: iPlayer, IEquipment: iEquipment}
}

func EndTurnIntent() ClientMessage {
	return ClientMessage{Type: "end_turn"}
}
