/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package main

// Messages coming from clients. One envelope covers all seven intents;
// unused fields stay at their zero values.
type ClientMessage struct {
	Type       string      `json:"type"`                  // "move_token", "roll_dice", "reveal", "draw_card", "vision", "take_equipment", "end_turn"
	IToken     int         `json:"i_token,omitempty"`     // move_token
	Center     *[2]float64 `json:"center,omitempty"`      // move_token, board-relative units
	CardType   CardType    `json:"card_type,omitempty"`   // draw_card
	ICard      int         `json:"i_card,omitempty"`      // vision
	IPlayer    int         `json:"i_player,omitempty"`    // vision / take_equipment
	IEquipment int         `json:"i_equipment,omitempty"` // take_equipment
}

// InitMessage is the snapshot sent once to each accepted connection.
// A rejected connection gets only {"type":"init","id":-1}.
type InitMessage struct {
	Type         string       `json:"type"` // "init"
	ID           int          `json:"id"`   // assigned seat, or -1
	TokensCenter [][2]float64 `json:"tokens_center,omitempty"`
	DicesVal     []int        `json:"dices_val,omitempty"`
	Characters   []Character  `json:"characters,omitempty"`
	Areas        []int        `json:"areas,omitempty"`
	ActivePlayer int          `json:"active_player,omitempty"`
}

// TokenMessage rebroadcasts a token move to every client, the mover
// included, with the mover's coordinates untouched.
type TokenMessage struct {
	Type   string     `json:"type"` // "move_token"
	IToken int        `json:"i_token"`
	Center [2]float64 `json:"center"`
}

// DiceMessage carries a fresh authoritative roll of both dice.
type DiceMessage struct {
	Type     string `json:"type"` // "roll_dice"
	DicesVal [2]int `json:"dices_val"`
}

// RevealMessage announces that a seat turned its character face up.
type RevealMessage struct {
	Type string `json:"type"` // "reveal"
	Who  int    `json:"who"`
}

// DrawMessage announces a draw to the whole table; the card itself is
// public the moment it leaves the deck.
type DrawMessage struct {
	Type     string   `json:"type"` // "draw_card"
	Who      int      `json:"who"`
	CardType CardType `json:"card_type"`
	ICard    int      `json:"i_card"`
}

// VisionMessage is the only unicast delta: the vision card is handed to
// its target without the rest of the table seeing which one.
type VisionMessage struct {
	Type  string `json:"type"` // "vision"
	ICard int    `json:"i_card"`
	IFrom int    `json:"i_from"`
}

// TakeMessage announces an equipment transfer between seats.
type TakeMessage struct {
	Type       string `json:"type"` // "take_equipment"
	Who        int    `json:"who"`
	IPlayer    int    `json:"i_player"`
	IEquipment int    `json:"i_equipment"`
}

// TurnMessage announces whose turn it now is.
type TurnMessage struct {
	Type   string `json:"type"` // "turn"
	Active int    `json:"active"`
}
