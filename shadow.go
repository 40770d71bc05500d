// Shadowbox Shadow Hunters Table
//
// A shared virtual table for Shadow Hunters: each connected browser
// renders the same board (tokens, dice, character cards, area cards,
// draw decks) and every player action is relayed through this server so
// all clients converge on the same state. The server decides everything
// random (character deal, deck order, area layout, dice) and trusts
// players for everything else; rule adjudication stays social.
//
// Features:
// - One table per process, dealt at startup for a fixed seat count
// - WebSocket per client: /shadow/ws, with /shadow serving the board page
// - Seats are positional: first free seat wins, a full table answers
//   {"id":-1} and nothing else
// - Disconnecting frees the seat but keeps the character, tokens and
//   equipment, so a reconnecting player resumes the same seat
// - Every mutation runs on a single hub goroutine, so concurrent intents
//   are applied atomically and stale requests degrade to logged no-ops
// - All deals leak to all clients by design; hiding unrevealed
//   characters is the rendering layer's job, not a security boundary
// - In-browser QR button to share the table, backed by go-qrcode

package main

import (
	"log"
	"math/rand"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

type Client struct {
	conn *websocket.Conn
	send chan any
	addr string

	// slot is the assigned seat, or -1 while unseated. Written and read
	// only on the hub goroutine.
	slot int
}

type hubMsg interface{ isHubMsg() }

type connect struct{ client *Client }

type disconnect struct{ client *Client }

type intentRequest struct {
	client *Client
	msg    ClientMessage
}

type stateRequest struct{ reply chan View }

func (connect) isHubMsg()       {}
func (disconnect) isHubMsg()    {}
func (intentRequest) isHubMsg() {}
func (stateRequest) isHubMsg()  {}

// View is a detached copy of the table, for race-free inspection.
type View struct {
	State GameState
	Seats []bool
}

// Hub owns the authoritative GameState. Everything flows through inbox
// and is handled to completion on the run goroutine; there is no other
// path to the state.
type Hub struct {
	state *GameState
	rng   *rand.Rand

	seats   []*Client
	clients map[*Client]bool

	inbox chan hubMsg
}

func newHub(state *GameState, rng *rand.Rand) *Hub {
	return &Hub{
		state:   state,
		rng:     rng,
		seats:   make([]*Client, state.Players),
		clients: make(map[*Client]bool),
		inbox:   make(chan hubMsg, 64),
	}
}

func (h *Hub) run(cfg *Config) {
	for m := range h.inbox {
		switch msg := m.(type) {
		case connect:
			h.handleConnect(cfg, msg.client)
		case disconnect:
			h.handleDisconnect(cfg, msg.client)
		case intentRequest:
			h.handleIntent(cfg, msg.client, msg.msg)
		case stateRequest:
			msg.reply <- h.snapshot()
		}
	}
}

// handleConnect seats the connection on the first free seat and sends it
// the full snapshot, or turns it away with {"id":-1} when the table is
// full. A turned-away connection stays open but gets nothing further.
func (h *Hub) handleConnect(cfg *Config, c *Client) {
	h.clients[c] = true

	seat := -1
	for i, occupant := range h.seats {
		if occupant == nil {
			seat = i
			break
		}
	}

	if seat == -1 {
		logf(cfg, "DENY: Connection from %s denied (table full)", c.addr)
		c.trySend(InitMessage{Type: "init", ID: -1})
		return
	}

	logf(cfg, "GAMES: Connection from %s granted as player %s", c.addr, seatName(seat))

	c.slot = seat
	h.seats[seat] = c

	// The snapshot is detached so the writer goroutine never serializes
	// slices the hub is still mutating.
	view := h.snapshot()
	c.trySend(InitMessage{
		Type:         "init",
		ID:           seat,
		TokensCenter: view.State.TokensCenter,
		DicesVal:     view.State.DicesVal[:],
		Characters:   view.State.Characters,
		Areas:        view.State.Areas,
		ActivePlayer: view.State.ActivePlayer,
	})
}

// handleDisconnect frees the seat but leaves the character, tokens and
// equipment in place for whoever reconnects. No message goes out; the
// protocol has no disconnect delta.
func (h *Hub) handleDisconnect(cfg *Config, c *Client) {
	if c.slot >= 0 && h.seats[c.slot] == c {
		logf(cfg, "GAMES: Lost player %s", seatName(c.slot))
		h.seats[c.slot] = nil
		c.slot = -1
	}
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

func (h *Hub) handleIntent(cfg *Config, c *Client, msg ClientMessage) {
	if c.slot < 0 || h.seats[c.slot] != c {
		log.Printf("DIAG: intent %q from unseated connection %s dropped", msg.Type, c.addr)
		return
	}

	switch msg.Type {
	case "move_token":
		h.moveToken(cfg, c.slot, msg)
	case "roll_dice":
		h.rollDice(cfg, c.slot)
	case "reveal":
		h.reveal(cfg, c.slot)
	case "draw_card":
		h.drawCard(cfg, c.slot, msg.CardType)
	case "vision":
		h.vision(cfg, c.slot, msg)
	case "take_equipment":
		h.takeEquipment(cfg, c.slot, msg)
	case "end_turn":
		h.endTurn(cfg, c.slot)
	default:
		log.Printf("DIAG: unknown intent %q from player %s", msg.Type, seatName(c.slot))
	}
}

// validateTokenCenter is the seam where claimed coordinates could be
// bounds-checked. The table trusts its players, so today it passes them
// through untouched.
func validateTokenCenter(center [2]float64) [2]float64 {
	return center
}

func (h *Hub) moveToken(cfg *Config, slot int, msg ClientMessage) {
	if msg.Center == nil || msg.IToken < 0 || msg.IToken >= len(h.state.TokensCenter) {
		log.Printf("DIAG: player %s moved token %d with bad payload, ignored", seatName(slot), msg.IToken)
		return
	}

	logf(cfg, "GAMES: Player %s moved token %d", seatName(slot), msg.IToken)

	center := validateTokenCenter(*msg.Center)
	h.state.TokensCenter[msg.IToken] = center
	h.broadcast(TokenMessage{Type: "move_token", IToken: msg.IToken, Center: center})
}

func (h *Hub) rollDice(cfg *Config, slot int) {
	logf(cfg, "GAMES: Player %s rolled the dices", seatName(slot))

	h.state.DicesVal = [2]int{h.rng.Intn(smallDiceFaces) + 1, h.rng.Intn(largeDiceFaces) + 1}
	h.broadcast(DiceMessage{Type: "roll_dice", DicesVal: h.state.DicesVal})
}

func (h *Hub) reveal(cfg *Config, slot int) {
	if h.state.Characters[slot].Revealed {
		log.Printf("DIAG: player %s revealed twice, ignored", seatName(slot))
		return
	}

	logf(cfg, "GAMES: Player %s revealed their character", seatName(slot))

	h.state.Characters[slot].Revealed = true
	h.broadcast(RevealMessage{Type: "reveal", Who: slot})
}

func (h *Hub) drawCard(cfg *Config, slot int, cardType CardType) {
	pile, ok := h.state.piles[cardType]
	if !ok {
		log.Printf("DIAG: player %s drew from unknown deck %q, ignored", seatName(slot), cardType)
		return
	}
	if len(pile) == 0 {
		// The requester gets no signal either; the wire has no message
		// for a starved deck.
		log.Printf("DIAG: player %s drew from empty %s deck, ignored", seatName(slot), cardType)
		return
	}

	iCard := pile[len(pile)-1]
	h.state.piles[cardType] = pile[:len(pile)-1]

	logf(cfg, "GAMES: Player %s drew card %d from the %s deck", seatName(slot), iCard, cardType)

	if decks[cardType][iCard].Equip {
		h.state.Characters[slot].Equipments = append(h.state.Characters[slot].Equipments,
			Equipment{Type: cardType, ICard: iCard})
	}

	h.broadcast(DrawMessage{Type: "draw_card", Who: slot, CardType: cardType, ICard: iCard})
}

func (h *Hub) vision(cfg *Config, slot int, msg ClientMessage) {
	if msg.IPlayer < 0 || msg.IPlayer >= len(h.seats) {
		log.Printf("DIAG: player %s sent a vision to seat %d, ignored", seatName(slot), msg.IPlayer)
		return
	}

	target := h.seats[msg.IPlayer]
	if target == nil {
		// Dropped without feedback; the sender's card is spent anyway.
		log.Printf("DIAG: player %s sent a vision to empty seat %s, dropped", seatName(slot), seatName(msg.IPlayer))
		return
	}

	logf(cfg, "GAMES: Player %s sent vision card %d to player %s", seatName(slot), msg.ICard, seatName(msg.IPlayer))

	h.unicast(msg.IPlayer, VisionMessage{Type: "vision", ICard: msg.ICard, IFrom: slot})
}

func (h *Hub) takeEquipment(cfg *Config, slot int, msg ClientMessage) {
	if msg.IPlayer < 0 || msg.IPlayer >= len(h.state.Characters) {
		log.Printf("DIAG: player %s took equipment from seat %d, ignored", seatName(slot), msg.IPlayer)
		return
	}

	source := &h.state.Characters[msg.IPlayer]
	if msg.IEquipment < 0 || msg.IEquipment >= len(source.Equipments) {
		// Stale index, likely lost a race with another take. Last valid
		// request won; this one becomes a no-op.
		log.Printf("DIAG: player %s took equipment %d from player %s who holds %d, ignored",
			seatName(slot), msg.IEquipment, seatName(msg.IPlayer), len(source.Equipments))
		return
	}

	logf(cfg, "GAMES: Player %s took equipment %d from player %s", seatName(slot), msg.IEquipment, seatName(msg.IPlayer))

	taken := source.Equipments[msg.IEquipment]
	source.Equipments = append(source.Equipments[:msg.IEquipment], source.Equipments[msg.IEquipment+1:]...)
	h.state.Characters[slot].Equipments = append(h.state.Characters[slot].Equipments, taken)

	h.broadcast(TakeMessage{Type: "take_equipment", Who: slot, IPlayer: msg.IPlayer, IEquipment: msg.IEquipment})
}

func (h *Hub) endTurn(cfg *Config, slot int) {
	logf(cfg, "GAMES: Player %s ended their turn", seatName(slot))

	h.state.ActivePlayer = (h.state.ActivePlayer + 1) % h.state.Players
	h.broadcast(TurnMessage{Type: "turn", Active: h.state.ActivePlayer})
}

// broadcast sends to every seated client. Delivery is fire-and-forget;
// a client whose buffer is full is dropped and its seat freed.
func (h *Hub) broadcast(msg any) {
	for slot, c := range h.seats {
		if c == nil {
			continue
		}
		select {
		case c.send <- msg:
		default:
			h.drop(slot, c)
		}
	}
}

func (h *Hub) unicast(slot int, msg any) {
	c := h.seats[slot]
	if c == nil {
		return
	}
	select {
	case c.send <- msg:
	default:
		h.drop(slot, c)
	}
}

// drop evicts a client whose send buffer is full, freeing its seat.
func (h *Hub) drop(slot int, c *Client) {
	h.seats[slot] = nil
	c.slot = -1
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// trySend delivers to a client that may not hold a seat yet.
func (c *Client) trySend(msg any) {
	select {
	case c.send <- msg:
	default:
	}
}

// snapshot deep-copies the table for stateRequest replies.
func (h *Hub) snapshot() View {
	state := *h.state

	state.TokensCenter = append([][2]float64(nil), h.state.TokensCenter...)
	state.Areas = append([]int(nil), h.state.Areas...)

	state.Characters = append([]Character(nil), h.state.Characters...)
	for i := range state.Characters {
		state.Characters[i].Equipments = append([]Equipment(nil), h.state.Characters[i].Equipments...)
	}

	state.piles = make(map[CardType][]int, len(h.state.piles))
	for cardType, pile := range h.state.piles {
		state.piles[cardType] = append([]int(nil), pile...)
	}

	seats := make([]bool, len(h.seats))
	for i, c := range h.seats {
		seats[i] = c != nil
	}

	return View{State: state, Seats: seats}
}

func seatName(slot int) string {
	if slot >= 0 && slot < len(seatPalette) {
		return seatPalette[slot].Name
	}
	return "(unknown)"
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

func serveWS(cfg *Config, h *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade error:", err)
			return
		}

		client := &Client{
			conn: conn,
			send: make(chan any, 8),
			addr: realIP(r),
			slot: -1,
		}

		h.inbox <- connect{client: client}

		go client.writePump()
		client.readPump(h)
	}
}

func (c *Client) readPump(h *Hub) {
	defer func() {
		h.inbox <- disconnect{client: c}
		_ = c.conn.Close()
	}()

	for {
		var msg ClientMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}

		h.inbox <- intentRequest{client: c, msg: msg}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()

	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

// QR handler: generates a PNG QR code for the table URL using go-qrcode.
func qrHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	// Derive scheme (respecting TLS and X-Forwarded-Proto if present).
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	// We are at /.../qr; strip the trailing "/qr" to get the table URL.
	path := strings.TrimSuffix(r.URL.Path, "/qr")

	url := scheme + "://" + r.Host + path

	const qrSize = 320 // mobile-friendly size
	png, err := qrcode.Encode(url, qrcode.Medium, qrSize)
	if err != nil {
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

// registerShadowGame deals the table and sets up routes so that:
//   - $path        → board page
//   - $path/ws     → WebSocket for the table
//   - $path/qr     → PNG QR code for the table URL
//
// The deal happens here, before the listener starts accepting anyone.
func registerShadowGame(cfg *Config, path string, mux *httprouter.Router) error {
	rng := newRNG()

	state, err := newGameState(cfg.players, rng)
	if err != nil {
		return err
	}

	hub := newHub(state, rng)
	go hub.run(cfg)

	logf(cfg, "GAMES: Dealt a %d-player table on %s", cfg.players, path)

	mux.GET(cfg.prefix+path, serveTablePage(cfg))
	mux.GET(cfg.prefix+path+"/ws", serveWS(cfg, hub))
	mux.GET(cfg.prefix+path+"/qr", qrHandler)

	return nil
}
