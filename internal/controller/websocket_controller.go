package controller

import (
	"encoding/json"
	"errors"

	"github.com/castlegate/chess-backend/internal/chess"
	"github.com/castlegate/chess-backend/internal/service"
	"github.com/castlegate/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"
)

// WebSocketController serves interactive play sessions. Each connection
// owns its position as a plain value threaded through the read loop; the
// server keeps no game registry and nothing survives the connection.
type WebSocketController struct {
	rules *service.RulesService
	log   zerolog.Logger
}

func NewWebSocketController(rules *service.RulesService, log zerolog.Logger) *WebSocketController {
	return &WebSocketController{rules: rules, log: log}
}

// positionPayload is the server's reply after every accepted message.
type positionPayload struct {
	Fen    string                 `json:"fen"`
	Status chess.Status           `json:"status"`
	Moves  []service.PossibleMove `json:"moves"`
}

// HandlePlay runs one play session until the client disconnects.
func (wsc *WebSocketController) HandlePlay(c *websocket.Conn) {
	fen := chess.InitialFEN
	wsc.sendPosition(c, fen)

	for {
		messageType, raw, err := c.ReadMessage()
		if err != nil {
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			wsc.sendError(c, "parse", "malformed message")
			continue
		}

		switch msg.Type {
		case ws.MessageTypeStart:
			var start ws.StartPayload
			if len(msg.Payload) > 0 {
				if err := json.Unmarshal(msg.Payload, &start); err != nil {
					wsc.sendError(c, "parse", "malformed start payload")
					continue
				}
			}
			next := chess.InitialFEN
			if start.Fen != "" {
				pos, err := chess.ParseFEN(start.Fen)
				if err != nil {
					wsc.sendError(c, "parse", err.Error())
					continue
				}
				next = pos.FEN()
			}
			fen = next
			wsc.sendPosition(c, fen)

		case ws.MessageTypeMove:
			var sel service.SelectedMove
			if err := json.Unmarshal(msg.Payload, &sel); err != nil {
				wsc.sendError(c, "parse", "malformed move payload")
				continue
			}
			result, moves, err := wsc.rules.Advance(fen, sel)
			if err != nil {
				wsc.sendError(c, errorKind(err), err.Error())
				continue
			}
			fen = result.Fen
			wsc.send(c, ws.MessageTypePosition, positionPayload{
				Fen:    result.Fen,
				Status: result.Status,
				Moves:  moves,
			})

		default:
			wsc.sendError(c, "parse", "unknown message type")
		}
	}
}

func (wsc *WebSocketController) sendPosition(c *websocket.Conn, fen string) {
	moves, err := wsc.rules.LegalMoves(fen)
	if err != nil {
		wsc.sendError(c, errorKind(err), err.Error())
		return
	}
	pos, err := chess.ParseFEN(fen)
	if err != nil {
		wsc.sendError(c, errorKind(err), err.Error())
		return
	}
	wsc.send(c, ws.MessageTypePosition, positionPayload{
		Fen:    fen,
		Status: pos.Status(),
		Moves:  moves,
	})
}

func (wsc *WebSocketController) send(c *websocket.Conn, t ws.MessageType, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		wsc.log.Error().Err(err).Msg("marshal ws payload")
		return
	}
	if err := c.WriteJSON(ws.Message{Type: t, Payload: body}); err != nil {
		wsc.log.Debug().Err(err).Msg("write ws message")
	}
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, kind, msg string) {
	wsc.send(c, ws.MessageTypeError, ws.ErrorPayload{Kind: kind, Error: msg})
}

func errorKind(err error) string {
	var (
		parseErr     *chess.ParseError
		illegalErr   *chess.IllegalMoveError
		historyErr   *chess.HistoryMismatchError
		promotionErr *chess.AmbiguousPromotionError
	)
	switch {
	case errors.As(err, &parseErr):
		return "parse"
	case errors.As(err, &illegalErr):
		return "illegal_move"
	case errors.As(err, &historyErr):
		return "history_mismatch"
	case errors.As(err, &promotionErr):
		return "ambiguous_promotion"
	}
	return "internal"
}
