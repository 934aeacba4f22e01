package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

var _ contract.BroadcastGateway = (*WebsocketGateway)(nil)

// WebsocketGateway speaks to the chat platform bridge over one persistent
// websocket, OneBot style: JSON action frames out, JSON event frames in.
// Writes carry a deadline so a stalled socket can never hold up a
// scheduler tick or a command reply.
type WebsocketGateway struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	timeout time.Duration
	log     *slog.Logger
}

func DialWebsocket(ctx context.Context, url string, timeout time.Duration, log *slog.Logger) (*WebsocketGateway, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	log.Info("Gateway connected", "url", url)
	return &WebsocketGateway{conn: conn, timeout: timeout, log: log}, nil
}

type outboundFrame struct {
	Action string        `json:"action"`
	Params messageParams `json:"params"`
}

type messageParams struct {
	GroupID int64  `json:"group_id"`
	Message string `json:"message"`
}

type inboundFrame struct {
	PostType   string `json:"post_type"`
	GroupID    int64  `json:"group_id"`
	UserID     int64  `json:"user_id"`
	RawMessage string `json:"raw_message"`
	Sender     struct {
		Card     string `json:"card"`
		Nickname string `json:"nickname"`
	} `json:"sender"`
}

// Send delivers one group message. Mentions are folded into the message
// body as platform at-segments.
func (g *WebsocketGateway) Send(ctx context.Context, groupID domain.GroupID, reply domain.Reply) error {
	frame := outboundFrame{
		Action: "send_group_msg",
		Params: messageParams{GroupID: int64(groupID), Message: renderMentions(reply)},
	}

	g.writeMu.Lock()
	defer g.writeMu.Unlock()

	deadline := time.Now().Add(g.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := g.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("%v: %w", err, errors.ErrDelivery)
	}
	if err := g.conn.WriteJSON(frame); err != nil {
		return fmt.Errorf("group %d: %v: %w", groupID, err, errors.ErrDelivery)
	}
	return nil
}

func renderMentions(reply domain.Reply) string {
	if len(reply.Mentions) == 0 {
		return reply.Text
	}
	var sb strings.Builder
	for _, id := range reply.Mentions {
		fmt.Fprintf(&sb, "[CQ:at,qq=%s] ", id)
	}
	sb.WriteString(reply.Text)
	return sb.String()
}

// Listen reads platform events and hands each group message to handle.
// It returns when the socket dies; closing the gateway is how a shutdown
// unblocks the pending read.
func (g *WebsocketGateway) Listen(ctx context.Context, handle func(domain.IncomingMessage)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		var frame inboundFrame
		if err := g.conn.ReadJSON(&frame); err != nil {
			return fmt.Errorf("%v: %w", err, errors.ErrGatewayClosed)
		}
		if frame.PostType != "message" || frame.GroupID == 0 {
			continue
		}
		name := frame.Sender.Card
		if name == "" {
			name = frame.Sender.Nickname
		}
		handle(domain.IncomingMessage{
			GroupID:     domain.GroupID(frame.GroupID),
			UserID:      strconv.FormatInt(frame.UserID, 10),
			DisplayName: name,
			Text:        frame.RawMessage,
		})
	}
}

func (g *WebsocketGateway) Close() error {
	g.writeMu.Lock()
	defer g.writeMu.Unlock()
	_ = g.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
	return g.conn.Close()
}
