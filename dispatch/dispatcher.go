package dispatch

import (
	goerrors "errors"
	"fmt"
	"log/slog"
	"mahjong-rooms/contract"
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"mahjong-rooms/services"
)

// Dispatcher turns raw group chat lines into service calls and renders the
// outcome back to text. It holds no room state of its own; only the
// creation sessions live here, by way of the CreationService.
type Dispatcher struct {
	membership services.IMembershipService
	creation   *services.CreationService
	registry   contract.IRegistry
	log        *slog.Logger
}

func NewDispatcher(
	log *slog.Logger,
	membership services.IMembershipService,
	creation *services.CreationService,
	registry contract.IRegistry,
) *Dispatcher {
	return &Dispatcher{membership: membership, creation: creation, registry: registry, log: log}
}

// Handle processes one incoming group message. Non-command chatter gets a
// zero Reply, which the caller drops silently.
func (d *Dispatcher) Handle(msg domain.IncomingMessage) domain.Reply {
	it, parseErr := Parse(msg.Text)

	// A user awaiting room parameters has their very next message consumed
	// as parameters, whatever it looks like. Only a fresh create intent
	// restarts the prompt instead.
	if d.creation.Active(msg.GroupID, msg.UserID) && it.Kind != intentCreate {
		return d.submitParams(msg)
	}

	if parseErr != nil {
		return reply(usageHint(parseErr))
	}

	switch it.Kind {
	case intentJoin:
		return d.join(msg, it.RoomID)
	case intentLeave:
		return d.leave(msg, it)
	case intentSwap:
		return d.swap(msg, it.From, it.To)
	case intentStatus:
		return reply(StatusText(d.registry.Snapshot(msg.GroupID)))
	case intentCreate:
		d.creation.Begin(msg.GroupID, msg.UserID)
		return reply("请发送：张数 人数（例如：3 4）")
	case intentRules:
		return reply(RulesText)
	default:
		return domain.Reply{}
	}
}

func (d *Dispatcher) join(msg domain.IncomingMessage, roomID domain.RoomID) domain.Reply {
	res, err := d.membership.Join(msg.GroupID, roomID, msg.UserID, msg.DisplayName)
	switch {
	case goerrors.Is(err, errors.ErrRoomNotFound):
		return reply("局号无效或不存在，请先查询再试。")
	case goerrors.Is(err, errors.ErrAlreadyMember):
		return reply(fmt.Sprintf("你已在 %d 号局中，无需重复报名。", roomID))
	case goerrors.Is(err, errors.ErrRoomFull):
		return reply(fmt.Sprintf("%d 号局已满员，无法加入！", roomID))
	case err != nil:
		d.log.Error("Join failed", "group", msg.GroupID, "room", roomID, "err", err)
		return reply("操作失败，请稍后再试。")
	}

	board := StatusText(d.registry.Snapshot(msg.GroupID))
	if res.Completed {
		return domain.Reply{
			Text:     completionText(roomID, res.Filled, board),
			Mentions: mentionIDs(res.Filled),
		}
	}
	return reply(fmt.Sprintf("%s 已加入 %d 号局！\n%s", msg.DisplayName, roomID, board))
}

func (d *Dispatcher) leave(msg domain.IncomingMessage, it Intent) domain.Reply {
	var (
		res domain.LeaveResult
		err error
	)
	if it.HasRoom {
		res, err = d.membership.Leave(msg.GroupID, it.RoomID, msg.UserID)
	} else {
		res, err = d.membership.LeaveAny(msg.GroupID, msg.UserID)
	}
	switch {
	case goerrors.Is(err, errors.ErrRoomNotFound):
		return reply("局号无效或不存在，请先查询再试。")
	case goerrors.Is(err, errors.ErrAmbiguousMembership):
		return reply("你同时在多个局中，请带局号退出，例如：退出 2")
	case goerrors.Is(err, errors.ErrNotMember):
		if it.HasRoom {
			return reply(fmt.Sprintf("你不在 %d 号局中，无法退出！", it.RoomID))
		}
		return reply("你当前不在任何局中。")
	case err != nil:
		d.log.Error("Leave failed", "group", msg.GroupID, "err", err)
		return reply("操作失败，请稍后再试。")
	}
	board := StatusText(d.registry.Snapshot(msg.GroupID))
	return reply(fmt.Sprintf("%s 已退出 %d 号局！\n%s", msg.DisplayName, res.RoomID, board))
}

func (d *Dispatcher) swap(msg domain.IncomingMessage, from, to domain.RoomID) domain.Reply {
	res, err := d.membership.Swap(msg.GroupID, from, to, msg.UserID)
	switch {
	case goerrors.Is(err, errors.ErrRoomNotFound):
		return reply("局号无效或不存在，请先查询再试。")
	case goerrors.Is(err, errors.ErrNotInSource):
		return reply(fmt.Sprintf("你不在 %d 号局中，无法换桌。", from))
	case goerrors.Is(err, errors.ErrRoomFull):
		return reply(fmt.Sprintf("%d 号局已满员，换桌失败，你仍在 %d 号局。", to, from))
	case goerrors.Is(err, errors.ErrAlreadyMember):
		return reply(fmt.Sprintf("你已在 %d 号局中。", to))
	case err != nil:
		d.log.Error("Swap failed", "group", msg.GroupID, "from", from, "to", to, "err", err)
		return reply("操作失败，请稍后再试。")
	}

	board := StatusText(d.registry.Snapshot(msg.GroupID))
	if res.Join.Completed {
		return domain.Reply{
			Text:     completionText(to, res.Join.Filled, board),
			Mentions: mentionIDs(res.Join.Filled),
		}
	}
	return reply(fmt.Sprintf("%s 已从 %d 号局换至 %d 号局！\n%s", msg.DisplayName, from, to, board))
}

func (d *Dispatcher) submitParams(msg domain.IncomingMessage) domain.Reply {
	id, params, err := d.creation.Submit(msg.GroupID, msg.UserID, msg.Text)
	if err != nil {
		return reply("格式错误，开局已取消。需要两个正整数：张数 人数。")
	}
	board := StatusText(d.registry.Snapshot(msg.GroupID))
	return reply(fmt.Sprintf("已开 %d 号局：%d🀇 %d人，24小时内有效。\n%s",
		id, params.TileCount, params.Capacity, board))
}

func usageHint(err error) string {
	if goerrors.Is(err, errors.ErrInvalidRoomID) {
		return "局号无效，请输入正整数局号。"
	}
	return "指令格式错误。可用：加入 N / 退出 [N] / 换桌 A B / 查询 / 开局 / 规则"
}

func reply(text string) domain.Reply {
	return domain.Reply{Text: text}
}
