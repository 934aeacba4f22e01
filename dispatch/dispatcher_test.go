package dispatch

import (
	"fmt"
	"log/slog"
	"mahjong-rooms/domain"
	"mahjong-rooms/observability"
	"mahjong-rooms/runtime"
	"mahjong-rooms/services"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newDispatcherFixture() (*Dispatcher, *runtime.Registry) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log, 5, 4)
	monitoring := observability.NewMonitoringManager()
	membership := services.NewMembershipService(log, registry, monitoring)
	creation := services.NewCreationService(log, registry, monitoring)
	return NewDispatcher(log, membership, creation, registry), registry
}

func msg(user, name, text string) domain.IncomingMessage {
	return domain.IncomingMessage{GroupID: 1, UserID: user, DisplayName: name, Text: text}
}

func TestDispatcher_JoinAndStatus(t *testing.T) {
	req := require.New(t)
	dispatcher, _ := newDispatcherFixture()

	reply := dispatcher.Handle(msg("u1", "阿强", "加入 1"))

	req.Contains(reply.Text, "阿强 已加入 1 号局！")
	req.Contains(reply.Text, "【1号局】1🀇 1/4")
	req.Empty(reply.Mentions)

	reply = dispatcher.Handle(msg("u1", "阿强", "查询"))
	req.Contains(reply.Text, "1/4")
}

func TestDispatcher_ChatterIsIgnored(t *testing.T) {
	req := require.New(t)
	dispatcher, _ := newDispatcherFixture()

	reply := dispatcher.Handle(msg("u1", "阿强", "今晚有人吗"))

	req.True(reply.IsZero())
}

func TestDispatcher_CompletionMentionsEveryone(t *testing.T) {
	req := require.New(t)
	dispatcher, registry := newDispatcherFixture()

	for i := 1; i <= 3; i++ {
		user := fmt.Sprintf("u%d", i)
		dispatcher.Handle(msg(user, user, "加入 1"))
	}

	reply := dispatcher.Handle(msg("u4", "u4", "加入 1"))

	req.Contains(reply.Text, "🔥 1号局满员开局！")
	req.Equal([]string{"u1", "u2", "u3", "u4"}, reply.Mentions)
	req.Equal(0, registry.Snapshot(1)[0].Occupancy())
}

func TestDispatcher_JoinErrors(t *testing.T) {
	req := require.New(t)
	dispatcher, _ := newDispatcherFixture()

	req.Contains(dispatcher.Handle(msg("u1", "A", "加入 99")).Text, "局号无效")

	dispatcher.Handle(msg("u1", "A", "加入 2"))
	req.Contains(dispatcher.Handle(msg("u1", "A", "加入 2")).Text, "无需重复报名")
}

func TestDispatcher_SwapTargetFull(t *testing.T) {
	req := require.New(t)
	dispatcher, registry := newDispatcherFixture()

	dispatcher.Handle(msg("a", "A", "加入 2"))
	// Seat three players in room 3, then a fourth directly so the room
	// stays full instead of resetting
	for _, u := range []string{"w", "x", "y"} {
		dispatcher.Handle(msg(u, u, "加入 3"))
	}
	_ = registry.WithGroup(1, func(g *domain.GroupState) error {
		room, _ := g.Room(3)
		return room.Join(domain.Player{UserID: "z"})
	})

	reply := dispatcher.Handle(msg("a", "A", "换桌 2 3"))

	req.Contains(reply.Text, "3 号局已满员，换桌失败")
	req.True(registry.Snapshot(1)[1].IsMember("a"))
}

func TestDispatcher_CreateRoomSession(t *testing.T) {
	req := require.New(t)
	dispatcher, registry := newDispatcherFixture()

	// Step one: the prompt
	reply := dispatcher.Handle(msg("u1", "A", "开局"))
	req.Contains(reply.Text, "张数 人数")

	// A second create intent restarts the prompt instead of being consumed
	reply = dispatcher.Handle(msg("u1", "A", "开局"))
	req.Contains(reply.Text, "张数 人数")

	// Step two: the very next message is the parameters
	reply = dispatcher.Handle(msg("u1", "A", "3 2"))
	req.Contains(reply.Text, "已开 6 号局")
	req.Len(registry.Snapshot(1), 6)

	// The session is gone: the same text is plain chatter now
	reply = dispatcher.Handle(msg("u1", "A", "3 2"))
	req.True(reply.IsZero())
}

func TestDispatcher_CreateRoomBadParamsReturnToIdle(t *testing.T) {
	req := require.New(t)
	dispatcher, registry := newDispatcherFixture()

	dispatcher.Handle(msg("u1", "A", "开局"))

	// Even a valid-looking command is consumed as (bad) parameters
	reply := dispatcher.Handle(msg("u1", "A", "加入 1"))
	req.Contains(reply.Text, "格式错误")
	req.Len(registry.Snapshot(1), 5)

	// And the user is idle again: the same command now works normally
	reply = dispatcher.Handle(msg("u1", "A", "加入 1"))
	req.Contains(reply.Text, "已加入 1 号局")
}

func TestDispatcher_LeaveWithoutRoomID(t *testing.T) {
	req := require.New(t)
	dispatcher, _ := newDispatcherFixture()

	req.Contains(dispatcher.Handle(msg("u1", "A", "退出")).Text, "不在任何局中")

	dispatcher.Handle(msg("u1", "A", "加入 4"))
	reply := dispatcher.Handle(msg("u1", "A", "退出"))
	req.Contains(reply.Text, "A 已退出 4 号局！")
}

func TestDispatcher_Rules(t *testing.T) {
	dispatcher, _ := newDispatcherFixture()
	require.Contains(t, dispatcher.Handle(msg("u1", "A", "规则")).Text, "规则说明")
}
