package dispatch

import (
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Commands(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"加入 3", Intent{Kind: intentJoin, RoomID: 3, HasRoom: true}},
		{"加入3", Intent{Kind: intentJoin, RoomID: 3, HasRoom: true}},
		{"/add 2", Intent{Kind: intentJoin, RoomID: 2, HasRoom: true}},
		{"JOIN 1", Intent{Kind: intentJoin, RoomID: 1, HasRoom: true}},
		{"退出", Intent{Kind: intentLeave}},
		{"退出 2", Intent{Kind: intentLeave, RoomID: 2, HasRoom: true}},
		{"/remove 5", Intent{Kind: intentLeave, RoomID: 5, HasRoom: true}},
		{"换桌 2 5", Intent{Kind: intentSwap, From: 2, To: 5}},
		{"swap 1 6", Intent{Kind: intentSwap, From: 1, To: 6}},
		{"查询", Intent{Kind: intentStatus}},
		{"/check", Intent{Kind: intentStatus}},
		{"开局", Intent{Kind: intentCreate}},
		{"规则", Intent{Kind: intentRules}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			req := require.New(t)
			it, err := Parse(tt.text)
			req.NoError(err)
			req.Equal(tt.want, it)
		})
	}
}

func TestParse_NonCommandsAreIgnored(t *testing.T) {
	for _, text := range []string{"", "   ", "大家好", "tonight anyone?", "3 4"} {
		it, err := Parse(text)
		require.NoError(t, err, text)
		require.Equal(t, intentNone, it.Kind, text)
	}
}

func TestParse_MalformedArguments(t *testing.T) {
	tests := []struct {
		description string
		text        string
		wantErr     error
	}{
		{"join without room", "加入", errors.ErrMalformedParams},
		{"join with word", "加入 三", errors.ErrMalformedParams},
		{"join with two rooms", "加入 1 2", errors.ErrMalformedParams},
		{"join with zero", "加入 0", errors.ErrInvalidRoomID},
		{"join with negative", "join -1", errors.ErrInvalidRoomID},
		{"swap with one room", "换桌 2", errors.ErrMalformedParams},
		{"status with junk", "查询 1", errors.ErrMalformedParams},
	}
	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := Parse(tt.text)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStatusText_Board(t *testing.T) {
	req := require.New(t)
	g := domain.NewGroupState(1, 2, 4)
	room1, _ := g.Room(1)
	req.NoError(room1.Join(domain.Player{UserID: "a", DisplayName: "A"}))

	board := StatusText(g.Snapshot())

	req.Contains(board, "【1号局】1🀇 1/4")
	req.Contains(board, "【2号局】2🀇 0/4")
	req.Contains(board, "可报名")
}

func TestStatusText_FireMarkerOnLastSeat(t *testing.T) {
	req := require.New(t)
	g := domain.NewGroupState(1, 1, 4)
	room, _ := g.Room(1)
	for _, id := range []string{"a", "b", "c"} {
		req.NoError(room.Join(domain.Player{UserID: id}))
	}

	board := StatusText(g.Snapshot())

	req.Contains(board, "【🔥1号局】")
	req.Contains(board, "即将满员")
}
