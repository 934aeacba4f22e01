package dispatch

import (
	"fmt"
	"mahjong-rooms/domain"
	"strings"

	"github.com/samber/lo"
)

// RulesText is the static help blurb, kept word for word from the group's
// pinned version.
const RulesText = "🔍 规则说明：\n🀇=筒子局 🏷=底分10码 🎣=干捞1码\n" +
	"加入 N / 退出 [N] / 换桌 A B / 查询 / 开局 / 规则"

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusNearlyFull:
		return "即将满员"
	case domain.StatusFull:
		return "已满员"
	default:
		return "可报名"
	}
}

// roomLine renders one board row, e.g. 【3号局】3🀇 2/4｜10码｜干捞1码 (可报名).
// The fire marker flags the last open seat, the moment the group cares about.
func roomLine(r domain.Room) string {
	marker := ""
	if r.Status() == domain.StatusNearlyFull {
		marker = "🔥"
	}
	return fmt.Sprintf("【%s%d号局】%d🀇 %d/%d｜10码｜干捞1码 (%s)",
		marker, r.ID, r.TileCount, r.Occupancy(), r.Capacity, statusLabel(r.Status()))
}

// StatusText renders the whole board for one group, one row per room in
// ascending id order.
func StatusText(rooms []domain.Room) string {
	lines := lo.Map(rooms, func(r domain.Room, _ int) string {
		return roomLine(r)
	})
	return strings.Join(lines, "\n")
}

// completionText announces a filled room and names everyone seated.
func completionText(roomID domain.RoomID, filled []domain.Player, board string) string {
	names := lo.Map(filled, func(p domain.Player, _ int) string {
		return p.DisplayName
	})
	return fmt.Sprintf("🔥 %d号局满员开局！\n%s\n请各位尽快上桌！\n%s",
		roomID, strings.Join(names, "、"), board)
}

func mentionIDs(filled []domain.Player) []string {
	return lo.Map(filled, func(p domain.Player, _ int) string {
		return p.UserID
	})
}
