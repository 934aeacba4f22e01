package main

import (
	"fmt"
	"log"
	"mahjong-rooms/dispatch"
	"mahjong-rooms/domain"
	"mahjong-rooms/observability"
	"mahjong-rooms/runtime"
	"mahjong-rooms/services"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type simConfig struct {
	GroupID int64 `envconfig:"SIM_GROUP_ID" default:"42"`
	// SIM_COLOURS enables colorized output for better readability
	Colours  bool   `envconfig:"SIM_COLOURS" default:"true"`
	LogLevel string `envconfig:"SIM_LOG_LEVEL" default:"WARN"`
}

// The simulator replays a typical afternoon of group chatter against an
// in-process core and prints the board after every step. Handy for eyeballing
// the membership rules without a platform connection.
func main() {
	var cfg simConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("config error: %v", err)
	}
	logger := logs.GetLoggerFromString(cfg.LogLevel)

	monitoring := observability.NewMonitoringManager()
	registry := runtime.NewRegistry(logger, 5, 4)
	membership := services.NewMembershipService(logger, registry, monitoring)
	creation := services.NewCreationService(logger, registry, monitoring)
	dispatcher := dispatch.NewDispatcher(logger, membership, creation, registry)

	group := domain.GroupID(cfg.GroupID)
	script := []struct {
		user, name, text string
	}{
		{"1001", "阿强", "查询"},
		{"1001", "阿强", "加入 1"},
		{"1002", "小美", "加入 1"},
		{"1003", "老王", "加入 1"},
		{"1002", "小美", "换桌 1 2"},
		{"1004", "阿花", "加入 1"},
		{"1005", "大熊", "加入 1"}, // fills room 1
		{"1006", "球球", "开局"},
		{"1006", "球球", "3 2"}, // custom room 6
		{"1001", "阿强", "退出"},
		{"1006", "球球", "加入 6"},
		{"1002", "小美", "加入6"},
	}

	for _, step := range script {
		reply := dispatcher.Handle(domain.IncomingMessage{
			GroupID: group, UserID: step.user, DisplayName: step.name, Text: step.text,
		})
		fmt.Printf("\n%s> %s\n", step.name, step.text)
		if !reply.IsZero() {
			fmt.Println(indent(reply.Text))
		}
	}

	fmt.Println()
	renderBoard(os.Stdout, registry.Snapshot(group), cfg.Colours)
}

func renderBoard(out *os.File, rooms []domain.Room, colours bool) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Room", "Tiles", "Seats", "Status", "Players"})
	for _, room := range rooms {
		names := lo.Map(room.Players(), func(p domain.Player, _ int) string {
			return p.DisplayName
		})
		table.Append([]string{
			fmt.Sprintf("%d", room.ID),
			fmt.Sprintf("%d", room.TileCount),
			fmt.Sprintf("%d/%d", room.Occupancy(), room.Capacity),
			statusCell(room.Status(), colours),
			strings.Join(names, ", "),
		})
	}
	table.Render()
}

// statusCell keeps the original board's colour code: grey empty, green
// open, yellow nearly full, red full.
func statusCell(s domain.Status, colours bool) string {
	if !colours {
		return s.String()
	}
	switch s {
	case domain.StatusEmpty:
		return color.Gray.Render(s.String())
	case domain.StatusOpen:
		return color.Green.Render(s.String())
	case domain.StatusNearlyFull:
		return color.Yellow.Render(s.String())
	default:
		return color.Red.Render(s.String())
	}
}

func indent(text string) string {
	lines := strings.Split(text, "\n")
	return "  " + strings.Join(lines, "\n  ")
}
