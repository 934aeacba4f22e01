package dispatch

import (
	"fmt"
	"mahjong-rooms/domain"
	"mahjong-rooms/errors"
	"strconv"
	"strings"
)

type intentKind int

const (
	intentNone intentKind = iota
	intentJoin
	intentLeave
	intentSwap
	intentStatus
	intentCreate
	intentRules
)

// Intent is one chat line decoded into a typed command.
type Intent struct {
	Kind    intentKind
	RoomID  domain.RoomID // join, and leave when a room id was given
	HasRoom bool
	From    domain.RoomID // swap
	To      domain.RoomID
}

// Both the Chinese commands the group actually types and the latin
// aliases of the early slash-command era are accepted.
var keywords = map[string]intentKind{
	"加入":     intentJoin,
	"join":   intentJoin,
	"add":    intentJoin,
	"退出":     intentLeave,
	"leave":  intentLeave,
	"remove": intentLeave,
	"换桌":     intentSwap,
	"swap":   intentSwap,
	"查询":     intentStatus,
	"status": intentStatus,
	"check":  intentStatus,
	"开局":     intentCreate,
	"create": intentCreate,
	"规则":     intentRules,
	"rules":  intentRules,
}

// Parse decodes a raw chat line. Lines that are not commands come back as
// intentNone with no error; recognized commands with bad arguments return
// ErrMalformedParams so the caller can answer with a usage hint.
func Parse(text string) (Intent, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Intent{}, nil
	}
	head := strings.ToLower(strings.TrimPrefix(fields[0], "/"))

	kind, args := matchKeyword(head)
	if kind == intentNone {
		return Intent{}, nil
	}
	args = append(args, fields[1:]...)

	switch kind {
	case intentJoin:
		id, err := oneRoomArg(args)
		if err != nil {
			return Intent{}, err
		}
		return Intent{Kind: intentJoin, RoomID: id, HasRoom: true}, nil
	case intentLeave:
		// The room id is optional: a bare 退出 leaves whichever room the
		// user is seated in.
		if len(args) == 0 {
			return Intent{Kind: intentLeave}, nil
		}
		id, err := oneRoomArg(args)
		if err != nil {
			return Intent{}, err
		}
		return Intent{Kind: intentLeave, RoomID: id, HasRoom: true}, nil
	case intentSwap:
		if len(args) != 2 {
			return Intent{}, fmt.Errorf("swap wants 2 room ids, got %d: %w", len(args), errors.ErrMalformedParams)
		}
		from, err := roomArg(args[0])
		if err != nil {
			return Intent{}, err
		}
		to, err := roomArg(args[1])
		if err != nil {
			return Intent{}, err
		}
		return Intent{Kind: intentSwap, From: from, To: to}, nil
	default:
		if len(args) > 0 {
			return Intent{}, fmt.Errorf("unexpected arguments: %w", errors.ErrMalformedParams)
		}
		return Intent{Kind: kind}, nil
	}
}

// matchKeyword also splits glued forms like "加入3", common on phones.
func matchKeyword(head string) (intentKind, []string) {
	if kind, ok := keywords[head]; ok {
		return kind, nil
	}
	for word, kind := range keywords {
		if rest, ok := strings.CutPrefix(head, word); ok && rest != "" {
			return kind, []string{rest}
		}
	}
	return intentNone, nil
}

func oneRoomArg(args []string) (domain.RoomID, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("want 1 room id, got %d args: %w", len(args), errors.ErrMalformedParams)
	}
	return roomArg(args[0])
}

func roomArg(arg string) (domain.RoomID, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("room id %q: %w", arg, errors.ErrMalformedParams)
	}
	if n < 1 {
		return 0, fmt.Errorf("room id %d: %w", n, errors.ErrInvalidRoomID)
	}
	return domain.RoomID(n), nil
}
