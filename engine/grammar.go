package engine

import "github.com/paneru/wm/wmerr"

// ParseCommand translates an argv token list — the shared grammar
// between keybindings and the IPC server (spec.md §6) — into a Command
// and, where relevant, a Direction. argv[0] is the command name;
// "focus"/"swap" require argv[1] to name a direction.
func ParseCommand(argv []string) (Command, Direction, error) {
	if len(argv) == 0 {
		return 0, 0, wmerr.New(wmerr.KindInvalidInput, "ParseCommand", wmerr.ErrInvalidCommand)
	}

	switch argv[0] {
	case "focus":
		dir, err := parseDirection(argv)
		return CmdFocus, dir, err
	case "swap":
		dir, err := parseDirection(argv)
		return CmdSwap, dir, err
	case "center":
		return CmdCenter, 0, nil
	case "resize":
		return CmdResize, 0, nil
	case "manage":
		return CmdManage, 0, nil
	case "stack":
		return CmdStack, 0, nil
	case "unstack":
		return CmdUnstack, 0, nil
	case "quit":
		return CmdQuit, 0, nil
	default:
		return 0, 0, wmerr.New(wmerr.KindInvalidInput, "ParseCommand", wmerr.ErrInvalidCommand)
	}
}

func parseDirection(argv []string) (Direction, error) {
	if len(argv) < 2 {
		return 0, wmerr.New(wmerr.KindInvalidInput, "ParseCommand", wmerr.ErrInvalidCommand)
	}
	switch argv[1] {
	case "west":
		return DirWest, nil
	case "east":
		return DirEast, nil
	case "first":
		return DirFirst, nil
	case "last":
		return DirLast, nil
	case "north":
		return DirNorth, nil
	case "south":
		return DirSouth, nil
	default:
		return 0, wmerr.New(wmerr.KindInvalidInput, "ParseCommand", wmerr.ErrInvalidCommand)
	}
}
