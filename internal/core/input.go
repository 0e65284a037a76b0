package core

// Command is an abstract game command decoded from raw input.
// Each game family understands a subset; the rest are ignored.
type Command int

const (
	CmdNone Command = iota

	// Grid-directional
	CmdUp
	CmdDown
	CmdLeft
	CmdRight

	// Falling-block
	CmdShiftLeft
	CmdShiftRight
	CmdSoftDrop
	CmdHardDrop
	CmdRotate

	// Board puzzles
	CmdReveal
	CmdFlag

	// Continuous-space, edge-triggered
	CmdFlipperLeftDown
	CmdFlipperLeftUp
	CmdFlipperRightDown
	CmdFlipperRightUp
	CmdLaunch
	CmdJump
	CmdLaneLeft
	CmdLaneRight
	CmdFire
)

var commandNames = map[Command]string{
	CmdNone:             "None",
	CmdUp:               "Up",
	CmdDown:             "Down",
	CmdLeft:             "Left",
	CmdRight:            "Right",
	CmdShiftLeft:        "ShiftLeft",
	CmdShiftRight:       "ShiftRight",
	CmdSoftDrop:         "SoftDrop",
	CmdHardDrop:         "HardDrop",
	CmdRotate:           "Rotate",
	CmdReveal:           "Reveal",
	CmdFlag:             "Flag",
	CmdFlipperLeftDown:  "FlipperLeftDown",
	CmdFlipperLeftUp:    "FlipperLeftUp",
	CmdFlipperRightDown: "FlipperRightDown",
	CmdFlipperRightUp:   "FlipperRightUp",
	CmdLaunch:           "Launch",
	CmdJump:             "Jump",
	CmdLaneLeft:         "LaneLeft",
	CmdLaneRight:        "LaneRight",
	CmdFire:             "Fire",
}

// String returns a human-readable name for the command.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Direction returns the unit grid step for a directional command.
// ok is false for anything that is not Up/Down/Left/Right.
func (c Command) Direction() (d Point, ok bool) {
	switch c {
	case CmdUp:
		return Point{0, -1}, true
	case CmdDown:
		return Point{0, 1}, true
	case CmdLeft:
		return Point{-1, 0}, true
	case CmdRight:
		return Point{1, 0}, true
	}
	return Point{}, false
}
