package snake

// CommandKind identifies a controller command.
type CommandKind int

const (
	CmdStart CommandKind = iota
	CmdTick
	CmdTurn
	CmdTogglePause
	CmdReset
)

func (k CommandKind) String() string {
	switch k {
	case CmdStart:
		return "start"
	case CmdTick:
		return "tick"
	case CmdTurn:
		return "turn"
	case CmdTogglePause:
		return "toggle_pause"
	case CmdReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Command is a message for the controller. Dir is only used by CmdTurn.
type Command struct {
	Kind CommandKind
	Dir  Direction
}

// Turn builds a CmdTurn command.
func Turn(d Direction) Command {
	return Command{Kind: CmdTurn, Dir: d}
}

// Result reports what a dispatched command did.
type Result struct {
	Accepted bool // The command was valid in the phase it arrived in

	// Reschedule is set when the timer must be re-armed at Interval (running)
	// or cancelled (any other phase): the phase or the interval changed.
	Reschedule bool

	Tick TickResult
}

// Dispatch applies a command and reports its effect.
func (c *Controller) Dispatch(cmd Command) Result {
	before := c.phase

	switch cmd.Kind {
	case CmdStart:
		return Result{Accepted: c.Start(), Reschedule: c.phase != before}

	case CmdTurn:
		return Result{Accepted: c.SetDirection(cmd.Dir)}

	case CmdTogglePause:
		ok := c.TogglePause()
		return Result{Accepted: ok, Reschedule: ok}

	case CmdReset:
		c.Reset()
		return Result{Accepted: true, Reschedule: true}

	case CmdTick:
		if c.phase != PhaseRunning {
			return Result{}
		}
		tick := c.Tick()
		return Result{
			Accepted:   true,
			Reschedule: tick.IntervalChanged || c.phase != before,
			Tick:       tick,
		}
	}

	return Result{}
}
