package domain

// CommandType classifies what an input event asks the controller to do.
type CommandType int

const (
	CommandNone CommandType = iota
	CommandDigit
	CommandOperator
	CommandDot
	CommandParen
	CommandClear
	CommandDelete
	CommandPercent
	CommandCalculate
)

// String returns a human-readable command type.
func (c CommandType) String() string {
	switch c {
	case CommandDigit:
		return "digit"
	case CommandOperator:
		return "operator"
	case CommandDot:
		return "dot"
	case CommandParen:
		return "paren"
	case CommandClear:
		return "clear"
	case CommandDelete:
		return "delete"
	case CommandPercent:
		return "percent"
	case CommandCalculate:
		return "calculate"
	default:
		return "none"
	}
}

// Command is a single input event translated from a key or a button.
type Command struct {
	Type  CommandType
	Token string // literal text appended for digit/operator/dot/paren
}

// Action names used by keypad buttons.
const (
	ActionClear     = "clear"
	ActionDelete    = "delete"
	ActionCalculate = "calculate"
	ActionPercent   = "percent"
)

var actionNames = map[string]CommandType{
	ActionClear:     CommandClear,
	ActionDelete:    CommandDelete,
	ActionCalculate: CommandCalculate,
	ActionPercent:   CommandPercent,
}

// CommandFromAction converts a button action name to a CommandType.
// Returns CommandNone for unrecognized names.
func CommandFromAction(name string) CommandType {
	if t, ok := actionNames[name]; ok {
		return t
	}
	return CommandNone
}
