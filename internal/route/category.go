package route

// Category names one part of a parsed command line.
type Category int

const (
	Arguments Category = iota + 1
	Options
	Flags
	Command
)

// Matchable lists, in evaluation order, the categories a route can constrain.
var Matchable = []Category{Arguments, Options, Flags}

func (c Category) String() string {
	switch c {
	case Arguments:
		return "arguments"
	case Options:
		return "options"
	case Flags:
		return "flags"
	case Command:
		return "command"
	default:
		return "unknown"
	}
}

// Missing returns the categories of Matchable not present in matched,
// in Matchable order.
func Missing(matched []Category) []Category {
	var out []Category
	for _, c := range Matchable {
		found := false
		for _, m := range matched {
			if m == c {
				found = true
				break
			}
		}
		if !found {
			out = append(out, c)
		}
	}
	return out
}
