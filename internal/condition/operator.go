package condition

// CompOp is a single-bound ordering comparison.
type CompOp int

const (
	LtOp CompOp = iota
	LteOp
	GtOp
	GteOp
)

func (op CompOp) String() string {
	switch op {
	case LtOp:
		return "<"
	case LteOp:
		return "<="
	case GtOp:
		return ">"
	case GteOp:
		return ">="
	default:
		return "?"
	}
}
