package concepts

// Domain represents a math content domain.
type Domain string

const (
	DomainNumberPlace Domain = "number-and-place-value"
	DomainAddSub      Domain = "addition-and-subtraction"
	DomainMultDiv     Domain = "multiplication-and-division"
	DomainFractions   Domain = "fractions"
	DomainMeasurement Domain = "measurement"
)

// AllDomains returns all domains in display order.
func AllDomains() []Domain {
	return []Domain{
		DomainNumberPlace,
		DomainAddSub,
		DomainMultDiv,
		DomainFractions,
		DomainMeasurement,
	}
}

// DomainDisplayName returns a human-readable name for a domain.
func DomainDisplayName(d Domain) string {
	switch d {
	case DomainNumberPlace:
		return "Number & Place Value"
	case DomainAddSub:
		return "Addition & Subtraction"
	case DomainMultDiv:
		return "Multiplication & Division"
	case DomainFractions:
		return "Fractions"
	case DomainMeasurement:
		return "Measurement"
	default:
		return string(d)
	}
}

// ConceptNode is a single teachable concept. Nodes are immutable reference
// data: the catalog owns them and the engines only ever read them.
type ConceptNode struct {
	Code       string
	GradeRank  int
	Difficulty int // 1 (trivial) to 10 (hardest)
	Title      string
	Domain     Domain
}
