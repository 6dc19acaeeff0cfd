package voting

// Outcome classifies the effect of one vote operation.
type Outcome string

const (
	OutcomeCast      Outcome = "cast"      // New vote created
	OutcomeCancelled Outcome = "cancelled" // Existing vote removed (same value re-submitted)
	OutcomeChanged   Outcome = "changed"   // Existing vote flipped to the opposite value
)

// Result is what a settled vote operation hands back to the caller: the signed
// score delta that was applied and how it came about. TargetAuthor lets the
// karma layer credit the content's author without re-querying.
type Result struct {
	Delta        int     `json:"delta"`
	Outcome      Outcome `json:"outcome"`
	TargetAuthor uint    `json:"-"`
}
