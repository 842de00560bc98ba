package domain

type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectOnHold    ProjectStatus = "on_hold"
	ProjectCompleted ProjectStatus = "completed"
)

type GoalStatus string

const (
	GoalActive  GoalStatus = "active"
	GoalSomeday GoalStatus = "someday"
)

type ResourceType string

const (
	ResourceToBuy    ResourceType = "to_buy"
	ResourceToGather ResourceType = "to_gather"
)

// ItemKind is the persisted discriminator for project item variants.
type ItemKind string

const (
	KindTask      ItemKind = "task"
	KindResource  ItemKind = "resource"
	KindReference ItemKind = "reference"
)

// DurationUnknown is the default duration estimate for tasks.
const DurationUnknown = "unknown"

// KnownDurations is the canonical set of duration estimate strings.
// "unknown" is always accepted as the fallback.
var KnownDurations = map[string]bool{
	"5min": true, "15min": true, "30min": true,
	"1h": true, "2h": true, "4h": true, "1d": true,
	DurationUnknown: true,
}

// NormalizeDuration maps an arbitrary estimate onto the accepted set,
// falling back to "unknown" for empty or unrecognized values.
func NormalizeDuration(d string) string {
	if KnownDurations[d] {
		return d
	}
	return DurationUnknown
}
