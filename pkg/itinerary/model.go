package itinerary

import "fmt"

// IconType categorizes a task by the kind of movement or errand it involves.
type IconType string

const (
	IconFlight   IconType = "plane"
	IconTrain    IconType = "train"
	IconMountain IconType = "mountain"
	IconSupply   IconType = "cart"
)

// Task is one itinerary action item. IDs are globally unique across the whole
// itinerary and key the completion state.
type Task struct {
	ID      string   `json:"id"`
	Time    string   `json:"time"`
	Label   string   `json:"label"`
	Detail  string   `json:"detail,omitempty"`
	Link    string   `json:"link,omitempty"`
	Note    string   `json:"note,omitempty"`
	Warning string   `json:"warning,omitempty"`
	Icon    IconType `json:"iconType,omitempty"`
}

// DayMission is a named, dated group of tasks. Task order is display order.
type DayMission struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
	Tasks []Task `json:"tasks"`
}

// IntelRecord is a labeled reference value meant for copy-paste into the
// Visit Japan Web entry form. Read-only, no completion state.
type IntelRecord struct {
	Label    string `json:"label"`
	Value    string `json:"value"`
	SubValue string `json:"subValue,omitempty"`
	FieldID  string `json:"fieldId"`
}

// PlanType selects one of the contingency plans.
type PlanType string

const (
	PlanArrival    PlanType = "arrival"
	PlanEvacuation PlanType = "evacuation"
)

// PlanStep is one ordered action inside a backup plan.
type PlanStep struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// BackupPlan describes the fallback logistics for one leg of the trip.
type BackupPlan struct {
	Type        PlanType   `json:"type"`
	Title       string     `json:"title"`
	RedLine     string     `json:"redLine"`
	RedLineNote string     `json:"redLineNote"`
	Steps       []PlanStep `json:"steps"`
	Destination string     `json:"destination"`
	Budget      string     `json:"budget"`
	FinalTarget string     `json:"finalTarget"`
}

// Validate checks the itinerary invariants: every task id must be unique
// across all missions.
func Validate(missions []DayMission) error {
	seen := make(map[string]string)
	for _, m := range missions {
		for _, t := range m.Tasks {
			if t.ID == "" {
				return fmt.Errorf("mission %s contains a task with an empty id", m.ID)
			}
			if prev, ok := seen[t.ID]; ok {
				return fmt.Errorf("duplicate task id %q in missions %s and %s", t.ID, prev, m.ID)
			}
			seen[t.ID] = m.ID
		}
	}
	return nil
}

// TaskExists reports whether id belongs to a task in the given missions.
func TaskExists(missions []DayMission, id string) bool {
	for _, m := range missions {
		for _, t := range m.Tasks {
			if t.ID == id {
				return true
			}
		}
	}
	return false
}

// TotalTasks counts every task across all missions.
func TotalTasks(missions []DayMission) int {
	n := 0
	for _, m := range missions {
		n += len(m.Tasks)
	}
	return n
}

// PlanByType returns the backup plan of the given type.
func PlanByType(plans []BackupPlan, kind PlanType) (BackupPlan, bool) {
	for _, p := range plans {
		if p.Type == kind {
			return p, true
		}
	}
	return BackupPlan{}, false
}
