package types

import "fmt"

type Speaker string

const (
	SpeakerUser Speaker = "user"
	SpeakerAI   Speaker = "ai"
)

// Turn is one recorded utterance. Timestamp is milliseconds, monotonic within a session.
type Turn struct {
	Speaker   Speaker `json:"speaker"`
	Content   string  `json:"content"`
	Timestamp int64   `json:"timestamp"`
}

// Conversation is the chronological list of turns of one session.
type Conversation struct {
	Turns []Turn `json:"turns"`
}

// Snapshot returns a copy that shares no backing array with c.
func (c Conversation) Snapshot() Conversation {
	turns := make([]Turn, len(c.Turns))
	copy(turns, c.Turns)
	return Conversation{Turns: turns}
}

func (c Conversation) UserTurns() []Turn { return c.bySpeaker(SpeakerUser) }

func (c Conversation) AITurns() []Turn { return c.bySpeaker(SpeakerAI) }

func (c Conversation) bySpeaker(s Speaker) []Turn {
	var out []Turn
	for _, t := range c.Turns {
		if t.Speaker == s {
			out = append(out, t)
		}
	}
	return out
}

// Area selects which keyword tables and topic lists apply to a scenario.
type Area string

const (
	AreaCommercial  Area = "commercial"
	AreaHR          Area = "hr"
	AreaEducational Area = "educational"
	AreaManagement  Area = "management"
)

var Areas = []Area{AreaCommercial, AreaHR, AreaEducational, AreaManagement}

var areaNames = map[Area]string{
	AreaCommercial:  "Comercial",
	AreaHR:          "Recursos Humanos",
	AreaEducational: "Educacional",
	AreaManagement:  "Gestão",
}

// DisplayName is the human label used in report text.
func (a Area) DisplayName() string {
	if n, ok := areaNames[a]; ok {
		return n
	}
	return string(a)
}

func (a Area) Valid() bool {
	_, ok := areaNames[a]
	return ok
}

func ParseArea(s string) (Area, error) {
	a := Area(s)
	if !a.Valid() {
		return "", fmt.Errorf("unknown area %q", s)
	}
	return a, nil
}

// Criterion is one weighted rubric dimension of a scenario.
type Criterion struct {
	Key    string  `json:"key" yaml:"key"`
	Label  string  `json:"label" yaml:"label"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Scenario is read-only input to scoring.
type Scenario struct {
	ID          string      `json:"id" yaml:"id"`
	Area        Area        `json:"area" yaml:"area"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Criteria    []Criterion `json:"criteria" yaml:"criteria"`
}

// Validate checks area membership, unique criterion keys and non-negative weights.
func (s Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario: missing id")
	}
	if !s.Area.Valid() {
		return fmt.Errorf("scenario %s: unknown area %q", s.ID, s.Area)
	}
	seen := map[string]bool{}
	for _, c := range s.Criteria {
		if c.Key == "" {
			return fmt.Errorf("scenario %s: criterion without key", s.ID)
		}
		if seen[c.Key] {
			return fmt.Errorf("scenario %s: duplicate criterion %q", s.ID, c.Key)
		}
		seen[c.Key] = true
		if c.Weight < 0 {
			return fmt.Errorf("scenario %s: criterion %q has negative weight", s.ID, c.Key)
		}
	}
	return nil
}
