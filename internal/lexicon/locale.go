// Package lexicon holds the language tables and numeric constants the
// feature extractors read. Nothing in here is mutated after construction;
// overrides produce new Locale values.
package lexicon

import (
	"slices"
	"sort"

	"synapse-go/internal/types"
)

const DefaultLocale = "pt-BR"

// Topic is one expected subject of an area, hit when any keyword occurs.
type Topic struct {
	Name     string   `toml:"name"`
	Keywords []string `toml:"keywords"`
}

// AreaTable holds the tables that depend on the training area.
type AreaTable struct {
	Topics      []Topic             `toml:"topics"`
	Criteria    map[string][]string `toml:"criteria"`
	Resolution  []string            `toml:"resolution"`
	Decision    []string            `toml:"decision"`
	ActionItems []string            `toml:"action_items"`
	NextSteps   []string            `toml:"next_steps"`
}

// Locale is the full set of lexical tables for one language.
type Locale struct {
	Code string `toml:"code"`

	Fillers             []string `toml:"fillers"`
	OpenQuestionMarkers []string `toml:"open_question_markers"`
	EmpathyMarkers      []string `toml:"empathy_markers"`
	PolitenessMarkers   []string `toml:"politeness_markers"`
	ComplianceRiskTerms []string `toml:"compliance_risk_terms"`

	PositiveWords   []string `toml:"positive_words"`
	NegativeWords   []string `toml:"negative_words"`
	PositiveContext []string `toml:"positive_context"`
	NegativeContext []string `toml:"negative_context"`

	VagueNextStep    []string `toml:"vague_next_step"`
	SpecificNextStep []string `toml:"specific_next_step"`
	ExampleMarkers   []string `toml:"example_markers"`
	DateMarkers      []string `toml:"date_markers"`
	MonthNames       []string `toml:"month_names"`
	Stopwords        []string `toml:"stopwords"`

	Areas map[types.Area]AreaTable `toml:"areas"`
}

// Area returns the table for a, or an empty table for an unknown area.
func (l *Locale) Area(a types.Area) AreaTable {
	if l == nil || l.Areas == nil {
		return AreaTable{}
	}
	return l.Areas[a]
}

// IsStopword reports whether the normalized word w is in the stopword list.
func (l *Locale) IsStopword(w string) bool {
	for _, s := range l.Stopwords {
		if Normalize(s) == w {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of l. Decoding into the copy leaves l untouched.
func (l *Locale) Clone() *Locale {
	c := *l
	for _, f := range c.lists() {
		*f = slices.Clone(*f)
	}
	c.Areas = make(map[types.Area]AreaTable, len(l.Areas))
	for a, t := range l.Areas {
		c.Areas[a] = t.clone()
	}
	return &c
}

func (l *Locale) lists() []*[]string {
	return []*[]string{
		&l.Fillers, &l.OpenQuestionMarkers, &l.EmpathyMarkers, &l.PolitenessMarkers,
		&l.ComplianceRiskTerms, &l.PositiveWords, &l.NegativeWords, &l.PositiveContext,
		&l.NegativeContext, &l.VagueNextStep, &l.SpecificNextStep, &l.ExampleMarkers,
		&l.DateMarkers, &l.MonthNames, &l.Stopwords,
	}
}

func (t AreaTable) clone() AreaTable {
	out := AreaTable{
		Resolution:  slices.Clone(t.Resolution),
		Decision:    slices.Clone(t.Decision),
		ActionItems: slices.Clone(t.ActionItems),
		NextSteps:   slices.Clone(t.NextSteps),
	}
	if t.Topics != nil {
		out.Topics = make([]Topic, len(t.Topics))
		for i, tp := range t.Topics {
			out.Topics[i] = Topic{Name: tp.Name, Keywords: slices.Clone(tp.Keywords)}
		}
	}
	if t.Criteria != nil {
		out.Criteria = make(map[string][]string, len(t.Criteria))
		for k, v := range t.Criteria {
			out.Criteria[k] = slices.Clone(v)
		}
	}
	return out
}

var builtin = map[string]*Locale{
	"pt-BR": portuguese(),
	"en":    english(),
}

// Lookup returns a built-in locale.
func Lookup(code string) (*Locale, bool) {
	l, ok := builtin[code]
	return l, ok
}

// Codes lists the built-in locale codes, sorted.
func Codes() []string {
	out := make([]string, 0, len(builtin))
	for k := range builtin {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Default returns the pt-BR locale.
func Default() *Locale {
	return builtin[DefaultLocale]
}
