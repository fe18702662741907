package service

import (
	"fmt"
	"sort"

	"github.com/rulemd/rulemd/internal/domain/entity"
)

// RuleTable is the ordered rule registry spec.md §2 calls the "rule
// registry": a name -> Rule map plus the sorted dispatch list the parse
// engine walks. Construction is two-phase — Register each rule, then
// Build() once to freeze the sorted list — mirroring the teacher
// RuleEngine's register-then-index shape but without the mutex, since a
// RuleTable is built once at startup and never mutated concurrently with
// a parse (spec.md §5).
type RuleTable struct {
	byName map[string]*entity.Rule
	names  []string // insertion order, used as the final sort tiebreak's input set
}

// NewRuleTable returns an empty table.
func NewRuleTable() *RuleTable {
	return &RuleTable{byName: make(map[string]*entity.Rule)}
}

// Register adds a rule, rejecting a duplicate name.
func (t *RuleTable) Register(rule *entity.Rule) error {
	if _, exists := t.byName[rule.Name()]; exists {
		return fmt.Errorf("rule table: duplicate rule name %q", rule.Name())
	}
	t.byName[rule.Name()] = rule
	t.names = append(t.names, rule.Name())
	return nil
}

// MustRegister panics on a duplicate name; used only while assembling the
// compiled-in default table in rules.BuildDefaultRules.
func (t *RuleTable) MustRegister(rule *entity.Rule) {
	if err := t.Register(rule); err != nil {
		panic(err)
	}
}

// Get looks up a rule by name, the lookup the output engine performs for
// every non-list node it renders.
func (t *RuleTable) Get(name string) (*entity.Rule, bool) {
	rule, ok := t.byName[name]
	return rule, ok
}

// Array returns the registry's Array joiner rule, if one was registered.
func (t *RuleTable) Array() (*entity.Rule, bool) {
	return t.Get("Array")
}

// Build sorts the matchable rules (those with Match and a numeric Order)
// by (1) ascending order, (2) rules with a Quality function before those
// without at the same order, (3) ascending name — the tiebreak spec.md
// §4.3 specifies. Rules with a non-numeric Order are excluded and
// reported back as warnings instead of failing the build, per spec.md
// §7's non-fatal "non-numeric rule order" condition.
func (t *RuleTable) Build() (dispatch []*entity.Rule, warnings []string) {
	for _, name := range t.names {
		rule := t.byName[name]
		if !rule.HasMatch() {
			continue
		}
		if _, numeric := rule.Order(); !numeric {
			warnings = append(warnings, fmt.Sprintf("invalid order for rule `%s`: not numeric", name))
			continue
		}
		dispatch = append(dispatch, rule)
	}

	sort.SliceStable(dispatch, func(i, j int) bool {
		a, b := dispatch[i], dispatch[j]
		orderA, _ := a.Order()
		orderB, _ := b.Order()
		if orderA != orderB {
			return orderA < orderB
		}
		qa, qb := a.HasQuality(), b.HasQuality()
		if qa != qb {
			return qa // qualified rules sort before unqualified ones at the same order
		}
		return a.Name() < b.Name()
	})

	return dispatch, warnings
}
