package codec

import (
	"sort"
	"sync"
)

// ruleState is a registered rule together with its effective settings.
type ruleState struct {
	rule     Rule
	enabled  bool
	severity Severity
}

// RuleRegistry holds the rules a Validator runs, in registration order, along
// with per-rule enablement and severity overrides. It is safe for concurrent
// use.
type RuleRegistry struct {
	mu     sync.RWMutex
	byID   map[string]*ruleState
	states []*ruleState
}

// NewRuleRegistry creates an empty registry.
func NewRuleRegistry() *RuleRegistry {
	return &RuleRegistry{byID: make(map[string]*ruleState)}
}

// Register adds a rule, enabled at its default severity. Registering an ID
// again replaces the rule in place and resets its settings.
func (r *RuleRegistry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	st := &ruleState{rule: rule, enabled: true, severity: rule.DefaultSeverity()}
	if old, ok := r.byID[rule.ID()]; ok {
		*old = *st
		return
	}
	r.byID[rule.ID()] = st
	r.states = append(r.states, st)
}

// lookup returns the state for id; the caller holds mu.
func (r *RuleRegistry) lookup(id string) *ruleState {
	return r.byID[id]
}

// Enable enables a rule by ID. Unknown IDs are ignored.
func (r *RuleRegistry) Enable(id string) {
	r.setEnabled(id, true)
}

// Disable disables a rule by ID. Unknown IDs are ignored.
func (r *RuleRegistry) Disable(id string) {
	r.setEnabled(id, false)
}

func (r *RuleRegistry) setEnabled(id string, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st := r.lookup(id); st != nil {
		st.enabled = enabled
	}
}

// SetCategoryEnabled enables or disables every rule in category and returns
// how many rules it touched. Zero means the category is unknown.
func (r *RuleRegistry) SetCategoryEnabled(category string, enabled bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for _, st := range r.states {
		if st.rule.Category() == category {
			st.enabled = enabled
			n++
		}
	}
	return n
}

// SetSeverity overrides the severity for a rule. Unknown IDs are ignored.
func (r *RuleRegistry) SetSeverity(id string, severity Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if st := r.lookup(id); st != nil {
		st.severity = severity
	}
}

// IsEnabled reports whether the rule is registered and enabled.
func (r *RuleRegistry) IsEnabled(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st := r.lookup(id)
	return st != nil && st.enabled
}

// GetSeverity returns the effective severity for a rule.
func (r *RuleRegistry) GetSeverity(id string) Severity {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st := r.lookup(id); st != nil {
		return st.severity
	}
	return SeverityError
}

// GetRule returns a rule by ID, or nil if not found.
func (r *RuleRegistry) GetRule(id string) Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if st := r.lookup(id); st != nil {
		return st.rule
	}
	return nil
}

// collect returns the rules whose state satisfies keep, in registration order.
func (r *RuleRegistry) collect(keep func(*ruleState) bool) []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rules []Rule
	for _, st := range r.states {
		if keep(st) {
			rules = append(rules, st.rule)
		}
	}
	return rules
}

// EnabledRules returns the enabled rules in registration order.
func (r *RuleRegistry) EnabledRules() []Rule {
	return r.collect(func(st *ruleState) bool { return st.enabled })
}

// AllRules returns every registered rule in registration order.
func (r *RuleRegistry) AllRules() []Rule {
	return r.collect(func(*ruleState) bool { return true })
}

// RulesByCategory returns the rules of one category in registration order.
func (r *RuleRegistry) RulesByCategory(category string) []Rule {
	return r.collect(func(st *ruleState) bool { return st.rule.Category() == category })
}

// Categories returns the distinct rule categories, sorted.
func (r *RuleRegistry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]bool)
	var cats []string
	for _, st := range r.states {
		if c := st.rule.Category(); !seen[c] {
			seen[c] = true
			cats = append(cats, c)
		}
	}
	sort.Strings(cats)
	return cats
}

// Count returns the number of registered rules.
func (r *RuleRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.states)
}

// EnabledCount returns the number of enabled rules.
func (r *RuleRegistry) EnabledCount() int {
	return len(r.EnabledRules())
}

// RunRules executes all enabled rules against one entry and returns the
// failures. Failures carry the registry's effective severity.
func (r *RuleRegistry) RunRules(entry *Entry, doc *Document) []Result {
	r.mu.RLock()
	active := make([]ruleState, 0, len(r.states))
	for _, st := range r.states {
		if st.enabled {
			active = append(active, *st)
		}
	}
	r.mu.RUnlock()

	var failures []Result
	for _, st := range active {
		res := st.rule.Check(entry, doc)
		if res.Valid {
			continue
		}
		res.RuleID = st.rule.ID()
		res.Severity = st.severity
		failures = append(failures, res)
	}
	return failures
}
