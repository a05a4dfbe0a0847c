package skillgraph

import (
	"fmt"
	"sort"
	"strings"
)

// validateSkills performs all structural checks on the given skill set.
// Returns a combined error describing all problems found, or nil if valid.
// A graph that fails validation must not be used to plan sessions.
func validateSkills(skills []Skill) error {
	var errs []string

	idSet := make(map[string]bool, len(skills))
	for _, s := range skills {
		if idSet[s.ID] {
			errs = append(errs, fmt.Sprintf("duplicate skill ID: %q", s.ID))
		}
		idSet[s.ID] = true
	}

	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("skill %q references nonexistent prerequisite %q", s.ID, prereqID))
			}
		}
	}

	if offender := findCycle(skills); offender != "" {
		errs = append(errs, fmt.Sprintf("cycle detected at skill %q", offender))
	}

	hasRoot := false
	for _, s := range skills {
		if s.IsRoot() {
			hasRoot = true
			break
		}
	}
	if !hasRoot {
		errs = append(errs, "no root skills found (at least one skill must have no prerequisites)")
	}

	// Every node must be reachable from a root by following prerequisite
	// edges backwards. A node whose prerequisite chain never bottoms out in
	// a root is unteachable.
	for _, id := range unreachableSkills(skills) {
		errs = append(errs, fmt.Sprintf("skill %q is not reachable from any root", id))
	}

	for _, s := range skills {
		if s.MasteryThreshold <= 0 || s.MasteryThreshold > 1.0 {
			errs = append(errs, fmt.Sprintf("skill %q: MasteryThreshold must be in (0, 1.0], got %f", s.ID, s.MasteryThreshold))
		}
		if s.Tier < MinTier || s.Tier > MaxTier {
			errs = append(errs, fmt.Sprintf("skill %q: Tier must be in [%d, %d], got %d", s.ID, MinTier, MaxTier, s.Tier))
		}
		if s.RequiredCompletions < 1 {
			errs = append(errs, fmt.Sprintf("skill %q: RequiredCompletions must be >= 1, got %d", s.ID, s.RequiredCompletions))
		}
		if len(s.TargetExerciseIDs) == 0 {
			errs = append(errs, fmt.Sprintf("skill %q: at least one target exercise is required", s.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("skill graph validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// visit states for the iterative depth-first cycle search.
const (
	stateUnvisited = iota
	stateInProgress
	stateDone
)

// findCycle runs an iterative depth-first traversal over prerequisite edges
// with an explicit stack. Revisiting a node while it is still in progress
// means the prerequisite chain loops back on itself; the offending node's ID
// is returned. Returns "" for an acyclic graph.
func findCycle(skills []Skill) string {
	byID := make(map[string]*Skill, len(skills))
	for i := range skills {
		byID[skills[i].ID] = &skills[i]
	}

	state := make(map[string]int, len(skills))

	// Deterministic start order so a broken graph is reported stably.
	ids := make([]string, 0, len(skills))
	for _, s := range skills {
		ids = append(ids, s.ID)
	}
	sort.Strings(ids)

	type frame struct {
		id   string
		next int // index of the next prerequisite edge to follow
	}

	for _, start := range ids {
		if state[start] != stateUnvisited {
			continue
		}
		stack := []frame{{id: start}}
		state[start] = stateInProgress

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			s := byID[top.id]

			if s == nil || top.next >= len(s.Prerequisites) {
				state[top.id] = stateDone
				stack = stack[:len(stack)-1]
				continue
			}

			prereq := s.Prerequisites[top.next]
			top.next++

			switch state[prereq] {
			case stateInProgress:
				return prereq
			case stateUnvisited:
				if byID[prereq] != nil {
					state[prereq] = stateInProgress
					stack = append(stack, frame{id: prereq})
				}
			}
		}
	}
	return ""
}

// unreachableSkills returns IDs of skills not reachable from any root,
// sorted for stable error output. Dangling prerequisite references make a
// node unreachable; they are reported separately as well.
func unreachableSkills(skills []Skill) []string {
	byID := make(map[string]*Skill, len(skills))
	for i := range skills {
		byID[skills[i].ID] = &skills[i]
	}

	// Forward edges: prerequisite -> dependents.
	dependents := make(map[string][]string)
	for _, s := range skills {
		for _, prereqID := range s.Prerequisites {
			dependents[prereqID] = append(dependents[prereqID], s.ID)
		}
	}

	reachable := make(map[string]bool, len(skills))
	var queue []string
	for _, s := range skills {
		if s.IsRoot() {
			reachable[s.ID] = true
			queue = append(queue, s.ID)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, depID := range dependents[id] {
			if !reachable[depID] {
				reachable[depID] = true
				queue = append(queue, depID)
			}
		}
	}

	var missing []string
	for _, s := range skills {
		if !reachable[s.ID] {
			missing = append(missing, s.ID)
		}
	}
	sort.Strings(missing)
	return missing
}
