package skillgraph

import (
	"fmt"
	"slices"
	"sort"
)

// graph holds the skill DAG with precomputed indices.
type graph struct {
	skills     []Skill
	byID       map[string]*Skill
	byCategory map[Category][]Skill
	byTier     map[int][]Skill
	byExercise map[string][]string
	roots      []Skill
	dependents map[string][]string
	topoOrder  []Skill
	topoIndex  map[string]int
	depth      map[string]int
}

// g is the package-level graph singleton, set by init() in curriculum.go.
var g *graph

// buildGraph constructs the graph from a slice of skills. It builds all
// indices including topological order (Kahn's algorithm) and longest-path
// depth, computed by dynamic programming over the topological order rather
// than recursion so stack use stays flat regardless of graph size.
func buildGraph(skills []Skill) *graph {
	gr := &graph{
		skills:     skills,
		byID:       make(map[string]*Skill, len(skills)),
		byCategory: make(map[Category][]Skill),
		byTier:     make(map[int][]Skill),
		byExercise: make(map[string][]string),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(skills)),
		depth:      make(map[string]int, len(skills)),
	}

	for i := range gr.skills {
		gr.byID[gr.skills[i].ID] = &gr.skills[i]
	}

	// Reverse edges (dependents) and exercise index.
	for i := range gr.skills {
		s := &gr.skills[i]
		for _, prereqID := range s.Prerequisites {
			gr.dependents[prereqID] = append(gr.dependents[prereqID], s.ID)
		}
		for _, exID := range s.TargetExerciseIDs {
			gr.byExercise[exID] = append(gr.byExercise[exID], s.ID)
		}
	}

	// Topological sort (Kahn's algorithm).
	inDegree := make(map[string]int, len(skills))
	for i := range skills {
		inDegree[skills[i].ID] = len(skills[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	// Sort initial queue for deterministic ordering.
	sort.Strings(queue)

	var topoOrder []Skill
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		skill := gr.byID[id]
		topoOrder = append(topoOrder, *skill)

		deps := slices.Clone(gr.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}

	gr.topoOrder = topoOrder
	for i, s := range gr.topoOrder {
		gr.topoIndex[s.ID] = i
	}

	// Longest-path depth from the roots: process in topological order so
	// every prerequisite's depth is final before its dependents read it.
	for _, s := range gr.topoOrder {
		d := 0
		for _, prereqID := range gr.byID[s.ID].Prerequisites {
			if pd, ok := gr.depth[prereqID]; ok && pd+1 > d {
				d = pd + 1
			}
		}
		gr.depth[s.ID] = d
	}

	for i := range gr.skills {
		if gr.skills[i].IsRoot() {
			gr.roots = append(gr.roots, gr.skills[i])
		}
	}

	// Group by category, sorted by tier asc then topo index.
	for i := range gr.skills {
		s := gr.skills[i]
		gr.byCategory[s.Category] = append(gr.byCategory[s.Category], s)
	}
	for cat, catSkills := range gr.byCategory {
		sorted := slices.Clone(catSkills)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Tier != sorted[j].Tier {
				return sorted[i].Tier < sorted[j].Tier
			}
			return gr.topoIndex[sorted[i].ID] < gr.topoIndex[sorted[j].ID]
		})
		gr.byCategory[cat] = sorted
	}

	// Group by tier, sorted by category priority then topo index.
	for i := range gr.skills {
		s := gr.skills[i]
		gr.byTier[s.Tier] = append(gr.byTier[s.Tier], s)
	}
	for tier, tierSkills := range gr.byTier {
		sorted := slices.Clone(tierSkills)
		sort.Slice(sorted, func(i, j int) bool {
			pi := CategoryPriority(sorted[i].Category)
			pj := CategoryPriority(sorted[j].Category)
			if pi != pj {
				return pi < pj
			}
			return gr.topoIndex[sorted[i].ID] < gr.topoIndex[sorted[j].ID]
		})
		gr.byTier[tier] = sorted
	}

	return gr
}

// GetSkill returns a skill by ID, or an error if not found.
func GetSkill(id string) (Skill, error) {
	s, ok := g.byID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// AllSkills returns all skills in the graph.
func AllSkills() []Skill {
	return slices.Clone(g.skills)
}

// ByCategory returns all skills in a category, ordered by tier then
// topological position.
func ByCategory(cat Category) []Skill {
	return slices.Clone(g.byCategory[cat])
}

// ByTier returns all skills for a curriculum tier, ordered by category
// priority then topological position.
func ByTier(tier int) []Skill {
	return slices.Clone(g.byTier[tier])
}

// SkillsForExercise returns the skills that list the given exercise as a
// practice target. Most exercises target exactly one skill.
func SkillsForExercise(exerciseID string) []Skill {
	ids := g.byExercise[exerciseID]
	result := make([]Skill, 0, len(ids))
	for _, id := range ids {
		if s, ok := g.byID[id]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// RootSkills returns all skills with no prerequisites.
func RootSkills() []Skill {
	return slices.Clone(g.roots)
}

// Prerequisites returns the direct prerequisite skills for a skill ID.
func Prerequisites(id string) []Skill {
	s, ok := g.byID[id]
	if !ok {
		return nil
	}
	result := make([]Skill, 0, len(s.Prerequisites))
	for _, prereqID := range s.Prerequisites {
		if p, ok := g.byID[prereqID]; ok {
			result = append(result, *p)
		}
	}
	return result
}

// Dependents returns skills that directly depend on the given skill ID.
func Dependents(id string) []Skill {
	depIDs := g.dependents[id]
	result := make([]Skill, 0, len(depIDs))
	for _, depID := range depIDs {
		if s, ok := g.byID[depID]; ok {
			result = append(result, *s)
		}
	}
	return result
}

// Depth returns the longest-path distance from any root to the skill.
// Roots have depth 0. Unknown IDs return -1.
func Depth(id string) int {
	d, ok := g.depth[id]
	if !ok {
		return -1
	}
	return d
}

// IsUnlocked reports whether every prerequisite of the skill is in the
// mastered set.
func IsUnlocked(id string, mastered map[string]bool) bool {
	s, ok := g.byID[id]
	if !ok {
		return false
	}
	for _, prereqID := range s.Prerequisites {
		if !mastered[prereqID] {
			return false
		}
	}
	return true
}

// AvailableSkills returns all skills that are unlocked but not yet mastered,
// in topological order. With an empty mastered set this is exactly the roots;
// with everything mastered it is empty.
func AvailableSkills(mastered map[string]bool) []Skill {
	var result []Skill
	for _, s := range g.topoOrder {
		if !mastered[s.ID] && IsUnlocked(s.ID, mastered) {
			result = append(result, s)
		}
	}
	return result
}

// BlockedSkills returns all skills with at least one unmastered prerequisite.
func BlockedSkills(mastered map[string]bool) []Skill {
	var result []Skill
	for _, s := range g.topoOrder {
		if !IsUnlocked(s.ID, mastered) {
			result = append(result, s)
		}
	}
	return result
}

// TopologicalOrder returns all skills in a valid topological order.
func TopologicalOrder() []Skill {
	return slices.Clone(g.topoOrder)
}

// Validate checks the compiled-in curriculum for structural issues.
func Validate() error {
	return validateSkills(g.skills)
}
