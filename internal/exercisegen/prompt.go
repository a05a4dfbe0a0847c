package exercisegen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a piano teacher writing short practice exercises for an adult beginner.

Rules:
- Generate a single exercise targeting the given skill.
- Write notes in scientific pitch notation: letter A-G, optional # or b, octave digit. Examples: C4, F#4, Bb3. Middle C is C4.
- Stay within the 88-key range (A0 to C8) and keep beginner exercises near the middle of the keyboard.
- Use between 4 and 32 notes. The sequence should be singable and musically coherent, not random.
- Match the clef and hands to the skill: left-hand skills use the bass clef, right-hand skills the treble clef, hands-together skills the grand staff.
- Choose a tempo the exercise is comfortable at. If a target tempo is given, use exactly that tempo.
- The teaching note should give one concrete practice tip in one or two sentences.
- Do not reuse any title from the "already generated" list.`

// buildUserMessage constructs the user message from GenerateInput and
// Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Skill: %s\n", input.Skill.Name)
	fmt.Fprintf(&b, "Category: %s\n", input.Skill.Category)
	fmt.Fprintf(&b, "Curriculum tier: %d of 15\n", input.Skill.Tier)
	fmt.Fprintf(&b, "Purpose: %s\n", input.Purpose)

	if input.TargetTempoBPM > 0 {
		fmt.Fprintf(&b, "Target tempo: %d BPM exactly\n", input.TargetTempoBPM)
	}

	if len(input.WeakNotes) > 0 && input.Purpose == PurposeWarmUp {
		fmt.Fprintf(&b, "Feature these notes the learner often misses: %s\n",
			strings.Join(input.WeakNotes, ", "))
	}

	b.WriteString("\nAlready generated this session:\n")
	b.WriteString(buildDedup(input.RecentTitles, cfg.MaxRecentTitles))

	return b.String()
}

// buildDedup formats recent titles for the prompt, respecting the max
// limit. Returns "None" when there is nothing to avoid.
func buildDedup(titles []string, max int) string {
	if len(titles) == 0 {
		return "None"
	}

	if max > 0 && len(titles) > max {
		titles = titles[len(titles)-max:]
	}

	var b strings.Builder
	for i, title := range titles {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	return strings.TrimRight(b.String(), "\n")
}
