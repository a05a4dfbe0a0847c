package skillgraph

func init() {
	g = buildGraph(curriculum)
}

// curriculum is the compiled-in piano skill set: 100 skills across twelve
// categories and fifteen tiers. Exercise IDs refer to content that may or
// may not be authored yet; the content catalog owns which ones exist.
var curriculum = []Skill{
	// --- Note finding ---
	{
		ID: "nf-middle-c", Name: "Finding Middle C", Category: CategoryNoteFinding,
		Tier: 1, MasteryThreshold: 0.70, RequiredCompletions: 2,
		TargetExerciseIDs: []string{"nf-middle-c-01", "nf-middle-c-02"},
	},
	{
		ID: "nf-c-position-rh", Name: "C Position, Right Hand", Category: CategoryNoteFinding,
		Tier: 1, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"nf-middle-c"},
		TargetExerciseIDs: []string{"nf-c-position-rh-01", "nf-c-position-rh-02"},
	},
	{
		ID: "nf-c-position-lh", Name: "C Position, Left Hand", Category: CategoryNoteFinding,
		Tier: 1, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"nf-middle-c"},
		TargetExerciseIDs: []string{"nf-c-position-lh-01", "nf-c-position-lh-02"},
	},
	{
		ID: "nf-treble-lines", Name: "Treble Clef Line Notes", Category: CategoryNoteFinding,
		Tier: 2, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"nf-c-position-rh"},
		TargetExerciseIDs: []string{"nf-treble-lines-01", "nf-treble-lines-02"},
	},
	{
		ID: "nf-treble-spaces", Name: "Treble Clef Space Notes", Category: CategoryNoteFinding,
		Tier: 2, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"nf-treble-lines"},
		TargetExerciseIDs: []string{"nf-treble-spaces-01"},
	},
	{
		ID: "nf-bass-lines", Name: "Bass Clef Line Notes", Category: CategoryNoteFinding,
		Tier: 2, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"nf-c-position-lh"},
		TargetExerciseIDs: []string{"nf-bass-lines-01", "nf-bass-lines-02"},
	},
	{
		ID: "nf-bass-spaces", Name: "Bass Clef Space Notes", Category: CategoryNoteFinding,
		Tier: 3, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"nf-bass-lines"},
		TargetExerciseIDs: []string{"nf-bass-spaces-01"},
	},
	{
		ID: "nf-grand-staff", Name: "Reading the Grand Staff", Category: CategoryNoteFinding,
		Tier: 3, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"nf-treble-spaces", "nf-bass-spaces"},
		TargetExerciseIDs: []string{"nf-grand-staff-01", "nf-grand-staff-02"},
	},
	{
		ID: "nf-ledger-lines", Name: "Ledger Line Notes", Category: CategoryNoteFinding,
		Tier: 5, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"nf-grand-staff"},
		TargetExerciseIDs: []string{"nf-ledger-lines-01"},
	},
	{
		ID: "nf-octave-landmarks", Name: "Octave Landmark Notes", Category: CategoryNoteFinding,
		Tier: 6, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"nf-grand-staff"},
		TargetExerciseIDs: []string{"nf-octave-landmarks-01"},
	},

	// --- Intervals ---
	{
		ID: "iv-seconds", Name: "Melodic Seconds", Category: CategoryIntervals,
		Tier: 2, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"nf-c-position-rh"},
		TargetExerciseIDs: []string{"iv-seconds-01", "iv-seconds-02"},
	},
	{
		ID: "iv-thirds", Name: "Melodic Thirds", Category: CategoryIntervals,
		Tier: 2, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"iv-seconds"},
		TargetExerciseIDs: []string{"iv-thirds-01", "iv-thirds-02"},
	},
	{
		ID: "iv-fourths-fifths", Name: "Fourths and Fifths", Category: CategoryIntervals,
		Tier: 3, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"iv-thirds"},
		TargetExerciseIDs: []string{"iv-fourths-fifths-01"},
	},
	{
		ID: "iv-melodic-harmonic", Name: "Melodic vs. Harmonic Intervals", Category: CategoryIntervals,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"iv-thirds"},
		TargetExerciseIDs: []string{"iv-melodic-harmonic-01"},
	},
	{
		ID: "iv-sixths", Name: "Sixths", Category: CategoryIntervals,
		Tier: 6, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"iv-fourths-fifths"},
		TargetExerciseIDs: []string{"iv-sixths-01"},
	},
	{
		ID: "iv-sevenths-octaves", Name: "Sevenths and Octaves", Category: CategoryIntervals,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"iv-sixths"},
		TargetExerciseIDs: []string{"iv-sevenths-octaves-01"},
	},
	{
		ID: "iv-reading-leaps", Name: "Reading Large Leaps", Category: CategoryIntervals,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"iv-sevenths-octaves", "nf-ledger-lines"},
		TargetExerciseIDs: []string{"iv-reading-leaps-01"},
	},
	{
		ID: "iv-ear-training", Name: "Interval Ear Training", Category: CategoryIntervals,
		Tier: 10, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"iv-melodic-harmonic"},
		TargetExerciseIDs: []string{"iv-ear-training-01"},
	},

	// --- Rhythm ---
	{
		ID: "rh-quarter-notes", Name: "Quarter Note Pulse", Category: CategoryRhythm,
		Tier: 1, MasteryThreshold: 0.70, RequiredCompletions: 2,
		TargetExerciseIDs: []string{"rh-quarter-notes-01", "rh-quarter-notes-02"},
	},
	{
		ID: "rh-half-whole", Name: "Half and Whole Notes", Category: CategoryRhythm,
		Tier: 1, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"rh-quarter-notes"},
		TargetExerciseIDs: []string{"rh-half-whole-01"},
	},
	{
		ID: "rh-rests", Name: "Rests", Category: CategoryRhythm,
		Tier: 2, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"rh-half-whole"},
		TargetExerciseIDs: []string{"rh-rests-01"},
	},
	{
		ID: "rh-time-sig-44", Name: "4/4 Time", Category: CategoryRhythm,
		Tier: 2, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"rh-half-whole"},
		TargetExerciseIDs: []string{"rh-time-sig-44-01", "rh-time-sig-44-02"},
	},
	{
		ID: "rh-dotted-half-34", Name: "Dotted Halves and 3/4 Time", Category: CategoryRhythm,
		Tier: 3, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"rh-time-sig-44"},
		TargetExerciseIDs: []string{"rh-dotted-half-34-01"},
	},
	{
		ID: "rh-eighth-notes", Name: "Eighth Notes", Category: CategoryRhythm,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"rh-time-sig-44"},
		TargetExerciseIDs: []string{"rh-eighth-notes-01", "rh-eighth-notes-02"},
	},
	{
		ID: "rh-dotted-quarter", Name: "Dotted Quarter Notes", Category: CategoryRhythm,
		Tier: 6, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"rh-eighth-notes"},
		TargetExerciseIDs: []string{"rh-dotted-quarter-01"},
	},
	{
		ID: "rh-sixteenth-notes", Name: "Sixteenth Notes", Category: CategoryRhythm,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"rh-eighth-notes"},
		TargetExerciseIDs: []string{"rh-sixteenth-notes-01"},
	},
	{
		ID: "rh-syncopation", Name: "Syncopation", Category: CategoryRhythm,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"rh-dotted-quarter"},
		TargetExerciseIDs: []string{"rh-syncopation-01"},
	},
	{
		ID: "rh-triplets", Name: "Triplets", Category: CategoryRhythm,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"rh-eighth-notes"},
		TargetExerciseIDs: []string{"rh-triplets-01"},
	},
	{
		ID: "rh-time-sig-68", Name: "6/8 Time", Category: CategoryRhythm,
		Tier: 11, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"rh-dotted-quarter"},
		TargetExerciseIDs: []string{"rh-time-sig-68-01"},
	},
	{
		ID: "rh-mixed-meter", Name: "Mixed Meter", Category: CategoryRhythm,
		Tier: 14, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"rh-time-sig-68", "rh-syncopation"},
		TargetExerciseIDs: []string{"rh-mixed-meter-01"},
	},

	// --- Scales ---
	{
		ID: "sc-five-finger-c", Name: "C Five-Finger Pattern", Category: CategoryScales,
		Tier: 1, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"nf-c-position-rh", "nf-c-position-lh"},
		TargetExerciseIDs: []string{"sc-five-finger-c-01", "sc-five-finger-c-02"},
	},
	{
		ID: "sc-five-finger-g", Name: "G Five-Finger Pattern", Category: CategoryScales,
		Tier: 3, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"sc-five-finger-c"},
		TargetExerciseIDs: []string{"sc-five-finger-g-01"},
	},
	{
		ID: "sc-five-finger-f", Name: "F Five-Finger Pattern", Category: CategoryScales,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"sc-five-finger-c"},
		TargetExerciseIDs: []string{"sc-five-finger-f-01"},
	},
	{
		ID: "sc-minor-five-finger", Name: "Minor Five-Finger Patterns", Category: CategoryScales,
		Tier: 6, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"sc-five-finger-g"},
		TargetExerciseIDs: []string{"sc-minor-five-finger-01"},
	},
	{
		ID: "sc-thumb-under", Name: "Thumb-Under Technique", Category: CategoryScales,
		Tier: 6, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sc-five-finger-c"},
		TargetExerciseIDs: []string{"sc-thumb-under-01", "sc-thumb-under-02"},
	},
	{
		ID: "sc-c-major-octave", Name: "C Major Scale, One Octave", Category: CategoryScales,
		Tier: 7, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sc-thumb-under"},
		TargetExerciseIDs: []string{"sc-c-major-octave-01"},
	},
	{
		ID: "sc-g-major-octave", Name: "G Major Scale, One Octave", Category: CategoryScales,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sc-c-major-octave", "ks-g-major"},
		TargetExerciseIDs: []string{"sc-g-major-octave-01"},
	},
	{
		ID: "sc-f-major-octave", Name: "F Major Scale, One Octave", Category: CategoryScales,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sc-c-major-octave", "ks-f-major"},
		TargetExerciseIDs: []string{"sc-f-major-octave-01"},
	},
	{
		ID: "sc-a-minor", Name: "A Natural Minor Scale", Category: CategoryScales,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sc-c-major-octave", "sc-minor-five-finger"},
		TargetExerciseIDs: []string{"sc-a-minor-01"},
	},
	{
		ID: "sc-two-octave", Name: "Two-Octave Scales", Category: CategoryScales,
		Tier: 12, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"sc-g-major-octave"},
		TargetExerciseIDs: []string{"sc-two-octave-01"},
	},

	// --- Black keys ---
	{
		ID: "bk-groups", Name: "Black Key Geography", Category: CategoryBlackKeys,
		Tier: 2, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"nf-middle-c"},
		TargetExerciseIDs: []string{"bk-groups-01"},
	},
	{
		ID: "bk-sharps", Name: "Sharps", Category: CategoryBlackKeys,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"bk-groups", "nf-grand-staff"},
		TargetExerciseIDs: []string{"bk-sharps-01"},
	},
	{
		ID: "bk-flats", Name: "Flats", Category: CategoryBlackKeys,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"bk-groups", "nf-grand-staff"},
		TargetExerciseIDs: []string{"bk-flats-01"},
	},
	{
		ID: "bk-accidentals-reading", Name: "Reading Accidentals", Category: CategoryBlackKeys,
		Tier: 5, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"bk-sharps", "bk-flats"},
		TargetExerciseIDs: []string{"bk-accidentals-reading-01"},
	},
	{
		ID: "bk-chromatic-fragments", Name: "Chromatic Fragments", Category: CategoryBlackKeys,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"bk-accidentals-reading"},
		TargetExerciseIDs: []string{"bk-chromatic-fragments-01"},
	},
	{
		ID: "bk-chromatic-scale", Name: "Chromatic Scale", Category: CategoryBlackKeys,
		Tier: 11, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"bk-chromatic-fragments", "sc-thumb-under"},
		TargetExerciseIDs: []string{"bk-chromatic-scale-01"},
	},

	// --- Key signatures ---
	{
		ID: "ks-concept", Name: "What a Key Signature Means", Category: CategoryKeySignatures,
		Tier: 5, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"bk-sharps", "bk-flats"},
		TargetExerciseIDs: []string{"ks-concept-01"},
	},
	{
		ID: "ks-g-major", Name: "G Major Key Signature", Category: CategoryKeySignatures,
		Tier: 6, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"ks-concept"},
		TargetExerciseIDs: []string{"ks-g-major-01"},
	},
	{
		ID: "ks-f-major", Name: "F Major Key Signature", Category: CategoryKeySignatures,
		Tier: 7, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"ks-concept"},
		TargetExerciseIDs: []string{"ks-f-major-01"},
	},
	{
		ID: "ks-d-major", Name: "D Major Key Signature", Category: CategoryKeySignatures,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"ks-g-major"},
		TargetExerciseIDs: []string{"ks-d-major-01"},
	},
	{
		ID: "ks-bflat-major", Name: "B-flat Major Key Signature", Category: CategoryKeySignatures,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"ks-f-major"},
		TargetExerciseIDs: []string{"ks-bflat-major-01"},
	},
	{
		ID: "ks-relative-minors", Name: "Relative Minor Keys", Category: CategoryKeySignatures,
		Tier: 11, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ks-g-major", "ks-f-major"},
		TargetExerciseIDs: []string{"ks-relative-minors-01"},
	},

	// --- Chords ---
	{
		ID: "ch-c-triad", Name: "C Major Triad", Category: CategoryChords,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"sc-five-finger-c", "iv-thirds"},
		TargetExerciseIDs: []string{"ch-c-triad-01", "ch-c-triad-02"},
	},
	{
		ID: "ch-broken-triads", Name: "Broken Triads", Category: CategoryChords,
		Tier: 5, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"ch-c-triad"},
		TargetExerciseIDs: []string{"ch-broken-triads-01"},
	},
	{
		ID: "ch-g7", Name: "The G7 Chord", Category: CategoryChords,
		Tier: 6, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"ch-c-triad"},
		TargetExerciseIDs: []string{"ch-g7-01"},
	},
	{
		ID: "ch-i-v-progression", Name: "I-V7 Progressions", Category: CategoryChords,
		Tier: 7, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ch-g7"},
		TargetExerciseIDs: []string{"ch-i-v-progression-01"},
	},
	{
		ID: "ch-f-triad-iv", Name: "The F Triad and IV Chords", Category: CategoryChords,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ch-i-v-progression", "sc-five-finger-f"},
		TargetExerciseIDs: []string{"ch-f-triad-iv-01"},
	},
	{
		ID: "ch-primary-cadences", Name: "Primary Chord Cadences", Category: CategoryChords,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ch-f-triad-iv"},
		TargetExerciseIDs: []string{"ch-primary-cadences-01"},
	},
	{
		ID: "ch-first-inversion", Name: "First Inversion Triads", Category: CategoryChords,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ch-broken-triads"},
		TargetExerciseIDs: []string{"ch-first-inversion-01"},
	},
	{
		ID: "ch-second-inversion", Name: "Second Inversion Triads", Category: CategoryChords,
		Tier: 11, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ch-first-inversion"},
		TargetExerciseIDs: []string{"ch-second-inversion-01"},
	},
	{
		ID: "ch-minor-triads", Name: "Minor Triads", Category: CategoryChords,
		Tier: 11, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ch-c-triad", "sc-minor-five-finger"},
		TargetExerciseIDs: []string{"ch-minor-triads-01"},
	},
	{
		ID: "ch-triads-other-keys", Name: "Triads in G and D", Category: CategoryChords,
		Tier: 12, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"ch-primary-cadences", "ks-d-major"},
		TargetExerciseIDs: []string{"ch-triads-other-keys-01"},
	},

	// --- Hand independence ---
	{
		ID: "hi-hands-together-unison", Name: "Hands Together in Unison", Category: CategoryHandIndependence,
		Tier: 3, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"sc-five-finger-c", "rh-time-sig-44"},
		TargetExerciseIDs: []string{"hi-hands-together-unison-01"},
	},
	{
		ID: "hi-contrary-motion", Name: "Contrary Motion", Category: CategoryHandIndependence,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"hi-hands-together-unison"},
		TargetExerciseIDs: []string{"hi-contrary-motion-01"},
	},
	{
		ID: "hi-melody-with-bass", Name: "Melody over Held Bass", Category: CategoryHandIndependence,
		Tier: 5, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"hi-hands-together-unison"},
		TargetExerciseIDs: []string{"hi-melody-with-bass-01"},
	},
	{
		ID: "hi-melody-with-chords", Name: "Melody over Block Chords", Category: CategoryHandIndependence,
		Tier: 7, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"hi-melody-with-bass", "ch-c-triad"},
		TargetExerciseIDs: []string{"hi-melody-with-chords-01"},
	},
	{
		ID: "hi-different-rhythms", Name: "Different Rhythms per Hand", Category: CategoryHandIndependence,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"hi-melody-with-chords", "rh-eighth-notes"},
		TargetExerciseIDs: []string{"hi-different-rhythms-01"},
	},
	{
		ID: "hi-alberti-bass", Name: "Alberti Bass", Category: CategoryHandIndependence,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"hi-melody-with-chords", "ch-broken-triads"},
		TargetExerciseIDs: []string{"hi-alberti-bass-01"},
	},
	{
		ID: "hi-voice-balance", Name: "Balancing Melody and Accompaniment", Category: CategoryHandIndependence,
		Tier: 12, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"hi-different-rhythms", "xp-dynamics"},
		TargetExerciseIDs: []string{"hi-voice-balance-01"},
	},
	{
		ID: "hi-polyphony-intro", Name: "Two-Voice Polyphony", Category: CategoryHandIndependence,
		Tier: 14, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"hi-voice-balance"},
		TargetExerciseIDs: []string{"hi-polyphony-intro-01"},
	},

	// --- Arpeggios ---
	{
		ID: "ar-broken-chord-patterns", Name: "Broken Chord Patterns", Category: CategoryArpeggios,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"ch-broken-triads"},
		TargetExerciseIDs: []string{"ar-broken-chord-patterns-01"},
	},
	{
		ID: "ar-crossover-one-octave", Name: "One-Octave Arpeggios", Category: CategoryArpeggios,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"ar-broken-chord-patterns", "sc-thumb-under"},
		TargetExerciseIDs: []string{"ar-crossover-one-octave-01"},
	},
	{
		ID: "ar-two-octave", Name: "Two-Octave Arpeggios", Category: CategoryArpeggios,
		Tier: 12, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"ar-crossover-one-octave"},
		TargetExerciseIDs: []string{"ar-two-octave-01"},
	},
	{
		ID: "ar-minor", Name: "Minor Arpeggios", Category: CategoryArpeggios,
		Tier: 13, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"ar-crossover-one-octave", "ch-minor-triads"},
		TargetExerciseIDs: []string{"ar-minor-01"},
	},
	{
		ID: "ar-lh-accompaniment", Name: "Arpeggiated Accompaniment", Category: CategoryArpeggios,
		Tier: 12, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"ar-broken-chord-patterns", "hi-alberti-bass"},
		TargetExerciseIDs: []string{"ar-lh-accompaniment-01"},
	},
	{
		ID: "ar-extended", Name: "Extended Arpeggio Figures", Category: CategoryArpeggios,
		Tier: 15, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"ar-two-octave"},
		TargetExerciseIDs: []string{"ar-extended-01"},
	},

	// --- Expression ---
	{
		ID: "xp-dynamics", Name: "Piano and Forte", Category: CategoryExpression,
		Tier: 5, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"hi-hands-together-unison"},
		TargetExerciseIDs: []string{"xp-dynamics-01"},
	},
	{
		ID: "xp-legato-staccato", Name: "Legato and Staccato", Category: CategoryExpression,
		Tier: 6, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"xp-dynamics"},
		TargetExerciseIDs: []string{"xp-legato-staccato-01"},
	},
	{
		ID: "xp-crescendo", Name: "Crescendo and Diminuendo", Category: CategoryExpression,
		Tier: 7, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"xp-dynamics"},
		TargetExerciseIDs: []string{"xp-crescendo-01"},
	},
	{
		ID: "xp-phrasing", Name: "Phrase Shaping", Category: CategoryExpression,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"xp-legato-staccato"},
		TargetExerciseIDs: []string{"xp-phrasing-01"},
	},
	{
		ID: "xp-tempo-changes", Name: "Ritardando and A Tempo", Category: CategoryExpression,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"xp-phrasing"},
		TargetExerciseIDs: []string{"xp-tempo-changes-01"},
	},
	{
		ID: "xp-pedal-intro", Name: "Introduction to the Damper Pedal", Category: CategoryExpression,
		Tier: 11, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"xp-legato-staccato"},
		TargetExerciseIDs: []string{"xp-pedal-intro-01"},
	},
	{
		ID: "xp-pedal-legato", Name: "Legato Pedaling", Category: CategoryExpression,
		Tier: 13, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"xp-pedal-intro"},
		TargetExerciseIDs: []string{"xp-pedal-legato-01"},
	},
	{
		ID: "xp-tone-voicing", Name: "Tone and Voicing", Category: CategoryExpression,
		Tier: 14, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"xp-phrasing", "hi-voice-balance"},
		TargetExerciseIDs: []string{"xp-tone-voicing-01"},
	},

	// --- Sight reading ---
	{
		ID: "sr-prepared-five-finger", Name: "Prepared Reading in Five-Finger Position", Category: CategorySightReading,
		Tier: 4, MasteryThreshold: 0.70, RequiredCompletions: 2,
		Prerequisites:     []string{"nf-grand-staff", "rh-time-sig-44"},
		TargetExerciseIDs: []string{"sr-prepared-five-finger-01"},
	},
	{
		ID: "sr-intervallic-reading", Name: "Intervallic Reading", Category: CategorySightReading,
		Tier: 6, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"sr-prepared-five-finger", "iv-melodic-harmonic"},
		TargetExerciseIDs: []string{"sr-intervallic-reading-01"},
	},
	{
		ID: "sr-rhythm-first", Name: "Rhythm-First Reading", Category: CategorySightReading,
		Tier: 7, MasteryThreshold: 0.75, RequiredCompletions: 3,
		Prerequisites:     []string{"sr-prepared-five-finger"},
		TargetExerciseIDs: []string{"sr-rhythm-first-01"},
	},
	{
		ID: "sr-hands-together", Name: "Sight Reading Hands Together", Category: CategorySightReading,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sr-intervallic-reading", "hi-melody-with-bass"},
		TargetExerciseIDs: []string{"sr-hands-together-01"},
	},
	{
		ID: "sr-accidentals", Name: "Sight Reading with Accidentals", Category: CategorySightReading,
		Tier: 9, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sr-hands-together", "bk-accidentals-reading"},
		TargetExerciseIDs: []string{"sr-accidentals-01"},
	},
	{
		ID: "sr-key-signatures", Name: "Sight Reading in Keys", Category: CategorySightReading,
		Tier: 11, MasteryThreshold: 0.80, RequiredCompletions: 3,
		Prerequisites:     []string{"sr-accidentals", "ks-g-major"},
		TargetExerciseIDs: []string{"sr-key-signatures-01"},
	},
	{
		ID: "sr-lead-sheets", Name: "Reading Lead Sheets", Category: CategorySightReading,
		Tier: 13, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"sr-key-signatures", "ch-primary-cadences"},
		TargetExerciseIDs: []string{"sr-lead-sheets-01"},
	},
	{
		ID: "sr-level-two", Name: "Level Two Sight Reading", Category: CategorySightReading,
		Tier: 14, MasteryThreshold: 0.85, RequiredCompletions: 3,
		Prerequisites:     []string{"sr-lead-sheets"},
		TargetExerciseIDs: []string{"sr-level-two-01"},
	},

	// --- Songs ---
	{
		ID: "sg-first-melodies", Name: "First Melodies", Category: CategorySongs,
		Tier: 2, MasteryThreshold: 0.70, RequiredCompletions: 1,
		Prerequisites:     []string{"sc-five-finger-c", "rh-half-whole"},
		TargetExerciseIDs: []string{"sg-first-melodies-01", "sg-first-melodies-02"},
	},
	{
		ID: "sg-folk-tunes", Name: "Folk Tunes", Category: CategorySongs,
		Tier: 4, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"sg-first-melodies", "hi-hands-together-unison"},
		TargetExerciseIDs: []string{"sg-folk-tunes-01"},
	},
	{
		ID: "sg-melody-bass", Name: "Songs with Melody and Bass", Category: CategorySongs,
		Tier: 6, MasteryThreshold: 0.75, RequiredCompletions: 2,
		Prerequisites:     []string{"sg-folk-tunes", "hi-melody-with-bass"},
		TargetExerciseIDs: []string{"sg-melody-bass-01"},
	},
	{
		ID: "sg-accompanied-song", Name: "Accompanied Songs", Category: CategorySongs,
		Tier: 8, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"sg-melody-bass", "ch-i-v-progression"},
		TargetExerciseIDs: []string{"sg-accompanied-song-01"},
	},
	{
		ID: "sg-classical-miniature", Name: "Classical Miniatures", Category: CategorySongs,
		Tier: 10, MasteryThreshold: 0.80, RequiredCompletions: 2,
		Prerequisites:     []string{"sg-accompanied-song", "xp-phrasing"},
		TargetExerciseIDs: []string{"sg-classical-miniature-01"},
	},
	{
		ID: "sg-romantic-piece", Name: "Romantic Pieces", Category: CategorySongs,
		Tier: 12, MasteryThreshold: 0.85, RequiredCompletions: 2,
		Prerequisites:     []string{"sg-classical-miniature", "xp-pedal-intro"},
		TargetExerciseIDs: []string{"sg-romantic-piece-01"},
	},
	{
		ID: "sg-recital-piece", Name: "Recital Pieces", Category: CategorySongs,
		Tier: 14, MasteryThreshold: 0.85, RequiredCompletions: 2,
		Prerequisites:     []string{"sg-romantic-piece", "xp-pedal-legato"},
		TargetExerciseIDs: []string{"sg-recital-piece-01"},
	},
	{
		ID: "sg-repertoire-capstone", Name: "Repertoire Capstone", Category: CategorySongs,
		Tier: 15, MasteryThreshold: 0.85, RequiredCompletions: 2,
		Prerequisites:     []string{"sg-recital-piece", "sr-lead-sheets"},
		TargetExerciseIDs: []string{"sg-repertoire-capstone-01"},
	},
}
