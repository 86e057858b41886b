package structure

// CharClass is the dominant character class of a code segment position.
type CharClass string

const (
	ClassNumeric      CharClass = "numeric"
	ClassAlpha        CharClass = "alpha"
	ClassAlphanumeric CharClass = "alphanumeric"
	ClassMixed        CharClass = "mixed"
)

// SegmentProfile describes one hierarchical position across the sampled
// codes. Length is the statistical mode, not the maximum, so a handful of
// malformed rows (header text, OCR noise) cannot distort the scheme.
type SegmentProfile struct {
	Length  int
	Class   CharClass
	Samples []string
}

// ModifierPolicy names the heuristic that treats one-character segments in a
// deep-plan scheme as non-hierarchical markers (currency, status). It is a
// heuristic, not a guaranteed rule; callers with unusual numbering schemes
// can disable it.
type ModifierPolicy struct {
	SkipSingleChar bool
}

// DefaultModifierPolicy skips single-character segments.
func DefaultModifierPolicy() ModifierPolicy {
	return ModifierPolicy{SkipSingleChar: true}
}

// Config holds everything the hierarchy resolver needs to compute levels and
// parents for a numbering scheme. It is always passed explicitly; nothing is
// cached between calls.
type Config struct {
	Separator    string
	HasSeparator bool

	// LevelLengths are cumulative character offsets marking level
	// boundaries for unseparated schemes ([1,3,5,8] means segments of
	// width 1,2,2,3).
	LevelLengths []int
	LevelCount   int

	// SmartPUCT marks long fixed-width numeric codes where depth is the
	// count of leading non-zero digits before the first zero.
	SmartPUCT bool
	// SmartFlat marks short numeric codes where depth is ceil(len/3).
	SmartFlat bool
	// DeepFirstSegment marks separated schemes whose first segment
	// encodes several levels via trailing zeros.
	DeepFirstSegment bool

	Policy ModifierPolicy
}

// DefaultConfig is the profile used when no codes are available: dot
// separator, four levels of widths 1/2/2/3.
func DefaultConfig() Config {
	return Config{
		Separator:    ".",
		HasSeparator: true,
		LevelLengths: []int{1, 3, 5, 8},
		LevelCount:   4,
		Policy:       DefaultModifierPolicy(),
	}
}

// Profile is the full result of structure inference: the resolver config
// plus per-segment statistics and display artifacts.
type Profile struct {
	Config   Config
	Segments []SegmentProfile
	Mask     string
	Pattern  string
}

// Level reports the hierarchical depth of code under this profile.
func (p Profile) Level(code string) int {
	return Level(code, p.Config)
}

// Parent reports the parent code of code under this profile, or false for
// a root.
func (p Profile) Parent(code string) (string, bool) {
	return Parent(code, p.Config)
}

// GuessKind maps the code's first significant digit to the conventional
// account category name, or "" when the convention does not apply.
func (p Profile) GuessKind(code string) string {
	return GuessKind(code)
}

var prefixKinds = map[byte]string{
	'1': "activo",
	'2': "pasivo",
	'3': "patrimonio",
	'4': "ingreso",
	'5': "costo",
	'6': "gasto",
}

// GuessKind returns the category name conventionally associated with the
// code's first digit (1=activo .. 6=gasto), or "".
func GuessKind(code string) string {
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c >= '0' && c <= '9' {
			return prefixKinds[c]
		}
		if c != ' ' {
			return ""
		}
	}
	return ""
}
