package structure

import "strings"

// Level computes the hierarchical depth of code under cfg. Malformed or
// empty codes resolve to level 1; the function never fails.
func Level(code string, cfg Config) int {
	code = strings.TrimSpace(code)
	if code == "" {
		return 1
	}

	switch {
	case cfg.SmartPUCT:
		return leadingNonZero(code)
	case cfg.SmartFlat:
		return (len(code) + 2) / 3
	case cfg.HasSeparator:
		return separatedLevel(code, cfg)
	}
	return boundedLevel(code, boundaries(code, cfg))
}

// Parent computes the parent code of code under cfg. The second return is
// false when code is a root (level 1) or no parent can be derived.
func Parent(code string, cfg Config) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" || Level(code, cfg) <= 1 {
		return "", false
	}

	switch {
	case cfg.SmartPUCT:
		depth := leadingNonZero(code)
		return padZeros(code[:depth-1], len(code)), true
	case cfg.SmartFlat:
		blocks := (len(code) + 2) / 3
		return code[:3*(blocks-1)], true
	case cfg.HasSeparator:
		return separatedParent(code, cfg)
	}
	return boundedParent(code, boundaries(code, cfg))
}

// boundaries returns the declared level offsets, falling back to the fixed
// 1/2/4/+3 rule when the config declares none.
func boundaries(code string, cfg Config) []int {
	if len(cfg.LevelLengths) > 0 {
		return cfg.LevelLengths
	}
	return fallbackBoundaries(len(code))
}

// fallbackBoundaries are the cumulative offsets 1, 2, 4, 7, 10, ... used
// when nothing better is known about an unseparated scheme.
func fallbackBoundaries(length int) []int {
	bounds := []int{1, 2, 4}
	for last := 4; last < length; last += 3 {
		bounds = append(bounds, last+3)
	}
	return bounds
}

// leadingNonZero counts digits before the first zero, floor 1. "110000000"
// yields 2, "100000000" yields 1.
func leadingNonZero(code string) int {
	depth := 0
	for i := 0; i < len(code); i++ {
		if code[i] == '0' {
			break
		}
		depth++
	}
	if depth < 1 {
		return 1
	}
	return depth
}

// internalDepth is the number of hierarchy levels a deep-plan segment
// encodes: its length minus trailing zeros, floor 1. "127" is 3, "120" is
// 2, "100" is 1.
func internalDepth(segment string) int {
	depth := len(segment)
	for depth > 0 && segment[depth-1] == '0' {
		depth--
	}
	if depth < 1 {
		return 1
	}
	return depth
}

// isEmptySegment reports segments carrying no hierarchy information: empty
// strings or runs of zeros, dots, dashes, and spaces.
func isEmptySegment(segment string) bool {
	for i := 0; i < len(segment); i++ {
		switch segment[i] {
		case '0', '.', '-', ' ':
		default:
			return false
		}
	}
	return true
}

// isModifier reports whether a non-first segment is a non-hierarchical
// marker under the configured policy. Only applies to deep-plan schemes.
func isModifier(segment string, cfg Config) bool {
	return cfg.DeepFirstSegment && cfg.Policy.SkipSingleChar && len(segment) == 1
}

func separatedLevel(code string, cfg Config) int {
	parts := strings.Split(code, cfg.Separator)
	level := internalDepth(parts[0])
	for _, part := range parts[1:] {
		if isEmptySegment(part) || isModifier(part, cfg) {
			continue
		}
		level++
	}
	return level
}

func separatedParent(code string, cfg Config) (string, bool) {
	parts := strings.Split(code, cfg.Separator)

	// Find the last active segment after the first.
	last := -1
	for i := len(parts) - 1; i >= 1; i-- {
		if !isEmptySegment(parts[i]) && !isModifier(parts[i], cfg) {
			last = i
			break
		}
	}
	if last >= 1 {
		return strings.Join(parts[:last], cfg.Separator), true
	}

	// Only the first segment is active: step down inside it.
	depth := internalDepth(parts[0])
	if depth <= 1 {
		return "", false
	}
	return padZeros(parts[0][:depth-1], len(parts[0])), true
}

// boundedLevel resolves an unseparated code against cumulative level
// offsets. Full-length codes are leveled by the first boundary whose suffix
// is all zeros; shorter codes combine the leading block's internal depth
// with one level per boundary the length passes.
func boundedLevel(code string, bounds []int) int {
	if len(bounds) == 0 {
		return 1
	}
	full := bounds[len(bounds)-1]
	if len(code) == full {
		for i, b := range bounds {
			if isEmptySegment(code[b:]) {
				return i + 1
			}
		}
		return len(bounds)
	}

	head := code
	if len(head) > bounds[0] {
		head = head[:bounds[0]]
	}
	level := internalDepth(head)
	for _, b := range bounds[:len(bounds)-1] {
		if len(code) > b {
			level++
		}
	}
	return level
}

func boundedParent(code string, bounds []int) (string, bool) {
	if len(bounds) == 0 {
		return "", false
	}

	// Codes inside the leading block step down by significant digits.
	if len(code) <= bounds[0] {
		depth := internalDepth(code)
		if depth <= 1 {
			return "", false
		}
		return padZeros(code[:depth-1], len(code)), true
	}

	level := boundedLevel(code, bounds)
	if level <= 1 {
		return "", false
	}
	cut := bounds[level-2]
	if cut > len(code) {
		cut = len(code)
	}
	parent := code[:cut]
	if len(code) == bounds[len(bounds)-1] {
		parent = padZeros(parent, len(code))
	}
	return parent, true
}

func padZeros(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat("0", width-len(s))
}
