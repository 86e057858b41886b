package structure

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const (
	// sampleCap bounds the number of codes inspected. Three zones (head,
	// stratified middle, tail) keep top-level and deep-leaf codes
	// represented without scanning everything.
	sampleCap = 600

	// separatorThreshold is the fraction of sampled codes that must
	// contain a candidate character before it counts as a separator.
	separatorThreshold = 0.30

	// classConsensus is the fraction of parts at a position that must
	// share a character class before the position adopts it.
	classConsensus = 0.80

	// deepSegmentLength is the minimum first-segment width that marks a
	// deep plan (one segment encoding several levels via trailing zeros).
	deepSegmentLength = 3

	// smartPUCTLength is the minimum width of an unseparated numeric
	// code before the leading-non-zero-digit depth rule applies.
	smartPUCTLength = 6

	// maxSegmentSamples caps the raw values retained per position.
	maxSegmentSamples = 10
)

var separatorCandidates = []string{".", "-", " ", "/"}

// Infer builds a structure Profile from raw account codes using the default
// modifier policy. Empty input yields DefaultProfile.
func Infer(codes []string) Profile {
	return InferWithPolicy(codes, DefaultModifierPolicy())
}

// InferWithPolicy is Infer with an explicit modifier policy.
func InferWithPolicy(codes []string, policy ModifierPolicy) Profile {
	cleaned := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if c != "" {
			cleaned = append(cleaned, c)
		}
	}
	if len(cleaned) == 0 {
		return DefaultProfile()
	}

	sample := sampleCodes(cleaned)
	sep, hasSep := detectSeparator(sample)

	var segments []SegmentProfile
	if hasSep {
		segments = profileSegments(splitAll(sample, sep))
	} else {
		segments = profileSegments(sliceAll(sample))
	}

	cfg := Config{
		Separator:    sep,
		HasSeparator: hasSep,
		Policy:       policy,
	}

	if hasSep {
		cfg.DeepFirstSegment = len(segments) > 0 && segments[0].Length >= deepSegmentLength
	} else {
		full := representativeLength(sample)
		numeric := allNumeric(sample)
		switch {
		case numeric && full >= smartPUCTLength:
			cfg.SmartPUCT = true
		case numeric:
			cfg.SmartFlat = true
		}
	}

	cfg.LevelLengths = cumulativeOffsets(segments)
	cfg.LevelCount = len(segments)

	return Profile{
		Config:   cfg,
		Segments: segments,
		Mask:     buildMask(segments, cfg),
		Pattern:  buildPattern(segments, cfg),
	}
}

// DefaultProfile is returned for empty input: dot separator, four levels of
// widths 1/2/2/3.
func DefaultProfile() Profile {
	cfg := DefaultConfig()
	segments := []SegmentProfile{
		{Length: 1, Class: ClassNumeric},
		{Length: 2, Class: ClassNumeric},
		{Length: 2, Class: ClassNumeric},
		{Length: 3, Class: ClassNumeric},
	}
	return Profile{
		Config:   cfg,
		Segments: segments,
		Mask:     buildMask(segments, cfg),
		Pattern:  buildPattern(segments, cfg),
	}
}

// DeclaredProfile builds a Profile for an explicitly declared scheme,
// synthesizing numeric segments and the display artifacts from the declared
// level widths. Without level lengths there is nothing to render and the
// artifacts stay empty.
func DeclaredProfile(cfg Config) Profile {
	if len(cfg.LevelLengths) == 0 {
		return Profile{Config: cfg}
	}
	segments := make([]SegmentProfile, 0, len(cfg.LevelLengths))
	prev := 0
	for _, offset := range cfg.LevelLengths {
		segments = append(segments, SegmentProfile{Length: offset - prev, Class: ClassNumeric})
		prev = offset
	}
	return Profile{
		Config:   cfg,
		Segments: segments,
		Mask:     buildMask(segments, cfg),
		Pattern:  buildPattern(segments, cfg),
	}
}

// sampleCodes returns up to sampleCap codes in three zones: head, a
// stratified slice of the middle, and tail.
func sampleCodes(codes []string) []string {
	if len(codes) <= sampleCap {
		return codes
	}
	zone := sampleCap / 3
	out := make([]string, 0, sampleCap)
	out = append(out, codes[:zone]...)

	mid := codes[zone : len(codes)-zone]
	step := len(mid) / zone
	if step < 1 {
		step = 1
	}
	for i := 0; i < len(mid) && len(out) < 2*zone; i += step {
		out = append(out, mid[i])
	}

	out = append(out, codes[len(codes)-zone:]...)
	return out
}

// detectSeparator picks the candidate character present in more than 30% of
// the sample with the highest total occurrence count.
func detectSeparator(sample []string) (string, bool) {
	minPresence := int(float64(len(sample)) * separatorThreshold)

	best := ""
	bestCount := 0
	for _, cand := range separatorCandidates {
		present := 0
		occurrences := 0
		for _, code := range sample {
			n := strings.Count(code, cand)
			if n > 0 {
				present++
				occurrences += n
			}
		}
		if present > minPresence && occurrences > bestCount {
			best = cand
			bestCount = occurrences
		}
	}
	return best, best != ""
}

func splitAll(sample []string, sep string) [][]string {
	parts := make([][]string, len(sample))
	for i, code := range sample {
		parts[i] = strings.Split(code, sep)
	}
	return parts
}

// sliceAll segments unseparated codes at the fallback offsets 1/2/4 and
// every 3 characters after that.
func sliceAll(sample []string) [][]string {
	longest := 0
	for _, code := range sample {
		if len(code) > longest {
			longest = len(code)
		}
	}
	bounds := fallbackBoundaries(longest)

	parts := make([][]string, len(sample))
	for i, code := range sample {
		prev := 0
		for _, b := range bounds {
			if prev >= len(code) {
				break
			}
			end := b
			if end > len(code) {
				end = len(code)
			}
			parts[i] = append(parts[i], code[prev:end])
			prev = end
		}
	}
	return parts
}

// profileSegments computes the per-position mode length, consensus character
// class, and a capped sample of raw values.
func profileSegments(parts [][]string) []SegmentProfile {
	positions := 0
	for _, p := range parts {
		if len(p) > positions {
			positions = len(p)
		}
	}

	segments := make([]SegmentProfile, 0, positions)
	for pos := 0; pos < positions; pos++ {
		lengths := make(map[int]int)
		classes := make(map[CharClass]int)
		var samples []string
		total := 0
		for _, p := range parts {
			if pos >= len(p) || p[pos] == "" {
				continue
			}
			part := p[pos]
			total++
			lengths[len(part)]++
			classes[classifyChars(part)]++
			if len(samples) < maxSegmentSamples {
				samples = append(samples, part)
			}
		}
		if total == 0 {
			continue
		}
		segments = append(segments, SegmentProfile{
			Length:  modeLength(lengths),
			Class:   consensusClass(classes, total),
			Samples: samples,
		})
	}
	return segments
}

// modeLength returns the most frequent length; ties go to the shorter one
// for stable output.
func modeLength(lengths map[int]int) int {
	mode, best := 0, 0
	for l, n := range lengths {
		if n > best || (n == best && l < mode) {
			mode, best = l, n
		}
	}
	return mode
}

func consensusClass(classes map[CharClass]int, total int) CharClass {
	for class, n := range classes {
		if float64(n) >= float64(total)*classConsensus {
			return class
		}
	}
	return ClassMixed
}

func classifyChars(s string) CharClass {
	digits, letters, other := 0, 0, 0
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		default:
			other++
		}
	}
	switch {
	case other > 0:
		return ClassMixed
	case digits > 0 && letters > 0:
		return ClassAlphanumeric
	case letters > 0:
		return ClassAlpha
	default:
		return ClassNumeric
	}
}

func representativeLength(sample []string) int {
	lengths := make(map[int]int)
	for _, code := range sample {
		lengths[len(code)]++
	}
	return modeLength(lengths)
}

func allNumeric(sample []string) bool {
	for _, code := range sample {
		for _, r := range code {
			if !unicode.IsDigit(r) {
				return false
			}
		}
	}
	return true
}

func cumulativeOffsets(segments []SegmentProfile) []int {
	offsets := make([]int, 0, len(segments))
	sum := 0
	for _, seg := range segments {
		sum += seg.Length
		offsets = append(offsets, sum)
	}
	return offsets
}

// buildMask renders one display character per code position: '#' numeric,
// 'A' alpha, 'X' anything else.
func buildMask(segments []SegmentProfile, cfg Config) string {
	parts := make([]string, len(segments))
	for i, seg := range segments {
		parts[i] = strings.Repeat(maskChar(seg.Class), seg.Length)
	}
	if cfg.HasSeparator {
		return strings.Join(parts, cfg.Separator)
	}
	return strings.Join(parts, "")
}

func maskChar(class CharClass) string {
	switch class {
	case ClassNumeric:
		return "#"
	case ClassAlpha:
		return "A"
	default:
		return "X"
	}
}

// buildPattern synthesizes a validating regexp: the first segment is
// mandatory, each further segment nests optionally.
func buildPattern(segments []SegmentProfile, cfg Config) string {
	if len(segments) == 0 {
		return "^$"
	}
	var b strings.Builder
	b.WriteString("^")
	b.WriteString(segmentPattern(segments[0]))
	var closers int
	for _, seg := range segments[1:] {
		b.WriteString("(?:")
		if cfg.HasSeparator {
			b.WriteString(regexp.QuoteMeta(cfg.Separator))
		}
		b.WriteString(segmentPattern(seg))
		closers++
	}
	for ; closers > 0; closers-- {
		b.WriteString(")?")
	}
	b.WriteString("$")
	return b.String()
}

func segmentPattern(seg SegmentProfile) string {
	var class string
	switch seg.Class {
	case ClassNumeric:
		class = `\d`
	case ClassAlpha:
		class = `[A-Za-z]`
	default:
		class = `[A-Za-z0-9]`
	}
	if seg.Length <= 1 {
		return class
	}
	return class + "{" + strconv.Itoa(seg.Length) + "}"
}
