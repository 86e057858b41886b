package structure

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfer_DottedDeepPlan(t *testing.T) {
	codes := []string{
		"100", "110", "111",
		"120", "127", "127.01", "127.02",
		"200", "210", "210.01",
		"300", "310", "310.01",
	}
	prof := Infer(codes)

	assert.True(t, prof.Config.HasSeparator)
	assert.Equal(t, ".", prof.Config.Separator)
	assert.True(t, prof.Config.DeepFirstSegment, "first segment of width 3 marks a deep plan")
	assert.False(t, prof.Config.SmartPUCT)
	assert.False(t, prof.Config.SmartFlat)

	require.Len(t, prof.Segments, 2)
	assert.Equal(t, 3, prof.Segments[0].Length)
	assert.Equal(t, ClassNumeric, prof.Segments[0].Class)
	assert.Equal(t, 2, prof.Segments[1].Length)

	assert.Equal(t, "###.##", prof.Mask)
}

func TestDeclaredProfile(t *testing.T) {
	prof := DeclaredProfile(Config{LevelLengths: []int{1, 3, 5, 8}, LevelCount: 4})

	require.Len(t, prof.Segments, 4)
	assert.Equal(t, "########", prof.Mask)

	re := regexp.MustCompile(prof.Pattern)
	assert.True(t, re.MatchString("1"))
	assert.True(t, re.MatchString("102"))
	assert.True(t, re.MatchString("10203000"))
	assert.False(t, re.MatchString("10"))

	dotted := DeclaredProfile(Config{
		Separator:    ".",
		HasSeparator: true,
		LevelLengths: []int{1, 3, 5},
	})
	assert.Equal(t, "#.##.##", dotted.Mask)

	bare := DeclaredProfile(Config{Separator: ".", HasSeparator: true})
	assert.Empty(t, bare.Mask)
	assert.Empty(t, bare.Pattern)
}

func TestInfer_SeparatorNeedsPresence(t *testing.T) {
	// A stray dash in under 30% of codes must not become the separator.
	codes := []string{"100", "200", "300", "400", "500", "600", "700", "70-1"}
	prof := Infer(codes)

	assert.False(t, prof.Config.HasSeparator)
}

func TestInfer_ModeLengthResistsOutliers(t *testing.T) {
	// One malformed header-like code must not stretch the segment width.
	codes := []string{
		"1.01", "1.02", "1.03", "2.01", "2.02", "3.01",
		"CUENTA.DESCRIPCION",
	}
	prof := Infer(codes)

	require.NotEmpty(t, prof.Segments)
	assert.Equal(t, 1, prof.Segments[0].Length, "mode, not max")
	assert.Equal(t, ClassNumeric, prof.Segments[0].Class, "80% consensus holds")
}

func TestInfer_MixedClassWithoutConsensus(t *testing.T) {
	codes := []string{"A1.01", "B2.02", "11.03", "22.04", "3C.05", "44.06"}
	prof := Infer(codes)

	require.NotEmpty(t, prof.Segments)
	assert.Equal(t, ClassMixed, prof.Segments[0].Class)
}

func TestInfer_SmartPUCT(t *testing.T) {
	codes := []string{
		"100000000", "110000000", "111000000",
		"200000000", "210000000",
		"300000000",
	}
	prof := Infer(codes)

	assert.False(t, prof.Config.HasSeparator)
	assert.True(t, prof.Config.SmartPUCT)
	assert.False(t, prof.Config.SmartFlat)

	assert.Equal(t, 2, prof.Level("110000000"))
	assert.Equal(t, 1, prof.Level("100000000"))
}

func TestInfer_SmartFlat(t *testing.T) {
	codes := []string{"100", "101", "102", "200", "10110", "10120"}
	prof := Infer(codes)

	assert.False(t, prof.Config.HasSeparator)
	assert.True(t, prof.Config.SmartFlat)
	assert.False(t, prof.Config.SmartPUCT)
}

func TestInfer_EmptyInput(t *testing.T) {
	for _, codes := range [][]string{nil, {}, {"", "  "}} {
		prof := Infer(codes)

		assert.Equal(t, ".", prof.Config.Separator)
		assert.Equal(t, 4, prof.Config.LevelCount)
		assert.Equal(t, []int{1, 3, 5, 8}, prof.Config.LevelLengths)
	}
}

func TestInfer_Idempotent(t *testing.T) {
	codes := []string{"100", "110", "120", "127.01", "127.02", "200", "210.01"}

	first := Infer(codes)
	second := Infer(codes)

	assert.Equal(t, first.Config, second.Config)
	assert.Equal(t, first.Mask, second.Mask)
	assert.Equal(t, first.Pattern, second.Pattern)
	for _, code := range codes {
		assert.Equal(t, first.Level(code), second.Level(code), "code %s", code)
	}
}

func TestInfer_PatternValidates(t *testing.T) {
	codes := []string{"100", "110", "127.01", "200", "210.02", "300"}
	prof := Infer(codes)

	re, err := regexp.Compile(prof.Pattern)
	require.NoError(t, err)

	assert.True(t, re.MatchString("127"))
	assert.True(t, re.MatchString("127.01"))
	assert.False(t, re.MatchString("12A.01"))
	assert.False(t, re.MatchString("127-01"))
}

func TestSampleCodes_ThreeZones(t *testing.T) {
	codes := make([]string, 2000)
	for i := range codes {
		codes[i] = fmt.Sprintf("%04d", i)
	}

	sample := sampleCodes(codes)
	require.Len(t, sample, sampleCap)

	assert.Equal(t, "0000", sample[0], "head zone keeps top-level codes")
	assert.Equal(t, "1999", sample[len(sample)-1], "tail zone keeps deep leaves")
	assert.Contains(t, sample, "1000", "middle zone is represented")
}

func TestGuessKind(t *testing.T) {
	assert.Equal(t, "activo", GuessKind("110"))
	assert.Equal(t, "pasivo", GuessKind("210.01"))
	assert.Equal(t, "patrimonio", GuessKind("310"))
	assert.Equal(t, "ingreso", GuessKind("410"))
	assert.Equal(t, "costo", GuessKind("510"))
	assert.Equal(t, "gasto", GuessKind("610"))
	assert.Equal(t, "", GuessKind("910"))
	assert.Equal(t, "", GuessKind("X10"))
	assert.Equal(t, "", GuessKind(""))
}
