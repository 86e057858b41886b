package balance

import (
	"sort"
	"strings"

	"github.com/schollz/closestmatch"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/textutil"
)

// Resolution names the stage at which a name lookup succeeded. Stages are
// tried in declared order; ResolutionNone means the caller should create a
// new node instead.
type Resolution int

const (
	ResolutionNone Resolution = iota
	ResolutionExact
	ResolutionSubstring
	ResolutionReverseSubstring
	ResolutionFuzzy
)

func (r Resolution) String() string {
	switch r {
	case ResolutionExact:
		return "exact"
	case ResolutionSubstring:
		return "substring"
	case ResolutionReverseSubstring:
		return "reverse-substring"
	case ResolutionFuzzy:
		return "fuzzy"
	}
	return "none"
}

// contraPrefixes are stripped from regulator names before matching against
// host candidates ("DEPRECIACION ACUMULADA VEHICULOS" -> "VEHICULOS").
var contraPrefixes = []string{
	"DEPRECIACION ACUMULADA DE",
	"DEPRECIACION ACUMULADA",
	"AMORTIZACION ACUMULADA DE",
	"AMORTIZACION ACUMULADA",
	"PREVISION PARA",
	"PREVISION ACUMULADA",
	"PROVISION PARA",
	"ACCUMULATED DEPRECIATION OF",
	"ACCUMULATED DEPRECIATION",
	"ACCUMULATED AMORTIZATION",
}

// cleanContraName removes the regulator prefix from a folded name.
func cleanContraName(folded string) string {
	for _, prefix := range contraPrefixes {
		if strings.HasPrefix(folded, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(folded, prefix))
		}
	}
	return folded
}

// nameResolver resolves a target name against a fixed candidate set using
// the staged strategy exact -> substring -> reverse substring -> fuzzy.
// Candidates are visited in code order so resolution is deterministic.
type nameResolver struct {
	nodes  []*Node
	folded []string
	cm     *closestmatch.ClosestMatch
	byName map[string]*Node
}

// minFuzzyLength guards the fuzzy stage against matching trivial names.
const minFuzzyLength = 4

func newNameResolver(candidates []*Node) *nameResolver {
	nodes := make([]*Node, len(candidates))
	copy(nodes, candidates)
	sortNodes(nodes)

	r := &nameResolver{
		nodes:  nodes,
		folded: make([]string, len(nodes)),
		byName: make(map[string]*Node, len(nodes)),
	}
	for i, n := range nodes {
		f := textutil.Fold(n.Name())
		r.folded[i] = f
		if _, seen := r.byName[f]; !seen {
			r.byName[f] = n
		}
	}

	names := make([]string, len(r.folded))
	copy(names, r.folded)
	sort.Strings(names)
	r.cm = closestmatch.New(names, []int{2, 3})
	return r
}

// resolve returns the best candidate for target (already folded) and the
// stage that produced it.
func (r *nameResolver) resolve(target string) (*Node, Resolution) {
	if target == "" || len(r.nodes) == 0 {
		return nil, ResolutionNone
	}

	if n, ok := r.byName[target]; ok {
		return n, ResolutionExact
	}
	for i, f := range r.folded {
		if strings.Contains(f, target) {
			return r.nodes[i], ResolutionSubstring
		}
	}
	for i, f := range r.folded {
		if f != "" && strings.Contains(target, f) {
			return r.nodes[i], ResolutionReverseSubstring
		}
	}
	if len(target) >= minFuzzyLength {
		if closest := r.cm.Closest(target); closest != "" && sharesWord(target, closest) {
			if n, ok := r.byName[closest]; ok {
				return n, ResolutionFuzzy
			}
		}
	}
	return nil, ResolutionNone
}

// sharesWord demands at least one common word of minFuzzyLength before a
// fuzzy hit is trusted; n-gram similarity alone pairs unrelated short
// names.
func sharesWord(a, b string) bool {
	words := make(map[string]bool)
	for _, w := range strings.Fields(a) {
		if len(w) >= minFuzzyLength {
			words[w] = true
		}
	}
	for _, w := range strings.Fields(b) {
		if words[w] {
			return true
		}
	}
	return false
}

// findByKeywords walks forests depth-first looking for a node whose folded
// name contains any keyword. Used to locate attachment points for injected
// figures (accumulated results, tax payable, legal reserve).
func findByKeywords(roots []*Node, keywords []string) *Node {
	for _, root := range roots {
		if textutil.ContainsAny(textutil.Fold(root.Name()), keywords) {
			return root
		}
		if found := findByKeywords(root.Children, keywords); found != nil {
			return found
		}
	}
	return nil
}
