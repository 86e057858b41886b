package commands

import (
	"github.com/shopspring/decimal"

	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/balance"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/income"
	"github.com/Sebitas13/Sistema-Contable-NEXUS-sub003/internal/structure"
)

// JSON views keep the wire shape stable and independent of the internal
// types.

type segmentView struct {
	Length int      `json:"length"`
	Class  string   `json:"class"`
	Sample []string `json:"sample,omitempty"`
}

type profileView struct {
	Separator        string        `json:"separator,omitempty"`
	HasSeparator     bool          `json:"has_separator"`
	LevelCount       int           `json:"level_count"`
	LevelLengths     []int         `json:"level_lengths,omitempty"`
	SmartPUCT        bool          `json:"smart_puct,omitempty"`
	SmartFlat        bool          `json:"smart_flat,omitempty"`
	DeepFirstSegment bool          `json:"deep_first_segment,omitempty"`
	Mask             string        `json:"mask,omitempty"`
	Pattern          string        `json:"pattern,omitempty"`
	Segments         []segmentView `json:"segments,omitempty"`
}

func newProfileView(p structure.Profile) profileView {
	v := profileView{
		Separator:        p.Config.Separator,
		HasSeparator:     p.Config.HasSeparator,
		LevelCount:       p.Config.LevelCount,
		LevelLengths:     p.Config.LevelLengths,
		SmartPUCT:        p.Config.SmartPUCT,
		SmartFlat:        p.Config.SmartFlat,
		DeepFirstSegment: p.Config.DeepFirstSegment,
		Mask:             p.Mask,
		Pattern:          p.Pattern,
	}
	for _, s := range p.Segments {
		v.Segments = append(v.Segments, segmentView{
			Length: s.Length,
			Class:  string(s.Class),
			Sample: s.Samples,
		})
	}
	return v
}

type nodeView struct {
	Code      string          `json:"code"`
	Name      string          `json:"name"`
	Level     int             `json:"level"`
	Total     decimal.Decimal `json:"total"`
	Own       decimal.Decimal `json:"own"`
	Synthetic bool            `json:"synthetic,omitempty"`
	Gross     bool            `json:"gross,omitempty"`
	Children  []nodeView      `json:"children,omitempty"`
}

func nodeViews(nodes []*balance.Node) []nodeView {
	views := make([]nodeView, 0, len(nodes))
	for _, n := range nodes {
		views = append(views, nodeView{
			Code:      n.Code(),
			Name:      n.Name(),
			Level:     n.Level,
			Total:     n.Total,
			Own:       n.Own,
			Synthetic: n.Synthetic,
			Gross:     n.Gross,
			Children:  nodeViews(n.Children),
		})
	}
	return views
}

type sheetView struct {
	Assets         []nodeView      `json:"assets"`
	Liabilities    []nodeView      `json:"liabilities"`
	Equity         []nodeView      `json:"equity"`
	AssetTotal     decimal.Decimal `json:"asset_total"`
	LiabilityTotal decimal.Decimal `json:"liability_total"`
	EquityTotal    decimal.Decimal `json:"equity_total"`
	Difference     decimal.Decimal `json:"difference"`
	Balances       bool            `json:"balances"`
	Trail          []string        `json:"trail,omitempty"`
}

func balanceView(s *balance.Sheet) sheetView {
	return sheetView{
		Assets:         nodeViews(s.Assets),
		Liabilities:    nodeViews(s.Liabilities),
		Equity:         nodeViews(s.Equity),
		AssetTotal:     s.AssetTotal,
		LiabilityTotal: s.LiabilityTotal,
		EquityTotal:    s.EquityTotal,
		Difference:     s.Difference,
		Balances:       s.Balances,
		Trail:          s.Trail.Strings(),
	}
}

type lineView struct {
	Code   string          `json:"code"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type statementView struct {
	Buckets map[string][]lineView `json:"buckets"`
	Totals  income.Totals         `json:"totals"`
	Trail   []string              `json:"trail,omitempty"`
}

func incomeView(st *income.Statement) statementView {
	buckets := make(map[string][]lineView, len(st.Lines))
	for bucket, lines := range st.Lines {
		views := make([]lineView, len(lines))
		for i, l := range lines {
			views[i] = lineView{Code: l.Account.Code, Name: l.Account.Name, Amount: l.Amount}
		}
		buckets[string(bucket)] = views
	}
	return statementView{
		Buckets: buckets,
		Totals:  st.Totals,
		Trail:   st.Trail.Strings(),
	}
}
