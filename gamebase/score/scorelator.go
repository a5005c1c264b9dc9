package score

import (
	"fmt"

	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
	"github.com/kevin-chtw/tw_riichi/gamebase/yaku"
)

const yakumanHan = 13

// Result 算分结果，Win 为 false 时其余字段无意义
type Result struct {
	Win           bool
	Fu            int
	Han           int
	Yakuman       int // 役满倍数
	Tier          string
	Value         int
	Labels        []string
	Index         int // 选中的拆牌
	Decomposition string
}

// 分数计算器
type scorelator struct {
	rule *Rule
}

func newScorelator(rule *Rule) *scorelator {
	return &scorelator{rule: rule}
}

func (s *scorelator) resolve(e *yaku.Evaluation, fus []int, decs []hu.Decomposition, dora int) *Result {
	var res *Result
	if e.HasYakuman() {
		res = s.resolveYakuman(e, fus)
	} else {
		res = s.resolveNormal(e, fus, dora)
	}
	res.Decomposition = decs[res.Index].String()
	return res
}

// resolveNormal 取 fu*2^(han+2) 最大的拆牌，并列取靠前的。
// 全局番与宝牌对每种拆牌相同，只需比较 fu<<拆牌番。
func (s *scorelator) resolveNormal(e *yaku.Evaluation, fus []int, dora int) *Result {
	base := e.GlobalHan() + dora
	best, bestTrial := 0, -1
	for i, fu := range fus {
		if trial := fu << e.ShapeHan(i); trial > bestTrial {
			best, bestTrial = i, trial
		}
	}

	res := &Result{
		Win:   true,
		Fu:    fus[best],
		Han:   base + e.ShapeHan(best),
		Index: best,
	}
	for _, c := range e.Global {
		res.Labels = append(res.Labels, c.Label())
	}
	for _, c := range e.Shapes[best] {
		res.Labels = append(res.Labels, c.Label())
	}
	if dora > 0 {
		res.Labels = append(res.Labels, fmt.Sprintf(s.rule.DoraLabel, dora))
	}

	if tier, ok := s.rule.tier(res.Han); ok {
		res.Tier, res.Value = tier.Label, tier.Value
		return res
	}
	res.Value = res.Fu << (res.Han + 2)
	if res.Value > s.rule.Mangan.Value {
		res.Tier, res.Value = s.rule.Mangan.Label, s.rule.Mangan.Value
	}
	return res
}

// resolveYakuman 不计宝牌，符数取役满成立的拆牌中最高的
func (s *scorelator) resolveYakuman(e *yaku.Evaluation, fus []int) *Result {
	units := e.YakumanUnits()
	res := &Result{
		Win:     true,
		Han:     yakumanHan * units,
		Yakuman: units,
		Tier:    s.rule.yakumanLabel(units),
		Value:   s.rule.Yakuman.Value * units,
	}
	for _, m := range e.Yakuman {
		res.Labels = append(res.Labels, m.Label())
	}
	best := -1
	for _, i := range e.Qualifying(len(fus)) {
		if best < 0 || fus[i] > fus[best] {
			best = i
		}
	}
	res.Index = max(best, 0)
	res.Fu = fus[res.Index]
	return res
}
