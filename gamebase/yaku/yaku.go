package yaku

import (
	"fmt"

	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
)

type ID int

const (
	Haitei ID = iota
	Houtei
	Rinshan
	Chankan
	Riichi
	DoubleRiichi
	Ippatsu
	MenzenTsumo
	Tanyao
	Yakuhai
	Sankantsu
	Shousangen
	Honroutou
	Honitsu
	Chinitsu
	Iipeikou
	Pinfu
	Chiitoitsu
	Ryanpeikou
	Toitoi
	Sanankou
	Ittsu
	Chanta
	SanshokuDoujun
	SanshokuDoukou
	Junchan

	Tenhou
	Chiihou
	Suukantsu
	Daisangen
	Ryuuiisou
	Tsuuiisou
	Shousuushii
	Daisuushii
	Chinroutou
	Suuankou
	SuuankouTanki
	Kokushi
	Kokushi13
	Chuuren
	JunseiChuuren
)

// checker 返回番数（役满为倍数），d 为 nil 表示与拆牌无关
type checker func(c *Context, d *hu.Decomposition) int

// Yaku 役表中的一行
type Yaku struct {
	ID           ID
	Name         string
	ClosedOnly   bool // 副露时不成立
	OpenDiscount bool // 副露减一番
	Shape        bool // 按拆牌逐一判断
	Yakuman      bool
	check        checker
}

// Contribution 某个役的成立结果
type Contribution struct {
	ID      ID
	Name    string
	Han     int // 役满时为倍数
	Yakuman bool
}

func (c Contribution) Label() string {
	if !c.Yakuman {
		return fmt.Sprintf("%s (%d han)", c.Name, c.Han)
	}
	if c.Han == 1 {
		return c.Name
	}
	return fmt.Sprintf("%s (%dx yakuman)", c.Name, c.Han)
}

// YakumanMatch 役满及其成立的拆牌下标，Indices 为空表示与拆牌无关
type YakumanMatch struct {
	Contribution
	Indices []int
}

// Evaluation 全局役、逐拆牌役与役满
type Evaluation struct {
	Global  []Contribution
	Shapes  [][]Contribution
	Yakuman []YakumanMatch
}

func (e *Evaluation) HasYakuman() bool {
	return len(e.Yakuman) > 0
}

func (e *Evaluation) YakumanUnits() int {
	n := 0
	for _, m := range e.Yakuman {
		n += m.Han
	}
	return n
}

func (e *Evaluation) GlobalHan() int {
	n := 0
	for _, c := range e.Global {
		n += c.Han
	}
	return n
}

func (e *Evaluation) ShapeHan(i int) int {
	n := 0
	for _, c := range e.Shapes[i] {
		n += c.Han
	}
	return n
}

// Qualifying 役满成立的拆牌下标，有与拆牌无关的役满时为全部
func (e *Evaluation) Qualifying(n int) []int {
	seen := make(map[int]bool)
	var res []int
	for _, m := range e.Yakuman {
		if len(m.Indices) == 0 {
			res = res[:0]
			for i := range n {
				res = append(res, i)
			}
			return res
		}
		for _, i := range m.Indices {
			if !seen[i] {
				seen[i] = true
				res = append(res, i)
			}
		}
	}
	return res
}

func (y *Yaku) value(c *Context, d *hu.Decomposition) int {
	if y.ClosedOnly && !c.closed {
		return 0
	}
	v := y.check(c, d)
	if v > 0 && y.OpenDiscount && !c.closed {
		v--
	}
	return v
}

func (y *Yaku) contribution(v int) Contribution {
	return Contribution{ID: y.ID, Name: y.Name, Han: v, Yakuman: y.Yakuman}
}

// Evaluate 先判断役满，役满成立时不再计算普通役
func Evaluate(c *Context) *Evaluation {
	e := &Evaluation{Shapes: make([][]Contribution, len(c.Decompositions))}
	for i := range yakumanTable {
		y := &yakumanTable[i]
		if !y.Shape {
			if v := y.value(c, nil); v > 0 {
				e.Yakuman = append(e.Yakuman, YakumanMatch{Contribution: y.contribution(v)})
			}
			continue
		}
		var match *YakumanMatch
		for j := range c.Decompositions {
			v := y.value(c, &c.Decompositions[j])
			if v <= 0 {
				continue
			}
			if match == nil {
				match = &YakumanMatch{Contribution: y.contribution(v)}
			}
			match.Indices = append(match.Indices, j)
		}
		if match != nil {
			e.Yakuman = append(e.Yakuman, *match)
		}
	}
	if e.HasYakuman() {
		return e
	}

	for i := range yakuTable {
		y := &yakuTable[i]
		if !y.Shape {
			if v := y.value(c, nil); v > 0 {
				e.Global = append(e.Global, y.contribution(v))
			}
			continue
		}
		for j := range c.Decompositions {
			if v := y.value(c, &c.Decompositions[j]); v > 0 {
				e.Shapes[j] = append(e.Shapes[j], y.contribution(v))
			}
		}
	}
	return e
}
