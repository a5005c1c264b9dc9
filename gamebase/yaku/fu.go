package yaku

import (
	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
	"github.com/kevin-chtw/tw_riichi/mahjong"
)

const (
	fuBase        = 20
	fuClosedRon   = 10
	fuTsumo       = 2
	fuSpecialHand = 25 // 七对、十三幺
)

// FuList 每种拆牌的符数，与 Decompositions 下标对齐
func FuList(c *Context) []int {
	res := make([]int, len(c.Decompositions))
	for i := range c.Decompositions {
		res[i] = Fu(c, &c.Decompositions[i])
	}
	return res
}

func Fu(c *Context, d *hu.Decomposition) int {
	if d.Style != mahjong.HandNormal {
		return fuSpecialHand
	}
	fu := fuBase
	if c.closed && !c.SelfDraw {
		fu += fuClosedRon
	}
	for _, g := range c.Calls {
		fu += calledFu(g)
	}
	if c.isPinfu(d) {
		return roundUpFu(fu)
	}
	if c.SelfDraw {
		fu += fuTsumo
	}
	for _, g := range d.Groups {
		switch g.Type {
		case mahjong.GroupTriplet:
			fu += c.tripletFu(g)
		case mahjong.GroupPair:
			fu += 2 * c.valueOf(g.Tile)
		}
	}
	return roundUpFu(fu + c.waitFu(d))
}

// calledFu 明刻 2/4，明杠 8/16，暗杠 16/32
func calledFu(g mahjong.Group) int {
	fu := 0
	switch g.Type {
	case mahjong.GroupTriplet:
		fu = 2
	case mahjong.GroupKon:
		fu = 8
	case mahjong.GroupAnKon:
		fu = 16
	}
	if g.Tile.IsYaoJiu() {
		fu *= 2
	}
	return fu
}

// tripletFu 暗刻 4/8，荣和成刻时按明刻算
func (c *Context) tripletFu(g mahjong.Group) int {
	fu := 4
	if g.Tile.IsYaoJiu() {
		fu = 8
	}
	if g.Tile == c.GetCurTile() && !c.SelfDraw && c.concealed[c.GetCurTile()] == 3 {
		fu /= 2
	}
	return fu
}

// waitFu 由第一组含和牌的顺子或雀头决定：坎张、边张、单骑 2 符，两面 0 符
func (c *Context) waitFu(d *hu.Decomposition) int {
	for _, g := range d.Groups {
		if !g.Contains(c.GetCurTile()) {
			continue
		}
		switch g.Type {
		case mahjong.GroupSequence:
			if c.GetCurTile() == g.Tile+1 || !isTwoSided(g, c.GetCurTile()) {
				return 2
			}
			return 0
		case mahjong.GroupPair:
			return 2
		}
	}
	return 0
}

func roundUpFu(fu int) int {
	return (fu + 9) / 10 * 10
}
