package hu

import (
	"slices"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// HuData 一手牌的静态快照：暗手、副露与和了牌
type HuData struct {
	Tiles   []mahjong.Tile
	Calls   []mahjong.Group
	CurTile mahjong.Tile
	badCall bool // 存在不合法的副露
}

// NewHuData 校验副露，不合法的副露使该手牌不可能和牌
func NewHuData(tiles []mahjong.Tile, calls [][]mahjong.Tile, curTile mahjong.Tile) *HuData {
	data := &HuData{
		Tiles:   slices.Clone(tiles),
		CurTile: curTile,
	}
	for _, c := range calls {
		g, ok := mahjong.NewCalledGroup(c)
		if !ok {
			data.badCall = true
			continue
		}
		data.Calls = append(data.Calls, g)
	}
	return data
}

func NewHuDataFromHand(hand *mahjong.Hand, curTile mahjong.Tile) *HuData {
	return NewHuData(hand.Tiles, hand.Calls, curTile)
}

func (h *HuData) GetCurTile() mahjong.Tile {
	return h.CurTile
}

// IsClosed 门清：除暗杠外没有副露
func (h *HuData) IsClosed() bool {
	for _, g := range h.Calls {
		if g.Type != mahjong.GroupAnKon {
			return false
		}
	}
	return true
}

// Counts 暗手与副露合计张数，杠按四张计
func (h *HuData) Counts() mahjong.Counts {
	counts := mahjong.CountTiles(h.Tiles)
	for _, g := range h.Calls {
		for _, t := range g.Tiles() {
			counts[t]++
		}
	}
	return counts
}

func (h *HuData) ConcealedCounts() mahjong.Counts {
	return mahjong.CountTiles(h.Tiles)
}

// CheckHu 返回满足和牌形状的拆牌
func (h *HuData) CheckHu() ([]Decomposition, bool) {
	if h.badCall || len(h.Tiles) == 0 {
		return nil, false
	}
	total := h.Counts()
	if total.Max() > mahjong.TileCountPerKind {
		return nil, false
	}

	var res []Decomposition
	for _, d := range Decompose(h.Tiles) {
		switch d.Style {
		case mahjong.HandSevenPairs:
			if len(h.Calls) == 0 {
				res = append(res, d)
			}
		default:
			if len(d.Groups)+len(h.Calls) == maxMelds+1 {
				res = append(res, d)
			}
		}
	}

	concealed := h.ConcealedCounts()
	if len(h.Calls) == 0 && IsThirteenOrphans(&concealed) {
		res = append(res, Decomposition{Style: mahjong.HandThirteenOrphans})
	}
	return res, len(res) > 0
}

func (h *HuData) CanHu() bool {
	_, ok := h.CheckHu()
	return ok
}
