package hu

import (
	"slices"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// CheckTing 返回能使手牌和了的牌种，升序。
// 副露不合法或暗手为空时没有听牌。
func (h *HuData) CheckTing() []mahjong.Tile {
	if h.badCall || len(h.Tiles) == 0 {
		return nil
	}
	if waits, ok := h.thirteenOrphansTing(); ok {
		return waits
	}

	total := h.Counts()
	probe := &HuData{
		Tiles: append(slices.Clone(h.Tiles), mahjong.TileNull),
		Calls: h.Calls,
	}
	last := len(probe.Tiles) - 1

	var res []mahjong.Tile
	for i := range mahjong.TileKinds {
		if total[i] >= mahjong.TileCountPerKind {
			continue
		}
		tile := mahjong.Tile(i)
		probe.Tiles[last] = tile
		probe.CurTile = tile
		if probe.CanHu() {
			res = append(res, tile)
		}
	}
	return res
}

// thirteenOrphansTing 十三幺听牌按暗手张数判断：
// 十三种各一张听十三面，十二种且一种成对听缺的那一种。
func (h *HuData) thirteenOrphansTing() ([]mahjong.Tile, bool) {
	if len(h.Calls) != 0 || len(h.Tiles) != mahjong.TileCountInitNormal {
		return nil, false
	}
	counts := h.ConcealedCounts()
	var missing []mahjong.Tile
	yaoJiu := 0
	for _, t := range mahjong.YaoJiuTiles {
		yaoJiu += counts[t]
		if counts[t] == 0 {
			missing = append(missing, t)
		}
	}
	if yaoJiu != mahjong.TileCountInitNormal {
		return nil, false
	}

	switch len(missing) {
	case 0:
		return slices.Clone(mahjong.YaoJiuTiles), true
	case 1:
		return missing, true
	default:
		return nil, false
	}
}
