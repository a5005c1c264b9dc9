package hu

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// 四面子加一雀头
const maxMelds = 4

// Decomposition 一种拆牌方式
type Decomposition struct {
	Style  mahjong.EHandStyle
	Groups []mahjong.Group
}

func (d Decomposition) String() string {
	if d.Style == mahjong.HandThirteenOrphans {
		return mahjong.FormatTiles(mahjong.YaoJiuTiles)
	}
	return mahjong.GroupsString(d.Groups)
}

// Pair 雀头，七对与十三幺没有
func (d Decomposition) Pair() (mahjong.Tile, bool) {
	if d.Style != mahjong.HandNormal {
		return mahjong.TileNull, false
	}
	for _, g := range d.Groups {
		if g.Type == mahjong.GroupPair {
			return g.Tile, true
		}
	}
	return mahjong.TileNull, false
}

func (d Decomposition) Tiles() []mahjong.Tile {
	var res []mahjong.Tile
	for _, g := range d.Groups {
		res = append(res, g.Tiles()...)
	}
	return res
}

func (d Decomposition) key() string {
	var sb strings.Builder
	sb.WriteByte(byte('0' + d.Style))
	for _, g := range d.Groups {
		sb.WriteByte(byte('a' + g.Type))
		sb.WriteByte(byte(g.Tile))
	}
	return sb.String()
}

// Decompose 枚举所有拆牌方式，结果已规范化并去重
func Decompose(tiles []mahjong.Tile) []Decomposition {
	counts := mahjong.CountTiles(tiles)
	var res []Decomposition
	if isSevenPairs(&counts) {
		res = append(res, sevenPairs(&counts))
	}
	for _, groups := range split(counts, counts.Total(), 0, 0) {
		res = append(res, Decomposition{Style: mahjong.HandNormal, Groups: normalize(groups)})
	}
	return dedupe(res)
}

// split 从 counts 中拆出面子，from 之前的候选不再考虑，避免同一拆法按不同顺序重复出现。
// 每层返回新切片，分支之间不共享状态。
func split(counts mahjong.Counts, remaining, melds, from int) [][]mahjong.Group {
	if remaining == 2 {
		for t, c := range counts {
			if c == 2 {
				return [][]mahjong.Group{{mahjong.NewPair(mahjong.Tile(t))}}
			}
		}
		return nil
	}
	if melds == maxMelds || remaining < 3 {
		return nil
	}

	var res [][]mahjong.Group
	for i := from; i < 2*mahjong.TileKinds; i++ {
		g, ok := candidate(&counts, i)
		if !ok {
			continue
		}
		next := counts
		for _, t := range g.Tiles() {
			next[t]--
		}
		for _, rest := range split(next, remaining-3, melds+1, i) {
			res = append(res, append([]mahjong.Group{g}, rest...))
		}
	}
	return res
}

// candidate 前 34 个候选为刻子，后 34 个为顺子
func candidate(counts *mahjong.Counts, i int) (mahjong.Group, bool) {
	if i < mahjong.TileKinds {
		return mahjong.NewTriplet(mahjong.Tile(i)), counts[i] >= 3
	}
	t := mahjong.Tile(i - mahjong.TileKinds)
	if !t.CanStartSequence() {
		return mahjong.Group{}, false
	}
	return mahjong.NewSequence(t), counts[t] > 0 && counts[t+1] > 0 && counts[t+2] > 0
}

func isSevenPairs(counts *mahjong.Counts) bool {
	if counts.Kinds() != 7 {
		return false
	}
	for _, c := range counts {
		if c != 0 && c != 2 {
			return false
		}
	}
	return true
}

func sevenPairs(counts *mahjong.Counts) Decomposition {
	d := Decomposition{Style: mahjong.HandSevenPairs}
	for t, c := range counts {
		if c == 2 {
			d.Groups = append(d.Groups, mahjong.NewPair(mahjong.Tile(t)))
		}
	}
	return d
}

// IsThirteenOrphans 十三种幺九牌各一张，其中一种成对
func IsThirteenOrphans(counts *mahjong.Counts) bool {
	if counts.Total() != mahjong.TileCountHu {
		return false
	}
	for _, t := range mahjong.YaoJiuTiles {
		if counts[t] == 0 {
			return false
		}
	}
	return counts.Kinds() == len(mahjong.YaoJiuTiles)
}

// normalize 按张数降序、首张升序排列
func normalize(groups []mahjong.Group) []mahjong.Group {
	slices.SortFunc(groups, func(a, b mahjong.Group) int {
		if c := cmp.Compare(b.Size(), a.Size()); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Tile, b.Tile); c != 0 {
			return c
		}
		return cmp.Compare(a.Type, b.Type)
	})
	return groups
}

func dedupe(decs []Decomposition) []Decomposition {
	seen := make(map[string]struct{}, len(decs))
	res := decs[:0]
	for _, d := range decs {
		k := d.key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		res = append(res, d)
	}
	return res
}
