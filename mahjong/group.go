package mahjong

import "strings"

// Group 面子或雀头，Tile 为首张
type Group struct {
	Type EGroupType
	Tile Tile
}

func NewSequence(t Tile) Group { return Group{Type: GroupSequence, Tile: t} }
func NewTriplet(t Tile) Group  { return Group{Type: GroupTriplet, Tile: t} }
func NewPair(t Tile) Group     { return Group{Type: GroupPair, Tile: t} }

// NewCalledGroup 校验副露。三张相同为刻子，三张连续为顺子，
// 四张相同为明杠，五张相同是暗杠的记法。
func NewCalledGroup(tiles []Tile) (Group, bool) {
	if len(tiles) == 0 || !tiles[0].IsValid() {
		return Group{}, false
	}
	first := tiles[0]
	same := true
	for _, t := range tiles[1:] {
		if t != first {
			same = false
			break
		}
	}
	switch len(tiles) {
	case 3:
		if same {
			return NewTriplet(first), true
		}
		if first.CanStartSequence() && tiles[1] == first+1 && tiles[2] == first+2 {
			return NewSequence(first), true
		}
	case 4:
		if same {
			return Group{Type: GroupKon, Tile: first}, true
		}
	case 5:
		if same {
			return Group{Type: GroupAnKon, Tile: first}, true
		}
	}
	return Group{}, false
}

func (g Group) Size() int {
	switch g.Type {
	case GroupPair:
		return 2
	case GroupKon, GroupAnKon:
		return 4
	default:
		return 3
	}
}

func (g Group) Tiles() []Tile {
	if g.Type == GroupSequence {
		return []Tile{g.Tile, g.Tile + 1, g.Tile + 2}
	}
	return MakeTiles(g.Tile, g.Size())
}

func (g Group) Last() Tile {
	if g.Type == GroupSequence {
		return g.Tile + 2
	}
	return g.Tile
}

// IsTriplet 刻子或杠
func (g Group) IsTriplet() bool {
	return g.Type == GroupTriplet || g.IsKon()
}

func (g Group) IsKon() bool {
	return g.Type == GroupKon || g.Type == GroupAnKon
}

func (g Group) Contains(t Tile) bool {
	if g.Type == GroupSequence {
		return t >= g.Tile && t <= g.Tile+2
	}
	return t == g.Tile
}

// HasYaoJiu 首尾含幺九
func (g Group) HasYaoJiu() bool {
	return g.Tile.IsYaoJiu() || g.Last().IsYaoJiu()
}

// HasTerminal 首尾含老头牌
func (g Group) HasTerminal() bool {
	return g.Tile.IsTerminal() || g.Last().IsTerminal()
}

func (g Group) String() string {
	if g.Type == GroupAnKon {
		return FormatTiles(MakeTiles(g.Tile, 5))
	}
	return FormatTiles(g.Tiles())
}

func GroupsString(groups []Group) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ")
}
