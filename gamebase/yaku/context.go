package yaku

import (
	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// Situation 和牌时的场况
type Situation struct {
	RoundWind mahjong.Tile
	SeatWind  mahjong.Tile
	SelfDraw  bool
	Riichi    int  // 0 未立直，1 立直，2 两立直
	Ippatsu   bool // 一发
	LastTile  bool // 海底/河底
	AfterKong bool // 岭上开花
	RobKong   bool // 抢杠
	Heaven    bool // 天和
	Earth     bool // 地和
}

func (s *Situation) IsDealer() bool {
	return s.SeatWind == mahjong.TileEast
}

// Context 一次评估的只读数据
type Context struct {
	*hu.HuData
	Situation
	Decompositions []hu.Decomposition

	closed    bool
	concealed mahjong.Counts
	all       mahjong.Counts
}

func NewContext(data *hu.HuData, s Situation, decs []hu.Decomposition) *Context {
	return &Context{
		HuData:         data,
		Situation:      s,
		Decompositions: decs,
		closed:         data.IsClosed(),
		concealed:      data.ConcealedCounts(),
		all:            data.Counts(),
	}
}

func (c *Context) IsClosed() bool {
	return c.closed
}

func (c *Context) hasHonor() bool {
	for t := mahjong.TileEast; t <= mahjong.TileRed; t++ {
		if c.all[t] > 0 {
			return true
		}
	}
	return false
}

// allTiles 所有牌都满足 f
func (c *Context) allTiles(f func(mahjong.Tile) bool) bool {
	for t, n := range c.all {
		if n > 0 && !f(mahjong.Tile(t)) {
			return false
		}
	}
	return true
}

// suitCount 使用的数牌花色数
func (c *Context) suitCount() int {
	var used [mahjong.ColorHonor]bool
	n := 0
	for t, cnt := range c.all {
		color := mahjong.Tile(t).Color()
		if cnt > 0 && color < mahjong.ColorHonor && !used[color] {
			used[color] = true
			n++
		}
	}
	return n
}

func (c *Context) konCount() int {
	n := 0
	for _, g := range c.Calls {
		if g.IsKon() {
			n++
		}
	}
	return n
}

// valueOf 役牌价值：三元牌、场风、自风各算一次
func (c *Context) valueOf(t mahjong.Tile) int {
	n := 0
	if t.IsDragon() {
		n++
	}
	if t == c.RoundWind {
		n++
	}
	if t == c.SeatWind {
		n++
	}
	return n
}

// groups 拆牌与副露合并
func (c *Context) groups(d *hu.Decomposition) []mahjong.Group {
	res := make([]mahjong.Group, 0, len(d.Groups)+len(c.Calls))
	res = append(res, d.Groups...)
	return append(res, c.Calls...)
}

// tripletTiles 拆牌中的刻子与副露的刻子、杠
func (c *Context) tripletTiles(d *hu.Decomposition) []mahjong.Tile {
	var res []mahjong.Tile
	for _, g := range c.groups(d) {
		if g.IsTriplet() {
			res = append(res, g.Tile)
		}
	}
	return res
}

// sequenceStarts 拆牌中的顺子与吃的顺子
func (c *Context) sequenceStarts(d *hu.Decomposition) []mahjong.Tile {
	var res []mahjong.Tile
	for _, g := range c.groups(d) {
		if g.Type == mahjong.GroupSequence {
			res = append(res, g.Tile)
		}
	}
	return res
}

// concealedTriplets 暗刻数。荣和的牌只在暗手中有三张时，那组刻子算明刻。
func (c *Context) concealedTriplets(d *hu.Decomposition) int {
	n := 0
	for _, g := range d.Groups {
		if g.Type != mahjong.GroupTriplet {
			continue
		}
		if g.Tile != c.GetCurTile() || c.SelfDraw || c.concealed[c.GetCurTile()] == 4 {
			n++
		}
	}
	for _, g := range c.Calls {
		if g.Type == mahjong.GroupAnKon {
			n++
		}
	}
	return n
}

// duplicateSequences 一杯口的组数
func duplicateSequences(d *hu.Decomposition) int {
	seen := make(map[mahjong.Tile]int)
	for _, g := range d.Groups {
		if g.Type == mahjong.GroupSequence {
			seen[g.Tile]++
		}
	}
	n := 0
	for _, v := range seen {
		n += v / 2
	}
	return n
}

// isTwoSided 和牌在顺子两端且不是边张
func isTwoSided(g mahjong.Group, win mahjong.Tile) bool {
	if g.Type != mahjong.GroupSequence {
		return false
	}
	return (win == g.Tile && g.Last().Point() != 8) || (win == g.Last() && g.Tile.Point() != 0)
}

// isPinfu 平和形：五组、无刻子、雀头非役牌、两面听
func (c *Context) isPinfu(d *hu.Decomposition) bool {
	if d.Style != mahjong.HandNormal || len(d.Groups) != 5 {
		return false
	}
	twoSided := false
	for _, g := range d.Groups {
		switch g.Type {
		case mahjong.GroupTriplet:
			return false
		case mahjong.GroupPair:
			if c.valueOf(g.Tile) > 0 {
				return false
			}
		case mahjong.GroupSequence:
			twoSided = twoSided || isTwoSided(g, c.GetCurTile())
		}
	}
	return twoSided
}
