package mahjong

import (
	"strconv"
	"strings"
)

type Tile int

var (
	TileNull  Tile = -1
	TileEast       = MakeTile(ColorHonor, 0) // 东
	TileSouth      = MakeTile(ColorHonor, 1) // 南
	TileWest       = MakeTile(ColorHonor, 2) // 西
	TileNorth      = MakeTile(ColorHonor, 3) // 北
	TileWhite      = MakeTile(ColorHonor, 4) // 白
	TileGreen      = MakeTile(ColorHonor, 5) // 发
	TileRed        = MakeTile(ColorHonor, 6) // 中
)

// YaoJiuTiles 幺九牌：老头牌与字牌
var YaoJiuTiles = []Tile{
	MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
	MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
	MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
	TileEast, TileSouth, TileWest, TileNorth,
	TileWhite, TileGreen, TileRed,
}

var honorNames = [...]string{"East", "South", "West", "North", "White", "Green", "Red"}

func MakeTile(color EColor, point int) Tile {
	if color < ColorBegin || color >= ColorEnd || point < 0 || point >= PointCountByColor[color] {
		return TileNull
	}
	return Tile(SeqBeginByColor[color] + point)
}

// WindTile 1..4 对应东南西北
func WindTile(wind int) Tile {
	if wind < 1 || wind > 4 {
		return TileNull
	}
	return MakeTile(ColorHonor, wind-1)
}

func (t Tile) IsValid() bool {
	return t >= 0 && t < TileKinds
}

func (t Tile) Color() EColor {
	if !t.IsValid() {
		return ColorUndefined
	}
	if t >= Tile(SeqBeginByColor[ColorHonor]) {
		return ColorHonor
	}
	return EColor(int(t) / 9)
}

func (t Tile) Point() int {
	c := t.Color()
	if c == ColorUndefined {
		return -1
	}
	return int(t) - SeqBeginByColor[c]
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) IsSuit() bool { // 数牌
	c := t.Color()
	return c >= ColorCharacter && c <= ColorBamboo
}

func (t Tile) IsHonor() bool { // 字牌
	return t.Color() == ColorHonor
}

func (t Tile) IsWind() bool {
	return t >= TileEast && t <= TileNorth
}

func (t Tile) IsDragon() bool { // 三元牌
	return t >= TileWhite && t <= TileRed
}

func (t Tile) IsTerminal() bool { // 老头牌
	p := t.Point()
	return t.IsSuit() && (p == 0 || p == 8)
}

func (t Tile) IsYaoJiu() bool {
	return t.IsTerminal() || t.IsHonor()
}

// IsGreen 绿一色可用牌：23468s 与发
func (t Tile) IsGreen() bool {
	if t == TileGreen {
		return true
	}
	if t.Color() != ColorBamboo {
		return false
	}
	switch t.Point() {
	case 1, 2, 3, 5, 7:
		return true
	}
	return false
}

// CanStartSequence 顺子首张不能跨花色
func (t Tile) CanStartSequence() bool {
	return t.IsSuit() && t.Point() <= 6
}

// String 返回记谱写法，如 5m、7z
func (t Tile) String() string {
	c, p := t.Info()
	if c == ColorUndefined {
		return "?"
	}
	return strconv.Itoa(p+1) + string(colorMarkers[c])
}

func (t Tile) Name() string {
	if t.IsHonor() {
		return honorNames[t.Point()]
	}
	return t.String()
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}

// Counts 按牌种计数
type Counts [TileKinds]int

func CountTiles(tiles []Tile) Counts {
	var c Counts
	for _, t := range tiles {
		if t.IsValid() {
			c[t]++
		}
	}
	return c
}

func (c *Counts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

func (c *Counts) Kinds() int {
	n := 0
	for _, v := range c {
		if v > 0 {
			n++
		}
	}
	return n
}

// Max 单一牌种的最大张数
func (c *Counts) Max() int {
	m := 0
	for _, v := range c {
		m = max(m, v)
	}
	return m
}
