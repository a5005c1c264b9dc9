package yaku

import (
	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// 九莲宝灯的基本形 1112345678999
var nineGates = [9]int{3, 1, 1, 1, 1, 1, 1, 1, 3}

// 役满表，Han 为倍数
var yakumanTable = []Yaku{
	{ID: Tenhou, Name: "Tenhou", Yakuman: true, check: checkTenhou},
	{ID: Chiihou, Name: "Chiihou", Yakuman: true, check: checkChiihou},
	{ID: Suukantsu, Name: "Suukantsu", Yakuman: true, check: checkSuukantsu},
	{ID: Daisangen, Name: "Daisangen", Yakuman: true, check: checkDaisangen},
	{ID: Ryuuiisou, Name: "Ryuuiisou", Yakuman: true, check: checkRyuuiisou},
	{ID: Tsuuiisou, Name: "Tsuuiisou", Yakuman: true, check: checkTsuuiisou},
	{ID: Shousuushii, Name: "Shousuushii", Yakuman: true, Shape: true, check: checkShousuushii},
	{ID: Daisuushii, Name: "Daisuushii", Yakuman: true, Shape: true, check: checkDaisuushii},
	{ID: Chinroutou, Name: "Chinroutou", Yakuman: true, check: checkChinroutou},
	{ID: Suuankou, Name: "Suuankou", Yakuman: true, ClosedOnly: true, Shape: true, check: checkSuuankou},
	{ID: SuuankouTanki, Name: "Suuankou Tanki", Yakuman: true, ClosedOnly: true, Shape: true, check: checkSuuankouTanki},
	{ID: Kokushi, Name: "Kokushi Musou", Yakuman: true, ClosedOnly: true, check: checkKokushi},
	{ID: Kokushi13, Name: "Kokushi Musou 13-wait", Yakuman: true, ClosedOnly: true, check: checkKokushi13},
	{ID: Chuuren, Name: "Chuuren Poutou", Yakuman: true, ClosedOnly: true, check: checkChuuren},
	{ID: JunseiChuuren, Name: "Junsei Chuuren Poutou", Yakuman: true, ClosedOnly: true, check: checkJunseiChuuren},
}

func checkTenhou(c *Context, _ *hu.Decomposition) int {
	return han(c.Heaven && c.IsDealer() && c.SelfDraw, 1)
}

func checkChiihou(c *Context, _ *hu.Decomposition) int {
	return han(c.Earth && !c.IsDealer() && c.SelfDraw, 1)
}

func checkSuukantsu(c *Context, _ *hu.Decomposition) int {
	return han(c.konCount() == 4, 1)
}

func checkDaisangen(c *Context, _ *hu.Decomposition) int {
	return han(c.all[mahjong.TileWhite] >= 3 && c.all[mahjong.TileGreen] >= 3 && c.all[mahjong.TileRed] >= 3, 1)
}

func checkRyuuiisou(c *Context, _ *hu.Decomposition) int {
	return han(c.allTiles(mahjong.Tile.IsGreen), 1)
}

func checkTsuuiisou(c *Context, _ *hu.Decomposition) int {
	return han(c.allTiles(mahjong.Tile.IsHonor), 1)
}

func checkChinroutou(c *Context, _ *hu.Decomposition) int {
	return han(c.allTiles(mahjong.Tile.IsTerminal), 1)
}

// windSets 风牌刻子数与雀头是否为风牌，按拆牌分别计数
func (c *Context) windSets(d *hu.Decomposition) (int, bool) {
	if d.Style != mahjong.HandNormal {
		return 0, false
	}
	triplets := 0
	for _, t := range c.tripletTiles(d) {
		if t.IsWind() {
			triplets++
		}
	}
	pair, _ := d.Pair()
	return triplets, pair.IsWind()
}

func checkShousuushii(c *Context, d *hu.Decomposition) int {
	triplets, windPair := c.windSets(d)
	return han(triplets == 3 && windPair, 1)
}

func checkDaisuushii(c *Context, d *hu.Decomposition) int {
	triplets, _ := c.windSets(d)
	return han(triplets == 4, 2)
}

func (c *Context) isSuuankou(d *hu.Decomposition) bool {
	return d.Style == mahjong.HandNormal && c.concealedTriplets(d) == 4
}

func checkSuuankou(c *Context, d *hu.Decomposition) int {
	pair, _ := d.Pair()
	return han(c.isSuuankou(d) && pair != c.GetCurTile(), 1)
}

// checkSuuankouTanki 单骑听雀头
func checkSuuankouTanki(c *Context, d *hu.Decomposition) int {
	pair, _ := d.Pair()
	return han(c.isSuuankou(d) && pair == c.GetCurTile(), 2)
}

func (c *Context) isKokushi() bool {
	return len(c.Calls) == 0 && hu.IsThirteenOrphans(&c.concealed)
}

func checkKokushi(c *Context, _ *hu.Decomposition) int {
	return han(c.isKokushi() && c.concealed[c.GetCurTile()] == 1, 1)
}

// checkKokushi13 和牌成对即十三面听
func checkKokushi13(c *Context, _ *hu.Decomposition) int {
	return han(c.isKokushi() && c.concealed[c.GetCurTile()] > 1, 2)
}

// nineGatesExtra 九莲宝灯基本形之外多出的那张
func (c *Context) nineGatesExtra() (mahjong.Tile, bool) {
	if len(c.Calls) != 0 || len(c.Tiles) != mahjong.TileCountHu {
		return mahjong.TileNull, false
	}
	color := c.Tiles[0].Color()
	if color < mahjong.ColorBegin || color >= mahjong.ColorHonor {
		return mahjong.TileNull, false
	}
	extra := mahjong.TileNull
	for t, n := range c.concealed {
		tile := mahjong.Tile(t)
		if n == 0 {
			continue
		}
		if tile.Color() != color {
			return mahjong.TileNull, false
		}
		switch n - nineGates[tile.Point()] {
		case 0:
		case 1:
			extra = tile
		default:
			return mahjong.TileNull, false
		}
	}
	for p, need := range nineGates {
		if c.concealed[mahjong.MakeTile(color, p)] < need {
			return mahjong.TileNull, false
		}
	}
	return extra, extra != mahjong.TileNull
}

func checkChuuren(c *Context, _ *hu.Decomposition) int {
	extra, ok := c.nineGatesExtra()
	return han(ok && extra != c.GetCurTile(), 1)
}

func checkJunseiChuuren(c *Context, _ *hu.Decomposition) int {
	extra, ok := c.nineGatesExtra()
	return han(ok && extra == c.GetCurTile(), 2)
}
