package yaku

import (
	"slices"

	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// 普通役表，顺序即标签顺序
var yakuTable = []Yaku{
	{ID: Haitei, Name: "Haitei Raoyue", check: checkHaitei},
	{ID: Houtei, Name: "Houtei Raoyui", check: checkHoutei},
	{ID: Rinshan, Name: "Rinshan Kaihou", check: checkRinshan},
	{ID: Chankan, Name: "Chankan", check: checkChankan},
	{ID: Riichi, Name: "Riichi", ClosedOnly: true, check: checkRiichi},
	{ID: DoubleRiichi, Name: "Double Riichi", ClosedOnly: true, check: checkDoubleRiichi},
	{ID: Ippatsu, Name: "Ippatsu", ClosedOnly: true, check: checkIppatsu},
	{ID: MenzenTsumo, Name: "Menzen Tsumo", ClosedOnly: true, check: checkMenzenTsumo},
	{ID: Tanyao, Name: "Tanyao", check: checkTanyao},
	{ID: Yakuhai, Name: "Yakuhai", check: checkYakuhai},
	{ID: Sankantsu, Name: "Sankantsu", check: checkSankantsu},
	{ID: Shousangen, Name: "Shousangen", check: checkShousangen},
	{ID: Honroutou, Name: "Honroutou", check: checkHonroutou},
	{ID: Honitsu, Name: "Honitsu", OpenDiscount: true, check: checkHonitsu},
	{ID: Chinitsu, Name: "Chinitsu", OpenDiscount: true, check: checkChinitsu},

	{ID: Iipeikou, Name: "Iipeikou", ClosedOnly: true, Shape: true, check: checkIipeikou},
	{ID: Pinfu, Name: "Pinfu", ClosedOnly: true, Shape: true, check: checkPinfu},
	{ID: Chiitoitsu, Name: "Chiitoitsu", ClosedOnly: true, Shape: true, check: checkChiitoitsu},
	{ID: Ryanpeikou, Name: "Ryanpeikou", ClosedOnly: true, Shape: true, check: checkRyanpeikou},
	{ID: Toitoi, Name: "Toitoi", Shape: true, check: checkToitoi},
	{ID: Sanankou, Name: "Sanankou", Shape: true, check: checkSanankou},
	{ID: Ittsu, Name: "Ittsu", OpenDiscount: true, Shape: true, check: checkIttsu},
	{ID: Chanta, Name: "Chanta", OpenDiscount: true, Shape: true, check: checkChanta},
	{ID: SanshokuDoujun, Name: "Sanshoku Doujun", OpenDiscount: true, Shape: true, check: checkSanshokuDoujun},
	{ID: SanshokuDoukou, Name: "Sanshoku Doukou", Shape: true, check: checkSanshokuDoukou},
	{ID: Junchan, Name: "Junchan", OpenDiscount: true, Shape: true, check: checkJunchan},
}

func han(ok bool, n int) int {
	if ok {
		return n
	}
	return 0
}

func checkHaitei(c *Context, _ *hu.Decomposition) int {
	return han(c.LastTile && c.SelfDraw, 1)
}

func checkHoutei(c *Context, _ *hu.Decomposition) int {
	return han(c.LastTile && !c.SelfDraw, 1)
}

func checkRinshan(c *Context, _ *hu.Decomposition) int {
	return han(c.AfterKong && c.SelfDraw, 1)
}

func checkChankan(c *Context, _ *hu.Decomposition) int {
	return han(c.RobKong && !c.SelfDraw, 1)
}

func checkRiichi(c *Context, _ *hu.Decomposition) int {
	return han(c.Riichi == 1, 1)
}

func checkDoubleRiichi(c *Context, _ *hu.Decomposition) int {
	return han(c.Riichi == 2, 2)
}

func checkIppatsu(c *Context, _ *hu.Decomposition) int {
	return han(c.Ippatsu && c.Riichi > 0, 1)
}

func checkMenzenTsumo(c *Context, _ *hu.Decomposition) int {
	return han(c.SelfDraw, 1)
}

func checkTanyao(c *Context, _ *hu.Decomposition) int {
	return han(c.allTiles(func(t mahjong.Tile) bool { return !t.IsYaoJiu() }), 1)
}

// checkYakuhai 每组役牌刻子按 valueOf 累加
func checkYakuhai(c *Context, _ *hu.Decomposition) int {
	n := 0
	for t := mahjong.TileEast; t <= mahjong.TileRed; t++ {
		if c.concealed[t] >= 3 {
			n += c.valueOf(t)
		}
	}
	for _, g := range c.Calls {
		if g.IsTriplet() {
			n += c.valueOf(g.Tile)
		}
	}
	return n
}

func checkSankantsu(c *Context, _ *hu.Decomposition) int {
	return han(c.konCount() == 3, 2)
}

func checkShousangen(c *Context, _ *hu.Decomposition) int {
	triplets, pairs := 0, 0
	for t := mahjong.TileWhite; t <= mahjong.TileRed; t++ {
		switch {
		case c.all[t] >= 3:
			triplets++
		case c.all[t] == 2:
			pairs++
		}
	}
	return han(triplets == 2 && pairs == 1, 2)
}

func checkHonroutou(c *Context, _ *hu.Decomposition) int {
	return han(c.hasHonor() && c.allTiles(mahjong.Tile.IsYaoJiu), 2)
}

func checkHonitsu(c *Context, _ *hu.Decomposition) int {
	return han(c.hasHonor() && c.suitCount() == 1, 3)
}

func checkChinitsu(c *Context, _ *hu.Decomposition) int {
	return han(!c.hasHonor() && c.suitCount() == 1, 6)
}

func checkIipeikou(_ *Context, d *hu.Decomposition) int {
	return han(d.Style == mahjong.HandNormal && duplicateSequences(d) == 1, 1)
}

func checkPinfu(c *Context, d *hu.Decomposition) int {
	return han(c.isPinfu(d), 1)
}

func checkChiitoitsu(_ *Context, d *hu.Decomposition) int {
	return han(d.Style == mahjong.HandSevenPairs, 2)
}

func checkRyanpeikou(_ *Context, d *hu.Decomposition) int {
	return han(d.Style == mahjong.HandNormal && duplicateSequences(d) == 2, 3)
}

func checkToitoi(c *Context, d *hu.Decomposition) int {
	return han(d.Style == mahjong.HandNormal && len(c.tripletTiles(d)) == 4, 2)
}

func checkSanankou(c *Context, d *hu.Decomposition) int {
	return han(d.Style == mahjong.HandNormal && c.concealedTriplets(d) == 3, 2)
}

// checkIttsu 同一花色 123、456、789
func checkIttsu(c *Context, d *hu.Decomposition) int {
	if d.Style != mahjong.HandNormal {
		return 0
	}
	starts := c.sequenceStarts(d)
	for color := mahjong.ColorCharacter; color < mahjong.ColorHonor; color++ {
		if containsAll(starts, mahjong.MakeTile(color, 0), mahjong.MakeTile(color, 3), mahjong.MakeTile(color, 6)) {
			return 2
		}
	}
	return 0
}

// checkChanta 每组都带幺九，且有字牌
func checkChanta(c *Context, d *hu.Decomposition) int {
	if d.Style == mahjong.HandThirteenOrphans || !c.hasHonor() {
		return 0
	}
	for _, g := range c.groups(d) {
		if !g.HasYaoJiu() {
			return 0
		}
	}
	return 2
}

func checkSanshokuDoujun(c *Context, d *hu.Decomposition) int {
	if d.Style != mahjong.HandNormal {
		return 0
	}
	return han(sanshoku(c.sequenceStarts(d)), 2)
}

func checkSanshokuDoukou(c *Context, d *hu.Decomposition) int {
	if d.Style != mahjong.HandNormal {
		return 0
	}
	return han(sanshoku(c.tripletTiles(d)), 2)
}

// checkJunchan 每组都带老头牌
func checkJunchan(c *Context, d *hu.Decomposition) int {
	if d.Style == mahjong.HandThirteenOrphans {
		return 0
	}
	for _, g := range c.groups(d) {
		if !g.HasTerminal() {
			return 0
		}
	}
	return 3
}

// sanshoku 万筒条同点数
func sanshoku(tiles []mahjong.Tile) bool {
	for _, t := range tiles {
		if t.Color() != mahjong.ColorCharacter {
			continue
		}
		p := t.Point()
		if containsAll(tiles, mahjong.MakeTile(mahjong.ColorDot, p), mahjong.MakeTile(mahjong.ColorBamboo, p)) {
			return true
		}
	}
	return false
}

func containsAll(tiles []mahjong.Tile, want ...mahjong.Tile) bool {
	for _, w := range want {
		if !slices.Contains(tiles, w) {
			return false
		}
	}
	return true
}
