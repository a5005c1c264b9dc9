package yaku_test

import (
	"slices"
	"testing"

	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
	"github.com/kevin-chtw/tw_riichi/gamebase/yaku"
	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// 东场南家
var southSeat = yaku.Situation{RoundWind: mahjong.TileEast, SeatWind: mahjong.TileSouth}

func newContext(t *testing.T, notation string, s yaku.Situation) *yaku.Context {
	t.Helper()
	hand, err := mahjong.ParseHand(notation)
	if err != nil {
		t.Fatalf("ParseHand(%q): %v", notation, err)
	}
	win, err := mahjong.WinningTile(notation)
	if err != nil {
		t.Fatalf("WinningTile(%q): %v", notation, err)
	}
	data := hu.NewHuDataFromHand(hand, win)
	decs, ok := data.CheckHu()
	if !ok {
		t.Fatalf("%q is not a complete hand", notation)
	}
	return yaku.NewContext(data, s, decs)
}

func ids(cs []yaku.Contribution) []yaku.ID {
	res := make([]yaku.ID, len(cs))
	for i, c := range cs {
		res[i] = c.ID
	}
	return res
}

func Test_RiichiPinfuTsumo(t *testing.T) {
	s := southSeat
	s.Riichi = 1
	s.SelfDraw = true
	c := newContext(t, "234m567p45678s88s3s", s)
	e := yaku.Evaluate(c)

	if got, want := ids(e.Global), []yaku.ID{yaku.Riichi, yaku.MenzenTsumo, yaku.Tanyao}; !slices.Equal(got, want) {
		t.Errorf("global = %v, want %v", got, want)
	}
	if len(e.Shapes) != 1 || !slices.Equal(ids(e.Shapes[0]), []yaku.ID{yaku.Pinfu}) {
		t.Errorf("shapes = %v", e.Shapes)
	}
	if got := yaku.FuList(c); !slices.Equal(got, []int{20}) {
		t.Errorf("fu = %v, want [20]", got)
	}
}

func Test_OpenDiscount(t *testing.T) {
	c := newContext(t, "789m1112z2z 123m 456m", southSeat)
	if c.IsClosed() {
		t.Fatal("hand with chi must be open")
	}
	e := yaku.Evaluate(c)

	want := map[yaku.ID]int{yaku.Yakuhai: 1, yaku.Honitsu: 2, yaku.Ittsu: 1}
	got := map[yaku.ID]int{}
	for _, ct := range e.Global {
		got[ct.ID] = ct.Han
	}
	for _, ct := range e.Shapes[0] {
		got[ct.ID] = ct.Han
	}
	if len(got) != len(want) {
		t.Fatalf("yaku = %v, want %v", got, want)
	}
	for id, han := range want {
		if got[id] != han {
			t.Errorf("yaku %d = %d han, want %d", id, got[id], han)
		}
	}
	if fu := yaku.FuList(c); !slices.Equal(fu, []int{40}) {
		t.Errorf("fu = %v, want [40]", fu)
	}
}

func Test_ClosedOnlyGating(t *testing.T) {
	s := southSeat
	s.Riichi = 1
	s.Ippatsu = true
	s.SelfDraw = true
	c := newContext(t, "234m56p88s7p 345s 678s", s)
	e := yaku.Evaluate(c)
	if got := ids(e.Global); !slices.Equal(got, []yaku.ID{yaku.Tanyao}) {
		t.Errorf("open hand global = %v, want only Tanyao", got)
	}
}

func Test_Yakuman(t *testing.T) {
	cases := []struct {
		hand  string
		want  []yaku.ID
		units int
	}{
		{"111z222z333z444z5z5z", []yaku.ID{yaku.Tsuuiisou, yaku.Daisuushii, yaku.SuuankouTanki}, 5},
		{"19m19p19s1234567z7z", []yaku.ID{yaku.Kokushi13}, 2},
		{"19m19p19s1234566z7z", []yaku.ID{yaku.Kokushi}, 1},
		{"1112345678999m5m", []yaku.ID{yaku.JunseiChuuren}, 2},
		{"1112234567899m9m", []yaku.ID{yaku.Chuuren}, 1},
		{"23m88s4m 555z 666z 777z", []yaku.ID{yaku.Daisangen}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.hand, func(t *testing.T) {
			hand, err := mahjong.ParseHand(tc.hand)
			if err != nil {
				t.Fatal(err)
			}
			win, err := mahjong.WinningTile(tc.hand)
			if err != nil {
				t.Fatal(err)
			}
			data := hu.NewHuDataFromHand(hand, win)
			decs, ok := data.CheckHu()
			if !ok {
				if tc.want != nil {
					t.Fatalf("%q should be complete", tc.hand)
				}
				return
			}
			e := yaku.Evaluate(yaku.NewContext(data, southSeat, decs))
			var got []yaku.ID
			for _, m := range e.Yakuman {
				got = append(got, m.ID)
			}
			if !slices.Equal(got, tc.want) {
				t.Errorf("yakuman = %v, want %v", got, tc.want)
			}
			if e.YakumanUnits() != tc.units {
				t.Errorf("units = %d, want %d", e.YakumanUnits(), tc.units)
			}
			if e.HasYakuman() && len(e.Global) != 0 {
				t.Error("regular yaku must be skipped once a yakuman fires")
			}
		})
	}
}

func Test_Fu(t *testing.T) {
	ron := southSeat
	tsumo := southSeat
	tsumo.SelfDraw = true
	eastRon := yaku.Situation{RoundWind: mahjong.TileEast, SeatWind: mahjong.TileEast}

	cases := []struct {
		name string
		hand string
		s    yaku.Situation
		want map[string]int // 拆牌 -> 符
	}{
		{"closed wait honor triplet", "13m456p789s55511z2m", ron, map[string]int{"123m 456p 789s 555z 11z": 50}},
		{"ron triplet counts as open", "11234m99m456p678s9m", ron, map[string]int{"234m 999m 456p 678s 11m": 40}},
		{"pinfu ron", "234m567p45678s88s3s", ron, map[string]int{"234m 567p 345s 678s 88s": 30}},
		{"pinfu tsumo drops self draw", "234m567p45678s88s3s", tsumo, map[string]int{"234m 567p 345s 678s 88s": 20}},
		{"seven pairs", "1122m3344p5566s7z7z", ron, map[string]int{"11m 22m 33p 44p 55s 66s 77z": 25}},
		{"kongs", "234m5p5p 9999m 11111z 345s", ron, map[string]int{"234m 55p": 70}},
		{"double wind pair", "999m234p45678s11z3s", eastRon, map[string]int{"999m 234p 345s 678s 11z": 50}},
		{"single wind pair", "999m234p45678s11z3s", ron, map[string]int{"999m 234p 345s 678s 11z": 40}},
		{"self draw", "999m234p46s789s33z5s", tsumo, map[string]int{"999m 234p 456s 789s 33z": 40}},
		{"edge wait", "999m234p567s33z12m3m", tsumo, map[string]int{"123m 999m 234p 567s 33z": 40}},
		{"two sided wait", "999m234p567s33z23m4m", tsumo, map[string]int{"234m 999m 234p 567s 33z": 30}},
		{"sequence before pair", "3345m234p567s999s3m", tsumo, map[string]int{"345m 234p 567s 999s 33m": 30}},
		{"per decomposition", "1122334455667m7m", tsumo, map[string]int{
			"11m 22m 33m 44m 55m 66m 77m": 25,
			"123m 123m 456m 456m 77m":     30,
			"123m 123m 567m 567m 44m":     20,
			"234m 234m 567m 567m 11m":     20,
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newContext(t, tc.hand, tc.s)
			fus := yaku.FuList(c)
			if len(fus) != len(c.Decompositions) || len(fus) != len(tc.want) {
				t.Fatalf("got %d fu for %d decompositions, want %d", len(fus), len(c.Decompositions), len(tc.want))
			}
			for i, d := range c.Decompositions {
				want, ok := tc.want[d.String()]
				if !ok {
					t.Errorf("unexpected decomposition %q", d.String())
					continue
				}
				if fus[i] != want {
					t.Errorf("fu[%d] (%s) = %d, want %d", i, d.String(), fus[i], want)
				}
			}
		})
	}
}

func Test_Qualifying(t *testing.T) {
	c := newContext(t, "111z222z333z444z5z5z", southSeat)
	e := yaku.Evaluate(c)
	if got := e.Qualifying(len(c.Decompositions)); !slices.Equal(got, []int{0}) {
		t.Errorf("qualifying = %v, want [0]", got)
	}
}

func Test_Label(t *testing.T) {
	cases := []struct {
		c    yaku.Contribution
		want string
	}{
		{yaku.Contribution{Name: "Pinfu", Han: 1}, "Pinfu (1 han)"},
		{yaku.Contribution{Name: "Daisangen", Han: 1, Yakuman: true}, "Daisangen"},
		{yaku.Contribution{Name: "Daisuushii", Han: 2, Yakuman: true}, "Daisuushii (2x yakuman)"},
	}
	for _, tc := range cases {
		if got := tc.c.Label(); got != tc.want {
			t.Errorf("Label() = %q, want %q", got, tc.want)
		}
	}
}
