package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

func Test_TileInfo(t *testing.T) {
	cases := []struct {
		tile     mahjong.Tile
		name     string
		terminal bool
		honor    bool
		green    bool
	}{
		{0, "1m", true, false, false},
		{4, "5m", false, false, false},
		{17, "9p", true, false, false},
		{19, "2s", false, false, true},
		{22, "5s", false, false, false},
		{mahjong.TileEast, "East", false, true, false},
		{mahjong.TileGreen, "Green", false, true, true},
	}
	for i, tc := range cases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			if got := tc.tile.Name(); got != tc.name {
				t.Errorf("Name() = %q, want %q", got, tc.name)
			}
			if got := tc.tile.IsTerminal(); got != tc.terminal {
				t.Errorf("%v IsTerminal() = %v", tc.tile, got)
			}
			if got := tc.tile.IsHonor(); got != tc.honor {
				t.Errorf("%v IsHonor() = %v", tc.tile, got)
			}
			if got := tc.tile.IsGreen(); got != tc.green {
				t.Errorf("%v IsGreen() = %v", tc.tile, got)
			}
		})
	}
}

func Test_SequenceStart(t *testing.T) {
	for _, tile := range []mahjong.Tile{0, 6, 9, 15, 18, 24} {
		if !tile.CanStartSequence() {
			t.Errorf("%v should start a sequence", tile)
		}
	}
	for _, tile := range []mahjong.Tile{7, 8, 16, 17, 25, 26, 27, 33} {
		if tile.CanStartSequence() {
			t.Errorf("%v should not start a sequence", tile)
		}
	}
}

func Test_CalledGroup(t *testing.T) {
	cases := []struct {
		notation string
		ok       bool
		kind     mahjong.EGroupType
	}{
		{"789m", true, mahjong.GroupSequence},
		{"555z", true, mahjong.GroupTriplet},
		{"1111p", true, mahjong.GroupKon},
		{"11111p", true, mahjong.GroupAnKon},
		{"891m", false, 0},
		{"12m", false, 0},
		{"1m2p3s", false, 0},
		{"123z", false, 0},
	}
	for _, tc := range cases {
		t.Run(tc.notation, func(t *testing.T) {
			tiles, err := mahjong.ParseTiles(tc.notation)
			if err != nil {
				t.Fatal(err)
			}
			g, ok := mahjong.NewCalledGroup(tiles)
			if ok != tc.ok {
				t.Fatalf("NewCalledGroup(%s) ok = %v, want %v", tc.notation, ok, tc.ok)
			}
			if ok && g.Type != tc.kind {
				t.Errorf("NewCalledGroup(%s) = %v, want %v", tc.notation, g.Type, tc.kind)
			}
			if ok && g.String() != tc.notation {
				t.Errorf("String() = %q, want %q", g.String(), tc.notation)
			}
		})
	}
}

func Test_WindTile(t *testing.T) {
	if mahjong.WindTile(1) != mahjong.TileEast || mahjong.WindTile(4) != mahjong.TileNorth {
		t.Error("WindTile mapping broken")
	}
	if mahjong.WindTile(0) != mahjong.TileNull || mahjong.WindTile(5) != mahjong.TileNull {
		t.Error("WindTile should reject out of range winds")
	}
}

func Test_TilesName(t *testing.T) {
	tiles, err := mahjong.ParseTiles("19m57z")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := mahjong.TilesName(tiles), "1m, 9m, White, Red"; got != want {
		t.Errorf("TilesName = %q, want %q", got, want)
	}
	if got := mahjong.TilesName(nil); got != "" {
		t.Errorf("TilesName(nil) = %q, want empty", got)
	}
}
