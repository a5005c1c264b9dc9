package score_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/gamebase/score"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThirteenOrphansDoubleYakuman(t *testing.T) {
	calc := score.NewCalculator(nil)
	res, err := calc.Calculate("19m19s19p1234567z7z", score.Options{
		SeatWind:  1,
		RoundWind: 2,
		Dora:      3,
		LastTile:  true,
	})
	require.NoError(t, err)
	require.True(t, res.Win)

	assert.Equal(t, "Double Yakuman", res.Tier)
	assert.Equal(t, 26, res.Han)
	assert.Equal(t, 16000, res.Value)
	assert.Equal(t, 25, res.Fu)
	assert.Equal(t, 2, res.Yakuman)
	assert.Contains(t, res.Labels, "Kokushi Musou 13-wait (2x yakuman)")
	for _, l := range res.Labels {
		assert.NotContains(t, l, "Dora")
	}
}

func TestSevenPairsAgainstRyanpeikou(t *testing.T) {
	calc := score.NewCalculator(nil)
	res, err := calc.Calculate("1122334455667m7m", score.Options{RoundWind: 1, SeatWind: 2, SelfDraw: true})
	require.NoError(t, err)
	require.True(t, res.Win)

	// 两杯口平和形 20 符 11 番，高于七对 25 符 9 番
	assert.Equal(t, 11, res.Han)
	assert.Equal(t, 20, res.Fu)
	assert.Equal(t, "Sanbaiman", res.Tier)
	assert.Equal(t, 6000, res.Value)
	assert.Equal(t, "123m 123m 567m 567m 44m", res.Decomposition)
	assert.Equal(t, []string{
		"Menzen Tsumo (1 han)",
		"Chinitsu (6 han)",
		"Pinfu (1 han)",
		"Ryanpeikou (3 han)",
	}, res.Labels)
}

func TestBestDecompositionWithManyDora(t *testing.T) {
	calc := score.NewCalculator(nil)
	for _, dora := range []int{0, 1100, 5000} {
		res, err := calc.Calculate("1122334455667m7m", score.Options{RoundWind: 1, SeatWind: 2, SelfDraw: true, Dora: dora})
		require.NoError(t, err)
		require.True(t, res.Win)

		assert.Equal(t, "123m 123m 567m 567m 44m", res.Decomposition, "dora %d", dora)
		assert.Equal(t, 11+dora, res.Han)
		assert.Equal(t, 20, res.Fu)
	}
}

func TestSevenPairsPureSuitTsumo(t *testing.T) {
	calc := score.NewCalculator(nil)
	res, err := calc.Calculate("1122445577889m9m", score.Options{RoundWind: 1, SeatWind: 2, SelfDraw: true})
	require.NoError(t, err)
	require.True(t, res.Win)

	assert.Equal(t, 9, res.Han)
	assert.Equal(t, 25, res.Fu)
	assert.Equal(t, "Baiman", res.Tier)
	assert.Equal(t, 4000, res.Value)
	assert.Equal(t, []string{"Menzen Tsumo (1 han)", "Chinitsu (6 han)", "Chiitoitsu (2 han)"}, res.Labels)
}

func TestTiers(t *testing.T) {
	cases := []struct {
		name  string
		hand  string
		opts  score.Options
		han   int
		fu    int
		tier  string
		value int
	}{
		{
			name: "riichi pinfu tanyao",
			hand: "234m567p45678s88s3s",
			opts: score.Options{RoundWind: 1, SeatWind: 2, Riichi: 1},
			han:  3, fu: 30, tier: "", value: 960,
		},
		{
			name: "capped at mangan",
			hand: "13m456p789s55511z2m",
			opts: score.Options{RoundWind: 1, SeatWind: 2, Riichi: 1, Dora: 2},
			han:  4, fu: 50, tier: "Mangan", value: 2000,
		},
		{
			name: "open honitsu ittsu",
			hand: "789m1112z2z 123m 456m",
			opts: score.Options{RoundWind: 1, SeatWind: 2},
			han:  4, fu: 40, tier: "Mangan", value: 2000,
		},
		{
			name: "kazoe with dora",
			hand: "234m567p45678s88s3s",
			opts: score.Options{RoundWind: 1, SeatWind: 2, Riichi: 1, Dora: 40},
			han:  43, fu: 30, tier: "Kazoe Yakuman", value: 8000,
		},
	}
	calc := score.NewCalculator(nil)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := calc.Calculate(tc.hand, tc.opts)
			require.NoError(t, err)
			require.True(t, res.Win)
			assert.Equal(t, tc.han, res.Han)
			assert.Equal(t, tc.fu, res.Fu)
			assert.Equal(t, tc.tier, res.Tier)
			assert.Equal(t, tc.value, res.Value)
		})
	}
}

func TestDoraLabel(t *testing.T) {
	res, err := score.NewCalculator(nil).Calculate("13m456p789s55511z2m", score.Options{RoundWind: 1, SeatWind: 2, Riichi: 1, Dora: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"Riichi (1 han)", "Yakuhai (1 han)", "Dora 2"}, res.Labels)
}

func TestNotAWin(t *testing.T) {
	calc := score.NewCalculator(nil)
	res, err := calc.Calculate("13579m2468p1357s9s", score.Options{RoundWind: 1, SeatWind: 1})
	require.NoError(t, err)
	assert.False(t, res.Win)
	assert.Zero(t, res.Value)

	res, err = calc.Calculate("123m44p5p 555z 679s 789m", score.Options{RoundWind: 1, SeatWind: 1})
	require.NoError(t, err)
	assert.False(t, res.Win)
}

func TestCalculateErrors(t *testing.T) {
	calc := score.NewCalculator(nil)
	valid := score.Options{RoundWind: 1, SeatWind: 2}
	cases := []struct {
		name string
		hand string
		opts score.Options
		err  error
	}{
		{"bad notation", "12x3m", valid, mahjong.ErrInvalidNotation},
		{"no winning tile", "11223344556677m", valid, mahjong.ErrNoWinningTile},
		{"round wind", "1122445577889m9m", score.Options{RoundWind: 0, SeatWind: 1}, score.ErrWindOutOfRange},
		{"seat wind", "1122445577889m9m", score.Options{RoundWind: 1, SeatWind: 5}, score.ErrWindOutOfRange},
		{"riichi", "1122445577889m9m", score.Options{RoundWind: 1, SeatWind: 1, Riichi: 3}, score.ErrRiichiOutOfRange},
		{"dora", "1122445577889m9m", score.Options{RoundWind: 1, SeatWind: 1, Dora: -1}, score.ErrNegativeDora},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := calc.Calculate(tc.hand, tc.opts)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestDeterministic(t *testing.T) {
	calc := score.NewCalculator(nil)
	opts := score.Options{RoundWind: 1, SeatWind: 2, SelfDraw: true}
	first, err := calc.Calculate("1122334455667m7m", opts)
	require.NoError(t, err)
	for range 5 {
		again, err := calc.Calculate("1122334455667m7m", opts)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestReady(t *testing.T) {
	calc := score.NewCalculator(nil)
	tiles, err := calc.Ready("123m456p111s789s5z")
	require.NoError(t, err)
	assert.Equal(t, "5z", mahjong.FormatTiles(tiles))

	tiles, err = calc.Ready("13579m2468p1357s")
	require.NoError(t, err)
	assert.Empty(t, tiles)

	// 暗手为空时没有听牌
	tiles, err = calc.Ready(" 123m 456m 789m 111z")
	require.NoError(t, err)
	assert.Empty(t, tiles)

	_, err = calc.Ready("123q")
	assert.ErrorIs(t, err, mahjong.ErrInvalidNotation)
}
