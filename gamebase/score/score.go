package score

import (
	"errors"
	"fmt"

	"github.com/kevin-chtw/tw_riichi/gamebase/hu"
	"github.com/kevin-chtw/tw_riichi/gamebase/yaku"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

var (
	ErrWindOutOfRange   = errors.New("wind out of range")
	ErrRiichiOutOfRange = errors.New("riichi out of range")
	ErrNegativeDora     = errors.New("negative dora")
)

// Options 算分请求的场况，风位 1..4 对应东南西北
type Options struct {
	RoundWind int
	SeatWind  int
	SelfDraw  bool
	Riichi    int
	Dora      int
	Ippatsu   bool
	LastTile  bool
	AfterKong bool
	RobKong   bool
	Heaven    bool
	Earth     bool
}

func (o *Options) situation() (yaku.Situation, error) {
	round, seat := mahjong.WindTile(o.RoundWind), mahjong.WindTile(o.SeatWind)
	if round == mahjong.TileNull {
		return yaku.Situation{}, fmt.Errorf("%w: round wind %d", ErrWindOutOfRange, o.RoundWind)
	}
	if seat == mahjong.TileNull {
		return yaku.Situation{}, fmt.Errorf("%w: seat wind %d", ErrWindOutOfRange, o.SeatWind)
	}
	if o.Riichi < 0 || o.Riichi > 2 {
		return yaku.Situation{}, fmt.Errorf("%w: %d", ErrRiichiOutOfRange, o.Riichi)
	}
	if o.Dora < 0 {
		return yaku.Situation{}, fmt.Errorf("%w: %d", ErrNegativeDora, o.Dora)
	}
	return yaku.Situation{
		RoundWind: round,
		SeatWind:  seat,
		SelfDraw:  o.SelfDraw,
		Riichi:    o.Riichi,
		Ippatsu:   o.Ippatsu,
		LastTile:  o.LastTile,
		AfterKong: o.AfterKong,
		RobKong:   o.RobKong,
		Heaven:    o.Heaven,
		Earth:     o.Earth,
	}, nil
}

// Calculator 无状态，可并发使用
type Calculator struct {
	rule       *Rule
	scorelator *scorelator
}

func NewCalculator(rule *Rule) *Calculator {
	if rule == nil {
		rule = DefaultRule()
	}
	return &Calculator{
		rule:       rule,
		scorelator: newScorelator(rule),
	}
}

// Calculate 和了牌为暗手写法中最后单独书写的一张
func (c *Calculator) Calculate(hand string, opts Options) (*Result, error) {
	parsed, err := mahjong.ParseHand(hand)
	if err != nil {
		return nil, err
	}
	win, err := mahjong.WinningTile(hand)
	if err != nil {
		return nil, err
	}
	situation, err := opts.situation()
	if err != nil {
		return nil, err
	}

	data := hu.NewHuDataFromHand(parsed, win)
	decs, ok := data.CheckHu()
	if !ok {
		logger.Log.Debugf("not a winning hand: %s", mahjong.TilesName(parsed.Tiles))
		return &Result{}, nil
	}

	ctx := yaku.NewContext(data, situation, decs)
	res := c.scorelator.resolve(yaku.Evaluate(ctx), yaku.FuList(ctx), decs, opts.Dora)
	logger.Log.Debugf("%s: %d decompositions, picked %q, %d han %d fu %d", hand, len(decs), res.Decomposition, res.Han, res.Fu, res.Value)
	return res, nil
}

// Ready 听牌，副露不合法或暗手为空时为空
func (c *Calculator) Ready(hand string) ([]mahjong.Tile, error) {
	parsed, err := mahjong.ParseHand(hand)
	if err != nil {
		return nil, err
	}
	return hu.NewHuDataFromHand(parsed, mahjong.TileNull).CheckTing(), nil
}
