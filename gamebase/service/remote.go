package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime/debug"

	"github.com/kevin-chtw/tw_riichi/gamebase/score"
	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/topfreegames/pitaya/v3/pkg/component"
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	ErrInvalidRequest = errors.New("invalid request type")
	ErrInternal       = errors.New("internal error")
)

type handler func(context.Context, proto.Message) (proto.Message, error)

// Remote 听牌与算分服务
type Remote struct {
	component.Base
	calc     *score.Calculator
	handlers map[string]handler
}

// NewRemote 创建算分服务
func NewRemote(calc *score.Calculator) *Remote {
	return &Remote{
		calc:     calc,
		handlers: make(map[string]handler),
	}
}

// Init 组件初始化
func (m *Remote) Init() {
	m.handlers[utils.TypeUrl(&wrapperspb.StringValue{})] = m.handleReady
	m.handlers[utils.TypeUrl(&structpb.Struct{})] = m.handleScore
}

// Message 按 Any 的类型地址分发
func (m *Remote) Message(ctx context.Context, req *anypb.Any) (ack *anypb.Any, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Log.Errorf("panic recovered %s\n %s", r, string(debug.Stack()))
			ack, err = nil, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()
	if req == nil {
		return nil, fmt.Errorf("%w: nil request", ErrInvalidRequest)
	}
	logger.Log.Debugf("riichi request %s", req.GetTypeUrl())

	h, ok := m.handlers[req.GetTypeUrl()]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRequest, req.GetTypeUrl())
	}
	msg, err := req.UnmarshalNew()
	if err != nil {
		return nil, err
	}
	rsp, err := h(ctx, msg)
	if err != nil {
		return nil, err
	}
	return anypb.New(rsp)
}

// Ready 听牌查询
func (m *Remote) Ready(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	tiles, err := m.calc.Ready(req.GetValue())
	if err != nil {
		return nil, err
	}
	kinds := make([]any, len(tiles))
	for i, t := range tiles {
		kinds[i] = int(t)
	}
	return structpb.NewStruct(map[string]any{
		"tiles": mahjong.FormatTiles(tiles),
		"kinds": kinds,
	})
}

// Score 算分查询
func (m *Remote) Score(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	hand, opts, err := parseScoreRequest(req)
	if err != nil {
		return nil, err
	}
	res, err := m.calc.Calculate(hand, opts)
	if err != nil {
		return nil, err
	}
	labels := make([]any, len(res.Labels))
	for i, l := range res.Labels {
		labels[i] = l
	}
	return structpb.NewStruct(map[string]any{
		"win":           res.Win,
		"fu":            res.Fu,
		"han":           res.Han,
		"yakuman":       res.Yakuman,
		"tier":          res.Tier,
		"value":         res.Value,
		"labels":        labels,
		"decomposition": res.Decomposition,
	})
}

func (m *Remote) handleReady(ctx context.Context, msg proto.Message) (proto.Message, error) {
	return m.Ready(ctx, msg.(*wrapperspb.StringValue))
}

func (m *Remote) handleScore(ctx context.Context, msg proto.Message) (proto.Message, error) {
	return m.Score(ctx, msg.(*structpb.Struct))
}

// scoreRequest 按字段类型读取请求，类型不符或数值非整数时记录第一个错误
type scoreRequest struct {
	fields map[string]*structpb.Value
	err    error
}

func (r *scoreRequest) fail(key string, v *structpb.Value) {
	if r.err == nil {
		r.err = fmt.Errorf("%w: field %s = %v", ErrInvalidRequest, key, v.AsInterface())
	}
}

func (r *scoreRequest) str(key string) string {
	v, ok := r.fields[key]
	if !ok {
		return ""
	}
	if _, ok := v.GetKind().(*structpb.Value_StringValue); !ok {
		r.fail(key, v)
	}
	return v.GetStringValue()
}

func (r *scoreRequest) num(key string) int {
	v, ok := r.fields[key]
	if !ok {
		return 0
	}
	n := v.GetNumberValue()
	if _, ok := v.GetKind().(*structpb.Value_NumberValue); !ok || n != math.Trunc(n) {
		r.fail(key, v)
	}
	return int(n)
}

func (r *scoreRequest) flag(key string) bool {
	v, ok := r.fields[key]
	if !ok {
		return false
	}
	if _, ok := v.GetKind().(*structpb.Value_BoolValue); !ok {
		r.fail(key, v)
	}
	return v.GetBoolValue()
}

func parseScoreRequest(req *structpb.Struct) (string, score.Options, error) {
	r := &scoreRequest{fields: req.GetFields()}
	hand := r.str("hand")
	opts := score.Options{
		RoundWind: r.num("round_wind"),
		SeatWind:  r.num("seat_wind"),
		SelfDraw:  r.flag("self_draw"),
		Riichi:    r.num("riichi"),
		Dora:      r.num("dora"),
		Ippatsu:   r.flag("ippatsu"),
		LastTile:  r.flag("last_tile"),
		AfterKong: r.flag("after_kong"),
		RobKong:   r.flag("robbing_kong"),
		Heaven:    r.flag("heaven"),
		Earth:     r.flag("earth"),
	}
	return hand, opts, r.err
}
