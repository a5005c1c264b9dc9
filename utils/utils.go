package utils

import (
	"github.com/topfreegames/pitaya/v3/pkg/logger"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/anypb"
)

// TypeUrl 消息在 Any 中的类型地址，用作分发键
func TypeUrl(src proto.Message) string {
	return "type.googleapis.com/" + string(proto.MessageName(src))
}

// ToAny 打包失败时记录日志并返回 nil
func ToAny(msg proto.Message) *anypb.Any {
	data, err := anypb.New(msg)
	if err != nil {
		logger.Log.Error(err)
		return nil
	}
	return data
}
