package processor

import (
	"errors"
	"fmt"
)

// 定义基础错误类型
var (
	ErrInvalidInput = errors.New("输入文本无效")
)

// ParseError 包含详细错误信息的自定义错误
type ParseError struct {
	ParseUUID string
	Op        string
	BaseErr   error
	Detail    string
}

func (e *ParseError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s (操作:%s, UUID:%s): %s", e.BaseErr, e.Op, e.ParseUUID, e.Detail)
	}
	return fmt.Sprintf("%s (操作:%s, UUID:%s)", e.BaseErr, e.Op, e.ParseUUID)
}

func (e *ParseError) Unwrap() error {
	return e.BaseErr
}

// Is 实现 errors.Is 接口以支持错误比较
func (e *ParseError) Is(target error) bool {
	return errors.Is(e.BaseErr, target)
}

// NewInvalidInputError 构造输入前置条件违规错误
func NewInvalidInputError(uuid, detail string) error {
	return &ParseError{
		ParseUUID: uuid,
		Op:        "parse",
		BaseErr:   ErrInvalidInput,
		Detail:    detail,
	}
}
