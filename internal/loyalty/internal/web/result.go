package web

import (
	"github.com/ecodeclub/eshop/internal/loyalty/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	insufficientPointsResult = ginx.Result{
		Code: errs.InsufficientPoints.Code,
		Msg:  errs.InsufficientPoints.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
)
