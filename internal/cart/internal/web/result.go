package web

import (
	"github.com/ecodeclub/eshop/internal/cart/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	cartNotFoundResult = ginx.Result{
		Code: errs.CartNotFound.Code,
		Msg:  errs.CartNotFound.Msg,
	}
	cartCompletedResult = ginx.Result{
		Code: errs.CartCompleted.Code,
		Msg:  errs.CartCompleted.Msg,
	}
)
