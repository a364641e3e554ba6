package web

import (
	"github.com/ecodeclub/eshop/internal/marketing/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notLoggedInResult = ginx.Result{
		Code: errs.NotLoggedIn.Code,
		Msg:  errs.NotLoggedIn.Msg,
	}
	noAccountResult = ginx.Result{
		Code: errs.NoAccount.Code,
		Msg:  errs.NoAccount.Msg,
	}
	alreadyAppliedResult = ginx.Result{
		Code: errs.AlreadyApplied.Code,
		Msg:  errs.AlreadyApplied.Msg,
	}
	noLoyaltyPromotionResult = ginx.Result{
		Code: errs.NoLoyaltyPromotion.Code,
		Msg:  errs.NoLoyaltyPromotion.Msg,
	}
	invalidAmountResult = ginx.Result{
		Code: errs.InvalidAmount.Code,
		Msg:  errs.InvalidAmount.Msg,
	}
	insufficientPointsResult = ginx.Result{
		Code: errs.InsufficientPoints.Code,
		Msg:  errs.InsufficientPoints.Msg,
	}
	lockTimeoutResult = ginx.Result{
		Code: errs.LockTimeout.Code,
		Msg:  errs.LockTimeout.Msg,
	}
)
