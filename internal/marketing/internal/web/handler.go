// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/eshop/internal/cart"
	"github.com/ecodeclub/eshop/internal/marketing/internal/service"
	"github.com/ecodeclub/eshop/internal/pkg/lockx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/carts")
	g.POST("/:id/loyalty-points", ginx.BS[ApplyLoyaltyPointsReq](h.ApplyLoyaltyPoints))
	g.DELETE("/:id/loyalty-points", ginx.S(h.RemoveLoyaltyPoints))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/carts")
	// 对账是幂等的, 游客购物车也要能触发
	g.POST("/:id/tier-promotion", ginx.W(h.ReconcileTierPromotions))
}

func (h *Handler) ApplyLoyaltyPoints(ctx *ginx.Context, req ApplyLoyaltyPointsReq, sess session.Session) (ginx.Result, error) {
	cartID, err := cartIDParam(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	c, err := h.svc.ApplyLoyaltyPoints(ctx.Request.Context(), cartID, sess.Claims().Uid, req.Amount)
	if err != nil {
		return loyaltyErrResult(err), err
	}
	return ginx.Result{Data: newCartResp(c)}, nil
}

func (h *Handler) RemoveLoyaltyPoints(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cartID, err := cartIDParam(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	c, err := h.svc.RemoveLoyaltyPoints(ctx.Request.Context(), cartID, sess.Claims().Uid)
	if err != nil {
		return loyaltyErrResult(err), err
	}
	return ginx.Result{Data: newCartResp(c)}, nil
}

func (h *Handler) ReconcileTierPromotions(ctx *ginx.Context) (ginx.Result, error) {
	cartID, err := cartIDParam(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	res, err := h.svc.ReconcileTierPromotions(ctx.Request.Context(), cartID)
	if err != nil {
		if errors.Is(err, lockx.ErrLockTimeout) {
			return lockTimeoutResult, err
		}
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReconcileResp{
			Added:          res.Added,
			Removed:        res.Removed,
			LoyaltyRemoved: res.LoyaltyRemoved,
		},
	}, nil
}

func cartIDParam(ctx *ginx.Context) (int64, error) {
	return ctx.Param("id").AsInt64()
}

func loyaltyErrResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrNotLoggedIn):
		return notLoggedInResult
	case errors.Is(err, service.ErrNoAccount):
		return noAccountResult
	case errors.Is(err, service.ErrAlreadyApplied):
		return alreadyAppliedResult
	case errors.Is(err, service.ErrNoLoyaltyPromotion):
		return noLoyaltyPromotionResult
	case errors.Is(err, service.ErrInvalidAmount):
		return invalidAmountResult
	case errors.Is(err, service.ErrInsufficientPoints):
		return insufficientPointsResult
	case errors.Is(err, lockx.ErrLockTimeout):
		return lockTimeoutResult
	default:
		return systemErrorResult
	}
}

func newCartResp(c cart.Cart) CartResp {
	return CartResp{
		ID:           c.ID,
		CustomerID:   c.CustomerID,
		CurrencyCode: c.CurrencyCode,
		Total:        c.Total,
		Metadata:     c.Metadata,
		Promotions: slice.Map(c.Promotions, func(idx int, src cart.AppliedPromotion) Promotion {
			return Promotion{
				ID:   src.ID,
				Code: src.Code,
			}
		}),
	}
}
