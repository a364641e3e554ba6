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

	"github.com/ecodeclub/eshop/internal/cart/internal/domain"
	"github.com/ecodeclub/eshop/internal/cart/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/carts")
	g.POST("/create", ginx.B[CreateCartReq](h.Create))
	g.POST("/detail", ginx.B[CartIDReq](h.Detail))
	g.POST("/metadata", ginx.B[PatchMetadataReq](h.PatchMetadata))
	g.POST("/promotions/attach", ginx.B[PromotionCodesReq](h.AttachPromotions))
	g.POST("/promotions/detach", ginx.B[PromotionCodesReq](h.DetachPromotions))
	g.POST("/complete", ginx.B[CompleteCartReq](h.Complete))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/carts")
	g.POST("/transfer", ginx.BS[CartIDReq](h.Transfer))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateCartReq) (ginx.Result, error) {
	c, err := h.svc.Create(ctx.Request.Context(), domain.Cart{
		CurrencyCode: req.CurrencyCode,
		Total:        req.Total,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCart(c)}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req CartIDReq) (ginx.Result, error) {
	c, err := h.svc.GetCart(ctx.Request.Context(), req.CartID)
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return cartNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newCart(c)}, nil
}

func (h *Handler) PatchMetadata(ctx *ginx.Context, req PatchMetadataReq) (ginx.Result, error) {
	c, err := h.svc.PatchMetadata(ctx.Request.Context(), req.CartID, req.Metadata)
	if err != nil {
		return h.toResult(err)
	}
	return ginx.Result{Data: newCart(c)}, nil
}

func (h *Handler) AttachPromotions(ctx *ginx.Context, req PromotionCodesReq) (ginx.Result, error) {
	c, err := h.svc.AttachPromotionCodes(ctx.Request.Context(), req.CartID, req.Codes)
	if err != nil {
		return h.toResult(err)
	}
	return ginx.Result{Data: newCart(c)}, nil
}

func (h *Handler) DetachPromotions(ctx *ginx.Context, req PromotionCodesReq) (ginx.Result, error) {
	c, err := h.svc.DetachPromotionCodes(ctx.Request.Context(), req.CartID, req.Codes)
	if err != nil {
		return h.toResult(err)
	}
	return ginx.Result{Data: newCart(c)}, nil
}

// Transfer 登录用户认领游客购物车
func (h *Handler) Transfer(ctx *ginx.Context, req CartIDReq, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.TransferCustomer(ctx.Request.Context(), req.CartID, sess.Claims().Uid)
	if err != nil {
		return h.toResult(err)
	}
	return ginx.Result{Data: newCart(c)}, nil
}

func (h *Handler) Complete(ctx *ginx.Context, req CompleteCartReq) (ginx.Result, error) {
	o, err := h.svc.CompleteCart(ctx.Request.Context(), req.CartID, req.PaymentID)
	if err != nil {
		// 校验器返回的业务错误原样透出给前端排查
		return h.toResult(err)
	}
	return ginx.Result{Data: Order{ID: o.ID, SN: o.SN}}, nil
}

func (h *Handler) toResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrCartNotFound):
		return cartNotFoundResult, err
	case errors.Is(err, service.ErrCartCompleted):
		return cartCompletedResult, err
	default:
		return systemErrorResult, err
	}
}
