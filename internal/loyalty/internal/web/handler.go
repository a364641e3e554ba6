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
	"github.com/ecodeclub/eshop/internal/loyalty/internal/service"
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

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/loyalty")
	g.POST("/points/detail", ginx.S(h.QueryPoints))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/loyalty")
	g.GET("/settings", ginx.W(h.QuerySettings))
}

// QueryPoints 返回积分余额和按当前兑换率折算出来的抵扣金额
func (h *Handler) QueryPoints(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	points, err := h.svc.GetPoints(ctx.Request.Context(), uid)
	if err != nil {
		return systemErrorResult, err
	}
	discount, err := h.svc.CalculateDiscountForPoints(ctx.Request.Context(), points)
	if err != nil {
		return systemErrorResult, err
	}
	settings, err := h.svc.GetSettings(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Points{
			Points:        points,
			DiscountValue: discount,
			CurrencyCode:  settings.CurrencyCode,
			Enabled:       settings.Enabled,
		},
	}, nil
}

func (h *Handler) QuerySettings(ctx *ginx.Context) (ginx.Result, error) {
	settings, err := h.svc.GetSettings(ctx.Request.Context())
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Settings{
			PointsPerCurrency: settings.PointsPerCurrency,
			RedemptionRate:    settings.RedemptionRate,
			CurrencyCode:      settings.CurrencyCode,
			Enabled:           settings.Enabled,
		},
	}, nil
}
