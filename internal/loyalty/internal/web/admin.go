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
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/eshop/internal/loyalty/internal/domain"
	"github.com/ecodeclub/eshop/internal/loyalty/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.Service
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{svc: svc}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/loyalty")
	g.POST("/settings/update", ginx.B[UpdateSettingsReq](h.UpdateSettings))
	g.POST("/points/adjust", ginx.B[AdjustPointsReq](h.AdjustPoints))
}

func (h *AdminHandler) UpdateSettings(ctx *ginx.Context, req UpdateSettingsReq) (ginx.Result, error) {
	if req.PointsPerCurrency <= 0 || req.RedemptionRate <= 0 || req.CurrencyCode == "" {
		return invalidInputResult, fmt.Errorf("非法的积分配置: %+v", req)
	}
	settings, err := h.svc.UpdateSettings(ctx.Request.Context(), domain.Settings{
		PointsPerCurrency: req.PointsPerCurrency,
		RedemptionRate:    req.RedemptionRate,
		CurrencyCode:      req.CurrencyCode,
		Enabled:           req.Enabled,
	})
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

// AdjustPoints 运营侧手动调整积分, 支持 add/deduct/set 三种动作
func (h *AdminHandler) AdjustPoints(ctx *ginx.Context, req AdjustPointsReq) (ginx.Result, error) {
	err := h.adjust(ctx.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrInsufficientPoints):
		return insufficientPointsResult, err
	case errors.Is(err, service.ErrInvalidPoints):
		return invalidInputResult, err
	case err != nil:
		return systemErrorResult, err
	}
	points, err := h.svc.GetPoints(ctx.Request.Context(), req.Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Points{Points: points},
	}, nil
}

func (h *AdminHandler) adjust(ctx context.Context, req AdjustPointsReq) error {
	switch req.Action {
	case "add":
		return h.svc.AddPoints(ctx, req.Uid, req.Points)
	case "deduct":
		return h.svc.DeductPoints(ctx, req.Uid, req.Points)
	case "set":
		// set 转成一次差额变更, 运营侧低频操作, 不考虑并发写
		current, err := h.svc.GetPoints(ctx, req.Uid)
		if err != nil {
			return err
		}
		delta := req.Points - current
		if delta > 0 {
			return h.svc.AddPoints(ctx, req.Uid, delta)
		}
		if delta < 0 {
			return h.svc.DeductPoints(ctx, req.Uid, -delta)
		}
		return nil
	default:
		return fmt.Errorf("%w: 未知动作 %s", service.ErrInvalidPoints, req.Action)
	}
}
