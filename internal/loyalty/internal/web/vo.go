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

type Points struct {
	Points int64 `json:"points"`
	// DiscountValue 当前积分能抵扣的货币金额
	DiscountValue int64  `json:"discountValue"`
	CurrencyCode  string `json:"currencyCode"`
	Enabled       bool   `json:"enabled"`
}

type Settings struct {
	PointsPerCurrency float64 `json:"pointsPerCurrency"`
	RedemptionRate    float64 `json:"redemptionRate"`
	CurrencyCode      string  `json:"currencyCode"`
	Enabled           bool    `json:"enabled"`
}

type UpdateSettingsReq struct {
	PointsPerCurrency float64 `json:"pointsPerCurrency"`
	RedemptionRate    float64 `json:"redemptionRate"`
	CurrencyCode      string  `json:"currencyCode"`
	Enabled           bool    `json:"enabled"`
}

type AdjustPointsReq struct {
	Uid int64 `json:"uid"`
	// Action 取值 add/deduct/set
	Action string `json:"action"`
	Points int64  `json:"points"`
}
