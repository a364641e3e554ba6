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

package domain

// Point 每个用户一条, 余额永远不为负
type Point struct {
	Uid    int64
	Points int64
}

// Settings 全局唯一的积分配置。
// PointsPerCurrency 是消费多少货币得 1 积分,
// RedemptionRate 是抵扣 1 货币单位需要多少积分。
type Settings struct {
	PointsPerCurrency float64
	RedemptionRate    float64
	CurrencyCode      string
	Enabled           bool
}
