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

type Customer struct {
	ID        int64
	Email     string
	FirstName string
	// HasAccount false 表示游客下单留下的档案
	HasAccount bool
	// TierID 0 表示未分配等级
	TierID int64
	// TotalSpend 累计消费金额, 单位为分, 驱动等级升级
	TotalSpend int64
}

// Tier 会员等级, 每个等级挂一个自动优惠
type Tier struct {
	ID          int64
	Name        string
	PromotionID int64
	// MinSpend 累计消费达到该金额自动升到本等级, 0 表示只能手工分配
	MinSpend int64
}
