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

type PurposeKind uint8

const (
	// KindNone 普通优惠, 营销侧不管
	KindNone PurposeKind = iota
	// KindTier 会员等级自动优惠
	KindTier
	// KindLoyalty 积分抵扣优惠
	KindLoyalty
)

// PromotionPurpose 标记购物车上某个优惠在营销侧的用途。
// 等级优惠靠等级表里的 promotion_id 识别, 积分优惠靠购物车 metadata 识别。
type PromotionPurpose struct {
	Kind PurposeKind
	// TierID 只在 Kind == KindTier 时有意义
	TierID int64
}

func PurposeNone() PromotionPurpose {
	return PromotionPurpose{Kind: KindNone}
}

func PurposeTier(tierID int64) PromotionPurpose {
	return PromotionPurpose{Kind: KindTier, TierID: tierID}
}

func PurposeLoyalty() PromotionPurpose {
	return PromotionPurpose{Kind: KindLoyalty}
}

// ReconcileResult 对账一次购物车之后的变更清单
type ReconcileResult struct {
	// Added 新挂上的优惠码
	Added []string
	// Removed 摘掉的优惠码
	Removed []string
	// LoyaltyRemoved 积分抵扣优惠因为客户变更被摘掉
	LoyaltyRemoved bool
}

func (r ReconcileResult) Changed() bool {
	return len(r.Added) > 0 || len(r.Removed) > 0 || r.LoyaltyRemoved
}
