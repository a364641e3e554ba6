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

// MetadataKeyLoyaltyPromoID 积分抵扣优惠挂在购物车 metadata 的键
const MetadataKeyLoyaltyPromoID = "loyalty_promo_id"

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusActive    Status = 1
	StatusCompleted Status = 2
)

type AppliedPromotion struct {
	ID   int64
	Code string
}

type Cart struct {
	ID int64
	// CustomerID 0 表示游客购物车
	CustomerID   int64
	CurrencyCode string
	// Total 应付金额, 单位为分
	Total      int64
	Metadata   map[string]string
	Promotions []AppliedPromotion
	Status     Status
}

// LoyaltyPromotionID 返回 metadata 里记录的积分抵扣优惠, 0 表示没有
func (c Cart) LoyaltyPromotionID() int64 {
	id, ok := parseID(c.Metadata[MetadataKeyLoyaltyPromoID])
	if !ok {
		return 0
	}
	return id
}

// HasPromotion 判断某个优惠是否已经挂在购物车上
func (c Cart) HasPromotion(promotionID int64) bool {
	for _, p := range c.Promotions {
		if p.ID == promotionID {
			return true
		}
	}
	return false
}
