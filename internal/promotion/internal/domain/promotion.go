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

import "strconv"

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	StatusDraft    Status = 1
	StatusActive   Status = 2
	StatusInactive Status = 3
)

const (
	MethodTypeFixed      = "fixed"
	MethodTypePercentage = "percentage"

	TargetTypeOrder = "order"
	TargetTypeItems = "items"
)

const (
	RuleAttributeCustomerID = "customer_id"
	RuleOperatorEq          = "eq"
)

// ApplicationMethod 描述优惠怎么作用到购物车上
type ApplicationMethod struct {
	Type       string
	TargetType string
	// Value 固定金额时单位为分, 百分比时取 0-100
	Value        int64
	CurrencyCode string
}

// Rule 全部满足时优惠才可用
type Rule struct {
	Attribute string
	Operator  string
	Values    []string
}

type Campaign struct {
	Name string
	// UsageLimit 0 表示不限次数
	UsageLimit int64
}

type Promotion struct {
	ID          int64
	Code        string
	Status      Status
	IsAutomatic bool
	Method      ApplicationMethod
	Rules       []Rule
	Campaign    Campaign
}

// MatchesCustomer 判断 customer_id 规则是否放行这个用户。
// 没有 customer_id 规则时视为对所有人开放。
func (p Promotion) MatchesCustomer(customerID int64) bool {
	target := strconv.FormatInt(customerID, 10)
	for _, r := range p.Rules {
		if r.Attribute != RuleAttributeCustomerID || r.Operator != RuleOperatorEq {
			continue
		}
		matched := false
		for _, v := range r.Values {
			if v == target {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
