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

// ApplyLoyaltyPointsReq Amount 为 0 表示按余额抵满
type ApplyLoyaltyPointsReq struct {
	Amount int64 `json:"amount,omitempty"`
}

type CartResp struct {
	ID           int64             `json:"id"`
	CustomerID   int64             `json:"customerId,omitempty"`
	CurrencyCode string            `json:"currencyCode"`
	Total        int64             `json:"total"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Promotions   []Promotion       `json:"promotions,omitempty"`
}

type Promotion struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type ReconcileResp struct {
	Added          []string `json:"added,omitempty"`
	Removed        []string `json:"removed,omitempty"`
	LoyaltyRemoved bool     `json:"loyaltyRemoved,omitempty"`
}
