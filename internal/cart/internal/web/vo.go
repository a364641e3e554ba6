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

import "github.com/ecodeclub/eshop/internal/cart/internal/domain"

type CreateCartReq struct {
	CurrencyCode string `json:"currencyCode"`
	Total        int64  `json:"total"`
}

type CartIDReq struct {
	CartID int64 `json:"cartId"`
}

type PatchMetadataReq struct {
	CartID int64 `json:"cartId"`
	// Metadata 值为空串表示删除该键
	Metadata map[string]string `json:"metadata"`
}

type PromotionCodesReq struct {
	CartID int64    `json:"cartId"`
	Codes  []string `json:"codes"`
}

type CompleteCartReq struct {
	CartID    int64 `json:"cartId"`
	PaymentID int64 `json:"paymentId"`
}

type Cart struct {
	ID           int64             `json:"id"`
	CustomerID   int64             `json:"customerId"`
	CurrencyCode string            `json:"currencyCode"`
	Total        int64             `json:"total"`
	Metadata     map[string]string `json:"metadata"`
	Promotions   []Promotion       `json:"promotions"`
	Completed    bool              `json:"completed"`
}

type Promotion struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

type Order struct {
	ID int64  `json:"id"`
	SN string `json:"sn"`
}

func newCart(c domain.Cart) Cart {
	promotions := make([]Promotion, 0, len(c.Promotions))
	for _, p := range c.Promotions {
		promotions = append(promotions, Promotion{ID: p.ID, Code: p.Code})
	}
	return Cart{
		ID:           c.ID,
		CustomerID:   c.CustomerID,
		CurrencyCode: c.CurrencyCode,
		Total:        c.Total,
		Metadata:     c.Metadata,
		Promotions:   promotions,
		Completed:    c.Status == domain.StatusCompleted,
	}
}
