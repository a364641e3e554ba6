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

type OrderStatus uint8

func (s OrderStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusUnpaid 下单成功等待支付
	StatusUnpaid OrderStatus = 1
	// StatusCompleted 支付完成
	StatusCompleted OrderStatus = 2
	// StatusClosed 关闭, 不再参与积分结算
	StatusClosed OrderStatus = 3
)

type Order struct {
	ID int64
	SN string
	// BuyerID 0 表示游客订单
	BuyerID   int64
	CartID    int64
	PaymentID int64
	// Total 实付金额, 单位为分
	Total        int64
	CurrencyCode string
	Status       OrderStatus
}
