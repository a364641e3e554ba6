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

package order

import (
	"github.com/ecodeclub/eshop/internal/order/internal/domain"
	"github.com/ecodeclub/eshop/internal/order/internal/event"
	"github.com/ecodeclub/eshop/internal/order/internal/service"
)

type Module struct {
	Svc Service
}

type Service = service.Service
type Order = domain.Order
type OrderStatus = domain.OrderStatus

type OrderPlacedEvent = event.OrderPlacedEvent

const (
	StatusUnpaid    = domain.StatusUnpaid
	StatusCompleted = domain.StatusCompleted
	StatusClosed    = domain.StatusClosed

	OrderPlacedEventName = event.OrderPlacedEventName
)

var ErrOrderNotFound = service.ErrOrderNotFound
