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

package marketing

import (
	"github.com/ecodeclub/eshop/internal/marketing/internal/domain"
	"github.com/ecodeclub/eshop/internal/marketing/internal/event"
	"github.com/ecodeclub/eshop/internal/marketing/internal/event/consumer"
	"github.com/ecodeclub/eshop/internal/marketing/internal/service"
	"github.com/ecodeclub/eshop/internal/marketing/internal/web"
)

type Module struct {
	Svc          Service
	Hdl          *Handler
	Guard        *CheckoutGuard
	UpdatedC     *consumer.CartUpdatedConsumer
	TransferredC *consumer.CartTransferredConsumer
	OrderC       *consumer.OrderEventConsumer
	PaymentC     *consumer.PaymentEventConsumer
}

type Service = service.Service
type Handler = web.Handler
type CheckoutGuard = service.CheckoutGuard
type ReconcileResult = domain.ReconcileResult

type PaymentCapturedEvent = event.PaymentCapturedEvent

const PaymentCapturedEventName = event.PaymentCapturedEventName

var (
	ErrNotLoggedIn        = service.ErrNotLoggedIn
	ErrNoAccount          = service.ErrNoAccount
	ErrAlreadyApplied     = service.ErrAlreadyApplied
	ErrNoLoyaltyPromotion = service.ErrNoLoyaltyPromotion
	ErrInvalidAmount      = service.ErrInvalidAmount
	ErrInsufficientPoints = service.ErrInsufficientPoints
	ErrCheckoutValidation = service.ErrCheckoutValidation
)
