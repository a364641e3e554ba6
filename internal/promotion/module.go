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

package promotion

import (
	"github.com/ecodeclub/eshop/internal/promotion/internal/domain"
	"github.com/ecodeclub/eshop/internal/promotion/internal/service"
)

type Module struct {
	Svc Service
}

type Service = service.Service
type Promotion = domain.Promotion
type ApplicationMethod = domain.ApplicationMethod
type Rule = domain.Rule
type Campaign = domain.Campaign
type Status = domain.Status

const (
	StatusDraft    = domain.StatusDraft
	StatusActive   = domain.StatusActive
	StatusInactive = domain.StatusInactive

	MethodTypeFixed      = domain.MethodTypeFixed
	MethodTypePercentage = domain.MethodTypePercentage
	TargetTypeOrder      = domain.TargetTypeOrder
	TargetTypeItems      = domain.TargetTypeItems

	RuleAttributeCustomerID = domain.RuleAttributeCustomerID
	RuleOperatorEq          = domain.RuleOperatorEq
)

var (
	ErrPromotionNotFound = service.ErrPromotionNotFound
	ErrDuplicatedCode    = service.ErrDuplicatedCode
)
