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

package event

const PointEventName = "loyalty_point_events"

const (
	ActionAdd    = "add"
	ActionDeduct = "deduct"
)

// PointEvent Key 用于去重, 同一个 Key 只会变更一次积分
type PointEvent struct {
	Key    string `json:"key"`
	Uid    int64  `json:"uid"`
	Action string `json:"action"`
	Points int64  `json:"points"`
	Biz    string `json:"biz"`
	BizId  int64  `json:"bizId"`
}
