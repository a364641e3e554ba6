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

package errs

var (
	SystemError        = ErrorCode{Code: 519001, Msg: "系统错误"}
	NotLoggedIn        = ErrorCode{Code: 519002, Msg: "请先登录"}
	NoAccount          = ErrorCode{Code: 519003, Msg: "游客不能使用积分"}
	AlreadyApplied     = ErrorCode{Code: 519004, Msg: "已经使用过积分抵扣"}
	NoLoyaltyPromotion = ErrorCode{Code: 519005, Msg: "没有使用积分抵扣"}
	InvalidAmount      = ErrorCode{Code: 519006, Msg: "抵扣金额非法"}
	InsufficientPoints = ErrorCode{Code: 519007, Msg: "积分不足"}
	LockTimeout        = ErrorCode{Code: 519008, Msg: "操作太频繁, 请稍后重试"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
