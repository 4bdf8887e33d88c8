// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package erm

import (
	"errors"
	"regexp"

	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

var transientStatusCodes = []int{429, 500, 501, 502, 503, 504, 505, 506, 507, 508, 510, 511}

// statusCodePattern a transient HTTP status code at the start of the message or after "StatusCode"
var statusCodePattern = regexp.MustCompile(`(?i)(?:^|status ?code:?\s*)(429|50[0-8]|51[01])\b`)

var transientErrorCodes = []string{
	"InternalError",
	"InternalFailure",
	"RequestLimitExceeded",
	"RequestThrottled",
	"ServiceUnavailable",
	"Throttling",
	"ThrottlingException",
	"TooManyRequestsException",
}

// IsTransient tells if an error returned by a provider API is likely to vanish on a later invocation
// Looks at the API error code first, then the HTTP status code, then falls back to a status code in the message
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		for _, code := range transientErrorCodes {
			if apiErr.ErrorCode() == code {
				return true
			}
		}
		switch apiErr.ErrorFault() {
		case smithy.FaultServer:
			return true
		case smithy.FaultClient:
			return false
		}
	}
	var responseErr *smithyhttp.ResponseError
	if errors.As(err, &responseErr) {
		for _, statusCode := range transientStatusCodes {
			if responseErr.HTTPStatusCode() == statusCode {
				return true
			}
		}
		return false
	}
	return statusCodePattern.MatchString(err.Error())
}
