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

package checksqsqueue

import (
	"context"

	"github.com/BrunoReboul/sqscompliance/utilities/aec"
	"github.com/BrunoReboul/sqscompliance/utilities/akm"
	"github.com/BrunoReboul/sqscompliance/utilities/asq"
)

// Gateways provider clients used by the checks, built once at cold start
type Gateways struct {
	EC2 aec.DescribeVpcEndpointsAPI
	SQS asq.API
	KMS akm.DescribeKeyAPI
}

// Notifier publishes alerts, implemented by asn.Publisher and gps.Publisher
type Notifier interface {
	Publish(ctx context.Context, message string, subject string) error
}
