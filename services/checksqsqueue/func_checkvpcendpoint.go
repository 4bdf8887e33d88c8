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
	"fmt"

	"github.com/BrunoReboul/sqscompliance/utilities/aec"
	"github.com/BrunoReboul/sqscompliance/utilities/solution"
)

// checkVPCEndpoint passes when at least one VPC endpoint serves SQS in the region
// The check is account wide, it does not look at the queue
func checkVPCEndpoint(ctx context.Context, api aec.DescribeVpcEndpointsAPI, region string) CheckResult {
	vpcEndpoints, err := aec.GetVPCEndpoints(ctx, api, aec.GetServiceName(region, solution.QueueServiceName))
	if err != nil {
		return indeterminate(vpcEndpointCheckName, vpcEndpointCheckIndeterminate, err)
	}
	if len(vpcEndpoints) == 0 {
		return fail(vpcEndpointCheckName, vpcEndpointCheckFailed, "No VPC endpoint for SQS found")
	}
	vpcEndpoint := vpcEndpoints[0]
	return pass(vpcEndpointCheckName, fmt.Sprintf("VPC endpoint %s for %s in %s is %s",
		vpcEndpoint.ID, vpcEndpoint.ServiceName, vpcEndpoint.VPCID, vpcEndpoint.State))
}
