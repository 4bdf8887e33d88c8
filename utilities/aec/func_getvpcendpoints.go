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

package aec

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// GetVPCEndpoints list the VPC endpoints filtered on a service name
// An empty list is a valid result: no endpoint exists for that service
func GetVPCEndpoints(ctx context.Context, api DescribeVpcEndpointsAPI, serviceName string) (vpcEndpoints []VPCEndpoint, err error) {
	output, err := api.DescribeVpcEndpoints(ctx, &ec2.DescribeVpcEndpointsInput{
		Filters: []types.Filter{
			{
				Name:   aws.String("service-name"),
				Values: []string{serviceName},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ec2.DescribeVpcEndpoints %s: %w", serviceName, err)
	}
	for _, vpcEndpoint := range output.VpcEndpoints {
		vpcEndpoints = append(vpcEndpoints, VPCEndpoint{
			ID:          aws.ToString(vpcEndpoint.VpcEndpointId),
			VPCID:       aws.ToString(vpcEndpoint.VpcId),
			ServiceName: aws.ToString(vpcEndpoint.ServiceName),
			State:       string(vpcEndpoint.State),
		})
	}
	return vpcEndpoints, nil
}
