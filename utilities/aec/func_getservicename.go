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

import "fmt"

// GetServiceName builds the VPC endpoint service name of an AWS service in a region, eg com.amazonaws.us-east-1.sqs
func GetServiceName(region string, service string) string {
	return fmt.Sprintf("com.amazonaws.%s.%s", region, service)
}
