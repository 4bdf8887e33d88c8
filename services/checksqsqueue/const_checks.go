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

// Reported when a check fails
const (
	vpcEndpointCheckFailed        = "VPC Endpoint Check Failed"
	encryptionCheckFailed         = "Encryption-at-Rest Check Failed"
	customerManagedKeyCheckFailed = "Customer-Managed Key (CMK) Check Failed"
	tagsCheckFailed               = "Tag Verification Failed"
)

// Reported when a check cannot be evaluated
const (
	vpcEndpointCheckIndeterminate        = "VPC Endpoint Check Could Not Be Evaluated"
	encryptionCheckIndeterminate         = "Encryption-at-Rest Check Could Not Be Evaluated"
	customerManagedKeyCheckIndeterminate = "Customer-Managed Key (CMK) Check Could Not Be Evaluated"
	tagsCheckIndeterminate               = "Tag Verification Could Not Be Evaluated"
)

const (
	vpcEndpointCheckName        = "vpc_endpoint"
	encryptionCheckName         = "encryption_at_rest"
	customerManagedKeyCheckName = "customer_managed_key"
	tagsCheckName               = "tags"
)

const (
	alarmHeader  = "The following checks failed for the SQS queue:"
	alarmSubject = "SQS Queue Security Check Failed"
	successBody  = "All checks passed"
)

// requiredTags keys every queue must carry, whatever their value
var requiredTags = []string{"Name", "Created By", "Cost Center"}
