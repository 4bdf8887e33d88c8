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

	"github.com/BrunoReboul/sqscompliance/utilities/akm"
	"github.com/BrunoReboul/sqscompliance/utilities/asq"
)

func checkCustomerManagedKey(ctx context.Context, sqsAPI asq.GetQueueAttributesAPI, kmsAPI akm.DescribeKeyAPI, queueURL string) CheckResult {
	queueAttributes, err := asq.GetQueueAttributes(ctx, sqsAPI, queueURL, []string{asq.AttributeKmsMasterKeyID})
	if err != nil {
		return indeterminate(customerManagedKeyCheckName, customerManagedKeyCheckIndeterminate, err)
	}
	if queueAttributes.KmsMasterKeyID == nil || *queueAttributes.KmsMasterKeyID == "" {
		return fail(customerManagedKeyCheckName, customerManagedKeyCheckFailed, "SQS queue does not have a KMS key associated")
	}
	keyMetadata, err := akm.DescribeKey(ctx, kmsAPI, *queueAttributes.KmsMasterKeyID)
	if err != nil {
		return indeterminate(customerManagedKeyCheckName, customerManagedKeyCheckIndeterminate, err)
	}
	switch {
	case keyMetadata.IsCustomerManaged():
		return pass(customerManagedKeyCheckName, fmt.Sprintf("SQS queue is using the customer-managed KMS key %s, key state %s",
			keyMetadata.Arn, keyMetadata.KeyState))
	case keyMetadata.KeyManager == akm.KeyManagerAWS:
		return fail(customerManagedKeyCheckName, customerManagedKeyCheckFailed, "SQS queue is using an AWS-managed KMS key")
	}
	return fail(customerManagedKeyCheckName, customerManagedKeyCheckFailed,
		fmt.Sprintf("SQS queue KMS key %s has an unexpected key manager '%s'", keyMetadata.KeyID, keyMetadata.KeyManager))
}
