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

	"github.com/BrunoReboul/sqscompliance/utilities/asq"
)

func checkEncryption(ctx context.Context, api asq.GetQueueAttributesAPI, queueURL string) CheckResult {
	queueAttributes, err := asq.GetQueueAttributes(ctx, api, queueURL, []string{
		asq.AttributeQueueArn,
		asq.AttributePolicy,
		asq.AttributeAll})
	if err != nil {
		return indeterminate(encryptionCheckName, encryptionCheckIndeterminate, err)
	}
	if queueAttributes.QueueArn == nil || *queueAttributes.QueueArn == "" {
		return fail(encryptionCheckName, encryptionCheckFailed, "Unable to retrieve queue attributes")
	}
	if !isEncrypted(queueAttributes) {
		return fail(encryptionCheckName, encryptionCheckFailed, "SQS queue does not have encryption enabled")
	}
	return pass(encryptionCheckName, "SQS queue is encrypted at rest")
}

// isEncrypted either KMS or SQS managed server side encryption
func isEncrypted(queueAttributes asq.QueueAttributes) bool {
	if queueAttributes.Has(asq.AttributeEncryption) {
		return true
	}
	if queueAttributes.KmsMasterKeyID != nil && *queueAttributes.KmsMasterKeyID != "" {
		return true
	}
	return queueAttributes.SqsManagedSseEnabled != nil && *queueAttributes.SqsManagedSseEnabled == "true"
}
