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

package asq

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// GetQueueAttributes reads the requested attributes of a queue
// An error is returned when the queue URL does not resolve to an existing queue
func GetQueueAttributes(ctx context.Context, api GetQueueAttributesAPI, queueURL string, names []string) (queueAttributes QueueAttributes, err error) {
	attributeNames := make([]types.QueueAttributeName, 0, len(names))
	for _, name := range names {
		attributeNames = append(attributeNames, types.QueueAttributeName(name))
	}
	output, err := api.GetQueueAttributes(ctx, &sqs.GetQueueAttributesInput{
		QueueUrl:       aws.String(queueURL),
		AttributeNames: attributeNames,
	})
	if err != nil {
		return queueAttributes, fmt.Errorf("sqs.GetQueueAttributes %s: %w", queueURL, err)
	}
	return newQueueAttributes(output.Attributes), nil
}
