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
)

// ListQueueTags reads all tags of a queue
func ListQueueTags(ctx context.Context, api ListQueueTagsAPI, queueURL string) (queueTags QueueTags, err error) {
	output, err := api.ListQueueTags(ctx, &sqs.ListQueueTagsInput{
		QueueUrl: aws.String(queueURL),
	})
	if err != nil {
		return queueTags, fmt.Errorf("sqs.ListQueueTags %s: %w", queueURL, err)
	}
	queueTags.Present = output.Tags != nil
	queueTags.Tags = output.Tags
	return queueTags, nil
}
