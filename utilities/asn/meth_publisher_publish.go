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

package asn

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// Publish sends a message with a subject to the publisher topic, no retry beyond the SDK defaults
func (publisher *Publisher) Publish(ctx context.Context, message string, subject string) error {
	_, err := publisher.api.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(publisher.topicARN),
		Message:  aws.String(message),
		Subject:  aws.String(subject),
	})
	if err != nil {
		return fmt.Errorf("sns.Publish %s: %w", publisher.topicARN, err)
	}
	return nil
}
