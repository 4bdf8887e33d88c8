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

	"github.com/aws/aws-sdk-go-v2/service/sns"
)

// PublishAPI the subset of the SNS client used to publish alerts
type PublishAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// Publisher publishes messages to one SNS topic
type Publisher struct {
	api      PublishAPI
	topicARN string
}

// NewPublisher creates a publisher for a topic
func NewPublisher(api PublishAPI, topicARN string) *Publisher {
	return &Publisher{
		api:      api,
		topicARN: topicARN,
	}
}
