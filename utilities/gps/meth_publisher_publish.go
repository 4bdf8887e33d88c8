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

package gps

import (
	"context"
	"fmt"

	"cloud.google.com/go/pubsub"
)

// Publish sends a message and waits for the server acknowledgment
// No retry on pubsub publish as already implemented in the GO client
func (publisher *Publisher) Publish(ctx context.Context, message string, subject string) error {
	pubSubMessage := &pubsub.Message{
		Data:       []byte(message),
		Attributes: map[string]string{SubjectAttributeName: subject},
	}
	_, err := publisher.topic.Publish(ctx, pubSubMessage).Get(ctx)
	if err != nil {
		return fmt.Errorf("topic(%s).Publish.Get: %w", publisher.topic.ID(), err)
	}
	return nil
}

// Stop flushes pending messages and releases the topic goroutines
func (publisher *Publisher) Stop() {
	publisher.topic.Stop()
}
