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
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnitListQueueTags(t *testing.T) {
	requiredTags := []string{"Name", "Created By", "Cost Center"}
	var testCases = []struct {
		name        string
		tags        map[string]string
		err         error
		wantErr     bool
		wantPresent bool
		wantMissing []string
	}{
		{
			name: "allRequiredTags",
			tags: map[string]string{
				"Name":        "orders",
				"Created By":  "platform-team",
				"Cost Center": "",
			},
			wantPresent: true,
		},
		{
			name: "twoMissingTags",
			tags: map[string]string{
				"Name": "orders",
			},
			wantPresent: true,
			wantMissing: []string{"Created By", "Cost Center"},
		},
		{
			name:        "noTagMapping",
			tags:        nil,
			wantPresent: false,
			wantMissing: []string{"Name", "Created By", "Cost Center"},
		},
		{
			name:    "transportError",
			err:     errors.New("connection reset by peer"),
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			api := new(mockSQS)
			api.On("ListQueueTags", mock.Anything, mock.MatchedBy(func(params *sqs.ListQueueTagsInput) bool {
				return aws.ToString(params.QueueUrl) == queueURL
			})).Return(&sqs.ListQueueTagsOutput{Tags: tc.tags}, tc.err).Once()

			queueTags, err := ListQueueTags(context.Background(), api, queueURL)
			api.AssertExpectations(t)
			if tc.wantErr {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantPresent, queueTags.Present)
			assert.Equal(t, tc.wantMissing, queueTags.Missing(requiredTags))
		})
	}
}
