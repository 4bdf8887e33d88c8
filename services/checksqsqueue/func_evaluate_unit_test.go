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
	"bytes"
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"testing"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nonCompliantFixture() queueFixture {
	fixture := compliantFixture()
	fixture.vpcEndpoints = nil
	fixture.attributes = map[string]string{"QueueArn": testQueueArn}
	fixture.tags = nil
	return fixture
}

func TestUnitEvaluate(t *testing.T) {
	var testCases = []struct {
		name              string
		fixture           queueFixture
		wantFailures      []string
		wantIndeterminate []string
		wantDescribeKeys  int
	}{
		{
			name:             "compliant",
			fixture:          compliantFixture(),
			wantDescribeKeys: 1,
		},
		{
			name:    "allFailedNoShortCircuit",
			fixture: nonCompliantFixture(),
			wantFailures: []string{
				"VPC Endpoint Check Failed",
				"Encryption-at-Rest Check Failed",
				"Customer-Managed Key (CMK) Check Failed",
				"Tag Verification Failed",
			},
			wantDescribeKeys: 0,
		},
		{
			name: "awsManagedKeyAndNoEndpoint",
			fixture: func() queueFixture {
				f := compliantFixture()
				f.vpcEndpoints = []ec2types.VpcEndpoint{}
				f.keyManager = kmstypes.KeyManagerTypeAws
				return f
			}(),
			wantFailures: []string{
				"VPC Endpoint Check Failed",
				"Customer-Managed Key (CMK) Check Failed",
			},
			wantDescribeKeys: 1,
		},
		{
			name: "indeterminateAfterFailures",
			fixture: func() queueFixture {
				f := compliantFixture()
				f.ec2Err = errThrottling
				f.tags = map[string]string{"Name": "orders"}
				return f
			}(),
			wantFailures:      []string{"Tag Verification Failed"},
			wantIndeterminate: []string{"VPC Endpoint Check Could Not Be Evaluated"},
			wantDescribeKeys:  1,
		},
		{
			name: "allIndeterminate",
			fixture: func() queueFixture {
				f := compliantFixture()
				f.ec2Err = errAccessDenied
				f.sqsErr = errAccessDenied
				f.tagsErr = errAccessDenied
				return f
			}(),
			wantIndeterminate: []string{
				"VPC Endpoint Check Could Not Be Evaluated",
				"Encryption-at-Rest Check Could Not Be Evaluated",
				"Customer-Managed Key (CMK) Check Could Not Be Evaluated",
				"Tag Verification Could Not Be Evaluated",
			},
			wantDescribeKeys: 0,
		},
	}

	for _, tc := range testCases {
		tc := tc // https://github.com/golang/go/wiki/CommonMistakes#using-goroutines-on-loop-iterator-variables
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			global, gateways := newTestGlobal(tc.fixture)
			report := Evaluate(context.Background(), global, testQueueURL, "")
			assert.Equal(t, tc.wantFailures, report.Failures)
			assert.Equal(t, tc.wantIndeterminate, report.Indeterminate)
			assert.Equal(t, len(tc.wantFailures) == 0 && len(tc.wantIndeterminate) == 0, report.IsEmpty())

			gateways.ec2.AssertNumberOfCalls(t, "DescribeVpcEndpoints", 1)
			gateways.sqs.AssertNumberOfCalls(t, "GetQueueAttributes", 2)
			gateways.sqs.AssertNumberOfCalls(t, "ListQueueTags", 1)
			gateways.kms.AssertNumberOfCalls(t, "DescribeKey", tc.wantDescribeKeys)
			gateways.notifier.AssertNotCalled(t, "Publish")
		})
	}
}

func TestUnitEvaluateLogsEachCheck(t *testing.T) {
	var buffer bytes.Buffer
	flags := log.Flags()
	log.SetFlags(0)
	log.SetOutput(&buffer)
	defer func() {
		log.SetFlags(flags)
		log.SetOutput(os.Stderr)
	}()

	fixture := compliantFixture()
	fixture.ec2Err = errThrottling
	fixture.keyManager = kmstypes.KeyManagerTypeAws
	global, _ := newTestGlobal(fixture)
	Evaluate(context.Background(), global, testQueueURL, "invocation-1")

	var entries []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buffer.String()), "\n") {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	require.Len(t, entries, 4)

	var testCases = []struct {
		checkName     string
		wantMessage   string
		wantTransient bool
	}{
		{checkName: "vpc_endpoint", wantMessage: "check_indeterminate", wantTransient: true},
		{checkName: "encryption_at_rest", wantMessage: "check_passed"},
		{checkName: "customer_managed_key", wantMessage: "check_failed"},
		{checkName: "tags", wantMessage: "check_passed"},
	}
	for i, tc := range testCases {
		assert.Equal(t, tc.checkName, entries[i]["check_name"])
		assert.Equal(t, tc.wantMessage, entries[i]["message"])
		assert.Equal(t, testQueueURL, entries[i]["queue_url"])
		assert.Equal(t, "invocation-1", entries[i]["invocation_id"])
		if tc.wantTransient {
			assert.Equal(t, true, entries[i]["transient"])
		} else {
			assert.NotContains(t, entries[i], "transient")
		}
	}
	assert.Equal(t, "SQS queue is using an AWS-managed KMS key", entries[2]["description"])
}
