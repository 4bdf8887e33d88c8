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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	kmstypes "github.com/aws/aws-sdk-go-v2/service/kms/types"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/mock"
)

const (
	testRegion   = "us-east-1"
	testQueueURL = "https://sqs.us-east-1.amazonaws.com/111111111111/orders"
	testQueueArn = "arn:aws:sqs:us-east-1:111111111111:orders"
	testKeyID    = "1234abcd-12ab-34cd-56ef-1234567890ab"
	testKeyArn   = "arn:aws:kms:us-east-1:111111111111:key/1234abcd-12ab-34cd-56ef-1234567890ab"
)

var (
	errAccessDenied  = &smithy.GenericAPIError{Code: "AccessDeniedException", Message: "not authorized"}
	errThrottling    = &smithy.GenericAPIError{Code: "ThrottlingException", Message: "Rate exceeded"}
	errQueueNotFound = &sqstypes.QueueDoesNotExist{Message: aws.String("The specified queue does not exist.")}
)

type mockEC2 struct{ mock.Mock }

func (m *mockEC2) DescribeVpcEndpoints(ctx context.Context, params *ec2.DescribeVpcEndpointsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeVpcEndpointsOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*ec2.DescribeVpcEndpointsOutput)
	return output, args.Error(1)
}

type mockSQS struct{ mock.Mock }

func (m *mockSQS) GetQueueAttributes(ctx context.Context, params *sqs.GetQueueAttributesInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueAttributesOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*sqs.GetQueueAttributesOutput)
	return output, args.Error(1)
}

func (m *mockSQS) ListQueueTags(ctx context.Context, params *sqs.ListQueueTagsInput, optFns ...func(*sqs.Options)) (*sqs.ListQueueTagsOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*sqs.ListQueueTagsOutput)
	return output, args.Error(1)
}

type mockKMS struct{ mock.Mock }

func (m *mockKMS) DescribeKey(ctx context.Context, params *kms.DescribeKeyInput, optFns ...func(*kms.Options)) (*kms.DescribeKeyOutput, error) {
	args := m.Called(ctx, params)
	output, _ := args.Get(0).(*kms.DescribeKeyOutput)
	return output, args.Error(1)
}

type mockNotifier struct{ mock.Mock }

func (m *mockNotifier) Publish(ctx context.Context, message string, subject string) error {
	return m.Called(ctx, message, subject).Error(0)
}

// queueFixture describes the account and queue state the gateways report
type queueFixture struct {
	vpcEndpoints []ec2types.VpcEndpoint
	ec2Err       error
	attributes   map[string]string
	sqsErr       error
	keyManager   kmstypes.KeyManagerType
	kmsErr       error
	tags         map[string]string
	tagsErr      error
	publishErr   error
}

func compliantFixture() queueFixture {
	return queueFixture{
		vpcEndpoints: []ec2types.VpcEndpoint{
			{
				VpcEndpointId: aws.String("vpce-0a1b2c3d4e5f60718"),
				VpcId:         aws.String("vpc-0123456789abcdef0"),
				ServiceName:   aws.String("com.amazonaws.us-east-1.sqs"),
				State:         ec2types.State("available"),
			},
		},
		attributes: map[string]string{
			"QueueArn":                     testQueueArn,
			"KmsMasterKeyId":               testKeyArn,
			"KmsDataKeyReusePeriodSeconds": "300",
			"VisibilityTimeout":            "30",
		},
		keyManager: kmstypes.KeyManagerTypeCustomer,
		tags: map[string]string{
			"Name":        "orders",
			"Created By":  "platform-team",
			"Cost Center": "cc-1234",
		},
	}
}

func requestsAttribute(name sqstypes.QueueAttributeName) func(*sqs.GetQueueAttributesInput) bool {
	return func(input *sqs.GetQueueAttributesInput) bool {
		for _, attributeName := range input.AttributeNames {
			if attributeName == name {
				return true
			}
		}
		return false
	}
}

type testGateways struct {
	ec2      *mockEC2
	sqs      *mockSQS
	kms      *mockKMS
	notifier *mockNotifier
}

// newTestGlobal wires mocked gateways answering as described by the fixture
func newTestGlobal(fixture queueFixture) (*Global, *testGateways) {
	gateways := &testGateways{
		ec2:      &mockEC2{},
		sqs:      &mockSQS{},
		kms:      &mockKMS{},
		notifier: &mockNotifier{},
	}

	if fixture.ec2Err != nil {
		gateways.ec2.On("DescribeVpcEndpoints", mock.Anything, mock.Anything).Return(nil, fixture.ec2Err)
	} else {
		gateways.ec2.On("DescribeVpcEndpoints", mock.Anything, mock.Anything).Return(
			&ec2.DescribeVpcEndpointsOutput{VpcEndpoints: fixture.vpcEndpoints}, nil)
	}

	if fixture.sqsErr != nil {
		gateways.sqs.On("GetQueueAttributes", mock.Anything, mock.Anything).Return(nil, fixture.sqsErr)
	} else {
		gateways.sqs.On("GetQueueAttributes", mock.Anything, mock.MatchedBy(requestsAttribute(sqstypes.QueueAttributeNameAll))).Return(
			&sqs.GetQueueAttributesOutput{Attributes: fixture.attributes}, nil)
		keyAttributes := map[string]string{}
		if keyID, ok := fixture.attributes["KmsMasterKeyId"]; ok {
			keyAttributes["KmsMasterKeyId"] = keyID
		}
		gateways.sqs.On("GetQueueAttributes", mock.Anything, mock.MatchedBy(requestsAttribute(sqstypes.QueueAttributeNameKmsMasterKeyId))).Return(
			&sqs.GetQueueAttributesOutput{Attributes: keyAttributes}, nil)
	}

	if fixture.tagsErr != nil {
		gateways.sqs.On("ListQueueTags", mock.Anything, mock.Anything).Return(nil, fixture.tagsErr)
	} else {
		gateways.sqs.On("ListQueueTags", mock.Anything, mock.Anything).Return(
			&sqs.ListQueueTagsOutput{Tags: fixture.tags}, nil)
	}

	if fixture.kmsErr != nil {
		gateways.kms.On("DescribeKey", mock.Anything, mock.Anything).Return(nil, fixture.kmsErr)
	} else {
		gateways.kms.On("DescribeKey", mock.Anything, mock.Anything).Return(
			&kms.DescribeKeyOutput{KeyMetadata: &kmstypes.KeyMetadata{
				KeyId:      aws.String(testKeyID),
				Arn:        aws.String(testKeyArn),
				KeyManager: fixture.keyManager,
				KeyState:   kmstypes.KeyStateEnabled,
			}}, nil)
	}

	gateways.notifier.On("Publish", mock.Anything, mock.Anything, alarmSubject).Return(fixture.publishErr)

	global := &Global{
		environment:      "test",
		instanceName:     "checksqsqueue-test",
		microserviceName: "checksqsqueue",
		region:           testRegion,
		gateways: Gateways{
			EC2: gateways.ec2,
			SQS: gateways.sqs,
			KMS: gateways.kms,
		},
		notifier: gateways.notifier,
	}
	return global, gateways
}
