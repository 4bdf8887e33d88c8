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
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/BrunoReboul/sqscompliance/utilities/asn"
	"github.com/BrunoReboul/sqscompliance/utilities/gps"
	"github.com/BrunoReboul/sqscompliance/utilities/logging"
	"github.com/BrunoReboul/sqscompliance/utilities/solution"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// Global structure for global variables to optimize the function performances
type Global struct {
	environment      string
	gateways         Gateways
	initErr          error
	initID           string
	instanceName     string
	microserviceName string
	notifier         Notifier
	region           string
}

// Initialize is to be executed once per process, before the first invocation, to optimize the cold start
func Initialize(ctx context.Context, global *Global) (err error) {
	log.SetFlags(0)
	global.initID = fmt.Sprintf("%v", uuid.New())
	defer func() {
		global.initErr = err
	}()

	var instanceDeployment InstanceDeployment
	err = instanceDeployment.ReadValidate(solution.PathToFunctionCode + solution.SettingsFileName)
	if err != nil {
		log.Println(logging.Entry{
			Severity:    "CRITICAL",
			Message:     "init_failed",
			Description: err.Error(),
			InitID:      global.initID,
		})
		return err
	}

	global.environment = instanceDeployment.Core.EnvironmentName
	global.instanceName = instanceDeployment.Core.InstanceName
	global.microserviceName = instanceDeployment.Core.ServiceName
	global.region = instanceDeployment.Settings.AWS.Region

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "coldstart",
		InitID:           global.initID,
	})

	// clients are initialized with the process context as they persist between invocations
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(global.region))
	if err != nil {
		global.logInitFailed(fmt.Sprintf("config.LoadDefaultConfig %v", err))
		return err
	}
	global.gateways = Gateways{
		EC2: ec2.NewFromConfig(cfg),
		SQS: sqs.NewFromConfig(cfg),
		KMS: kms.NewFromConfig(cfg),
	}

	notification := instanceDeployment.Settings.Notification
	switch notification.Backend {
	case BackendPubSub:
		var opts []option.ClientOption
		if notification.PubSub.CredentialsFileName != "" {
			opts = append(opts, option.WithCredentialsFile(solution.PathToFunctionCode+notification.PubSub.CredentialsFileName))
		}
		pubsubClient, err := pubsub.NewClient(ctx, notification.PubSub.ProjectID, opts...)
		if err != nil {
			global.logInitFailed(fmt.Sprintf("pubsub.NewClient %v", err))
			return err
		}
		global.notifier = gps.NewPublisher(pubsubClient, notification.PubSub.TopicName)
	default:
		global.notifier = asn.NewPublisher(sns.NewFromConfig(cfg), notification.SNSTopicARN)
	}
	return nil
}

func (global *Global) logInitFailed(description string) {
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "CRITICAL",
		Message:          "init_failed",
		Description:      description,
		InitID:           global.initID,
	})
}

// EntryPoint is the function to be executed for each invocation
func EntryPoint(ctxEvent context.Context, event Event, global *Global) (response Response, err error) {
	start := time.Now()
	invocationID := getInvocationID(ctxEvent)
	if global.initErr != nil {
		return response, fmt.Errorf("function not initialized: %v", global.initErr)
	}
	if event.QueueURL == "" {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "CRITICAL",
			Message:          "noretry",
			Description:      "missing queue_url in the invocation payload",
			InvocationID:     invocationID,
		})
		return response, fmt.Errorf("missing queue_url in the invocation payload")
	}

	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "start",
		Now:              &start,
		InvocationID:     invocationID,
		QueueURL:         event.QueueURL,
	})

	report := Evaluate(ctxEvent, global, event.QueueURL, invocationID)
	if report.IsEmpty() {
		response, err = makeResponse(http.StatusOK, successBody)
	} else {
		sendAlarm(ctxEvent, global, event.QueueURL, invocationID, report)
		response, err = makeResponse(http.StatusInternalServerError, report.Lines())
	}
	if err != nil {
		return response, err
	}

	now := time.Now()
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "finish",
		Now:              &now,
		InvocationID:     invocationID,
		QueueURL:         event.QueueURL,
		Failures:         report.Failures,
		Indeterminate:    report.Indeterminate,
		LatencySeconds:   now.Sub(start).Seconds(),
	})
	return response, nil
}

// getInvocationID Lambda request ID when running on Lambda, a random ID otherwise
func getInvocationID(ctx context.Context) string {
	if lambdaContext, ok := lambdacontext.FromContext(ctx); ok && lambdaContext.AwsRequestID != "" {
		return lambdaContext.AwsRequestID
	}
	return fmt.Sprintf("%v", uuid.New())
}

func makeResponse(statusCode int, body interface{}) (response Response, err error) {
	b, err := json.Marshal(body)
	if err != nil {
		return response, fmt.Errorf("json.Marshal %v", err)
	}
	return Response{StatusCode: statusCode, Body: string(b)}, nil
}
