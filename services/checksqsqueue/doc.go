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

/*
Package checksqsqueue check one SQS queue against the queue security policy

Triggered by

Lambda invocation with a { "queue_url": "<queue URL>" } payload.

Checks, in this order, all of them always evaluated

- VPC endpoint: a VPC endpoint exists for the SQS service in the configured region.

- Encryption at rest: the queue attributes are readable and show server side encryption.

- Customer-managed key: the queue KMS key is managed by the customer, not by AWS.

- Tags: the queue carries the Name, Created By and Cost Center tags.

Output

- Response { "statusCode": 200, "body": "\"All checks passed\"" } when compliant.

- Response { "statusCode": 500, "body": "[\"<failed check>\", ...]" } otherwise, plus one alert published on the notification topic.

A check that cannot be evaluated, eg permission denied on a lookup, is reported as "<check> Could Not Be Evaluated" after the failed checks.

Cardinality

One-one: one queue, one verdict, at most one alert.

Automatic retrying

No.

Settings

settings.yaml bundled with the function code, read once at cold start.

Implementation example

 package main

 import (
     "context"
     "log"

     "github.com/BrunoReboul/sqscompliance/services/checksqsqueue"
     "github.com/aws/aws-lambda-go/lambda"
 )

 var global checksqsqueue.Global

 func handler(ctxEvent context.Context, event checksqsqueue.Event) (checksqsqueue.Response, error) {
     return checksqsqueue.EntryPoint(ctxEvent, event, &global)
 }

 func main() {
     if err := checksqsqueue.Initialize(context.Background(), &global); err != nil {
         log.Fatalln(err)
     }
     lambda.Start(handler)
 }

*/
package checksqsqueue
