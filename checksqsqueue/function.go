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

// Package main contains the checksqsqueue Lambda function
package main

import (
	"context"
	"log"

	"github.com/BrunoReboul/sqscompliance/services/checksqsqueue"
	"github.com/aws/aws-lambda-go/lambda"
)

var global checksqsqueue.Global

// handler is the function to be executed for each Lambda invocation
func handler(ctxEvent context.Context, event checksqsqueue.Event) (checksqsqueue.Response, error) {
	return checksqsqueue.EntryPoint(ctxEvent, event, &global)
}

func main() {
	err := checksqsqueue.Initialize(context.Background(), &global)
	if err != nil {
		log.Fatalf("INIT_FAILURE %v", err)
	}
	lambda.Start(handler)
}
