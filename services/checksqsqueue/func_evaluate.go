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
	"log"

	"github.com/BrunoReboul/sqscompliance/utilities/erm"
	"github.com/BrunoReboul/sqscompliance/utilities/logging"
)

// Evaluate runs all the checks in a fixed order, whatever the outcome of the previous ones
func Evaluate(ctx context.Context, global *Global, queueURL string, invocationID string) (report Report) {
	checkResults := []CheckResult{
		checkVPCEndpoint(ctx, global.gateways.EC2, global.region),
		checkEncryption(ctx, global.gateways.SQS, queueURL),
		checkCustomerManagedKey(ctx, global.gateways.SQS, global.gateways.KMS, queueURL),
		checkTags(ctx, global.gateways.SQS, queueURL),
	}
	for _, checkResult := range checkResults {
		logCheckResult(global, queueURL, invocationID, checkResult)
		report.add(checkResult)
	}
	return report
}

func logCheckResult(global *Global, queueURL string, invocationID string, checkResult CheckResult) {
	entry := logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "INFO",
		Message:          "check_passed",
		Description:      checkResult.Description,
		InvocationID:     invocationID,
		QueueURL:         queueURL,
		CheckName:        checkResult.Name,
	}
	switch checkResult.Outcome {
	case Failed:
		entry.Severity = "WARNING"
		entry.Message = "check_failed"
	case Indeterminate:
		entry.Severity = "ERROR"
		entry.Message = "check_indeterminate"
		entry.Transient = erm.IsTransient(checkResult.Err)
	}
	log.Println(entry)
}
