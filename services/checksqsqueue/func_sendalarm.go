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
	"fmt"
	"log"
	"strings"

	"github.com/BrunoReboul/sqscompliance/utilities/logging"
)

// sendAlarm publishes one alert listing the checks that did not pass
// A publish error is logged only, the invocation result does not depend on it
func sendAlarm(ctx context.Context, global *Global, queueURL string, invocationID string, report Report) {
	message := alarmHeader + "\n" + strings.Join(report.Lines(), "\n")
	err := global.notifier.Publish(ctx, message, alarmSubject)
	if err != nil {
		log.Println(logging.Entry{
			MicroserviceName: global.microserviceName,
			InstanceName:     global.instanceName,
			Environment:      global.environment,
			Severity:         "ERROR",
			Message:          "alert_not_sent",
			Description:      fmt.Sprintf("notifier.Publish %v", err),
			InvocationID:     invocationID,
			QueueURL:         queueURL,
		})
		return
	}
	log.Println(logging.Entry{
		MicroserviceName: global.microserviceName,
		InstanceName:     global.instanceName,
		Environment:      global.environment,
		Severity:         "NOTICE",
		Message:          "alert_sent",
		InvocationID:     invocationID,
		QueueURL:         queueURL,
		Failures:         report.Failures,
		Indeterminate:    report.Indeterminate,
	})
}
