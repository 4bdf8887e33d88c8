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
	"strings"

	"github.com/BrunoReboul/sqscompliance/utilities/asq"
	"github.com/BrunoReboul/sqscompliance/utilities/str"
)

func checkTags(ctx context.Context, api asq.ListQueueTagsAPI, queueURL string) CheckResult {
	queueTags, err := asq.ListQueueTags(ctx, api, queueURL)
	if err != nil {
		return indeterminate(tagsCheckName, tagsCheckIndeterminate, err)
	}
	if !queueTags.Present {
		return fail(tagsCheckName, tagsCheckFailed, "SQS queue does not have any tags")
	}
	missing := queueTags.Missing(requiredTags)
	if len(missing) > 0 {
		return fail(tagsCheckName, tagsCheckFailed, fmt.Sprintf("SQS queue is missing the following tags: %s", strings.Join(missing, ", ")))
	}
	return pass(tagsCheckName, fmt.Sprintf("SQS queue tags %s", str.FlattenMapStringString(queueTags.Tags)))
}
