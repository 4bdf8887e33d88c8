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
Package sqscompliance SQS queue compliance check

## What

Check one Amazon SQS queue against a fixed security policy when invoked, report the checks that failed and alert on them.

### Checks

1. Network isolation: a VPC endpoint serves SQS in the region
2. Encryption at rest: the queue is server side encrypted
3. Customer-managed key: the queue key is managed by the customer, not by AWS
4. Tagging: the queue carries the Name, Created By and Cost Center tags

## Why

- It is all easier to fix when it is detected early
- Value is delivered only when a detected non compliance is fixed

## How

- services/checksqsqueue the function logic
- checksqsqueue the Lambda main package
- utilities one folder per provider API or cross cutting concern
*/
package sqscompliance
