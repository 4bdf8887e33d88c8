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

// Outcome of one check
type Outcome int

// Outcomes
const (
	Passed Outcome = iota
	Failed
	Indeterminate
)

func (outcome Outcome) String() string {
	switch outcome {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Indeterminate:
		return "indeterminate"
	}
	return "unknown"
}

// CheckResult verdict of one check
// Reason is the fixed report string, Description the detailed cause, Err the lookup error when indeterminate
type CheckResult struct {
	Name        string
	Outcome     Outcome
	Reason      string
	Description string
	Err         error
}

func pass(name string, description string) CheckResult {
	return CheckResult{Name: name, Outcome: Passed, Description: description}
}

func fail(name string, reason string, description string) CheckResult {
	return CheckResult{Name: name, Outcome: Failed, Reason: reason, Description: description}
}

func indeterminate(name string, reason string, err error) CheckResult {
	return CheckResult{Name: name, Outcome: Indeterminate, Reason: reason, Description: err.Error(), Err: err}
}

// Report ordered reasons of the checks that did not pass
type Report struct {
	Failures      []string
	Indeterminate []string
}

func (report *Report) add(checkResult CheckResult) {
	switch checkResult.Outcome {
	case Failed:
		report.Failures = append(report.Failures, checkResult.Reason)
	case Indeterminate:
		report.Indeterminate = append(report.Indeterminate, checkResult.Reason)
	}
}

// IsEmpty tells if all checks passed
func (report Report) IsEmpty() bool {
	return len(report.Failures) == 0 && len(report.Indeterminate) == 0
}

// Lines failed checks first then checks that could not be evaluated, each in evaluation order
func (report Report) Lines() []string {
	lines := make([]string, 0, len(report.Failures)+len(report.Indeterminate))
	lines = append(lines, report.Failures...)
	return append(lines, report.Indeterminate...)
}
