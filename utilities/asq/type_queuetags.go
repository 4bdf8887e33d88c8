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

package asq

// QueueTags tags of a queue
// Present is false when the queue carries no tag mapping at all
type QueueTags struct {
	Present bool
	Tags    map[string]string
}

// Missing returns, in the order provided, the tag keys absent from the queue tags
func (queueTags QueueTags) Missing(keys []string) (missing []string) {
	for _, key := range keys {
		if _, ok := queueTags.Tags[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}
