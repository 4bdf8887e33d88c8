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

// Attribute names as exposed by the SQS API
const (
	AttributeAll                  = "All"
	AttributeEncryption           = "Encryption"
	AttributeKmsMasterKeyID       = "KmsMasterKeyId"
	AttributePolicy               = "Policy"
	AttributeQueueArn             = "QueueArn"
	AttributeSqsManagedSseEnabled = "SqsManagedSseEnabled"
)

// QueueAttributes typed view on the attributes returned for a queue
// A nil field means the attribute was not returned
type QueueAttributes struct {
	QueueArn             *string
	Encryption           *string
	KmsMasterKeyID       *string
	SqsManagedSseEnabled *string
	raw                  map[string]string
}

func newQueueAttributes(attributes map[string]string) QueueAttributes {
	queueAttributes := QueueAttributes{raw: attributes}
	queueAttributes.QueueArn = lookup(attributes, AttributeQueueArn)
	queueAttributes.Encryption = lookup(attributes, AttributeEncryption)
	queueAttributes.KmsMasterKeyID = lookup(attributes, AttributeKmsMasterKeyID)
	queueAttributes.SqsManagedSseEnabled = lookup(attributes, AttributeSqsManagedSseEnabled)
	return queueAttributes
}

func lookup(attributes map[string]string, name string) *string {
	if value, ok := attributes[name]; ok {
		return &value
	}
	return nil
}

// Has tells if an attribute was returned, whatever its value
func (queueAttributes QueueAttributes) Has(name string) bool {
	_, ok := queueAttributes.raw[name]
	return ok
}
