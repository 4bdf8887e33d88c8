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

// Notification backends
const (
	BackendSNS    = "sns"
	BackendPubSub = "pubsub"
)

// InstanceDeployment settings.yaml bundled with the function code
type InstanceDeployment struct {
	Core     Core     `yaml:"core"`
	Settings Settings `yaml:"settings"`
}

// Core identifies the function instance in the log entries
type Core struct {
	EnvironmentName string `yaml:"environmentName" valid:"isNotZeroValue"`
	InstanceName    string `yaml:"instanceName" valid:"isNotZeroValue"`
	ServiceName     string `yaml:"serviceName" valid:"isNotZeroValue"`
}

// Settings instance settings
type Settings struct {
	AWS struct {
		Region string `yaml:"region" valid:"isAWSRegion"`
	} `yaml:"aws"`
	Notification Notification `yaml:"notification"`
}

// Notification alert destination, only the fields of the selected backend are validated
type Notification struct {
	Backend     string `yaml:"backend" valid:"isOneOf,sns,pubsub"`
	SNSTopicARN string `yaml:"snsTopicARN" valid:"-"`
	PubSub      PubSub `yaml:"pubsub" valid:"-"`
}

// PubSub Google Cloud Pub/Sub topic used as the alert destination
type PubSub struct {
	ProjectID           string `yaml:"projectID" valid:"isNotZeroValue"`
	TopicName           string `yaml:"topicName" valid:"isNotZeroValue"`
	CredentialsFileName string `yaml:"credentialsFileName"`
}
