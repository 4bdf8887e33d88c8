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
	"fmt"

	"github.com/BrunoReboul/sqscompliance/utilities/ffo"
	"github.com/BrunoReboul/sqscompliance/utilities/validater"
)

// ReadValidate reads the settings file then checks its content
func (instanceDeployment *InstanceDeployment) ReadValidate(path string) (err error) {
	err = ffo.ReadUnmarshalYAML(path, instanceDeployment)
	if err != nil {
		return fmt.Errorf("ReadUnmarshalYAML %s %v", path, err)
	}
	err = validater.ValidateStruct(instanceDeployment, "instanceDeployment")
	if err != nil {
		return err
	}
	switch instanceDeployment.Settings.Notification.Backend {
	case BackendSNS:
		var snsSettings = struct {
			SNSTopicARN string `valid:"isARN"`
		}{SNSTopicARN: instanceDeployment.Settings.Notification.SNSTopicARN}
		err = validater.ValidateStruct(snsSettings, "instanceDeployment/Settings/Notification")
	case BackendPubSub:
		err = validater.ValidateStruct(instanceDeployment.Settings.Notification.PubSub, "instanceDeployment/Settings/Notification/PubSub")
	}
	return err
}
