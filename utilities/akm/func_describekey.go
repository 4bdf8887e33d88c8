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

package akm

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kms"
)

// DescribeKey resolves a key id, ARN or alias to its metadata
func DescribeKey(ctx context.Context, api DescribeKeyAPI, keyID string) (keyMetadata KeyMetadata, err error) {
	output, err := api.DescribeKey(ctx, &kms.DescribeKeyInput{
		KeyId: aws.String(keyID),
	})
	if err != nil {
		return keyMetadata, fmt.Errorf("kms.DescribeKey %s: %w", keyID, err)
	}
	if output.KeyMetadata == nil {
		return keyMetadata, fmt.Errorf("kms.DescribeKey %s: no key metadata returned", keyID)
	}
	keyMetadata.KeyID = aws.ToString(output.KeyMetadata.KeyId)
	keyMetadata.Arn = aws.ToString(output.KeyMetadata.Arn)
	keyMetadata.KeyManager = string(output.KeyMetadata.KeyManager)
	keyMetadata.KeyState = string(output.KeyMetadata.KeyState)
	return keyMetadata, nil
}
