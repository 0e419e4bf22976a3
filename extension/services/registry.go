package services

import "github.com/renovate-bot/awsinstr-go/extension"

// Service identifiers, as reported by the AWS SDK for each client.
const (
	ServiceIDKinesis        = "Kinesis"
	ServiceIDSQS            = "SQS"
	ServiceIDSNS            = "SNS"
	ServiceIDDynamoDB       = "DynamoDB"
	ServiceIDS3             = "S3"
	ServiceIDLambda         = "Lambda"
	ServiceIDSFN            = "SFN"
	ServiceIDSecretsManager = "Secrets Manager"
	ServiceIDBedrockRuntime = "Bedrock Runtime"
)

// Extensions returns the extension of every supported service keyed by
// service identifier. Each call returns a new map.
func Extensions() map[string]extension.Extension {
	return map[string]extension.Extension{
		ServiceIDKinesis:        Kinesis{},
		ServiceIDSQS:            SQS{},
		ServiceIDSNS:            SNS{},
		ServiceIDDynamoDB:       DynamoDB{},
		ServiceIDS3:             S3{},
		ServiceIDLambda:         Lambda{},
		ServiceIDSFN:            StepFunctions{},
		ServiceIDSecretsManager: SecretsManager{},
		ServiceIDBedrockRuntime: BedrockRuntime{},
	}
}

// NewRegistry returns a registry of the supported services. optFns may
// replace entries or the default extension.
func NewRegistry(optFns ...func(*extension.RegistryOptions)) (*extension.Registry, error) {
	return extension.NewRegistry(Extensions(), optFns...)
}
