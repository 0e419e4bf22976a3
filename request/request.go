package request

// Normalized is the uniform shape of an intercepted operation. It is built
// once per call and not modified afterwards.
type Normalized struct {
	serviceID     string
	operationName string
	region        string
	input         Document
}

// Normalize builds the Normalized request for an operation call. params is
// the operation's raw input, typically a pointer to the SDK's input struct.
// Parameters of an unexpected shape produce an empty command input.
func Normalize(serviceID, operationName, region string, params interface{}) Normalized {
	return Normalized{
		serviceID:     serviceID,
		operationName: operationName,
		region:        region,
		input:         NewDocument(params),
	}
}

// ServiceID returns the identifier of the service the operation belongs to,
// e.g. "Kinesis".
func (r Normalized) ServiceID() string { return r.serviceID }

// OperationName returns the operation's name, e.g. "PutRecord".
func (r Normalized) OperationName() string { return r.operationName }

// Region returns the region the operation targets, if known.
func (r Normalized) Region() (string, bool) { return r.region, len(r.region) != 0 }

// Input returns the normalized command input.
func (r Normalized) Input() Document { return r.input }
