package service

// UpstreamError wraps any failure returned by the S3 provider. Its message is
// the provider's message, unchanged.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}
