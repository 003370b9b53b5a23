package tokenizer

const bytesPerToken = 4

// EstimatingCounter approximates token count as one token per four bytes.
type EstimatingCounter struct{}

// NewEstimatingCounter returns the bytes/4 estimator.
func NewEstimatingCounter() *EstimatingCounter {
	return &EstimatingCounter{}
}

// Count returns ceil(len(text)/4).
func (*EstimatingCounter) Count(text string) int {
	return (len(text) + bytesPerToken - 1) / bytesPerToken
}
