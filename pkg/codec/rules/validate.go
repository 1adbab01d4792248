package rules

import "github.com/codec-tools/codec-validator/pkg/codec"

// ValidateCodecJSON validates the codec file at path with the default rule
// set.
func ValidateCodecJSON(path string) *codec.Report {
	return codec.NewValidator(NewDefaultRegistry()).ValidateFile(path)
}

// ValidateTestDataAgainstCodec checks that every leaf key of sample is
// declared in the codec file at path, using the default sample options.
func ValidateTestDataAgainstCodec(sample map[string]any, path string) *codec.SampleReport {
	return codec.NewValidator(NewDefaultRegistry()).CheckSample(sample, path)
}
