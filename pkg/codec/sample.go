package codec

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/fxamacker/cbor/v2"
)

// WildcardToken replaces numeric array indices when matching sample keys
// against entry ids.
const WildcardToken = "_item"

var (
	numericSegment       = regexp.MustCompile(`\.\d+(\.|$)`)
	innerIndexSegment    = regexp.MustCompile(`\.\d+\.`)
	trailingIndexSegment = regexp.MustCompile(`\.\d+$`)
)

// SampleOptions configures sample checking.
type SampleOptions struct {
	// SkipArrayElements skips keys with a numeric path segment instead of
	// matching them through the wildcard token.
	SkipArrayElements bool
	// SkipKeys lists keys that are never checked.
	SkipKeys []string
	// SkipSuffixes lists key suffixes that are never checked.
	SkipSuffixes []string
}

// DefaultSampleOptions returns the options used by codec build pipelines:
// array elements, the "frame" key and ".reserve" fields are not checked.
func DefaultSampleOptions() SampleOptions {
	return SampleOptions{
		SkipArrayElements: true,
		SkipKeys:          []string{"frame"},
		SkipSuffixes:      []string{".reserve"},
	}
}

// SampleReport is the result of checking a sample against a codec document.
type SampleReport struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`

	// Checked is the number of sample keys compared against the document.
	Checked int `json:"checked"`
}

// CheckSample verifies that every leaf key of sample is declared in the codec
// file at path.
func (v *Validator) CheckSample(sample map[string]any, path string) *SampleReport {
	doc, err := v.Load(path)
	if err != nil {
		return &SampleReport{Errors: []string{sampleLoadErrorLine(err, path)}}
	}
	return CheckSampleDocument(sample, doc, v.sampleOpts)
}

// ReadSample reads a sample file through the validator's source.
func (v *Validator) ReadSample(path string) (map[string]any, error) {
	return ReadSample(v.source, path)
}

// CheckSampleDocument verifies sample keys against an already parsed document.
func CheckSampleDocument(sample map[string]any, doc *Document, opts SampleOptions) *SampleReport {
	report := &SampleReport{Valid: true, Errors: []string{}}
	ids := doc.IDs()

	for _, key := range SortedKeys(Flatten(sample)) {
		if skipSampleKey(key, opts) {
			continue
		}
		report.Checked++

		if _, ok := ids[key]; ok {
			continue
		}
		if _, ok := ids[WildcardKey(key)]; ok {
			continue
		}
		report.Errors = append(report.Errors, "字段 \""+key+"\" 在 codec.json 中未定义")
	}

	report.Valid = len(report.Errors) == 0
	return report
}

func skipSampleKey(key string, opts SampleOptions) bool {
	for _, k := range opts.SkipKeys {
		if key == k {
			return true
		}
	}
	if opts.SkipArrayElements && HasNumericSegment(key) {
		return true
	}
	for _, suffix := range opts.SkipSuffixes {
		if strings.HasSuffix(key, suffix) {
			return true
		}
	}
	return false
}

func sampleLoadErrorLine(err error, path string) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "codec.json 文件不存在: " + path
	case IsStructural(err):
		return "codec.json 格式错误"
	default:
		return "验证测试数据失败: " + err.Error()
	}
}

// HasNumericSegment reports whether a dotted key has a purely numeric segment
// after the first one, e.g. "history.0.timestamp" or "sensor.1".
func HasNumericSegment(key string) bool {
	return numericSegment.MatchString(key)
}

// WildcardKey replaces numeric path segments with the wildcard token:
// "settings.0.value" becomes "settings._item.value".
func WildcardKey(key string) string {
	key = innerIndexSegment.ReplaceAllString(key, "."+WildcardToken+".")
	return trailingIndexSegment.ReplaceAllString(key, "."+WildcardToken)
}

// Flatten converts a nested sample into dot-joined leaf keys. Array elements
// get their index as path segment; empty objects and arrays produce no keys.
func Flatten(sample map[string]any) map[string]any {
	out := make(map[string]any)
	flattenInto(out, sample, "")
	return out
}

func flattenInto(out map[string]any, obj map[string]any, prefix string) {
	for key, value := range obj {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			flattenInto(out, v, name)
		case []any:
			for i, item := range v {
				itemName := name + "." + strconv.Itoa(i)
				if m, ok := item.(map[string]any); ok {
					flattenInto(out, m, itemName)
				} else if nested, ok := item.([]any); ok {
					flattenInto(out, arrayAsObject(nested), itemName)
				} else {
					out[itemName] = item
				}
			}
		default:
			out[name] = v
		}
	}
}

// arrayAsObject lets nested arrays flatten with index keys like objects do.
func arrayAsObject(items []any) map[string]any {
	m := make(map[string]any, len(items))
	for i, item := range items {
		m[strconv.Itoa(i)] = item
	}
	return m
}

// SortedKeys returns the keys of m in lexical order.
func SortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SampleFormat is the encoding of a runtime sample.
type SampleFormat int

const (
	// SampleJSON is a JSON object.
	SampleJSON SampleFormat = iota
	// SampleCBOR is a CBOR map, as captured from device uplinks.
	SampleCBOR
)

func (f SampleFormat) String() string {
	switch f {
	case SampleJSON:
		return "json"
	case SampleCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("unknown(%d)", f)
	}
}

// SampleFormatFromPath picks the format from the file extension.
func SampleFormatFromPath(path string) SampleFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cbor", ".cbr":
		return SampleCBOR
	default:
		return SampleJSON
	}
}

var sampleDecMode = func() cbor.DecMode {
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic(err)
	}
	return dm
}()

// DecodeSample decodes a sample object.
func DecodeSample(data []byte, format SampleFormat) (map[string]any, error) {
	var root any
	switch format {
	case SampleCBOR:
		if err := sampleDecMode.Unmarshal(data, &root); err != nil {
			return nil, fmt.Errorf("decode CBOR sample: %w", err)
		}
	default:
		v, err := decodeJSON(data)
		if err != nil {
			return nil, fmt.Errorf("decode JSON sample: %w", err)
		}
		root = v
	}

	obj, ok := root.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("sample must be an object, got %s", TypeName(root))
	}
	return obj, nil
}

// ReadSample reads and decodes a sample file from src.
func ReadSample(src Source, path string) (map[string]any, error) {
	if src == nil {
		src = OSSource{}
	}
	data, err := src.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("sample file not found: %s", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return DecodeSample(data, SampleFormatFromPath(path))
}

