package normalizer

import (
	"errors"
	"reflect"
	"testing"
)

const sampleArchive = "NASLOV: Test\nHello world\n<***>AUTOR(I): X\nFoo bar baz"

func newTestProcessor(t *testing.T) *Processor {
	t.Helper()

	p, err := NewProcessor(DefaultOptions())
	if err != nil {
		t.Fatalf("NewProcessor returned unexpected error: %v", err)
	}

	return p
}

func TestNewProcessor(t *testing.T) {
	p := newTestProcessor(t)
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestNewProcessor_InvalidOptions(t *testing.T) {
	_, err := NewProcessor(Options{Sentinel: "", Tags: []string{"A:"}})
	if !errors.Is(err, ErrEmptySentinel) {
		t.Errorf("NewProcessor error = %v, want ErrEmptySentinel", err)
	}
}

func TestProcessor_Process(t *testing.T) {
	p := newTestProcessor(t)

	got := p.Process(sampleArchive)
	want := []string{"Hello world", "Foo bar baz"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Process = %q, want %q", got, want)
	}
}

func TestProcessor_Process_KeepsMetadataOnlyInstances(t *testing.T) {
	p := newTestProcessor(t)

	got := p.Process("NASLOV: Only a title\n<***>Body")
	want := []string{"", "Body"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Process = %q, want %q", got, want)
	}
}

func TestProcessor_Headers(t *testing.T) {
	p := newTestProcessor(t)

	instances := p.Instances(sampleArchive)
	if len(instances) != 2 {
		t.Fatalf("Instances returned %d instances, want 2", len(instances))
	}

	headers := p.Headers(instances[1])
	if len(headers) != 1 {
		t.Fatalf("Headers returned %d fields, want 1", len(headers))
	}

	if headers[0][0] != "AUTOR(I):" || headers[0][1] != "X" {
		t.Errorf("Headers[0] = %q, want [AUTOR(I): X]", headers[0])
	}
}

func TestSplitInstances(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "Trailing whitespace fragment",
			content: "A<***>B<***>   ",
			want:    []string{"A", "B"},
		},
		{
			name:    "Empty content",
			content: "",
			want:    nil,
		},
		{
			name:    "Only sentinels",
			content: "<***>\n<***>\t<***>",
			want:    nil,
		},
		{
			name:    "No sentinel",
			content: "one article",
			want:    []string{"one article"},
		},
		{
			name:    "Fragments kept untrimmed",
			content: "\nA\n<***> B ",
			want:    []string{"\nA\n", " B "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitInstances(tt.content, DefaultSentinel)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitInstances(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}
