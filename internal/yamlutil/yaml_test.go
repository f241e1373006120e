package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/HibernalGlow/marku/internal/yamlutil"
)

type target struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	var v target
	err := yamlutil.Unmarshal([]byte("name: marku\ncount: 3\n"), &v)
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.Name != "marku" || v.Count != 3 {
		t.Errorf("got %+v, want {marku 3}", v)
	}
}

func TestUnmarshalIgnoresUnknownFields(t *testing.T) {
	t.Parallel()

	var v target
	if err := yamlutil.Unmarshal([]byte("name: x\nextra: y\n"), &v); err != nil {
		t.Errorf("Unmarshal() error = %v, want nil", err)
	}
}

func TestUnmarshalStrictRejectsUnknownFields(t *testing.T) {
	t.Parallel()

	var v target
	err := yamlutil.UnmarshalStrict([]byte("name: x\nextra: y\n"), &v)
	if err == nil {
		t.Fatal("UnmarshalStrict() accepted unknown field")
	}
	if !strings.Contains(err.Error(), "yamlutil:") {
		t.Errorf("error %q not prefixed with package name", err)
	}
}

func TestUnmarshalValidation(t *testing.T) {
	t.Parallel()

	var v target

	if err := yamlutil.Unmarshal(nil, &v); !errors.Is(err, yamlutil.ErrNilData) {
		t.Errorf("nil data error = %v, want ErrNilData", err)
	}
	if err := yamlutil.Unmarshal([]byte("name: x"), nil); !errors.Is(err, yamlutil.ErrNilDestination) {
		t.Errorf("nil destination error = %v, want ErrNilDestination", err)
	}

	big := []byte("name: " + strings.Repeat("a", yamlutil.MaxInputSize))
	if err := yamlutil.Unmarshal(big, &v); !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("oversize error = %v, want ErrInputTooLarge", err)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	t.Parallel()

	var v target
	if err := yamlutil.Unmarshal([]byte("name: [unclosed\n"), &v); err == nil {
		t.Error("Unmarshal() accepted malformed YAML")
	}
}
