package contract

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	proxyErrors "github.com/ygrebnov/proxy/errors"
)

// server is a valid contract mixing mutable and immutable properties.
type server interface {
	// Addr is immutable: getter only.
	Addr() string
	// Enabled and Port are mutable: accessor pairs.
	Enabled() bool
	SetEnabled(bool)
	Port() int
	SetPort(int)
}

type withMethod interface {
	Name() string
	Frobnicate(int) (string, error)
}

type withEvent interface {
	Name() string
	OnChange(func())
}

type withListenerPair interface {
	Name() string
	AddUpdateListener(func(string))
	RemoveUpdateListener(func(string))
}

type withIndexer interface {
	Item(i int) string
}

type withSetterIndexer interface {
	Item() string
	SetItem(i int, v string)
}

type writeOnly interface {
	Name() string
	SetSecret(string)
}

type mismatchedPair interface {
	Count() int
	SetCount(string)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func TestDescribe_ValidContract(t *testing.T) {
	props, err := Describe(typeOf[server]())
	if err != nil {
		t.Fatalf("Describe unexpected error: %v", err)
	}

	// reflect enumerates interface methods lexicographically; properties
	// follow their getters: Addr, Enabled, Port.
	want := []Property{
		{Name: "Addr", Type: typeOf[string](), Mutable: false},
		{Name: "Enabled", Type: typeOf[bool](), Mutable: true},
		{Name: "Port", Type: typeOf[int](), Mutable: true},
	}
	if !reflect.DeepEqual(props, want) {
		t.Fatalf("Describe properties = %+v, want %+v", props, want)
	}
}

func TestDescribe_Deterministic(t *testing.T) {
	first, err := Describe(typeOf[server]())
	if err != nil {
		t.Fatalf("Describe unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := Describe(typeOf[server]())
		if err != nil {
			t.Fatalf("Describe unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Describe order unstable: %+v vs %+v", first, again)
		}
	}
}

func TestDescribe_EmptyContract(t *testing.T) {
	props, err := Describe(typeOf[any]())
	if err != nil {
		t.Fatalf("Describe unexpected error: %v", err)
	}
	if len(props) != 0 {
		t.Fatalf("Describe properties = %+v, want none", props)
	}
}

func TestDescribe_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		contract   reflect.Type
		wantErr    error
		wantMember string
	}{
		{"nil type", nil, proxyErrors.ErrNilContract, ""},
		{"struct type", typeOf[struct{ Name string }](), proxyErrors.ErrNotInterface, ""},
		{"scalar type", typeOf[int](), proxyErrors.ErrNotInterface, ""},
		{"behavioral method", typeOf[withMethod](), proxyErrors.ErrContainsMethod, "Frobnicate"},
		{"event member", typeOf[withEvent](), proxyErrors.ErrContainsEvent, "OnChange"},
		{"listener pair", typeOf[withListenerPair](), proxyErrors.ErrContainsEvent, "AddUpdateListener"},
		{"indexed getter", typeOf[withIndexer](), proxyErrors.ErrContainsIndexer, "Item"},
		{"indexed setter", typeOf[withSetterIndexer](), proxyErrors.ErrContainsIndexer, "SetItem"},
		{"write-only property", typeOf[writeOnly](), proxyErrors.ErrWriteOnlyProperty, "SetSecret"},
		{"mismatched accessor pair", typeOf[mismatchedPair](), proxyErrors.ErrContainsMethod, "SetCount"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props, err := Describe(tt.contract)
			if props != nil {
				t.Fatalf("Describe returned properties %+v alongside error", props)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Describe error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMember != "" && !strings.Contains(err.Error(), tt.wantMember) {
				t.Fatalf("Describe error %q does not name member %q", err, tt.wantMember)
			}
		})
	}
}

func TestSignature(t *testing.T) {
	m, ok := typeOf[withMethod]().MethodByName("Frobnicate")
	if !ok {
		t.Fatalf("MethodByName(Frobnicate) not found")
	}
	if got, want := Signature(m), "Frobnicate(int) (string, error)"; got != want {
		t.Fatalf("Signature = %q, want %q", got, want)
	}
}
