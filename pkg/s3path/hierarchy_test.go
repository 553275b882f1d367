package s3path

import "testing"

// foreignPath is a Path of a different concrete kind, for cross-kind
// rejection tests. Only the methods the algebra touches are implemented.
type foreignPath struct{ Path }

func (foreignPath) IsAbsolute() bool { return true }
func (foreignPath) NameCount() int   { return 0 }
func (foreignPath) String() string   { return "foreign" }

func TestRoot(t *testing.T) {
	abs := mustNew(t, "/bucket/a/b")
	root := abs.Root()
	if root == nil {
		t.Fatal("Root() = nil for absolute path")
	}
	if got := root.String(); got != "/bucket" {
		t.Errorf("Root() = %q, want %q", got, "/bucket")
	}

	if rel := mustNew(t, "a/b"); rel.Root() != nil {
		t.Error("Root() != nil for relative path")
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/bucket/a/b", "b"},
		{"/bucket/a", "a"},
		{"/bucket", "bucket"}, // the bucket name acts as the file name
		{"a/b", "b"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			name := mustNew(t, tt.input).FileName()
			if name.IsAbsolute() {
				t.Error("FileName() is absolute, want relative")
			}
			if got := name.String(); got != tt.want {
				t.Errorf("FileName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParent(t *testing.T) {
	tests := []struct {
		input string
		want  string // "" means no parent
	}{
		{"/bucket/a/b", "/bucket/a"},
		{"/bucket/a", "/bucket"},
		{"/bucket", ""},
		{"a", ""},
		{"a/b", "a"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			parent := mustNew(t, tt.input).Parent()
			if tt.want == "" {
				if parent != nil {
					t.Errorf("Parent() = %q, want nil", parent)
				}
				return
			}
			if parent == nil {
				t.Fatalf("Parent() = nil, want %q", tt.want)
			}
			if got := parent.String(); got != tt.want {
				t.Errorf("Parent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNameOutOfRange(t *testing.T) {
	p := mustNew(t, "/bucket/a/b")

	for _, index := range []int{-1, 2, 10} {
		if _, err := p.Name(index); err == nil {
			t.Errorf("Name(%d) succeeded, want error", index)
		} else if code, _ := CodeOf(err); code != ErrIndexOutOfRange {
			t.Errorf("Name(%d) code = %v, want %v", index, code, ErrIndexOutOfRange)
		}
	}
}

func TestSubpath(t *testing.T) {
	p := mustNew(t, "/bucket/a/b/c")

	tests := []struct {
		begin, end int
		want       string
		wantErr    bool
	}{
		{0, 2, "a/b", false},
		{1, 3, "b/c", false},
		{0, 3, "a/b/c", false},
		{2, 2, "", false},
		{-1, 2, "", true},
		{0, 4, "", true},
		{2, 1, "", true},
	}

	for _, tt := range tests {
		sub, err := p.Subpath(tt.begin, tt.end)
		if tt.wantErr {
			if err == nil {
				t.Errorf("Subpath(%d, %d) succeeded, want error", tt.begin, tt.end)
			} else if code, _ := CodeOf(err); code != ErrIndexOutOfRange {
				t.Errorf("Subpath(%d, %d) code = %v, want %v", tt.begin, tt.end, code, ErrIndexOutOfRange)
			}
			continue
		}
		if err != nil {
			t.Errorf("Subpath(%d, %d) failed: %v", tt.begin, tt.end, err)
			continue
		}
		if sub.IsAbsolute() {
			t.Errorf("Subpath(%d, %d) is absolute, want relative", tt.begin, tt.end)
		}
		if got := sub.String(); got != tt.want {
			t.Errorf("Subpath(%d, %d) = %q, want %q", tt.begin, tt.end, got, tt.want)
		}
	}
}

func TestStartsWith(t *testing.T) {
	tests := []struct {
		name  string
		p     string
		other string
		want  bool
	}{
		{"reflexive", "/bucket/a/b", "/bucket/a/b", true},
		{"bucket root prefix", "/bucket/a/b", "/bucket", true},
		{"proper prefix", "/bucket/a/b", "/bucket/a", true},
		{"longer other", "/bucket/a", "/bucket/a/b", false},
		{"different bucket", "/bucket/a", "/other/a", false},
		{"relative other absolute receiver", "/bucket/a", "a", false},
		{"relative prefix", "a/b", "a", true},
		{"relative reflexive", "a/b", "a/b", true},
		{"empty other nonempty receiver", "/bucket/a", "", false},
		{"empty both", "", "", true},
		{"segment mismatch", "/bucket/a/b", "/bucket/x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, other := mustNew(t, tt.p), mustNew(t, tt.other)
			if got := p.StartsWith(other); got != tt.want {
				t.Errorf("StartsWith(%q, %q) = %v, want %v", tt.p, tt.other, got, tt.want)
			}
			got, err := p.StartsWithString(tt.other)
			if err != nil {
				t.Fatalf("StartsWithString(%q) failed: %v", tt.other, err)
			}
			if got != tt.want {
				t.Errorf("StartsWithString(%q, %q) = %v, want %v", tt.p, tt.other, got, tt.want)
			}
		})
	}

	if mustNew(t, "/bucket/a").StartsWith(foreignPath{}) {
		t.Error("StartsWith(foreign) = true, want false")
	}
}

func TestEndsWith(t *testing.T) {
	tests := []struct {
		name  string
		p     string
		other string
		want  bool
	}{
		{"reflexive", "/bucket/a/b", "/bucket/a/b", true},
		{"single segment suffix", "/bucket/a/b", "b", true},
		{"two segment suffix", "/bucket/a/b", "a/b", true},
		{"longer other", "/bucket/a", "a/b/c", false},
		{"bucket on other matches", "/bucket/a/b", "/bucket/a/b", true},
		{"bucket mismatch", "/bucket/a/b", "/other/a/b", false},
		{"bucket on other only", "a/b", "/bucket/a/b", false},
		{"bucket on receiver only", "/bucket/a/b", "b", true},
		{"empty other nonempty receiver", "/bucket/a", "", false},
		{"empty both", "", "", true},
		{"tail mismatch", "/bucket/a/b", "x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, other := mustNew(t, tt.p), mustNew(t, tt.other)
			if got := p.EndsWith(other); got != tt.want {
				t.Errorf("EndsWith(%q, %q) = %v, want %v", tt.p, tt.other, got, tt.want)
			}
			got, err := p.EndsWithString(tt.other)
			if err != nil {
				t.Fatalf("EndsWithString(%q) failed: %v", tt.other, err)
			}
			if got != tt.want {
				t.Errorf("EndsWithString(%q, %q) = %v, want %v", tt.p, tt.other, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	p := mustNew(t, "/bucket/a/b")
	if p.Normalize() != Path(p) {
		t.Error("Normalize() did not return the receiver")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		p     string
		other string
		want  string
	}{
		{"relative against absolute", "/bucket/a", "b/c", "/bucket/a/b/c"},
		{"relative against relative", "a", "b", "a/b"},
		{"absolute other wins", "/bucket/a", "/other/x", "/other/x"},
		{"empty other", "/bucket/a", "", "/bucket/a"},
		{"empty receiver", "", "a/b", "a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, tt.p)
			got, err := p.Resolve(mustNew(t, tt.other))
			if err != nil {
				t.Fatalf("Resolve() failed: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("Resolve(%q, %q) = %q, want %q", tt.p, tt.other, got, tt.want)
			}

			got, err = p.ResolveString(tt.other)
			if err != nil {
				t.Fatalf("ResolveString() failed: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ResolveString(%q, %q) = %q, want %q", tt.p, tt.other, got, tt.want)
			}
		})
	}
}

func TestResolveDoesNotMutateReceiver(t *testing.T) {
	p := mustNew(t, "/bucket/a")
	if _, err := p.Resolve(mustNew(t, "b/c")); err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if got := p.String(); got != "/bucket/a" {
		t.Errorf("receiver changed to %q after Resolve", got)
	}
}

func TestResolveTypeMismatch(t *testing.T) {
	p := mustNew(t, "/bucket/a")
	if _, err := p.Resolve(foreignPath{}); err == nil {
		t.Fatal("Resolve(foreign) succeeded, want error")
	} else if code, _ := CodeOf(err); code != ErrTypeMismatch {
		t.Errorf("Resolve(foreign) code = %v, want %v", code, ErrTypeMismatch)
	}
}

func TestResolveSibling(t *testing.T) {
	tests := []struct {
		name  string
		p     string
		other string
		want  string
	}{
		{"sibling segment", "/bucket/a/b", "c", "/bucket/a/c"},
		{"multi segment", "/bucket/a/b", "c/d", "/bucket/a/c/d"},
		{"no parent returns other", "a", "x", "x"},
		{"absolute other wins", "/bucket/a/b", "/other/x", "/other/x"},
		{"empty other yields parent", "/bucket/a/b", "", "/bucket/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, tt.p)
			got, err := p.ResolveSibling(mustNew(t, tt.other))
			if err != nil {
				t.Fatalf("ResolveSibling() failed: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ResolveSibling(%q, %q) = %q, want %q", tt.p, tt.other, got, tt.want)
			}

			got, err = p.ResolveSiblingString(tt.other)
			if err != nil {
				t.Fatalf("ResolveSiblingString() failed: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ResolveSiblingString(%q, %q) = %q, want %q", tt.p, tt.other, got, tt.want)
			}
		})
	}
}

func TestRelativize(t *testing.T) {
	tests := []struct {
		name  string
		p     string
		other string
		want  string
	}{
		{"descendant", "/bucket/a/b", "/bucket/a/b/c/d", "c/d"},
		{"direct child", "/bucket/a", "/bucket/a/b", "b"},
		{"bucket root", "/bucket", "/bucket/a/b", "a/b"},
		{"equal paths", "/bucket/a", "/bucket/a", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, other := mustNew(t, tt.p), mustNew(t, tt.other)
			got, err := p.Relativize(other)
			if err != nil {
				t.Fatalf("Relativize() failed: %v", err)
			}
			if got.IsAbsolute() {
				t.Error("Relativize() result is absolute, want relative")
			}
			if got.String() != tt.want {
				t.Errorf("Relativize(%q, %q) = %q, want %q", tt.p, tt.other, got, tt.want)
			}
		})
	}
}

func TestRelativizeErrors(t *testing.T) {
	tests := []struct {
		name     string
		p        string
		other    string
		wantCode ErrorCode
	}{
		{"relative receiver", "a/b", "/bucket/a/b/c", ErrIllegalRelative},
		{"relative other", "/bucket/a", "a/b", ErrIllegalRelative},
		{"bucket mismatch", "/bucketA/x", "/bucketB/x", ErrBucketMismatch},
		{"parent of receiver", "/bucket/a/b/c", "/bucket/a", ErrNotAncestor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustNew(t, tt.p).Relativize(mustNew(t, tt.other))
			if err == nil {
				t.Fatalf("Relativize(%q, %q) succeeded, want error", tt.p, tt.other)
			}
			if code, _ := CodeOf(err); code != tt.wantCode {
				t.Errorf("CodeOf(err) = %v, want %v", code, tt.wantCode)
			}
		})
	}

	if _, err := mustNew(t, "/bucket/a").Relativize(foreignPath{}); err == nil {
		t.Fatal("Relativize(foreign) succeeded, want error")
	} else if code, _ := CodeOf(err); code != ErrTypeMismatch {
		t.Errorf("Relativize(foreign) code = %v, want %v", code, ErrTypeMismatch)
	}
}

// Inverse law: p.Resolve(p.Relativize(q)) == q for descendants q of p.
func TestResolveRelativizeInverse(t *testing.T) {
	pairs := [][2]string{
		{"/bucket/a/b", "/bucket/a/b/c/d"},
		{"/bucket", "/bucket/x"},
		{"/bucket/a", "/bucket/a"},
	}

	for _, pair := range pairs {
		p, q := mustNew(t, pair[0]), mustNew(t, pair[1])
		rel, err := p.Relativize(q)
		if err != nil {
			t.Fatalf("Relativize(%q, %q) failed: %v", pair[0], pair[1], err)
		}
		back, err := p.Resolve(rel)
		if err != nil {
			t.Fatalf("Resolve() failed: %v", err)
		}
		if !q.Equal(back) {
			t.Errorf("Resolve(Relativize(%q, %q)) = %q, want %q", pair[0], pair[1], back, q)
		}
	}
}

func TestNames(t *testing.T) {
	p := mustNew(t, "/bucket/a/b/c")
	names := p.Names()

	if len(names) != p.NameCount() {
		t.Fatalf("len(Names()) = %d, want %d", len(names), p.NameCount())
	}
	for _, name := range names {
		if name.IsAbsolute() {
			t.Errorf("Names() element %q is absolute, want relative", name)
		}
		if name.NameCount() != 1 {
			t.Errorf("Names() element %q has %d segments, want 1", name, name.NameCount())
		}
	}

	// Resolving the names in order rebuilds the key.
	var acc Path = mustNew(t, "")
	for _, name := range names {
		next, err := acc.Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", name, err)
		}
		acc = next
	}
	if got := acc.String(); got != "a/b/c" {
		t.Errorf("resolved names = %q, want %q", got, "a/b/c")
	}
}
