package bufferset

import (
	"fmt"
	"strings"
	"testing"
)

// TestNewSplitting tests the newline splitting rules, including the
// trailing-segment asymmetry.
func TestNewSplitting(t *testing.T) {
	tests := []struct {
		name    string
		corpus  string
		want    []string
		wantLen int
	}{
		{
			name:    "no trailing newline",
			corpus:  "a\nb",
			want:    []string{"a", "b"},
			wantLen: 2,
		},
		{
			name:    "trailing newline suppresses empty entry",
			corpus:  "a\nb\n",
			want:    []string{"a", "b"},
			wantLen: 2,
		},
		{
			name:    "interior empty line is an entry",
			corpus:  "a\n\nb",
			want:    []string{"a", "", "b"},
			wantLen: 3,
		},
		{
			name:    "leading newline yields empty entry",
			corpus:  "\na",
			want:    []string{"", "a"},
			wantLen: 2,
		},
		{
			name:    "empty corpus",
			corpus:  "",
			want:    nil,
			wantLen: 0,
		},
		{
			name:    "single newline yields one empty entry",
			corpus:  "\n",
			want:    []string{""},
			wantLen: 1,
		},
		{
			name:    "single word no newline",
			corpus:  "cat",
			want:    []string{"cat"},
			wantLen: 1,
		},
		{
			name:    "duplicates collapse",
			corpus:  "dog\ncat\ndog\ncat\ndog",
			want:    []string{"dog", "cat"},
			wantLen: 2,
		},
		{
			name:    "multi-word lines",
			corpus:  "new york\nnew york city",
			want:    []string{"new york", "new york city"},
			wantLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New([]byte(tt.corpus))

			if got := s.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}

			var got []string
			s.Range(func(e []byte) bool {
				got = append(got, string(e))
				return true
			})
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("entries = %q, want %q", got, tt.want)
			}

			for _, w := range tt.want {
				if !s.Contains([]byte(w)) {
					t.Errorf("Contains(%q) = false, want true", w)
				}
			}
		})
	}
}

// TestContains tests membership semantics on a fixed corpus.
func TestContains(t *testing.T) {
	s := New([]byte("Foo\nbar baz\n\nqux"))

	tests := []struct {
		needle string
		want   bool
	}{
		{"Foo", true},
		{"foo", false}, // byte-exact, no case folding
		{"bar baz", true},
		{"bar", false},
		{"baz", false},
		{"", true}, // interior empty line
		{"qux", true},
		{"qux\n", false},
		{" qux", false},
		{"Foo\nbar baz", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.needle), func(t *testing.T) {
			if got := s.Contains([]byte(tt.needle)); got != tt.want {
				t.Errorf("Contains(%q) = %v, want %v", tt.needle, got, tt.want)
			}
		})
	}
}

// TestContainsDoesNotRetain verifies lookups read the probe argument without
// aliasing it: mutating the probe buffer afterward must not affect the set.
func TestContainsDoesNotRetain(t *testing.T) {
	s := New([]byte("hello"))

	probe := []byte("hello")
	if !s.Contains(probe) {
		t.Fatal("Contains(hello) = false before mutation")
	}
	probe[0] = 'x'
	if !s.Contains([]byte("hello")) {
		t.Error("set content changed after probe buffer mutation")
	}
	if s.Contains(probe) {
		t.Errorf("Contains(%q) = true, want false", probe)
	}
}

// TestContainsAllocationFree pins the zero-copy contract: probing the set
// allocates nothing, hit or miss.
func TestContainsAllocationFree(t *testing.T) {
	s := New([]byte("new york\nboston\nchicago"))
	hit := []byte("new york")
	miss := []byte("new jersey")

	if allocs := testing.AllocsPerRun(100, func() { s.Contains(hit) }); allocs != 0 {
		t.Errorf("Contains(hit) allocates %v per run, want 0", allocs)
	}
	if allocs := testing.AllocsPerRun(100, func() { s.Contains(miss) }); allocs != 0 {
		t.Errorf("Contains(miss) allocates %v per run, want 0", allocs)
	}
}

// TestCorpusNotRetained verifies construction copies the corpus.
func TestCorpusNotRetained(t *testing.T) {
	corpus := []byte("alpha\nbeta")
	s := New(corpus)
	corpus[0] = 'X'

	if !s.Contains([]byte("alpha")) {
		t.Error("Contains(alpha) = false after caller mutated its corpus buffer")
	}
	if s.Contains([]byte("Xlpha")) {
		t.Error("Contains(Xlpha) = true: set aliases the caller's buffer")
	}
}

// TestHasEmpty tests empty-entry detection (the prefilter gate relies on it).
func TestHasEmpty(t *testing.T) {
	tests := []struct {
		corpus string
		want   bool
	}{
		{"a\nb", false},
		{"a\nb\n", false},
		{"a\n\nb", true},
		{"\na", true},
		{"\n", true},
		{"", false},
	}

	for _, tt := range tests {
		if got := New([]byte(tt.corpus)).HasEmpty(); got != tt.want {
			t.Errorf("New(%q).HasEmpty() = %v, want %v", tt.corpus, got, tt.want)
		}
	}
}

// TestManyEntries exercises probing past the small-table fast path and the
// no-rehash pre-sizing on a larger corpus.
func TestManyEntries(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 5000; i++ {
		fmt.Fprintf(&sb, "entry-%04d\n", i)
	}
	s := New([]byte(sb.String()))

	if got := s.Len(); got != 5000 {
		t.Fatalf("Len() = %d, want 5000", got)
	}
	for _, probe := range []string{"entry-0000", "entry-2500", "entry-4999"} {
		if !s.Contains([]byte(probe)) {
			t.Errorf("Contains(%q) = false, want true", probe)
		}
	}
	for _, probe := range []string{"entry-5000", "entry-", "entry-04999"} {
		if s.Contains([]byte(probe)) {
			t.Errorf("Contains(%q) = true, want false", probe)
		}
	}
}

func BenchmarkNew(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&sb, "dictionary entry %d\n", i)
	}
	corpus := []byte(sb.String())
	b.SetBytes(int64(len(corpus)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		New(corpus)
	}
}

func BenchmarkContains(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 10000; i++ {
		fmt.Fprintf(&sb, "dictionary entry %d\n", i)
	}
	s := New([]byte(sb.String()))
	hit := []byte("dictionary entry 5000")
	miss := []byte("dictionary entry 99999")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Contains(hit)
		s.Contains(miss)
	}
}
