package sidebar

import (
	"reflect"
	"testing"
)

func TestDecode_FallsBackToEmpty(t *testing.T) {
	for _, raw := range []string{"", "{", "[]", "null", `{"categories": 5}`} {
		got := Decode(raw)
		if !reflect.DeepEqual(got, Empty()) {
			t.Errorf("Decode(%q) = %+v, want empty", raw, got)
		}
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	st := Empty().ToggleCategory("redis").ToggleSection("redis", "basics")

	raw, err := st.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if got := Decode(raw); !reflect.DeepEqual(got, st) {
		t.Errorf("round trip = %+v, want %+v", got, st)
	}
}

func TestToggle(t *testing.T) {
	st := Empty()

	open := st.ToggleCategory("redis")
	if !open.CategoryOpen("redis") {
		t.Error("category should be open after toggle")
	}
	if st.CategoryOpen("redis") {
		t.Error("toggle must not modify the receiver")
	}
	if open.ToggleCategory("redis").CategoryOpen("redis") {
		t.Error("second toggle should close the category")
	}

	sec := st.ToggleSection("redis", "basics")
	if !sec.SectionOpen("redis", "basics") || sec.SectionOpen("docker", "basics") {
		t.Error("sections must be keyed per category")
	}
}

func TestEnsureOpen_NeverCloses(t *testing.T) {
	st := State{
		Categories: map[string]bool{"docker": true, "kafka": false},
		Sections:   map[string]bool{"docker/images": true, "redis/cluster": false},
	}

	got, changed := st.EnsureOpen("redis", "basics")
	if !changed {
		t.Error("expected a change")
	}
	want := State{
		Categories: map[string]bool{"docker": true, "kafka": false, "redis": true},
		Sections:   map[string]bool{"docker/images": true, "redis/cluster": false, "redis/basics": true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("EnsureOpen = %+v, want %+v", got, want)
	}

	again, changed := got.EnsureOpen("redis", "basics")
	if changed || !reflect.DeepEqual(again, got) {
		t.Error("EnsureOpen on an open node should be a no-op")
	}
}
