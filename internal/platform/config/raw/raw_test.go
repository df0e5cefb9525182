package raw

import "testing"

func TestGet_PrefixAndTrim(t *testing.T) {
	t.Setenv("LOG_LEVEL", "  info ")
	t.Setenv("LOG_FORMAT", "   ")

	rc := New().Prefix("LOG_")
	cases := []struct {
		name string
		got  string
		want string
	}{
		{"trimmed", rc.Get("LEVEL", "debug"), "info"},
		{"blank falls back", rc.Get("FORMAT", "console"), "console"},
		{"missing", rc.Get("MISSING", "x"), "x"},
		{"no prefix", New().Get("LOG_LEVEL", ""), "info"},
		{"stacked prefix", New().Prefix("LO").Prefix("G_").Get("LEVEL", ""), "info"},
	}
	for _, tc := range cases {
		if tc.got != tc.want {
			t.Fatalf("%s: Get = %q, want %q", tc.name, tc.got, tc.want)
		}
	}
}

func TestGetBool(t *testing.T) {
	rc := New().Prefix("B_")
	cases := map[string]bool{"1": true, "TRUE": true, "yes": true, "on": true, "0": false, "false": false, "No": false, "off": false}
	for in, want := range cases {
		t.Setenv("B_V", in)
		if got := rc.GetBool("V", !want); got != want {
			t.Fatalf("GetBool(%q) = %v, want %v", in, got, want)
		}
	}
	t.Setenv("B_V", "maybe")
	if !rc.GetBool("V", true) {
		t.Fatalf("GetBool(junk) should keep default true")
	}
	if rc.GetBool("UNSET", false) {
		t.Fatalf("GetBool(unset) should keep default false")
	}
}

func TestGetInt(t *testing.T) {
	rc := New().Prefix("I_")
	t.Setenv("I_OK", " 42 ")
	t.Setenv("I_NEG", "-3")
	t.Setenv("I_BAD", "4x")
	for key, want := range map[string]int{"OK": 42, "NEG": 1, "BAD": 1} {
		if got := rc.GetInt(key, 1); got != want {
			t.Fatalf("GetInt(%s) = %d, want %d", key, got, want)
		}
	}
	if got := rc.GetInt("UNSET", 7); got != 7 {
		t.Fatalf("GetInt(unset) = %d, want 7", got)
	}
}
