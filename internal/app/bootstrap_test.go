package app

import "testing"

func TestListenAddr(t *testing.T) {
	cases := map[string]string{
		"8080":  ":8080",
		":9000": ":9000",
		" 80 ":  ":80",
	}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil {
			t.Fatalf("ListenAddr(%q) unexpected err: %v", in, err)
		}
		if got != want {
			t.Fatalf("ListenAddr(%q) = %q, want %q", in, got, want)
		}
	}

	if _, err := ListenAddr("  "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}
