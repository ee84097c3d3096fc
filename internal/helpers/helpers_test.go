package helpers

import (
	"fmt"
	"regexp"
	"testing"
	"time"
)

func TestSanitizeClientName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Ama Serwaa", "ama_serwaa"},
		{"O'Brien-Smith", "o_brien_smith"},
		{"client.name@mail", "client_name_mail"},
		{"Müller José", "m_ller_jos_"},
		{"ALLCAPS123", "allcaps123"},
		{"", ""},
	}

	for _, tc := range cases {
		got := SanitizeClientName(tc.in)
		if got != tc.want {
			t.Errorf("SanitizeClientName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeClientNameAlphabet(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9_]*$`)

	inputs := []string{
		"  spaces  everywhere  ",
		"emoji 🙂 name",
		"半角カナ",
		"tabs\tand\nnewlines",
		`quotes "and" 'more'`,
	}

	for _, in := range inputs {
		got := SanitizeClientName(in)
		if !safe.MatchString(got) {
			t.Errorf("SanitizeClientName(%q) = %q contains characters outside [a-z0-9_]", in, got)
		}
	}
}

func TestFileExtension(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"receipt.PDF", "pdf"},
		{"photo.jpeg", "jpeg"},
		{"archive.tar.gz", "gz"},
		{"noextension", "pdf"},
		{"", "pdf"},
	}

	for _, tc := range cases {
		if got := FileExtension(tc.in); got != tc.want {
			t.Errorf("FileExtension(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestProofObjectPath(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	got := ProofObjectPath("Ama Serwaa", "BK-1042", "receipt.png", now)
	want := fmt.Sprintf("payment-proofs/%d_ama_serwaa_BK-1042.png", now.UnixMilli())

	if got != want {
		t.Errorf("ProofObjectPath = %q, want %q", got, want)
	}
}

func TestProofObjectPathDefaultExtension(t *testing.T) {
	now := time.UnixMilli(1700000000000)

	got := ProofObjectPath("kofi", "BK-7", "scan", now)
	want := fmt.Sprintf("payment-proofs/%d_kofi_BK-7.pdf", now.UnixMilli())

	if got != want {
		t.Errorf("ProofObjectPath = %q, want %q", got, want)
	}
}
