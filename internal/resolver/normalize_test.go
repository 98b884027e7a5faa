package resolver

import "testing"

func TestExtractYear(t *testing.T) {
	cases := []struct {
		in        string
		wantYear  int
		remainder string
	}{
		{"batman 1989", 1989, "batman"},
		{"2001 a space odyssey", 2001, "a space odyssey"},
		{"heat", 0, "heat"},
		{"blade runner 2049", 2049, "blade runner"},
		{"1899", 1899, ""},
		{"catch 22", 0, "catch 22"},
	}
	for _, tc := range cases {
		year, remainder := ExtractYear(tc.in)
		if year != tc.wantYear || remainder != tc.remainder {
			t.Errorf("ExtractYear(%q) = (%d, %q), want (%d, %q)",
				tc.in, year, remainder, tc.wantYear, tc.remainder)
		}
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"The Matrix", "the matrix"},
		{"Spider-Man: No Way Home", "spider man no way home"},
		{"  WALL·E  ", "walle"},
		{"M*A*S*H", "mash"},
		{"Se7en", "se7en"},
	}
	for _, tc := range cases {
		if got := normalizeTitle(tc.in); got != tc.want {
			t.Errorf("normalizeTitle(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStripStopwords(t *testing.T) {
	stopwords := []string{"with", "starring", "from", "movie", "the one"}
	cases := []struct {
		in   string
		want string
	}{
		{"the one with the batman movie", "the batman"},
		{"movie starring batman", "batman"},
		{"heat", "heat"},
		{"with from movie", "with from movie"},
	}
	for _, tc := range cases {
		if got := stripStopwords(tc.in, stopwords); got != tc.want {
			t.Errorf("stripStopwords(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
