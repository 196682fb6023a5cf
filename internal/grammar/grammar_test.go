package grammar

import (
	"strings"
	"testing"
)

func mustBuild(t *testing.T, extra ...string) *Grammar {
	t.Helper()
	g, err := Build(extra...)
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	return g
}

func TestScan(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "relative weekday phrase",
			text: "Let's meet next Friday to finish the report",
			want: []string{"next Friday"},
		},
		{
			name: "bare four digit year never matches",
			text: "do homework for class 2019",
			want: nil,
		},
		{
			name: "iso and month-day-year in document order",
			text: "Meeting on 1986-11-13, follow-up Nov 20 1986",
			want: []string{"1986-11-13", "Nov 20 1986"},
		},
		{
			name: "relative day words case-insensitive",
			text: "Today was fine, TOMORROW is better, yesterday is gone",
			want: []string{"Today", "TOMORROW", "yesterday"},
		},
		{
			name: "qualified weekday wins over bare weekday",
			text: "previous tuesday and also wed",
			want: []string{"previous tuesday", "wed"},
		},
		{
			name: "day with ordinal suffix before month",
			text: "due 13th December, 1986 sharp",
			want: []string{"13th December, 1986"},
		},
		{
			name: "month day without year",
			text: "see you June 3rd maybe",
			want: []string{"June 3rd"},
		},
		{
			name: "short numeric date",
			text: "filed 05/06/07 archive",
			want: []string{"05/06/07"},
		},
		{
			name: "iso with slashes",
			text: "released 2019/07/01 worldwide",
			want: []string{"2019/07/01"},
		},
		{
			name: "weekday embedded in larger word does not match",
			text: "on sundays we rest",
			want: nil,
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "no date-like text",
			text: "nothing to see here",
			want: nil,
		},
	}

	g := mustBuild(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Scan(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Scan(%q) = %d candidates, want %d: %v", tt.text, len(got), len(tt.want), got)
			}
			for i, c := range got {
				if c.Text != tt.want[i] {
					t.Errorf("candidate[%d] = %q, want %q", i, c.Text, tt.want[i])
				}
			}
		})
	}
}

func TestScanOrderAndOffsets(t *testing.T) {
	g := mustBuild(t)
	text := "tomorrow, then 2021-01-02, then next friday, then Nov 20 1986"

	got := g.Scan(text)
	if len(got) != 4 {
		t.Fatalf("got %d candidates, want 4: %v", len(got), got)
	}

	prevEnd := 0
	for i, c := range got {
		if c.Start < prevEnd {
			t.Errorf("candidate[%d] start %d overlaps previous end %d", i, c.Start, prevEnd)
		}
		if text[c.Start:c.Start+len(c.Text)] != c.Text {
			t.Errorf("candidate[%d] offset %d does not locate %q in input", i, c.Start, c.Text)
		}
		prevEnd = c.Start + len(c.Text)
	}
}

func TestScanYearConsumedByLongerForm(t *testing.T) {
	// "Nov 20, 1986" must match as one candidate, not stop at "Nov 20".
	g := mustBuild(t)

	got := g.Scan("born Nov 20, 1986 in Oslo")
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1: %v", len(got), got)
	}
	if got[0].Text != "Nov 20, 1986" {
		t.Errorf("candidate = %q, want %q", got[0].Text, "Nov 20, 1986")
	}
}

func TestBuildWithExtensions(t *testing.T) {
	g := mustBuild(t, `next\s+week`)

	// Extension alternatives sit at the end of the alternation, after
	// every built-in form.
	pattern := g.Pattern()
	if !strings.HasSuffix(pattern, `|next\s+week)\b`) {
		t.Errorf("extension not appended at lowest precedence: %s", pattern)
	}

	got := g.Scan("see you next week or next friday")
	want := []string{"next week", "next friday"}
	if len(got) != len(want) {
		t.Fatalf("got %d candidates, want %d: %v", len(got), len(want), got)
	}
	for i, c := range got {
		if c.Text != want[i] {
			t.Errorf("candidate[%d] = %q, want %q", i, c.Text, want[i])
		}
	}
}

func TestBuildInvalidExtension(t *testing.T) {
	if _, err := Build(`(`); err == nil {
		t.Fatal("Build with unbalanced extension pattern should fail")
	}
}
