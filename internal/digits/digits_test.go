package digits

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

// cellWidth measures display width with ambiguous-width runes narrow: the
// block glyphs are East-Asian-ambiguous, so the grid checks must not vary
// with the host locale or RUNEWIDTH_EASTASIAN.
var cellWidth = runewidth.Condition{EastAsianWidth: false}

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{60, "01:00"},
		{65, "01:05"},
		{3599, "59:59"},
		{3600, "60:00"},
		{6000, "100:00"},
		{-5, "00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestRenderRowCount(t *testing.T) {
	for _, s := range []string{"", ":", "25:00", "100:00"} {
		if got := len(Render(s)); got != Rows {
			t.Errorf("Render(%q) returned %d rows, want %d", s, got, Rows)
		}
	}
}

func TestRenderEmptyStringYieldsEmptyRows(t *testing.T) {
	for i, row := range Render("") {
		if row != "" {
			t.Errorf("row %d = %q, want empty", i, row)
		}
	}
}

func TestRenderRowsHaveEqualWidth(t *testing.T) {
	for _, s := range []string{"00:00", "05:09", "59:59", "123:456"} {
		rows := Render(s)
		want := cellWidth.StringWidth(rows[0])
		for i, row := range rows[1:] {
			if got := cellWidth.StringWidth(row); got != want {
				t.Errorf("Render(%q) row %d width = %d, want %d", s, i+1, got, want)
			}
		}
	}
}

func TestRenderWidthGrowsWithInput(t *testing.T) {
	short := cellWidth.StringWidth(Render("25:00")[0])
	long := cellWidth.StringWidth(Render("100:00")[0])
	if long <= short {
		t.Errorf("expected a wider clock to render wider, got %d vs %d", long, short)
	}
}

func TestRenderUnknownRuneFallsBackToColon(t *testing.T) {
	colon := Render(":")
	for _, s := range []string{"x", "-", " "} {
		got := Render(s)
		for i := range colon {
			if got[i] != colon[i] {
				t.Errorf("Render(%q) row %d = %q, want colon row %q", s, i, got[i], colon[i])
			}
		}
	}
}

func TestRenderDigitsDiffer(t *testing.T) {
	zero := Render("0")
	one := Render("1")
	same := true
	for i := range zero {
		if zero[i] != one[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("expected distinct glyphs for distinct digits")
	}
}
