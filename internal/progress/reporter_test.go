package progress

import (
	"bytes"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "Home")
	r.Update(2, "Projects")
	r.Finish()

	want := "Building 2 pages\n[1/2] Home\n[2/2] Projects\nSite build complete\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestItemProgress(t *testing.T) {
	var buf bytes.Buffer
	fn := ItemProgress(&CIReporter{Out: &buf})
	fn(1, 2, "ocr")
	fn(2, 2, "qa")

	want := "Building 2 pages\n[1/2] ocr\n[2/2] qa\nSite build complete\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}
