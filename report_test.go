package nxjson_test

import (
	"bytes"
	"log"
	"testing"

	"github.com/creachadair/nxjson"
	"github.com/google/go-cmp/cmp"
)

func TestReporter(t *testing.T) {
	var got []nxjson.ErrorKind
	p := nxjson.NewParser()
	p.ReportTo(nxjson.ReporterFunc(func(err *nxjson.SyntaxError) {
		got = append(got, err.Kind)
	}))

	inputs := []string{
		`{"ok": true}`,
		`{"ok": true`,
		`[1 2]`,
		`"\x"`,
		`[1]`,
		`{"a" 1}`,
	}
	for _, in := range inputs {
		p.ParseString(in)
	}
	want := []nxjson.ErrorKind{
		nxjson.UnexpectedEndOfInput,
		nxjson.ExpectedCommaOrCloser,
		nxjson.ExpectedColon,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Reported errors (-want, +got):\n%s", diff)
	}
}

func TestLogReporter(t *testing.T) {
	var buf bytes.Buffer
	p := nxjson.NewParser()
	p.ReportTo(nxjson.LogReporter(log.New(&buf, "", 0)))

	if _, err := p.ParseString("[1,\n 2,\n x]"); err == nil {
		t.Fatal("Parse: got nil, want error")
	}
	const want = `nxjson: at 3:1: unexpected character near "x]"` + "\n"
	if got := buf.String(); got != want {
		t.Errorf("Log output: got %q, want %q", got, want)
	}

	buf.Reset()
	p.ParseString("[1, 2, 3]")
	if buf.Len() != 0 {
		t.Errorf("Log output for valid input: got %q, want empty", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	p := nxjson.NewParser()
	p.ReportTo(nxjson.Discard)
	if _, err := p.ParseString(`nope`); err == nil {
		t.Error("Parse: got nil, want error")
	}
}
