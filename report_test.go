package tokencheck

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Out: &buf, Verbose: true}

	r.Pass("case one")
	r.Fail("case two", "- expected\n+ actual")
	r.Skip("case three", "requires a non-default initial state")
	r.Summary()

	out := buf.String()
	assert.Contains(t, out, "PASS case one")
	assert.Contains(t, out, "FAIL case two")
	assert.Contains(t, out, "    - expected\n    + actual")
	assert.Contains(t, out, "SKIP case three (requires a non-default initial state)")
	assert.Contains(t, out, "1 passed, 1 failed, 1 skipped")
	assert.True(t, r.Failed())
}

func TestReporterQuiet(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{Out: &buf}

	r.Pass("good")
	r.Skip("other", "reason")
	r.Summary()

	out := buf.String()
	assert.NotContains(t, out, "good")
	assert.NotContains(t, out, "other")
	assert.Contains(t, out, "1 passed, 0 failed, 1 skipped")
	assert.False(t, r.Failed())
}

func TestReporterColors(t *testing.T) {
	var buf bytes.Buffer
	r := &Reporter{
		Out: &buf,
		Colors: &Colorizer{
			FailCode:  []byte("<red>"),
			ResetCode: []byte("<reset>"),
		},
	}

	r.Fail("bad", "")
	assert.Equal(t, "<red>FAIL<reset> bad\n", buf.String())
}
