package printf

import (
	"bufio"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(format string, args ...any) (*state, *strings.Builder) {
	var sb strings.Builder
	return newState(bufio.NewWriter(&sb), format, args), &sb
}

func TestParseSpecifier(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format string
		want   specifier
		rest   string
	}{
		{"d", specifier{prec: DefaultPrecision, verb: 'd'}, ""},
		{"[3]s!", specifier{arg: 2, prec: DefaultPrecision, verb: 's'}, "!"},
		{"#x", specifier{prec: DefaultPrecision, sharp: true, verb: 'x'}, ""},
		{"-8s", specifier{width: 8, prec: DefaultPrecision, left: true, verb: 's'}, ""},
		{"   4d", specifier{width: 4, prec: DefaultPrecision, space: true, verb: 'd'}, ""},
		{"0005d", specifier{width: 5, prec: DefaultPrecision, zeros: true, verb: 'd'}, ""},
		{" 0d", specifier{prec: DefaultPrecision, space: true, verb: 'd'}, ""},
		{"12.3f", specifier{width: 12, prec: 3, verb: 'f'}, ""},
		{".0f", specifier{prec: DefaultPrecision, verb: 'f'}, ""},
		{".f", specifier{prec: DefaultPrecision, verb: 'f'}, ""},
		{".10e", specifier{prec: 10, verb: 'e'}, ""},
		{"+d", specifier{prec: DefaultPrecision, sign: true, verb: 'd'}, ""},
		{"[2]#-07.2+f tail", specifier{
			arg: 1, width: 7, prec: 2, sharp: true, left: true, zeros: true, sign: true, verb: 'f',
		}, " tail"},
		{"*d", specifier{prec: DefaultPrecision, verb: '*'}, "d"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			s, _ := newTestState(tt.format)
			got, err := s.parseSpecifier()
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got, cmp.AllowUnexported(specifier{})); diff != "" {
				t.Errorf("specifier mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tt.rest, s.format[s.pos:])
		})
	}
}

func TestParseSpecifierAutoIndex(t *testing.T) {
	t.Parallel()
	s, _ := newTestState("d[5]dd")
	var got []int
	for range 3 {
		spec, err := s.parseSpecifier()
		require.NoError(t, err)
		got = append(got, spec.arg)
	}
	assert.Equal(t, []int{0, 4, 1}, got)
	assert.Equal(t, 2, s.next)
}

func TestScanText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		format string
		found  bool
		out    string
		pos    int
	}{
		{"", false, "", 0},
		{"plain", false, "plain", 5},
		{"ab%d", true, "ab", 3},
		{"%d", true, "", 1},
		{"a%%b%s", true, "a%b", 5},
		{"50%%", false, "50%", 4},
		{"end%", true, "end", 4},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()
			s, sb := newTestState(tt.format)
			found := s.scanText()
			require.NoError(t, s.w.Flush())
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.out, sb.String())
			assert.Equal(t, tt.pos, s.pos)
		})
	}
}

func TestBinary32(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "00000000000000000000000000000000", binary32(0))
	assert.Equal(t, "10000000000000000000000000000000", binary32(-1<<31))
	assert.Len(t, binary32(42), 32)
}

func TestFormatValueResetsFlags(t *testing.T) {
	t.Parallel()
	spec := specifier{prec: 1, sign: true, sharp: true, verb: VerbValue}
	prefix, body, err := formatValue(spec, Double(2))
	require.NoError(t, err)
	assert.Empty(t, prefix)
	assert.Equal(t, "2.000000", body)
}

func TestZeroPaddable(t *testing.T) {
	t.Parallel()
	assert.True(t, zeroPaddable(VerbHex, Int(1)))
	assert.True(t, zeroPaddable(VerbValue, Double(1)))
	assert.False(t, zeroPaddable(VerbValue, String("a")))
	assert.False(t, zeroPaddable(VerbString, String("a")))
	assert.False(t, zeroPaddable(VerbType, Int(1)))
}

func TestFillWritesInChunks(t *testing.T) {
	t.Parallel()
	s, sb := newTestState("")
	s.fill(zeros, 3*padChunk+5)
	s.fill(spaces, 0)
	require.NoError(t, s.w.Flush())
	assert.Equal(t, strings.Repeat("0", 3*padChunk+5), sb.String())
}
