package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Global19/powerquery-parser/token"
)

func TestConvertTextLiteral(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{name: "plain", raw: `"hello"`, want: "hello"},
		{name: "empty", raw: `""`, want: ""},
		{name: "doubled quote", raw: `"She said ""hi"""`, want: `She said "hi"`},
		{name: "doubled quote at start", raw: `"""quoted"" word"`, want: `"quoted" word`},
		{name: "missing quotes", raw: `hello`, wantErr: true},
		{name: "unescaped quote", raw: `"bad"quote"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := token.ConvertTextLiteral(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.raw, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
