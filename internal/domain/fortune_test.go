package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFortune(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{name: "plain text", text: "Good things come."},
		{name: "leading whitespace kept", text: "  Seize the day"},
		{name: "unicode", text: "七転び八起き"},
		{name: "empty", text: "", wantErr: true},
		{name: "spaces only", text: "   ", wantErr: true},
		{name: "tabs and newlines", text: "\t\n\r ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewFortune(tt.text)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, f)
				assert.True(t, IsValidation(err))
				assert.Equal(t, []string{"Text can't be blank"}, ValidationMessages(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.text, f.Text)
			assert.Zero(t, f.ID)
		})
	}
}
