package tweet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAuthor(t *testing.T) {
	tests := []struct {
		name      string
		author    string
		allowList []string
		wantError bool
	}{
		{"nil list accepts all", "user", nil, false},
		{"empty list accepts all", "user", []string{}, false},
		{"member", "user", []string{"user"}, false},
		{"member among others", "user", []string{"anotherUser", "user"}, false},
		{"not a member", "user", []string{"anotherUser"}, true},
		{"case sensitive", "User", []string{"user"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAuthor(tt.author, tt.allowList)
			if !tt.wantError {
				assert.Nil(t, err)
				return
			}

			require.NotNil(t, err)
			assert.Equal(t, MessageAuthorNotApproved, err.Message)
			assert.Equal(t, map[string]string{"%user%": tt.author}, err.Parameters)
		})
	}
}

func TestIsStringList(t *testing.T) {
	assert.True(t, isStringList(nil))
	assert.True(t, isStringList([]string{"a"}))
	assert.True(t, isStringList([]any{"a", "b"}))
	assert.True(t, isStringList([]any{}))
	assert.False(t, isStringList([]any{"a", 1}))
	assert.False(t, isStringList("a"))
	assert.False(t, isStringList(map[string]string{}))
}
