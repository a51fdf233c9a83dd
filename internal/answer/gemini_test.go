package answer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServiceRequiresAPIKey(t *testing.T) {
	_, err := NewService(context.Background(), "", "gemini-2.0-flash", 0.2)
	assert.Error(t, err)
}
